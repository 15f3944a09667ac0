// Package session holds the client-side authentication state: the access
// token issued by the remote API and the signed-in user's identity. The
// route guards and the API client depend on the Store interface, never on
// cookie access directly.
package session

import (
	"net/http"
	"sync"

	"github.com/gorilla/sessions"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Data is the persisted session payload. Zero value means signed out.
type Data struct {
	AccessToken string
	UserID      string
	UserName    string
	UserEmail   string
	UserRole    string
	RememberMe  bool
}

func (d Data) IsAuthenticated() bool { return d.AccessToken != "" }

func (d Data) IsAdmin() bool { return d.UserRole == RoleAdmin }

// Corrupted reports a token paired with a missing or unrecognized role,
// e.g. after a partially-written session. Such a session must be torn down.
func (d Data) Corrupted() bool {
	if d.AccessToken == "" {
		return false
	}
	return d.UserRole != RoleAdmin && d.UserRole != RoleUser
}

// Store reads and writes session state and notifies subscribers on change.
type Store interface {
	Get(r *http.Request) Data
	Set(w http.ResponseWriter, r *http.Request, d Data) error
	Clear(w http.ResponseWriter, r *http.Request) error
	Subscribe(fn func(Data))
}

const (
	keyAccessToken = "accessToken"
	keyUserID      = "userId"
	keyUserName    = "userName"
	keyUserEmail   = "userEmail"
	keyUserRole    = "userRole"
	keyRememberMe  = "rememberMe"
)

// CookieStore keeps the session in a signed cookie via gorilla/sessions.
type CookieStore struct {
	store       *sessions.CookieStore
	name        string
	rememberAge int // MaxAge in seconds when RememberMe is set

	mu          sync.Mutex
	subscribers []func(Data)
}

type CookieOptions struct {
	Key          []byte
	Name         string
	Secure       bool
	Domain       string
	RememberDays int
}

func NewCookieStore(opts CookieOptions) *CookieStore {
	cs := sessions.NewCookieStore(opts.Key)
	cs.Options.HttpOnly = true
	cs.Options.Secure = opts.Secure
	cs.Options.SameSite = http.SameSiteLaxMode
	cs.Options.Path = "/"
	if opts.Domain != "" {
		cs.Options.Domain = opts.Domain
	}

	name := opts.Name
	if name == "" {
		name = "ks_session"
	}
	days := opts.RememberDays
	if days <= 0 {
		days = 30
	}
	return &CookieStore{store: cs, name: name, rememberAge: days * 24 * 60 * 60}
}

func (s *CookieStore) Get(r *http.Request) Data {
	// gorilla returns a fresh session (plus the error) on a bad cookie;
	// treat that the same as signed out.
	sess, _ := s.store.Get(r, s.name)
	return Data{
		AccessToken: str(sess.Values[keyAccessToken]),
		UserID:      str(sess.Values[keyUserID]),
		UserName:    str(sess.Values[keyUserName]),
		UserEmail:   str(sess.Values[keyUserEmail]),
		UserRole:    str(sess.Values[keyUserRole]),
		RememberMe:  str(sess.Values[keyRememberMe]) == "true",
	}
}

func (s *CookieStore) Set(w http.ResponseWriter, r *http.Request, d Data) error {
	sess, _ := s.store.Get(r, s.name)
	sess.Values[keyAccessToken] = d.AccessToken
	sess.Values[keyUserID] = d.UserID
	sess.Values[keyUserName] = d.UserName
	sess.Values[keyUserEmail] = d.UserEmail
	sess.Values[keyUserRole] = d.UserRole
	if d.RememberMe {
		sess.Values[keyRememberMe] = "true"
		sess.Options.MaxAge = s.rememberAge
	} else {
		sess.Values[keyRememberMe] = ""
		sess.Options.MaxAge = 0 // browser-session cookie
	}
	if err := sess.Save(r, w); err != nil {
		return err
	}
	s.notify(d)
	return nil
}

// Clear wipes every session value together, matching the all-or-nothing
// teardown on logout and on corruption detection.
func (s *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.store.Get(r, s.name)
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		return err
	}
	s.notify(Data{})
	return nil
}

func (s *CookieStore) Subscribe(fn func(Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *CookieStore) notify(d Data) {
	s.mu.Lock()
	subs := make([]func(Data), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(d)
	}
}

func str(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
