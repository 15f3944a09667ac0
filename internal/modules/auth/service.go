// Package auth signs the admin in and out against the remote API and keeps
// the session store in step. Both session fields (token and role) are
// written in one Set so the store can never hold a token without a role.
package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/neekunjchaturvedi/kisanfront/internal/api"
	"github.com/neekunjchaturvedi/kisanfront/internal/session"
)

type Service struct {
	api      *api.Client
	sessions session.Store
	log      *slog.Logger
}

func NewService(client *api.Client, sessions session.Store, log *slog.Logger) *Service {
	return &Service{api: client, sessions: sessions, log: log}
}

// Login authenticates against the remote API and persists the session.
// Returns the signed-in user's role.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, identifier, password string, remember bool) (string, error) {
	res, err := s.api.Login(ctx, identifier, password)
	if err != nil {
		return "", err
	}

	err = s.sessions.Set(w, r, session.Data{
		AccessToken: res.AccessToken,
		UserID:      res.User.ID,
		UserName:    res.User.Name,
		UserEmail:   res.User.Email,
		UserRole:    res.User.Role,
		RememberMe:  remember,
	})
	if err != nil {
		return "", err
	}
	return res.User.Role, nil
}

// Logout clears the session. The server-side revoke is best effort: the
// local teardown happens even when the API call fails.
func (s *Service) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	d := s.sessions.Get(r)
	if d.AccessToken != "" {
		if err := s.api.WithToken(d.AccessToken).Logout(ctx); err != nil {
			s.log.Warn("remote logout failed", "error", err)
		}
	}
	return s.sessions.Clear(w, r)
}
