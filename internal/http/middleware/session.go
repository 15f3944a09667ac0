package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neekunjchaturvedi/kisanfront/internal/api"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/flash"
	"github.com/neekunjchaturvedi/kisanfront/internal/session"
	"github.com/neekunjchaturvedi/kisanfront/pkg/view"
)

const (
	// Route surface the guards redirect between.
	PathLogin         = "/"
	PathDashboard     = "/dashboard"
	PathNotAuthorized = "/not-authorized"

	CtxKeySession = "session"
)

// SessionLoad resolves the session once per request and runs the
// consistency check: a token paired with a missing or unrecognized role
// means a corrupted session, which is torn down completely before the
// client is sent back to the login page.
func SessionLoad(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := store.Get(c.Request)

		if d.Corrupted() {
			_ = store.Clear(c.Writer, c.Request)
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":      "session invalid",
					"request_id": GetRequestID(c),
				})
				return
			}
			c.Redirect(http.StatusFound, PathLogin)
			c.Abort()
			return
		}

		c.Set(CtxKeySession, d)
		if d.IsAuthenticated() {
			// downstream API calls authenticate with the session's token
			c.Request = c.Request.WithContext(api.ContextWithToken(c.Request.Context(), d.AccessToken))
		}
		c.Next()
	}
}

// CurrentSession returns the session loaded by SessionLoad. The zero value
// means signed out.
func CurrentSession(c *gin.Context) session.Data {
	if v, ok := c.Get(CtxKeySession); ok {
		if d, ok := v.(session.Data); ok {
			return d
		}
	}
	return session.Data{}
}

// RedirectIfAuthenticated keeps signed-in admins off the public entry page.
func RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c).IsAuthenticated() {
			c.Redirect(http.StatusFound, PathDashboard)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAuth:
// - no session: redirect to the login page (JSON clients get 401)
func RequireAuth(flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c).IsAuthenticated() {
			c.Next()
			return
		}

		if WantsJSON(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"request_id": GetRequestID(c),
			})
			return
		}

		SetFlashCookie(c, flashCodec, view.Flash{
			Kind:    view.FlashWarning,
			Message: "Please sign in to continue.",
		})
		c.Redirect(http.StatusFound, PathLogin)
		c.Abort()
	}
}

// RequireAdmin:
// - no session: redirect to login
// - signed in without the admin role: redirect to the not-authorized page
//   (JSON clients get 403)
func RequireAdmin(flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := CurrentSession(c)
		if !d.IsAuthenticated() {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":      "authentication required",
					"request_id": GetRequestID(c),
				})
				return
			}
			SetFlashCookie(c, flashCodec, view.Flash{
				Kind:    view.FlashWarning,
				Message: "Please sign in to access the admin dashboard.",
			})
			c.Redirect(http.StatusFound, PathLogin)
			c.Abort()
			return
		}

		if !d.IsAdmin() {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error":      "forbidden",
					"request_id": GetRequestID(c),
				})
				return
			}
			c.Redirect(http.StatusFound, PathNotAuthorized)
			c.Abort()
			return
		}

		c.Next()
	}
}

// NotFound is the catch-all rule: admins land on the dashboard, signed-in
// non-admins on the not-authorized page, everyone else on the login page.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		d := CurrentSession(c)
		switch {
		case d.IsAuthenticated() && d.IsAdmin():
			c.Redirect(http.StatusFound, PathDashboard)
		case d.IsAuthenticated():
			c.Redirect(http.StatusFound, PathNotAuthorized)
		default:
			c.Redirect(http.StatusFound, PathLogin)
		}
	}
}
