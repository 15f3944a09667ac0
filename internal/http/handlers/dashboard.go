package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neekunjchaturvedi/kisanfront/internal/http/middleware"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/render"
)

func Dashboard(c *gin.Context) {
	d := middleware.CurrentSession(c)
	render.Page(c, http.StatusOK, "dashboard.tmpl", gin.H{
		"Email": d.UserEmail,
	})
}

// NotAuthorized is reachable by any signed-in user; the back-to-login
// button posts to /logout so the whole session is cleared first.
func NotAuthorized(c *gin.Context) {
	render.Page(c, http.StatusOK, "not_authorized.tmpl", nil)
}
