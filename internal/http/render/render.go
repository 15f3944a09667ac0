// Package render is the thin glue between handlers, templates and flashes.
package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neekunjchaturvedi/kisanfront/internal/http/flash"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/middleware"
	"github.com/neekunjchaturvedi/kisanfront/pkg/view"
)

// Page renders a named template with the shared chrome (flash, CSRF field,
// user name) merged into the payload.
func Page(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = middleware.GetFlash(c)
	}
	data["CSRFField"] = middleware.CSRFField(c)
	data["UserName"] = middleware.CurrentSession(c).UserName
	c.HTML(status, name, data)
}

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
