package middleware

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// The gorilla/csrf handler wraps the whole gin engine in cmd/web; these
// helpers expose the per-request token to templates.

func GetCSRFToken(c *gin.Context) string {
	return csrf.Token(c.Request)
}

func CSRFField(c *gin.Context) template.HTML {
	return csrf.TemplateField(c.Request)
}
