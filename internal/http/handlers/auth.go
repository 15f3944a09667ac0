package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neekunjchaturvedi/kisanfront/internal/http/flash"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/middleware"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/render"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/validation"
	"github.com/neekunjchaturvedi/kisanfront/internal/modules/auth"
	"github.com/neekunjchaturvedi/kisanfront/internal/session"
	"github.com/neekunjchaturvedi/kisanfront/internal/shared/apperr"
	"github.com/neekunjchaturvedi/kisanfront/pkg/view"
)

type AuthHandlers struct {
	svc   *auth.Service
	flash *flash.Codec
}

func NewAuthHandlers(svc *auth.Service, flashCodec *flash.Codec) *AuthHandlers {
	return &AuthHandlers{svc: svc, flash: flashCodec}
}

// LoginGet renders the public entry page. RedirectIfAuthenticated has
// already bounced signed-in visitors to the dashboard.
func (h *AuthHandlers) LoginGet(c *gin.Context) {
	render.Page(c, http.StatusOK, "login.tmpl", gin.H{
		"Page": view.LoginPage{},
	})
}

type loginInput struct {
	Identifier string `form:"identifier" binding:"required"`
	Password   string `form:"password" binding:"required"`
	RememberMe bool   `form:"remember_me"`
}

func (h *AuthHandlers) LoginPost(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		render.Page(c, http.StatusBadRequest, "login.tmpl", gin.H{
			"Page": view.LoginPage{
				Form:   view.LoginForm{Identifier: in.Identifier, RememberMe: in.RememberMe},
				Errors: errs,
			},
		})
		return
	}

	role, err := h.svc.Login(c.Request.Context(), c.Writer, c.Request, in.Identifier, in.Password, in.RememberMe)
	if err != nil {
		// credentials / transport error: page-level message, not a field
		render.Page(c, apperr.HTTPStatus(err), "login.tmpl", gin.H{
			"Page": view.LoginPage{
				Form:      view.LoginForm{Identifier: in.Identifier, RememberMe: in.RememberMe},
				PageError: apperr.PublicMessage(err),
			},
		})
		return
	}

	dest := middleware.PathNotAuthorized
	if role == session.RoleAdmin {
		dest = middleware.PathDashboard
	}
	render.RedirectWithFlash(c, h.flash, dest, view.FlashSuccess, "Welcome back to Kisan Saathi dashboard!")
}

func (h *AuthHandlers) LogoutPost(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), c.Writer, c.Request); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.RedirectWithFlash(c, h.flash, middleware.PathLogin, view.FlashInfo, "You have been signed out.")
}
