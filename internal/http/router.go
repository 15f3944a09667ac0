// Package http assembles the gin engine: middleware chain, template
// loading and the route surface the guards redirect between.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/neekunjchaturvedi/kisanfront/internal/api"
	"github.com/neekunjchaturvedi/kisanfront/internal/config"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/flash"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/handlers"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/middleware"
	"github.com/neekunjchaturvedi/kisanfront/internal/modules/auth"
	"github.com/neekunjchaturvedi/kisanfront/internal/modules/orders"
	"github.com/neekunjchaturvedi/kisanfront/internal/modules/products"
	"github.com/neekunjchaturvedi/kisanfront/internal/session"
	"github.com/neekunjchaturvedi/kisanfront/internal/storage"
)

type RouterDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	API      *api.Client
	Sessions session.Store
	Uploads  storage.Storage
}

func NewRouter(d RouterDeps) *gin.Engine {
	flashCodec := flash.NewCodec(d.Config.FlashSecret, "ks_flash", d.Config.CookieSecure)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.ErrorHandler(d.Logger))
	r.Use(middleware.FlashMiddleware(flashCodec))
	r.Use(middleware.SessionLoad(d.Sessions))

	r.LoadHTMLGlob("templates/*.tmpl")

	authSvc := auth.NewService(d.API, d.Sessions, d.Logger)
	sync := orders.NewSynchronizer(d.API)
	loader := products.NewLoader(d.API)

	authH := handlers.NewAuthHandlers(authSvc, flashCodec)
	ordersH := handlers.NewOrdersHandler(sync, flashCodec)
	productsH := handlers.NewProductsHandler(loader)
	addProductH := handlers.NewAddProductHandler(d.API, d.Uploads, flashCodec)

	// public entry; signed-in visitors are bounced to the dashboard
	r.GET(middleware.PathLogin, middleware.RedirectIfAuthenticated(), authH.LoginGet)
	r.POST("/login", middleware.RedirectIfAuthenticated(), authH.LoginPost)
	r.POST("/logout", authH.LogoutPost)

	// reachable by any signed-in user, admin or not
	r.GET(middleware.PathNotAuthorized, middleware.RequireAuth(flashCodec), handlers.NotAuthorized)

	// admin-only surface
	admin := r.Group("/", middleware.RequireAdmin(flashCodec))
	{
		admin.GET("/dashboard", handlers.Dashboard)

		admin.GET("/orders", ordersH.List)
		admin.POST("/orders/refresh", ordersH.Refresh)
		admin.GET("/orders/:id", ordersH.Detail)
		admin.POST("/orders/:id/status", ordersH.UpdateStatus)
		admin.POST("/orders/:id/cancel", ordersH.Cancel)

		admin.GET("/products", productsH.List)
		admin.GET("/products/addproduct", addProductH.Get)
		admin.POST("/products/addproduct", addProductH.Post)
		admin.POST("/products/upload-image", addProductH.UploadImage)
	}

	// catch-all: route by session state
	r.NoRoute(middleware.NotFound())

	return r
}
