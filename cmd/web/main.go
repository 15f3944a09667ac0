package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"log/slog"

	"github.com/gorilla/csrf"
	"github.com/joho/godotenv"

	"github.com/neekunjchaturvedi/kisanfront/internal/api"
	"github.com/neekunjchaturvedi/kisanfront/internal/config"
	apphttp "github.com/neekunjchaturvedi/kisanfront/internal/http"
	"github.com/neekunjchaturvedi/kisanfront/internal/session"
	"github.com/neekunjchaturvedi/kisanfront/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout)

	sessions := session.NewCookieStore(session.CookieOptions{
		Key:    cfg.SessionKey,
		Secure: cfg.CookieSecure,
		Domain: cfg.CookieDomain,
	})
	sessions.Subscribe(func(d session.Data) {
		if d.IsAuthenticated() {
			logger.Info("session_changed", "user_id", d.UserID, "role", d.UserRole)
		} else {
			logger.Info("session_cleared")
		}
	})

	uploads, err := storage.FromEnv(context.Background(), cfg.StorageDriver, client)
	if err != nil {
		log.Fatalf("failed to configure upload storage: %v", err)
	}
	logger.Info("upload storage ready", "driver", uploads.Driver)

	r := apphttp.NewRouter(apphttp.RouterDeps{
		Logger:   logger,
		Config:   cfg,
		API:      client,
		Sessions: sessions,
		Uploads:  uploads.Storage,
	})

	protect := csrf.Protect(cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.Path("/"),
	)

	logger.Info("listening", "port", cfg.Port, "api", cfg.APIBaseURL)
	if err := http.ListenAndServe(":"+cfg.Port, protect(r)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
