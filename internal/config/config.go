package config

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port          string
	APIBaseURL    string // remote Kisan Saathi REST API, e.g. http://localhost:5000
	APITimeout    time.Duration
	SessionKey    []byte
	FlashSecret   []byte
	CSRFKey       []byte
	CookieSecure  bool
	CookieDomain  string
	StorageDriver string // remote | local | s3
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		APIBaseURL:    strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000"), "/"),
		CookieSecure:  getEnv("COOKIE_SECURE", "false") == "true",
		CookieDomain:  getEnv("COOKIE_DOMAIN", ""),
		StorageDriver: getEnv("STORAGE_DRIVER", "remote"),
	}

	timeout := getEnv("API_TIMEOUT", "15s")
	d, err := time.ParseDuration(timeout)
	if err != nil {
		slog.Warn("Invalid API_TIMEOUT, falling back to 15s", "value", timeout)
		d = 15 * time.Second
	}
	cfg.APITimeout = d

	cfg.SessionKey = keyFromEnv("SESSION_KEY")
	cfg.FlashSecret = keyFromEnv("FLASH_SECRET")
	cfg.CSRFKey = keyFromEnv("CSRF_KEY")

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT environment variable. Falling back to default.", "PORT", os.Getenv("PORT"))
		cfg.Port = "8080"
	}

	return cfg, nil
}

// keyFromEnv decodes a base64 secret, generating a random development key
// when missing or too short. Sessions and flashes do not survive a restart
// with a generated key.
func keyFromEnv(name string) []byte {
	raw := os.Getenv(name)
	if raw == "" {
		slog.Warn(name + " not set. Generating a random key for development. PLEASE SET " + name + " IN PRODUCTION!")
		return randomBytes(32)
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(decoded) < 32 {
		slog.Warn(name + " is invalid or too short (min 32 bytes). Generating a random key for development.")
		return randomBytes(32)
	}
	return decoded
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		slog.Error("Failed to read random bytes", "error", err)
		// panic-prevention fallback only, never for production keys
		pad := make([]byte, n)
		copy(pad, "fallback-insecure-key-"+strconv.FormatInt(time.Now().UnixNano(), 10))
		return pad
	}
	return b
}
