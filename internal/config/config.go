package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Fail modes for the contact rate limiter when the count query errors:
// "open" lets the request through, "closed" rejects it.
const (
	RateLimitFailOpen   = "open"
	RateLimitFailClosed = "closed"
)

// ErrDatabaseNotConfigured is returned when neither DATABASE_URL nor
// DATABASE_PATH is set. Booting with an empty credential would silently
// disable persistence, so the server refuses to start instead.
var ErrDatabaseNotConfigured = errors.New("config: DATABASE_URL or DATABASE_PATH must be set")

// AppConfig bundles everything the server needs from the environment.
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabaseURL       string
	DatabasePath      string
	SessionSecret     string
	GinMode           string
	UploadDir         string
	UploadURLPath     string
	AdminUserName     string
	AdminPassword     string
	ContactRateLimit  int
	ContactRateWindow time.Duration
	ContactFailMode   string
}

// Load reads the application config from environment variables, applying
// safe defaults for everything except the database location.
func Load() (AppConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databaseURL == "" && databasePath == "" {
		return AppConfig{}, ErrDatabaseNotConfigured
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "listeningclub-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	uploadURLPath := strings.TrimSpace(os.Getenv("UPLOAD_URL_PATH"))
	if uploadURLPath == "" {
		uploadURLPath = "/uploads"
	}

	failMode := strings.TrimSpace(strings.ToLower(os.Getenv("CONTACT_RATE_FAIL_MODE")))
	if failMode != RateLimitFailClosed {
		failMode = RateLimitFailOpen
	}

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabaseURL:       databaseURL,
		DatabasePath:      databasePath,
		SessionSecret:     sessionSecret,
		GinMode:           ginMode,
		UploadDir:         uploadDir,
		UploadURLPath:     uploadURLPath,
		AdminUserName:     strings.TrimSpace(os.Getenv("ADMIN_USER_NAME")),
		AdminPassword:     strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		ContactRateLimit:  parsePositiveInt(os.Getenv("CONTACT_RATE_LIMIT"), 5),
		ContactRateWindow: parseWindow(os.Getenv("CONTACT_RATE_WINDOW"), time.Hour),
		ContactFailMode:   failMode,
	}, nil
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func parseWindow(raw string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
