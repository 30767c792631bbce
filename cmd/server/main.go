package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/listeningclub/internal/config"
	"github.com/listeningclub/internal/db"
	"github.com/listeningclub/internal/handler"
	"github.com/listeningclub/internal/logging"
	"github.com/listeningclub/internal/router"
	"github.com/listeningclub/internal/storage"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabaseURL, cfg.DatabasePath); err != nil {
		logging.Fatal("failed to initialize database", "error", err)
	}

	store := storage.NewLocalStorage(cfg.UploadDir, cfg.UploadURLPath)
	api := handler.NewAPI(db.DB, store, cfg)

	r := router.SetupRouter(api, cfg.SessionSecret, cfg.UploadDir, cfg.UploadURLPath)

	slog.Info("server starting", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logging.Fatal("failed to run server", "error", err)
	}
}
