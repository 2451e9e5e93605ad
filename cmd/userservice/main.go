package main

import (
	"log/slog"
	"os"

	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/config"
	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/database"
	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/handlers"
	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/models"

	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelInfo})))

	cfg := config.Load()

	db, err := database.Connect(cfg.UserDatabaseURL, "users.db")
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db, &models.User{}); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	r := handlers.NewUserRouter(db)

	slog.Info("user service listening", "port", cfg.UserPort)
	if err := r.Run(":" + cfg.UserPort); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
