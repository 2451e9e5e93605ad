package main

import (
	"log/slog"
	"os"

	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/config"
	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/database"
	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/handlers"
	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/models"

	_ "github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/docs"

	"github.com/lmittmann/tint"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Quiz Game Service API
// @version         1.0
// @description     Question bank, game runs, stats and leaderboard for the quiz web game.
// @BasePath        /

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelInfo})))

	cfg := config.Load()

	db, err := database.Connect(cfg.GameDatabaseURL, "game.db")
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db, &models.Question{}, &models.GameRun{}); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	r := handlers.NewGameRouter(db)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	slog.Info("game service listening", "port", cfg.GamePort)
	if err := r.Run(":" + cfg.GamePort); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
