package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	GameDatabaseURL string
	UserDatabaseURL string
	GamePort        string
	UserPort        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		GameDatabaseURL: getEnv("GAME_DATABASE_URL", ""),
		UserDatabaseURL: getEnv("USER_DATABASE_URL", ""),
		GamePort:        getEnv("GAME_SERVICE_PORT", "8000"),
		UserPort:        getEnv("USER_SERVICE_PORT", "8001"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
