package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken     string
	DatabasePath string
	StartBalance int
	MinBet       int
	MaxBet       int
}

func Load() (*Config, error) {
	godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}

	// In-memory by default: round history lives only for the session.
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	return &Config{
		BotToken:     token,
		DatabasePath: dbPath,
		StartBalance: 5000,
		MinBet:       10,
		MaxBet:       10000,
	}, nil
}
