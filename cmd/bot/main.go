package main

import (
	"log"

	"github.com/sd0hni/pulsejack/internal/bot"
	"github.com/sd0hni/pulsejack/internal/config"
	"github.com/sd0hni/pulsejack/internal/database"
	"github.com/sd0hni/pulsejack/internal/history"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Println("Database ready")

	repo := history.NewRepository(db.DB)

	b, err := bot.New(cfg, repo)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	if err := b.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
