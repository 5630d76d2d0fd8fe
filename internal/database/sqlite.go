package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS rounds (
		id TEXT PRIMARY KEY,
		chat_id INTEGER NOT NULL,
		main_bet INTEGER NOT NULL,
		trigger_bet INTEGER NOT NULL,
		side_bet INTEGER NOT NULL,
		progressive_bet INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		payout INTEGER NOT NULL,
		blackjack TEXT NOT NULL DEFAULT '',
		multiplier INTEGER NOT NULL DEFAULT 1,
		shield_used INTEGER NOT NULL DEFAULT 0,
		side_bet_won INTEGER NOT NULL DEFAULT 0,
		progressive_won INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_rounds_chat ON rounds(chat_id);
	`

	_, err := db.Exec(schema)
	return err
}
