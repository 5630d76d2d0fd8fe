package history

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/sd0hni/pulsejack/internal/engine"
)

// Record is one resolved round as stored in the history table.
type Record struct {
	ID             string
	ChatID         int64
	Wagers         engine.WagerSet
	Outcome        engine.Outcome
	Payout         int
	Blackjack      engine.BlackjackType
	Multiplier     int
	ShieldUsed     bool
	SideBetWon     bool
	ProgressiveWon bool
}

// FromResult builds the record for a resolved round.
func FromResult(chatID int64, res engine.RoundResult, payout int) *Record {
	return &Record{
		ID:             uuid.NewString(),
		ChatID:         chatID,
		Wagers:         res.Wagers,
		Outcome:        res.Outcome,
		Payout:         payout,
		Blackjack:      res.Blackjack,
		Multiplier:     res.Multiplier,
		ShieldUsed:     res.ShieldUsed,
		SideBetWon:     res.SideBetWon,
		ProgressiveWon: res.ProgressiveWon,
	}
}

type Stats struct {
	ChatID  int64
	Rounds  int
	Wins    int
	Wagered int
	Paid    int
	WinRate float64
}

type Repository interface {
	Record(rec *Record) error
	StatsFor(chatID int64) (*Stats, error)
	TopByWinnings(limit int) ([]Stats, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Record(rec *Record) error {
	_, err := r.db.Exec(`
		INSERT INTO rounds (
			id, chat_id, main_bet, trigger_bet, side_bet, progressive_bet,
			outcome, payout, blackjack, multiplier,
			shield_used, side_bet_won, progressive_won
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.ChatID,
		rec.Wagers.Main, rec.Wagers.Trigger, rec.Wagers.Side, rec.Wagers.Progressive,
		string(rec.Outcome), rec.Payout, string(rec.Blackjack), rec.Multiplier,
		rec.ShieldUsed, rec.SideBetWon, rec.ProgressiveWon)

	if err != nil {
		return fmt.Errorf("failed to record round: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) StatsFor(chatID int64) (*Stats, error) {
	s := &Stats{ChatID: chatID}

	err := r.db.QueryRow(`
		SELECT COUNT(*),
			COALESCE(SUM(outcome IN ('PLAYER_WIN', 'DEALER_BUST')), 0),
			COALESCE(SUM(main_bet + trigger_bet + side_bet + progressive_bet), 0),
			COALESCE(SUM(payout), 0)
		FROM rounds WHERE chat_id = ?
	`, chatID).Scan(&s.Rounds, &s.Wins, &s.Wagered, &s.Paid)

	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	if s.Rounds > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Rounds) * 100
	}
	return s, nil
}

func (r *SQLiteRepository) TopByWinnings(limit int) ([]Stats, error) {
	rows, err := r.db.Query(`
		SELECT chat_id, COUNT(*),
			COALESCE(SUM(outcome IN ('PLAYER_WIN', 'DEALER_BUST')), 0),
			COALESCE(SUM(main_bet + trigger_bet + side_bet + progressive_bet), 0),
			COALESCE(SUM(payout), 0)
		FROM rounds
		GROUP BY chat_id
		ORDER BY SUM(payout) DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var s Stats
		if err := rows.Scan(&s.ChatID, &s.Rounds, &s.Wins, &s.Wagered, &s.Paid); err != nil {
			return nil, err
		}
		if s.Rounds > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Rounds) * 100
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
