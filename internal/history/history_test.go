package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sd0hni/pulsejack/internal/database"
	"github.com/sd0hni/pulsejack/internal/engine"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB)
}

func TestRecordAndStats(t *testing.T) {
	repo := newTestRepo(t)

	win := FromResult(1, engine.RoundResult{
		Outcome:    engine.OutcomePlayerWin,
		Wagers:     engine.WagerSet{Main: 100, Trigger: 50},
		Multiplier: 4,
		ShieldUsed: true,
	}, 500)
	loss := FromResult(1, engine.RoundResult{
		Outcome: engine.OutcomeDealerWin,
		Wagers:  engine.WagerSet{Main: 100},
	}, 0)

	assert.NotEmpty(t, win.ID)
	assert.NotEqual(t, win.ID, loss.ID)

	require.NoError(t, repo.Record(win))
	require.NoError(t, repo.Record(loss))

	s, err := repo.StatsFor(1)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Rounds)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 250, s.Wagered)
	assert.Equal(t, 500, s.Paid)
	assert.InDelta(t, 50.0, s.WinRate, 0.01)
}

func TestStatsForEmptyChat(t *testing.T) {
	repo := newTestRepo(t)

	s, err := repo.StatsFor(42)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rounds)
	assert.Equal(t, 0.0, s.WinRate)
}

func TestTopByWinnings(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Record(FromResult(1, engine.RoundResult{
		Outcome: engine.OutcomeDealerBust,
		Wagers:  engine.WagerSet{Main: 100},
	}, 200)))
	require.NoError(t, repo.Record(FromResult(2, engine.RoundResult{
		Outcome:        engine.OutcomePlayerWin,
		Wagers:         engine.WagerSet{Main: 100, Progressive: 10},
		ProgressiveWon: true,
	}, 1400)))

	top, err := repo.TopByWinnings(10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, int64(2), top[0].ChatID)
	assert.Equal(t, 1400, top[0].Paid)
	assert.Equal(t, int64(1), top[1].ChatID)
}
