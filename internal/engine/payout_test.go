package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayoutMainBet(t *testing.T) {
	base := RoundResult{
		Outcome:    OutcomePlayerWin,
		Wagers:     WagerSet{Main: 100},
		Multiplier: 1,
	}

	plain := base
	assert.Equal(t, 200, CalculatePayout(plain))

	twoCard := base
	twoCard.Blackjack = BlackjackTwoCard
	assert.Equal(t, 300, CalculatePayout(twoCard))

	threeCard := base
	threeCard.Blackjack = BlackjackThreeCard
	assert.Equal(t, 400, CalculatePayout(threeCard))
}

func TestPayoutTriggerBet(t *testing.T) {
	base := RoundResult{
		Outcome: OutcomePlayerWin,
		Wagers:  WagerSet{Main: 100, Trigger: 50},
	}

	multipliedShielded := base
	multipliedShielded.Multiplier = 4
	multipliedShielded.ShieldUsed = true
	assert.Equal(t, 200+300, CalculatePayout(multipliedShielded))

	multiplied := base
	multiplied.Multiplier = 4
	assert.Equal(t, 200+200, CalculatePayout(multiplied))

	shielded := base
	shielded.Multiplier = 1
	shielded.ShieldUsed = true
	assert.Equal(t, 200+100, CalculatePayout(shielded))

	// Trigger bet is lost outright on a plain win.
	plain := base
	plain.Multiplier = 1
	assert.Equal(t, 200, CalculatePayout(plain))
}

func TestPayoutSideAndProgressive(t *testing.T) {
	res := RoundResult{
		Outcome:        OutcomeDealerBust,
		Wagers:         WagerSet{Main: 100, Side: 20, Progressive: 10},
		Multiplier:     1,
		SideBetWon:     true,
		ProgressiveWon: true,
	}
	assert.Equal(t, 200+80+1000, CalculatePayout(res))

	res.SideBetWon = false
	res.ProgressiveWon = false
	assert.Equal(t, 200, CalculatePayout(res))
}

// Ties forfeit every stake, side bets included.
func TestPayoutTieAndLossPayNothing(t *testing.T) {
	for _, outcome := range []Outcome{OutcomeTie, OutcomeDealerWin, OutcomePlayerBust} {
		res := RoundResult{
			Outcome:        outcome,
			Wagers:         WagerSet{Main: 100, Trigger: 50, Side: 20, Progressive: 10},
			Blackjack:      BlackjackTwoCard,
			Multiplier:     4,
			ShieldUsed:     true,
			SideBetWon:     true,
			ProgressiveWon: true,
		}
		assert.Equal(t, 0, CalculatePayout(res), "outcome %s", outcome)
	}
}
