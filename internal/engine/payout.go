package engine

// Payout multiples, stake included where the bet returns one.
const (
	winMultiple                = 2 // 1:1 profit
	twoCardBlackjackMultiple   = 3
	threeCardBlackjackMultiple = 4
	triggerMultiplied          = 4
	triggerShielded            = 2
	triggerMultipliedShielded  = 6
	sideBetMultiple            = 4
	progressiveMultiple        = 100
)

// RoundResult is the resolved-round snapshot the payout table and the
// presentation layer consume.
type RoundResult struct {
	Outcome        Outcome
	Wagers         WagerSet
	Blackjack      BlackjackType
	Multiplier     int
	ShieldUsed     bool
	DoubleDownUsed bool
	SideBetWon     bool
	ProgressiveWon bool
}

// CalculatePayout converts a resolved round into the total amount
// credited back to the balance. Losses and ties pay nothing: a tie
// forfeits all stakes, including the main bet.
func CalculatePayout(res RoundResult) int {
	if !res.Outcome.Won() {
		return 0
	}

	total := 0

	switch res.Blackjack {
	case BlackjackTwoCard:
		total += res.Wagers.Main * twoCardBlackjackMultiple
	case BlackjackThreeCard:
		total += res.Wagers.Main * threeCardBlackjackMultiple
	default:
		total += res.Wagers.Main * winMultiple
	}

	if res.Wagers.Trigger > 0 {
		switch {
		case res.Multiplier == 4 && res.ShieldUsed:
			total += res.Wagers.Trigger * triggerMultipliedShielded
		case res.Multiplier == 4:
			total += res.Wagers.Trigger * triggerMultiplied
		case res.ShieldUsed:
			total += res.Wagers.Trigger * triggerShielded
		}
	}

	if res.SideBetWon {
		total += res.Wagers.Side * sideBetMultiple
	}

	if res.ProgressiveWon {
		total += res.Wagers.Progressive * progressiveMultiple
	}

	return total
}
