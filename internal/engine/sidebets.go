package engine

// SideBetWon reports whether the player's first two cards are both
// face cards (J, Q or K), any suits.
func SideBetWon(hand []Card) bool {
	if len(hand) < 2 {
		return false
	}
	return hand[0].IsFace() && hand[1].IsFace()
}

// ProgressiveWon reports the jackpot condition: a progressive bet was
// placed and the player holds exactly three cards of one color class.
func ProgressiveWon(hand []Card, progressiveBet int) bool {
	if len(hand) != 3 || progressiveBet <= 0 {
		return false
	}
	red := hand[0].Suit.Red()
	for _, card := range hand[1:] {
		if card.Suit.Red() != red {
			return false
		}
	}
	return true
}

// TriggerMultiplier returns 4 when the dealer's initial score activates
// the trigger bet, otherwise 1. Evaluated once, from the dealer's
// two-card hand, before the dealer draws.
func TriggerMultiplier(dealerScore, triggerBet int) int {
	if dealerScore >= 19 && triggerBet > 0 {
		return 4
	}
	return 1
}
