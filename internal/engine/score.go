package engine

// Score sums a hand with aces counted at 11, then softens aces to 1
// one at a time while the total is over 21.
func Score(hand []Card) int {
	score := 0
	aces := 0

	for _, card := range hand {
		score += card.Value()
		if card.Rank == Ace {
			aces++
		}
	}

	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

type BlackjackType string

const (
	BlackjackNone      BlackjackType = ""
	BlackjackTwoCard   BlackjackType = "2-card"
	BlackjackThreeCard BlackjackType = "3-card"
)

// ClassifyBlackjack reports whether the hand is a 2-card or 3-card 21.
// Must be re-evaluated every time the hand changes.
func ClassifyBlackjack(hand []Card) BlackjackType {
	if Score(hand) != 21 {
		return BlackjackNone
	}
	switch len(hand) {
	case 2:
		return BlackjackTwoCard
	case 3:
		return BlackjackThreeCard
	}
	return BlackjackNone
}

func IsBust(hand []Card) bool {
	return Score(hand) > 21
}
