package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hand(ranks ...Rank) []Card {
	suits := []Suit{Hearts, Clubs, Diamonds, Spades}
	cards := make([]Card, len(ranks))
	for i, r := range ranks {
		cards[i] = Card{Suit: suits[i%len(suits)], Rank: r}
	}
	return cards
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		hand  []Card
		score int
	}{
		{"numerals", hand("2", "9"), 11},
		{"faces count ten", hand(Jack, Queen, King), 30},
		{"ace high", hand(Ace, "9"), 20},
		{"natural", hand(Ace, King), 21},
		{"one ace softened", hand(Ace, "9", "5"), 15},
		{"two aces, one softened", hand(Ace, Ace, "9"), 21},
		{"two aces both softened", hand(Ace, Ace, "9", "8"), 19},
		{"three aces", hand(Ace, Ace, Ace), 13},
		{"four aces", hand(Ace, Ace, Ace, Ace), 14},
		{"bust past all aces", hand(Ace, King, Queen, "5"), 26},
		{"empty hand", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.score, Score(tt.hand))
		})
	}
}

// The final score must not depend on where aces sit in the hand.
func TestScoreAceOrderIrrelevant(t *testing.T) {
	orders := [][]Card{
		hand(Ace, "9", Ace),
		hand("9", Ace, Ace),
		hand(Ace, Ace, "9"),
	}
	for _, cards := range orders {
		assert.Equal(t, 21, Score(cards))
	}

	orders = [][]Card{
		hand(Ace, King, "5", Ace),
		hand(King, Ace, Ace, "5"),
		hand("5", Ace, King, Ace),
	}
	for _, cards := range orders {
		assert.Equal(t, 17, Score(cards))
	}
}

func TestClassifyBlackjack(t *testing.T) {
	assert.Equal(t, BlackjackTwoCard, ClassifyBlackjack(hand(Ace, King)))
	assert.Equal(t, BlackjackThreeCard, ClassifyBlackjack(hand(Ace, "5", "5")))
	assert.Equal(t, BlackjackThreeCard, ClassifyBlackjack(hand("7", "7", "7")))
	assert.Equal(t, BlackjackNone, ClassifyBlackjack(hand(King, Queen)))
	assert.Equal(t, BlackjackNone, ClassifyBlackjack(hand("5", "5", "5", "6")))
	assert.Equal(t, BlackjackNone, ClassifyBlackjack(hand(King, Queen, "5")))
}

func TestIsBust(t *testing.T) {
	assert.False(t, IsBust(hand(King, Queen)))
	assert.True(t, IsBust(hand(King, Queen, "5")))
	assert.False(t, IsBust(hand(King, Queen, Ace)))
}
