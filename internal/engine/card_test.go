package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeckCanonicalOrder(t *testing.T) {
	d := NewDeck()

	assert.Equal(t, 52, d.Remaining())
	assert.Equal(t, Card{Suit: Hearts, Rank: "2"}, d.cards[0])
	assert.Equal(t, Card{Suit: Hearts, Rank: Ace}, d.cards[12])
	assert.Equal(t, Card{Suit: Diamonds, Rank: "2"}, d.cards[13])
	assert.Equal(t, Card{Suit: Spades, Rank: Ace}, d.cards[51])

	seen := make(map[Card]bool)
	for _, c := range d.cards {
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestDealExhaustsDeck(t *testing.T) {
	d := NewDeck()
	d.Shuffle()

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, err := d.Deal()
		assert.NoError(t, err)
		assert.False(t, seen[card], "card %s dealt twice", card)
		seen[card] = true
	}

	assert.Equal(t, 0, d.Remaining())
	_, err := d.Deal()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestDealReturnsLastCard(t *testing.T) {
	d := NewDeck()
	card, err := d.Deal()
	assert.NoError(t, err)
	assert.Equal(t, Card{Suit: Spades, Rank: Ace}, card)
	assert.Equal(t, 51, d.Remaining())
}

func TestShufflePreservesCards(t *testing.T) {
	d := NewDeck()

	before := make(map[Card]int)
	for _, c := range d.cards {
		before[c]++
	}

	d.Shuffle()

	after := make(map[Card]int)
	for _, c := range d.cards {
		after[c]++
	}

	assert.Equal(t, before, after)
	assert.Equal(t, 52, d.Remaining())
}

func TestCardValue(t *testing.T) {
	assert.Equal(t, 2, Card{Suit: Hearts, Rank: "2"}.Value())
	assert.Equal(t, 10, Card{Suit: Clubs, Rank: "10"}.Value())
	assert.Equal(t, 10, Card{Suit: Spades, Rank: Jack}.Value())
	assert.Equal(t, 10, Card{Suit: Hearts, Rank: Queen}.Value())
	assert.Equal(t, 10, Card{Suit: Diamonds, Rank: King}.Value())
	assert.Equal(t, 11, Card{Suit: Spades, Rank: Ace}.Value())
}

func TestSuitColor(t *testing.T) {
	assert.True(t, Hearts.Red())
	assert.True(t, Diamonds.Red())
	assert.False(t, Clubs.Red())
	assert.False(t, Spades.Red())
}
