package engine

import (
	"errors"
	"math/rand"
)

var ErrEmptyDeck = errors.New("deck is empty")

type Suit string

const (
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
	Spades   Suit = "Spades"
)

// Red reports the card's color class: Hearts and Diamonds are red,
// Clubs and Spades are black.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

type Rank string

const (
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

var suits = []Suit{Hearts, Diamonds, Clubs, Spades}

var ranks = []Rank{"2", "3", "4", "5", "6", "7", "8", "9", "10", Jack, Queen, King, Ace}

var rankValues = map[Rank]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	Jack: 10, Queen: 10, King: 10, Ace: 11,
}

type Card struct {
	Suit Suit
	Rank Rank
}

// Value is the card's blackjack value with aces counted high.
func (c Card) Value() int {
	return rankValues[c.Rank]
}

func (c Card) IsFace() bool {
	return c.Rank == Jack || c.Rank == Queen || c.Rank == King
}

func (c Card) String() string {
	return string(c.Rank) + " of " + string(c.Suit)
}

type Deck struct {
	cards []Card
}

// NewDeck builds all 52 suit×rank combinations in canonical order.
func NewDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for _, s := range suits {
		for _, r := range ranks {
			d.cards = append(d.cards, Card{Suit: s, Rank: r})
		}
	}
	return d
}

// Shuffle permutes the deck in place with a backward Fisher–Yates pass.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the last card of the deck.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
