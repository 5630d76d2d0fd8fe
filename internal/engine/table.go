package engine

import "fmt"

// Table is one player's session: the balance that persists across
// rounds plus the current round, if any. All actions are synchronous
// and single-owner; callers must not share a Table across goroutines.
type Table struct {
	balance int

	round      *round
	lastResult RoundResult
	lastPayout int

	// newDeck builds the shuffled deck for each round. Tests override
	// it to stack known cards.
	newDeck func() *Deck
}

func NewTable(startBalance int) *Table {
	return &Table{
		balance: startBalance,
		newDeck: func() *Deck {
			d := NewDeck()
			d.Shuffle()
			return d
		},
	}
}

// Phase is the observable round state. Between rounds it is
// PhaseBetting; a resolved round stays PhaseResolved until the next
// PlaceBets, which the presentation layer issues whenever it decides
// the restart delay has passed.
func (t *Table) Phase() Phase {
	if t.round == nil {
		return PhaseBetting
	}
	return t.round.phase
}

// PlaceBets commits the four wagers, debits the balance and starts a
// new round with a fresh shuffled deck.
func (t *Table) PlaceBets(main, trigger, side, progressive int) error {
	if t.round != nil && t.round.phase != PhaseResolved {
		return ErrActionRejected
	}

	wagers := WagerSet{Main: main, Trigger: trigger, Side: side, Progressive: progressive}
	balance, err := CommitWagers(wagers, t.balance)
	if err != nil {
		return err
	}

	r, err := newRound(wagers, t.newDeck())
	if err != nil {
		return fmt.Errorf("initial deal: %w", err)
	}

	t.balance = balance
	t.round = r
	return nil
}

// Hit deals one card to the player. Rejected once the shield has been
// used. A bust resolves the round immediately, with no dealer play.
func (t *Table) Hit() error {
	r := t.round
	if r == nil || r.phase != PhasePlayerTurn || r.shieldUsed {
		return ErrActionRejected
	}

	if err := r.drawPlayer(); err != nil {
		return t.failRound(err)
	}
	if r.playerScore > 21 {
		t.resolve(OutcomePlayerBust)
	}
	return nil
}

// Stand ends the player's turn and runs the dealer to resolution.
func (t *Table) Stand() error {
	r := t.round
	if r == nil || r.phase != PhasePlayerTurn {
		return ErrActionRejected
	}
	return t.playDealer()
}

// DoubleDown doubles the main bet, debiting the original amount a
// second time, deals exactly one card and ends the player's turn.
// The affordability guard compares the pre-doubling main bet against
// the current balance.
func (t *Table) DoubleDown() error {
	r := t.round
	if r == nil || r.phase != PhasePlayerTurn || r.doubleUsed {
		return ErrActionRejected
	}
	if r.wagers.Main > t.balance {
		return fmt.Errorf("double down: %w", ErrInsufficientBalance)
	}

	t.balance -= r.wagers.Main
	r.wagers.Main *= 2
	r.doubleUsed = true

	if err := r.drawPlayer(); err != nil {
		return t.failRound(err)
	}
	if r.playerScore > 21 {
		t.resolve(OutcomePlayerBust)
		return nil
	}
	return t.playDealer()
}

// ActivateShield draws one card speculatively: a card that would bust
// is discarded from play, otherwise it joins the hand. Either way the
// shield is spent and the player's turn ends. Only available once per
// round and only at a score of 17 or more.
func (t *Table) ActivateShield() error {
	r := t.round
	if r == nil || r.phase != PhasePlayerTurn || r.shieldUsed || r.playerScore < 17 {
		return ErrActionRejected
	}

	card, err := r.deck.Deal()
	if err != nil {
		return t.failRound(err)
	}
	r.shieldUsed = true

	trial := append(append([]Card(nil), r.player...), card)
	if Score(trial) <= 21 {
		r.applyPlayerCard(card)
	}

	if r.playerScore > 21 {
		t.resolve(OutcomePlayerBust)
		return nil
	}
	return t.playDealer()
}

func (t *Table) playDealer() error {
	r := t.round
	r.phase = PhaseDealerTurn
	if err := r.dealerPlay(); err != nil {
		return t.failRound(err)
	}
	t.resolve(r.compare())
	return nil
}

// resolve settles the round: the payout is computed from the outcome
// and side-condition flags and credited in one transaction.
func (t *Table) resolve(outcome Outcome) {
	r := t.round
	r.phase = PhaseResolved

	t.lastResult = RoundResult{
		Outcome:        outcome,
		Wagers:         r.wagers,
		Blackjack:      r.blackjack,
		Multiplier:     r.multiplier,
		ShieldUsed:     r.shieldUsed,
		DoubleDownUsed: r.doubleUsed,
		SideBetWon:     r.sideBetWon,
		ProgressiveWon: r.progressiveWon,
	}
	t.lastPayout = CalculatePayout(t.lastResult)
	t.balance += t.lastPayout
}

// failRound abandons the round after a deck exhaustion. The stakes are
// already debited and nothing is paid out; the table returns to a
// resolved state so the session can continue.
func (t *Table) failRound(err error) error {
	r := t.round
	r.phase = PhaseResolved
	t.lastResult = RoundResult{Outcome: OutcomeNone, Wagers: r.wagers}
	t.lastPayout = 0
	return fmt.Errorf("round failed: %w", err)
}

func (t *Table) Balance() int {
	return t.balance
}

func (t *Table) PlayerHand() []Card {
	if t.round == nil {
		return nil
	}
	return append([]Card(nil), t.round.player...)
}

// DealerHand returns the dealer's cards. With reveal false only the
// first card is shown, the way the table looks during the player's
// turn.
func (t *Table) DealerHand(reveal bool) []Card {
	if t.round == nil {
		return nil
	}
	if !reveal {
		return append([]Card(nil), t.round.dealer[:1]...)
	}
	return append([]Card(nil), t.round.dealer...)
}

func (t *Table) PlayerScore() int {
	if t.round == nil {
		return 0
	}
	return t.round.playerScore
}

func (t *Table) DealerScore() int {
	if t.round == nil {
		return 0
	}
	return t.round.dealerScore
}

// Multiplier is the trigger-bet multiplier fixed at deal time (4 or 1).
func (t *Table) Multiplier() int {
	if t.round == nil {
		return 1
	}
	return t.round.multiplier
}

func (t *Table) Wagers() WagerSet {
	if t.round == nil {
		return WagerSet{}
	}
	return t.round.wagers
}

// CanDouble reports whether double-down would be accepted right now.
func (t *Table) CanDouble() bool {
	r := t.round
	return r != nil && r.phase == PhasePlayerTurn && !r.doubleUsed &&
		r.wagers.Main <= t.balance
}

// ShieldAvailable reports whether the shield would be accepted right
// now. Presentation layers may narrow this further (the original table
// only surfaced the button alongside a trigger bet).
func (t *Table) ShieldAvailable() bool {
	r := t.round
	return r != nil && r.phase == PhasePlayerTurn && !r.shieldUsed &&
		r.playerScore >= 17
}

func (t *Table) LastOutcome() Outcome {
	return t.lastResult.Outcome
}

func (t *Table) LastPayout() int {
	return t.lastPayout
}

func (t *Table) LastResult() RoundResult {
	return t.lastResult
}
