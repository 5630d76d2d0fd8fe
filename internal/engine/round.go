package engine

type Phase string

const (
	PhaseBetting    Phase = "BETTING"
	PhasePlayerTurn Phase = "PLAYER_TURN"
	PhaseDealerTurn Phase = "DEALER_TURN"
	PhaseResolved   Phase = "RESOLVED"
)

type Outcome string

const (
	OutcomeNone       Outcome = ""
	OutcomePlayerBust Outcome = "PLAYER_BUST"
	OutcomeDealerBust Outcome = "DEALER_BUST"
	OutcomePlayerWin  Outcome = "PLAYER_WIN"
	OutcomeDealerWin  Outcome = "DEALER_WIN"
	OutcomeTie        Outcome = "TIE"
)

// Won reports whether the outcome pays the player.
func (o Outcome) Won() bool {
	return o == OutcomePlayerWin || o == OutcomeDealerBust
}

// round holds all per-round state: hands, deck, wagers and the derived
// side-condition flags. Owned by a Table for the lifetime of one round;
// nothing here survives into the next round.
type round struct {
	deck   *Deck
	wagers WagerSet

	player []Card
	dealer []Card

	playerScore int
	dealerScore int

	multiplier     int
	sideBetWon     bool
	progressiveWon bool
	blackjack      BlackjackType
	shieldUsed     bool
	doubleUsed     bool

	phase Phase
}

// newRound deals two cards to each party and runs the initial-deal side
// condition checks. The trigger multiplier is fixed here, from the
// dealer's two-card score, and never re-evaluated.
func newRound(w WagerSet, deck *Deck) (*round, error) {
	r := &round{
		deck:       deck,
		wagers:     w,
		player:     make([]Card, 0, 10),
		dealer:     make([]Card, 0, 10),
		multiplier: 1,
		phase:      PhasePlayerTurn,
	}

	for i := 0; i < 2; i++ {
		card, err := deck.Deal()
		if err != nil {
			return nil, err
		}
		r.player = append(r.player, card)
	}
	for i := 0; i < 2; i++ {
		card, err := deck.Deal()
		if err != nil {
			return nil, err
		}
		r.dealer = append(r.dealer, card)
	}

	r.playerScore = Score(r.player)
	r.dealerScore = Score(r.dealer)
	r.sideBetWon = SideBetWon(r.player)
	r.multiplier = TriggerMultiplier(r.dealerScore, w.Trigger)
	r.blackjack = ClassifyBlackjack(r.player)

	return r, nil
}

// applyPlayerCard appends a card to the player's hand and recomputes
// everything derived from it. The jackpot check runs when the hand
// grows to exactly three cards, whichever action dealt the third.
func (r *round) applyPlayerCard(card Card) {
	r.player = append(r.player, card)
	r.playerScore = Score(r.player)
	r.blackjack = ClassifyBlackjack(r.player)
	if len(r.player) == 3 {
		r.progressiveWon = ProgressiveWon(r.player, r.wagers.Progressive)
	}
}

func (r *round) drawPlayer() error {
	card, err := r.deck.Deal()
	if err != nil {
		return err
	}
	r.applyPlayerCard(card)
	return nil
}

// dealerPlay draws until the dealer reaches 17, soft or hard.
func (r *round) dealerPlay() error {
	for r.dealerScore < 17 {
		card, err := r.deck.Deal()
		if err != nil {
			return err
		}
		r.dealer = append(r.dealer, card)
		r.dealerScore = Score(r.dealer)
	}
	return nil
}

func (r *round) compare() Outcome {
	switch {
	case r.dealerScore > 21:
		return OutcomeDealerBust
	case r.playerScore > r.dealerScore:
		return OutcomePlayerWin
	case r.playerScore == r.dealerScore:
		return OutcomeTie
	default:
		return OutcomeDealerWin
	}
}
