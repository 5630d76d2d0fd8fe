package engine

import "errors"

var (
	ErrInvalidBet          = errors.New("bet amounts must be non-negative")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrActionRejected      = errors.New("action not allowed in current state")
)

// WagerSet holds the four bet amounts for one round. The amounts are
// fixed at round start; Main may be doubled exactly once via double-down.
type WagerSet struct {
	Main        int
	Trigger     int
	Side        int
	Progressive int
}

func (w WagerSet) Total() int {
	return w.Main + w.Trigger + w.Side + w.Progressive
}

func (w WagerSet) Validate() error {
	if w.Main < 0 || w.Trigger < 0 || w.Side < 0 || w.Progressive < 0 {
		return ErrInvalidBet
	}
	return nil
}

// CommitWagers validates the set against the balance and returns the
// balance debited by the total.
func CommitWagers(w WagerSet, balance int) (int, error) {
	if err := w.Validate(); err != nil {
		return balance, err
	}
	if w.Total() > balance {
		return balance, ErrInsufficientBalance
	}
	return balance - w.Total(), nil
}
