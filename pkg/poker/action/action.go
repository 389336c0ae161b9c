package action

import (
	"fmt"

	"handscribe-server/pkg/poker/table"

	"github.com/google/uuid"
)

// Kind represents a kind of betting action
type Kind string

// kind constants
const (
	Posts  Kind = "posts"
	Bets   Kind = "bets"
	Raises Kind = "raises"
	Calls  Kind = "calls"
	Checks Kind = "checks"
	Folds  Kind = "folds"
)

var allowedKinds = map[Kind]bool{
	Posts:  true,
	Bets:   true,
	Raises: true,
	Calls:  true,
	Checks: true,
	Folds:  true,
}

// FromString returns a kind for the given identifier
func FromString(s string) (Kind, error) {
	if _, ok := allowedKinds[Kind(s)]; ok {
		return Kind(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (k Kind) String() string {
	switch k {
	case Posts:
		return "Posts"
	case Bets:
		return "Bets"
	case Raises:
		return "Raises"
	case Calls:
		return "Calls"
	case Checks:
		return "Checks"
	case Folds:
		return "Folds"
	}

	panic("unknown action")
}

// IsValid returns true if the kind is permitted
func (k Kind) IsValid() bool {
	_, ok := allowedKinds[k]
	return ok
}

// IsAggressive returns true for actions that put a new bet in front of the table
func (k Kind) IsAggressive() bool {
	return k == Bets || k == Raises || k == Posts
}

// IsInvestment returns true for actions that carry a street-investment amount
func (k Kind) IsInvestment() bool {
	return k == Bets || k == Raises || k == Calls || k == Posts
}

// Entry is a single recorded action.
// Amount always carries the player's new total investment for the street,
// not the delta added by this action.
type Entry struct {
	ID       string     `json:"id"`
	Position table.Seat `json:"position"`
	Kind     Kind       `json:"kind"`
	Amount   int        `json:"amount"`
}

// NewEntry returns a new entry with a generated ID
func NewEntry(position table.Seat, kind Kind, amount int) Entry {
	return Entry{
		ID:       uuid.New().String(),
		Position: position,
		Kind:     kind,
		Amount:   amount,
	}
}

// Validate checks the entry's internal invariants
func (e Entry) Validate() error {
	if !e.Kind.IsValid() {
		return fmt.Errorf("unknown action for identifier: %s", string(e.Kind))
	}

	if e.Position == "" {
		return fmt.Errorf("action %q is missing a position", string(e.Kind))
	}

	if !e.Kind.IsInvestment() && e.Amount != 0 {
		return fmt.Errorf("%s cannot carry an amount", string(e.Kind))
	}

	if e.Amount < 0 {
		return fmt.Errorf("%s cannot carry a negative amount", string(e.Kind))
	}

	return nil
}

// LogMessage returns a message formatted for the hand log
func (e Entry) LogMessage() string {
	switch e.Kind {
	case Posts:
		return fmt.Sprintf("%s posts %d", e.Position, e.Amount)
	case Bets:
		return fmt.Sprintf("%s bets %d", e.Position, e.Amount)
	case Raises:
		return fmt.Sprintf("%s raises to %d", e.Position, e.Amount)
	case Calls:
		return fmt.Sprintf("%s calls %d", e.Position, e.Amount)
	case Checks:
		return fmt.Sprintf("%s checks", e.Position)
	case Folds:
		return fmt.Sprintf("%s folds", e.Position)
	}

	return ""
}
