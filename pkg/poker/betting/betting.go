// Package betting derives the state of a betting round from an action log.
// Nothing here is stored: every query replays the log it is given, so the
// same log always produces the same answer.
package betting

import (
	"handscribe-server/pkg/poker/action"
	"handscribe-server/pkg/poker/table"
)

// Round is the context for a single street's betting queries
type Round struct {
	Config  table.Config
	Order   []table.Seat
	Active  []table.Seat
	Actions []action.Entry
	Preflop bool
}

// FoldedSeats returns the seats that have folded in the log
func FoldedSeats(actions []action.Entry) map[table.Seat]bool {
	folded := make(map[table.Seat]bool)
	for _, a := range actions {
		if a.Kind == action.Folds {
			folded[a.Position] = true
		}
	}

	return folded
}

// StreetInvestments returns each seat's total investment for the street.
// Investment actions overwrite the running total rather than add to it,
// since every entry's amount is already the seat's new street total.
func StreetInvestments(actions []action.Entry) map[table.Seat]int {
	investments := make(map[table.Seat]int)
	for _, a := range actions {
		if a.Kind.IsInvestment() {
			investments[a.Position] = a.Amount
		}
	}

	return investments
}

// HighWater returns the street's current highest total investment.
// Preflop the big blind is the floor even when no post was recorded.
func (r Round) HighWater() int {
	high := 0
	if r.Preflop {
		high = r.Config.BigBlind
	}

	for _, a := range r.Actions {
		if a.Kind.IsAggressive() && a.Amount > high {
			high = a.Amount
		}
	}

	return high
}

// lastAggression returns the index of the most recent bet, raise, or post
func lastAggression(actions []action.Entry) int {
	for i := len(actions) - 1; i >= 0; i-- {
		if actions[i].Kind.IsAggressive() {
			return i
		}
	}

	return -1
}

// HasOutstandingBet returns true if a bet is in front of the table that not
// every active seat has responded to. A voluntary bet or raise counts as the
// bettor's own response; a forced post does not, which is what gives the big
// blind the option to act when the action limps around.
func (r Round) HasOutstandingBet() bool {
	last := lastAggression(r.Actions)
	if last == -1 {
		return false
	}

	acted := make(map[table.Seat]bool)
	if r.Actions[last].Kind != action.Posts {
		acted[r.Actions[last].Position] = true
	}

	for i := last + 1; i < len(r.Actions); i++ {
		acted[r.Actions[i].Position] = true
	}

	folded := FoldedSeats(r.Actions)
	for _, seat := range r.Active {
		if folded[seat] {
			continue
		}

		if !acted[seat] {
			return true
		}
	}

	return false
}

// LegalActions returns the set of actions the next actor may take.
// Facing a bet (which the blinds pre-seed preflop) the choices are fold,
// call, or raise; otherwise check or bet.
func (r Round) LegalActions() []action.Kind {
	if r.HasOutstandingBet() || (r.Preflop && r.firstVoluntaryAction()) {
		return []action.Kind{action.Folds, action.Calls, action.Raises}
	}

	return []action.Kind{action.Checks, action.Bets}
}

// firstVoluntaryAction returns true if nothing beyond blind posts has happened
func (r Round) firstVoluntaryAction() bool {
	for _, a := range r.Actions {
		if a.Kind != action.Posts {
			return false
		}
	}

	return true
}

// CallAmount returns how much more the seat must invest to match the
// street's current high water
func (r Round) CallAmount(seat table.Seat) int {
	owed := r.HighWater() - StreetInvestments(r.Actions)[seat]
	if owed < 0 {
		return 0
	}

	return owed
}

// NextToAct returns the seat due to act. The second return is false once
// the street's betting round is closed.
func (r Round) NextToAct() (table.Seat, bool) {
	folded := FoldedSeats(r.Actions)

	activeSet := make(map[table.Seat]bool, len(r.Active))
	live := make([]table.Seat, 0, len(r.Active))
	for _, seat := range r.Active {
		activeSet[seat] = true
		if !folded[seat] {
			live = append(live, seat)
		}
	}

	if len(live) <= 1 {
		return "", false
	}

	last := lastAggression(r.Actions)
	if last == -1 {
		// no bet yet: each live seat acts once, in order from the opener
		acted := make(map[table.Seat]bool)
		for _, a := range r.Actions {
			if a.Kind != action.Posts {
				acted[a.Position] = true
			}
		}

		for _, seat := range seatsFrom(r.Order, table.OpeningSeat(r.Order, r.Preflop)) {
			if !activeSet[seat] || folded[seat] {
				continue
			}

			if !acted[seat] {
				return seat, true
			}
		}

		return "", false
	}

	// a bet is in front: everyone after the aggressor must respond
	acted := make(map[table.Seat]bool)
	if r.Actions[last].Kind != action.Posts {
		acted[r.Actions[last].Position] = true
	}

	for i := last + 1; i < len(r.Actions); i++ {
		acted[r.Actions[i].Position] = true
	}

	from := r.Actions[len(r.Actions)-1].Position
	for _, seat := range seatsFrom(r.Order, table.NextSeat(r.Order, from)) {
		if !activeSet[seat] || folded[seat] {
			continue
		}

		if !acted[seat] {
			return seat, true
		}
	}

	return "", false
}

// seatsFrom returns the full order rotated so it starts at the given seat
func seatsFrom(order []table.Seat, start table.Seat) []table.Seat {
	idx := table.IndexOf(order, start)
	if idx < 0 {
		idx = 0
	}

	rotated := make([]table.Seat, 0, len(order))
	for i := 0; i < len(order); i++ {
		rotated = append(rotated, order[(idx+i)%len(order)])
	}

	return rotated
}
