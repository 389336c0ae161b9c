// Package table models canonical seat layouts and turn order.
package table

// Seat is a canonical table position label
type Seat string

// seat constants
const (
	SmallBlind      Seat = "SB"
	BigBlind        Seat = "BB"
	UnderTheGun     Seat = "UTG"
	UnderTheGun1    Seat = "UTG+1"
	UnderTheGun2    Seat = "UTG+2"
	MiddlePosition  Seat = "MP"
	MiddlePosition1 Seat = "MP+1"
	Cutoff          Seat = "CO"
	Button          Seat = "BTN"
)

var headsUpSeats = []Seat{SmallBlind, BigBlind}
var sixMaxSeats = []Seat{SmallBlind, BigBlind, UnderTheGun, MiddlePosition, Cutoff, Button}
var nineMaxSeats = []Seat{
	SmallBlind, BigBlind, UnderTheGun, UnderTheGun1, UnderTheGun2,
	MiddlePosition, MiddlePosition1, Cutoff, Button,
}

// Config describes the table a hand was played at
type Config struct {
	Size       int `json:"size"`
	SmallBlind int `json:"smallBlind"`
	BigBlind   int `json:"bigBlind"`
}

// SeatOrder returns the canonical clockwise seat list for the table size.
// Unknown sizes fall back to the 6-max layout.
func SeatOrder(size int) []Seat {
	var seats []Seat
	switch size {
	case 2:
		seats = headsUpSeats
	case 9:
		seats = nineMaxSeats
	default:
		seats = sixMaxSeats
	}

	order := make([]Seat, len(seats))
	copy(order, seats)
	return order
}

// SeatOrder returns the canonical seat list for the configured size
func (c Config) SeatOrder() []Seat {
	return SeatOrder(c.Size)
}

// DealerSeat returns the seat holding the button. Heads-up the small
// blind is also the dealer.
func (c Config) DealerSeat() Seat {
	if c.Size == 2 {
		return SmallBlind
	}

	return Button
}

// IndexOf returns the index of the seat in the order, or -1 if absent
func IndexOf(order []Seat, seat Seat) int {
	for i, s := range order {
		if s == seat {
			return i
		}
	}

	return -1
}

// NextSeat returns the seat clockwise from the given one
func NextSeat(order []Seat, from Seat) Seat {
	idx := IndexOf(order, from)
	if idx < 0 {
		return order[0]
	}

	return order[(idx+1)%len(order)]
}

// NextActiveSeat returns the first seat clockwise from the given one that
// is not excluded. Returns an empty seat if every other seat is excluded.
func NextActiveSeat(order []Seat, from Seat, excluded map[Seat]bool) Seat {
	seat := from
	for i := 0; i < len(order); i++ {
		seat = NextSeat(order, seat)
		if seat == from {
			break
		}

		if !excluded[seat] {
			return seat
		}
	}

	return ""
}

// OpeningSeat returns the seat that opens the action on a street.
// Preflop the first seat after the big blind opens; postflop the small blind does.
func OpeningSeat(order []Seat, preflop bool) Seat {
	if preflop {
		return NextSeat(order, BigBlind)
	}

	return order[0]
}
