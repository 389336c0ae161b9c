// Package handrecord defines the structured hand record exchanged with
// storage and rendering layers. Field names are a stable contract: a saved
// hand is later re-loaded and re-rendered from this exact shape.
package handrecord

import (
	"fmt"

	"handscribe-server/pkg/deck"
	"handscribe-server/pkg/poker/action"
	"handscribe-server/pkg/poker/table"

	"github.com/google/uuid"
)

// StreetName identifies a betting round
type StreetName string

// street name constants
const (
	Preflop StreetName = "preflop"
	Flop    StreetName = "flop"
	Turn    StreetName = "turn"
	River   StreetName = "river"
)

var streetOrder = []StreetName{Preflop, Flop, Turn, River}

// boardSizes is the cumulative board card count required per street
var boardSizes = map[StreetName]int{
	Preflop: 0,
	Flop:    3,
	Turn:    4,
	River:   5,
}

// GameInfo describes the table the hand was played at
type GameInfo struct {
	TableSize  int        `json:"tableSize"`
	SmallBlind int        `json:"smallBlind"`
	BigBlind   int        `json:"bigBlind"`
	DealerSeat table.Seat `json:"dealerSeat"`
}

// TableConfig converts the game info into a table config
func (g GameInfo) TableConfig() table.Config {
	return table.Config{
		Size:       g.TableSize,
		SmallBlind: g.SmallBlind,
		BigBlind:   g.BigBlind,
	}
}

// Player is a participant in the recorded hand
type Player struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Seat       int        `json:"seat"`
	Stack      int        `json:"stack"`
	Position   table.Seat `json:"position,omitempty"`
	IsHero     bool       `json:"isHero"`
	HoleCards  deck.Hand  `json:"holeCards,omitempty"`
	FinalHand  string     `json:"finalHand,omitempty"`
	FinalCards deck.Hand  `json:"finalCards,omitempty"`
}

// Street is one betting round with its cumulative board
type Street struct {
	Name       StreetName     `json:"name"`
	BoardCards deck.Hand      `json:"boardCards,omitempty"`
	Actions    []action.Entry `json:"actions"`
}

// Distribution is one winner's share of the pot
type Distribution struct {
	WinnerName string    `json:"winnerName"`
	Amount     int       `json:"amount"`
	HandLabel  string    `json:"handLabel"`
	ShownCards deck.Hand `json:"shownCards,omitempty"`
}

// Pot is the settled pot
type Pot struct {
	Amount       int            `json:"amount"`
	Distribution []Distribution `json:"distribution,omitempty"`
	HeroPnl      int            `json:"heroPnl"`
}

// Record is a complete recorded hand
type Record struct {
	ID               string   `json:"id"`
	Title            string   `json:"title,omitempty"`
	Notes            string   `json:"notes,omitempty"`
	GameInfo         GameInfo `json:"gameInfo"`
	Players          []Player `json:"players"`
	Streets          []Street `json:"streets"`
	Pot              Pot      `json:"pot"`
	ShowdownOccurred bool     `json:"showdownOccurred"`
}

// New returns an empty record with a generated ID and dealer seat filled in
func New(info GameInfo) *Record {
	info.DealerSeat = info.TableConfig().DealerSeat()

	return &Record{
		ID:       uuid.New().String(),
		GameInfo: info,
	}
}

// ValidationError is an error in the structure of a submitted record
type ValidationError string

func (v ValidationError) Error() string {
	return string(v)
}

func newValidationError(format string, a ...interface{}) ValidationError {
	return ValidationError(fmt.Sprintf(format, a...))
}

// Validate checks the record's structural invariants before settlement is
// attempted. The engine does not self-heal a broken log beyond the
// documented auto-fold completion.
func (r *Record) Validate() error {
	heroes := 0
	order := table.SeatOrder(r.GameInfo.TableSize)
	seen := make(map[table.Seat]bool)
	for _, p := range r.Players {
		if p.IsHero {
			heroes++
		}

		if p.Position != "" {
			if table.IndexOf(order, p.Position) < 0 {
				return newValidationError("position %s does not exist at a %d-max table", p.Position, r.GameInfo.TableSize)
			}

			if seen[p.Position] {
				return newValidationError("position %s is occupied by more than one player", p.Position)
			}
			seen[p.Position] = true
		}

		if n := len(p.HoleCards); n != 0 && n != 2 {
			return newValidationError("player %s must hold zero or two cards", p.Name)
		}

		if p.HoleCards.HasDuplicates() {
			return newValidationError("player %s holds duplicate cards", p.Name)
		}
	}

	if heroes != 1 {
		return newValidationError("expected exactly one hero, found %d", heroes)
	}

	if len(r.Streets) > len(streetOrder) {
		return newValidationError("too many streets: %d", len(r.Streets))
	}

	var prevBoard deck.Hand
	var prevName StreetName
	for i, street := range r.Streets {
		if street.Name != streetOrder[i] {
			return newValidationError("expected street %s at index %d, found %s", streetOrder[i], i, street.Name)
		}

		// a street with actions needs its board cards dealt
		if len(street.Actions) > 0 && len(street.BoardCards) != boardSizes[street.Name] {
			return newValidationError("%s requires %d board cards, found %d",
				street.Name, boardSizes[street.Name], len(street.BoardCards))
		}

		if len(street.BoardCards) > 0 {
			if street.BoardCards.HasDuplicates() {
				return newValidationError("%s board contains duplicate cards", street.Name)
			}

			// the board is cumulative: each street extends the previous one
			if !street.BoardCards.HasPrefix(prevBoard) {
				return newValidationError("%s board must extend the %s board", street.Name, prevName)
			}

			prevBoard = street.BoardCards
			prevName = street.Name
		}

		for _, a := range street.Actions {
			if err := a.Validate(); err != nil {
				return newValidationError("%s: %v", street.Name, err)
			}

			if seat := a.Position; !seen[seat] {
				return newValidationError("%s: no player occupies %s", street.Name, seat)
			}
		}
	}

	// a card can only be dealt once across the board and every player's hole cards
	dealt := make(map[deck.Card]bool)
	for _, c := range append(r.Board().Clone(), holeCards(r.Players)...) {
		if dealt[c] {
			return newValidationError("card %s appears more than once in the hand", c)
		}

		dealt[c] = true
	}

	return nil
}

func holeCards(players []Player) deck.Hand {
	var cards deck.Hand
	for _, p := range players {
		cards = append(cards, p.HoleCards...)
	}

	return cards
}

// Board returns the full community board dealt so far
func (r *Record) Board() deck.Hand {
	var board deck.Hand
	for _, street := range r.Streets {
		if len(street.BoardCards) > len(board) {
			board = street.BoardCards
		}
	}

	return board
}

// Hero returns the hero player, or nil if the record has none
func (r *Record) Hero() *Player {
	for i := range r.Players {
		if r.Players[i].IsHero {
			return &r.Players[i]
		}
	}

	return nil
}

// Clone returns a deep copy of the record
func (r *Record) Clone() *Record {
	clone := *r

	clone.Players = make([]Player, len(r.Players))
	copy(clone.Players, r.Players)

	clone.Streets = make([]Street, len(r.Streets))
	for i, street := range r.Streets {
		street.Actions = append([]action.Entry(nil), street.Actions...)
		street.BoardCards = street.BoardCards.Clone()
		clone.Streets[i] = street
	}

	clone.Pot.Distribution = append([]Distribution(nil), r.Pot.Distribution...)
	return &clone
}
