package deck

import (
	"fmt"
	"regexp"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Ten     = 10
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

var rankChars = map[byte]int{
	'2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'T': Ten, 'J': Jack, 'Q': Queen, 'K': King, 'A': Ace,
}

var rankNames = map[int]string{
	Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

var suitChars = map[byte]Suit{
	'c': Clubs,
	'd': Diamonds,
	'h': Hearts,
	's': Spades,
}

var cardRx = regexp.MustCompile(`^([2-9TJQKAtjqka])([cdhsCDHS])\z`)

// CardFromString parses a two-character card token such as "Ah" or "Ts".
// Rank must be one of 2-9, T, J, Q, K, A and suit one of c, d, h, s.
func CardFromString(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card: %q", s)
	}

	rank := rankChars[strings.ToUpper(match[1])[0]]
	suit := suitChars[strings.ToLower(match[2])[0]]

	return Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

// RankName returns the short rank name (i.e., "A" for an Ace)
func (c Card) RankName() string {
	if name, ok := rankNames[c.Rank]; ok {
		return name
	}

	return fmt.Sprintf("%d", c.Rank)
}

// SuitSymbol returns the decorative suit symbol
func (c Card) SuitSymbol() string {
	switch c.Suit {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	}

	return "?"
}

func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "c"
	case Diamonds:
		suit = "d"
	case Hearts:
		suit = "h"
	case Spades:
		suit = "s"
	}

	return c.RankName() + suit
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank returns the rank where Ace is considered low instead of high
func (c Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// MarshalText encodes the card as its two-character token
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a two-character card token
func (c *Card) UnmarshalText(text []byte) error {
	card, err := CardFromString(string(text))
	if err != nil {
		return err
	}

	*c = card
	return nil
}
