package handrank

import (
	"fmt"
	"handscribe-server/pkg/deck"
)

// Evaluation is the ranked result of a five-card hand.
// Tiebreakers are category specific. A pair, for example, carries
// [pairRank, kicker1, kicker2, kicker3] in descending kicker order.
type Evaluation struct {
	Category    Category  `json:"category"`
	Cards       deck.Hand `json:"cards"`
	Tiebreakers []int     `json:"tiebreakers"`
}

// Compare returns <0 if e is weaker than other, >0 if stronger, and 0 on an exact tie
func (e *Evaluation) Compare(other *Evaluation) int {
	if e.Category != other.Category {
		return int(e.Category) - int(other.Category)
	}

	for i, tb := range e.Tiebreakers {
		if i >= len(other.Tiebreakers) {
			break
		}

		if tb != other.Tiebreakers[i] {
			return tb - other.Tiebreakers[i]
		}
	}

	return 0
}

// Beats returns true if e outranks other
func (e *Evaluation) Beats(other *Evaluation) bool {
	return e.Compare(other) > 0
}

// Ties returns true if the hands are exactly equal in strength
func (e *Evaluation) Ties(other *Evaluation) bool {
	return e.Compare(other) == 0
}

func rankName(rank int) string {
	return deck.Card{Rank: rank}.RankName()
}

// Describe returns a human-readable description such as "Full house, Ks full of 7s"
func (e *Evaluation) Describe() string {
	tb := e.Tiebreakers

	switch e.Category {
	case RoyalFlush:
		return "Royal flush"
	case StraightFlush:
		return fmt.Sprintf("Straight flush, %s high", rankName(tb[0]))
	case FourOfAKind:
		return fmt.Sprintf("Four of a kind, %ss", rankName(tb[0]))
	case FullHouse:
		return fmt.Sprintf("Full house, %ss full of %ss", rankName(tb[0]), rankName(tb[1]))
	case Flush:
		return fmt.Sprintf("Flush, %s high", rankName(tb[0]))
	case Straight:
		return fmt.Sprintf("Straight, %s high", rankName(tb[0]))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a kind, %ss", rankName(tb[0]))
	case TwoPair:
		return fmt.Sprintf("Two pair, %ss and %ss", rankName(tb[0]), rankName(tb[1]))
	case OnePair:
		return fmt.Sprintf("Pair of %ss", rankName(tb[0]))
	}

	return fmt.Sprintf("High card %s", rankName(tb[0]))
}
