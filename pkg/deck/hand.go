package deck

import (
	"sort"
	"strings"
)

// Hand represents a collection of cards
type Hand []Card

// CardsFromString parses a comma-separated list of card tokens (i.e., "Ah,Kd,Ts")
func CardsFromString(s string) (Hand, error) {
	if s == "" {
		return Hand{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Hand, len(cardStrings))
	for i, token := range cardStrings {
		card, err := CardFromString(strings.TrimSpace(token))
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasDuplicates returns true if any card appears more than once
func (h Hand) HasDuplicates() bool {
	seen := make(map[Card]bool, len(h))
	for _, c := range h {
		if seen[c] {
			return true
		}

		seen[c] = true
	}

	return false
}

// HasPrefix returns true if the hand begins with the given cards in order
func (h Hand) HasPrefix(prefix Hand) bool {
	if len(prefix) > len(h) {
		return false
	}

	for i, c := range prefix {
		if !h[i].Equal(c) {
			return false
		}
	}

	return true
}

// SortByRankDescending sorts a copy of the hand from the highest rank to the lowest
func (h Hand) SortByRankDescending() Hand {
	h2 := h.Clone()
	sort.SliceStable(h2, func(i, j int) bool {
		return h2[i].Rank > h2[j].Rank
	})

	return h2
}

// Ranks returns the rank of each card in hand order
func (h Hand) Ranks() []int {
	ranks := make([]int, len(h))
	for i, c := range h {
		ranks[i] = c.Rank
	}

	return ranks
}

// Clone returns a clone of the hand. A nil hand stays nil so optional
// card lists survive an encode/decode round trip unchanged.
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}

	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

func (h Hand) String() string {
	tokens := make([]string, len(h))
	for i, c := range h {
		tokens[i] = c.String()
	}

	return strings.Join(tokens, ",")
}
