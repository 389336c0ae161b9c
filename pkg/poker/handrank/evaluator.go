package handrank

import (
	"sort"

	"handscribe-server/pkg/deck"
)

// BestHand ranks the best five-card hand out of the supplied cards.
// All C(n,5) combinations are classified independently and the strongest
// is kept. Returns nil if fewer than five unique cards are supplied.
func BestHand(cards deck.Hand) *Evaluation {
	unique := make(deck.Hand, 0, len(cards))
	for _, c := range cards {
		if !unique.HasCard(c) {
			unique.AddCard(c)
		}
	}

	if len(unique) < 5 {
		return nil
	}

	var best *Evaluation
	forEachCombination(len(unique), 5, func(indexes []int) {
		five := make(deck.Hand, 5)
		for i, idx := range indexes {
			five[i] = unique[idx]
		}

		eval := classify(five)
		if best == nil || eval.Beats(best) {
			best = eval
		}
	})

	return best
}

// forEachCombination calls fn with every k-element index combination of [0,n)
func forEachCombination(n, k int, fn func(indexes []int)) {
	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	for {
		fn(indexes)

		// advance to the next combination
		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}

// classify ranks a single five-card hand
func classify(five deck.Hand) *Evaluation {
	sorted := five.SortByRankDescending()

	isFlush := true
	for _, c := range sorted {
		if c.Suit != sorted[0].Suit {
			isFlush = false
			break
		}
	}

	straightHigh := straightHighCard(sorted)

	if isFlush && straightHigh > 0 {
		cards := straightOrder(sorted, straightHigh)
		if straightHigh == deck.Ace {
			return &Evaluation{Category: RoyalFlush, Cards: cards, Tiebreakers: []int{}}
		}

		return &Evaluation{Category: StraightFlush, Cards: cards, Tiebreakers: []int{straightHigh}}
	}

	groups := rankGroups(sorted)

	if groups[0].count == 4 {
		kicker := groups[1].rank
		return &Evaluation{
			Category:    FourOfAKind,
			Cards:       groupOrder(sorted, groups),
			Tiebreakers: []int{groups[0].rank, kicker},
		}
	}

	if groups[0].count == 3 && groups[1].count >= 2 {
		return &Evaluation{
			Category:    FullHouse,
			Cards:       groupOrder(sorted, groups),
			Tiebreakers: []int{groups[0].rank, groups[1].rank},
		}
	}

	if isFlush {
		return &Evaluation{Category: Flush, Cards: sorted, Tiebreakers: sorted.Ranks()}
	}

	if straightHigh > 0 {
		return &Evaluation{
			Category:    Straight,
			Cards:       straightOrder(sorted, straightHigh),
			Tiebreakers: []int{straightHigh},
		}
	}

	if groups[0].count == 3 {
		return &Evaluation{
			Category:    ThreeOfAKind,
			Cards:       groupOrder(sorted, groups),
			Tiebreakers: []int{groups[0].rank, groups[1].rank, groups[2].rank},
		}
	}

	if groups[0].count == 2 && groups[1].count == 2 {
		return &Evaluation{
			Category:    TwoPair,
			Cards:       groupOrder(sorted, groups),
			Tiebreakers: []int{groups[0].rank, groups[1].rank, groups[2].rank},
		}
	}

	if groups[0].count == 2 {
		return &Evaluation{
			Category:    OnePair,
			Cards:       groupOrder(sorted, groups),
			Tiebreakers: []int{groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank},
		}
	}

	return &Evaluation{Category: HighCard, Cards: sorted, Tiebreakers: sorted.Ranks()}
}

// straightHighCard returns the high card of a five-card run, or 0 if the hand
// is not a straight. The Ace also counts low to catch the wheel (A-2-3-4-5).
func straightHighCard(sorted deck.Hand) int {
	ranks := sorted.Ranks()
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return 0
		}
	}

	if ranks[0]-ranks[4] == 4 {
		return ranks[0]
	}

	// wheel: A-5-4-3-2
	if ranks[0] == deck.Ace && ranks[1] == 5 && ranks[4] == 2 {
		return 5
	}

	return 0
}

// straightOrder arranges a straight from its high card down. In a wheel the
// Ace plays low and comes last.
func straightOrder(sorted deck.Hand, high int) deck.Hand {
	cards := sorted.Clone()
	if high == 5 && cards[0].Rank == deck.Ace {
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].AceLowRank() > cards[j].AceLowRank()
		})
	}

	return cards
}

type rankGroup struct {
	rank  int
	count int
}

// rankGroups buckets the hand by rank, ordered by count then rank descending
func rankGroups(sorted deck.Hand) []rankGroup {
	counts := make(map[int]int)
	for _, c := range sorted {
		counts[c.Rank]++
	}

	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	return groups
}

// groupOrder arranges the hand so the biggest rank groups come first
// (i.e., quads before the kicker, the pair before its kickers)
func groupOrder(sorted deck.Hand, groups []rankGroup) deck.Hand {
	cards := make(deck.Hand, 0, len(sorted))
	for _, g := range groups {
		for _, c := range sorted {
			if c.Rank == g.rank {
				cards = append(cards, c)
			}
		}
	}

	return cards
}
