package handrank

import (
	"math/rand"
	"testing"

	"handscribe-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func cards(t *testing.T, s string) deck.Hand {
	t.Helper()
	hand, err := deck.CardsFromString(s)
	assert.NoError(t, err)
	return hand
}

func TestBestHand_tooFewCards(t *testing.T) {
	assert.Nil(t, BestHand(nil))
	assert.Nil(t, BestHand(cards(t, "Ah,Kh,Qh,Jh")))
	// duplicates do not count toward the five
	assert.Nil(t, BestHand(cards(t, "Ah,Ah,Kh,Qh,Jh")))
}

func TestBestHand_categories(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		cards       string
		category    Category
		tiebreakers []int
	}{
		{"Ah,Kh,Qh,Jh,Th", RoyalFlush, []int{}},
		{"9s,8s,7s,6s,5s", StraightFlush, []int{9}},
		{"Ad,2d,3d,4d,5d", StraightFlush, []int{5}},
		{"9c,9d,9h,9s,Ks", FourOfAKind, []int{9, 13}},
		{"Kc,Kd,Kh,7s,7c", FullHouse, []int{13, 7}},
		{"Ah,Jh,9h,6h,2h", Flush, []int{14, 11, 9, 6, 2}},
		{"9c,8d,7h,6s,5c", Straight, []int{9}},
		{"Ac,2d,3h,4s,5c", Straight, []int{5}},
		{"Qc,Qd,Qh,9s,4c", ThreeOfAKind, []int{12, 9, 4}},
		{"Ac,Ad,Kh,Ks,Qc", TwoPair, []int{14, 13, 12}},
		{"Ac,Ad,9h,2s,2c", TwoPair, []int{14, 2, 9}},
		{"Ac,Ad,Kh,Qs,Jc", OnePair, []int{14, 13, 12, 11}},
		{"Ac,Kd,Th,9s,7c", HighCard, []int{14, 13, 10, 9, 7}},
	}

	for _, test := range tests {
		eval := BestHand(cards(t, test.cards))
		if a.NotNil(eval, test.cards) {
			a.Equal(test.category, eval.Category, test.cards)
			a.Equal(test.tiebreakers, eval.Tiebreakers, test.cards)
			a.Len(eval.Cards, 5, test.cards)
		}
	}
}

func TestBestHand_sevenCards(t *testing.T) {
	a := assert.New(t)

	// flush beats the straight also on the board
	eval := BestHand(cards(t, "Ah,Kh,9c,8h,7h,6s,2h"))
	a.Equal(Flush, eval.Category)
	a.Equal([]int{14, 13, 8, 7, 2}, eval.Tiebreakers)

	// best five of three pairs keeps the top two pairs and the best kicker
	eval = BestHand(cards(t, "Ac,Ad,Kh,Ks,2c,2d,Qh"))
	a.Equal(TwoPair, eval.Category)
	a.Equal([]int{14, 13, 12}, eval.Tiebreakers)

	// two trips make a full house
	eval = BestHand(cards(t, "9c,9d,9h,4s,4c,4d,2h"))
	a.Equal(FullHouse, eval.Category)
	a.Equal([]int{9, 4}, eval.Tiebreakers)

	// wheel straight flush is not royal
	eval = BestHand(cards(t, "Ad,2d,3d,4d,5d,Kc,Qc"))
	a.Equal(StraightFlush, eval.Category)
	a.Equal([]int{5}, eval.Tiebreakers)
}

func TestBestHand_orderInvariant(t *testing.T) {
	a := assert.New(t)
	hand := cards(t, "Ah,Kh,9c,8h,7h,6s,2h")
	want := BestHand(hand)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 25; i++ {
		shuffled := hand.Clone()
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := BestHand(shuffled)
		a.Equal(want.Category, got.Category)
		a.Equal(want.Tiebreakers, got.Tiebreakers)
	}
}

func TestBestHand_wheelRanksBelowSixHigh(t *testing.T) {
	wheel := BestHand(cards(t, "Ac,2d,3h,4s,5c"))
	sixHigh := BestHand(cards(t, "2c,3d,4h,5s,6c"))
	assert.True(t, sixHigh.Beats(wheel))
}

func TestEvaluation_Compare(t *testing.T) {
	a := assert.New(t)

	pairAces := BestHand(cards(t, "Ac,Ad,2h,2s,9c"))
	twoPairKings := BestHand(cards(t, "Ac,Ad,Kh,Ks,Qc"))
	a.True(twoPairKings.Beats(pairAces))

	betterKicker := BestHand(cards(t, "Ac,Ad,Ah,Ks,Qc"))
	worseKicker := BestHand(cards(t, "Ac,Ad,Ah,Qs,Jc"))
	a.True(betterKicker.Beats(worseKicker))
	a.False(worseKicker.Beats(betterKicker))

	tie := BestHand(cards(t, "As,Ah,Ac,Kd,Qd"))
	a.True(tie.Ties(betterKicker))
}

func TestBestHand_categoryOrderIsTotal(t *testing.T) {
	// one representative hand per category, weakest first
	reps := []string{
		"Ac,Kd,Th,9s,7c",
		"Ac,Ad,Kh,Qs,Jc",
		"Ac,Ad,Kh,Ks,Qc",
		"Qc,Qd,Qh,9s,4c",
		"9c,8d,7h,6s,5c",
		"Ah,Jh,9h,6h,2h",
		"Kc,Kd,Kh,7s,7c",
		"9c,9d,9h,9s,Ks",
		"9s,8s,7s,6s,5s",
		"Ah,Kh,Qh,Jh,Th",
	}

	evals := make([]*Evaluation, len(reps))
	for i, s := range reps {
		evals[i] = BestHand(cards(t, s))
	}

	for i := 0; i < len(evals); i++ {
		for j := 0; j < i; j++ {
			assert.True(t, evals[i].Beats(evals[j]), "%s should beat %s", reps[i], reps[j])
		}
	}
}

func TestEvaluation_Describe(t *testing.T) {
	tests := map[string]string{
		"Ah,Kh,Qh,Jh,Th": "Royal flush",
		"9s,8s,7s,6s,5s": "Straight flush, 9 high",
		"9c,9d,9h,9s,Ks": "Four of a kind, 9s",
		"Kc,Kd,Kh,7s,7c": "Full house, Ks full of 7s",
		"Ah,Jh,9h,6h,2h": "Flush, A high",
		"Ac,2d,3h,4s,5c": "Straight, 5 high",
		"Qc,Qd,Qh,9s,4c": "Three of a kind, Qs",
		"Ac,Ad,Kh,Ks,Qc": "Two pair, As and Ks",
		"Ac,Ad,Kh,Qs,Jc": "Pair of As",
		"Ac,Kd,Th,9s,7c": "High card A",
	}

	for hand, want := range tests {
		assert.Equal(t, want, BestHand(cards(t, hand)).Describe(), hand)
	}
}

func TestDetermineWinners(t *testing.T) {
	a := assert.New(t)

	board := "2c,7d,9h,Ts,Jc"

	results := DetermineWinners([]ShowdownHand{
		{Name: "alice", Cards: cards(t, "Ah,Kh,"+board)},
		{Name: "bob", Cards: cards(t, "As,Ks,"+board)},
		{Name: "carol", Cards: cards(t, "3d,4d,"+board)},
	})

	a.Len(results, 3)
	a.True(results[0].Winner)
	a.True(results[1].Winner)
	a.False(results[2].Winner)
	a.Equal([]int{14, 13, 11, 10, 9}, results[0].Evaluation.Tiebreakers)
	a.True(results[0].Evaluation.Ties(results[1].Evaluation))

	// a hand that cannot be evaluated never wins
	results = DetermineWinners([]ShowdownHand{
		{Name: "alice", Cards: cards(t, "Ah,Kh")},
		{Name: "bob", Cards: cards(t, "As,Ks,"+board)},
	})
	a.False(results[0].Winner)
	a.Nil(results[0].Evaluation)
	a.True(results[1].Winner)
}
