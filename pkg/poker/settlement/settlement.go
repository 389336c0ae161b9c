// Package settlement aggregates a completed action log into a pot and
// allocates it among the winners.
package settlement

import (
	"errors"
	"sort"

	"handscribe-server/pkg/deck"
	"handscribe-server/pkg/poker/action"
	"handscribe-server/pkg/poker/betting"
	"handscribe-server/pkg/poker/handrank"
	"handscribe-server/pkg/poker/table"
)

// ErrNoPlayers is returned when settlement is attempted without seated players
var ErrNoPlayers = errors.New("no seated players to settle")

// Player is a seated participant in the hand
type Player struct {
	Name      string
	Seat      table.Seat
	HoleCards deck.Hand
	Hero      bool
}

// Share is one winner's slice of the pot
type Share struct {
	WinnerName string    `json:"winnerName"`
	Amount     int       `json:"amount"`
	HandLabel  string    `json:"handLabel"`
	ShownCards deck.Hand `json:"shownCards,omitempty"`
}

// Result is a settled pot
type Result struct {
	Total        int     `json:"total"`
	Distribution []Share `json:"distribution,omitempty"`
	HeroPnl      int     `json:"heroPnl"`
	Showdown     bool    `json:"showdown"`
}

// Contributions replays every street and returns each seat's total
// contribution to the pot. Within a street an investment action overwrites
// the seat's running street total; street totals are then summed.
func Contributions(streets [][]action.Entry) map[table.Seat]int {
	contributions := make(map[table.Seat]int)
	for _, street := range streets {
		for seat, amount := range betting.StreetInvestments(street) {
			contributions[seat] += amount
		}
	}

	return contributions
}

// PotTotal is the sum of all contributions
func PotTotal(streets [][]action.Entry) int {
	total := 0
	for _, amount := range Contributions(streets) {
		total += amount
	}

	return total
}

// foldedSeats collects folds across every street
func foldedSeats(streets [][]action.Entry) map[table.Seat]bool {
	folded := make(map[table.Seat]bool)
	for _, street := range streets {
		for seat := range betting.FoldedSeats(street) {
			folded[seat] = true
		}
	}

	return folded
}

// Settle computes the pot and its distribution for a completed hand.
// The board must hold every dealt community card; hole cards are only
// needed for players reaching showdown.
func Settle(cfg table.Config, players []Player, board deck.Hand, streets [][]action.Entry) (*Result, error) {
	seated := make([]Player, 0, len(players))
	for _, p := range players {
		if p.Seat != "" {
			seated = append(seated, p)
		}
	}

	if len(seated) == 0 {
		return nil, ErrNoPlayers
	}

	contributions := Contributions(streets)
	total := 0
	for _, amount := range contributions {
		total += amount
	}

	folded := foldedSeats(streets)

	active := make([]Player, 0, len(seated))
	for _, p := range seated {
		if !folded[p.Seat] {
			active = append(active, p)
		}
	}

	result := &Result{Total: total}

	var hero *Player
	for i := range seated {
		if seated[i].Hero {
			hero = &seated[i]
			break
		}
	}

	defer func() {
		if hero != nil {
			result.HeroPnl = heroPnl(*hero, result.Distribution, contributions, folded)
		}
	}()

	if len(active) == 1 {
		result.Distribution = []Share{{
			WinnerName: active[0].Name,
			Amount:     total,
			HandLabel:  "Winner by fold",
		}}
		return result, nil
	}

	result.Showdown = true

	hands := make([]handrank.ShowdownHand, 0, len(active))
	bySeat := make(map[string]Player, len(active))
	for _, p := range active {
		if len(p.HoleCards) != 2 {
			continue
		}

		hands = append(hands, handrank.ShowdownHand{
			Name:  p.Name,
			Cards: append(p.HoleCards.Clone(), board...),
		})
		bySeat[p.Name] = p
	}

	winners := make([]handrank.ShowdownResult, 0, len(hands))
	for _, r := range handrank.DetermineWinners(hands) {
		if r.Winner {
			winners = append(winners, r)
		}
	}

	// no rankable hands: refuse to guess
	if len(winners) == 0 {
		return result, nil
	}

	// split evenly among ties; the indivisible remainder goes to the
	// winner earliest in seat order
	order := cfg.SeatOrder()
	sort.SliceStable(winners, func(i, j int) bool {
		return table.IndexOf(order, bySeat[winners[i].Name].Seat) <
			table.IndexOf(order, bySeat[winners[j].Name].Seat)
	})

	share := total / len(winners)
	remainder := total % len(winners)

	distribution := make([]Share, len(winners))
	for i, w := range winners {
		amount := share
		if i == 0 {
			amount += remainder
		}

		distribution[i] = Share{
			WinnerName: w.Name,
			Amount:     amount,
			HandLabel:  w.Evaluation.Describe(),
			ShownCards: bySeat[w.Name].HoleCards,
		}
	}

	result.Distribution = distribution
	return result, nil
}

// heroPnl is what the hero received minus what they put in. A folded hero
// skips settlement entirely and simply loses their contribution.
func heroPnl(hero Player, distribution []Share, contributions map[table.Seat]int, folded map[table.Seat]bool) int {
	contributed := contributions[hero.Seat]
	if folded[hero.Seat] {
		return -contributed
	}

	received := 0
	for _, share := range distribution {
		if share.WinnerName == hero.Name {
			received += share.Amount
		}
	}

	return received - contributed
}
