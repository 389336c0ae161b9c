package handrecord

import (
	"handscribe-server/pkg/poker/action"
	"handscribe-server/pkg/poker/betting"
	"handscribe-server/pkg/poker/handrank"
	"handscribe-server/pkg/poker/settlement"
	"handscribe-server/pkg/poker/table"
)

// Settle validates the record, completes its action log, and computes the
// final pot. The input record is not modified; the settled copy carries the
// pot, each showdown player's final hand, and the hero's profit or loss.
// Calling it again on the same input yields the same result.
func (r *Record) Settle() (*Record, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	settled := r.Clone()
	cfg := settled.GameInfo.TableConfig()

	occupied := make([]table.Seat, 0, len(settled.Players))
	for _, p := range settled.Players {
		if p.Position != "" {
			occupied = append(occupied, p.Position)
		}
	}

	streets := make([][]action.Entry, len(settled.Streets))
	for i, street := range settled.Streets {
		streets[i] = street.Actions
	}

	if len(streets) == 0 {
		streets = [][]action.Entry{nil}
		settled.Streets = []Street{{Name: Preflop}}
	}

	// fill in the folds and posts the recorder never asked for
	streets[0] = betting.CompleteLog(cfg, occupied, streets)
	settled.Streets[0].Actions = streets[0]

	players := make([]settlement.Player, len(settled.Players))
	for i, p := range settled.Players {
		players[i] = settlement.Player{
			Name:      p.Name,
			Seat:      p.Position,
			HoleCards: p.HoleCards,
			Hero:      p.IsHero,
		}
	}

	result, err := settlement.Settle(cfg, players, settled.Board(), streets)
	if err != nil {
		return nil, err
	}

	settled.ShowdownOccurred = result.Showdown
	settled.Pot = Pot{
		Amount:  result.Total,
		HeroPnl: result.HeroPnl,
	}

	for _, share := range result.Distribution {
		settled.Pot.Distribution = append(settled.Pot.Distribution, Distribution{
			WinnerName: share.WinnerName,
			Amount:     share.Amount,
			HandLabel:  share.HandLabel,
			ShownCards: share.ShownCards,
		})
	}

	if result.Showdown {
		settled.fillFinalHands()
	}

	return settled, nil
}

// fillFinalHands records each live hole-carded player's best hand
func (r *Record) fillFinalHands() {
	board := r.Board()

	folded := make(map[table.Seat]bool)
	for _, street := range r.Streets {
		for _, a := range street.Actions {
			if a.Kind == action.Folds {
				folded[a.Position] = true
			}
		}
	}

	for i, p := range r.Players {
		if p.Position == "" || folded[p.Position] || len(p.HoleCards) != 2 {
			continue
		}

		eval := handrank.BestHand(append(p.HoleCards.Clone(), board...))
		if eval == nil {
			continue
		}

		r.Players[i].FinalHand = eval.Describe()
		r.Players[i].FinalCards = eval.Cards
	}
}
