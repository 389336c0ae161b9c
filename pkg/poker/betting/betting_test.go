package betting

import (
	"testing"

	"handscribe-server/pkg/poker/action"
	"handscribe-server/pkg/poker/table"

	"github.com/stretchr/testify/assert"
)

func sixMax() table.Config {
	return table.Config{Size: 6, SmallBlind: 100, BigBlind: 200}
}

func headsUp() table.Config {
	return table.Config{Size: 2, SmallBlind: 100, BigBlind: 200}
}

func preflopRound(cfg table.Config, actions ...action.Entry) Round {
	return Round{
		Config:  cfg,
		Order:   cfg.SeatOrder(),
		Active:  cfg.SeatOrder(),
		Actions: actions,
		Preflop: true,
	}
}

func postflopRound(cfg table.Config, active []table.Seat, actions ...action.Entry) Round {
	return Round{
		Config:  cfg,
		Order:   cfg.SeatOrder(),
		Active:  active,
		Actions: actions,
	}
}

func TestStreetInvestments(t *testing.T) {
	investments := StreetInvestments([]action.Entry{
		action.NewEntry(table.SmallBlind, action.Posts, 100),
		action.NewEntry(table.BigBlind, action.Posts, 200),
		action.NewEntry(table.Button, action.Raises, 600),
		action.NewEntry(table.SmallBlind, action.Calls, 600),
		action.NewEntry(table.BigBlind, action.Folds, 0),
	})

	// amounts are street totals, so a later entry overwrites
	assert.Equal(t, map[table.Seat]int{
		table.SmallBlind: 600,
		table.BigBlind:   200,
		table.Button:     600,
	}, investments)
}

func TestRound_HasOutstandingBet(t *testing.T) {
	a := assert.New(t)
	cfg := sixMax()

	// blind posts are a standing bet
	r := preflopRound(cfg,
		action.NewEntry(table.SmallBlind, action.Posts, 100),
		action.NewEntry(table.BigBlind, action.Posts, 200),
	)
	a.True(r.HasOutstandingBet())

	// everyone responded except the blinds
	r = preflopRound(cfg,
		action.NewEntry(table.SmallBlind, action.Posts, 100),
		action.NewEntry(table.BigBlind, action.Posts, 200),
		action.NewEntry(table.UnderTheGun, action.Folds, 0),
		action.NewEntry(table.MiddlePosition, action.Folds, 0),
		action.NewEntry(table.Cutoff, action.Folds, 0),
		action.NewEntry(table.Button, action.Calls, 200),
		action.NewEntry(table.SmallBlind, action.Calls, 200),
	)
	a.True(r.HasOutstandingBet(), "big blind still has the option")

	r.Actions = append(r.Actions, action.NewEntry(table.BigBlind, action.Checks, 0))
	a.False(r.HasOutstandingBet())

	// no bet postflop
	r = postflopRound(cfg, []table.Seat{table.SmallBlind, table.Button})
	a.False(r.HasOutstandingBet())

	// bet not yet called
	r = postflopRound(cfg, []table.Seat{table.SmallBlind, table.Button},
		action.NewEntry(table.SmallBlind, action.Bets, 200),
	)
	a.True(r.HasOutstandingBet())

	// a voluntary bet counts as the bettor's own response
	r.Actions = append(r.Actions, action.NewEntry(table.Button, action.Calls, 200))
	a.False(r.HasOutstandingBet())

	// folds do not need to match the bet
	r = postflopRound(cfg, []table.Seat{table.SmallBlind, table.Cutoff, table.Button},
		action.NewEntry(table.SmallBlind, action.Bets, 200),
		action.NewEntry(table.Cutoff, action.Folds, 0),
		action.NewEntry(table.Button, action.Calls, 200),
	)
	a.False(r.HasOutstandingBet())
}

func TestRound_LegalActions(t *testing.T) {
	a := assert.New(t)
	cfg := sixMax()

	facingBet := []action.Kind{action.Folds, action.Calls, action.Raises}
	unopened := []action.Kind{action.Checks, action.Bets}

	// the very first preflop action always faces the blinds, even with no
	// posts recorded
	a.Equal(facingBet, preflopRound(cfg).LegalActions())
	a.Equal(facingBet, preflopRound(cfg,
		action.NewEntry(table.SmallBlind, action.Posts, 100),
		action.NewEntry(table.BigBlind, action.Posts, 200),
	).LegalActions())

	// unopened postflop street
	r := postflopRound(cfg, []table.Seat{table.SmallBlind, table.Button})
	a.Equal(unopened, r.LegalActions())

	// facing a live bet
	r.Actions = []action.Entry{action.NewEntry(table.SmallBlind, action.Bets, 200)}
	a.Equal(facingBet, r.LegalActions())

	// bet fully called: betting reopens
	r.Actions = append(r.Actions, action.NewEntry(table.Button, action.Calls, 200))
	a.Equal(unopened, r.LegalActions())
}

func TestRound_CallAmount(t *testing.T) {
	a := assert.New(t)
	cfg := sixMax()

	// first preflop action with $1/$2 blinds and an empty log owes the big blind
	a.Equal(200, preflopRound(cfg).CallAmount(table.UnderTheGun))

	// blinds owe only the difference
	r := preflopRound(cfg,
		action.NewEntry(table.SmallBlind, action.Posts, 100),
		action.NewEntry(table.BigBlind, action.Posts, 200),
	)
	a.Equal(100, r.CallAmount(table.SmallBlind))
	a.Equal(0, r.CallAmount(table.BigBlind))

	// after a raise the amounts track street totals
	r.Actions = append(r.Actions, action.NewEntry(table.Button, action.Raises, 600))
	a.Equal(600, r.CallAmount(table.UnderTheGun))
	a.Equal(500, r.CallAmount(table.SmallBlind))
	a.Equal(400, r.CallAmount(table.BigBlind))

	// already matched
	r.Actions = append(r.Actions, action.NewEntry(table.SmallBlind, action.Calls, 600))
	a.Equal(0, r.CallAmount(table.SmallBlind))

	// postflop unopened street owes nothing
	a.Equal(0, postflopRound(cfg, cfg.SeatOrder()).CallAmount(table.Button))
}

func TestRound_NextToAct(t *testing.T) {
	a := assert.New(t)
	cfg := sixMax()

	// preflop opens with UTG
	seat, ok := preflopRound(cfg,
		action.NewEntry(table.SmallBlind, action.Posts, 100),
		action.NewEntry(table.BigBlind, action.Posts, 200),
	).NextToAct()
	a.True(ok)
	a.Equal(table.UnderTheGun, seat)

	// responses continue clockwise from the last actor
	r := preflopRound(cfg,
		action.NewEntry(table.SmallBlind, action.Posts, 100),
		action.NewEntry(table.BigBlind, action.Posts, 200),
		action.NewEntry(table.UnderTheGun, action.Folds, 0),
		action.NewEntry(table.MiddlePosition, action.Calls, 200),
	)
	seat, ok = r.NextToAct()
	a.True(ok)
	a.Equal(table.Cutoff, seat)

	// a raise reopens the action for everyone before the raiser
	r.Actions = append(r.Actions,
		action.NewEntry(table.Cutoff, action.Folds, 0),
		action.NewEntry(table.Button, action.Raises, 600),
	)
	seat, ok = r.NextToAct()
	a.True(ok)
	a.Equal(table.SmallBlind, seat)

	r.Actions = append(r.Actions,
		action.NewEntry(table.SmallBlind, action.Folds, 0),
		action.NewEntry(table.BigBlind, action.Calls, 600),
	)
	seat, ok = r.NextToAct()
	a.True(ok)
	a.Equal(table.MiddlePosition, seat, "the caller must respond to the raise")

	r.Actions = append(r.Actions, action.NewEntry(table.MiddlePosition, action.Calls, 600))
	_, ok = r.NextToAct()
	a.False(ok)

	// postflop opens with the small blind
	flop := postflopRound(cfg, []table.Seat{table.SmallBlind, table.BigBlind, table.Button})
	seat, ok = flop.NextToAct()
	a.True(ok)
	a.Equal(table.SmallBlind, seat)

	flop.Actions = []action.Entry{
		action.NewEntry(table.SmallBlind, action.Checks, 0),
		action.NewEntry(table.BigBlind, action.Checks, 0),
	}
	seat, ok = flop.NextToAct()
	a.True(ok)
	a.Equal(table.Button, seat)

	flop.Actions = append(flop.Actions, action.NewEntry(table.Button, action.Checks, 0))
	_, ok = flop.NextToAct()
	a.False(ok)

	// round is over once a single live seat remains
	folded := postflopRound(cfg, []table.Seat{table.SmallBlind, table.Button},
		action.NewEntry(table.SmallBlind, action.Bets, 200),
		action.NewEntry(table.Button, action.Folds, 0),
	)
	_, ok = folded.NextToAct()
	a.False(ok)
}

func TestRound_NextToAct_headsUp(t *testing.T) {
	a := assert.New(t)
	cfg := headsUp()

	// heads-up the small blind acts first preflop
	r := preflopRound(cfg,
		action.NewEntry(table.SmallBlind, action.Posts, 100),
		action.NewEntry(table.BigBlind, action.Posts, 200),
	)
	r.Active = cfg.SeatOrder()
	seat, ok := r.NextToAct()
	a.True(ok)
	a.Equal(table.SmallBlind, seat)

	// the big blind keeps the option after a limp
	r.Actions = append(r.Actions, action.NewEntry(table.SmallBlind, action.Calls, 200))
	seat, ok = r.NextToAct()
	a.True(ok)
	a.Equal(table.BigBlind, seat)

	r.Actions = append(r.Actions, action.NewEntry(table.BigBlind, action.Checks, 0))
	_, ok = r.NextToAct()
	a.False(ok)
}
