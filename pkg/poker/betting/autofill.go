package betting

import (
	"handscribe-server/pkg/poker/action"
	"handscribe-server/pkg/poker/table"
)

// CompleteLog fills in the actions the hand recorder never asked the user
// for: missing blind posts, and an immediate fold at the correct preflop
// turn for every occupied seat that never acted on any street. It runs once
// before settlement and returns a new preflop log; the input is not
// modified.
func CompleteLog(cfg table.Config, occupied []table.Seat, streets [][]action.Entry) []action.Entry {
	var preflop []action.Entry
	if len(streets) > 0 {
		preflop = streets[0]
	}

	order := cfg.SeatOrder()
	occupiedSet := make(map[table.Seat]bool, len(occupied))
	for _, seat := range occupied {
		occupiedSet[seat] = true
	}

	completed := make([]action.Entry, 0, len(preflop)+len(occupied))
	completed = append(completed, synthesizeBlindPosts(cfg, occupiedSet, preflop)...)

	voluntary := make([]action.Entry, 0, len(preflop))
	for _, a := range preflop {
		if a.Kind == action.Posts {
			completed = append(completed, a)
		} else {
			voluntary = append(voluntary, a)
		}
	}

	// turn rank clockwise from the preflop opener
	rank := make(map[table.Seat]int, len(order))
	for i, seat := range seatsFrom(order, table.OpeningSeat(order, true)) {
		rank[seat] = i
	}

	actedAnywhere := make(map[table.Seat]bool)
	for _, street := range streets {
		for _, a := range street {
			if a.Kind != action.Posts {
				actedAnywhere[a.Position] = true
			}
		}
	}

	missing := make([]table.Seat, 0, len(order))
	for _, seat := range seatsFrom(order, table.OpeningSeat(order, true)) {
		if occupiedSet[seat] && !actedAnywhere[seat] {
			missing = append(missing, seat)
		}
	}

	// weave the synthesized folds into the voluntary entries at each
	// seat's first turn
	mi := 0
	for _, a := range voluntary {
		for mi < len(missing) && rank[missing[mi]] < rank[a.Position] {
			completed = append(completed, action.NewEntry(missing[mi], action.Folds, 0))
			mi++
		}

		completed = append(completed, a)
	}

	for ; mi < len(missing); mi++ {
		completed = append(completed, action.NewEntry(missing[mi], action.Folds, 0))
	}

	return completed
}

// synthesizeBlindPosts creates post entries for occupied blind seats that
// have none recorded
func synthesizeBlindPosts(cfg table.Config, occupied map[table.Seat]bool, preflop []action.Entry) []action.Entry {
	posted := make(map[table.Seat]bool)
	for _, a := range preflop {
		if a.Kind == action.Posts {
			posted[a.Position] = true
		}
	}

	posts := make([]action.Entry, 0, 2)
	if occupied[table.SmallBlind] && !posted[table.SmallBlind] {
		posts = append(posts, action.NewEntry(table.SmallBlind, action.Posts, cfg.SmallBlind))
	}

	if occupied[table.BigBlind] && !posted[table.BigBlind] {
		posts = append(posts, action.NewEntry(table.BigBlind, action.Posts, cfg.BigBlind))
	}

	return posts
}
