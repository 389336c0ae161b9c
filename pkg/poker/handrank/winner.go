package handrank

import "handscribe-server/pkg/deck"

// ShowdownHand pairs a player name with the cards they can play
type ShowdownHand struct {
	Name  string
	Cards deck.Hand
}

// ShowdownResult is the outcome for a single player at showdown
type ShowdownResult struct {
	Name       string
	Evaluation *Evaluation
	Winner     bool
}

// DetermineWinners evaluates every hand and marks each player whose best
// hand ties the strongest as a winner. Hands that cannot be evaluated
// (fewer than five cards) never win.
func DetermineWinners(hands []ShowdownHand) []ShowdownResult {
	results := make([]ShowdownResult, len(hands))

	var best *Evaluation
	for i, h := range hands {
		eval := BestHand(h.Cards)
		results[i] = ShowdownResult{
			Name:       h.Name,
			Evaluation: eval,
		}

		if eval != nil && (best == nil || eval.Beats(best)) {
			best = eval
		}
	}

	if best == nil {
		return results
	}

	for i := range results {
		if results[i].Evaluation != nil && results[i].Evaluation.Compare(best) >= 0 {
			results[i].Winner = true
		}
	}

	return results
}
