package mux

import (
	"net/http"

	"handscribe-server/pkg/handrecord"
	"handscribe-server/pkg/poker/action"
	"handscribe-server/pkg/poker/betting"
	"handscribe-server/pkg/poker/table"
)

// legalActionsRequest is the per-action query the recording UI issues while
// the user enters a hand
type legalActionsRequest struct {
	TableSize  int                   `json:"tableSize"`
	SmallBlind int                   `json:"smallBlind"`
	BigBlind   int                   `json:"bigBlind"`
	Street     handrecord.StreetName `json:"street"`
	Occupied   []table.Seat          `json:"occupied"`
	Actions    []action.Entry        `json:"actions"`
	Position   table.Seat            `json:"position,omitempty"`
}

type legalActionsResponse struct {
	LegalActions   []action.Kind `json:"legalActions"`
	CallAmount     int           `json:"callAmount"`
	OutstandingBet bool          `json:"outstandingBet"`
	NextToAct      table.Seat    `json:"nextToAct,omitempty"`
	RoundClosed    bool          `json:"roundClosed"`
}

func (m *Mux) postLegalActions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req legalActionsRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		for _, a := range req.Actions {
			if err := a.Validate(); err != nil {
				writeJSONError(w, http.StatusUnprocessableEntity, err)
				return
			}
		}

		cfg := table.Config{
			Size:       req.TableSize,
			SmallBlind: req.SmallBlind,
			BigBlind:   req.BigBlind,
		}

		occupied := req.Occupied
		if len(occupied) == 0 {
			occupied = cfg.SeatOrder()
		}

		round := betting.Round{
			Config:  cfg,
			Order:   cfg.SeatOrder(),
			Active:  occupied,
			Actions: req.Actions,
			Preflop: req.Street == "" || req.Street == handrecord.Preflop,
		}

		next, ok := round.NextToAct()

		resp := legalActionsResponse{
			LegalActions:   round.LegalActions(),
			OutstandingBet: round.HasOutstandingBet(),
			NextToAct:      next,
			RoundClosed:    !ok,
		}

		position := req.Position
		if position == "" {
			position = next
		}

		if position != "" {
			resp.CallAmount = round.CallAmount(position)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
