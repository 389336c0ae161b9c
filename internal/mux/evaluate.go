package mux

import (
	"errors"
	"net/http"

	"handscribe-server/pkg/deck"
	"handscribe-server/pkg/poker/handrank"
)

type evaluateRequest struct {
	Cards deck.Hand `json:"cards"`
}

type evaluateResponse struct {
	Evaluation  *handrank.Evaluation `json:"evaluation"`
	Description string               `json:"description"`
}

func (m *Mux) postEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		eval := handrank.BestHand(req.Cards)
		if eval == nil {
			writeJSONError(w, http.StatusUnprocessableEntity, errors.New("need at least five unique cards"))
			return
		}

		writeJSON(w, http.StatusOK, evaluateResponse{
			Evaluation:  eval,
			Description: eval.Describe(),
		})
	}
}
