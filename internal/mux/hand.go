package mux

import (
	"net/http"

	"handscribe-server/pkg/handrecord"

	gmux "github.com/gorilla/mux"
)

// postHand settles a submitted hand record. With ?save=true the settled
// record is also persisted.
func (m *Mux) postHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var record handrecord.Record
		if !decodeRequest(w, r, &record) {
			return
		}

		settled, err := record.Settle()
		if err != nil {
			writeJSONError(w, http.StatusUnprocessableEntity, err)
			return
		}

		if r.FormValue("save") != "true" {
			writeJSON(w, http.StatusOK, settled)
			return
		}

		saved, err := handrecord.Save(r.Context(), settled)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, saved)
	}
}

func (m *Mux) getHands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		records, err := handrecord.List(r.Context(), start, rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

func (m *Mux) getHandUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		saved, err := handrecord.Get(r.Context(), gmux.Vars(r)["uuid"])
		if err != nil {
			if err == handrecord.ErrRecordNotFound {
				writeJSONError(w, http.StatusNotFound, nil)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, saved)
	}
}

func (m *Mux) deleteHandUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := handrecord.Delete(r.Context(), gmux.Vars(r)["uuid"]); err != nil {
			if err == handrecord.ErrRecordNotFound {
				writeJSONError(w, http.StatusNotFound, nil)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, struct {
			Deleted bool `json:"deleted"`
		}{true})
	}
}
