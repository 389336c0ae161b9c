package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
}

const uuidPattern = `(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}`

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

	// engine queries
	r.Methods(http.MethodPost).Path("/evaluate").Handler(this.postEvaluate())
	r.Methods(http.MethodPost).Path("/legal-actions").Handler(this.postLegalActions())

	// hand records
	r.Methods(http.MethodPost).Path("/hand").Handler(this.postHand())
	r.Methods(http.MethodGet).Path("/hand").Handler(this.getHands())
	r.Methods(http.MethodGet).Path("/hand/{uuid:" + uuidPattern + "}").Handler(this.getHandUUID())
	r.Methods(http.MethodDelete).Path("/hand/{uuid:" + uuidPattern + "}").Handler(this.deleteHandUUID())

	return this
}
