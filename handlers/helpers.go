// Package handlers exposes the published analytics snapshot over HTTP.
// Every handler reads through pipeline.Current, so a request sees one
// consistent snapshot generation for its whole lifetime.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/lakshitasisodia/Ni3S/analytics"
	"github.com/lakshitasisodia/Ni3S/pipeline"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message, Code: status})
}

// currentSystem fetches the serving snapshot, answering 503 until the
// first refresh has published one.
func currentSystem(w http.ResponseWriter) *pipeline.System {
	sys := pipeline.Current()
	if sys == nil {
		respondError(w, http.StatusServiceUnavailable, "Analytics data not loaded yet. Try again shortly or trigger a refresh.")
		return nil
	}
	return sys
}

// respondLookupError maps unknown state or district lookups to 404 and
// everything else to 500.
func respondLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, analytics.ErrNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}
