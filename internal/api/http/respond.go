package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
	"github.com/mind-engage/mindengage-psychotest/internal/session"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps domain errors onto status codes.
func writeErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrAlreadySubmitted):
		status = http.StatusConflict
	case errors.Is(err, psychotest.ErrMalformedAnswers):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrInvalidAnswers),
		errors.Is(err, psychotest.ErrUnknownInstrument):
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}

func readBody(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	var raw json.RawMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raw); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return nil, false
	}
	return raw, true
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}
