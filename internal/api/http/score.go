package http

import (
	"net/http"

	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
)

// ScoreHandler scores a posted answer list without persisting it.
// POST /score/{instrument}  body: [ {...answer...}, ... ]
func ScoreHandler(sc psychotest.Scorer, inst psychotest.Instrument) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := readBody(w, r)
		if !ok {
			return
		}
		res, err := sc.Score(r.Context(), inst, raw)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
