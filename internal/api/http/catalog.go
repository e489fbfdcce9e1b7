package http

import (
	"net/http"

	"github.com/mind-engage/mindengage-psychotest/internal/psychotest/disc"
	"github.com/mind-engage/mindengage-psychotest/internal/psychotest/papi"
)

func DISCPatternsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, disc.Patterns())
	}
}

func PAPIRolesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"roles":   papi.Roles(),
			"aspects": papi.Aspects(),
			"rules":   papi.Rules(),
		})
	}
}
