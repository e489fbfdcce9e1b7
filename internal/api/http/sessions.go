package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
	"github.com/mind-engage/mindengage-psychotest/internal/rbac"
	"github.com/mind-engage/mindengage-psychotest/internal/session"
)

// canView: staff see everything, applicants only their own sessions.
func canView(r *http.Request, s session.Session) bool {
	ctx := r.Context()
	return rbac.Can(rbac.RoleFromContext(ctx), rbac.PermSessionViewAll) ||
		s.ApplicantID == rbac.SubjectFromContext(ctx)
}

// canEdit: only the owner (or admin) changes answers or submits.
func canEdit(r *http.Request, s session.Session) bool {
	ctx := r.Context()
	return rbac.RoleFromContext(ctx) == rbac.RoleAdmin ||
		s.ApplicantID == rbac.SubjectFromContext(ctx)
}

// loadSession fetches {sessionID} and hides sessions the caller may not see.
func loadSession(w http.ResponseWriter, r *http.Request, store session.Store, allowed func(*http.Request, session.Session) bool) (session.Session, bool) {
	s, err := store.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeErr(w, err)
		return session.Session{}, false
	}
	if !allowed(r, s) {
		http.Error(w, "session not found", http.StatusNotFound)
		return session.Session{}, false
	}
	return s, true
}

// POST /sessions  {"instrument":"disc","applicant_id":"..."}
// Applicants always open sessions for themselves.
func CreateSessionHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Instrument  string `json:"instrument"`
			ApplicantID string `json:"applicant_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		inst, err := psychotest.ParseInstrument(req.Instrument)
		if err != nil {
			writeErr(w, err)
			return
		}
		applicant := strings.TrimSpace(req.ApplicantID)
		if rbac.RoleFromContext(r.Context()) == rbac.RoleApplicant || applicant == "" {
			applicant = rbac.SubjectFromContext(r.Context())
		}
		s, err := store.Create(r.Context(), applicant, inst)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, s)
	}
}

// GET /sessions?applicant_id=&instrument=&status=&limit=&offset=
func ListSessionsHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		opts := session.ListOpts{
			ApplicantID: strings.TrimSpace(q.Get("applicant_id")),
			Status:      session.Status(strings.TrimSpace(q.Get("status"))),
			Limit:       parseIntDefault(q.Get("limit"), 50),
			Offset:      parseIntDefault(q.Get("offset"), 0),
		}
		if v := strings.TrimSpace(q.Get("instrument")); v != "" {
			inst, err := psychotest.ParseInstrument(v)
			if err != nil {
				writeErr(w, err)
				return
			}
			opts.Instrument = inst
		}
		if !rbac.Can(rbac.RoleFromContext(r.Context()), rbac.PermSessionViewAll) {
			opts.ApplicantID = rbac.SubjectFromContext(r.Context())
		}
		list, err := store.List(r.Context(), opts)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func GetSessionHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, store, canView)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

// PUT /sessions/{sessionID}/answers  body: the full answer list
func SaveAnswersHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, store, canEdit)
		if !ok {
			return
		}
		raw, ok := readBody(w, r)
		if !ok {
			return
		}
		s, err := store.SaveAnswers(r.Context(), s.ID, raw)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

// POST /sessions/{sessionID}/submit
// The analysis is only returned to callers allowed to view analyses.
func SubmitSessionHandler(svc *session.Service) http.HandlerFunc {
	type out struct {
		Session session.Session    `json:"session"`
		Result  *psychotest.Result `json:"result,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, svc.Store(), canEdit)
		if !ok {
			return
		}
		s, res, err := svc.SubmitAndScore(r.Context(), s.ID)
		if err != nil {
			writeErr(w, err)
			return
		}
		resp := out{Session: s}
		if rbac.Can(rbac.RoleFromContext(r.Context()), rbac.PermAnalysisView) {
			resp.Result = &res
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// GET /sessions/{sessionID}/analysis
func AnalysisHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Analyze(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// POST /sessions/rescore  {"session_ids": [...]}; an empty body rescores
// every submitted session.
func RescoreHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SessionIDs []string `json:"session_ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		out, err := svc.Rescore(r.Context(), req.SessionIDs)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"results": out})
	}
}
