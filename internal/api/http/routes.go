package http

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	auth "github.com/mind-engage/mindengage-psychotest/internal/auth/middleware"
	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
	"github.com/mind-engage/mindengage-psychotest/internal/rbac"
	"github.com/mind-engage/mindengage-psychotest/internal/session"
)

type Deps struct {
	Auth        *auth.AuthService
	Credentials auth.Credentials
	Scorer      psychotest.Scorer
	Sessions    *session.Service
	Log         *zap.Logger

	CORSOrigins         []string
	EnableApplicantAuth bool
	// Optional.
	DB      *sql.DB
	Metrics http.Handler
}

func NewRouter(d Deps) chi.Router {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(d.Auth, d.Credentials, d.Log))
	r.Post("/auth/applicant", auth.ApplicantLoginHandler(d.Auth, d.EnableApplicantAuth))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(d.Auth))

		pr.With(rbac.Require(rbac.PermScoreRun)).
			Post("/score/disc", ScoreHandler(d.Scorer, psychotest.InstrumentDISC))
		pr.With(rbac.Require(rbac.PermScoreRun)).
			Post("/score/papi", ScoreHandler(d.Scorer, psychotest.InstrumentPAPI))

		pr.With(rbac.Require(rbac.PermSessionCreate)).
			Post("/sessions", CreateSessionHandler(d.Sessions.Store()))
		pr.With(rbac.RequireAny(rbac.PermSessionViewOwn, rbac.PermSessionViewAll)).
			Get("/sessions", ListSessionsHandler(d.Sessions.Store()))
		pr.With(rbac.Require(rbac.PermAnalysisRescore)).
			Post("/sessions/rescore", RescoreHandler(d.Sessions))
		pr.With(rbac.RequireAny(rbac.PermSessionViewOwn, rbac.PermSessionViewAll)).
			Get("/sessions/{sessionID}", GetSessionHandler(d.Sessions.Store()))
		pr.With(rbac.Require(rbac.PermSessionAnswer)).
			Put("/sessions/{sessionID}/answers", SaveAnswersHandler(d.Sessions.Store()))
		pr.With(rbac.Require(rbac.PermSessionSubmit)).
			Post("/sessions/{sessionID}/submit", SubmitSessionHandler(d.Sessions))
		pr.With(rbac.Require(rbac.PermAnalysisView)).
			Get("/sessions/{sessionID}/analysis", AnalysisHandler(d.Sessions))

		pr.Get("/catalog/disc/patterns", DISCPatternsHandler())
		pr.Get("/catalog/papi/roles", PAPIRolesHandler())
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if d.DB != nil {
			if err := d.DB.PingContext(r.Context()); err != nil {
				http.Error(w, "db unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics)
	}
	return r
}
