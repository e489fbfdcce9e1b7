package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	api "github.com/mind-engage/mindengage-psychotest/internal/api/http"
	auth "github.com/mind-engage/mindengage-psychotest/internal/auth/middleware"
	"github.com/mind-engage/mindengage-psychotest/internal/cache"
	"github.com/mind-engage/mindengage-psychotest/internal/config"
	"github.com/mind-engage/mindengage-psychotest/internal/db"
	"github.com/mind-engage/mindengage-psychotest/internal/logging"
	"github.com/mind-engage/mindengage-psychotest/internal/metrics"
	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
	"github.com/mind-engage/mindengage-psychotest/internal/session"
	syncx "github.com/mind-engage/mindengage-psychotest/internal/sync"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	cancel()
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer dbh.Close()

	var m *metrics.Metrics
	var metricsHandler http.Handler
	if cfg.EnableMetrics {
		m = metrics.New(nil)
		metricsHandler = m.Handler()
	}

	analyses, err := cache.NewAnalysisCache(cfg.CacheSize)
	if err != nil {
		logger.Fatal("analysis cache", zap.Error(err))
	}

	scorer := psychotest.NewDefaultScorer(
		psychotest.WithLogger(logger.Named("scorer")),
		psychotest.WithMetrics(m),
	)
	svc := session.NewService(
		session.NewSQLStore(dbh, cfg.DBDriver),
		scorer,
		session.WithCache(analyses),
		session.WithEvents(syncx.NewEventRepo(dbh, cfg.SiteID)),
		session.WithLogger(logger.Named("session")),
		session.WithRescoreWorkers(cfg.RescoreWorkers),
	)

	router := api.NewRouter(api.Deps{
		Auth: auth.NewAuthService(cfg.AuthHMACSecret),
		Credentials: auth.Credentials{
			AdminUser:           cfg.AdminUser,
			AdminPassHash:       cfg.AdminPassHash,
			HRUser:              cfg.HRUser,
			HRPassHash:          cfg.HRPassHash,
			AllowApplicantLogin: cfg.Mode == config.ModeOffline,
		},
		Scorer:              scorer,
		Sessions:            svc,
		Log:                 logger.Named("http"),
		CORSOrigins:         cfg.CORSOrigins(),
		EnableApplicantAuth: cfg.EnableApplicantAuth,
		DB:                  dbh,
		Metrics:             metricsHandler,
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("mode", string(cfg.Mode)),
		zap.String("db", cfg.DBDriver),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
