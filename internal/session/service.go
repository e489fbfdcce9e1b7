package session

import (
	"context"
	"encoding/json"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/mind-engage/mindengage-psychotest/internal/cache"
	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
	syncx "github.com/mind-engage/mindengage-psychotest/internal/sync"
)

// EventAppender records session lifecycle events. *syncx.EventRepo satisfies it.
type EventAppender interface {
	Append(ctx context.Context, e syncx.Event) error
}

type Service struct {
	store   Store
	scorer  psychotest.Scorer
	cache   *cache.AnalysisCache
	events  EventAppender
	log     *zap.Logger
	workers int
}

type ServiceOption func(*Service)

func WithCache(c *cache.AnalysisCache) ServiceOption { return func(s *Service) { s.cache = c } }
func WithEvents(e EventAppender) ServiceOption        { return func(s *Service) { s.events = e } }
func WithLogger(l *zap.Logger) ServiceOption          { return func(s *Service) { s.log = l } }

// WithRescoreWorkers bounds the goroutines used by Rescore.
func WithRescoreWorkers(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

func NewService(store Store, scorer psychotest.Scorer, opts ...ServiceOption) *Service {
	s := &Service{store: store, scorer: scorer, log: zap.NewNop(), workers: 4}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) Store() Store { return s.store }

// Analyze scores the session's current answer sheet. Results are cached per
// (session, answers) so repeated reads do not rescore.
func (s *Service) Analyze(ctx context.Context, id string) (psychotest.Result, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return psychotest.Result{}, err
	}
	return s.analyze(ctx, sess)
}

func (s *Service) analyze(ctx context.Context, sess Session) (psychotest.Result, error) {
	key := cache.Key(sess.ID, sess.Answers)
	if r, ok := s.cache.Get(key); ok {
		return r, nil
	}
	r, err := s.scorer.Score(ctx, sess.Instrument, sess.Answers)
	if err != nil {
		return psychotest.Result{}, err
	}
	s.cache.Put(key, r)
	return r, nil
}

// SubmitAndScore closes the session and returns its analysis. A sheet that
// cannot be scored leaves the session open for correction. Events are only
// recorded by the call that actually submitted.
func (s *Service) SubmitAndScore(ctx context.Context, id string) (Session, psychotest.Result, error) {
	cur, err := s.store.Get(ctx, id)
	if err != nil {
		return Session{}, psychotest.Result{}, err
	}
	if _, err := s.analyze(ctx, cur); err != nil {
		return cur, psychotest.Result{}, err
	}
	sess, changed, err := s.store.Submit(ctx, id)
	if err != nil {
		return Session{}, psychotest.Result{}, err
	}
	// answers may have been replaced between Get and Submit; this is a cache
	// hit when they were not
	res, err := s.analyze(ctx, sess)
	if err != nil {
		return sess, psychotest.Result{}, err
	}
	if changed {
		s.emit(ctx, syncx.EventSessionSubmitted, sess.ID, map[string]any{
			"applicant_id": sess.ApplicantID,
			"instrument":   sess.Instrument,
			"submitted_at": sess.SubmittedAt,
		})
		s.emit(ctx, syncx.EventSessionScored, sess.ID, scoredPayload(res, false))
	}
	return sess, res, nil
}

type RescoreOutcome struct {
	SessionID string `json:"session_id"`
	Complete  bool   `json:"complete"`
	Skipped   int    `json:"skipped"`
	Error     string `json:"error,omitempty"`
}

// Rescore drops cached analyses and scores the given sessions again. With no
// ids it rescores every submitted session. Outcomes keep the input order.
func (s *Service) Rescore(ctx context.Context, ids []string) ([]RescoreOutcome, error) {
	if len(ids) == 0 {
		list, err := s.store.List(ctx, ListOpts{Status: StatusSubmitted})
		if err != nil {
			return nil, err
		}
		for _, sess := range list {
			ids = append(ids, sess.ID)
		}
	}

	out := make([]RescoreOutcome, len(ids))
	p := pool.New().WithMaxGoroutines(s.workers)
	for i, id := range ids {
		p.Go(func() {
			out[i] = s.rescoreOne(ctx, id)
		})
	}
	p.Wait()

	failed := 0
	for _, o := range out {
		if o.Error != "" {
			failed++
		}
	}
	s.log.Info("rescore finished", zap.Int("sessions", len(out)), zap.Int("failed", failed))
	return out, nil
}

func (s *Service) rescoreOne(ctx context.Context, id string) RescoreOutcome {
	o := RescoreOutcome{SessionID: id}
	if err := ctx.Err(); err != nil {
		o.Error = err.Error()
		return o
	}
	s.cache.Forget(id)
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		o.Error = err.Error()
		return o
	}
	res, err := s.analyze(ctx, sess)
	if err != nil {
		o.Error = err.Error()
		return o
	}
	s.emit(ctx, syncx.EventSessionScored, id, scoredPayload(res, true))
	o.Complete = res.Complete
	o.Skipped = res.Skipped
	return o
}

func scoredPayload(r psychotest.Result, rescore bool) map[string]any {
	return map[string]any{
		"instrument": r.Instrument,
		"answers":    r.Answers,
		"skipped":    r.Skipped,
		"complete":   r.Complete,
		"rescore":    rescore,
	}
}

// emit is best effort: a failed append is logged, never returned.
func (s *Service) emit(ctx context.Context, typ, key string, data map[string]any) {
	if s.events == nil {
		return
	}
	b, err := json.Marshal(data)
	if err != nil {
		s.log.Warn("encode event", zap.String("type", typ), zap.Error(err))
		return
	}
	if err := s.events.Append(ctx, syncx.Event{Type: typ, Key: key, DataJSON: string(b)}); err != nil {
		s.log.Warn("append event", zap.String("type", typ), zap.String("session", key), zap.Error(err))
	}
}
