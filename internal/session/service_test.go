package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-psychotest/internal/cache"
	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
	"github.com/mind-engage/mindengage-psychotest/internal/psychotest/papi"
	"github.com/mind-engage/mindengage-psychotest/internal/session"
	syncx "github.com/mind-engage/mindengage-psychotest/internal/sync"
)

type countingScorer struct {
	inner psychotest.Scorer
	mu    sync.Mutex
	calls int
}

func (c *countingScorer) Score(ctx context.Context, inst psychotest.Instrument, raw json.RawMessage) (psychotest.Result, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.inner.Score(ctx, inst, raw)
}

type recordedEvents struct {
	mu   sync.Mutex
	evs  []syncx.Event
	fail bool
}

func (r *recordedEvents) Append(_ context.Context, e syncx.Event) error {
	if r.fail {
		return errors.New("event log down")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evs = append(r.evs, e)
	return nil
}

func (r *recordedEvents) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.evs {
		out = append(out, e.Type)
	}
	return out
}

func newService(t *testing.T, ev session.EventAppender) (*session.Service, *countingScorer) {
	t.Helper()
	c, err := cache.NewAnalysisCache(16)
	require.NoError(t, err)
	sc := &countingScorer{inner: psychotest.NewDefaultScorer()}
	svc := session.NewService(session.NewInMemoryStore(), sc,
		session.WithCache(c),
		session.WithEvents(ev),
		session.WithRescoreWorkers(2),
	)
	return svc, sc
}

const papiSheet = `[
	{"question_number":1,"selected_role_id":7},
	{"question_number":2,"selected_role_id":7},
	{"question_number":3,"selected_role_id":7},
	{"question_number":4,"selected_role_id":7},
	{"question_number":5,"selected_role_id":7},
	{"question_number":6,"selected_role_id":7}
]`

func TestService_AnalyzeIsCachedPerAnswerSheet(t *testing.T) {
	ctx := context.Background()
	svc, sc := newService(t, &recordedEvents{})

	s, err := svc.Store().Create(ctx, "alice", psychotest.InstrumentPAPI)
	require.NoError(t, err)
	_, err = svc.Store().SaveAnswers(ctx, s.ID, json.RawMessage(papiSheet))
	require.NoError(t, err)

	r1, err := svc.Analyze(ctx, s.ID)
	require.NoError(t, err)
	r2, err := svc.Analyze(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, 1, sc.calls)
	require.Equal(t, r1, r2)

	a := r1.Analysis.(papi.Analysis)
	require.Equal(t, 6, a.Tally[7])
	require.True(t, r1.Complete)

	_, err = svc.Store().SaveAnswers(ctx, s.ID, json.RawMessage(`[{"question_number":1,"selected_role_id":2}]`))
	require.NoError(t, err)
	r3, err := svc.Analyze(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, 2, sc.calls)
	require.Equal(t, 1, r3.Analysis.(papi.Analysis).Tally[2])
}

func TestService_SubmitAndScoreRecordsEventsOnce(t *testing.T) {
	ctx := context.Background()
	ev := &recordedEvents{}
	svc, _ := newService(t, ev)

	s, err := svc.Store().Create(ctx, "alice", psychotest.InstrumentPAPI)
	require.NoError(t, err)
	_, err = svc.Store().SaveAnswers(ctx, s.ID, json.RawMessage(papiSheet))
	require.NoError(t, err)

	sess, res, err := svc.SubmitAndScore(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, session.StatusSubmitted, sess.Status)
	require.True(t, res.Complete)
	require.Equal(t, []string{syncx.EventSessionSubmitted, syncx.EventSessionScored}, ev.types())
	require.Equal(t, s.ID, ev.evs[0].Key)

	_, _, err = svc.SubmitAndScore(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, ev.types(), 2)

	_, _, err = svc.SubmitAndScore(ctx, "missing")
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestService_EventFailureDoesNotFailSubmit(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, &recordedEvents{fail: true})

	s, err := svc.Store().Create(ctx, "bob", psychotest.InstrumentDISC)
	require.NoError(t, err)
	_, res, err := svc.SubmitAndScore(ctx, s.ID)
	require.NoError(t, err)
	require.False(t, res.Complete)
}

func TestService_RescoreKeepsOrderAndBypassesCache(t *testing.T) {
	ctx := context.Background()
	ev := &recordedEvents{}
	svc, sc := newService(t, ev)

	var ids []string
	for i := 0; i < 5; i++ {
		s, err := svc.Store().Create(ctx, "alice", psychotest.InstrumentPAPI)
		require.NoError(t, err)
		_, err = svc.Store().SaveAnswers(ctx, s.ID, json.RawMessage(papiSheet))
		require.NoError(t, err)
		_, _, err = svc.SubmitAndScore(ctx, s.ID)
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}
	require.Equal(t, 5, sc.calls)

	ids = append(ids, "missing")
	out, err := svc.Rescore(ctx, ids)
	require.NoError(t, err)
	require.Len(t, out, 6)
	for i, o := range out[:5] {
		require.Equal(t, ids[i], o.SessionID)
		require.True(t, o.Complete)
		require.Empty(t, o.Error)
	}
	require.Equal(t, "missing", out[5].SessionID)
	require.NotEmpty(t, out[5].Error)
	require.Equal(t, 10, sc.calls)

	// no ids: every submitted session
	all, err := svc.Rescore(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 5)
}

func TestService_RescoreCancelled(t *testing.T) {
	svc, sc := newService(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	s, err := svc.Store().Create(ctx, "alice", psychotest.InstrumentPAPI)
	require.NoError(t, err)
	cancel()

	out, err := svc.Rescore(ctx, []string{s.ID})
	require.NoError(t, err)
	require.Contains(t, out[0].Error, "context canceled")
	require.Zero(t, sc.calls)
}

func TestService_SubmitWithStrayElementsStillScores(t *testing.T) {
	ctx := context.Background()
	ev := &recordedEvents{}
	svc, _ := newService(t, ev)

	s, err := svc.Store().Create(ctx, "alice", psychotest.InstrumentDISC)
	require.NoError(t, err)
	_, err = svc.Store().SaveAnswers(ctx, s.ID, json.RawMessage(`[{"question_number":1,"most":"1","least":"2"}, 7]`))
	require.NoError(t, err)

	sess, res, err := svc.SubmitAndScore(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, session.StatusSubmitted, sess.Status)
	require.Equal(t, 2, res.Answers)
	require.Equal(t, 2, res.Skipped)
	require.Equal(t, []string{syncx.EventSessionSubmitted, syncx.EventSessionScored}, ev.types())
}

type failingScorer struct{}

func (failingScorer) Score(context.Context, psychotest.Instrument, json.RawMessage) (psychotest.Result, error) {
	return psychotest.Result{}, psychotest.ErrMalformedAnswers
}

func TestService_ScoringFailureLeavesSessionOpen(t *testing.T) {
	ctx := context.Background()
	ev := &recordedEvents{}
	store := session.NewInMemoryStore()
	svc := session.NewService(store, failingScorer{}, session.WithEvents(ev))

	s, err := store.Create(ctx, "alice", psychotest.InstrumentDISC)
	require.NoError(t, err)

	_, _, err = svc.SubmitAndScore(ctx, s.ID)
	require.ErrorIs(t, err, psychotest.ErrMalformedAnswers)
	require.Empty(t, ev.types())

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, session.StatusInProgress, got.Status)
	_, err = store.SaveAnswers(ctx, s.ID, json.RawMessage(`[]`))
	require.NoError(t, err)
}

func TestService_ConcurrentSubmitsRecordEventsOnce(t *testing.T) {
	ctx := context.Background()
	ev := &recordedEvents{}
	svc, _ := newService(t, ev)

	s, err := svc.Store().Create(ctx, "alice", psychotest.InstrumentPAPI)
	require.NoError(t, err)
	_, err = svc.Store().SaveAnswers(ctx, s.ID, json.RawMessage(papiSheet))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.SubmitAndScore(ctx, s.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, []string{syncx.EventSessionSubmitted, syncx.EventSessionScored}, ev.types())
}
