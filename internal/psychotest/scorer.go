// Package psychotest routes raw answer sheets to the instrument engines.
package psychotest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mind-engage/mindengage-psychotest/internal/metrics"
	"github.com/mind-engage/mindengage-psychotest/internal/psychotest/disc"
	"github.com/mind-engage/mindengage-psychotest/internal/psychotest/papi"
)

type Instrument string

const (
	InstrumentDISC Instrument = "disc"
	InstrumentPAPI Instrument = "papi"
)

var (
	ErrUnknownInstrument = errors.New("unknown instrument")
	// ErrMalformedAnswers means the sheet itself is not a JSON answer list.
	ErrMalformedAnswers = errors.New("malformed answer sheet")
)

// ParseInstrument accepts the instrument name in any case.
func ParseInstrument(s string) (Instrument, error) {
	switch Instrument(strings.ToLower(strings.TrimSpace(s))) {
	case InstrumentDISC:
		return InstrumentDISC, nil
	case InstrumentPAPI:
		return InstrumentPAPI, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownInstrument, s)
	}
}

// Result wraps an instrument analysis with bookkeeping the caller needs to
// decide whether the sheet was scorable.
type Result struct {
	Instrument Instrument `json:"instrument"`
	Analysis   any        `json:"analysis"`
	Answers    int        `json:"answers"`
	Skipped    int        `json:"skipped"`
	Complete   bool       `json:"complete"`
}

// Strategy scores one instrument from its raw JSON answer list.
type Strategy interface {
	Score(ctx context.Context, raw json.RawMessage) (Result, error)
}

// Scorer routes by instrument to the matching Strategy.
type Scorer interface {
	Score(ctx context.Context, inst Instrument, raw json.RawMessage) (Result, error)
}

type Option func(*config)

type config struct {
	log     *zap.Logger
	metrics *metrics.Metrics
}

func WithLogger(l *zap.Logger) Option       { return func(c *config) { c.log = l } }
func WithMetrics(m *metrics.Metrics) Option { return func(c *config) { c.metrics = m } }

type defaultScorer struct {
	strategies map[Instrument]Strategy
	log        *zap.Logger
	metrics    *metrics.Metrics
}

// NewDefaultScorer installs the DISC and PAPI strategies.
func NewDefaultScorer(opts ...Option) Scorer {
	cfg := &config{log: zap.NewNop()}
	for _, o := range opts {
		o(cfg)
	}
	return &defaultScorer{
		strategies: map[Instrument]Strategy{
			InstrumentDISC: discStrategy{},
			InstrumentPAPI: papiStrategy{},
		},
		log:     cfg.log,
		metrics: cfg.metrics,
	}
}

func (s *defaultScorer) Score(ctx context.Context, inst Instrument, raw json.RawMessage) (Result, error) {
	st, ok := s.strategies[inst]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownInstrument, inst)
	}
	res, err := st.Score(ctx, raw)
	if err != nil {
		return Result{}, fmt.Errorf("score %s: %w", inst, err)
	}
	s.metrics.Observe(string(inst), res.Skipped, res.Complete)
	if res.Skipped > 0 {
		s.log.Debug("answers skipped while tallying",
			zap.String("instrument", string(inst)),
			zap.Int("answers", res.Answers),
			zap.Int("skipped", res.Skipped),
		)
	}
	if !res.Complete {
		s.log.Warn("analysis incomplete",
			zap.String("instrument", string(inst)),
			zap.Int("answers", res.Answers),
		)
	}
	return res, nil
}

// --- Strategies ---

type discStrategy struct{}

func (discStrategy) Score(_ context.Context, raw json.RawMessage) (Result, error) {
	var answers []disc.Answer
	if !isEmpty(raw) {
		if err := json.Unmarshal(raw, &answers); err != nil {
			return Result{}, fmt.Errorf("%w: decode disc answers: %w", ErrMalformedAnswers, err)
		}
	}
	a, st := disc.ScoreWithStats(answers)
	counted := a.Tally.Line1.Total() + a.Tally.Line2.Total()
	complete := counted > 0 &&
		a.Results.Line1.PatternID != 0 &&
		a.Results.Line2.PatternID != 0 &&
		a.Results.Line3.PatternID != 0
	return Result{
		Instrument: InstrumentDISC,
		Analysis:   a,
		Answers:    st.Answers,
		Skipped:    st.Skipped(),
		Complete:   complete,
	}, nil
}

type papiStrategy struct{}

func (papiStrategy) Score(_ context.Context, raw json.RawMessage) (Result, error) {
	var answers []papi.Answer
	if !isEmpty(raw) {
		var err error
		answers, err = papi.DecodeAnswers(raw)
		if err != nil {
			return Result{}, fmt.Errorf("%w: decode papi answers: %w", ErrMalformedAnswers, err)
		}
	}
	a, st := papi.ScoreWithStats(answers)
	return Result{
		Instrument: InstrumentPAPI,
		Analysis:   a,
		Answers:    st.Answers,
		Skipped:    st.Skipped,
		Complete:   st.Answers-st.Skipped > 0,
	}, nil
}

func isEmpty(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
