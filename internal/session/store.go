package session

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
)

type Store interface {
	Create(ctx context.Context, applicantID string, inst psychotest.Instrument) (Session, error)
	// SaveAnswers replaces the stored answer sheet.
	SaveAnswers(ctx context.Context, id string, answers json.RawMessage) (Session, error)
	// Submit closes the session for edits. changed is true only for the call
	// that moved it out of in_progress; submitting again is a no-op.
	Submit(ctx context.Context, id string) (s Session, changed bool, err error)
	Get(ctx context.Context, id string) (Session, error)
	List(ctx context.Context, opts ListOpts) ([]Session, error)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

func NewInMemoryStore() Store {
	return &memoryStore{sessions: map[string]Session{}, now: time.Now}
}

func (m *memoryStore) Create(_ context.Context, applicantID string, inst psychotest.Instrument) (Session, error) {
	if _, err := psychotest.ParseInstrument(string(inst)); err != nil {
		return Session{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Session{
		ID:          uuid.NewString(),
		ApplicantID: applicantID,
		Instrument:  inst,
		Status:      StatusInProgress,
		Answers:     emptyAnswers,
		StartedAt:   m.now().Unix(),
	}
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memoryStore) SaveAnswers(_ context.Context, id string, answers json.RawMessage) (Session, error) {
	clean, err := validateAnswers(answers)
	if err != nil {
		return Session{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if s.Status == StatusSubmitted {
		return Session{}, ErrAlreadySubmitted
	}
	s.Answers = clean
	m.sessions[id] = s
	return s, nil
}

func (m *memoryStore) Submit(_ context.Context, id string) (Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false, ErrNotFound
	}
	if s.Status == StatusSubmitted {
		return s, false, nil
	}
	at := m.now().Unix()
	s.Status = StatusSubmitted
	s.SubmittedAt = &at
	m.sessions[id] = s
	return s, true, nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (m *memoryStore) List(_ context.Context, opts ListOpts) ([]Session, error) {
	m.mu.RLock()
	out := make([]Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		if opts.ApplicantID != "" && s.ApplicantID != opts.ApplicantID {
			continue
		}
		if opts.Instrument != "" && s.Instrument != opts.Instrument {
			continue
		}
		if opts.Status != "" && s.Status != opts.Status {
			continue
		}
		out = append(out, s)
	}
	m.mu.RUnlock()

	// newest first, id as tiebreak so paging is stable
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt != out[j].StartedAt {
			return out[i].StartedAt > out[j].StartedAt
		}
		return out[i].ID < out[j].ID
	})
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return []Session{}, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}
