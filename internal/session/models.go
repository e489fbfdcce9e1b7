package session

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusSubmitted  Status = "submitted"
)

// Session is one applicant sitting one instrument. Answers hold the raw
// sheet exactly as collected; analyses are always derived from it.
type Session struct {
	ID          string                `json:"id"`
	ApplicantID string                `json:"applicant_id"`
	Instrument  psychotest.Instrument `json:"instrument"`
	Status      Status                `json:"status"`
	Answers     json.RawMessage       `json:"answers"`
	StartedAt   int64                 `json:"started_at"`
	SubmittedAt *int64                `json:"submitted_at,omitempty"`
}

type ListOpts struct {
	ApplicantID string
	Instrument  psychotest.Instrument
	Status      Status
	Limit       int // 0 = no limit
	Offset      int
}

var (
	ErrNotFound         = errors.New("session not found")
	ErrAlreadySubmitted = errors.New("session already submitted")
	ErrInvalidAnswers   = errors.New("answers must be a JSON array")
)

var emptyAnswers = json.RawMessage(`[]`)

func validateAnswers(raw json.RawMessage) (json.RawMessage, error) {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 || bytes.Equal(t, []byte("null")) {
		return emptyAnswers, nil
	}
	if t[0] != '[' || !json.Valid(t) {
		return nil, ErrInvalidAnswers
	}
	out := make(json.RawMessage, len(t))
	copy(out, t)
	return out, nil
}
