package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
	now    func() time.Time
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver, now: time.Now}
}

const sessionColumns = `id,applicant_id,instrument,status,answers_json,started_at,submitted_at`

func (s *SQLStore) Create(ctx context.Context, applicantID string, inst psychotest.Instrument) (Session, error) {
	if _, err := psychotest.ParseInstrument(string(inst)); err != nil {
		return Session{}, err
	}
	sess := Session{
		ID:          uuid.NewString(),
		ApplicantID: applicantID,
		Instrument:  inst,
		Status:      StatusInProgress,
		Answers:     emptyAnswers,
		StartedAt:   s.now().Unix(),
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO sessions (id,applicant_id,instrument,status,answers_json,started_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		sess.ID, sess.ApplicantID, string(sess.Instrument), string(sess.Status), string(sess.Answers), sess.StartedAt)
	if err != nil {
		return Session{}, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

func (s *SQLStore) SaveAnswers(ctx context.Context, id string, answers json.RawMessage) (Session, error) {
	clean, err := validateAnswers(answers)
	if err != nil {
		return Session{}, err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET answers_json=$1 WHERE id=$2 AND status=$3`,
		string(clean), id, string(StatusInProgress))
	if err != nil {
		return Session{}, fmt.Errorf("save answers: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		cur, err := s.Get(ctx, id)
		if err != nil {
			return Session{}, err
		}
		if cur.Status == StatusSubmitted {
			return Session{}, ErrAlreadySubmitted
		}
	}
	return s.Get(ctx, id)
}

func (s *SQLStore) Submit(ctx context.Context, id string) (Session, bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET status=$1, submitted_at=$2 WHERE id=$3 AND status=$4`,
		string(StatusSubmitted), s.now().Unix(), id, string(StatusInProgress))
	if err != nil {
		return Session{}, false, fmt.Errorf("submit session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Session{}, false, fmt.Errorf("submit session: %w", err)
	}
	sess, err := s.Get(ctx, id)
	if err != nil {
		return Session{}, false, err
	}
	return sess, n > 0, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id=$1`, id)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	return sess, err
}

func (s *SQLStore) List(ctx context.Context, opts ListOpts) ([]Session, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if opts.ApplicantID != "" {
		add("applicant_id=$%d", opts.ApplicantID)
	}
	if opts.Instrument != "" {
		add("instrument=$%d", string(opts.Instrument))
	}
	if opts.Status != "" {
		add("status=$%d", string(opts.Status))
	}

	q := `SELECT ` + sessionColumns + ` FROM sessions`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY started_at DESC, id ASC`
	switch {
	case opts.Limit > 0:
		args = append(args, opts.Limit, opts.Offset)
		q += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	case opts.Offset > 0:
		args = append(args, opts.Offset)
		if s.driver == "postgres" {
			q += fmt.Sprintf(` OFFSET $%d`, len(args))
		} else {
			// sqlite only accepts OFFSET after a LIMIT; -1 means unbounded
			q += fmt.Sprintf(` LIMIT -1 OFFSET $%d`, len(args))
		}
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()
	out := []Session{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (Session, error) {
	var (
		sess      Session
		inst      string
		status    string
		answers   string
		submitted sql.NullInt64
	)
	if err := sc.Scan(&sess.ID, &sess.ApplicantID, &inst, &status, &answers, &sess.StartedAt, &submitted); err != nil {
		return Session{}, err
	}
	sess.Instrument = psychotest.Instrument(inst)
	sess.Status = Status(status)
	sess.Answers = json.RawMessage(answers)
	if !json.Valid(sess.Answers) {
		sess.Answers = emptyAnswers
	}
	if submitted.Valid {
		v := submitted.Int64
		sess.SubmittedAt = &v
	}
	return sess, nil
}
