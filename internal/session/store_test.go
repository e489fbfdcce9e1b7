package session_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-psychotest/internal/db"
	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
	"github.com/mind-engage/mindengage-psychotest/internal/session"
)

func stores(t *testing.T) map[string]session.Store {
	t.Helper()
	h, err := db.Open(context.Background(), db.DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return map[string]session.Store{
		"memory": session.NewInMemoryStore(),
		"sqlite": session.NewSQLStore(h, "sqlite"),
	}
}

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s, err := st.Create(ctx, "applicant-1", psychotest.InstrumentPAPI)
			require.NoError(t, err)
			require.NotEmpty(t, s.ID)
			require.Equal(t, session.StatusInProgress, s.Status)
			require.JSONEq(t, `[]`, string(s.Answers))
			require.Nil(t, s.SubmittedAt)

			sheet := json.RawMessage(` [{"question_number":1,"selected_role_id":3}] `)
			s, err = st.SaveAnswers(ctx, s.ID, sheet)
			require.NoError(t, err)
			require.JSONEq(t, string(sheet), string(s.Answers))

			// answers are replaced, not merged
			s, err = st.SaveAnswers(ctx, s.ID, json.RawMessage(`[{"question_number":2,"selected_role_id":4}]`))
			require.NoError(t, err)
			require.JSONEq(t, `[{"question_number":2,"selected_role_id":4}]`, string(s.Answers))

			s, changed, err := st.Submit(ctx, s.ID)
			require.NoError(t, err)
			require.True(t, changed)
			require.Equal(t, session.StatusSubmitted, s.Status)
			require.NotNil(t, s.SubmittedAt)
			first := *s.SubmittedAt

			again, changed, err := st.Submit(ctx, s.ID)
			require.NoError(t, err)
			require.False(t, changed)
			require.Equal(t, first, *again.SubmittedAt)

			_, err = st.SaveAnswers(ctx, s.ID, json.RawMessage(`[]`))
			require.ErrorIs(t, err, session.ErrAlreadySubmitted)

			got, err := st.Get(ctx, s.ID)
			require.NoError(t, err)
			require.Equal(t, s.ID, got.ID)
			require.Equal(t, psychotest.InstrumentPAPI, got.Instrument)
		})
	}
}

func TestStore_Errors(t *testing.T) {
	ctx := context.Background()
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.Get(ctx, "missing")
			require.ErrorIs(t, err, session.ErrNotFound)
			_, _, err = st.Submit(ctx, "missing")
			require.ErrorIs(t, err, session.ErrNotFound)
			_, err = st.SaveAnswers(ctx, "missing", json.RawMessage(`[]`))
			require.ErrorIs(t, err, session.ErrNotFound)

			_, err = st.Create(ctx, "a", "mbti")
			require.ErrorIs(t, err, psychotest.ErrUnknownInstrument)

			s, err := st.Create(ctx, "a", psychotest.InstrumentDISC)
			require.NoError(t, err)
			for _, bad := range []string{`{"question_number":1}`, `[1,2`, `"x"`} {
				_, err = st.SaveAnswers(ctx, s.ID, json.RawMessage(bad))
				require.ErrorIs(t, err, session.ErrInvalidAnswers, bad)
			}
			s, err = st.SaveAnswers(ctx, s.ID, nil)
			require.NoError(t, err)
			require.JSONEq(t, `[]`, string(s.Answers))
		})
	}
}

func TestStore_ListFilters(t *testing.T) {
	ctx := context.Background()
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			a1, err := st.Create(ctx, "alice", psychotest.InstrumentDISC)
			require.NoError(t, err)
			_, err = st.Create(ctx, "alice", psychotest.InstrumentPAPI)
			require.NoError(t, err)
			_, err = st.Create(ctx, "bob", psychotest.InstrumentDISC)
			require.NoError(t, err)
			_, _, err = st.Submit(ctx, a1.ID)
			require.NoError(t, err)

			all, err := st.List(ctx, session.ListOpts{})
			require.NoError(t, err)
			require.Len(t, all, 3)

			alice, err := st.List(ctx, session.ListOpts{ApplicantID: "alice"})
			require.NoError(t, err)
			require.Len(t, alice, 2)

			discs, err := st.List(ctx, session.ListOpts{Instrument: psychotest.InstrumentDISC})
			require.NoError(t, err)
			require.Len(t, discs, 2)

			done, err := st.List(ctx, session.ListOpts{Status: session.StatusSubmitted})
			require.NoError(t, err)
			require.Len(t, done, 1)
			require.Equal(t, a1.ID, done[0].ID)

			page1, err := st.List(ctx, session.ListOpts{Limit: 2})
			require.NoError(t, err)
			page2, err := st.List(ctx, session.ListOpts{Limit: 2, Offset: 2})
			require.NoError(t, err)
			require.Len(t, page1, 2)
			require.Len(t, page2, 1)
			require.NotContains(t, []string{page1[0].ID, page1[1].ID}, page2[0].ID)

			// offset without a limit skips rows the same way on every store
			rest, err := st.List(ctx, session.ListOpts{Offset: 1})
			require.NoError(t, err)
			require.Len(t, rest, 2)
			require.Equal(t, all[1].ID, rest[0].ID)
			past, err := st.List(ctx, session.ListOpts{Offset: 5})
			require.NoError(t, err)
			require.Empty(t, past)
		})
	}
}
