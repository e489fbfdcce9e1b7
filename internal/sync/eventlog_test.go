package syncx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-psychotest/internal/db"
	syncx "github.com/mind-engage/mindengage-psychotest/internal/sync"
)

func TestEventRepo_AppendAndList(t *testing.T) {
	ctx := context.Background()
	h, err := db.Open(ctx, db.DriverSQLite, "file:eventlog_test?mode=memory&cache=shared")
	require.NoError(t, err)
	defer h.Close()

	repo := syncx.NewEventRepo(h, "")
	require.NoError(t, repo.Append(ctx, syncx.Event{Type: syncx.EventSessionSubmitted, Key: "s1", DataJSON: `{}`}))
	require.NoError(t, repo.Append(ctx, syncx.Event{SiteID: "branch-2", Type: syncx.EventSessionScored, Key: "s1", DataJSON: `{"complete":true}`}))
	require.NoError(t, repo.Append(ctx, syncx.Event{Type: syncx.EventSessionScored, Key: "s2", DataJSON: `{}`}))

	evs, err := repo.ListByKey(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, evs, 2)
	require.Equal(t, syncx.EventSessionSubmitted, evs[0].Type)
	require.Equal(t, "local", evs[0].SiteID)
	require.Equal(t, "branch-2", evs[1].SiteID)
	require.Less(t, evs[0].Seq, evs[1].Seq)
}
