package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/paper-kit/paper/internal/store"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *store.Queries {
	t.Helper()

	conn, err := store.Open(context.Background(), "", true)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return store.New(conn)
}

func TestNotificationRoundTrip(t *testing.T) {
	ctx := context.Background()
	queries := testDB(t)

	posted := time.Now().Unix()
	id, err := queries.InsertNotification(ctx, store.InsertNotificationParams{
		Kind:     "snack",
		Message:  "draft deleted",
		Action:   "UNDO",
		PostedOn: posted,
	})
	require.NoError(t, err)
	require.Positive(t, id)

	require.NoError(t, queries.MarkDismissed(ctx, store.MarkDismissedParams{
		DismissReason:  "action",
		DismissedOn:    posted + 1,
		NotificationID: id,
	}))

	items, err := queries.RecentNotifications(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "snack", items[0].Kind)
	require.Equal(t, "draft deleted", items[0].Message)
	require.Equal(t, "UNDO", items[0].Action)
	require.Equal(t, "action", items[0].DismissReason)
	require.Equal(t, posted+1, items[0].DismissedOn)
}

func TestRecentNotificationsNewestFirst(t *testing.T) {
	ctx := context.Background()
	queries := testDB(t)

	for i := range 5 {
		_, err := queries.InsertNotification(ctx, store.InsertNotificationParams{
			Kind:     "toast",
			Message:  "message",
			PostedOn: int64(1000 + i),
		})
		require.NoError(t, err)
	}

	items, err := queries.RecentNotifications(ctx, 3)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, int64(1004), items[0].PostedOn)
	require.Equal(t, int64(1002), items[2].PostedOn)
}

func TestPruneKeepsNewest(t *testing.T) {
	ctx := context.Background()
	queries := testDB(t)

	for i := range 10 {
		_, err := queries.InsertNotification(ctx, store.InsertNotificationParams{
			Kind:     "toast",
			Message:  "message",
			PostedOn: int64(i),
		})
		require.NoError(t, err)
	}

	require.NoError(t, queries.PruneNotifications(ctx, 4))

	items, err := queries.RecentNotifications(ctx, 100)
	require.NoError(t, err)
	require.Len(t, items, 4)
	require.Equal(t, int64(9), items[0].PostedOn)
	require.Equal(t, int64(6), items[3].PostedOn)
}

func TestMigrateDownAndUpAgain(t *testing.T) {
	conn, err := store.Open(context.Background(), "", true)
	require.NoError(t, err)

	defer func() {
		_ = conn.Close()
	}()

	require.NoError(t, store.Migrate(conn, store.MigrateDn))
	require.NoError(t, store.Migrate(conn, store.MigrateUp))
}
