package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"relay/pkg/domain"
)

func TestLogEvent(t *testing.T) {
	ctx := context.Background()
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	err := pg.LogEvent(ctx, domain.EventReceiptStored, map[string]string{
		"receipt_id":   "abc",
		"source_group": "120363012345678901@g.us",
	})
	require.NoError(t, err)

	err = pg.LogEvent(ctx, domain.EventQueryUnmatched, nil)
	require.NoError(t, err)

	events, err := pg.Events(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// newest first
	require.Equal(t, domain.EventQueryUnmatched, events[0].Action)
	require.Empty(t, events[0].Metadata)

	require.Equal(t, domain.EventReceiptStored, events[1].Action)
	require.Equal(t, "abc", events[1].Metadata["receipt_id"])
	require.Equal(t, "120363012345678901@g.us", events[1].Metadata["source_group"])
	require.False(t, events[1].CreatedAt.IsZero())
}

func TestEventsLimit(t *testing.T) {
	ctx := context.Background()
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	for range 5 {
		require.NoError(t, pg.LogEvent(ctx, domain.EventReceiptDelivered, nil))
	}

	events, err := pg.Events(ctx, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// ids descend with the newest-first ordering
	require.Greater(t, events[0].ID, events[1].ID)
	require.Greater(t, events[1].ID, events[2].ID)
}
