package memory

import (
	"context"
	"testing"
	"time"

	"homework_notification_bot/internal/domain/dispatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchRepository_AddAssignsSequentialIDs(t *testing.T) {
	repo := NewDispatchRepository()
	ctx := context.Background()

	first := &dispatch.Record{Kind: dispatch.KindStatus, Text: "a", SentAt: time.Unix(100, 0)}
	second := &dispatch.Record{Kind: dispatch.KindError, Text: "b", SentAt: time.Unix(200, 0)}

	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestDispatchRepository_ListSinceFiltersByTime(t *testing.T) {
	repo := NewDispatchRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &dispatch.Record{Text: "old", SentAt: time.Unix(100, 0)}))
	require.NoError(t, repo.Add(ctx, &dispatch.Record{Text: "boundary", SentAt: time.Unix(200, 0)}))
	require.NoError(t, repo.Add(ctx, &dispatch.Record{Text: "new", SentAt: time.Unix(300, 0)}))

	records, err := repo.ListSince(ctx, time.Unix(200, 0))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "boundary", records[0].Text, "records sent exactly at the boundary are included")
	assert.Equal(t, "new", records[1].Text)

	all, err := repo.ListSince(ctx, time.Time{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDispatchRepository_ReturnsCopies(t *testing.T) {
	repo := NewDispatchRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &dispatch.Record{Text: "original", SentAt: time.Unix(100, 0)}))

	records, err := repo.ListSince(ctx, time.Time{})
	require.NoError(t, err)
	records[0].Text = "mutated"

	again, err := repo.ListSince(ctx, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Text)
}
