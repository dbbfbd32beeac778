package app

import (
	"context"
	"testing"
	"time"

	"homework_notification_bot/internal/domain/dispatch"
	"homework_notification_bot/internal/infra/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendDailyDigest_CountsLastDayOnly(t *testing.T) {
	repo := memory.NewDispatchRepository()
	now := time.Unix(1700000000, 0)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &dispatch.Record{
		ChatID: testChatID, Kind: dispatch.KindStatus, Text: "old", SentAt: now.Add(-48 * time.Hour),
	}))
	require.NoError(t, repo.Add(ctx, &dispatch.Record{
		ChatID: testChatID, Kind: dispatch.KindStatus, Text: "recent status", SentAt: now.Add(-2 * time.Hour),
	}))
	require.NoError(t, repo.Add(ctx, &dispatch.Record{
		ChatID: testChatID, Kind: dispatch.KindError, Text: "recent error", SentAt: now.Add(-time.Hour),
	}))

	tg := &fakeTelegramClient{}
	s := NewDigestService(repo, tg, testLogger(), testChatID, &fakeClock{now: now})

	require.NoError(t, s.SendDailyDigest(ctx))
	require.Len(t, tg.sent, 1)
	assert.Equal(t, "Сводка за сутки: уведомлений о статусах — 1, сообщений об ошибках — 1.", tg.sent[0])
}

func TestSendDailyDigest_QuietDaySendsNothing(t *testing.T) {
	repo := memory.NewDispatchRepository()
	tg := &fakeTelegramClient{}
	s := NewDigestService(repo, tg, testLogger(), testChatID, &fakeClock{now: time.Unix(1700000000, 0)})

	require.NoError(t, s.SendDailyDigest(context.Background()))
	assert.Empty(t, tg.sent)
}

func TestSendDailyDigest_DeliveryFailureIsReturned(t *testing.T) {
	repo := memory.NewDispatchRepository()
	now := time.Unix(1700000000, 0)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &dispatch.Record{
		ChatID: testChatID, Kind: dispatch.KindStatus, Text: "recent", SentAt: now.Add(-time.Hour),
	}))

	tg := &fakeTelegramClient{err: assert.AnError}
	s := NewDigestService(repo, tg, testLogger(), testChatID, &fakeClock{now: now})

	assert.Error(t, s.SendDailyDigest(ctx))
}
