package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenIsRepeatable(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/portfolio.db"

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestVisitsAndStats(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	visits := []Visit{
		{HashedIP: "aaa", UserAgent: "ua", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "aaa", Path: "/", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "bbb", Path: "/", Timestamp: now.AddDate(0, 0, -3)},
		{HashedIP: "ccc", Path: "/", Timestamp: now.AddDate(0, -2, 0)},
	}
	for _, v := range visits {
		require.NoError(t, s.RecordVisit(ctx, v))
	}
	require.NoError(t, s.RecordProjectView(ctx, "seo", "aaa", now))
	require.NoError(t, s.RecordProjectView(ctx, "kapray", "aaa", now))
	require.NoError(t, s.RecordProjectView(ctx, "kapray", "bbb", now))

	stats, err := s.Stats(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsToday)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)
	assert.EqualValues(t, 3, stats.ProjectViews)
	assert.Equal(t, []ProjectStat{{"kapray", 2}, {"seo", 1}}, stats.TopProjects)
	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, now.Add(-time.Hour), stats.RecentVisitors[0].Timestamp)
	assert.Equal(t, "ua", stats.RecentVisitors[0].UserAgent)
}

func TestPurgeVisitsBefore(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "old", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "new", Timestamp: now}))

	n, err := s.PurgeVisitsBefore(ctx, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	left, err := s.RecentVisits(ctx, 10)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "new", left[0].HashedIP)
}

func TestMessages(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveMessage(ctx, Message{ID: "m1", Name: "Ada", Email: "ada@example.com", Body: "hi", CreatedAt: now.Add(-time.Minute)}))
	require.NoError(t, s.SaveMessage(ctx, Message{ID: "m2", Name: "Bob", Email: "bob@example.com", Subject: "Work", Body: "hello", CreatedAt: now}))
	require.NoError(t, s.MarkDelivered(ctx, "m1"))
	require.Error(t, s.MarkDelivered(ctx, "missing"))

	msgs, err := s.RecentMessages(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "m2", msgs[0].ID)
	assert.Equal(t, "Work", msgs[0].Subject)
	assert.False(t, msgs[0].Delivered)
	assert.True(t, msgs[1].Delivered)
	assert.Equal(t, now.Add(-time.Minute), msgs[1].CreatedAt)
}
