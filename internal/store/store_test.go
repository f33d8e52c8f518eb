package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.RecordVisit(context.Background(), Visit{HashedIP: "abc", Path: "/", Timestamp: time.Now()}))
	assert.FileExists(t, path)
}

func TestStats(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	visits := []Visit{
		{HashedIP: "aaaa", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "aaaa", Path: "/", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "bbbb", Path: "/", Timestamp: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "cccc", Path: "/", Timestamp: now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		require.NoError(t, db.RecordVisit(ctx, v))
	}

	subs := []Submission{
		{SessionID: "s1", SenderName: "A", SenderEmail: "a@b.com", Subject: "S", Status: "success", InboxSent: true, AutoReplySent: true, CreatedAt: now},
		{SessionID: "s2", SenderName: "B", SenderEmail: "b@b.com", Subject: "S", Status: "error", InboxSent: true, Error: "quota", CreatedAt: now.Add(time.Minute)},
		{SessionID: "s3", SenderName: "C", SenderEmail: "c@b.com", Subject: "S", Status: "error", Error: "down", CreatedAt: now.Add(2 * time.Minute)},
	}
	for _, s := range subs {
		_, err := db.RecordSubmission(ctx, s)
		require.NoError(t, err)
	}

	stats, err := db.Stats(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalVisitors)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitorsToday)
	assert.Equal(t, int64(3), stats.VisitorsThisWeek)
	assert.Equal(t, int64(3), stats.Submissions)
	assert.Equal(t, int64(2), stats.FailedSubmissions)
	assert.Equal(t, int64(1), stats.PartialDeliveries)

	require.Len(t, stats.RecentSubmissions, 3)
	latest := stats.RecentSubmissions[0]
	assert.Equal(t, "s3", latest.SessionID)
	assert.Equal(t, "down", latest.Error)
	assert.False(t, latest.InboxSent)
	assert.True(t, stats.RecentSubmissions[1].InboxSent)

	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, "aaaa", stats.RecentVisitors[0].HashedIP)
}

func TestPruneVisits(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	require.NoError(t, db.RecordVisit(ctx, Visit{HashedIP: "old", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, db.RecordVisit(ctx, Visit{HashedIP: "new", Timestamp: now}))

	n, err := db.PruneVisits(ctx, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	visits, err := db.RecentVisits(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "new", visits[0].HashedIP)
}
