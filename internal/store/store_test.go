package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/section"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	d, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestOpenMemoryCreatesTables(t *testing.T) {
	d := openTest(t)
	for _, table := range []string{"visitors", "section_views", "messages"} {
		var n int
		require.NoError(t, d.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n), table)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d := openTest(t)
	require.NoError(t, d.migrate())
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "portfolio.db")
	d, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, d.RecordVisit(context.Background(), "abc", "ua", "/"))
	require.NoError(t, d.Close())

	d, err = Open(path)
	require.NoError(t, err)
	defer d.Close()
	visitors, err := d.RecentVisitors(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, visitors, 1)
}

func TestHashIP(t *testing.T) {
	a := HashIP("salt", "10.0.0.1")
	assert.Len(t, a, 16)
	assert.Equal(t, a, HashIP("salt", "10.0.0.1"))
	assert.NotEqual(t, a, HashIP("salt", "10.0.0.2"))
	assert.NotEqual(t, a, HashIP("pepper", "10.0.0.1"))
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	d := openTest(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	require.NoError(t, d.RecordVisit(ctx, "aaa", "ua", "/"))
	require.NoError(t, d.RecordVisit(ctx, "aaa", "ua", "/"))
	require.NoError(t, d.RecordVisit(ctx, "bbb", "ua", "/contact-form"))

	d.now = func() time.Time { return now.AddDate(0, 0, -3) }
	require.NoError(t, d.RecordVisit(ctx, "ccc", "ua", "/"))
	d.now = func() time.Time { return now.AddDate(0, 0, -30) }
	require.NoError(t, d.RecordVisit(ctx, "ccc", "ua", "/"))
	d.now = func() time.Time { return now }

	require.NoError(t, d.RecordSectionView(ctx, "s1", section.About))
	require.NoError(t, d.RecordSectionView(ctx, "s1", section.Skills))
	require.NoError(t, d.RecordSectionView(ctx, "s2", section.About))

	_, err := d.SaveMessage(ctx, Message{Name: "Ada", Email: "ada@example.com", Body: "hi"})
	require.NoError(t, err)

	stats, err := d.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 3, stats.VisitorsToday)
	assert.EqualValues(t, 4, stats.VisitorsThisWeek)
	assert.EqualValues(t, 1, stats.TotalMessages)
	assert.Equal(t, []SectionCount{
		{Section: section.Home, Views: 0},
		{Section: section.About, Views: 2},
		{Section: section.Skills, Views: 1},
		{Section: section.Projects, Views: 0},
		{Section: section.Contact, Views: 0},
	}, stats.SectionViews)
	assert.Len(t, stats.RecentVisitors, 5)
}

func TestMessages(t *testing.T) {
	ctx := context.Background()
	d := openTest(t)

	id, err := d.SaveMessage(ctx, Message{Name: "Ada", Email: "ada@example.com", Body: "hello"})
	require.NoError(t, err)
	require.NoError(t, d.MarkDelivered(ctx, id))

	msgs, err := d.Messages(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Ada", msgs[0].Name)
	assert.Equal(t, "hello", msgs[0].Body)
	assert.True(t, msgs[0].Delivered)
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()
	d := openTest(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	d.now = func() time.Time { return now.AddDate(-2, 0, 0) }
	require.NoError(t, d.RecordVisit(ctx, "old", "ua", "/"))
	require.NoError(t, d.RecordSectionView(ctx, "old", section.Home))
	_, err := d.SaveMessage(ctx, Message{Name: "Old", Email: "old@example.com", Body: "kept"})
	require.NoError(t, err)

	d.now = func() time.Time { return now }
	require.NoError(t, d.RecordVisit(ctx, "new", "ua", "/"))

	removed, err := d.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	stats, err := d.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisitors)
	assert.EqualValues(t, 1, stats.TotalMessages)
}
