package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/section"
)

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TotalMessages    int64           `json:"total_messages"`
	SectionViews     []SectionCount  `json:"section_views"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

// Stats gathers the dashboard numbers. Sections are reported in page order,
// including those never viewed.
func (d *DB) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := d.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.AddDate(0, 0, -7)}},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
	}
	for _, c := range counts {
		if err := d.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("querying stats: %w", err)
		}
	}

	views, err := d.sectionViews(ctx)
	if err != nil {
		return nil, err
	}
	stats.SectionViews = views

	stats.RecentVisitors, err = d.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (d *DB) sectionViews(ctx context.Context) ([]SectionCount, error) {
	rows, err := d.QueryContext(ctx, `SELECT section, COUNT(*) FROM section_views GROUP BY section`)
	if err != nil {
		return nil, fmt.Errorf("querying section views: %w", err)
	}
	defer rows.Close()

	byID := make(map[section.ID]int64)
	for rows.Next() {
		var id string
		var n int64
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scanning section views: %w", err)
		}
		byID[section.ID(id)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]SectionCount, 0, len(section.Order))
	for _, id := range section.Order {
		out = append(out, SectionCount{Section: id, Views: byID[id]})
	}
	return out, nil
}
