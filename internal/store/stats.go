package store

import (
	"context"
	"fmt"
	"time"
)

// ProjectStat is the number of detail views of one project.
type ProjectStat struct {
	ProjectID string `json:"project_id"`
	Views     int64  `json:"views"`
}

// Stats summarizes the site for the admin dashboard.
type Stats struct {
	TotalVisitors    int64         `json:"total_visitors"`
	UniqueVisitors   int64         `json:"unique_visitors"`
	VisitorsToday    int64         `json:"visitors_today"`
	VisitorsThisWeek int64         `json:"visitors_this_week"`
	ProjectViews     int64         `json:"project_views"`
	TotalMessages    int64         `json:"total_messages"`
	TopProjects      []ProjectStat `json:"top_projects"`
	RecentVisitors   []Visit       `json:"recent_visitors"`
}

// Stats computes dashboard numbers relative to now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{}
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{formatTime(midnight)}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{formatTime(now.AddDate(0, 0, -7))}},
		{&stats.ProjectViews, `SELECT COUNT(*) FROM project_views`, nil},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	top, err := s.TopProjects(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.TopProjects = top

	recent, err := s.RecentVisits(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent

	return stats, nil
}

// TopProjects returns the most viewed projects.
func (s *Store) TopProjects(ctx context.Context, limit int) ([]ProjectStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT project_id, COUNT(*) AS views
		FROM project_views
		GROUP BY project_id
		ORDER BY views DESC, project_id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top projects: %w", err)
	}
	defer rows.Close()

	var out []ProjectStat
	for rows.Next() {
		var p ProjectStat
		if err := rows.Scan(&p.ProjectID, &p.Views); err != nil {
			return nil, fmt.Errorf("scan project stat: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
