package store

import (
	"context"
	"fmt"
	"time"
)

// Visit is one tracked page view. The client address is stored hashed.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// RecordVisit inserts a page view.
func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, formatTime(v.Timestamp))
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecordProjectView counts one opening of a project detail view.
func (s *Store) RecordProjectView(ctx context.Context, projectID, hashedIP string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO project_views (project_id, hashed_ip, timestamp)
		VALUES (?, ?, ?)
	`, projectID, hashedIP, formatTime(at))
	if err != nil {
		return fmt.Errorf("record project view: %w", err)
	}
	return nil
}

// RecentVisits returns the newest visits first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var (
			v  Visit
			ts string
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Timestamp = parseTime(ts)
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// PurgeVisitsBefore deletes visits older than cutoff and reports how many
// rows went away.
func (s *Store) PurgeVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, formatTime(cutoff))
	if err != nil {
		return 0, fmt.Errorf("purge visits: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge visits: %w", err)
	}
	return n, nil
}
