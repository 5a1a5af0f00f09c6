package store

import (
	"context"
	"fmt"
	"time"
)

// Message is a contact form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Delivered bool      `json:"delivered"`
}

// SaveMessage stores a new submission.
func (s *Store) SaveMessage(ctx context.Context, m Message) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (id, name, email, subject, message, created_at, delivered)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Email, m.Subject, m.Body, formatTime(m.CreatedAt), m.Delivered)
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

// MarkDelivered flags a message as mailed.
func (s *Store) MarkDelivered(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE messages SET delivered = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark message %s delivered: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("mark message %s delivered: no such message", id)
	}
	return nil
}

// RecentMessages returns the newest submissions first.
func (s *Store) RecentMessages(ctx context.Context, limit int) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, COALESCE(subject, ''), message, created_at, delivered
		FROM messages
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var (
			m  Message
			ts string
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &ts, &m.Delivered); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.CreatedAt = parseTime(ts)
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
