package store

import (
	"context"
	"fmt"
	"time"
)

// Retention is how long visitor and section records are kept.
const Retention = 365 * 24 * time.Hour

type Visitor struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type SectionCount struct {
	Section string `json:"section"`
	Views   int64  `json:"views"`
}

type Message struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	Delivered bool      `json:"delivered"`
	Timestamp time.Time `json:"timestamp"`
}

type Stats struct {
	TotalVisitors    int64          `json:"total_visitors"`
	UniqueVisitors   int64          `json:"unique_visitors"`
	VisitorsToday    int64          `json:"visitors_today"`
	VisitorsThisWeek int64          `json:"visitors_this_week"`
	LiveViews        int64          `json:"live_views"`
	TotalMessages    int64          `json:"total_messages"`
	SectionReach     []SectionCount `json:"section_reach"`
	RecentVisitors   []Visitor      `json:"recent_visitors"`
}

// RecordVisit stores one page request. ip must already be hashed.
func (d *DB) RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error {
	_, err := d.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, d.stamp())
	if err != nil {
		return fmt.Errorf("recording visitor: %w", err)
	}
	return nil
}

// RecordSectionView stores that a page view reached section.
func (d *DB) RecordSectionView(ctx context.Context, viewID, section string) error {
	_, err := d.ExecContext(ctx, `
		INSERT INTO section_views (view_id, section, timestamp)
		VALUES (?, ?, ?)
	`, viewID, section, d.stamp())
	if err != nil {
		return fmt.Errorf("recording section view: %w", err)
	}
	return nil
}

// SaveMessage stores a contact form submission and returns its ID.
func (d *DB) SaveMessage(ctx context.Context, m Message) (int64, error) {
	res, err := d.ExecContext(ctx, `
		INSERT INTO messages (name, email, body, delivered, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, m.Name, m.Email, m.Body, m.Delivered, d.stamp())
	if err != nil {
		return 0, fmt.Errorf("saving message: %w", err)
	}
	return res.LastInsertId()
}

// MarkDelivered flags a stored message as mailed.
func (d *DB) MarkDelivered(ctx context.Context, id int64) error {
	_, err := d.ExecContext(ctx, `UPDATE messages SET delivered = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking message %d delivered: %w", id, err)
	}
	return nil
}

// Messages returns the newest contact messages first.
func (d *DB) Messages(ctx context.Context, limit int) ([]Message, error) {
	rows, err := d.QueryContext(ctx, `
		SELECT id, name, email, body, delivered, timestamp
		FROM messages
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("loading messages: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		var ts string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Delivered, &ts); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		m.Timestamp = parseTime(ts)
		out = append(out, m)
	}
	return out, rows.Err()
}

// RecentVisitors returns the newest visitor records first.
func (d *DB) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := d.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("loading visitors: %w", err)
	}
	defer rows.Close()

	var out []Visitor
	for rows.Next() {
		var v Visitor
		var ts string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scanning visitor: %w", err)
		}
		v.Timestamp = parseTime(ts)
		out = append(out, v)
	}
	return out, rows.Err()
}

// SectionReach counts how many page views reached each section.
func (d *DB) SectionReach(ctx context.Context) ([]SectionCount, error) {
	rows, err := d.QueryContext(ctx, `
		SELECT section, COUNT(DISTINCT view_id) AS views
		FROM section_views
		GROUP BY section
		ORDER BY views DESC, section
	`)
	if err != nil {
		return nil, fmt.Errorf("loading section reach: %w", err)
	}
	defer rows.Close()

	var out []SectionCount
	for rows.Next() {
		var c SectionCount
		if err := rows.Scan(&c.Section, &c.Views); err != nil {
			return nil, fmt.Errorf("scanning section reach: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Stats collects the admin dashboard numbers.
func (d *DB) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := d.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Format(timeLayout)

	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{midnight}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{d.since(7 * 24 * time.Hour)}},
		{&stats.LiveViews, `SELECT COUNT(DISTINCT view_id) FROM section_views`, nil},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
	}
	for _, c := range counts {
		if err := d.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("loading stats: %w", err)
		}
	}

	var err error
	if stats.SectionReach, err = d.SectionReach(ctx); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = d.RecentVisitors(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}

// Cleanup removes visitor and section records older than Retention and
// returns how many rows were deleted.
func (d *DB) Cleanup(ctx context.Context) (int64, error) {
	cutoff := d.since(Retention)
	var total int64
	for _, table := range []string{"visitors", "section_views"} {
		res, err := d.ExecContext(ctx, `DELETE FROM `+table+` WHERE timestamp < ?`, cutoff)
		if err != nil {
			return total, fmt.Errorf("cleaning %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}
