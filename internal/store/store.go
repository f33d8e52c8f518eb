// Package store persists site analytics and the contact submission log in SQLite.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB with the site's queries.
type DB struct {
	*sql.DB
}

// Open creates or opens the database file at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating database directory")
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "pinging database")
	}

	d := &DB{DB: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "running migrations")
	}
	return d, nil
}

// OpenMemory creates an in-memory database (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, errors.Wrap(err, "opening in-memory database")
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	d := &DB{DB: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "running migrations")
	}
	return d, nil
}

func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp);

CREATE TABLE IF NOT EXISTS submissions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	sender_name TEXT NOT NULL,
	sender_email TEXT NOT NULL,
	subject TEXT NOT NULL,
	status TEXT NOT NULL,
	inbox_sent INTEGER NOT NULL DEFAULT 0,
	auto_reply_sent INTEGER NOT NULL DEFAULT 0,
	error TEXT,
	created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at);
`

// Visit is one tracked page view. HashedIP is never the raw address.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Submission is one contact form dispatch and how each leg went.
type Submission struct {
	ID            int64     `json:"id"`
	SessionID     string    `json:"session_id"`
	SenderName    string    `json:"sender_name"`
	SenderEmail   string    `json:"sender_email"`
	Subject       string    `json:"subject"`
	Status        string    `json:"status"`
	InboxSent     bool      `json:"inbox_sent"`
	AutoReplySent bool      `json:"auto_reply_sent"`
	Error         string    `json:"error,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (d *DB) RecordVisit(ctx context.Context, v Visit) error {
	_, err := d.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, v.Timestamp.UTC())
	return errors.Wrap(err, "recording visit")
}

func (d *DB) RecordSubmission(ctx context.Context, s Submission) (int64, error) {
	res, err := d.ExecContext(ctx, `
		INSERT INTO submissions (session_id, sender_name, sender_email, subject, status,
			inbox_sent, auto_reply_sent, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.SessionID, s.SenderName, s.SenderEmail, s.Subject, s.Status,
		s.InboxSent, s.AutoReplySent, s.Error, s.CreatedAt.UTC())
	if err != nil {
		return 0, errors.Wrap(err, "recording submission")
	}
	return res.LastInsertId()
}

// PruneVisits deletes page views older than cutoff and returns how many went.
func (d *DB) PruneVisits(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := d.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff.UTC())
	if err != nil {
		return 0, errors.Wrap(err, "pruning visitors")
	}
	return res.RowsAffected()
}

func (d *DB) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := d.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "listing visitors")
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, errors.Wrap(err, "scanning visitor")
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func (d *DB) RecentSubmissions(ctx context.Context, limit int) ([]Submission, error) {
	rows, err := d.QueryContext(ctx, `
		SELECT id, session_id, sender_name, sender_email, subject, status,
			inbox_sent, auto_reply_sent, COALESCE(error, ''), created_at
		FROM submissions
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "listing submissions")
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var s Submission
		if err := rows.Scan(&s.ID, &s.SessionID, &s.SenderName, &s.SenderEmail, &s.Subject, &s.Status,
			&s.InboxSent, &s.AutoReplySent, &s.Error, &s.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scanning submission")
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors     int64        `json:"total_visitors"`
	UniqueVisitors    int64        `json:"unique_visitors"`
	VisitorsToday     int64        `json:"visitors_today"`
	VisitorsThisWeek  int64        `json:"visitors_this_week"`
	Submissions       int64        `json:"submissions"`
	FailedSubmissions int64        `json:"failed_submissions"`
	PartialDeliveries int64        `json:"partial_deliveries"`
	RecentVisitors    []Visit      `json:"recent_visitors"`
	RecentSubmissions []Submission `json:"recent_submissions"`
}

// Stats aggregates analytics relative to now.
func (d *DB) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{}
	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}},
		{&stats.Submissions, `SELECT COUNT(*) FROM submissions`, nil},
		{&stats.FailedSubmissions, `SELECT COUNT(*) FROM submissions WHERE status = 'error'`, nil},
		{&stats.PartialDeliveries, `SELECT COUNT(*) FROM submissions WHERE inbox_sent != auto_reply_sent`, nil},
	}
	for _, c := range counts {
		if err := d.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, errors.Wrapf(err, "stats query %q", c.query)
		}
	}

	var err error
	stats.RecentVisitors, err = d.RecentVisits(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentSubmissions, err = d.RecentSubmissions(ctx, 20)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
