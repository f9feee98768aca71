// Package store persists privacy-conscious visit metrics, section views and
// contact messages in SQLite.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Zachkp/portfolio/internal/section"
)

// DB wraps a sql.DB with the portfolio's queries.
type DB struct {
	*sql.DB
	path string
	now  func() time.Time
}

// Open creates or opens a SQLite database at path and migrates it.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, path: path, now: time.Now}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return d, nil
}

// OpenMemory creates an in-memory database, for tests.
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Every pooled connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)

	d := &DB{DB: sqlDB, path: ":memory:", now: time.Now}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
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
	user_agent TEXT NOT NULL DEFAULT '',
	path TEXT NOT NULL DEFAULT '',
	timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp);

CREATE TABLE IF NOT EXISTS section_views (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	section TEXT NOT NULL,
	timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_section_views_section ON section_views(section);

CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	body TEXT NOT NULL,
	delivered INTEGER NOT NULL DEFAULT 0,
	timestamp DATETIME NOT NULL
);
`

// HashIP returns a salted, truncated hash so raw addresses are never stored.
// The same ip and salt always hash to the same value.
func HashIP(salt, ip string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// VisitorMetric is one tracked page view.
type VisitorMetric struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Message is a contact form submission.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	Delivered bool      `json:"delivered"`
	Timestamp time.Time `json:"timestamp"`
}

// SectionCount is how often a section became the active one.
type SectionCount struct {
	Section section.ID `json:"section"`
	Views   int64      `json:"views"`
}

func (d *DB) RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error {
	_, err := d.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		hashedIP, userAgent, path, d.now().UTC())
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

func (d *DB) RecordSectionView(ctx context.Context, sessionID string, id section.ID) error {
	_, err := d.ExecContext(ctx,
		`INSERT INTO section_views (session_id, section, timestamp) VALUES (?, ?, ?)`,
		sessionID, string(id), d.now().UTC())
	if err != nil {
		return fmt.Errorf("recording section view: %w", err)
	}
	return nil
}

// SaveMessage stores a submission and returns its id.
func (d *DB) SaveMessage(ctx context.Context, m Message) (int64, error) {
	res, err := d.ExecContext(ctx,
		`INSERT INTO messages (name, email, body, delivered, timestamp) VALUES (?, ?, ?, ?, ?)`,
		m.Name, m.Email, m.Body, m.Delivered, d.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("saving message: %w", err)
	}
	return res.LastInsertId()
}

// MarkDelivered records that a message was sent on by mail.
func (d *DB) MarkDelivered(ctx context.Context, id int64) error {
	if _, err := d.ExecContext(ctx, `UPDATE messages SET delivered = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("marking message %d delivered: %w", id, err)
	}
	return nil
}

func (d *DB) RecentVisitors(ctx context.Context, limit int) ([]VisitorMetric, error) {
	rows, err := d.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying visitors: %w", err)
	}
	defer rows.Close()

	var visitors []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning visitor: %w", err)
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

func (d *DB) Messages(ctx context.Context, limit int) ([]Message, error) {
	rows, err := d.QueryContext(ctx, `
		SELECT id, name, email, body, delivered, timestamp
		FROM messages
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Delivered, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// Cleanup deletes visits and section views older than maxAge and returns the
// number of rows removed. Messages are kept.
func (d *DB) Cleanup(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := d.now().UTC().Add(-maxAge)

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
