// Package store keeps the operator's site analytics and contact inbox in
// SQLite. Page view state is never written here.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryDSN is an in-memory database shared by every connection of the
// process. Nothing survives a restart.
const MemoryDSN = "file:portfolio?mode=memory&cache=shared"

// timeLayout is how timestamps are stored so that SQL string comparison
// matches chronological order.
const timeLayout = "2006-01-02 15:04:05"

// DB wraps a sql.DB with the portfolio's queries.
type DB struct {
	*sql.DB
	now func() time.Time
}

// Open opens the database described by dsn and applies the schema. A plain
// file path has its directory created and WAL enabled.
func Open(dsn string) (*DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if dsn == ":memory:" {
		// Each connection would get its own empty database.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, now: time.Now}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return d, nil
}

// OpenMemory opens a private in-memory database.
func OpenMemory() (*DB, error) {
	return Open(":memory:")
}

// SetClock replaces the time source used for timestamps and windows.
func (d *DB) SetClock(now func() time.Time) {
	d.now = now
}

func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

func (d *DB) stamp() string {
	return d.now().UTC().Format(timeLayout)
}

func (d *DB) since(ago time.Duration) string {
	return d.now().UTC().Add(-ago).Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT NOT NULL DEFAULT '',
	path TEXT NOT NULL DEFAULT '',
	timestamp TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp);

CREATE TABLE IF NOT EXISTS section_views (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	view_id TEXT NOT NULL,
	section TEXT NOT NULL,
	timestamp TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_section_views_section ON section_views(section);

CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	body TEXT NOT NULL,
	delivered INTEGER NOT NULL DEFAULT 0,
	timestamp TEXT NOT NULL
);
`
