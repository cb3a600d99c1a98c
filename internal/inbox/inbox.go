// Package inbox keeps a local record of contact submissions and whether they
// reached the hosted services. It is a log for the site owner, not a queue:
// nothing is ever re-sent from it.
package inbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // pure Go driver

	"siteprisme.fr/internal/models"
)

// Delivery statuses.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// Entry is one recorded submission.
type Entry struct {
	ID         string                `json:"id"`
	ReceivedAt time.Time             `json:"receivedAt"`
	Source     string                `json:"source"`
	Request    models.ContactRequest `json:"request"`
	RemoteAddr string                `json:"remoteAddr,omitempty"`
	Status     string                `json:"status"`
	Channels   []string              `json:"channels,omitempty"`
	Reference  string                `json:"reference,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// Store is the SQLite-backed inbox.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id           TEXT PRIMARY KEY,
	received_at  INTEGER NOT NULL,
	source       TEXT NOT NULL,
	nom          TEXT NOT NULL,
	email        TEXT NOT NULL,
	telephone    TEXT NOT NULL,
	entreprise   TEXT NOT NULL,
	type_projet  TEXT NOT NULL,
	description  TEXT NOT NULL,
	remote_addr  TEXT NOT NULL,
	status       TEXT NOT NULL,
	channels     TEXT NOT NULL,
	reference    TEXT NOT NULL,
	error        TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_received_at ON submissions(received_at);
`

// Open opens (creating if needed) the inbox database at path.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("inbox: open failed: %w", err)
	}
	// single writer
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("inbox: ping failed: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("inbox: migrate failed: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores the outcome of one submission.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		return errors.New("inbox: entry without id")
	}
	if e.ReceivedAt.IsZero() {
		e.ReceivedAt = s.now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions
			(id, received_at, source, nom, email, telephone, entreprise, type_projet,
			 description, remote_addr, status, channels, reference, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.ReceivedAt.UnixMilli(), e.Source,
		e.Request.Nom, e.Request.Email, e.Request.Telephone, e.Request.Entreprise,
		e.Request.TypeProjet, e.Request.Description,
		e.RemoteAddr, e.Status, strings.Join(e.Channels, ","), e.Reference, e.Error,
	)
	if err != nil {
		return fmt.Errorf("inbox: record %s: %w", e.ID, err)
	}
	return nil
}

// List returns up to limit entries, most recent first. A status filter of ""
// returns every status.
func (s *Store) List(ctx context.Context, status string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, received_at, source, nom, email, telephone, entreprise, type_projet,
		       description, remote_addr, status, channels, reference, error
		FROM submissions
		WHERE (? = '' OR status = ?)
		ORDER BY received_at DESC, id DESC
		LIMIT ?`, status, status, limit)
	if err != nil {
		return nil, fmt.Errorf("inbox: list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e        Entry
			received int64
			channels string
		)
		if err := rows.Scan(&e.ID, &received, &e.Source,
			&e.Request.Nom, &e.Request.Email, &e.Request.Telephone, &e.Request.Entreprise,
			&e.Request.TypeProjet, &e.Request.Description,
			&e.RemoteAddr, &e.Status, &channels, &e.Reference, &e.Error); err != nil {
			return nil, fmt.Errorf("inbox: scan: %w", err)
		}
		e.ReceivedAt = time.UnixMilli(received)
		if channels != "" {
			e.Channels = strings.Split(channels, ",")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Ping reports whether the database answers; used by the health check.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
