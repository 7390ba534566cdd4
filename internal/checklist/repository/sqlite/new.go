package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"realtime-checklist/internal/checklist/feed"
	"realtime-checklist/internal/checklist/repository"
	pkgLog "realtime-checklist/pkg/log"
)

//go:embed schema/schema.sql
var schemaSQL string

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const (
	maxRetries  = 5
	initialWait = 100 * time.Millisecond
	busyTimeout = 5000 // milliseconds
)

// Open opens the database at path and applies the schema.
// The pool is pinned to a single connection: SQLite has one writer, and item
// updates read then write inside a transaction, so concurrent batch writers
// queue on the pool instead of failing with SQLITE_BUSY. Transactions begin
// IMMEDIATE for other processes sharing the file.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_txlock=immediate&_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)", path, busyTimeout)
	if path == MemoryPath {
		dsn = "file::memory:?_pragma=foreign_keys(1)"
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := pingWithRetry(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schemaSQL); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	return conn, nil
}

func pingWithRetry(ctx context.Context, conn *sql.DB) error {
	wait := initialWait
	for i := 0; i < maxRetries; i++ {
		if err := conn.PingContext(ctx); err == nil {
			return nil
		}

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
		}
	}

	return fmt.Errorf("failed to ping database after %d retries", maxRetries)
}

type implRepository struct {
	l   pkgLog.Logger
	db  *sql.DB
	hub *feed.Hub
	now func() time.Time
}

// New creates the SQLite checklist repository. Writes are published to hub.
func New(l pkgLog.Logger, db *sql.DB, hub *feed.Hub) repository.Repository {
	return &implRepository{
		l:   l,
		db:  db,
		hub: hub,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Subscribe implements repository.Repository on top of the in-process hub.
func (r *implRepository) Subscribe(ctx context.Context, checklistID string) (repository.Subscription, error) {
	if checklistID == "" {
		return nil, fmt.Errorf("%w: empty checklist id", repository.ErrFailedToSubscribe)
	}
	return r.hub.Subscribe(checklistID), nil
}
