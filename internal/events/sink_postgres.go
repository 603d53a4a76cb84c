package events

import (
	"context"
	"database/sql"
	"fmt"

	// Registers the postgres driver.
	_ "github.com/lib/pq"
)

const createEventsTable = `
CREATE TABLE IF NOT EXISTS lifebank_events (
	id         UUID PRIMARY KEY,
	kind       TEXT NOT NULL,
	emitted_at TIMESTAMPTZ NOT NULL,
	payload    JSONB NOT NULL
)`

// PostgresSink appends events to a durable log table, giving operators a
// queryable history without consuming the Kafka stream.
type PostgresSink struct {
	db *sql.DB
}

// NewPostgresSink opens the database and ensures the log table exists.
func NewPostgresSink(ctx context.Context, dsn string) (*PostgresSink, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open events db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping events db: %w", err)
	}
	if _, err := db.ExecContext(ctx, createEventsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create events table: %w", err)
	}
	return &PostgresSink{db: db}, nil
}

// NewPostgresSinkFromDB wraps an existing connection (used by tests).
func NewPostgresSinkFromDB(ctx context.Context, db *sql.DB) (*PostgresSink, error) {
	if _, err := db.ExecContext(ctx, createEventsTable); err != nil {
		return nil, fmt.Errorf("create events table: %w", err)
	}
	return &PostgresSink{db: db}, nil
}

func (s *PostgresSink) Publish(ctx context.Context, event Event) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lifebank_events (id, kind, emitted_at, payload) VALUES ($1, $2, $3, $4)`,
		event.ID, string(event.Kind), event.Timestamp, []byte(event.Payload),
	)
	if err != nil {
		return fmt.Errorf("insert event %s: %w", event.ID, err)
	}
	return nil
}

// ListByKind returns events of one kind in emission order.
func (s *PostgresSink) ListByKind(ctx context.Context, kind Kind) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, emitted_at, payload FROM lifebank_events WHERE kind = $1 ORDER BY emitted_at`,
		string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		var kindStr string
		if err := rows.Scan(&e.ID, &kindStr, &e.Timestamp, (*[]byte)(&e.Payload)); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Kind = Kind(kindStr)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *PostgresSink) Close() error {
	return s.db.Close()
}
