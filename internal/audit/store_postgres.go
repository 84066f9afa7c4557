package audit

import (
	"context"
	"database/sql"
	"fmt"

	"crosscall/pkg/domain"
)

// PostgresStore persists audit events in an append-only PostgreSQL table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed audit store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the audit table when it does not exist yet.
// Call once at startup; safe to call repeatedly.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS audit_events (
	id         UUID PRIMARY KEY,
	ts         TIMESTAMPTZ NOT NULL,
	action     TEXT NOT NULL,
	line_id    BIGINT NOT NULL,
	actor      TEXT NOT NULL DEFAULT '',
	request_id TEXT NOT NULL DEFAULT '',
	client_ip  TEXT NOT NULL DEFAULT '',
	device     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS audit_events_line_id_idx ON audit_events (line_id, ts);`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure audit schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	const q = `
INSERT INTO audit_events (id, ts, action, line_id, actor, request_id, client_ip, device)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.db.ExecContext(ctx, q,
		event.ID, event.Timestamp, string(event.Action), int64(event.LineID),
		event.Actor, event.RequestID, event.ClientIP, event.Device,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByLine(ctx context.Context, id domain.LineID) ([]Event, error) {
	const q = `
SELECT id, ts, action, line_id, actor, request_id, client_ip, device
FROM audit_events WHERE line_id = $1 ORDER BY ts`
	rows, err := s.db.QueryContext(ctx, q, int64(id))
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e      Event
			action string
			lineID int64
		)
		if err := rows.Scan(&e.ID, &e.Timestamp, &action, &lineID, &e.Actor, &e.RequestID, &e.ClientIP, &e.Device); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Action = Action(action)
		e.LineID = domain.LineID(lineID)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
