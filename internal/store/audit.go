package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/chatmux-tools/chatmux/internal/domain"
	"github.com/chatmux-tools/chatmux/internal/log"
)

// Record appends one audit event. A blank ID or zero timestamp is
// filled in before the insert.
func (s *Store) Record(event domain.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO audit_events
		 (id, occurred_at, scenario, persona, input, outcome, target, detail)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID,
		event.OccurredAt.Format(time.RFC3339),
		event.Scenario,
		event.Persona,
		event.Input,
		string(event.Outcome),
		event.Target,
		event.Detail,
	)
	if err != nil {
		log.Error("store: record audit event failed: %v (input=%q)", err, event.Input)
	}
	return err
}

// Recent returns the newest events, newest first. A non-positive limit
// returns everything.
func (s *Store) Recent(limit int) ([]domain.AuditEvent, error) {
	query := `
		SELECT id, occurred_at, scenario, persona, input, outcome, target, detail
		FROM audit_events
		ORDER BY occurred_at DESC, rowid DESC
	`

	var (
		rows *sql.Rows
		err  error
	)

	if limit > 0 {
		rows, err = s.db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AuditEvent

	for rows.Next() {
		e, err := scanAuditEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// scanAuditEvent scans a single row into a domain.AuditEvent.
func scanAuditEvent(rows *sql.Rows) (domain.AuditEvent, error) {
	var (
		e       domain.AuditEvent
		ts      string
		outcome string
	)

	if err := rows.Scan(
		&e.ID,
		&ts,
		&e.Scenario,
		&e.Persona,
		&e.Input,
		&outcome,
		&e.Target,
		&e.Detail,
	); err != nil {
		return domain.AuditEvent{}, err
	}

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return domain.AuditEvent{}, err
	}

	e.OccurredAt = t
	e.Outcome = domain.Outcome(outcome)

	return e, nil
}

// Verify Store implements domain.AuditStore
var _ domain.AuditStore = (*Store)(nil)
