package analysis

import (
	"context"
	"database/sql"
	"time"
)

// Event types appended to the analysis event log.
const (
	EventEssaySubmitted    = "EssaySubmitted"
	EventAnalysisCompleted = "AnalysisCompleted"
)

// Event is one append-only audit entry keyed by the essay or record it
// concerns.
type Event struct {
	Seq       int64
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

// EventRepo appends to the analysis_events table.
type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO analysis_events (typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}
