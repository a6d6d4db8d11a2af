package run

import (
	"time"

	"github.com/google/uuid"
)

// Run records one complete generation pipeline execution. A run row is
// written only after every table loaded successfully, so its presence marks
// a dataset that is safe to query.
type Run struct {
	ID              uuid.UUID `db:"id"`
	Seed            int64     `db:"seed"`
	CustomerCount   int       `db:"customer_count"`
	UsageEventCount int       `db:"usage_event_count"`
	TicketCount     int       `db:"ticket_count"`
	ChurnEventCount int       `db:"churn_event_count"`
	StartedAt       time.Time `db:"started_at"`
	FinishedAt      time.Time `db:"finished_at"`
}

// New creates a run stamped with the current time.
func New(seed int64) *Run {
	return &Run{
		ID:        uuid.New(),
		Seed:      seed,
		StartedAt: time.Now().UTC(),
	}
}
