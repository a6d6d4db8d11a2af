package usage

import (
	"fmt"
	"time"
)

// Event is a single feature-usage session of a customer.
type Event struct {
	ID                     string    `db:"event_id"`
	CustomerID             string    `db:"customer_id"`
	EventDate              time.Time `db:"event_date"`
	FeatureUsed            string    `db:"feature_used"`
	SessionDurationMinutes int       `db:"session_duration_minutes"`
	ActionsCount           int       `db:"actions_count"`
}

// FormatID renders the canonical event identifier for a 1-based sequence number.
func FormatID(seq int) string {
	return fmt.Sprintf("EVT_%08d", seq)
}
