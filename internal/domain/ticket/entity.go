package ticket

import (
	"fmt"
	"time"
)

// Priority is the urgency bucket assigned at ticket creation.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Status is the lifecycle state of a ticket.
type Status string

const (
	StatusResolved Status = "resolved"
	StatusClosed   Status = "closed"
	StatusPending  Status = "pending"
)

// Terminal reports whether a ticket reached a final state.
// Resolution time and satisfaction score exist only for terminal tickets.
func (s Status) Terminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// Ticket is a generated support case with free text for sentiment analysis.
// ResolutionTimeHours and SatisfactionScore are nil unless the status is terminal.
type Ticket struct {
	ID                  string    `db:"ticket_id"`
	CustomerID          string    `db:"customer_id"`
	CreatedDate         time.Time `db:"created_date"`
	Category            string    `db:"category"`
	Priority            Priority  `db:"priority"`
	Status              Status    `db:"status"`
	ResolutionTimeHours *int      `db:"resolution_time_hours"`
	SatisfactionScore   *int      `db:"satisfaction_score"`
	TicketText          string    `db:"ticket_text"`
}

// FormatID renders the canonical ticket identifier for a 1-based sequence number.
func FormatID(seq int) string {
	return fmt.Sprintf("TKT_%08d", seq)
}
