package postgres

import (
	"context"

	"churnscope/internal/domain/ticket"
	"churnscope/pkg/errors"
)

// Compile-time check that we implement the interface
var _ ticket.Repository = (*TicketRepository)(nil)

// TicketRepository implements ticket.Repository using sqlx
type TicketRepository struct {
	db DBTX
}

// NewTicketRepository creates a new support ticket repository
func NewTicketRepository(db DBTX) *TicketRepository {
	return &TicketRepository{db: db}
}

const ticketCols = 9

// InsertBatch inserts tickets in a single multi-row statement. Nil optional
// fields travel as SQL NULLs; ticket_text is always a bind parameter.
func (r *TicketRepository) InsertBatch(ctx context.Context, tickets []*ticket.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	args := make([]interface{}, 0, len(tickets)*ticketCols)
	for _, t := range tickets {
		args = append(args,
			t.ID, t.CustomerID, t.CreatedDate, t.Category, t.Priority,
			t.Status, t.ResolutionTimeHours, t.SatisfactionScore, t.TicketText,
		)
	}

	query := `
		INSERT INTO support_tickets (
			ticket_id, customer_id, created_date, category, priority,
			status, resolution_time_hours, satisfaction_score, ticket_text
		) VALUES ` + valuesClause(len(tickets), ticketCols)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert support tickets batch")
	}
	return nil
}

// Count returns the number of persisted tickets
func (r *TicketRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM support_tickets`); err != nil {
		return 0, errors.Wrap(err, "count support tickets")
	}
	return count, nil
}
