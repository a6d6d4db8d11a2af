package postgres

import (
	"context"

	"churnscope/internal/domain/churn"
	"churnscope/pkg/errors"
)

// Compile-time check that we implement the interface
var _ churn.Repository = (*ChurnEventRepository)(nil)

// ChurnEventRepository implements churn.Repository using sqlx
type ChurnEventRepository struct {
	db DBTX
}

// NewChurnEventRepository creates a new churn event repository
func NewChurnEventRepository(db DBTX) *ChurnEventRepository {
	return &ChurnEventRepository{db: db}
}

const churnEventCols = 7

// InsertBatch inserts churn events in a single multi-row statement
func (r *ChurnEventRepository) InsertBatch(ctx context.Context, events []*churn.Event) error {
	if len(events) == 0 {
		return nil
	}

	args := make([]interface{}, 0, len(events)*churnEventCols)
	for _, e := range events {
		args = append(args,
			e.ID, e.CustomerID, e.ChurnDate, e.Reason,
			e.DaysSinceSignup, e.FinalPlanType, e.FinalMonthlyRevenue,
		)
	}

	query := `
		INSERT INTO churn_events (
			churn_id, customer_id, churn_date, churn_reason,
			days_since_signup, final_plan_type, final_monthly_revenue
		) VALUES ` + valuesClause(len(events), churnEventCols)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert churn events batch")
	}
	return nil
}

// Count returns the number of persisted churn events
func (r *ChurnEventRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM churn_events`); err != nil {
		return 0, errors.Wrap(err, "count churn events")
	}
	return count, nil
}
