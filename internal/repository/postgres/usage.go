package postgres

import (
	"context"

	"churnscope/internal/domain/usage"
	"churnscope/pkg/errors"
)

// Compile-time check that we implement the interface
var _ usage.Repository = (*UsageEventRepository)(nil)

// UsageEventRepository implements usage.Repository using sqlx
type UsageEventRepository struct {
	db DBTX
}

// NewUsageEventRepository creates a new usage event repository
func NewUsageEventRepository(db DBTX) *UsageEventRepository {
	return &UsageEventRepository{db: db}
}

const usageEventCols = 6

// InsertBatch inserts events in a single multi-row statement
func (r *UsageEventRepository) InsertBatch(ctx context.Context, events []*usage.Event) error {
	if len(events) == 0 {
		return nil
	}

	args := make([]interface{}, 0, len(events)*usageEventCols)
	for _, e := range events {
		args = append(args,
			e.ID, e.CustomerID, e.EventDate, e.FeatureUsed,
			e.SessionDurationMinutes, e.ActionsCount,
		)
	}

	query := `
		INSERT INTO usage_events (
			event_id, customer_id, event_date, feature_used, session_duration_minutes, actions_count
		) VALUES ` + valuesClause(len(events), usageEventCols)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert usage events batch")
	}
	return nil
}

// Count returns the number of persisted events
func (r *UsageEventRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM usage_events`); err != nil {
		return 0, errors.Wrap(err, "count usage events")
	}
	return count, nil
}
