package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"churnscope/internal/domain/run"
	"churnscope/pkg/errors"
)

// Compile-time check that we implement the interface
var _ run.Repository = (*RunRepository)(nil)

// RunRepository implements run.Repository using sqlx
type RunRepository struct {
	db DBTX
}

// NewRunRepository creates a new generation run repository
func NewRunRepository(db DBTX) *RunRepository {
	return &RunRepository{db: db}
}

// Insert records a finished generation run
func (r *RunRepository) Insert(ctx context.Context, rec *run.Run) error {
	query := `
		INSERT INTO generation_runs (
			id, seed, customer_count, usage_event_count, ticket_count, churn_event_count,
			started_at, finished_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Seed, rec.CustomerCount, rec.UsageEventCount,
		rec.TicketCount, rec.ChurnEventCount, rec.StartedAt, rec.FinishedAt,
	)
	if err != nil {
		return errors.Wrap(err, "insert generation run")
	}
	return nil
}

// GetByID retrieves a run by ID
func (r *RunRepository) GetByID(ctx context.Context, id uuid.UUID) (*run.Run, error) {
	var rec run.Run

	query := `
		SELECT id, seed, customer_count, usage_event_count, ticket_count, churn_event_count,
			   started_at, finished_at
		FROM generation_runs
		WHERE id = $1`

	err := r.db.GetContext(ctx, &rec, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.Wrap(errors.ErrNotFound, "generation run not found")
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
