package run

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for generation run metadata
type Repository interface {
	// Insert records a finished generation run
	Insert(ctx context.Context, r *Run) error

	// GetByID retrieves a run by ID
	GetByID(ctx context.Context, id uuid.UUID) (*Run, error)
}
