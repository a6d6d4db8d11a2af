package churn

import (
	"context"
)

// Repository defines the interface for churn event persistence
type Repository interface {
	// InsertBatch inserts a batch of churn events preserving slice order
	InsertBatch(ctx context.Context, events []*Event) error

	// Count returns the number of persisted churn events
	Count(ctx context.Context) (int, error)
}
