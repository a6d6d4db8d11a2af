package usage

import (
	"context"
)

// Repository defines the interface for usage event persistence
type Repository interface {
	// InsertBatch inserts a batch of events preserving slice order
	InsertBatch(ctx context.Context, events []*Event) error

	// Count returns the number of persisted events
	Count(ctx context.Context) (int, error)
}
