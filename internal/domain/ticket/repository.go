package ticket

import (
	"context"
)

// Repository defines the interface for support ticket persistence
type Repository interface {
	// InsertBatch inserts a batch of tickets preserving slice order
	InsertBatch(ctx context.Context, tickets []*Ticket) error

	// Count returns the number of persisted tickets
	Count(ctx context.Context) (int, error)
}
