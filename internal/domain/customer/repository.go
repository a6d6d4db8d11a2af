package customer

import (
	"context"
)

// Repository defines the interface for customer persistence
type Repository interface {
	// InsertBatch inserts a batch of customers preserving slice order
	InsertBatch(ctx context.Context, customers []*Customer) error

	// UpdateStatus sets the status of every listed customer
	UpdateStatus(ctx context.Context, ids []string, status Status) error

	// Count returns the number of persisted customers
	Count(ctx context.Context) (int, error)
}
