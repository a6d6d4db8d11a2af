package postgres

import (
	"context"

	"github.com/lib/pq"

	"churnscope/internal/domain/customer"
	"churnscope/pkg/errors"
)

// Compile-time check that we implement the interface
var _ customer.Repository = (*CustomerRepository)(nil)

// CustomerRepository implements customer.Repository using sqlx
type CustomerRepository struct {
	db DBTX
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerCols = 7

// InsertBatch inserts customers in a single multi-row statement,
// preserving slice order for reproducible row numbering.
func (r *CustomerRepository) InsertBatch(ctx context.Context, customers []*customer.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	args := make([]interface{}, 0, len(customers)*customerCols)
	for _, c := range customers {
		args = append(args,
			c.ID, c.SignupDate, c.PlanType, c.CompanySize,
			c.Industry, c.Status, c.MonthlyRevenue,
		)
	}

	query := `
		INSERT INTO customers (
			customer_id, signup_date, plan_type, company_size, industry, status, monthly_revenue
		) VALUES ` + valuesClause(len(customers), customerCols)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert customers batch")
	}
	return nil
}

// UpdateStatus sets the status of every listed customer
func (r *CustomerRepository) UpdateStatus(ctx context.Context, ids []string, status customer.Status) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE customers SET status = $1 WHERE customer_id = ANY($2)`
	if _, err := r.db.ExecContext(ctx, query, status, pq.Array(ids)); err != nil {
		return errors.Wrap(err, "update customer status")
	}
	return nil
}

// Count returns the number of persisted customers
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM customers`); err != nil {
		return 0, errors.Wrap(err, "count customers")
	}
	return count, nil
}
