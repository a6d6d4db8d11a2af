package synth

import (
	"churnscope/internal/domain/churn"
	"churnscope/internal/domain/customer"
	"churnscope/internal/domain/ticket"
	"churnscope/internal/domain/usage"
)

// Dataset holds one complete generation run. The four slices keep their
// generation order; persisting them in order yields reproducible row numbers.
type Dataset struct {
	Customers   []*customer.Customer
	UsageEvents []*usage.Event
	Tickets     []*ticket.Ticket
	ChurnEvents []*churn.Event
}

// Generate runs the four stages sequentially against a single random state.
// The stage order (customers, usage, tickets, churn) is fixed; reordering or
// parallelizing stages would change the randomness stream and break seed
// reproducibility.
func Generate(r *Rand, p Params) (*Dataset, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	customers := GenerateCustomers(r, p)

	return &Dataset{
		Customers:   customers,
		UsageEvents: GenerateUsageEvents(r, customers, p),
		Tickets:     GenerateSupportTickets(r, customers, p),
		ChurnEvents: GenerateChurnEvents(r, customers, p),
	}, nil
}

// ChurnedCustomerIDs returns the IDs referenced by churn events, in event order.
func (d *Dataset) ChurnedCustomerIDs() []string {
	ids := make([]string, 0, len(d.ChurnEvents))
	for _, e := range d.ChurnEvents {
		ids = append(ids, e.CustomerID)
	}
	return ids
}
