package synth

import (
	"time"

	"churnscope/pkg/errors"
)

// Params bundles every tunable of a generation run. Defaults reproduce the
// reference dataset: 10K customers over the 2022-01-01..2024-10-01 window with
// a churn spike in the final quarter.
type Params struct {
	// Customers is the exact number of customer records to produce.
	Customers int

	// AvgEventsPerCustomer is the global usage-event average before the
	// plan-tier multiplier and per-customer jitter are applied.
	AvgEventsPerCustomer int

	// UsageCustomerLimit caps how many customers receive usage events,
	// taken from the head of the customer list. Zero means no cap. This is
	// a volume knob, not a correctness rule.
	UsageCustomerLimit int

	// TicketCustomerLimit caps the without-replacement customer sample that
	// receives support tickets.
	TicketCustomerLimit int

	// AvgTicketsPerCustomer is the Poisson mean for per-customer ticket counts.
	AvgTicketsPerCustomer float64

	// MaxTicketsPerCustomer caps the Poisson draw.
	MaxTicketsPerCustomer int

	// WindowStart and WindowEnd bound every signup date; WindowEnd also caps
	// event, ticket and churn dates.
	WindowStart time.Time
	WindowEnd   time.Time

	// RecencyCutoff partitions customers into the historical and recent
	// cohorts that carry the churn-spike story.
	RecencyCutoff time.Time

	// HistoricalChurnRate is the flat baseline churn applied to the
	// historical cohort.
	HistoricalChurnRate float64

	// SpikeChurnRate is the additional churn applied to the not-yet-churned
	// remainder of the historical cohort, dated inside the recent window.
	SpikeChurnRate float64

	// Now is the clock used to cap usage-event spans. Injected so tests can
	// pin it; zero value means time.Now at generation time.
	Now time.Time
}

// DefaultParams returns the reference dataset parameters.
func DefaultParams() Params {
	return Params{
		Customers:             10000,
		AvgEventsPerCustomer:  50,
		UsageCustomerLimit:    2000,
		TicketCustomerLimit:   3000,
		AvgTicketsPerCustomer: 3,
		MaxTicketsPerCustomer: 10,
		WindowStart:           Date(2022, time.January, 1),
		WindowEnd:             Date(2024, time.October, 1),
		RecencyCutoff:         Date(2024, time.July, 1),
		HistoricalChurnRate:   0.03,
		SpikeChurnRate:        0.05,
	}
}

// Validate rejects windows that cannot produce a dataset. Per-record
// conditions (empty cohorts, non-positive spans) are handled by skipping the
// affected unit, never by failing the run.
func (p Params) Validate() error {
	if p.WindowEnd.Before(p.WindowStart) {
		return errors.Wrapf(errors.ErrInvalidWindow,
			"start %s, end %s", p.WindowStart.Format("2006-01-02"), p.WindowEnd.Format("2006-01-02"))
	}
	if p.Customers < 0 {
		return errors.Wrap(errors.ErrInvalidInput, "customer count must be non-negative")
	}
	return nil
}

// clock returns the injected clock or the wall clock.
func (p Params) clock() time.Time {
	if p.Now.IsZero() {
		return time.Now().UTC()
	}
	return p.Now
}
