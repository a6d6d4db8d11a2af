package synth

import (
	"churnscope/internal/domain/customer"
	"churnscope/internal/domain/usage"
)

// GenerateUsageEvents produces feature-usage sessions for (a head subset of)
// the customers. Randomness is consumed customer-major, event-minor, so the
// iteration order is part of the reproducibility contract.
//
// A customer's active span runs from signup to min(window end, now); a
// non-positive span skips the customer entirely rather than failing the run.
func GenerateUsageEvents(r *Rand, customers []*customer.Customer, p Params) []*usage.Event {
	if p.UsageCustomerLimit > 0 && len(customers) > p.UsageCustomerLimit {
		customers = customers[:p.UsageCustomerLimit]
	}

	spanEnd := p.WindowEnd
	if now := p.clock(); now.Before(spanEnd) {
		spanEnd = now
	}

	events := make([]*usage.Event, 0, len(customers)*p.AvgEventsPerCustomer)
	seq := 1

	for _, c := range customers {
		// The per-customer jitter draw happens before the span check so
		// the randomness stream does not depend on the clock.
		numEvents := int(float64(p.AvgEventsPerCustomer) * planEventMultiplier[c.PlanType] * r.Uniform(0.5, 1.5))

		daysActive := DaysBetween(c.SignupDate, spanEnd)
		if daysActive <= 0 {
			continue
		}

		features := planFeatures[c.PlanType]

		for i := 0; i < numEvents; i++ {
			eventDate := c.SignupDate.AddDate(0, 0, r.IntBetween(0, daysActive))
			feature := Choice(r, features)

			duration := int(float64(featureBaseDuration[feature]) * r.Uniform(0.3, 2.0))
			maxActions := duration / 3
			if maxActions < 1 {
				maxActions = 1
			}
			actions := r.IntBetween(1, maxActions)

			events = append(events, &usage.Event{
				ID:                     usage.FormatID(seq),
				CustomerID:             c.ID,
				EventDate:              eventDate,
				FeatureUsed:            feature,
				SessionDurationMinutes: duration,
				ActionsCount:           actions,
			})
			seq++
		}
	}

	return events
}
