package synth

import (
	"churnscope/internal/domain/churn"
	"churnscope/internal/domain/customer"
)

// GenerateChurnEvents carries the dataset's designed story: a flat baseline
// churn across the historical cohort plus a concentrated spike in the recent
// window with a shifted reason mix, lifting the observable rate from ~3% to
// ~8%. Every produced event marks its owning customer churned; a customer
// never churns twice because the spike samples from the complement of the
// baseline draw.
func GenerateChurnEvents(r *Rand, customers []*customer.Customer, p Params) []*churn.Event {
	var historical []*customer.Customer
	for _, c := range customers {
		if c.SignupDate.Before(p.RecencyCutoff) {
			historical = append(historical, c)
		}
	}

	events := make([]*churn.Event, 0)
	seq := 1

	// Baseline churn over the historical cohort.
	baselineCount := int(float64(len(historical)) * p.HistoricalChurnRate)
	baselineDraw := Sample(r, historical, baselineCount)
	drawn := make(map[string]bool, len(baselineDraw))

	for _, c := range baselineDraw {
		drawn[c.ID] = true

		tenure := DaysBetween(c.SignupDate, p.RecencyCutoff)
		// Too young to plausibly churn before the cutoff; skip without
		// replacement so the effective baseline can undershoot slightly.
		if tenure <= 30 {
			continue
		}

		minDays := tenure / 4
		if minDays < 30 {
			minDays = 30
		}
		churnDays := r.IntBetween(minDays, tenure)

		events = append(events, &churn.Event{
			ID:                  churn.FormatID(seq),
			CustomerID:          c.ID,
			ChurnDate:           c.SignupDate.AddDate(0, 0, churnDays),
			Reason:              WeightedChoice(r, historicalReasonWeights),
			DaysSinceSignup:     churnDays,
			FinalPlanType:       c.PlanType,
			FinalMonthlyRevenue: c.MonthlyRevenue,
		})
		seq++
		c.MarkChurned()
	}

	// Spike churn over the remaining historical cohort, dated inside the
	// recent window and drawn from the shifted reason mix.
	eligible := make([]*customer.Customer, 0, len(historical))
	for _, c := range historical {
		if !drawn[c.ID] {
			eligible = append(eligible, c)
		}
	}

	spikeCount := int(float64(len(eligible)) * p.SpikeChurnRate)
	for _, c := range Sample(r, eligible, spikeCount) {
		churnDate := r.DateBetween(p.RecencyCutoff, p.WindowEnd)

		events = append(events, &churn.Event{
			ID:                  churn.FormatID(seq),
			CustomerID:          c.ID,
			ChurnDate:           churnDate,
			Reason:              WeightedChoice(r, recentReasonWeights),
			DaysSinceSignup:     DaysBetween(c.SignupDate, churnDate),
			FinalPlanType:       c.PlanType,
			FinalMonthlyRevenue: c.MonthlyRevenue,
		})
		seq++
		c.MarkChurned()
	}

	return events
}
