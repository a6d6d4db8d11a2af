package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churnscope/internal/domain/churn"
	"churnscope/internal/domain/customer"
)

func TestGenerateChurnEvents_OverallRate(t *testing.T) {
	p := smallParams(10000)
	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateChurnEvents(NewRand(43), customers, p)

	// 3% baseline plus 5% of the remainder lands near 8% of the historical
	// cohort; with ~90% historical customers the overall rate sits around 7%.
	rate := float64(len(events)) / float64(len(customers))
	assert.Greater(t, rate, 0.05)
	assert.Less(t, rate, 0.09)
}

func TestGenerateChurnEvents_NoDoubleChurn(t *testing.T) {
	p := smallParams(5000)
	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateChurnEvents(NewRand(43), customers, p)

	seen := make(map[string]bool)
	for _, e := range events {
		assert.False(t, seen[e.CustomerID], "customer %s churned twice", e.CustomerID)
		seen[e.CustomerID] = true
	}
}

func TestGenerateChurnEvents_MarksCustomersChurned(t *testing.T) {
	p := smallParams(2000)
	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateChurnEvents(NewRand(43), customers, p)

	churned := make(map[string]bool, len(events))
	for _, e := range events {
		churned[e.CustomerID] = true
	}

	for _, c := range customers {
		if churned[c.ID] {
			assert.Equal(t, customer.StatusChurned, c.Status)
		} else {
			assert.Equal(t, customer.StatusActive, c.Status)
		}
	}
}

func TestGenerateChurnEvents_OnlyHistoricalCohort(t *testing.T) {
	p := smallParams(5000)
	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateChurnEvents(NewRand(43), customers, p)

	byID := make(map[string]*customer.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	for _, e := range events {
		owner := byID[e.CustomerID]
		require.NotNil(t, owner)
		assert.True(t, owner.SignupDate.Before(p.RecencyCutoff),
			"recent-cohort customer %s churned", e.CustomerID)
	}
}

func TestGenerateChurnEvents_DateAndTenureConsistency(t *testing.T) {
	p := smallParams(5000)
	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateChurnEvents(NewRand(43), customers, p)

	byID := make(map[string]*customer.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	for _, e := range events {
		owner := byID[e.CustomerID]
		assert.True(t, e.ChurnDate.After(owner.SignupDate),
			"churn %s not after signup", e.ID)
		assert.False(t, e.ChurnDate.After(p.WindowEnd))
		assert.Equal(t, DaysBetween(owner.SignupDate, e.ChurnDate), e.DaysSinceSignup)
		assert.Equal(t, owner.PlanType, e.FinalPlanType)
		assert.True(t, owner.MonthlyRevenue.Equal(e.FinalMonthlyRevenue))
	}
}

func TestGenerateChurnEvents_SpikeShiftsReasonMix(t *testing.T) {
	p := smallParams(10000)
	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateChurnEvents(NewRand(43), customers, p)

	recentCounts := make(map[churn.Reason]int)
	var recentTotal int
	for _, e := range events {
		if !e.ChurnDate.Before(p.RecencyCutoff) {
			recentCounts[e.Reason]++
			recentTotal++
		}
	}
	require.Greater(t, recentTotal, 100)

	// The spike's reason mix is dominated by pricing and performance
	// complaints (0.35 + 0.25 of the recent weight vector).
	share := float64(recentCounts[churn.ReasonPricingTooHigh]+
		recentCounts[churn.ReasonPoorPerformance]) / float64(recentTotal)
	assert.Greater(t, share, 0.5)

	// And pricing leads the historical mix's top reason swap.
	assert.Greater(t, recentCounts[churn.ReasonPricingTooHigh],
		recentCounts[churn.ReasonCompetitorSwitch])
}

func TestGenerateChurnEvents_AllRecentCohortNoChurn(t *testing.T) {
	p := smallParams(500)
	p.WindowStart = p.RecencyCutoff
	customers := GenerateCustomers(NewRand(42), p)

	events := GenerateChurnEvents(NewRand(43), customers, p)
	assert.Empty(t, events)
}

func TestGenerateChurnEvents_YoungCustomersSkipped(t *testing.T) {
	p := smallParams(500)
	// Everyone signs up within 30 days of the cutoff: the baseline skips
	// them all and the spike picks up the complement.
	p.WindowStart = p.RecencyCutoff.AddDate(0, 0, -20)
	p.WindowEnd = p.RecencyCutoff.AddDate(0, 0, -1)
	customers := GenerateCustomers(NewRand(42), p)

	events := GenerateChurnEvents(NewRand(43), customers, p)
	for _, e := range events {
		// Only spike events can exist; all dated in the recent window.
		assert.False(t, e.ChurnDate.Before(p.RecencyCutoff))
	}
}

func TestGenerateChurnEvents_SequentialIDs(t *testing.T) {
	p := smallParams(3000)
	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateChurnEvents(NewRand(43), customers, p)

	require.NotEmpty(t, events)
	assert.Equal(t, "CHN_00000001", events[0].ID)
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i].ID, events[i-1].ID)
	}
}

func TestGenerateChurnEvents_Deterministic(t *testing.T) {
	p := smallParams(2000)

	a := GenerateChurnEvents(NewRand(7), GenerateCustomers(NewRand(42), p), p)
	b := GenerateChurnEvents(NewRand(7), GenerateCustomers(NewRand(42), p), p)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.Equal(t, a[i].CustomerID, b[i].CustomerID)
		assert.Equal(t, a[i].ChurnDate, b[i].ChurnDate)
		assert.Equal(t, a[i].Reason, b[i].Reason)
	}
}

// Dates inside the recent window never precede the cutoff.
func TestGenerateChurnEvents_SpikeDatedInRecentWindow(t *testing.T) {
	p := smallParams(10000)
	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateChurnEvents(NewRand(43), customers, p)

	var recent int
	for _, e := range events {
		if !e.ChurnDate.Before(p.RecencyCutoff) {
			recent++
			assert.False(t, e.ChurnDate.After(p.WindowEnd))
		}
	}
	// The spike concentrates a visible share of all churn in the final
	// quarter.
	assert.Greater(t, float64(recent)/float64(len(events)), 0.3)
}
