package synth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churnscope/internal/domain/customer"
)

func TestGenerateUsageEvents_FieldDomains(t *testing.T) {
	p := smallParams(200)
	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateUsageEvents(NewRand(43), customers, p)

	require.NotEmpty(t, events)

	byID := make(map[string]*customer.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	for _, e := range events {
		owner, ok := byID[e.CustomerID]
		require.True(t, ok, "event %s references unknown customer %s", e.ID, e.CustomerID)

		assert.False(t, e.EventDate.Before(owner.SignupDate),
			"event %s predates signup", e.ID)
		assert.False(t, e.EventDate.After(p.WindowEnd),
			"event %s after window end", e.ID)

		assert.Contains(t, PlanFeatures(owner.PlanType), e.FeatureUsed,
			"feature %q not in plan %s", e.FeatureUsed, owner.PlanType)

		assert.GreaterOrEqual(t, e.ActionsCount, 1)
		assert.GreaterOrEqual(t, e.SessionDurationMinutes, 0)
	}
}

func TestGenerateUsageEvents_SequentialIDs(t *testing.T) {
	p := smallParams(50)
	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateUsageEvents(NewRand(43), customers, p)

	require.NotEmpty(t, events)
	assert.Equal(t, "EVT_00000001", events[0].ID)
	for i, e := range events {
		assert.True(t, strings.HasPrefix(e.ID, "EVT_"))
		if i > 0 {
			assert.Greater(t, e.ID, events[i-1].ID)
		}
	}
}

func TestGenerateUsageEvents_CustomerLimit(t *testing.T) {
	p := smallParams(100)
	p.UsageCustomerLimit = 10
	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateUsageEvents(NewRand(43), customers, p)

	limited := make(map[string]bool, 10)
	for _, c := range customers[:10] {
		limited[c.ID] = true
	}

	for _, e := range events {
		assert.True(t, limited[e.CustomerID],
			"event for %s, outside the head subset", e.CustomerID)
	}
}

func TestGenerateUsageEvents_PlanTierVolume(t *testing.T) {
	p := smallParams(5000)
	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateUsageEvents(NewRand(43), customers, p)

	plans := make(map[string]customer.PlanType, len(customers))
	for _, c := range customers {
		plans[c.ID] = c.PlanType
	}

	counts := make(map[customer.PlanType]int)
	owners := make(map[customer.PlanType]int)
	seen := make(map[string]bool)
	for _, e := range events {
		counts[plans[e.CustomerID]]++
		if !seen[e.CustomerID] {
			seen[e.CustomerID] = true
			owners[plans[e.CustomerID]]++
		}
	}

	require.Greater(t, owners[customer.PlanStarter], 0)
	require.Greater(t, owners[customer.PlanPremium], 0)

	starterAvg := float64(counts[customer.PlanStarter]) / float64(owners[customer.PlanStarter])
	premiumAvg := float64(counts[customer.PlanPremium]) / float64(owners[customer.PlanPremium])

	// Premium customers generate roughly 2.5x the starter volume.
	assert.Greater(t, premiumAvg, starterAvg*1.5)
}

func TestGenerateUsageEvents_SkipsZeroSpanCustomers(t *testing.T) {
	p := smallParams(100)
	p.WindowStart = Date(2024, time.October, 1)
	p.WindowEnd = Date(2024, time.October, 1)
	p.Now = p.WindowEnd

	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateUsageEvents(NewRand(43), customers, p)

	// Every customer signed up on the window end; no active span, no events.
	assert.Empty(t, events)
}

func TestGenerateUsageEvents_ClockCapsSpan(t *testing.T) {
	p := smallParams(100)
	p.Now = Date(2023, time.June, 1)

	customers := GenerateCustomers(NewRand(42), p)
	events := GenerateUsageEvents(NewRand(43), customers, p)

	for _, e := range events {
		assert.False(t, e.EventDate.After(p.Now),
			"event %s after the injected clock", e.ID)
	}
}

func TestGenerateUsageEvents_Deterministic(t *testing.T) {
	p := smallParams(300)
	customers := GenerateCustomers(NewRand(42), p)

	a := GenerateUsageEvents(NewRand(7), customers, p)
	b := GenerateUsageEvents(NewRand(7), customers, p)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, *a[i], *b[i])
	}
}
