package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churnscope/pkg/errors"
)

func TestGenerate_DoubleRunIdentical(t *testing.T) {
	p := smallParams(1000)

	a, err := Generate(NewRand(42), p)
	require.NoError(t, err)
	b, err := Generate(NewRand(42), p)
	require.NoError(t, err)

	require.Equal(t, len(a.Customers), len(b.Customers))
	require.Equal(t, len(a.UsageEvents), len(b.UsageEvents))
	require.Equal(t, len(a.Tickets), len(b.Tickets))
	require.Equal(t, len(a.ChurnEvents), len(b.ChurnEvents))

	for i := range a.Customers {
		assert.Equal(t, a.Customers[i].ID, b.Customers[i].ID)
		assert.Equal(t, a.Customers[i].SignupDate, b.Customers[i].SignupDate)
		assert.True(t, a.Customers[i].MonthlyRevenue.Equal(b.Customers[i].MonthlyRevenue))
	}
	for i := range a.UsageEvents {
		assert.Equal(t, *a.UsageEvents[i], *b.UsageEvents[i])
	}
	for i := range a.Tickets {
		assert.Equal(t, a.Tickets[i].ID, b.Tickets[i].ID)
		assert.Equal(t, a.Tickets[i].TicketText, b.Tickets[i].TicketText)
	}
	for i := range a.ChurnEvents {
		assert.Equal(t, a.ChurnEvents[i].ID, b.ChurnEvents[i].ID)
		assert.Equal(t, a.ChurnEvents[i].ChurnDate, b.ChurnEvents[i].ChurnDate)
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	p := smallParams(500)

	a, err := Generate(NewRand(1), p)
	require.NoError(t, err)
	b, err := Generate(NewRand(2), p)
	require.NoError(t, err)

	var differ bool
	for i := range a.Customers {
		if !a.Customers[i].SignupDate.Equal(b.Customers[i].SignupDate) {
			differ = true
			break
		}
	}
	assert.True(t, differ, "different seeds produced identical signup dates")
}

func TestGenerate_InvalidWindow(t *testing.T) {
	p := smallParams(10)
	p.WindowStart = Date(2024, time.October, 1)
	p.WindowEnd = Date(2022, time.January, 1)

	_, err := Generate(NewRand(42), p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidWindow))
}

func TestGenerate_NegativeCustomerCount(t *testing.T) {
	p := smallParams(10)
	p.Customers = -1

	_, err := Generate(NewRand(42), p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestGenerate_SingleDayWindow(t *testing.T) {
	p := smallParams(100)
	p.WindowStart = Date(2024, time.October, 1)
	p.WindowEnd = Date(2024, time.October, 1)
	p.RecencyCutoff = Date(2024, time.July, 1)

	ds, err := Generate(NewRand(42), p)
	require.NoError(t, err)

	// Degenerate window: everyone signs up on the last day, so no usage,
	// no tickets, no churn.
	assert.Len(t, ds.Customers, 100)
	assert.Empty(t, ds.UsageEvents)
	assert.Empty(t, ds.Tickets)
	assert.Empty(t, ds.ChurnEvents)
}

func TestGenerate_ReferenceVolumes(t *testing.T) {
	if testing.Short() {
		t.Skip("full-volume generation")
	}

	p := DefaultParams()
	p.Now = p.WindowEnd

	ds, err := Generate(NewRand(42), p)
	require.NoError(t, err)

	assert.Len(t, ds.Customers, 10000)

	// 2000 usage customers × ~50 events with ±50% jitter and plan multipliers.
	assert.Greater(t, len(ds.UsageEvents), 60000)
	assert.Less(t, len(ds.UsageEvents), 220000)

	// 3000 sampled customers × Poisson(3) capped at 10, zero draws skipped.
	assert.Greater(t, len(ds.Tickets), 6000)
	assert.Less(t, len(ds.Tickets), 14000)

	rate := float64(len(ds.ChurnEvents)) / float64(len(ds.Customers))
	assert.InDelta(t, 0.07, rate, 0.02)
}

func TestChurnedCustomerIDs_MatchesEvents(t *testing.T) {
	p := smallParams(2000)

	ds, err := Generate(NewRand(42), p)
	require.NoError(t, err)

	ids := ds.ChurnedCustomerIDs()
	require.Len(t, ids, len(ds.ChurnEvents))
	for i, e := range ds.ChurnEvents {
		assert.Equal(t, e.CustomerID, ids[i])
	}
}
