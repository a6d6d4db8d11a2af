package synth

import (
	"math"

	"github.com/shopspring/decimal"

	"churnscope/internal/domain/customer"
)

// GenerateCustomers produces exactly p.Customers records. Pure generation:
// given the same Rand state and params the output is identical. Company size
// is sampled first and the plan tier is drawn from the size-conditioned
// weight vector, producing the designed joint distribution.
func GenerateCustomers(r *Rand, p Params) []*customer.Customer {
	customers := make([]*customer.Customer, 0, p.Customers)

	for i := 0; i < p.Customers; i++ {
		signup := r.DateBetween(p.WindowStart, p.WindowEnd)

		size := WeightedChoice(r, companySizeWeights)
		plan := WeightedChoice(r, planWeightsBySize[size])
		industry := Choice(r, industries)

		base := revenueBase[plan][size]
		jitter := r.Uniform(0.8, 1.2)
		revenue := decimal.NewFromFloat(math.Round(base*jitter*100) / 100)

		customers = append(customers, &customer.Customer{
			ID:             customer.FormatID(i + 1),
			SignupDate:     signup,
			PlanType:       plan,
			CompanySize:    size,
			Industry:       industry,
			Status:         customer.StatusActive,
			MonthlyRevenue: revenue,
		})
	}

	return customers
}
