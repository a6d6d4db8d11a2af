package report

import (
	"context"
	"time"
)

// Report summarizes a persisted dataset: per-table counts, the overall churn
// rate, the monthly churn trend and the leading churn reasons of the recent
// window. Informational only; the generator's correctness does not depend on it.
type Report struct {
	Customers   int
	UsageEvents int
	Tickets     int
	ChurnEvents int

	ChurnedCustomers int
	ChurnRatePct     float64

	MonthlyChurn []MonthlyChurn
	TopReasons   []ReasonCount
}

// MonthlyChurn is one month of the churn trend.
type MonthlyChurn struct {
	Month time.Time `db:"month"`
	Count int       `db:"churn_count"`
}

// ReasonCount is a churn reason with its event count.
type ReasonCount struct {
	Reason string `db:"churn_reason"`
	Count  int    `db:"count"`
}

// Repository runs the post-load validation aggregates.
type Repository interface {
	// Summarize builds the report. trendYear bounds the monthly trend;
	// reasonsSince bounds the top-reason ranking.
	Summarize(ctx context.Context, trendYear int, reasonsSince time.Time) (*Report, error)
}
