package postgres

import (
	"context"
	"time"

	"churnscope/internal/domain/report"
	"churnscope/pkg/errors"
)

// Compile-time check that we implement the interface
var _ report.Repository = (*ReportRepository)(nil)

// ReportRepository runs the post-generation validation aggregates. These are
// read-only sanity checks over the persisted tables, not part of the
// generator's correctness contract.
type ReportRepository struct {
	db DBTX
}

// NewReportRepository creates a new report repository
func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

// Summarize runs all validation queries. trendYear bounds the monthly trend;
// reasonsSince bounds the top-reason ranking (the recency cutoff, so the
// report surfaces the spike's shifted reason mix).
func (r *ReportRepository) Summarize(ctx context.Context, trendYear int, reasonsSince time.Time) (*report.Report, error) {
	rep := &report.Report{}

	counts := []struct {
		table string
		dest  *int
	}{
		{"customers", &rep.Customers},
		{"usage_events", &rep.UsageEvents},
		{"support_tickets", &rep.Tickets},
		{"churn_events", &rep.ChurnEvents},
	}
	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dest, `SELECT COUNT(*) FROM `+c.table); err != nil {
			return nil, errors.Wrapf(err, "count %s", c.table)
		}
	}

	var churnStats struct {
		Churned int     `db:"churned_customers"`
		Total   int     `db:"total_customers"`
		Rate    float64 `db:"overall_churn_rate"`
	}
	err := r.db.GetContext(ctx, &churnStats, `
		SELECT
			COUNT(*) FILTER (WHERE status = 'churned') AS churned_customers,
			COUNT(*) AS total_customers,
			COALESCE(ROUND(COUNT(*) FILTER (WHERE status = 'churned') * 100.0 / NULLIF(COUNT(*), 0), 2), 0) AS overall_churn_rate
		FROM customers`)
	if err != nil {
		return nil, errors.Wrap(err, "churn rate query")
	}
	rep.ChurnedCustomers = churnStats.Churned
	rep.ChurnRatePct = churnStats.Rate

	err = r.db.SelectContext(ctx, &rep.MonthlyChurn, `
		SELECT
			DATE_TRUNC('month', churn_date) AS month,
			COUNT(*) AS churn_count
		FROM churn_events
		WHERE EXTRACT(YEAR FROM churn_date) = $1
		GROUP BY DATE_TRUNC('month', churn_date)
		ORDER BY month`, trendYear)
	if err != nil {
		return nil, errors.Wrap(err, "monthly churn trend query")
	}

	err = r.db.SelectContext(ctx, &rep.TopReasons, `
		SELECT churn_reason, COUNT(*) AS count
		FROM churn_events
		WHERE churn_date >= $1
		GROUP BY churn_reason
		ORDER BY count DESC
		LIMIT 5`, reasonsSince)
	if err != nil {
		return nil, errors.Wrap(err, "top churn reasons query")
	}

	return rep, nil
}
