package churn

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"churnscope/internal/domain/customer"
)

// Reason is the categorical cause attached to a churn event.
type Reason string

const (
	ReasonPricingTooHigh      Reason = "pricing_too_high"
	ReasonPoorPerformance     Reason = "poor_performance"
	ReasonMissingFeatures     Reason = "missing_features"
	ReasonCompetitorSwitch    Reason = "competitor_switch"
	ReasonBusinessClosure     Reason = "business_closure"
	ReasonPoorSupport         Reason = "poor_support"
	ReasonTechnicalIssues     Reason = "technical_issues"
	ReasonEaseOfUse           Reason = "ease_of_use"
	ReasonIntegrationProblems Reason = "integration_problems"
)

// Reasons lists every churn reason in canonical order.
func Reasons() []Reason {
	return []Reason{
		ReasonPricingTooHigh,
		ReasonPoorPerformance,
		ReasonMissingFeatures,
		ReasonCompetitorSwitch,
		ReasonBusinessClosure,
		ReasonPoorSupport,
		ReasonTechnicalIssues,
		ReasonEaseOfUse,
		ReasonIntegrationProblems,
	}
}

// Event records the moment a customer churned, with a snapshot of the
// plan and revenue at churn time. A customer churns at most once.
type Event struct {
	ID                  string            `db:"churn_id"`
	CustomerID          string            `db:"customer_id"`
	ChurnDate           time.Time         `db:"churn_date"`
	Reason              Reason            `db:"churn_reason"`
	DaysSinceSignup     int               `db:"days_since_signup"`
	FinalPlanType       customer.PlanType `db:"final_plan_type"`
	FinalMonthlyRevenue decimal.Decimal   `db:"final_monthly_revenue"`
}

// FormatID renders the canonical churn identifier for a 1-based sequence number.
func FormatID(seq int) string {
	return fmt.Sprintf("CHN_%08d", seq)
}
