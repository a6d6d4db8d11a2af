package customer

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PlanType identifies the subscription tier of a customer.
type PlanType string

const (
	PlanStarter      PlanType = "starter"
	PlanProfessional PlanType = "professional"
	PlanEnterprise   PlanType = "enterprise"
	PlanPremium      PlanType = "premium"
)

// PlanTypes lists all plan tiers in ascending order of price.
func PlanTypes() []PlanType {
	return []PlanType{PlanStarter, PlanProfessional, PlanEnterprise, PlanPremium}
}

// Valid checks if the plan type is known
func (p PlanType) Valid() bool {
	switch p {
	case PlanStarter, PlanProfessional, PlanEnterprise, PlanPremium:
		return true
	}
	return false
}

// String returns string representation
func (p PlanType) String() string {
	return string(p)
}

// CompanySize buckets customers by organization size.
type CompanySize string

const (
	SizeSmall      CompanySize = "small"
	SizeMedium     CompanySize = "medium"
	SizeLarge      CompanySize = "large"
	SizeEnterprise CompanySize = "enterprise"
)

// String returns string representation
func (s CompanySize) String() string {
	return string(s)
}

// Status is the lifecycle state of a customer account.
// A customer transitions from active to churned at most once and never back.
type Status string

const (
	StatusActive  Status = "active"
	StatusChurned Status = "churned"
)

// Customer is a generated account record.
type Customer struct {
	ID             string          `db:"customer_id"`
	SignupDate     time.Time       `db:"signup_date"`
	PlanType       PlanType        `db:"plan_type"`
	CompanySize    CompanySize     `db:"company_size"`
	Industry       string          `db:"industry"`
	Status         Status          `db:"status"`
	MonthlyRevenue decimal.Decimal `db:"monthly_revenue"`
}

// MarkChurned flips the account status to churned. It is the only mutation
// a generated customer ever receives.
func (c *Customer) MarkChurned() {
	c.Status = StatusChurned
}

// Churned reports whether the account has churned.
func (c *Customer) Churned() bool {
	return c.Status == StatusChurned
}

// FormatID renders the canonical customer identifier for a 1-based sequence number.
func FormatID(seq int) string {
	return fmt.Sprintf("CUST_%06d", seq)
}
