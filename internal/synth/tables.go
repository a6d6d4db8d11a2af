package synth

import (
	"churnscope/internal/domain/churn"
	"churnscope/internal/domain/customer"
	"churnscope/internal/domain/ticket"
)

// The statistical design of the dataset lives here as data, not branching
// code: marginal and conditional weight vectors, rate tables and the canned
// ticket texts. Generators only ever sample from these tables.

var companySizeWeights = []Weighted[customer.CompanySize]{
	{customer.SizeSmall, 0.5},
	{customer.SizeMedium, 0.3},
	{customer.SizeLarge, 0.15},
	{customer.SizeEnterprise, 0.05},
}

// planWeightsBySize conditions the plan distribution on company size: larger
// companies skew toward higher tiers. Order matches PlanTypes().
var planWeightsBySize = map[customer.CompanySize][]Weighted[customer.PlanType]{
	customer.SizeEnterprise: {
		{customer.PlanStarter, 0.1},
		{customer.PlanProfessional, 0.2},
		{customer.PlanEnterprise, 0.4},
		{customer.PlanPremium, 0.3},
	},
	customer.SizeLarge: {
		{customer.PlanStarter, 0.2},
		{customer.PlanProfessional, 0.4},
		{customer.PlanEnterprise, 0.3},
		{customer.PlanPremium, 0.1},
	},
	customer.SizeMedium: {
		{customer.PlanStarter, 0.3},
		{customer.PlanProfessional, 0.4},
		{customer.PlanEnterprise, 0.2},
		{customer.PlanPremium, 0.1},
	},
	customer.SizeSmall: {
		{customer.PlanStarter, 0.6},
		{customer.PlanProfessional, 0.3},
		{customer.PlanEnterprise, 0.08},
		{customer.PlanPremium, 0.02},
	},
}

var industries = []string{
	"technology", "healthcare", "finance", "retail", "manufacturing",
	"education", "consulting", "media", "real_estate", "non_profit",
}

// revenueBase is the monthly base rate in USD indexed by [plan][size];
// actual revenue applies a uniform jitter in [0.8, 1.2].
var revenueBase = map[customer.PlanType]map[customer.CompanySize]float64{
	customer.PlanStarter: {
		customer.SizeSmall: 29, customer.SizeMedium: 49,
		customer.SizeLarge: 99, customer.SizeEnterprise: 199,
	},
	customer.PlanProfessional: {
		customer.SizeSmall: 99, customer.SizeMedium: 199,
		customer.SizeLarge: 399, customer.SizeEnterprise: 799,
	},
	customer.PlanEnterprise: {
		customer.SizeSmall: 299, customer.SizeMedium: 599,
		customer.SizeLarge: 1199, customer.SizeEnterprise: 2399,
	},
	customer.PlanPremium: {
		customer.SizeSmall: 599, customer.SizeMedium: 1199,
		customer.SizeLarge: 2399, customer.SizeEnterprise: 4799,
	},
}

var allFeatures = []string{
	"dashboard_view", "report_generation", "data_export", "user_management",
	"api_calls", "integrations", "analytics", "collaboration", "mobile_app",
}

// planFeatures is the unlocked feature set per plan tier. Usage events only
// ever reference features from the owning customer's set.
var planFeatures = map[customer.PlanType][]string{
	customer.PlanStarter: {"dashboard_view", "report_generation", "mobile_app"},
	customer.PlanProfessional: {
		"dashboard_view", "report_generation", "data_export", "analytics", "mobile_app",
	},
	customer.PlanEnterprise: {
		"dashboard_view", "report_generation", "data_export", "user_management",
		"api_calls", "integrations", "analytics", "collaboration",
	},
	customer.PlanPremium: allFeatures,
}

// featureBaseDuration is the typical session length in minutes; actual
// duration applies a uniform jitter in [0.3, 2.0].
var featureBaseDuration = map[string]int{
	"dashboard_view": 15, "report_generation": 45, "data_export": 30,
	"user_management": 20, "api_calls": 5, "integrations": 60,
	"analytics": 90, "collaboration": 35, "mobile_app": 10,
}

// planEventMultiplier scales the global usage-event average per plan tier.
var planEventMultiplier = map[customer.PlanType]float64{
	customer.PlanStarter:      0.7,
	customer.PlanProfessional: 1.0,
	customer.PlanEnterprise:   1.5,
	customer.PlanPremium:      2.0,
}

var ticketCategories = []string{
	"billing", "technical_issue", "feature_request", "account_access",
	"integration_help", "data_export", "performance", "training", "bug_report",
}

var ticketPriorityWeights = []Weighted[ticket.Priority]{
	{ticket.PriorityLow, 0.4},
	{ticket.PriorityMedium, 0.35},
	{ticket.PriorityHigh, 0.2},
	{ticket.PriorityUrgent, 0.05},
}

var ticketStatusWeights = []Weighted[ticket.Status]{
	{ticket.StatusResolved, 0.7},
	{ticket.StatusClosed, 0.25},
	{ticket.StatusPending, 0.05},
}

// priorityBaseHours is the typical resolution time per priority; actual
// resolution applies a uniform jitter in [0.5, 2.0].
var priorityBaseHours = map[ticket.Priority]int{
	ticket.PriorityLow:    48,
	ticket.PriorityMedium: 24,
	ticket.PriorityHigh:   8,
	ticket.PriorityUrgent: 2,
}

// Satisfaction score multisets; duplicates encode the skew.
var (
	satisfactionFastUrgent = []int{4, 5, 5}
	satisfactionSlow       = []int{1, 2, 2, 3}
	satisfactionMid        = []int{2, 3, 3, 4, 4}
)

// ticketTemplates holds four canned texts per category, written to exercise
// downstream sentiment analysis.
var ticketTemplates = map[string][]string{
	"billing": {
		"I was charged twice this month and need a refund. This is very frustrating as it affects our budget.",
		"Can you help me understand the billing changes? The new pricing seems much higher than expected.",
		"My payment failed but I'm not sure why. Can you help me resolve this quickly?",
		"I need to downgrade my plan but can't find the option. The current cost is too high for our small team.",
	},
	"technical_issue": {
		"The dashboard is loading very slowly and sometimes crashes. This is impacting our daily operations.",
		"I can't export data - getting an error message every time I try. This is blocking our reporting.",
		"The mobile app keeps crashing when I try to view reports. Very disappointing experience.",
		"API calls are failing intermittently. Our integration is broken and customers are complaining.",
	},
	"feature_request": {
		"Would love to see dark mode added to the interface. Many of our team members have requested this.",
		"Can you add more export formats? We need Excel compatibility for our stakeholders.",
		"Real-time notifications would be amazing for our workflow. Currently we miss important updates.",
		"Better mobile experience would help our field team access data on the go.",
	},
	"account_access": {
		"I forgot my password and the reset email isn't coming through. Need access urgently.",
		"Can you help me add new team members to our account? The process isn't clear.",
		"My account seems to be locked after multiple login attempts. Please help unlock it.",
		"Need to transfer account ownership to a new admin. What's the process for this?",
	},
	"integration_help": {
		"Having trouble connecting to Salesforce. The integration guide isn't clear enough.",
		"API documentation is confusing. Can someone walk me through the setup process?",
		"Webhook setup is failing. Getting authentication errors that I can't resolve.",
		"Need help with custom integration. Our development team is stuck on the implementation.",
	},
	"data_export": {
		"Large data exports are timing out. Need a solution for exporting our complete dataset.",
		"Export format is missing some columns we need. Can this be customized?",
		"Scheduled exports stopped working last week. Our automated reports are broken.",
		"Need help with bulk data migration. Moving to new system and need all historical data.",
	},
	"performance": {
		"System is very slow during peak hours. Reports take forever to load.",
		"Dashboard performance has degraded significantly over the past month.",
		"Query timeouts are happening frequently. This is impacting our productivity.",
		"Page load times are unacceptable. Considering switching to a competitor.",
	},
	"training": {
		"New team members need training on advanced features. Do you offer sessions?",
		"Looking for best practices documentation. Want to optimize our usage.",
		"Can you provide training materials for our specific use case?",
		"Onboarding process could be improved. New users are struggling to get started.",
	},
	"bug_report": {
		"Found a bug in the reporting module. Charts are showing incorrect data.",
		"Filter functionality is broken on the analytics page. Please investigate.",
		"Getting JavaScript errors in the browser console. Interface is unstable.",
		"Data synchronization issue - seeing stale data that should have updated hours ago.",
	},
}

// historicalReasonWeights is the churn-reason mix of the historical baseline.
var historicalReasonWeights = []Weighted[churn.Reason]{
	{churn.ReasonPricingTooHigh, 0.15},
	{churn.ReasonPoorPerformance, 0.12},
	{churn.ReasonMissingFeatures, 0.15},
	{churn.ReasonCompetitorSwitch, 0.20},
	{churn.ReasonBusinessClosure, 0.08},
	{churn.ReasonPoorSupport, 0.10},
	{churn.ReasonTechnicalIssues, 0.08},
	{churn.ReasonEaseOfUse, 0.07},
	{churn.ReasonIntegrationProblems, 0.05},
}

// recentReasonWeights is the shifted reason mix of the spike, concentrated in
// pricing and performance complaints.
var recentReasonWeights = []Weighted[churn.Reason]{
	{churn.ReasonPricingTooHigh, 0.35},
	{churn.ReasonPoorPerformance, 0.25},
	{churn.ReasonMissingFeatures, 0.10},
	{churn.ReasonCompetitorSwitch, 0.15},
	{churn.ReasonBusinessClosure, 0.03},
	{churn.ReasonPoorSupport, 0.05},
	{churn.ReasonTechnicalIssues, 0.04},
	{churn.ReasonEaseOfUse, 0.02},
	{churn.ReasonIntegrationProblems, 0.01},
}

// PlanFeatures exposes the unlocked feature set for a plan tier.
func PlanFeatures(plan customer.PlanType) []string {
	return planFeatures[plan]
}
