package postgres

import (
	"context"

	"churnscope/pkg/errors"
)

// Schema manages the demo tables. CreateTables drops and recreates every
// table so a run always starts from a clean store (create-or-replace
// semantics); a failed DDL statement aborts the run.
type Schema struct {
	db DBTX
}

// NewSchema creates a new schema manager
func NewSchema(db DBTX) *Schema {
	return &Schema{db: db}
}

var tableDDL = []struct {
	name string
	ddl  string
}{
	{"customers", `
		CREATE TABLE customers (
			customer_id VARCHAR(50) PRIMARY KEY,
			signup_date DATE NOT NULL,
			plan_type VARCHAR(20) NOT NULL,
			company_size VARCHAR(20) NOT NULL,
			industry VARCHAR(30) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			monthly_revenue DECIMAL(10,2),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{"usage_events", `
		CREATE TABLE usage_events (
			event_id VARCHAR(50) PRIMARY KEY,
			customer_id VARCHAR(50) NOT NULL,
			event_date DATE NOT NULL,
			feature_used VARCHAR(50) NOT NULL,
			session_duration_minutes INTEGER NOT NULL,
			actions_count INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{"support_tickets", `
		CREATE TABLE support_tickets (
			ticket_id VARCHAR(50) PRIMARY KEY,
			customer_id VARCHAR(50) NOT NULL,
			created_date DATE NOT NULL,
			category VARCHAR(30) NOT NULL,
			priority VARCHAR(10) NOT NULL,
			status VARCHAR(20) NOT NULL,
			resolution_time_hours INTEGER,
			satisfaction_score INTEGER,
			ticket_text TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{"churn_events", `
		CREATE TABLE churn_events (
			churn_id VARCHAR(50) PRIMARY KEY,
			customer_id VARCHAR(50) NOT NULL,
			churn_date DATE NOT NULL,
			churn_reason VARCHAR(50) NOT NULL,
			days_since_signup INTEGER NOT NULL,
			final_plan_type VARCHAR(20) NOT NULL,
			final_monthly_revenue DECIMAL(10,2),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{"generation_runs", `
		CREATE TABLE generation_runs (
			id UUID PRIMARY KEY,
			seed BIGINT NOT NULL,
			customer_count INTEGER NOT NULL,
			usage_event_count INTEGER NOT NULL,
			ticket_count INTEGER NOT NULL,
			churn_event_count INTEGER NOT NULL,
			started_at TIMESTAMP NOT NULL,
			finished_at TIMESTAMP NOT NULL
		)`},
}

// CreateTables replaces all demo tables
func (s *Schema) CreateTables(ctx context.Context) error {
	for _, t := range tableDDL {
		if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+t.name); err != nil {
			return errors.Wrapf(err, "drop table %s", t.name)
		}
		if _, err := s.db.ExecContext(ctx, t.ddl); err != nil {
			return errors.Wrapf(err, "create table %s", t.name)
		}
	}
	return nil
}
