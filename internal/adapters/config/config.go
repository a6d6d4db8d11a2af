package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"churnscope/pkg/errors"
)

type Config struct {
	App           AppConfig
	Postgres      PostgresConfig
	Generation    GenerationConfig
	Agents        AgentsConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"churnscope"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	Database string `envconfig:"POSTGRES_DB" required:"true"`
	SSLMode  string `envconfig:"POSTGRES_SSL_MODE" default:"disable"`
	MaxConns int    `envconfig:"POSTGRES_MAX_CONNS" default:"25"`
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// GenerationConfig holds the tunable knobs of the synthetic dataset pipeline.
// The statistical design (date windows, weight tables, correlations) lives in
// internal/synth and is deliberately not configurable per deployment.
type GenerationConfig struct {
	Seed                 int64 `envconfig:"GENERATION_SEED" default:"42"`
	Customers            int   `envconfig:"GENERATION_CUSTOMERS" default:"10000"`
	AvgEventsPerCustomer int   `envconfig:"GENERATION_AVG_EVENTS" default:"50"`
	UsageCustomerLimit   int   `envconfig:"GENERATION_USAGE_CUSTOMER_LIMIT" default:"2000"`
	TicketCustomerLimit  int   `envconfig:"GENERATION_TICKET_CUSTOMER_LIMIT" default:"3000"`
	BatchSize            int   `envconfig:"GENERATION_BATCH_SIZE" default:"1000"`
	TextBatchSize        int   `envconfig:"GENERATION_TEXT_BATCH_SIZE" default:"500"`
}

type AgentsConfig struct {
	PlatformURL       string `envconfig:"AGENT_PLATFORM_URL"`
	PlatformAPIKey    string `envconfig:"AGENT_PLATFORM_API_KEY"`
	OpenAIKey         string `envconfig:"OPENAI_API_KEY"`
	SupervisorModel   string `envconfig:"SUPERVISOR_MODEL" default:"gpt-4o"`
	RequestsPerMinute int    `envconfig:"AGENT_REQUESTS_PER_MINUTE" default:"60"`
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

// Load reads configuration from environment variables
// It first tries to load .env file (useful for local development)
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	return &cfg, nil
}
