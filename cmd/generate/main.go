package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"churnscope/internal/adapters/config"
	noopTracker "churnscope/internal/adapters/errors/noop"
	sentryTracker "churnscope/internal/adapters/errors/sentry"
	"churnscope/internal/adapters/postgres"
	pgrepo "churnscope/internal/repository/postgres"
	"churnscope/internal/services/dataset"
	"churnscope/internal/synth"
	"churnscope/pkg/errors"
	"churnscope/pkg/logger"
)

func main() {
	seed := flag.Int64("seed", 0, "Generation seed (0 = use GENERATION_SEED from env)")
	customers := flag.Int("customers", 0, "Customer count override (0 = use env)")
	quiet := flag.Bool("quiet", false, "Disable the progress bar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()

	// Initialize error tracking
	tracker := initTracker(cfg)
	logger.SetErrorTracker(tracker)
	defer func() { _ = tracker.Flush(context.Background()) }()

	if *seed == 0 {
		*seed = cfg.Generation.Seed
	}

	params := synth.DefaultParams()
	params.Customers = cfg.Generation.Customers
	params.AvgEventsPerCustomer = cfg.Generation.AvgEventsPerCustomer
	params.UsageCustomerLimit = cfg.Generation.UsageCustomerLimit
	params.TicketCustomerLimit = cfg.Generation.TicketCustomerLimit
	if *customers > 0 {
		params.Customers = *customers
	}

	log.Infow("Starting dataset generation",
		"seed", *seed,
		"customers", params.Customers,
		"database", cfg.Postgres.Database,
	)

	client, err := postgres.NewClient(cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = client.Close() }()

	db := client.DB()
	opts := []dataset.Option{
		dataset.WithBatchSizes(cfg.Generation.BatchSize, cfg.Generation.TextBatchSize),
	}
	if !*quiet {
		opts = append(opts, dataset.WithProgress())
	}

	svc := dataset.NewService(
		pgrepo.NewSchema(db),
		pgrepo.NewCustomerRepository(db),
		pgrepo.NewUsageEventRepository(db),
		pgrepo.NewTicketRepository(db),
		pgrepo.NewChurnEventRepository(db),
		pgrepo.NewRunRepository(db),
		pgrepo.NewReportRepository(db),
		opts...,
	)

	result, err := svc.Run(context.Background(), *seed, params)
	if err != nil {
		log.ErrorWithContext(context.Background(), err, map[string]string{
			"component": "generate",
		})
		os.Exit(1)
	}

	printReport(result)
	log.Info("✅ Dataset generation complete")
}

// initTracker wires Sentry when enabled, otherwise a no-op tracker.
func initTracker(cfg *config.Config) errors.Tracker {
	if !cfg.ErrorTracking.Enabled || cfg.ErrorTracking.SentryDSN == "" {
		return noopTracker.New()
	}

	tracker, err := sentryTracker.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		logger.Get().Warnw("Failed to init Sentry, falling back to noop", "error", err)
		return noopTracker.New()
	}
	return tracker
}

// printReport writes the validation summary to stdout in a human-readable
// layout; the structured log already carries the same numbers.
func printReport(result *dataset.Result) {
	rep := result.Report

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("  VALIDATION REPORT")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("  Run:            %s (seed %d)\n", result.Run.ID, result.Run.Seed)
	fmt.Printf("  Customers:      %d\n", rep.Customers)
	fmt.Printf("  Usage events:   %d\n", rep.UsageEvents)
	fmt.Printf("  Tickets:        %d\n", rep.Tickets)
	fmt.Printf("  Churn events:   %d\n", rep.ChurnEvents)
	fmt.Printf("  Churn rate:     %.2f%%\n", rep.ChurnRatePct)

	if len(rep.MonthlyChurn) > 0 {
		fmt.Println()
		fmt.Println("  Monthly churn trend:")
		for _, m := range rep.MonthlyChurn {
			fmt.Printf("    %s  %d\n", m.Month.Format("2006-01"), m.Count)
		}
	}

	if len(rep.TopReasons) > 0 {
		fmt.Println()
		fmt.Println("  Top recent churn reasons:")
		for _, r := range rep.TopReasons {
			fmt.Printf("    %-28s %d\n", r.Reason, r.Count)
		}
	}
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
}
