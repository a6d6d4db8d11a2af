package dataset

import (
	"context"
	"time"

	"github.com/schollz/progressbar/v3"

	"churnscope/internal/domain/churn"
	"churnscope/internal/domain/customer"
	"churnscope/internal/domain/report"
	"churnscope/internal/domain/run"
	"churnscope/internal/domain/ticket"
	"churnscope/internal/domain/usage"
	"churnscope/internal/synth"
	"churnscope/pkg/errors"
	"churnscope/pkg/logger"
)

// TableCreator replaces the demo tables before a load.
type TableCreator interface {
	CreateTables(ctx context.Context) error
}

// Service runs the full pipeline: generate, load, mutate statuses, record
// the run, validate. Each batch insert is all-or-nothing; the first
// persistence failure aborts the run.
type Service struct {
	schema    TableCreator
	customers customer.Repository
	events    usage.Repository
	tickets   ticket.Repository
	churns    churn.Repository
	runs      run.Repository
	reports   report.Repository

	// Batch sizes are throughput knobs only; order within and across
	// batches always follows generation order.
	batchSize     int
	textBatchSize int

	progress bool
	log      *logger.Logger
}

// Option configures the service.
type Option func(*Service)

// WithProgress enables a terminal progress bar during the load phase.
func WithProgress() Option {
	return func(s *Service) { s.progress = true }
}

// WithBatchSizes overrides the default batch sizes (1000 rows, 500 for
// free-text tables).
func WithBatchSizes(batch, textBatch int) Option {
	return func(s *Service) {
		if batch > 0 {
			s.batchSize = batch
		}
		if textBatch > 0 {
			s.textBatchSize = textBatch
		}
	}
}

// NewService creates a pipeline service
func NewService(
	schema TableCreator,
	customers customer.Repository,
	events usage.Repository,
	tickets ticket.Repository,
	churns churn.Repository,
	runs run.Repository,
	reports report.Repository,
	opts ...Option,
) *Service {
	s := &Service{
		schema:        schema,
		customers:     customers,
		events:        events,
		tickets:       tickets,
		churns:        churns,
		runs:          runs,
		reports:       reports,
		batchSize:     1000,
		textBatchSize: 500,
		log:           logger.Get().With("component", "dataset"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result bundles the run record with its validation report.
type Result struct {
	Run    *run.Run
	Report *report.Report
}

// Run executes the whole pipeline with the given seed and parameters.
func (s *Service) Run(ctx context.Context, seed int64, params synth.Params) (*Result, error) {
	rec := run.New(seed)
	s.log.Infow("Starting generation run",
		"run_id", rec.ID,
		"seed", seed,
		"customers", params.Customers,
	)

	ds, err := synth.Generate(synth.NewRand(seed), params)
	if err != nil {
		return nil, errors.Wrap(err, "generate dataset")
	}

	s.log.Infow("Dataset generated",
		"customers", len(ds.Customers),
		"usage_events", len(ds.UsageEvents),
		"tickets", len(ds.Tickets),
		"churn_events", len(ds.ChurnEvents),
	)

	if err := s.schema.CreateTables(ctx); err != nil {
		return nil, errors.Wrap(err, "create tables")
	}

	if err := s.load(ctx, ds); err != nil {
		return nil, err
	}

	if err := s.customers.UpdateStatus(ctx, ds.ChurnedCustomerIDs(), customer.StatusChurned); err != nil {
		return nil, errors.Wrap(err, "update churned statuses")
	}

	rec.CustomerCount = len(ds.Customers)
	rec.UsageEventCount = len(ds.UsageEvents)
	rec.TicketCount = len(ds.Tickets)
	rec.ChurnEventCount = len(ds.ChurnEvents)
	rec.FinishedAt = time.Now().UTC()

	if err := s.runs.Insert(ctx, rec); err != nil {
		return nil, errors.Wrap(err, "record generation run")
	}

	rep, err := s.reports.Summarize(ctx, params.WindowEnd.Year(), params.RecencyCutoff)
	if err != nil {
		return nil, errors.Wrap(err, "validation report")
	}

	s.log.Infow("Generation run complete",
		"run_id", rec.ID,
		"churn_rate_pct", rep.ChurnRatePct,
	)

	return &Result{Run: rec, Report: rep}, nil
}

// load persists the four record sets in dependency order.
func (s *Service) load(ctx context.Context, ds *synth.Dataset) error {
	total := len(ds.Customers) + len(ds.UsageEvents) + len(ds.Tickets) + len(ds.ChurnEvents)
	bar := s.newBar(total)

	for _, batch := range chunk(ds.Customers, s.batchSize) {
		if err := s.customers.InsertBatch(ctx, batch); err != nil {
			return errors.Wrap(err, "load customers")
		}
		bar.Add(len(batch))
	}

	for _, batch := range chunk(ds.UsageEvents, s.batchSize) {
		if err := s.events.InsertBatch(ctx, batch); err != nil {
			return errors.Wrap(err, "load usage events")
		}
		bar.Add(len(batch))
	}

	for _, batch := range chunk(ds.Tickets, s.textBatchSize) {
		if err := s.tickets.InsertBatch(ctx, batch); err != nil {
			return errors.Wrap(err, "load support tickets")
		}
		bar.Add(len(batch))
	}

	for _, batch := range chunk(ds.ChurnEvents, s.textBatchSize) {
		if err := s.churns.InsertBatch(ctx, batch); err != nil {
			return errors.Wrap(err, "load churn events")
		}
		bar.Add(len(batch))
	}

	return bar.Finish()
}

func (s *Service) newBar(total int) *progressbar.ProgressBar {
	if !s.progress {
		return progressbar.DefaultSilent(int64(total))
	}
	return progressbar.Default(int64(total), "loading")
}

// chunk splits items into consecutive slices of at most size elements,
// preserving order.
func chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]T{items}
	}

	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}
