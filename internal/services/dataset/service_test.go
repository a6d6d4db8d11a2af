package dataset

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churnscope/internal/domain/churn"
	"churnscope/internal/domain/customer"
	"churnscope/internal/domain/report"
	"churnscope/internal/domain/run"
	"churnscope/internal/domain/ticket"
	"churnscope/internal/domain/usage"
	"churnscope/internal/synth"
	"churnscope/pkg/errors"
)

// mockSchema implements TableCreator for testing
type mockSchema struct {
	created bool
	err     error
}

func (m *mockSchema) CreateTables(ctx context.Context) error {
	m.created = true
	return m.err
}

// mockCustomerRepo implements customer.Repository for testing
type mockCustomerRepo struct {
	batches   [][]*customer.Customer
	statusIDs []string
	status    customer.Status
	insertErr error
}

func (m *mockCustomerRepo) InsertBatch(ctx context.Context, customers []*customer.Customer) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.batches = append(m.batches, customers)
	return nil
}

func (m *mockCustomerRepo) UpdateStatus(ctx context.Context, ids []string, status customer.Status) error {
	m.statusIDs = ids
	m.status = status
	return nil
}

func (m *mockCustomerRepo) Count(ctx context.Context) (int, error) {
	var n int
	for _, b := range m.batches {
		n += len(b)
	}
	return n, nil
}

// mockUsageRepo implements usage.Repository for testing
type mockUsageRepo struct {
	batches [][]*usage.Event
}

func (m *mockUsageRepo) InsertBatch(ctx context.Context, events []*usage.Event) error {
	m.batches = append(m.batches, events)
	return nil
}

func (m *mockUsageRepo) Count(ctx context.Context) (int, error) { return 0, nil }

// mockTicketRepo implements ticket.Repository for testing
type mockTicketRepo struct {
	batches [][]*ticket.Ticket
}

func (m *mockTicketRepo) InsertBatch(ctx context.Context, tickets []*ticket.Ticket) error {
	m.batches = append(m.batches, tickets)
	return nil
}

func (m *mockTicketRepo) Count(ctx context.Context) (int, error) { return 0, nil }

// mockChurnRepo implements churn.Repository for testing
type mockChurnRepo struct {
	batches [][]*churn.Event
}

func (m *mockChurnRepo) InsertBatch(ctx context.Context, events []*churn.Event) error {
	m.batches = append(m.batches, events)
	return nil
}

func (m *mockChurnRepo) Count(ctx context.Context) (int, error) { return 0, nil }

// mockRunRepo implements run.Repository for testing
type mockRunRepo struct {
	inserted *run.Run
}

func (m *mockRunRepo) Insert(ctx context.Context, r *run.Run) error {
	m.inserted = r
	return nil
}

func (m *mockRunRepo) GetByID(ctx context.Context, id uuid.UUID) (*run.Run, error) {
	if m.inserted != nil && m.inserted.ID == id {
		return m.inserted, nil
	}
	return nil, errors.ErrNotFound
}

// mockReportRepo implements report.Repository for testing
type mockReportRepo struct {
	report *report.Report
}

func (m *mockReportRepo) Summarize(ctx context.Context, trendYear int, reasonsSince time.Time) (*report.Report, error) {
	if m.report != nil {
		return m.report, nil
	}
	return &report.Report{}, nil
}

type testRepos struct {
	schema    *mockSchema
	customers *mockCustomerRepo
	events    *mockUsageRepo
	tickets   *mockTicketRepo
	churns    *mockChurnRepo
	runs      *mockRunRepo
	reports   *mockReportRepo
}

func newTestService(opts ...Option) (*Service, *testRepos) {
	repos := &testRepos{
		schema:    &mockSchema{},
		customers: &mockCustomerRepo{},
		events:    &mockUsageRepo{},
		tickets:   &mockTicketRepo{},
		churns:    &mockChurnRepo{},
		runs:      &mockRunRepo{},
		reports:   &mockReportRepo{},
	}
	svc := NewService(
		repos.schema,
		repos.customers,
		repos.events,
		repos.tickets,
		repos.churns,
		repos.runs,
		repos.reports,
		opts...,
	)
	return svc, repos
}

func testParams(n int) synth.Params {
	p := synth.DefaultParams()
	p.Customers = n
	p.UsageCustomerLimit = 0
	p.TicketCustomerLimit = n
	p.Now = p.WindowEnd
	return p
}

func TestService_Run_FullPipeline(t *testing.T) {
	svc, repos := newTestService(WithBatchSizes(100, 50))

	result, err := svc.Run(context.Background(), 42, testParams(300))
	require.NoError(t, err)

	assert.True(t, repos.schema.created)

	var loaded int
	for _, b := range repos.customers.batches {
		assert.LessOrEqual(t, len(b), 100)
		loaded += len(b)
	}
	assert.Equal(t, 300, loaded)

	// Every churned customer gets its status flipped in the database.
	assert.Equal(t, customer.StatusChurned, repos.customers.status)
	var churnLoaded int
	for _, b := range repos.churns.batches {
		assert.LessOrEqual(t, len(b), 50)
		churnLoaded += len(b)
	}
	assert.Equal(t, churnLoaded, len(repos.customers.statusIDs))

	require.NotNil(t, repos.runs.inserted)
	assert.Equal(t, int64(42), repos.runs.inserted.Seed)
	assert.Equal(t, 300, repos.runs.inserted.CustomerCount)
	assert.False(t, repos.runs.inserted.FinishedAt.IsZero())

	require.NotNil(t, result.Report)
	assert.Equal(t, repos.runs.inserted, result.Run)
}

func TestService_Run_BatchOrderPreserved(t *testing.T) {
	svc, repos := newTestService(WithBatchSizes(37, 37))

	_, err := svc.Run(context.Background(), 42, testParams(200))
	require.NoError(t, err)

	var prev string
	for _, b := range repos.customers.batches {
		for _, c := range b {
			if prev != "" {
				assert.Greater(t, c.ID, prev)
			}
			prev = c.ID
		}
	}
}

func TestService_Run_InsertFailureAborts(t *testing.T) {
	svc, repos := newTestService()
	repos.customers.insertErr = errors.ErrUnavailable

	_, err := svc.Run(context.Background(), 42, testParams(100))
	require.Error(t, err)

	// Nothing downstream of the failed table runs.
	assert.Empty(t, repos.events.batches)
	assert.Nil(t, repos.runs.inserted)
}

func TestService_Run_InvalidParams(t *testing.T) {
	svc, repos := newTestService()

	p := testParams(10)
	p.WindowEnd = p.WindowStart.AddDate(-1, 0, 0)

	_, err := svc.Run(context.Background(), 42, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidWindow))
	assert.False(t, repos.schema.created)
}

func TestChunk(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	got := chunk(items, 3)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, got[0])
	assert.Equal(t, []int{4, 5, 6}, got[1])
	assert.Equal(t, []int{7}, got[2])

	assert.Nil(t, chunk([]int{}, 3))
	assert.Equal(t, [][]int{items}, chunk(items, 0))
	assert.Len(t, chunk(items, 10), 1)
}
