package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"returns/internal/core/application/usecases/commands"
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/order"
	"returns/internal/core/domain/model/request"
	"returns/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if req := args.Get(0); req != nil {
		return req.(*request.Request), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRequestRepository) GetByCustomerAndOrder(
	ctx context.Context,
	customerID, orderID int64,
) (*request.Request, error) {
	args := m.Called(ctx, customerID, orderID)
	if req := args.Get(0); req != nil {
		return req.(*request.Request), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRequestRepository) GetAllByCustomer(
	ctx context.Context,
	customerID int64,
	limit, offset int,
) ([]*request.Request, error) {
	args := m.Called(ctx, customerID, limit, offset)
	if reqs := args.Get(0); reqs != nil {
		return reqs.([]*request.Request), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRequestUoW struct{ mock.Mock }

func (m *MockRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockOrderClient struct{ mock.Mock }

func (m *MockOrderClient) GetOrder(ctx context.Context, orderID int64) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if ord := args.Get(0); ord != nil {
		return ord.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyRequestSubmitted(ctx context.Context, event ports.RequestSubmitted) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNotifier) NotifyRequestStatusChanged(ctx context.Context, event ports.RequestStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNotifier) NotifyPendingReviewDigest(ctx context.Context, event ports.PendingReviewDigest) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockCodeGenerator struct{ mock.Mock }

func (m *MockCodeGenerator) Generate() (request.TrackingCode, error) {
	args := m.Called()
	return args.Get(0).(request.TrackingCode), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustTrackingCode(t *testing.T, raw string) request.TrackingCode {
	t.Helper()
	code, err := request.NewTrackingCode(raw)
	require.NoError(t, err)
	return code
}

func mustOrder(t *testing.T, id, customerID int64, number string) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(id, customerID, number, []order.Line{
		{Name: "Linen Shirt", Quantity: 1, Subtotal: 29.90},
	}, 29.90, "jane@example.com")
	require.NoError(t, err)
	return ord
}

func mustRequest(t *testing.T, customerID, orderID int64, status request.Status) *request.Request {
	t.Helper()
	req, err := request.NewRequest(
		kernel.NewUUID(), customerID, orderID, mustTrackingCode(t, "004217390571"), "wrong size")
	require.NoError(t, err)

	if status != request.Pending {
		_, err = req.ChangeStatus(status)
		require.NoError(t, err)
	}
	return req
}
