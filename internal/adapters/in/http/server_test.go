package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapter "returns/internal/adapters/in/http"
	"returns/internal/core/application/usecases/commands"
	"returns/internal/core/application/usecases/queries"
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/order"
	"returns/internal/core/domain/model/request"
	"returns/internal/core/domain/services"
	"returns/internal/core/ports"
	"returns/internal/generated/servers"
	"returns/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory request store backing the HTTP tests. It
// reproduces the two unique indexes of the real schema.
type memStore struct {
	requests map[string]*request.Request
}

func newMemStore() *memStore {
	return &memStore{requests: make(map[string]*request.Request)}
}

func (s *memStore) Add(_ context.Context, req *request.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	for _, existing := range s.requests {
		if existing.CustomerID() == req.CustomerID() && existing.OrderID() == req.OrderID() {
			return ports.ErrStorageConflict
		}
		if existing.Code().String() == req.Code().String() {
			return ports.ErrStorageConflict
		}
	}
	s.requests[req.ID().String()] = req
	return nil
}

func (s *memStore) Update(_ context.Context, req *request.Request) error {
	for _, existing := range s.requests {
		if !existing.IsEqual(req) &&
			existing.CustomerID() == req.CustomerID() && existing.OrderID() == req.OrderID() {
			return ports.ErrStorageConflict
		}
	}
	s.requests[req.ID().String()] = req
	return nil
}

func (s *memStore) Get(_ context.Context, id kernel.UUID) (*request.Request, error) {
	req, ok := s.requests[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("request", id.String())
	}
	return req, nil
}

func (s *memStore) GetByCustomerAndOrder(_ context.Context, customerID, orderID int64) (*request.Request, error) {
	for _, req := range s.requests {
		if req.CustomerID() == customerID && req.OrderID() == orderID {
			return req, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("request",
		fmt.Sprintf("customer %d order %d", customerID, orderID))
}

func (s *memStore) GetAllByCustomer(_ context.Context, customerID int64, _, _ int) ([]*request.Request, error) {
	var result []*request.Request
	for _, req := range s.requests {
		if req.CustomerID() == customerID {
			result = append(result, req)
		}
	}
	return result, nil
}

// memUoW satisfies the command-side unit of work over the in-memory store.
type memUoW struct{ store *memStore }

func (u *memUoW) Begin(context.Context) error                { return nil }
func (u *memUoW) Commit(context.Context) error               { return nil }
func (u *memUoW) Rollback(context.Context) error             { return nil }
func (u *memUoW) RequestRepository() ports.RequestRepository { return u.store }

type memUoWFactory struct{ store *memStore }

func (f *memUoWFactory) Create() commands.RequestUoW { return &memUoW{store: f.store} }

type memOrderClient struct{ orders map[int64]*order.Order }

func (c *memOrderClient) GetOrder(_ context.Context, orderID int64) (*order.Order, error) {
	ord, ok := c.orders[orderID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}
	return ord, nil
}

type countingNotifier struct {
	submitted     int
	statusChanged int
}

func (n *countingNotifier) NotifyRequestSubmitted(context.Context, ports.RequestSubmitted) error {
	n.submitted++
	return nil
}

func (n *countingNotifier) NotifyRequestStatusChanged(context.Context, ports.RequestStatusChanged) error {
	n.statusChanged++
	return nil
}

func (n *countingNotifier) NotifyPendingReviewDigest(context.Context, ports.PendingReviewDigest) error {
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serverFixture struct {
	echo     *echo.Echo
	store    *memStore
	notifier *countingNotifier
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	store := newMemStore()
	factory := &memUoWFactory{store: store}
	notifier := &countingNotifier{}
	orderClient := &memOrderClient{orders: map[int64]*order.Order{}}

	ord, err := order.NewOrder(101, 7, "101", []order.Line{
		{Name: "Linen Shirt", Quantity: 1, Subtotal: 29.90},
	}, 29.90, "jane@example.com")
	require.NoError(t, err)
	orderClient.orders[101] = ord

	other, err := order.NewOrder(205, 9, "205", nil, 12.50, "sam@example.com")
	require.NoError(t, err)
	orderClient.orders[205] = other

	logger := discardLogger()
	server := adapter.NewServer(
		commands.NewCreateRequestCommandHandler(
			factory, orderClient, services.NewTrackingCodeGenerator(), notifier, logger),
		commands.NewUpdateRequestReasonCommandHandler(factory),
		commands.NewChangeRequestStatusCommandHandler(factory, orderClient, notifier, logger),
		commands.NewAttachOrderReferenceCommandHandler(factory, orderClient),
		queries.GetCustomerRequestsQueryHandler{},
		queries.GetRequestsForReviewQueryHandler{},
	)

	e := echo.New()
	servers.RegisterHandlers(e, server)

	return &serverFixture{echo: e, store: store, notifier: notifier}
}

func (f *serverFixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func asCustomer(id int64) map[string]string {
	return map[string]string{"X-Customer-Id": fmt.Sprintf("%d", id)}
}

func asStaff(id int64) map[string]string {
	return map[string]string{"X-Staff-Id": fmt.Sprintf("%d", id)}
}

func decodeReturnRequest(t *testing.T, rec *httptest.ResponseRecorder) servers.ReturnRequest {
	t.Helper()
	var resp servers.ReturnRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateReturn(t *testing.T) {
	t.Run("creates a request and alerts the admin", func(t *testing.T) {
		f := newServerFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/returns",
			`{"orderId":101,"reason":"wrong size"}`, asCustomer(7))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		resp := decodeReturnRequest(t, rec)
		assert.Len(t, resp.Code, 12)
		assert.Equal(t, int64(101), resp.OrderId)
		assert.Equal(t, servers.ReturnRequestStatusPending, resp.Status)
		assert.Equal(t, 1, f.notifier.submitted)
	})

	t.Run("requires an identity header", func(t *testing.T) {
		f := newServerFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/returns",
			`{"orderId":101,"reason":"wrong size"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a foreign order", func(t *testing.T) {
		f := newServerFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/returns",
			`{"orderId":101,"reason":"wrong size"}`, asCustomer(42))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, 0, f.notifier.submitted)
	})

	t.Run("rejects a second request for the same order", func(t *testing.T) {
		f := newServerFixture(t)

		first := f.do(http.MethodPost, "/api/v1/returns",
			`{"orderId":101,"reason":"wrong size"}`, asCustomer(7))
		require.Equal(t, http.StatusCreated, first.Code)

		second := f.do(http.MethodPost, "/api/v1/returns",
			`{"orderId":101,"reason":"changed my mind"}`, asCustomer(7))
		assert.Equal(t, http.StatusConflict, second.Code)
		assert.Equal(t, 1, f.notifier.submitted)
	})

	t.Run("rejects a blank reason", func(t *testing.T) {
		f := newServerFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/returns",
			`{"orderId":101,"reason":"   "}`, asCustomer(7))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateReturnReason(t *testing.T) {
	createRequest := func(t *testing.T, f *serverFixture) servers.ReturnRequest {
		t.Helper()
		rec := f.do(http.MethodPost, "/api/v1/returns",
			`{"orderId":101,"reason":"wrong size"}`, asCustomer(7))
		require.Equal(t, http.StatusCreated, rec.Code)
		return decodeReturnRequest(t, rec)
	}

	t.Run("owner edits a pending request", func(t *testing.T) {
		f := newServerFixture(t)
		created := createRequest(t, f)

		rec := f.do(http.MethodPut,
			fmt.Sprintf("/api/v1/returns/%s/reason", created.Id),
			`{"reason":"arrived damaged"}`, asCustomer(7))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decodeReturnRequest(t, rec)
		assert.Equal(t, "arrived damaged", resp.Reason)
		assert.Equal(t, created.Code, resp.Code)
	})

	t.Run("a foreign customer is rejected", func(t *testing.T) {
		f := newServerFixture(t)
		created := createRequest(t, f)

		rec := f.do(http.MethodPut,
			fmt.Sprintf("/api/v1/returns/%s/reason", created.Id),
			`{"reason":"arrived damaged"}`, asCustomer(42))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("an unknown request is not found", func(t *testing.T) {
		f := newServerFixture(t)

		rec := f.do(http.MethodPut,
			fmt.Sprintf("/api/v1/returns/%s/reason", kernel.NewUUID()),
			`{"reason":"arrived damaged"}`, asCustomer(7))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("editing after a decision conflicts", func(t *testing.T) {
		f := newServerFixture(t)
		created := createRequest(t, f)

		decided := f.do(http.MethodPut,
			fmt.Sprintf("/api/v1/admin/returns/%s/status", created.Id),
			`{"status":"accepted"}`, asStaff(3))
		require.Equal(t, http.StatusOK, decided.Code)

		rec := f.do(http.MethodPut,
			fmt.Sprintf("/api/v1/returns/%s/reason", created.Id),
			`{"reason":"arrived damaged"}`, asCustomer(7))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUpdateReturnStatus(t *testing.T) {
	t.Run("staff decision notifies the customer once", func(t *testing.T) {
		f := newServerFixture(t)

		created := decodeReturnRequest(t, f.do(http.MethodPost, "/api/v1/returns",
			`{"orderId":101,"reason":"wrong size"}`, asCustomer(7)))

		rec := f.do(http.MethodPut,
			fmt.Sprintf("/api/v1/admin/returns/%s/status", created.Id),
			`{"status":"accepted"}`, asStaff(3))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decodeReturnRequest(t, rec)
		assert.Equal(t, servers.ReturnRequestStatusAccepted, resp.Status)
		assert.Equal(t, 1, f.notifier.statusChanged)

		// Re-setting the same status is a silent write.
		again := f.do(http.MethodPut,
			fmt.Sprintf("/api/v1/admin/returns/%s/status", created.Id),
			`{"status":"accepted"}`, asStaff(3))
		require.Equal(t, http.StatusOK, again.Code)
		assert.Equal(t, 1, f.notifier.statusChanged)
	})

	t.Run("an invalid status is a bad request", func(t *testing.T) {
		f := newServerFixture(t)

		created := decodeReturnRequest(t, f.do(http.MethodPost, "/api/v1/returns",
			`{"orderId":101,"reason":"wrong size"}`, asCustomer(7)))

		rec := f.do(http.MethodPut,
			fmt.Sprintf("/api/v1/admin/returns/%s/status", created.Id),
			`{"status":"in-review"}`, asStaff(3))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("requires the staff header", func(t *testing.T) {
		f := newServerFixture(t)

		rec := f.do(http.MethodPut,
			fmt.Sprintf("/api/v1/admin/returns/%s/status", kernel.NewUUID()),
			`{"status":"accepted"}`, asCustomer(7))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAttachReturnOrderReference(t *testing.T) {
	t.Run("re-points the request and its owner", func(t *testing.T) {
		f := newServerFixture(t)

		created := decodeReturnRequest(t, f.do(http.MethodPost, "/api/v1/returns",
			`{"orderId":101,"reason":"wrong size"}`, asCustomer(7)))

		rec := f.do(http.MethodPut,
			fmt.Sprintf("/api/v1/admin/returns/%s/order-reference", created.Id),
			`{"orderNumber":"#205"}`, asStaff(3))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decodeReturnRequest(t, rec)
		assert.Equal(t, int64(205), resp.OrderId)

		// The new order's owner can now edit the request.
		edit := f.do(http.MethodPut,
			fmt.Sprintf("/api/v1/returns/%s/reason", created.Id),
			`{"reason":"wrong colour"}`, asCustomer(9))
		assert.Equal(t, http.StatusOK, edit.Code)
	})

	t.Run("an unknown order is not found", func(t *testing.T) {
		f := newServerFixture(t)

		created := decodeReturnRequest(t, f.do(http.MethodPost, "/api/v1/returns",
			`{"orderId":101,"reason":"wrong size"}`, asCustomer(7)))

		rec := f.do(http.MethodPut,
			fmt.Sprintf("/api/v1/admin/returns/%s/order-reference", created.Id),
			`{"orderNumber":"999"}`, asStaff(3))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("an order number without digits is a bad request", func(t *testing.T) {
		f := newServerFixture(t)

		rec := f.do(http.MethodPut,
			fmt.Sprintf("/api/v1/admin/returns/%s/order-reference", kernel.NewUUID()),
			`{"orderNumber":"none"}`, asStaff(3))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
