package request_test

import (
	"testing"
	"time"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/request"
	"returns/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCode(t *testing.T, raw string) request.TrackingCode {
	t.Helper()
	code, err := request.NewTrackingCode(raw)
	require.NoError(t, err)
	return code
}

func newTestRequest(t *testing.T) *request.Request {
	t.Helper()
	req, err := request.NewRequest(kernel.NewUUID(), 7, 101, mustCode(t, "004217390571"), "wrong size")
	require.NoError(t, err)
	return req
}

func TestNewRequest(t *testing.T) {
	t.Run("valid request starts pending", func(t *testing.T) {
		req := newTestRequest(t)

		assert.Equal(t, request.Pending, req.Status())
		assert.Equal(t, int64(7), req.CustomerID())
		assert.Equal(t, int64(101), req.OrderID())
		assert.Equal(t, "004217390571", req.Code().String())
		assert.Equal(t, "wrong size", req.Reason())
		assert.False(t, req.CreatedAt().IsZero())
		require.NoError(t, req.Validate())
	})

	t.Run("reason is trimmed", func(t *testing.T) {
		req, err := request.NewRequest(kernel.NewUUID(), 7, 101, mustCode(t, "004217390571"), "  damaged item  ")
		require.NoError(t, err)
		assert.Equal(t, "damaged item", req.Reason())
	})

	t.Run("empty reason is rejected", func(t *testing.T) {
		_, err := request.NewRequest(kernel.NewUUID(), 7, 101, mustCode(t, "004217390571"), "   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid ids are rejected", func(t *testing.T) {
		_, err := request.NewRequest(kernel.NewUUID(), 0, 101, mustCode(t, "004217390571"), "wrong size")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = request.NewRequest(kernel.NewUUID(), 7, -1, mustCode(t, "004217390571"), "wrong size")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero-value code is rejected", func(t *testing.T) {
		_, err := request.NewRequest(kernel.NewUUID(), 7, 101, request.TrackingCode{}, "wrong size")
		require.ErrorIs(t, err, request.ErrTrackingCodeIsNotConstructed)
	})
}

func TestRestoreRequest(t *testing.T) {
	createdAt := time.Date(2025, 11, 3, 10, 30, 0, 0, time.UTC)

	req, err := request.RestoreRequest(
		kernel.NewUUID(), 7, 101, mustCode(t, "004217390571"), "wrong size", request.Accepted, createdAt)
	require.NoError(t, err)

	assert.Equal(t, request.Accepted, req.Status())
	assert.Equal(t, createdAt, req.CreatedAt())

	_, err = request.RestoreRequest(
		kernel.NewUUID(), 7, 101, mustCode(t, "004217390571"), "wrong size", request.Unknown, createdAt)
	require.Error(t, err)
}

func TestRequest_Validate_NotConstructed(t *testing.T) {
	var req request.Request
	require.ErrorIs(t, req.Validate(), request.ErrRequestIsNotConstructed)
}

func TestRequest_UpdateReason(t *testing.T) {
	t.Run("editable while pending", func(t *testing.T) {
		req := newTestRequest(t)

		require.NoError(t, req.UpdateReason("damaged item"))
		assert.Equal(t, "damaged item", req.Reason())
		assert.Equal(t, request.Pending, req.Status())
	})

	t.Run("empty reason is rejected", func(t *testing.T) {
		req := newTestRequest(t)
		require.ErrorIs(t, req.UpdateReason(" "), errs.ErrValueIsRequired)
		assert.Equal(t, "wrong size", req.Reason())
	})

	t.Run("locked after accept", func(t *testing.T) {
		req := newTestRequest(t)
		_, err := req.ChangeStatus(request.Accepted)
		require.NoError(t, err)

		require.ErrorIs(t, req.UpdateReason("changed my mind"), request.ErrRequestIsNotEditable)
	})

	t.Run("locked after reject", func(t *testing.T) {
		req := newTestRequest(t)
		_, err := req.ChangeStatus(request.Rejected)
		require.NoError(t, err)

		require.ErrorIs(t, req.UpdateReason("changed my mind"), request.ErrRequestIsNotEditable)
	})
}

func TestRequest_ChangeStatus(t *testing.T) {
	t.Run("pending to accepted reports change", func(t *testing.T) {
		req := newTestRequest(t)

		changed, err := req.ChangeStatus(request.Accepted)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, request.Accepted, req.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		req := newTestRequest(t)

		changed, err := req.ChangeStatus(request.Pending)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, request.Pending, req.Status())
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		req := newTestRequest(t)

		_, err := req.ChangeStatus(request.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, request.Pending, req.Status())
	})

	t.Run("staff may leave a terminal status", func(t *testing.T) {
		req := newTestRequest(t)
		_, err := req.ChangeStatus(request.Rejected)
		require.NoError(t, err)

		changed, err := req.ChangeStatus(request.Pending)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, request.Pending, req.Status())
	})
}

func TestRequest_ReassignOrder(t *testing.T) {
	t.Run("moves order and owner", func(t *testing.T) {
		req := newTestRequest(t)

		require.NoError(t, req.ReassignOrder(202, 9))
		assert.Equal(t, int64(202), req.OrderID())
		assert.Equal(t, int64(9), req.CustomerID())
	})

	t.Run("keeps owner for guest orders", func(t *testing.T) {
		req := newTestRequest(t)

		require.NoError(t, req.ReassignOrder(202, 0))
		assert.Equal(t, int64(202), req.OrderID())
		assert.Equal(t, int64(7), req.CustomerID())
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		req := newTestRequest(t)
		require.ErrorIs(t, req.ReassignOrder(0, 9), errs.ErrValueIsInvalid)
	})
}

func TestRequest_IsOwnedBy(t *testing.T) {
	req := newTestRequest(t)
	assert.True(t, req.IsOwnedBy(7))
	assert.False(t, req.IsOwnedBy(8))
}
