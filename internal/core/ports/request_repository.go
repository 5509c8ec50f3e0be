package ports

import (
	"context"
	"errors"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/request"
)

// ErrStorageConflict is returned by repository writes that violate a
// storage-level uniqueness constraint: the (customer, order) pair index or
// the tracking code index. The advisory checks in the use cases can pass
// and still race; the store is authoritative.
var ErrStorageConflict = errors.New("request conflicts with a stored request")

// RequestRepository defines the persistence contract for return-request
// aggregates.
type RequestRepository interface {
	// Add persists a new request. Returns ErrStorageConflict when a
	// uniqueness constraint rejects the insert.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update persists changes to an existing request in one atomic write
	// covering every engine-changed field. Returns ErrStorageConflict when
	// a reassignment collides with an existing (customer, order) pair.
	Update(ctx context.Context, aggregate *request.Request) error

	// Get retrieves a request by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// GetByCustomerAndOrder retrieves the request a customer filed for an
	// order, used for the advisory duplicate check at creation.
	GetByCustomerAndOrder(ctx context.Context, customerID, orderID int64) (*request.Request, error)

	// GetAllByCustomer retrieves a customer's requests, newest first.
	GetAllByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]*request.Request, error)
}
