package queries

import (
	"errors"
	"fmt"
	"time"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/request"
	"returns/internal/pkg/errs"
	"returns/internal/pkg/guard"
)

var ErrGetCustomerRequestsQueryIsNotConstructed = errors.New(
	"GetCustomerRequestsQuery must be created via NewGetCustomerRequestsQuery constructor",
)

// Paging defaults shared by the list queries.
const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// GetCustomerRequestsQuery retrieves a customer's own return requests,
// newest first. This is what backs the "my returns" page.
//
// Example:
//
//	query, err := NewGetCustomerRequestsQuery(customerID, 20, 0)
//	if err != nil {
//	    return err
//	}
//
//	requests, err := handler.Handle(ctx, query)
type GetCustomerRequestsQuery struct {
	customerID int64
	limit      int
	offset     int

	guard guard.ConstructorGuard
}

// NewGetCustomerRequestsQuery creates a query for a customer's requests.
// A non-positive limit falls back to the default page size; the limit is
// capped at maxPageSize and a negative offset is rejected.
func NewGetCustomerRequestsQuery(customerID int64, limit, offset int) (GetCustomerRequestsQuery, error) {
	if customerID <= 0 {
		return GetCustomerRequestsQuery{}, errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%d is not a positive identifier", customerID))
	}
	if offset < 0 {
		return GetCustomerRequestsQuery{}, errs.NewValueIsInvalidErrorWithCause("offset",
			fmt.Errorf("%d is negative", offset))
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return GetCustomerRequestsQuery{
		customerID: customerID,
		limit:      limit,
		offset:     offset,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerRequestsQueryIsNotConstructed)
}

// CustomerID returns the customer whose requests are listed.
func (q GetCustomerRequestsQuery) CustomerID() int64 {
	return q.customerID
}

// Limit returns the page size.
func (q GetCustomerRequestsQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q GetCustomerRequestsQuery) Offset() int {
	return q.offset
}

// RequestSummary is one row of a request listing: the request itself plus
// the human-facing number of the order it references. The order number is
// empty when the referenced order no longer resolves.
type RequestSummary struct {
	ID          kernel.UUID
	Code        string
	OrderID     int64
	OrderNumber string
	Reason      string
	Status      request.Status
	CreatedAt   time.Time
}
