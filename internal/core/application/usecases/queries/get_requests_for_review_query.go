package queries

import (
	"errors"
	"fmt"

	"returns/internal/core/domain/model/request"
	"returns/internal/pkg/errs"
	"returns/internal/pkg/guard"
)

var ErrGetRequestsForReviewQueryIsNotConstructed = errors.New(
	"GetRequestsForReviewQuery must be created via NewGetRequestsForReviewQuery constructor",
)

// GetRequestsForReviewQuery retrieves return requests across all
// customers for the staff review listing, newest first, optionally
// narrowed to one status.
type GetRequestsForReviewQuery struct {
	statusFilter request.Status
	limit        int
	offset       int

	guard guard.ConstructorGuard
}

// NewGetRequestsForReviewQuery creates a staff listing query. An empty
// statusFilter lists every request; otherwise it must be a valid status
// string ("pending", "accepted", "rejected").
func NewGetRequestsForReviewQuery(statusFilter string, limit, offset int) (GetRequestsForReviewQuery, error) {
	var filter request.Status
	if statusFilter != "" {
		parsed, err := request.StatusFromString(statusFilter)
		if err != nil {
			return GetRequestsForReviewQuery{}, err
		}
		filter = parsed
	}

	if offset < 0 {
		return GetRequestsForReviewQuery{}, errs.NewValueIsInvalidErrorWithCause("offset",
			fmt.Errorf("%d is negative", offset))
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return GetRequestsForReviewQuery{
		statusFilter: filter,
		limit:        limit,
		offset:       offset,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRequestsForReviewQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestsForReviewQueryIsNotConstructed)
}

// StatusFilter returns the status to narrow to, request.Unknown when the
// listing covers every status.
func (q GetRequestsForReviewQuery) StatusFilter() request.Status {
	return q.statusFilter
}

// Limit returns the page size.
func (q GetRequestsForReviewQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q GetRequestsForReviewQuery) Offset() int {
	return q.offset
}
