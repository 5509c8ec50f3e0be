package ports

import (
	"context"

	"returns/internal/core/domain/model/order"
	"returns/internal/core/domain/model/request"
)

// RequestSubmitted is the structured body of the admin notification fired
// when a customer creates a return request. It carries a snapshot of the
// order at submission time so the message renders without further lookups.
type RequestSubmitted struct {
	Code        string
	Reason      string
	OrderID     int64
	OrderNumber string
	Lines       []order.Line
	OrderTotal  float64
}

// RequestStatusChanged is the structured body of the customer notification
// fired when staff moves a request to a different status. RecipientEmail
// is the order's billing email; implementations skip dispatch when it is
// empty (guest order with no address on file).
type RequestStatusChanged struct {
	Code           string
	Status         request.Status
	OrderNumber    string
	Lines          []order.Line
	RecipientEmail string
}

// PendingReviewItem is one row of the daily digest.
type PendingReviewItem struct {
	Code        string
	OrderNumber string
	Reason      string
}

// PendingReviewDigest is the structured body of the daily admin summary
// listing requests still awaiting review.
type PendingReviewDigest struct {
	Count int
	Items []PendingReviewItem
}

// Notifier delivers lifecycle notifications. Dispatch is synchronous and
// best effort: callers log failures and never roll back the mutation that
// triggered the event.
type Notifier interface {
	NotifyRequestSubmitted(ctx context.Context, event RequestSubmitted) error
	NotifyRequestStatusChanged(ctx context.Context, event RequestStatusChanged) error
	NotifyPendingReviewDigest(ctx context.Context, event PendingReviewDigest) error
}
