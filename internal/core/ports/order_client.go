package ports

import (
	"context"

	"returns/internal/core/domain/model/order"
)

// OrderClient is the read-only Order Lookup collaborator. Implementations
// resolve an order id to its snapshot (owner, number, line items, totals,
// billing email) or return an errs.ObjectNotFoundError.
type OrderClient interface {
	GetOrder(ctx context.Context, orderID int64) (*order.Order, error)
}
