// Package order carries the read-only snapshot of a shop order that the
// return-request engine consults. Orders are owned by the shop; this model
// never mutates them.
package order

import (
	"errors"
	"fmt"

	"returns/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not created via
// NewOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Line is a single order line item as shown in notification emails.
type Line struct {
	Name     string
	Quantity int
	Subtotal float64
}

// Order is an immutable snapshot of a shop order: enough to verify
// ownership, render notifications, and label requests with the order
// number. A CustomerID of zero means a guest checkout.
type Order struct {
	id            int64
	customerID    int64
	number        string
	lines         []Line
	total         float64
	billingEmail  string
	isConstructed bool
}

// NewOrder builds an order snapshot. The id must be positive and the order
// number non-empty; customerID may be zero for guest orders.
func NewOrder(
	id int64,
	customerID int64,
	number string,
	lines []Line,
	total float64,
	billingEmail string,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	if customerID < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%d is negative", customerID))
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		number:        number,
		lines:         lines,
		total:         total,
		billingEmail:  billingEmail,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created via NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the owning customer's identifier, zero for guests.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// Number returns the human-facing order number.
func (o *Order) Number() string {
	return o.number
}

// Lines returns the order's line items.
func (o *Order) Lines() []Line {
	return o.lines
}

// Total returns the order total.
func (o *Order) Total() float64 {
	return o.total
}

// BillingEmail returns the billing email used for customer notifications.
func (o *Order) BillingEmail() string {
	return o.billingEmail
}

// IsOwnedBy reports whether the given customer placed this order. Guest
// orders are owned by nobody.
func (o *Order) IsOwnedBy(customerID int64) bool {
	return o.customerID > 0 && o.customerID == customerID
}
