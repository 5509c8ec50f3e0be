package commands

import (
	"errors"
	"fmt"
	"strings"

	"returns/internal/pkg/errs"
	"returns/internal/pkg/guard"
)

var (
	ErrCreateRequestCommandIsNotConstructed = errors.New(
		"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
	)

	// ErrOrderNotOwned is returned when the referenced order does not exist
	// or belongs to another customer. The two cases are deliberately not
	// distinguished to the caller.
	ErrOrderNotOwned = errors.New("order does not belong to the customer")

	// ErrDuplicateRequest is returned when the customer already has a
	// return request for the order.
	ErrDuplicateRequest = errors.New("a return request for this order already exists")
)

// CreateRequestCommand represents a customer's intent to open a return
// request for one of their orders.
//
// Example:
//
//	cmd, err := NewCreateRequestCommand(customerID, orderID, "wrong size")
//	if err != nil {
//	    return fmt.Errorf("invalid return request: %w", err)
//	}
//
//	req, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDuplicateRequest) {
//	    // the customer already filed a request for this order
//	}
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	orderID    int64
	reason     string

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand creates a command to open a return request.
// The customer and order ids must be positive and the reason non-empty
// after trimming.
func NewCreateRequestCommand(customerID, orderID int64, reason string) (CreateRequestCommand, error) {
	cmd := CreateRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return CreateRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

// CustomerID returns the authenticated customer opening the request.
func (c CreateRequestCommand) CustomerID() int64 {
	return c.customerID
}

// OrderID returns the order being returned.
func (c CreateRequestCommand) OrderID() int64 {
	return c.orderID
}

// Reason returns the trimmed return reason.
func (c CreateRequestCommand) Reason() string {
	return c.reason
}

func (c *CreateRequestCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%d is not a positive identifier", customerID))
	}
	c.customerID = customerID
	return nil
}

func (c *CreateRequestCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *CreateRequestCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
