package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/errs"
	"returns/internal/pkg/guard"
)

var ErrAttachOrderReferenceCommandIsNotConstructed = errors.New(
	"AttachOrderReferenceCommand must be created via NewAttachOrderReferenceCommand constructor",
)

// AttachOrderReferenceCommand represents a staff correction that points a
// return request at a different order. The order is entered as free text
// (e.g. "#1234"); everything but the digits is stripped.
type AttachOrderReferenceCommand struct { //nolint:recvcheck //using for validation
	staffID   int64
	requestID kernel.UUID
	orderID   int64

	guard guard.ConstructorGuard
}

// NewAttachOrderReferenceCommand creates an order-reference correction
// command from a raw order number string.
func NewAttachOrderReferenceCommand(
	staffID int64,
	requestID kernel.UUID,
	rawOrderNumber string,
) (AttachOrderReferenceCommand, error) {
	cmd := AttachOrderReferenceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStaffID(staffID),
		cmd.setRequestID(requestID),
		cmd.setOrderID(rawOrderNumber),
	); err != nil {
		return AttachOrderReferenceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachOrderReferenceCommand) Validate() error {
	return c.guard.Validate(ErrAttachOrderReferenceCommandIsNotConstructed)
}

// StaffID returns the staff actor making the correction.
func (c AttachOrderReferenceCommand) StaffID() int64 {
	return c.staffID
}

// RequestID returns the request being corrected.
func (c AttachOrderReferenceCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OrderID returns the order id parsed out of the raw order number text.
func (c AttachOrderReferenceCommand) OrderID() int64 {
	return c.orderID
}

func (c *AttachOrderReferenceCommand) setStaffID(staffID int64) error {
	if staffID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("staffId",
			fmt.Errorf("%d is not a positive identifier", staffID))
	}
	c.staffID = staffID
	return nil
}

func (c *AttachOrderReferenceCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *AttachOrderReferenceCommand) setOrderID(rawOrderNumber string) error {
	var digits strings.Builder
	for _, r := range rawOrderNumber {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q contains no digits", rawOrderNumber))
	}

	orderID, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil || orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not resolve to an order id", rawOrderNumber))
	}

	c.orderID = orderID
	return nil
}
