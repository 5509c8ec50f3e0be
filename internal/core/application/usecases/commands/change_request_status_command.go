package commands

import (
	"errors"
	"fmt"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/request"
	"returns/internal/pkg/errs"
	"returns/internal/pkg/guard"
)

var ErrChangeRequestStatusCommandIsNotConstructed = errors.New(
	"ChangeRequestStatusCommand must be created via NewChangeRequestStatusCommand constructor",
)

// ChangeRequestStatusCommand represents a staff decision on a return
// request. Authorization of the staff actor happens upstream; the command
// only validates the status value itself.
type ChangeRequestStatusCommand struct { //nolint:recvcheck //using for validation
	staffID   int64
	requestID kernel.UUID
	newStatus request.Status

	guard guard.ConstructorGuard
}

// NewChangeRequestStatusCommand creates a status-transition command.
func NewChangeRequestStatusCommand(
	staffID int64,
	requestID kernel.UUID,
	newStatus request.Status,
) (ChangeRequestStatusCommand, error) {
	cmd := ChangeRequestStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStaffID(staffID),
		cmd.setRequestID(requestID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return ChangeRequestStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeRequestStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeRequestStatusCommandIsNotConstructed)
}

// StaffID returns the staff actor making the decision.
func (c ChangeRequestStatusCommand) StaffID() int64 {
	return c.staffID
}

// RequestID returns the request being decided.
func (c ChangeRequestStatusCommand) RequestID() kernel.UUID {
	return c.requestID
}

// NewStatus returns the status to set.
func (c ChangeRequestStatusCommand) NewStatus() request.Status {
	return c.newStatus
}

func (c *ChangeRequestStatusCommand) setStaffID(staffID int64) error {
	if staffID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("staffId",
			fmt.Errorf("%d is not a positive identifier", staffID))
	}
	c.staffID = staffID
	return nil
}

func (c *ChangeRequestStatusCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *ChangeRequestStatusCommand) setNewStatus(newStatus request.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
