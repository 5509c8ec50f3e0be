package commands

import (
	"errors"
	"fmt"
	"strings"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/errs"
	"returns/internal/pkg/guard"
)

var (
	ErrUpdateRequestReasonCommandIsNotConstructed = errors.New(
		"UpdateRequestReasonCommand must be created via NewUpdateRequestReasonCommand constructor",
	)

	// ErrNotRequestOwner is returned when a customer addresses a request
	// filed by someone else.
	ErrNotRequestOwner = errors.New("request belongs to another customer")
)

// UpdateRequestReasonCommand represents a customer's edit of the return
// reason on one of their pending requests.
type UpdateRequestReasonCommand struct { //nolint:recvcheck //using for validation
	requestorID int64
	requestID   kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

// NewUpdateRequestReasonCommand creates a reason-edit command. The
// requestor id must be positive, the request id constructed, and the new
// reason non-empty after trimming.
func NewUpdateRequestReasonCommand(
	requestorID int64,
	requestID kernel.UUID,
	reason string,
) (UpdateRequestReasonCommand, error) {
	cmd := UpdateRequestReasonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestorID(requestorID),
		cmd.setRequestID(requestID),
		cmd.setReason(reason),
	); err != nil {
		return UpdateRequestReasonCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRequestReasonCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRequestReasonCommandIsNotConstructed)
}

// RequestorID returns the customer asking for the edit.
func (c UpdateRequestReasonCommand) RequestorID() int64 {
	return c.requestorID
}

// RequestID returns the request being edited.
func (c UpdateRequestReasonCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Reason returns the trimmed replacement reason.
func (c UpdateRequestReasonCommand) Reason() string {
	return c.reason
}

func (c *UpdateRequestReasonCommand) setRequestorID(requestorID int64) error {
	if requestorID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requestorId",
			fmt.Errorf("%d is not a positive identifier", requestorID))
	}
	c.requestorID = requestorID
	return nil
}

func (c *UpdateRequestReasonCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *UpdateRequestReasonCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
