package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

	// ErrRequestIsNotEditable is returned when a customer tries to change the
	// reason of a request that is no longer pending.
	ErrRequestIsNotEditable = errors.New("request is no longer editable")
)

// Request is the return-request aggregate root. It ties a customer to one
// of their past orders, carries the customer-facing tracking code and the
// free-text reason, and owns the review status state machine.
//
// Invariants:
//   - customerID and orderID are positive
//   - the tracking code is exactly 12 digits and assigned once
//   - the reason is never empty after trimming
//   - the reason is editable only while the status is Pending
//   - status values are restricted to Pending, Accepted, Rejected
//
// At most one request may exist per (customer, order) pair; that invariant
// spans aggregates and is enforced by the creation use case together with
// a storage-level unique index.
type Request struct {
	// id is the opaque identifier of the request
	id kernel.UUID

	// customerID is the owning customer, set at creation
	customerID int64

	// orderID references the order being returned, owned externally
	orderID int64

	// code is the 12-digit customer-facing tracking code
	code TrackingCode

	// reason is the customer's free-text return reason
	reason string

	// status is the current review state
	status Status

	// createdAt is the submission time, set once
	createdAt time.Time

	// isConstructed ensures the request was created via a constructor
	isConstructed bool
}

// NewRequest creates a newly submitted return request in Pending status.
// All invariants are validated; the creation timestamp is set to now (UTC).
//
// Example:
//
//	code, _ := request.NewTrackingCode("004217390571")
//	req, err := request.NewRequest(kernel.NewUUID(), customerID, orderID, code, "wrong size")
//	if err != nil {
//	    // handle validation error
//	}
func NewRequest(
	id kernel.UUID,
	customerID int64,
	orderID int64,
	code TrackingCode,
	reason string,
) (*Request, error) {
	req := &Request{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		req.setID(id),
		req.setCustomerID(customerID),
		req.setOrderID(orderID),
		req.setCode(code),
		req.setReason(reason),
	); err != nil {
		return nil, err
	}

	return req, nil
}

// RestoreRequest reconstructs a request from persistence. Unlike NewRequest
// it accepts an arbitrary (valid) status and the stored creation time.
func RestoreRequest(
	id kernel.UUID,
	customerID int64,
	orderID int64,
	code TrackingCode,
	reason string,
	status Status,
	createdAt time.Time,
) (*Request, error) {
	req := &Request{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		req.setID(id),
		req.setCustomerID(customerID),
		req.setOrderID(orderID),
		req.setCode(code),
		req.setReason(reason),
		req.setStatus(status),
	); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate ensures the Request was created through a constructor. Called
// by repositories before persisting to reject hand-built structs.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares two requests by identifier.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's opaque identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// CustomerID returns the owning customer's identifier.
func (r *Request) CustomerID() int64 {
	return r.customerID
}

// OrderID returns the identifier of the order being returned.
func (r *Request) OrderID() int64 {
	return r.orderID
}

// Code returns the 12-digit tracking code.
func (r *Request) Code() TrackingCode {
	return r.code
}

// Reason returns the customer's return reason.
func (r *Request) Reason() string {
	return r.reason
}

// Status returns the current review status.
func (r *Request) Status() Status {
	return r.status
}

// CreatedAt returns the submission time.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// IsOwnedBy reports whether the given customer owns this request.
func (r *Request) IsOwnedBy(customerID int64) bool {
	return r.customerID == customerID
}

// UpdateReason replaces the return reason. Permitted only while the request
// is Pending; returns ErrRequestIsNotEditable otherwise. The status and
// tracking code are left untouched.
func (r *Request) UpdateReason(reason string) error {
	if r.status != Pending {
		return ErrRequestIsNotEditable
	}
	return r.setReason(reason)
}

// ChangeStatus moves the request to newStatus and reports whether the
// status actually changed. Setting the current status again is a valid
// no-op (changed == false). Any valid status may be set, including moving
// out of Accepted or Rejected: staff overrides are not locked out.
func (r *Request) ChangeStatus(newStatus Status) (changed bool, err error) {
	if err = newStatus.Validate(); err != nil {
		return false, err
	}

	if newStatus == r.status {
		return false, nil
	}

	r.status = newStatus
	return true, nil
}

// ReassignOrder points the request at a different order and, when the
// order's owner is known (ownerCustomerID > 0), transfers ownership to that
// customer. This is the staff correction path for requests filed against
// the wrong order; guest orders keep the original owner.
func (r *Request) ReassignOrder(orderID int64, ownerCustomerID int64) error {
	if err := r.setOrderID(orderID); err != nil {
		return err
	}

	if ownerCustomerID > 0 {
		r.customerID = ownerCustomerID
	}
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%d is not a positive identifier", customerID))
	}
	r.customerID = customerID
	return nil
}

func (r *Request) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a positive identifier", orderID))
	}
	r.orderID = orderID
	return nil
}

func (r *Request) setCode(code TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	r.code = code
	return nil
}

func (r *Request) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	r.reason = reason
	return nil
}

func (r *Request) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
