package request

import (
	"fmt"

	"returns/internal/pkg/errs"
)

// Status represents the review state of a return request.
//
// State machine:
//
//	Pending ──┬──> Accepted
//	          └──> Rejected
//
// Accepted and Rejected are the intended terminal states: they end the
// customer-editable part of the lifecycle. Staff may still move a request
// between any two valid states as an administrative override; the engine
// does not lock terminal states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly submitted request.
	// Only pending requests may have their reason edited by the customer.
	Pending

	// Accepted indicates staff approved the return.
	Accepted

	// Rejected indicates staff declined the return.
	Rejected
)

// getStatusStrings returns the wire representation of every Status value,
// including Unknown, for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Accepted: "accepted",
		Rejected: "rejected",
	}
}

// getValidStatusStrings returns only the statuses a request may hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pending",
		Accepted: "accepted",
		Rejected: "rejected",
	}
}

// StatusFromString parses a wire value ("pending", "accepted", "rejected")
// into a Status. Returns an error for anything else, including the empty
// string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of Pending, Accepted, Rejected.
// Unknown (0) and out-of-range values are invalid. Used to vet statuses
// arriving from the database or the staff API before they touch a request.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire value of the status ("pending", "accepted",
// "rejected"), or "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Label returns the human-readable label shown to customers and used in
// notification emails.
func (s Status) Label() string {
	switch s {
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	case Pending:
		return "Under Review"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether the status ends the editable lifecycle of a
// request. Customers cannot edit the reason once a terminal status is set.
func (s Status) IsTerminal() bool {
	return s == Accepted || s == Rejected
}
