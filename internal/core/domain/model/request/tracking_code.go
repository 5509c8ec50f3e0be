package request

import (
	"fmt"

	"returns/internal/pkg/errs"
)

// TrackingCodeLength is the number of decimal digits in a tracking code.
const TrackingCodeLength = 12

// ErrTrackingCodeIsNotConstructed is returned when validating a zero-value
// TrackingCode that did not go through NewTrackingCode.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError("TrackingCode must be created via NewTrackingCode")

// TrackingCode is the customer-facing identifier of a return request:
// exactly 12 decimal digits. It is assigned once at creation and never
// changes. Uniqueness across requests is enforced by the store, not by
// this type.
type TrackingCode struct {
	value string
}

// NewTrackingCode validates and wraps a raw code string. The value must be
// exactly 12 characters, each a digit 0-9.
func NewTrackingCode(value string) (TrackingCode, error) {
	if value == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("code")
	}
	if len(value) != TrackingCodeLength {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q is not %d characters long", value, TrackingCodeLength))
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause("code",
				fmt.Errorf("%q contains a non-digit character", value))
		}
	}

	return TrackingCode{value: value}, nil
}

// String returns the 12-digit code.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual reports whether both codes carry the same digits.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate returns ErrTrackingCodeIsNotConstructed for the zero value.
func (c TrackingCode) Validate() error {
	if c.value == "" {
		return ErrTrackingCodeIsNotConstructed
	}
	return nil
}
