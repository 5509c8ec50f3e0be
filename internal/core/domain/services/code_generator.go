package services

import (
	"math/rand/v2"
	"strings"

	"returns/internal/core/domain/model/request"
)

// TrackingCodeGenerator is a domain service producing customer-facing
// tracking codes: 12 decimal digits, each drawn independently and
// uniformly from 0-9.
//
// The generator gives no uniqueness guarantee by itself. With a 10^12
// space collisions are unlikely but real; the creation use case retries
// with a fresh code when the store's unique index reports a collision.
type TrackingCodeGenerator struct{}

// NewTrackingCodeGenerator creates a TrackingCodeGenerator.
func NewTrackingCodeGenerator() TrackingCodeGenerator {
	return TrackingCodeGenerator{}
}

// Generate produces a new 12-digit tracking code.
func (TrackingCodeGenerator) Generate() (request.TrackingCode, error) {
	var sb strings.Builder
	sb.Grow(request.TrackingCodeLength)
	for i := 0; i < request.TrackingCodeLength; i++ {
		sb.WriteByte(byte('0' + rand.IntN(10))) //nolint:gosec // tracking codes are not secrets
	}

	return request.NewTrackingCode(sb.String())
}
