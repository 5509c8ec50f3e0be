// Package requestrepo provides data transfer objects and mapping functions
// for return request persistence. It implements the repository pattern for
// the request aggregate, converting between domain entities and rows.
package requestrepo

import (
	"time"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting return
// requests. Two unique indexes carry domain invariants: one on the
// tracking code and a composite one on (customer_id, order_id) that
// enforces the one-request-per-order rule.
type RequestDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID int64     `gorm:"index;uniqueIndex:uniq_requests_customer_order"`
	OrderID    int64     `gorm:"uniqueIndex:uniq_requests_customer_order"`
	Code       string    `gorm:"type:varchar(12);uniqueIndex"`
	Reason     string    `gorm:"type:text"`
	Status     string    `gorm:"type:varchar(16);index"`
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "requests".
func (RequestDTO) TableName() string {
	return "requests"
}

// fromDomain converts a request aggregate to its database representation.
func fromDomain(req *request.Request) RequestDTO {
	return RequestDTO{
		ID:         req.ID().Bytes(),
		CustomerID: req.CustomerID(),
		OrderID:    req.OrderID(),
		Code:       req.Code().String(),
		Reason:     req.Reason(),
		Status:     req.Status().String(),
		CreatedAt:  req.CreatedAt(),
	}
}

// toDomain converts a row to a request aggregate via RestoreRequest, so a
// corrupted row (bad code, bad status) surfaces as an error instead of an
// invalid aggregate.
func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := request.NewTrackingCode(dto.Code)
	if err != nil {
		return nil, err
	}

	status, err := request.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return request.RestoreRequest(
		id, dto.CustomerID, dto.OrderID, code, dto.Reason, status, dto.CreatedAt)
}
