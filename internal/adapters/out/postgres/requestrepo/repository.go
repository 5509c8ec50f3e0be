package requestrepo

import (
	"context"
	"errors"
	"fmt"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/request"
	"returns/internal/core/ports"
	"returns/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM.
//
// Unique index violations are reported as ports.ErrStorageConflict; that
// relies on the connection being opened with TranslateError enabled so the
// driver error arrives as gorm.ErrDuplicatedKey.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new request to the database.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %w", ports.ErrStorageConflict, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing request to the database.
func (r *GormRequestRepository) Update(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %w", ports.ErrStorageConflict, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomerAndOrder retrieves the request a customer filed for an
// order. The composite unique index guarantees at most one row.
func (r *GormRequestRepository) GetByCustomerAndOrder(
	ctx context.Context,
	customerID, orderID int64,
) (*request.Request, error) {
	var dto RequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "customer_id = ? AND order_id = ?", customerID, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request",
				fmt.Sprintf("customer %d order %d", customerID, orderID))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCustomer retrieves a customer's requests, newest first.
func (r *GormRequestRepository) GetAllByCustomer(
	ctx context.Context,
	customerID int64,
	limit, offset int,
) ([]*request.Request, error) {
	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*request.Request, 0, len(dtos))
	for _, dto := range dtos {
		req, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}
