package orderclient

import (
	"context"
	"errors"
	"strconv"

	"returns/internal/core/domain/model/order"
	"returns/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderClient implements OrderClient against the orders mirror.
type GormOrderClient struct {
	db *gorm.DB
}

// NewGormOrderClient creates a read-only order lookup client.
func NewGormOrderClient(db *gorm.DB) *GormOrderClient {
	return &GormOrderClient{db: db}
}

// GetOrder loads an order snapshot with its line items. Returns an
// errs.ObjectNotFound error when no such order exists.
func (c *GormOrderClient) GetOrder(ctx context.Context, orderID int64) (*order.Order, error) {
	var dto OrderDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", strconv.FormatInt(orderID, 10))
		}
		return nil, err
	}

	var items []OrderItemDTO
	if err := c.db.WithContext(ctx).
		Order("id").
		Find(&items, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}
