// Package orderclient reads the shop's order data. The engine treats
// orders as foreign, read-only state: it consults them for ownership
// checks and notification content but never writes them.
package orderclient

import (
	"returns/internal/core/domain/model/order"
)

// OrderDTO maps the orders mirror table. A zero CustomerID marks a guest
// checkout.
type OrderDTO struct {
	ID           int64  `gorm:"primaryKey"`
	CustomerID   int64  `gorm:"index"`
	Number       string `gorm:"type:varchar(32)"`
	Total        float64
	BillingEmail string `gorm:"type:varchar(254)"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO maps one line item of an order.
type OrderItemDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	OrderID  int64 `gorm:"index"`
	Name     string
	Quantity int
	Subtotal float64
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// toDomain assembles the order snapshot from its row and line items.
func toDomain(dto OrderDTO, items []OrderItemDTO) (*order.Order, error) {
	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, order.Line{
			Name:     item.Name,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		})
	}

	return order.NewOrder(dto.ID, dto.CustomerID, dto.Number, lines, dto.Total, dto.BillingEmail)
}
