package queries

import (
	"context"
	"database/sql"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerRequestsQueryHandler reads a customer's return requests
// straight from the database, bypassing the aggregate. The listing joins
// the orders mirror for the human-facing order number.
type GetCustomerRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerRequestsQueryHandler creates a handler for customer
// request listings.
func NewGetCustomerRequestsQueryHandler(db *gorm.DB) GetCustomerRequestsQueryHandler {
	return GetCustomerRequestsQueryHandler{db: db}
}

// Handle executes the listing, newest submissions first.
func (h GetCustomerRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerRequestsQuery,
) ([]RequestSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.code,
			r.order_id,
			COALESCE(o.number, ''),
			r.reason,
			r.status,
			r.created_at
		FROM requests r
		LEFT JOIN orders o ON o.id = r.order_id
		WHERE r.customer_id = ?
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT ? OFFSET ?
	`, query.CustomerID(), query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequestSummaries(rows)
}

// scanRequestSummaries maps listing rows onto summaries; shared by the
// customer and review listings, whose select lists are identical.
func scanRequestSummaries(rows *sql.Rows) ([]RequestSummary, error) {
	summaries := make([]RequestSummary, 0)

	for rows.Next() {
		var summary RequestSummary
		var id uuid.UUID
		var status string

		if err := rows.Scan(
			&id,
			&summary.Code,
			&summary.OrderID,
			&summary.OrderNumber,
			&summary.Reason,
			&status,
			&summary.CreatedAt,
		); err != nil {
			return nil, err
		}

		requestID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		summary.ID = requestID

		requestStatus, err := request.StatusFromString(status)
		if err != nil {
			return nil, err
		}
		summary.Status = requestStatus

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
