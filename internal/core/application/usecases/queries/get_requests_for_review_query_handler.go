package queries

import (
	"context"

	"returns/internal/core/domain/model/request"

	"gorm.io/gorm"
)

// GetRequestsForReviewQueryHandler reads the staff review listing from
// the database: every customer's requests, optionally one status only.
type GetRequestsForReviewQueryHandler struct {
	db *gorm.DB
}

// NewGetRequestsForReviewQueryHandler creates a handler for the staff
// review listing.
func NewGetRequestsForReviewQueryHandler(db *gorm.DB) GetRequestsForReviewQueryHandler {
	return GetRequestsForReviewQueryHandler{db: db}
}

// Handle executes the listing, newest submissions first.
func (h GetRequestsForReviewQueryHandler) Handle(
	ctx context.Context,
	query GetRequestsForReviewQuery,
) ([]RequestSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const selectList = `
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
	`

	const tail = `
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT ? OFFSET ?
	`

	tx := h.db.WithContext(ctx)
	statement := tx.Raw(selectList+tail, query.Limit(), query.Offset())
	if query.StatusFilter() != request.Unknown {
		statement = tx.Raw(selectList+` WHERE r.status = ?`+tail,
			query.StatusFilter().String(), query.Limit(), query.Offset())
	}

	rows, err := statement.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRequestSummaries(rows)
}
