package queries

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order's summary projection from the database.
//
// Visibility is decided after the row is loaded: an existing but unrelated
// order yields an authorization denial, never a not-found.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order summary.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row, err := loadOrderRow(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if !row.resp.visibleTo(query.Viewer(), row.ownerID) {
		return OrderResponse{}, ErrNotAllowedToSeeOrder
	}

	return row.resp, nil
}

// loadOrderRow fetches the summary row for one order id. Shared by the single
// and detail reads.
func loadOrderRow(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (orderRow, error) {
	rows, err := db.WithContext(ctx).Raw(
		orderSummarySelect+` WHERE o.id = ?`,
		orderID.Bytes(),
	).Rows()
	if err != nil {
		return orderRow{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return orderRow{}, err
		}
		return orderRow{}, errs.NewObjectNotFoundError("orderId", orderID.String())
	}

	row, err := scanOrderRow(rows)
	if err != nil {
		return orderRow{}, err
	}

	return row, rows.Err()
}
