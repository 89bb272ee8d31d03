package queries

import (
	"context"

	"eats/internal/core/domain/model/actor"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders scoped to the viewer's role. No separate
// visibility check is needed: the scoping predicate is the visibility rule.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the viewer's orders, newest last.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var scope string
	switch query.Viewer().Role() {
	case actor.Client:
		scope = `o.client_id = ?`
	case actor.Owner:
		scope = `r.owner_id = ?`
	case actor.Delivery:
		scope = `o.driver_id = ?`
	}

	sql := orderSummarySelect + ` WHERE ` + scope
	args := []any{query.Viewer().ID().Bytes()}
	if status := query.Status(); status != nil {
		sql += ` AND o.status = ?`
		args = append(args, int(*status))
	}
	sql += ` ORDER BY o.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		row, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, row.resp)
	}

	return orders, rows.Err()
}
