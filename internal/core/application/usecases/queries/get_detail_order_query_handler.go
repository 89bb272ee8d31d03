package queries

import (
	"context"

	"eats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDetailOrderQueryHandler reads one order with its lines and selections.
// Three queries per read: the summary row, the items joined with dishes, and
// the selections joined with option and choice names.
type GetDetailOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDetailOrderQueryHandler creates a handler for detail reads.
func NewGetDetailOrderQueryHandler(db *gorm.DB) GetDetailOrderQueryHandler {
	return GetDetailOrderQueryHandler{db: db}
}

// Handle executes the query and returns the full order projection.
func (h GetDetailOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDetailOrderQuery,
) (DetailOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return DetailOrderResponse{}, err
	}

	row, err := loadOrderRow(ctx, h.db, query.OrderID())
	if err != nil {
		return DetailOrderResponse{}, err
	}

	if !row.resp.visibleTo(query.Viewer(), row.ownerID) {
		return DetailOrderResponse{}, ErrNotAllowedToSeeOrder
	}

	items, itemIndex, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return DetailOrderResponse{}, err
	}

	if err = h.loadSelections(ctx, query.OrderID(), items, itemIndex); err != nil {
		return DetailOrderResponse{}, err
	}

	return DetailOrderResponse{OrderResponse: row.resp, Items: items}, nil
}

// loadItems returns the order's lines and an index from item row id to the
// line's position, for attaching selections.
func (h GetDetailOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]ItemResponse, map[uuid.UUID]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.dish_id,
			d.name,
			d.price,
			i.count
		FROM order_items i
		JOIN dishes d ON d.id = i.dish_id
		WHERE i.order_id = ?
		ORDER BY i.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	items := make([]ItemResponse, 0)
	itemIndex := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			itemID, dishID uuid.UUID
			dishName       string
			dishPrice      int64
			count          int
		)
		if err = rows.Scan(&itemID, &dishID, &dishName, &dishPrice, &count); err != nil {
			return nil, nil, err
		}

		id, idErr := kernel.UUIDFromBytes(dishID[:])
		if idErr != nil {
			return nil, nil, idErr
		}

		itemIndex[itemID] = len(items)
		items = append(items, ItemResponse{
			DishID:     id,
			DishName:   dishName,
			DishPrice:  dishPrice,
			Count:      count,
			Selections: make([]SelectionResponse, 0),
		})
	}

	return items, itemIndex, rows.Err()
}

func (h GetDetailOrderQueryHandler) loadSelections(
	ctx context.Context,
	orderID kernel.UUID,
	items []ItemResponse,
	itemIndex map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.item_id,
			s.option_id,
			op.name,
			s.choice_id,
			ch.name,
			ch.extra
		FROM order_item_selections s
		JOIN order_items i ON i.id = s.item_id
		JOIN dish_options op ON op.id = s.option_id
		JOIN dish_option_choices ch ON ch.id = s.choice_id
		WHERE i.order_id = ?
		ORDER BY s.item_id, s.option_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			itemID, optionID, choiceID uuid.UUID
			optionName, choiceName     string
			extra                      int64
		)
		if err = rows.Scan(&itemID, &optionID, &optionName, &choiceID, &choiceName, &extra); err != nil {
			return err
		}

		idx, ok := itemIndex[itemID]
		if !ok {
			continue
		}

		opID, idErr := kernel.UUIDFromBytes(optionID[:])
		if idErr != nil {
			return idErr
		}
		chID, idErr := kernel.UUIDFromBytes(choiceID[:])
		if idErr != nil {
			return idErr
		}

		items[idx].Selections = append(items[idx].Selections, SelectionResponse{
			OptionID:   opID,
			OptionName: optionName,
			ChoiceID:   chID,
			ChoiceName: choiceName,
			Extra:      extra,
		})
	}

	return rows.Err()
}
