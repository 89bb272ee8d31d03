// Package orderrepo persists order aggregates over three tables: the order
// row, its items, and the item selections. The package maps between domain
// entities and their database representations and keeps the claim operation a
// single conditional update.
package orderrepo

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate. Total is nullable:
// the creation transaction writes the row first and finalizes the total after
// the items are persisted and re-priced.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID     uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	Status       int        `gorm:"index"`
	Total        *int64
	Street       string
	Lat          float64
	Lon          float64
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line. The row id exists only for persistence; the
// domain item carries no identity of its own.
type ItemDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	DishID  uuid.UUID `gorm:"type:uuid"`
	Count   int
}

// TableName overrides GORM's default naming convention.
func (ItemDTO) TableName() string {
	return "order_items"
}

// SelectionDTO is one selected option-choice pair on an item. The composite
// key enforces at most one choice per option per item at the schema level.
type SelectionDTO struct {
	ItemID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OptionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChoiceID uuid.UUID `gorm:"type:uuid"`
}

// TableName overrides GORM's default naming convention.
func (SelectionDTO) TableName() string {
	return "order_item_selections"
}

// fromDomain converts an order aggregate to its row representations. Item row
// ids are generated here; they never surface in the domain.
func fromDomain(aggregate *order.Order) (OrderDTO, []ItemDTO, []SelectionDTO) {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var total *int64
	if t, ok := aggregate.Total(); ok {
		raw := int64(t)
		total = &raw
	}

	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		ClientID:     aggregate.ClientID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		DriverID:     driverID,
		Status:       int(aggregate.Status()),
		Total:        total,
		Street:       aggregate.Address().Street,
		Lat:          aggregate.Address().Lat,
		Lon:          aggregate.Address().Lon,
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	selections := make([]SelectionDTO, 0)
	for _, item := range aggregate.Items() {
		itemDTO := ItemDTO{
			ID:      kernel.NewUUID().Bytes(),
			OrderID: dto.ID,
			DishID:  item.DishID().Bytes(),
			Count:   item.Count(),
		}
		items = append(items, itemDTO)

		for _, sel := range item.Selections() {
			selections = append(selections, SelectionDTO{
				ItemID:   itemDTO.ID,
				OptionID: sel.OptionID().Bytes(),
				ChoiceID: sel.ChoiceID().Bytes(),
			})
		}
	}

	return dto, items, selections
}

// toDomain reconstructs an order aggregate from its rows.
func toDomain(dto OrderDTO, itemDTOs []ItemDTO, selectionDTOs []SelectionDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	var total *kernel.Money
	if dto.Total != nil {
		t := kernel.Money(*dto.Total)
		total = &t
	}

	selectionsByItem := make(map[uuid.UUID][]order.Selection)
	for _, selDTO := range selectionDTOs {
		optionID, selErr := kernel.UUIDFromBytes(selDTO.OptionID[:])
		if selErr != nil {
			return nil, selErr
		}
		choiceID, selErr := kernel.UUIDFromBytes(selDTO.ChoiceID[:])
		if selErr != nil {
			return nil, selErr
		}
		selection, selErr := order.NewSelection(optionID, choiceID)
		if selErr != nil {
			return nil, selErr
		}
		selectionsByItem[selDTO.ItemID] = append(selectionsByItem[selDTO.ItemID], selection)
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		dishID, itemErr := kernel.UUIDFromBytes(itemDTO.DishID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewItem(dishID, itemDTO.Count, selectionsByItem[itemDTO.ID])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address := order.Address{Street: dto.Street, Lat: dto.Lat, Lon: dto.Lon}

	return order.RestoreOrder(
		id, clientID, restaurantID, driverID,
		order.Status(dto.Status), total, address, items,
	)
}
