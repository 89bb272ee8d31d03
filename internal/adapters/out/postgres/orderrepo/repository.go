package orderrepo

import (
	"context"
	"database/sql"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items and selections.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items, selections := fromDomain(aggregate)

	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		return err
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}
	if len(selections) > 0 {
		if err := db.Create(&selections).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order aggregate by id.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	var itemDTOs []ItemDTO
	if err := db.Order("id").Find(&itemDTOs, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	itemIDs := make([]uuid.UUID, 0, len(itemDTOs))
	for _, item := range itemDTOs {
		itemIDs = append(itemIDs, item.ID)
	}

	var selectionDTOs []SelectionDTO
	if len(itemIDs) > 0 {
		if err := db.Find(&selectionDTOs, "item_id IN ?", itemIDs).Error; err != nil {
			return nil, err
		}
	}

	return toDomain(dto, itemDTOs, selectionDTOs)
}

// GetPricedItems re-reads the order's lines joined with the authoritative
// dish prices and choice extras. Meaningful only inside the creation
// transaction: this is the read the total is computed from.
func (r *GormOrderRepository) GetPricedItems(
	ctx context.Context,
	id kernel.UUID,
) ([]services.PricedItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			d.price,
			i.count
		FROM order_items i
		JOIN dishes d ON d.id = i.dish_id
		WHERE i.order_id = ?
		ORDER BY i.id
	`, id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]services.PricedItem, 0)
	itemIndex := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			itemID uuid.UUID
			price  int64
			count  int
		)
		if err = rows.Scan(&itemID, &price, &count); err != nil {
			return nil, err
		}
		itemIndex[itemID] = len(items)
		items = append(items, services.PricedItem{
			DishPrice: kernel.Money(price),
			Count:     count,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return items, nil
	}

	if err = r.loadExtras(ctx, id, items, itemIndex); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *GormOrderRepository) loadExtras(
	ctx context.Context,
	orderID kernel.UUID,
	items []services.PricedItem,
	itemIndex map[uuid.UUID]int,
) error {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.item_id,
			ch.extra
		FROM order_item_selections s
		JOIN order_items i ON i.id = s.item_id
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
			itemID uuid.UUID
			extra  int64
		)
		if err = rows.Scan(&itemID, &extra); err != nil {
			return err
		}
		if idx, ok := itemIndex[itemID]; ok {
			items[idx].Extras = append(items[idx].Extras, kernel.Money(extra))
		}
	}

	return rows.Err()
}

// UpdateTotal finalizes the computed total on the order row.
func (r *GormOrderRepository) UpdateTotal(ctx context.Context, id kernel.UUID, total kernel.Money) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Update("total", int64(total))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	return nil
}

// UpdateStatus persists a new status for the order.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Update("status", int(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	return nil
}

// Claim atomically assigns the driver and moves the order to PickedUp. The
// predicate re-checks "still Cooked, still unclaimed" at write time, so of
// several racing claims exactly one affects a row; the rest lose and get the
// already-claimed conflict.
func (r *GormOrderRepository) Claim(ctx context.Context, id kernel.UUID, driverID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND driver_id IS NULL AND status = ?", id.Bytes(), int(order.Cooked)).
		Updates(map[string]any{
			"driver_id": driverID.Bytes(),
			"status":    int(order.PickedUp),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return order.ErrAlreadyClaimed
	}

	return nil
}

// ListCookedUnclaimed returns ids of orders that are Cooked with no driver.
func (r *GormOrderRepository) ListCookedUnclaimed(ctx context.Context) ([]kernel.UUID, error) {
	var rawIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ? AND driver_id IS NULL", int(order.Cooked)).
		Order("id").
		Pluck("id", &rawIDs).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// GetSnapshot loads the order enriched with the relations notification
// subscribers need.
func (r *GormOrderRepository) GetSnapshot(ctx context.Context, id kernel.UUID) (*ports.OrderSnapshot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := r.loadSnapshotHead(ctx, id)
	if err != nil {
		return nil, err
	}

	itemIndex, err := r.loadSnapshotItems(ctx, id, snapshot)
	if err != nil {
		return nil, err
	}

	if err = r.loadSnapshotSelections(ctx, id, snapshot, itemIndex); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *GormOrderRepository) loadSnapshotHead(
	ctx context.Context,
	id kernel.UUID,
) (*ports.OrderSnapshot, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.client_id,
			o.driver_id,
			o.status,
			o.total,
			o.street,
			o.lat,
			o.lon,
			r.id,
			r.owner_id,
			r.name
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	var (
		orderID, clientID     uuid.UUID
		driverID              uuid.NullUUID
		status                int
		total                 sql.NullInt64
		street                string
		lat, lon              float64
		restaurantID, ownerID uuid.UUID
		restaurantName        string
	)
	if err = rows.Scan(
		&orderID, &clientID, &driverID, &status, &total, &street, &lat, &lon,
		&restaurantID, &ownerID, &restaurantName,
	); err != nil {
		return nil, err
	}

	snapshot := &ports.OrderSnapshot{
		Status: order.Status(status).String(),
		Street: street,
		Lat:    lat,
		Lon:    lon,
		Items:  make([]ports.SnapshotItem, 0),
	}
	snapshot.Restaurant.Name = restaurantName

	if snapshot.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return nil, err
	}
	if snapshot.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return nil, err
	}
	if snapshot.Restaurant.ID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return nil, err
	}
	if snapshot.Restaurant.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return nil, err
	}
	if driverID.Valid {
		d, dErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if dErr != nil {
			return nil, dErr
		}
		snapshot.DriverID = &d
	}
	if total.Valid {
		snapshot.Total = &total.Int64
	}

	return snapshot, rows.Err()
}

func (r *GormOrderRepository) loadSnapshotItems(
	ctx context.Context,
	id kernel.UUID,
	snapshot *ports.OrderSnapshot,
) (map[uuid.UUID]int, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
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
	`, id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemIndex := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			itemID, dishID uuid.UUID
			dishName       string
			dishPrice      int64
			count          int
		)
		if err = rows.Scan(&itemID, &dishID, &dishName, &dishPrice, &count); err != nil {
			return nil, err
		}

		dID, idErr := kernel.UUIDFromBytes(dishID[:])
		if idErr != nil {
			return nil, idErr
		}

		itemIndex[itemID] = len(snapshot.Items)
		snapshot.Items = append(snapshot.Items, ports.SnapshotItem{
			DishID:     dID,
			DishName:   dishName,
			DishPrice:  dishPrice,
			Count:      count,
			Selections: make([]ports.SnapshotSelection, 0),
		})
	}

	return itemIndex, rows.Err()
}

func (r *GormOrderRepository) loadSnapshotSelections(
	ctx context.Context,
	id kernel.UUID,
	snapshot *ports.OrderSnapshot,
	itemIndex map[uuid.UUID]int,
) error {
	rows, err := r.db.WithContext(ctx).Raw(`
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
	`, id.Bytes()).Rows()
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

		snapshot.Items[idx].Selections = append(snapshot.Items[idx].Selections, ports.SnapshotSelection{
			OptionID:   opID,
			OptionName: optionName,
			ChoiceID:   chID,
			ChoiceName: choiceName,
			Extra:      extra,
		})
	}

	return rows.Err()
}
