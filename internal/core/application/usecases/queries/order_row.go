package queries

import (
	"database/sql"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// orderSummarySelect is the shared projection behind every order read: the
// order row joined with its restaurant, which also brings in the owner id the
// visibility check needs.
const orderSummarySelect = `
	SELECT
		o.id,
		o.client_id,
		o.restaurant_id,
		r.name,
		r.owner_id,
		o.driver_id,
		o.status,
		o.total,
		o.street,
		o.lat,
		o.lon
	FROM orders o
	JOIN restaurants r ON r.id = o.restaurant_id
`

// orderRow is one scanned summary row: the response plus the restaurant owner
// needed for visibility but not exposed in the response.
type orderRow struct {
	resp    OrderResponse
	ownerID kernel.UUID
}

func scanOrderRow(rows *sql.Rows) (orderRow, error) {
	var (
		id, clientID, restaurantID uuid.UUID
		restaurantName             string
		ownerID                    uuid.UUID
		driverID                   uuid.NullUUID
		status                     int
		total                      sql.NullInt64
		street                     string
		lat, lon                   float64
	)

	if err := rows.Scan(
		&id,
		&clientID,
		&restaurantID,
		&restaurantName,
		&ownerID,
		&driverID,
		&status,
		&total,
		&street,
		&lat,
		&lon,
	); err != nil {
		return orderRow{}, err
	}

	row := orderRow{
		resp: OrderResponse{
			RestaurantName: restaurantName,
			Status:         order.Status(status).String(),
			Street:         street,
			Lat:            lat,
			Lon:            lon,
		},
	}

	var err error
	if row.resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return orderRow{}, err
	}
	if row.resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return orderRow{}, err
	}
	if row.resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return orderRow{}, err
	}
	if row.ownerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return orderRow{}, err
	}
	if driverID.Valid {
		d, dErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if dErr != nil {
			return orderRow{}, dErr
		}
		row.resp.DriverID = &d
	}
	if total.Valid {
		row.resp.Total = &total.Int64
	}

	return row, nil
}
