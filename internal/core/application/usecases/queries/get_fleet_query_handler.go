package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetFleetQueryHandler struct {
	db *gorm.DB
}

func NewGetFleetQueryHandler(db *gorm.DB) GetFleetQueryHandler {
	return GetFleetQueryHandler{db: db}
}

// Handle returns the fleet ordered by vehicle name. The per-date loads are
// summed from the orders that reference a vehicle.
func (h GetFleetQueryHandler) Handle(ctx context.Context, query GetFleetQuery) ([]GetFleetQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			v.id,
			v.name,
			v.capacity,
			v.cargo_length,
			v.cargo_width,
			v.cargo_height,
			v.driver,
			v.driver_status,
			COALESCE(cardinality(v.assigned_orders), 0),
			v.current_load,
			COALESCE(MAX(d.date_load), 0)::bigint
		FROM vehicles v
		LEFT JOIN (
			SELECT vehicle_id, delivery_date, SUM(load)::bigint AS date_load
			FROM orders
			WHERE deleted_at IS NULL
				AND vehicle_id IS NOT NULL
				AND status IN ?
			GROUP BY vehicle_id, delivery_date
		) d ON d.vehicle_id = v.id
		GROUP BY v.id
		ORDER BY v.name
	`, []string{order.Assigned.String(), order.InTransit.String(), order.Delivered.String()}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fleet := make([]GetFleetQueryResponse, 0)
	for rows.Next() {
		var (
			resp                  GetFleetQueryResponse
			id                    uuid.UUID
			length, width, height int64
			driverStatus          string
		)

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Capacity,
			&length,
			&width,
			&height,
			&resp.Driver,
			&driverStatus,
			&resp.AssignedOrders,
			&resp.CurrentLoad,
			&resp.MaxDateLoad,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Dimensions, err = kernel.NewDimensions(length, width, height); err != nil {
			return nil, err
		}
		if resp.DriverStatus, err = vehicle.ParseDriverStatus(driverStatus); err != nil {
			return nil, err
		}

		fleet = append(fleet, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fleet, nil
}
