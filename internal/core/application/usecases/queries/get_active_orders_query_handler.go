package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the order board straight from the orders
// and vehicles tables.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns the matching orders, earliest delivery date first, undated
// orders last, then by custom ID.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]string, 0)
	for _, s := range query.Statuses() {
		statuses = append(statuses, s.String())
	}

	sql := `
		SELECT
			o.id,
			o.custom_id,
			o.company_name,
			o.cluster,
			o.delivery_date,
			o.total_price,
			o.load,
			o.vehicle_id,
			COALESCE(v.name, ''),
			o.status,
			o.delivery_status,
			o.reason,
			o.updated_at
		FROM orders o
		LEFT JOIN vehicles v ON v.id = o.vehicle_id
		WHERE o.deleted_at IS NULL
			AND o.status <> ?`
	args := []any{order.Completed.String()}
	if len(statuses) > 0 {
		sql += ` AND o.status IN ?`
		args = append(args, statuses)
	}
	sql += ` ORDER BY o.delivery_date NULLS LAST, o.custom_id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp           GetActiveOrdersQueryResponse
			id             uuid.UUID
			vehicleID      *uuid.UUID
			deliveryDate   *time.Time
			totalPrice     decimal.Decimal
			status         string
			deliveryStatus string
		)

		err = rows.Scan(
			&id,
			&resp.CustomID,
			&resp.CompanyName,
			&resp.Cluster,
			&deliveryDate,
			&totalPrice,
			&resp.Load,
			&vehicleID,
			&resp.VehicleName,
			&status,
			&deliveryStatus,
			&resp.Reason,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		if vehicleID != nil {
			vid, vehicleErr := kernel.UUIDFromBytes(vehicleID[:])
			if vehicleErr != nil {
				return nil, vehicleErr
			}
			resp.VehicleID = &vid
		}

		if deliveryDate != nil {
			d := kernel.DateOf(*deliveryDate)
			resp.DeliveryDate = &d
		}

		if resp.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if resp.DeliveryStatus, err = order.ParseDeliveryStatus(deliveryStatus); err != nil {
			return nil, err
		}

		resp.TotalPrice = totalPrice
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
