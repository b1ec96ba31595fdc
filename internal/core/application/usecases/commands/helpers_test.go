package commands_test

import (
	"testing"

	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const boxVolume = 100

var today = kernel.DateOf(now)

func testCatalog(t *testing.T) catalog.Catalog {
	t.Helper()
	box, err := kernel.NewDimensions(10, 10, 10)
	require.NoError(t, err)
	product, err := catalog.NewProduct("BOX", "Carton", boxVolume, box, decimal.RequireFromString("2.50"), nil)
	require.NoError(t, err)
	return catalog.NewCatalog(product)
}

func lineItems(t *testing.T, quantity int) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem("BOX", quantity, order.PerPiece, 0)
	require.NoError(t, err)
	return []order.LineItem{item}
}

func cargoBox(t *testing.T) kernel.Dimensions {
	t.Helper()
	box, err := kernel.NewDimensions(600, 240, 240)
	require.NoError(t, err)
	return box
}

func newTruck(t *testing.T, name string, capacity int64, status vehicle.DriverStatus) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), name, capacity, cargoBox(t), "Driver of "+name, status)
	require.NoError(t, err)
	return v
}

// carry loads orders on the vehicle the way a previous assignment left them.
func carry(t *testing.T, v *vehicle.Vehicle, orders ...*order.Order) {
	t.Helper()
	for _, o := range orders {
		require.NoError(t, v.AddOrder(o.ID(), o.Load()))
	}
}

type orderState struct {
	customID  string
	cluster   string
	date      *kernel.Date
	quantity  int
	status    order.Status
	delivery  order.DeliveryStatus
	vehicleID *kernel.UUID
}

func restoreOrder(t *testing.T, s orderState) *order.Order {
	t.Helper()
	if s.delivery == order.DeliveryUnknown {
		s.delivery = order.DeliveryPending
	}
	if s.status == order.Unknown {
		s.status = order.Pending
	}
	o, err := order.RestoreOrder(order.Snapshot{
		ID: kernel.NewUUID(),
		Details: order.Details{
			CustomID:     s.customID,
			CompanyName:  "Acme",
			Cluster:      s.cluster,
			DeliveryDate: s.date,
			Items:        lineItems(t, s.quantity),
		},
		Load:           int64(s.quantity) * boxVolume,
		VehicleID:      s.vehicleID,
		Status:         s.status,
		DeliveryStatus: s.delivery,
	})
	require.NoError(t, err)
	return o
}

func idOf(v *vehicle.Vehicle) *kernel.UUID {
	id := v.ID()
	return &id
}
