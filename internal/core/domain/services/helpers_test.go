package services_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// unitProduct has a piece volume of 1 so an order's load equals its quantity.
const unitProduct = "UNIT"

// longProduct is a single piece too long for the test trucks.
const longProduct = "LONG"

func day(d int) *kernel.Date {
	date := kernel.NewDate(2025, time.January, d)
	return &date
}

var today = *day(10)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCatalog(t *testing.T) catalog.Catalog {
	t.Helper()
	small, err := kernel.NewDimensions(10, 10, 10)
	require.NoError(t, err)
	long, err := kernel.NewDimensions(900, 10, 10)
	require.NoError(t, err)

	unit, err := catalog.NewProduct(unitProduct, "Unit", 1, small, decimal.NewFromInt(1), nil)
	require.NoError(t, err)
	bar, err := catalog.NewProduct(longProduct, "Long bar", 1, long, decimal.NewFromInt(5), nil)
	require.NoError(t, err)

	return catalog.NewCatalog(unit, bar)
}

func newCalc(t *testing.T) services.LoadCalculator {
	t.Helper()
	return services.NewLoadCalculator(testCatalog(t), discardLogger())
}

func newVehicle(t *testing.T, name string, capacity int64, status vehicle.DriverStatus) *vehicle.Vehicle {
	t.Helper()
	box, err := kernel.NewDimensions(600, 240, 240)
	require.NoError(t, err)
	v, err := vehicle.NewVehicle(kernel.NewUUID(), name, capacity, box, "driver of "+name, status)
	require.NoError(t, err)
	return v
}

func newOrderOf(t *testing.T, customID, cluster string, date *kernel.Date, productID string, quantity int) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(productID, quantity, order.PerPiece, 0)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		CustomID:     customID,
		CompanyName:  "Acme",
		Cluster:      cluster,
		DeliveryDate: date,
		Items:        []order.LineItem{item},
	})
	require.NoError(t, err)
	return o
}

func newOrder(t *testing.T, customID, cluster string, date *kernel.Date, load int) *order.Order {
	t.Helper()
	return newOrderOf(t, customID, cluster, date, unitProduct, load)
}

// assignedTo puts an order on a vehicle as a previous pass would have.
func assignedTo(t *testing.T, o *order.Order, v *vehicle.Vehicle) *order.Order {
	t.Helper()
	require.NoError(t, o.AssignTo(v.ID(), order.TriggerAssignment, ""))
	require.NoError(t, v.AddOrder(o.ID(), 0))
	return o
}
