package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUpdateOrderCommand(t *testing.T, id kernel.UUID, customID string, quantity int) commands.UpdateOrderCommand {
	t.Helper()
	cmd, err := commands.NewUpdateOrderCommand(id, customID, "Acme", "north", &today, lineItems(t, quantity))
	require.NoError(t, err)
	return cmd
}

func TestUpdateOrderCommandHandler_Handle_EditsAndRebalances(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	truck := newTruck(t, "Truck 1", 10_000, vehicle.Available)
	o := restoreOrder(t, orderState{customID: "PO-1", cluster: "north", date: &today, quantity: 10})

	f.expectTransaction(true)
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Twice()
	f.expectFleet(testCatalog(t), []*vehicle.Vehicle{truck}, []*order.Order{o})
	f.vehicles.On("Update", ctx, truck).Return(nil).Once()
	f.audit.On("Append", ctx, mock.MatchedBy(func(entries []audit.Entry) bool {
		return len(entries) == 2 &&
			entries[0].Kind() == audit.Assigned &&
			entries[1].Kind() == audit.RebalanceCompleted
	})).Return(nil).Once()
	f.publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()
	f.recorder.On("RebalanceCompleted", services.Summary{Assigned: 1}, mock.Anything).Once()

	h := commands.NewUpdateOrderCommandHandler(f.factory, f.scheduler)
	err := h.Handle(ctx, newUpdateOrderCommand(t, o.ID(), "PO-1", 20))

	require.NoError(t, err)
	assert.Equal(t, order.Assigned, o.Status())
	assert.Equal(t, int64(20*boxVolume), o.Load())
	assert.Equal(t, int64(20*boxVolume), truck.CurrentLoad())
	f.orders.AssertNotCalled(t, "ExistsCustomID", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_RenameToTakenCustomID(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	o := restoreOrder(t, orderState{customID: "PO-1", cluster: "north", date: &today, quantity: 10})

	f.expectTransaction(false)
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.orders.On("ExistsCustomID", ctx, "PO-2").Return(true, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(f.factory, f.scheduler)
	err := h.Handle(ctx, newUpdateOrderCommand(t, o.ID(), "PO-2", 10))

	require.ErrorIs(t, err, errs.ErrAlreadyExists)
	assert.Equal(t, "PO-1", o.CustomID())
	f.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_OrderOnTheRoad(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	truck := newTruck(t, "Truck 1", 10_000, vehicle.InTransit)
	o := restoreOrder(t, orderState{
		customID:  "PO-1",
		cluster:   "north",
		date:      &today,
		quantity:  10,
		status:    order.InTransit,
		delivery:  order.DeliveryOngoing,
		vehicleID: idOf(truck),
	})

	f.expectTransaction(false)
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	h := commands.NewUpdateOrderCommandHandler(f.factory, f.scheduler)
	err := h.Handle(ctx, newUpdateOrderCommand(t, o.ID(), "PO-1", 20))

	require.ErrorIs(t, err, errs.ErrTransitionNotAllowed)
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()

	f.expectTransaction(false)
	f.orders.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

	h := commands.NewUpdateOrderCommandHandler(f.factory, f.scheduler)
	err := h.Handle(ctx, newUpdateOrderCommand(t, id, "PO-1", 20))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_FreesTheVehicle(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	truck := newTruck(t, "Truck 1", 10_000, vehicle.Available)
	o := restoreOrder(t, orderState{
		customID:  "PO-1",
		cluster:   "north",
		date:      &today,
		quantity:  10,
		status:    order.Assigned,
		vehicleID: idOf(truck),
	})
	carry(t, truck, o)

	f.expectTransaction(true)
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.vehicles.On("Get", ctx, truck.ID()).Return(truck, nil).Once()
	f.vehicles.On("Update", ctx, truck).Return(nil).Twice()
	f.orders.On("Delete", ctx, o.ID()).Return(nil).Once()
	f.expectFleet(testCatalog(t), []*vehicle.Vehicle{truck}, nil)
	f.audit.On("Append", ctx, mock.MatchedBy(func(entries []audit.Entry) bool {
		return len(entries) == 1 && entries[0].Kind() == audit.RebalanceCompleted
	})).Return(nil).Once()
	f.publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()
	f.recorder.On("RebalanceCompleted", services.Summary{}, mock.Anything).Once()

	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	require.NoError(t, err)

	h := commands.NewDeleteOrderCommandHandler(f.factory, f.scheduler)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.False(t, truck.Carries(o.ID()))
	assert.Zero(t, truck.CurrentLoad())
	f.assertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_OrderOnTheRoad(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	truck := newTruck(t, "Truck 1", 10_000, vehicle.InTransit)
	o := restoreOrder(t, orderState{
		customID:  "PO-1",
		cluster:   "north",
		quantity:  10,
		status:    order.Delivered,
		delivery:  order.DeliveryDone,
		vehicleID: idOf(truck),
	})

	f.expectTransaction(false)
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	require.NoError(t, err)

	h := commands.NewDeleteOrderCommandHandler(f.factory, f.scheduler)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrTransitionNotAllowed)
	f.orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestNewDeleteOrderCommand_InvalidID(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
