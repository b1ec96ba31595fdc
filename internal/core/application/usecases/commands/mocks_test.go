package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ExistsCustomID(ctx context.Context, customID string) (bool, error) {
	args := m.Called(ctx, customID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Archive(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*vehicle.Vehicle)
	return v, args.Error(1)
}

func (m *MockVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	vehicles, _ := args.Get(0).([]*vehicle.Vehicle)
	return vehicles, args.Error(1)
}

func (m *MockVehicleRepository) ExistsName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Load(ctx context.Context) (catalog.Catalog, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(catalog.Catalog)
	return c, args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Append(ctx context.Context, entries ...audit.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockVehicleUoW struct{ mock.Mock }

func (m *MockVehicleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, entries ...audit.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

type MockRecorder struct{ mock.Mock }

func (m *MockRecorder) OrderPlaced(status order.Status) {
	m.Called(status)
}

func (m *MockRecorder) RebalanceCompleted(summary services.Summary, elapsed time.Duration) {
	m.Called(summary, elapsed)
}

func (m *MockRecorder) RebalanceFailed() {
	m.Called()
}

// fixture wires a MockUoW whose repositories are always available, so tests
// only declare the repository calls they care about.
type fixture struct {
	orders    *MockOrderRepository
	vehicles  *MockVehicleRepository
	catalog   *MockCatalogRepository
	audit     *MockAuditRepository
	uow       *MockUoW
	factory   *MockUoWFactory
	publisher *MockPublisher
	recorder  *MockRecorder
	scheduler *commands.Scheduler
}

var now = time.Date(2025, time.January, 10, 9, 30, 0, 0, time.UTC)

func newFixture() *fixture {
	f := &fixture{
		orders:    new(MockOrderRepository),
		vehicles:  new(MockVehicleRepository),
		catalog:   new(MockCatalogRepository),
		audit:     new(MockAuditRepository),
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory),
		publisher: new(MockPublisher),
		recorder:  new(MockRecorder),
	}
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("VehicleRepository").Return(f.vehicles).Maybe()
	f.uow.On("CatalogRepository").Return(f.catalog).Maybe()
	f.uow.On("AuditRepository").Return(f.audit).Maybe()
	f.factory.On("Create").Return(f.uow).Once()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.scheduler = commands.NewScheduler(f.publisher, f.recorder, func() time.Time { return now }, logger)
	return f
}

// expectTransaction declares a begin, an optional commit and the deferred rollback.
func (f *fixture) expectTransaction(commit bool) {
	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	if commit {
		f.uow.On("Commit", mock.Anything).Return(nil).Once()
	}
	f.uow.On("Rollback", mock.Anything).Return(nil).Once()
}

// expectFleet makes the catalog and both GetAll calls return the given state.
func (f *fixture) expectFleet(cat catalog.Catalog, vehicles []*vehicle.Vehicle, orders []*order.Order) {
	f.catalog.On("Load", mock.Anything).Return(cat, nil)
	f.vehicles.On("GetAll", mock.Anything).Return(vehicles, nil)
	f.orders.On("GetAll", mock.Anything).Return(orders, nil)
}

func (f *fixture) assertExpectations(t mock.TestingT) {
	f.orders.AssertExpectations(t)
	f.vehicles.AssertExpectations(t)
	f.catalog.AssertExpectations(t)
	f.audit.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
	f.recorder.AssertExpectations(t)
}
