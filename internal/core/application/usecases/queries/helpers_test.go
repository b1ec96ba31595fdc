package queries_test

import (
	"context"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/auditrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/vehiclerepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// postgresSuite starts one PostgreSQL container per handler suite and gives
// each test an empty schema.
type postgresSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	vehicleRepo *vehiclerepo.GormVehicleRepository
	auditRepo   *auditrepo.GormAuditRepository
}

func (s *postgresSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(postgres_adapter.Migrate(db))

	s.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	s.vehicleRepo = vehiclerepo.NewGormVehicleRepository(db, &mockAggregateTracker{})
	s.auditRepo = auditrepo.NewGormAuditRepository(db)
}

func (s *postgresSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *postgresSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE order_line_items, orders, order_history, vehicles, audit_entries").Error
	s.Require().NoError(err)
}

func (s *postgresSuite) addVehicle(name string, capacity int64, status vehicle.DriverStatus) *vehicle.Vehicle {
	dims, err := kernel.NewDimensions(600, 240, 240)
	s.Require().NoError(err)

	v, err := vehicle.NewVehicle(kernel.NewUUID(), name, capacity, dims, "Driver of "+name, status)
	s.Require().NoError(err)
	s.Require().NoError(s.vehicleRepo.Add(context.Background(), v))
	return v
}

// addOrder stores an order measured at load. A non-nil v assigns it.
func (s *postgresSuite) addOrder(customID string, date *kernel.Date, load int64, v *vehicle.Vehicle) *order.Order {
	item, err := order.NewLineItem("BOX", 1, order.PerPiece, 0)
	s.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		CustomID:     customID,
		CompanyName:  "Acme",
		Cluster:      "north",
		DeliveryDate: date,
		Items:        []order.LineItem{item},
	})
	s.Require().NoError(err)
	s.Require().NoError(o.Measure(load, kernel.Dimensions{}, o.TotalPrice()))

	if v != nil {
		s.Require().NoError(o.AssignTo(v.ID(), order.TriggerAssignment, ""))
		s.Require().NoError(v.AddOrder(o.ID(), load))
		s.Require().NoError(s.vehicleRepo.Update(context.Background(), v))
	}

	s.Require().NoError(s.orderRepo.Add(context.Background(), o))
	return o
}

func datePtr(year int, month time.Month, day int) *kernel.Date {
	d := kernel.NewDate(year, month, day)
	return &d
}
