package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/suite"
)

type GetFleetQueryHandlerTestSuite struct {
	postgresSuite
	handler queries.GetFleetQueryHandler
}

func (suite *GetFleetQueryHandlerTestSuite) SetupSuite() {
	suite.postgresSuite.SetupSuite()
	suite.handler = queries.NewGetFleetQueryHandler(suite.db)
}

func (suite *GetFleetQueryHandlerTestSuite) TestHandle_EmptyFleet() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetFleetQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetFleetQueryHandlerTestSuite) TestHandle_MaxDateLoadIsLargestSingleDate() {
	van := suite.addVehicle("Van", 2_000, vehicle.Available)
	truck := suite.addVehicle("Truck", 10_000, vehicle.Available)

	jan10 := datePtr(2025, time.January, 10)
	jan11 := datePtr(2025, time.January, 11)
	suite.addOrder("PO-1", jan10, 3_000, truck)
	suite.addOrder("PO-2", jan10, 1_500, truck)
	suite.addOrder("PO-3", jan11, 4_000, truck)
	suite.addOrder("PO-4", jan10, 800, van)
	suite.addOrder("PO-5", jan10, 9_000, nil)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetFleetQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("Truck", result[0].Name)
	suite.Equal(truck.ID(), result[0].ID)
	suite.Equal(int64(10_000), result[0].Capacity)
	suite.Equal(3, result[0].AssignedOrders)
	suite.Equal(int64(4_500), result[0].MaxDateLoad)
	suite.Equal(int64(8_500), result[0].CurrentLoad)
	suite.Equal(vehicle.Available, result[0].DriverStatus)
	suite.Equal("Driver of Truck", result[0].Driver)
	suite.Equal(truck.Dimensions(), result[0].Dimensions)

	suite.Equal("Van", result[1].Name)
	suite.Equal(1, result[1].AssignedOrders)
	suite.Equal(int64(800), result[1].MaxDateLoad)
	suite.InDelta(0.4, result[1].Utilization(), 1e-9)
}

func (suite *GetFleetQueryHandlerTestSuite) TestHandle_IdleVehicleHasZeroLoad() {
	suite.addVehicle("Spare", 5_000, vehicle.UnderMaintenance)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetFleetQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Zero(result[0].AssignedOrders)
	suite.Zero(result[0].MaxDateLoad)
	suite.Equal(vehicle.UnderMaintenance, result[0].DriverStatus)
}

func TestGetFleetQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetFleetQueryHandlerTestSuite))
}
