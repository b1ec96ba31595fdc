package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/suite"
)

type GetActiveOrdersQueryHandlerTestSuite struct {
	postgresSuite
	handler queries.GetActiveOrdersQueryHandler
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.postgresSuite.SetupSuite()
	suite.handler = queries.NewGetActiveOrdersQueryHandler(suite.db)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetActiveOrdersQuery()
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_SortsByDateThenCustomIDWithUndatedLast() {
	truck := suite.addVehicle("Truck 1", 10_000, vehicle.Available)
	suite.addOrder("PO-3", nil, 100, nil)
	suite.addOrder("PO-2", datePtr(2025, time.January, 11), 100, nil)
	assigned := suite.addOrder("PO-1", datePtr(2025, time.January, 10), 250, truck)

	query, err := queries.NewGetActiveOrdersQuery()
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 3)
	suite.Equal([]string{"PO-1", "PO-2", "PO-3"}, []string{result[0].CustomID, result[1].CustomID, result[2].CustomID})

	first := result[0]
	suite.Equal(assigned.ID(), first.ID)
	suite.Equal(order.Assigned, first.Status)
	suite.Equal(order.DeliveryPending, first.DeliveryStatus)
	suite.Equal(int64(250), first.Load)
	suite.Equal("north", first.Cluster)
	suite.Require().NotNil(first.VehicleID)
	suite.Equal(truck.ID(), *first.VehicleID)
	suite.Equal("Truck 1", first.VehicleName)
	suite.Require().NotNil(first.DeliveryDate)
	suite.Equal("2025-01-10", first.DeliveryDate.String())

	suite.Nil(result[2].DeliveryDate)
	suite.Nil(result[2].VehicleID)
	suite.Empty(result[2].VehicleName)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_SkipsDeletedOrders() {
	ctx := context.Background()
	kept := suite.addOrder("PO-1", nil, 100, nil)
	deleted := suite.addOrder("PO-2", nil, 100, nil)
	suite.Require().NoError(suite.orderRepo.Delete(ctx, deleted.ID()))

	query, err := queries.NewGetActiveOrdersQuery()
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(kept.ID(), result[0].ID)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_FiltersByStatus() {
	truck := suite.addVehicle("Truck 1", 10_000, vehicle.Available)
	suite.addOrder("PO-1", datePtr(2025, time.January, 10), 100, truck)
	pending := suite.addOrder("PO-2", datePtr(2025, time.January, 10), 100, nil)

	query, err := queries.NewGetActiveOrdersQuery(order.Pending)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(pending.ID(), result[0].ID)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery() {
	_, err := suite.handler.Handle(context.Background(), queries.GetActiveOrdersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
