package http_test

import (
	"context"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (services.Outcome, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(services.Outcome), args.Error(1)
}

type MockUpdateOrderHandler struct{ mock.Mock }

func (m *MockUpdateOrderHandler) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteOrderHandler struct{ mock.Mock }

func (m *MockDeleteOrderHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAdvanceDeliveryStatusHandler struct{ mock.Mock }

func (m *MockAdvanceDeliveryStatusHandler) Handle(ctx context.Context, cmd commands.AdvanceDeliveryStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCompleteOrderHandler struct{ mock.Mock }

func (m *MockCompleteOrderHandler) Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateVehicleHandler struct{ mock.Mock }

func (m *MockCreateVehicleHandler) Handle(ctx context.Context, cmd commands.CreateVehicleCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockChangeDriverStatusHandler struct{ mock.Mock }

func (m *MockChangeDriverStatusHandler) Handle(ctx context.Context, cmd commands.ChangeDriverStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRebalanceHandler struct{ mock.Mock }

func (m *MockRebalanceHandler) Handle(ctx context.Context, cmd commands.RebalanceCommand) (services.Summary, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(services.Summary), args.Error(1)
}

type MockActiveOrdersHandler struct{ mock.Mock }

func (m *MockActiveOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetActiveOrdersQuery,
) ([]queries.GetActiveOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetActiveOrdersQueryResponse), args.Error(1)
}

type MockFleetHandler struct{ mock.Mock }

func (m *MockFleetHandler) Handle(ctx context.Context, query queries.GetFleetQuery) ([]queries.GetFleetQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetFleetQueryResponse), args.Error(1)
}

type MockAuditTrailHandler struct{ mock.Mock }

func (m *MockAuditTrailHandler) Handle(
	ctx context.Context,
	query queries.GetAuditTrailQuery,
) ([]queries.GetAuditTrailQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetAuditTrailQueryResponse), args.Error(1)
}
