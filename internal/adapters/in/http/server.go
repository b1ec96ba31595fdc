package http

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/generated/servers"
)

// Use case contracts the server depends on. The application handlers satisfy them.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (services.Outcome, error)
	}
	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	AdvanceDeliveryStatusHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceDeliveryStatusCommand) error
	}
	CompleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error
	}
	CreateVehicleHandler interface {
		Handle(ctx context.Context, cmd commands.CreateVehicleCommand) error
	}
	ChangeDriverStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeDriverStatusCommand) error
	}
	RebalanceHandler interface {
		Handle(ctx context.Context, cmd commands.RebalanceCommand) (services.Summary, error)
	}
	ActiveOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.GetActiveOrdersQueryResponse, error)
	}
	FleetHandler interface {
		Handle(ctx context.Context, query queries.GetFleetQuery) ([]queries.GetFleetQueryResponse, error)
	}
	AuditTrailHandler interface {
		Handle(ctx context.Context, query queries.GetAuditTrailQuery) ([]queries.GetAuditTrailQueryResponse, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder           CreateOrderHandler
	UpdateOrder           UpdateOrderHandler
	DeleteOrder           DeleteOrderHandler
	AdvanceDeliveryStatus AdvanceDeliveryStatusHandler
	CompleteOrder         CompleteOrderHandler
	CreateVehicle         CreateVehicleHandler
	ChangeDriverStatus    ChangeDriverStatusHandler
	Rebalance             RebalanceHandler

	// Query handlers
	ActiveOrders ActiveOrdersHandler
	Fleet        FleetHandler
	AuditTrail   AuditTrailHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "HTTPServer"),
	}
}
