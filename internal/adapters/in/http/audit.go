package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetOrderAudit handles GET /api/v1/orders/{orderId}/audit.
func (s *Server) GetOrderAudit(ctx echo.Context, orderID servers.OrderId, params servers.GetOrderAuditParams) error {
	id, err := domainUUID(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	return s.auditTrail(ctx, &id, params.Limit)
}

// GetAudit handles GET /api/v1/audit - the trail of the whole fleet.
func (s *Server) GetAudit(ctx echo.Context, params servers.GetAuditParams) error {
	return s.auditTrail(ctx, nil, params.Limit)
}

func (s *Server) auditTrail(ctx echo.Context, orderID *kernel.UUID, limit *int) error {
	n := 0
	if limit != nil {
		n = *limit
	}

	query, err := queries.NewGetAuditTrailQuery(orderID, n)
	if err != nil {
		return badRequest(ctx, "Invalid audit query: "+err.Error())
	}

	entries, err := s.handlers.AuditTrail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.AuditEntry, len(entries))
	for i, e := range entries {
		response[i] = servers.AuditEntry{
			Id:          e.ID.Bytes(),
			OrderId:     apiUUID(e.OrderID),
			CustomId:    optionalString(e.CustomID),
			Kind:        e.Kind.String(),
			From:        apiStatus(e.From),
			To:          apiStatus(e.To),
			VehicleName: optionalString(e.VehicleName),
			Reason:      optionalString(e.Reason),
			Message:     e.Message,
			OccurredAt:  e.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func apiStatus(s order.Status) *servers.OrderStatus {
	if s == order.Unknown {
		return nil
	}
	status := servers.OrderStatus(s.String())
	return &status
}
