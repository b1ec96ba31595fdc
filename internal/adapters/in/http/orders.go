package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetOrders handles GET /api/v1/orders - retrieves active orders, optionally by status.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var statuses []order.Status
	if params.Status != nil {
		for _, raw := range *params.Status {
			status, err := order.ParseStatus(string(raw))
			if err != nil {
				return badRequest(ctx, "Invalid status filter: "+err.Error())
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewGetActiveOrdersQuery(statuses...)
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	orders, err := s.handlers.ActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:             o.ID.Bytes(),
			CustomId:       o.CustomID,
			CompanyName:    o.CompanyName,
			Cluster:        optionalString(o.Cluster),
			DeliveryDate:   apiDate(o.DeliveryDate),
			TotalPrice:     o.TotalPrice.String(),
			Load:           o.Load,
			VehicleId:      apiUUID(o.VehicleID),
			VehicleName:    optionalString(o.VehicleName),
			Status:         servers.OrderStatus(o.Status.String()),
			DeliveryStatus: servers.DeliveryStatus(o.DeliveryStatus.String()),
			Reason:         optionalString(o.Reason),
			UpdatedAt:      o.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers an order and places it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	items, err := lineItems(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		body.CustomId,
		body.CompanyName,
		derefString(body.Cluster),
		domainDate(body.DeliveryDate),
		items,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	outcome, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, placement(cmd.OrderID(), outcome))
}

// UpdateOrder handles PUT /api/v1/orders/{orderId} - edits an order and rebalances.
func (s *Server) UpdateOrder(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateOrderJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	id, err := domainUUID(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	items, err := lineItems(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderCommand(
		id,
		body.CustomId,
		body.CompanyName,
		derefString(body.Cluster),
		domainDate(body.DeliveryDate),
		items,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := domainUUID(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceDeliveryStatus handles POST /api/v1/orders/{orderId}/delivery-status.
func (s *Server) AdvanceDeliveryStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.AdvanceDeliveryStatusJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	id, err := domainUUID(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	status, err := order.ParseDeliveryStatus(string(body.Status))
	if err != nil {
		return badRequest(ctx, "Invalid delivery status: "+err.Error())
	}

	cmd, err := commands.NewAdvanceDeliveryStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.AdvanceDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := domainUUID(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func lineItems(in []servers.LineItem) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(in))
	for _, raw := range in {
		pricing, err := order.ParsePricingMode(string(raw.Pricing))
		if err != nil {
			return nil, err
		}
		packageQuantity := 0
		if raw.PackageQuantity != nil {
			packageQuantity = *raw.PackageQuantity
		}
		item, err := order.NewLineItem(raw.ProductId, raw.Quantity, pricing, packageQuantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func placement(orderID kernel.UUID, outcome services.Outcome) servers.Placement {
	p := servers.Placement{
		OrderId:    orderID.Bytes(),
		Status:     servers.OrderStatus(outcome.Status.String()),
		Load:       outcome.Measurement.Load,
		TotalPrice: outcome.Measurement.Price.String(),
		Reason:     optionalString(outcome.Reason.String()),
	}
	if outcome.Vehicle != nil {
		id := outcome.Vehicle.ID().Bytes()
		name := outcome.Vehicle.Name()
		p.VehicleId = &id
		p.VehicleName = &name
	}
	return p
}

func domainUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func domainDate(d *openapi_types.Date) *kernel.Date {
	if d == nil {
		return nil
	}
	date := kernel.DateOf(d.Time)
	return &date
}

func apiDate(d *kernel.Date) *openapi_types.Date {
	if d == nil {
		return nil
	}
	return &openapi_types.Date{Time: d.Time()}
}

func apiUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
