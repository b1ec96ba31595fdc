// Package servers holds the HTTP contract of the dispatch API described in
// openapi.yaml: the echo server interface, its request wrappers and the route
// registration.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Audit trail of the whole fleet
	// (GET /audit)
	GetAudit(ctx echo.Context, params GetAuditParams) error
	// List active orders
	// (GET /orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// Register an order and place it on the best vehicle
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Delete an order and rebalance
	// (DELETE /orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId OrderId) error
	// Replace the editable fields of an order and rebalance
	// (PUT /orders/{orderId})
	UpdateOrder(ctx echo.Context, orderId OrderId) error
	// Audit trail of one order
	// (GET /orders/{orderId}/audit)
	GetOrderAudit(ctx echo.Context, orderId OrderId, params GetOrderAuditParams) error
	// Complete a delivered order and archive it
	// (POST /orders/{orderId}/complete)
	CompleteOrder(ctx echo.Context, orderId OrderId) error
	// Move an order along the delivery lifecycle
	// (POST /orders/{orderId}/delivery-status)
	AdvanceDeliveryStatus(ctx echo.Context, orderId OrderId) error
	// Recompute the assignment of the whole fleet
	// (POST /rebalance)
	Rebalance(ctx echo.Context) error
	// List the fleet
	// (GET /vehicles)
	GetVehicles(ctx echo.Context) error
	// Register a vehicle
	// (POST /vehicles)
	CreateVehicle(ctx echo.Context) error
	// Change the driver status of a vehicle
	// (POST /vehicles/{vehicleId}/driver-status)
	ChangeDriverStatus(ctx echo.Context, vehicleId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetAudit converts echo context to params.
func (w *ServerInterfaceWrapper) GetAudit(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetAuditParams
	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetAudit(ctx, params)
	return err
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteOrder(ctx, orderId)
	return err
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOrder(ctx, orderId)
	return err
}

// GetOrderAudit converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderAudit(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetOrderAuditParams
	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderAudit(ctx, orderId, params)
	return err
}

// CompleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CompleteOrder(ctx, orderId)
	return err
}

// AdvanceDeliveryStatus converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceDeliveryStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdvanceDeliveryStatus(ctx, orderId)
	return err
}

// Rebalance converts echo context to params.
func (w *ServerInterfaceWrapper) Rebalance(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.Rebalance(ctx)
	return err
}

// GetVehicles converts echo context to params.
func (w *ServerInterfaceWrapper) GetVehicles(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetVehicles(ctx)
	return err
}

// CreateVehicle converts echo context to params.
func (w *ServerInterfaceWrapper) CreateVehicle(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateVehicle(ctx)
	return err
}

// ChangeDriverStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeDriverStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "vehicleId" -------------
	var vehicleId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "vehicleId", ctx.Param("vehicleId"), &vehicleId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter vehicleId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeDriverStatus(ctx, vehicleId)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/audit", wrapper.GetAudit)
	router.GET(baseURL+"/orders", wrapper.GetOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.DELETE(baseURL+"/orders/:orderId", wrapper.DeleteOrder)
	router.PUT(baseURL+"/orders/:orderId", wrapper.UpdateOrder)
	router.GET(baseURL+"/orders/:orderId/audit", wrapper.GetOrderAudit)
	router.POST(baseURL+"/orders/:orderId/complete", wrapper.CompleteOrder)
	router.POST(baseURL+"/orders/:orderId/delivery-status", wrapper.AdvanceDeliveryStatus)
	router.POST(baseURL+"/rebalance", wrapper.Rebalance)
	router.GET(baseURL+"/vehicles", wrapper.GetVehicles)
	router.POST(baseURL+"/vehicles", wrapper.CreateVehicle)
	router.POST(baseURL+"/vehicles/:vehicleId/driver-status", wrapper.ChangeDriverStatus)

}
