package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetVehicles handles GET /api/v1/vehicles - retrieves the fleet.
func (s *Server) GetVehicles(ctx echo.Context) error {
	fleet, err := s.handlers.Fleet.Handle(ctx.Request().Context(), queries.NewGetFleetQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Vehicle, len(fleet))
	for i, v := range fleet {
		response[i] = servers.Vehicle{
			Id:       v.ID.Bytes(),
			Name:     v.Name,
			Capacity: v.Capacity,
			Dimensions: servers.Dimensions{
				Length: v.Dimensions.Length(),
				Width:  v.Dimensions.Width(),
				Height: v.Dimensions.Height(),
			},
			Driver:         optionalString(v.Driver),
			DriverStatus:   servers.DriverStatus(v.DriverStatus.String()),
			AssignedOrders: v.AssignedOrders,
			CurrentLoad:    v.CurrentLoad,
			MaxDateLoad:    v.MaxDateLoad,
			Utilization:    v.Utilization(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateVehicle handles POST /api/v1/vehicles - registers a vehicle.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var body servers.CreateVehicleJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	dimensions, err := kernel.NewDimensions(body.Dimensions.Length, body.Dimensions.Width, body.Dimensions.Height)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}

	cmd, err := commands.NewCreateVehicleCommand(body.Name, body.Capacity, dimensions, derefString(body.Driver))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle data: "+err.Error())
	}

	if err = s.handlers.CreateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ChangeDriverStatus handles POST /api/v1/vehicles/{vehicleId}/driver-status.
func (s *Server) ChangeDriverStatus(ctx echo.Context, vehicleID openapi_types.UUID) error {
	var body servers.ChangeDriverStatusJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	id, err := domainUUID(vehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	status, err := vehicle.ParseDriverStatus(string(body.Status))
	if err != nil {
		return badRequest(ctx, "Invalid driver status: "+err.Error())
	}

	cmd, err := commands.NewChangeDriverStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.ChangeDriverStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
