// Package http exposes the depot over a JSON API served by echo.
package http

import (
	"errors"
	"net/http"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// Server implements ServerInterface on the application use cases.
type Server struct {
	// Command handlers
	addVehicleHandler        commands.AddVehicleCommandHandler
	addDriverHandler         commands.AddDriverCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	assignVehicleHandler     commands.AssignVehicleCommandHandler
	assignOrderHandler       commands.AssignOrderCommandHandler
	performDeliveriesHandler commands.PerformDeliveriesCommandHandler
	dispatchHandler          commands.DispatchPendingOrdersCommandHandler

	// Query handlers
	availableVehiclesHandler queries.GetAvailableVehiclesQueryHandler
	driversHandler           queries.GetDriversQueryHandler
	pendingOrdersHandler     queries.GetPendingOrdersQueryHandler
	depotStateHandler        queries.DescribeDepotStateQueryHandler
}

// Handlers groups the use cases the server needs.
type Handlers struct {
	AddVehicle        commands.AddVehicleCommandHandler
	AddDriver         commands.AddDriverCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	AssignVehicle     commands.AssignVehicleCommandHandler
	AssignOrder       commands.AssignOrderCommandHandler
	PerformDeliveries commands.PerformDeliveriesCommandHandler
	Dispatch          commands.DispatchPendingOrdersCommandHandler

	AvailableVehicles queries.GetAvailableVehiclesQueryHandler
	Drivers           queries.GetDriversQueryHandler
	PendingOrders     queries.GetPendingOrdersQueryHandler
	DepotState        queries.DescribeDepotStateQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		addVehicleHandler:        h.AddVehicle,
		addDriverHandler:         h.AddDriver,
		createOrderHandler:       h.CreateOrder,
		assignVehicleHandler:     h.AssignVehicle,
		assignOrderHandler:       h.AssignOrder,
		performDeliveriesHandler: h.PerformDeliveries,
		dispatchHandler:          h.Dispatch,
		availableVehiclesHandler: h.AvailableVehicles,
		driversHandler:           h.Drivers,
		pendingOrdersHandler:     h.PendingOrders,
		depotStateHandler:        h.DepotState,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetAvailableVehicles handles GET /api/v1/vehicles.
func (s *Server) GetAvailableVehicles(ctx echo.Context) error {
	vehicles, err := s.availableVehiclesHandler.Handle(ctx.Request().Context(), queries.NewGetAvailableVehiclesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = toVehicle(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddVehicle handles POST /api/v1/vehicles.
func (s *Server) AddVehicle(ctx echo.Context) error {
	var body NewVehicle
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := vehicle.ParseKind(body.Kind)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	measure := body.CapacityTonnes
	if kind == vehicle.KindMotorcycle {
		measure = body.MaxSpeedKmh
	}
	if measure == nil {
		return badRequest(ctx, "capacityTonnes is required for a truck, maxSpeedKmh for a motorcycle")
	}

	cmd, err := commands.NewAddVehicleCommand(kind, body.Brand, body.Model, body.Registration, *measure)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.VehicleID().String()})
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.driversHandler.Handle(ctx.Request().Context(), queries.NewGetDriversQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = toDriver(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddDriver handles POST /api/v1/drivers.
func (s *Server) AddDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddDriverCommand(body.Name)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.DriverID().String()})
}

// AddPendingOrder handles POST /api/v1/orders.
func (s *Server) AddPendingOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(body.ID, body.Destination, body.WeightKg)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.OrderID()})
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	orders, err := s.pendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// AssignVehicle handles POST /api/v1/drivers/{driverId}/vehicle.
func (s *Server) AssignVehicle(ctx echo.Context, driverID kernel.UUID) error {
	var body AssignVehicle
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleID, err := kernel.UUIDFrom(body.VehicleID)
	if err != nil {
		return badRequest(ctx, "vehicleId: "+err.Error())
	}

	cmd, err := commands.NewAssignVehicleCommand(driverID, vehicleID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOrder handles POST /api/v1/drivers/{driverId}/orders.
func (s *Server) AssignOrder(ctx echo.Context, driverID kernel.UUID) error {
	var body AssignOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignOrderCommand(driverID, body.OrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PerformDeliveries handles POST /api/v1/drivers/{driverId}/deliveries.
func (s *Server) PerformDeliveries(ctx echo.Context, driverID kernel.UUID) error {
	cmd, err := commands.NewPerformDeliveriesCommand(driverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	report, err := s.performDeliveriesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryReport(report))
}

// DispatchPendingOrders handles POST /api/v1/dispatch.
func (s *Server) DispatchPendingOrders(ctx echo.Context) error {
	dispatched, err := s.dispatchHandler.Handle(ctx.Request().Context(), commands.NewDispatchPendingOrdersCommand())
	if err != nil && !errors.Is(err, commands.ErrNoPendingOrders) {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DispatchResult{Dispatched: dispatched})
}

// DescribeDepotState handles GET /api/v1/depot/state.
func (s *Server) DescribeDepotState(ctx echo.Context) error {
	state, err := s.depotStateHandler.Handle(ctx.Request().Context(), queries.NewDescribeDepotStateQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.String(http.StatusOK, state)
}
