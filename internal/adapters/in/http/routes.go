package http

import (
	"net/http"

	"depot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	GetHealth(ctx echo.Context) error
	GetAvailableVehicles(ctx echo.Context) error
	AddVehicle(ctx echo.Context) error
	GetDrivers(ctx echo.Context) error
	AddDriver(ctx echo.Context) error
	AddPendingOrder(ctx echo.Context) error
	GetPendingOrders(ctx echo.Context) error
	AssignVehicle(ctx echo.Context, driverID kernel.UUID) error
	AssignOrder(ctx echo.Context, driverID kernel.UUID) error
	PerformDeliveries(ctx echo.Context, driverID kernel.UUID) error
	DispatchPendingOrders(ctx echo.Context) error
	DescribeDepotState(ctx echo.Context) error
}

// RegisterHandlers adds every route of openapi.yaml to router.
func RegisterHandlers(router *echo.Echo, si ServerInterface) {
	router.GET("/health", si.GetHealth)

	api := router.Group("/api/v1")
	api.GET("/vehicles", si.GetAvailableVehicles)
	api.POST("/vehicles", si.AddVehicle)
	api.GET("/drivers", si.GetDrivers)
	api.POST("/drivers", si.AddDriver)
	api.POST("/orders", si.AddPendingOrder)
	api.GET("/orders/pending", si.GetPendingOrders)
	api.POST("/drivers/:driverId/vehicle", withDriverID(si.AssignVehicle))
	api.POST("/drivers/:driverId/orders", withDriverID(si.AssignOrder))
	api.POST("/drivers/:driverId/deliveries", withDriverID(si.PerformDeliveries))
	api.POST("/dispatch", si.DispatchPendingOrders)
	api.GET("/depot/state", si.DescribeDepotState)
}

// withDriverID binds the driverId path parameter before calling next.
func withDriverID(next func(ctx echo.Context, driverID kernel.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var raw uuid.UUID
		err := runtime.BindStyledParameterWithOptions("simple", "driverId", ctx.Param("driverId"), &raw,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid format for parameter driverId: " + err.Error(),
			})
		}

		driverID, err := kernel.UUIDFrom(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "driverId: " + err.Error(),
			})
		}

		return next(ctx, driverID)
	}
}
