package http

import (
	"errors"
	"net/http"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/depot"
	"depot/internal/core/domain/model/driver"
	"depot/internal/core/domain/model/vehicle"
	"depot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps application errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, depot.ErrDriverNotRegistered),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, depot.ErrVehicleNotAvailable),
		errors.Is(err, depot.ErrOrderNotPending),
		errors.Is(err, depot.ErrDriverHasNoVehicle),
		errors.Is(err, driver.ErrVehicleAlreadyAssigned),
		errors.Is(err, depot.ErrDriverAlreadyRegistered),
		errors.Is(err, depot.ErrVehicleAlreadyTracked),
		errors.Is(err, depot.ErrOrderAlreadyTracked),
		errors.Is(err, depot.ErrOrderAlreadyDelivered):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, vehicle.ErrUnknownKind),
		errors.Is(err, commands.ErrVehicleKindIsInvalid),
		errors.Is(err, commands.ErrOrderIDIsRequired),
		errors.Is(err, commands.ErrDestinationIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
