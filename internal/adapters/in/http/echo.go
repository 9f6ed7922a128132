package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

// NewEcho builds the echo instance serving server, with validation, logging
// and the Swagger UI wired in.
func NewEcho(server ServerInterface, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(validator)

	if err = RegisterSwagger(e, doc); err != nil {
		return nil, err
	}
	RegisterHandlers(e, server)

	return e, nil
}
