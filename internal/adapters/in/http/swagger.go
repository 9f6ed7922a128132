package http

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerSwagger sync.Once

// swaggerDoc serves the OpenAPI document to swag.
type swaggerDoc struct {
	json []byte
}

func (d swaggerDoc) ReadDoc() string {
	return string(d.json)
}

// RegisterSwagger serves the Swagger UI under /swagger/ and the raw document
// under /openapi.json.
func RegisterSwagger(e *echo.Echo, doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: raw})
	})

	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, raw)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
