package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// APIBasePath prefixes every generated route.
const APIBasePath = "/api/v1"

var (
	registerDocOnce sync.Once
	registerDocErr  error
)

// openAPIDoc serves the embedded OpenAPI document to the swagger UI.
type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

// NewRouter builds the echo instance: health, metrics, swagger UI and the API.
// A nil m leaves out the metrics endpoint and middleware.
func NewRouter(server *Server, m *metrics.Metrics) (*echo.Echo, error) {
	if err := registerDoc(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	if m != nil {
		e.Use(m.Middleware())
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, APIBasePath)
	return e, nil
}

func registerDoc() error {
	registerDocOnce.Do(func() {
		swagger, err := servers.GetSwagger()
		if err != nil {
			registerDocErr = err
			return
		}

		raw, err := json.Marshal(swagger)
		if err != nil {
			registerDocErr = fmt.Errorf("failed to render OpenAPI document: %w", err)
			return
		}
		swag.Register(swag.Name, openAPIDoc{doc: string(raw)})
	})
	return registerDocErr
}
