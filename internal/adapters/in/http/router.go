package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// APIPrefix is the path prefix of every order operation.
const APIPrefix = "/api/v1"

// Observer instruments the router.
type Observer interface {
	Middleware() echo.MiddlewareFunc
	Handler() http.Handler
}

// NewRouter builds the echo instance serving the order API under APIPrefix,
// validated against doc, plus /health, /metrics and the Swagger UI.
func NewRouter(server ServerInterface, doc *openapi3.T, observer Observer, logger *log.Entry) (*echo.Echo, error) {
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = RegisterSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(observer.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(observer.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(APIPrefix, validator)
	RegisterHandlersWithBaseURL(api, server, "")

	return e, nil
}

func requestLogger(logger *log.Entry) echo.MiddlewareFunc {
	access := logger.WithField("component", "http_access")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			entry := access.WithFields(log.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request failed")
				return nil
			}
			entry.Debug("request served")
			return nil
		},
	})
}
