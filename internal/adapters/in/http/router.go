package http

import (
	"fmt"
	"sync"
	"time"

	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/ratelimit"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const (
	// DefaultRateLimit and DefaultRateWindow bound public API calls per client.
	DefaultRateLimit  = 60
	DefaultRateWindow = time.Minute

	DefaultDashboardRate  = 5.0
	DefaultDashboardBurst = 20

	bodyLimit = "1M"
)

// RouterConfig holds the HTTP edge settings.
type RouterConfig struct {
	AllowedOrigins []string
	Auth           AuthConfig

	RateLimit  int
	RateWindow time.Duration

	DashboardRate  float64
	DashboardBurst int
}

func (c RouterConfig) withDefaults() RouterConfig {
	if c.RateLimit <= 0 {
		c.RateLimit = DefaultRateLimit
	}
	if c.RateWindow <= 0 {
		c.RateWindow = DefaultRateWindow
	}
	if c.DashboardRate <= 0 {
		c.DashboardRate = DefaultDashboardRate
	}
	if c.DashboardBurst <= 0 {
		c.DashboardBurst = DefaultDashboardBurst
	}
	return c
}

// NewRouter builds the echo instance serving the public API, the owner
// dashboard and the API documentation under /swagger.
func NewRouter(server *Server, cfg RouterConfig, logger zerolog.Logger) (*echo.Echo, error) {
	cfg = cfg.withDefaults()

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load api document: %w", err)
	}
	validator, err := requestValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("build request validator: %w", err)
	}
	if err := registerDocs(doc); err != nil {
		return nil, fmt.Errorf("register api docs: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(corsMiddleware(cfg.AllowedOrigins))
	e.Use(fixedWindowMiddleware(ratelimit.NewFixedWindow(cfg.RateLimit, cfg.RateWindow), cfg.RateWindow, server.now))
	e.Use(dashboardRateLimiter(cfg.DashboardRate, cfg.DashboardBurst))
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(authMiddleware(cfg.Auth))
	e.Use(validator)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	servers.RegisterHandlers(e, server)

	return e, nil
}

var (
	docsOnce sync.Once
	docsErr  error
)

// apiDocs serves the API document to echo-swagger through the swag registry.
type apiDocs struct {
	json string
}

func (d apiDocs) ReadDoc() string {
	return d.json
}

// registerDocs publishes doc under swag's default instance name. The
// registry is process-wide and rejects duplicates, so only the first call
// registers.
func registerDocs(doc *openapi3.T) error {
	docsOnce.Do(func() {
		raw, err := doc.MarshalJSON()
		if err != nil {
			docsErr = err
			return
		}
		swag.Register(swag.Name, apiDocs{json: string(raw)})
	})
	return docsErr
}
