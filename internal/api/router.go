package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/thejurists/site-api/internal/api/docs"
	"github.com/thejurists/site-api/internal/api/handler"
	"github.com/thejurists/site-api/internal/api/middleware"
	"github.com/thejurists/site-api/internal/core/ports"
)

// Services are the application services exposed over HTTP.
type Services struct {
	Access   ports.AccessService
	Profiles ports.ProfileService
	Leads    ports.LeadService
	Content  ports.ContentService
}

// Options configure the router's ambient concerns.
type Options struct {
	JWTSecret string
	Log       zerolog.Logger
	// Ready lists the dependencies checked by /health/ready.
	Ready map[string]handler.Pinger
	// Registry receives the request metrics. Defaults to the global registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)
	// X-Forwarded-For is honoured only when the peer is a proxy on a loopback,
	// link-local or private network. c.RealIP keys the lead throttle.
	e.IPExtractor = echo.ExtractIPFromXFFHeader()

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "jurists",
		Registerer: registerer,
	}))

	// --- Health probes, metrics and docs (no identity required) ---
	health := handler.NewHealthHandler(opts.Ready)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API ---
	v1 := e.Group("/v1", middleware.Identity(opts.JWTSecret))
	authenticated := middleware.RequireCaller()

	access := handler.NewAccessHandler(svc.Access)
	v1.GET("/access/initialized", access.Initialized)
	v1.POST("/access/initialize", access.Initialize, authenticated)
	v1.GET("/access/admin", access.IsAdmin)
	v1.GET("/access/role", access.Role)
	v1.PUT("/access/roles/:identity", access.AssignRole)

	profiles := handler.NewProfileHandler(svc.Profiles)
	v1.GET("/profile", profiles.GetMine)
	v1.PUT("/profile", profiles.SaveMine, authenticated)
	v1.GET("/profiles/:identity", profiles.Get)

	leads := handler.NewLeadHandler(svc.Leads)
	v1.POST("/contact-submissions", leads.Create)
	v1.GET("/contact-submissions", leads.List)
	v1.PATCH("/contact-submissions/:id/status", leads.UpdateStatus)

	content := handler.NewContentHandler(svc.Content)
	v1.GET("/blog-articles", content.ListBlog)
	v1.GET("/blog-articles/:id", content.GetBlog)
	v1.PUT("/blog-articles", content.UpsertBlog)
	v1.GET("/services", content.ListServices)
	v1.GET("/trending-topics", content.ListTopics)
	v1.POST("/trending-topics", content.CreateTopic)
	v1.POST("/trending-topics/:id/posted", content.MarkPosted)
	v1.GET("/legal-listings", content.ListListings)
	v1.POST("/legal-listings", content.AddListing)
	v1.GET("/sitemap", content.Sitemap)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("caller", middleware.Caller(c).String()).
				Msg("request")
			return nil
		},
	})
}
