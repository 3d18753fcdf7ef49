package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"

	"github.com/CristiGvl/picoFetch/internal/logger"
	"github.com/CristiGvl/picoFetch/internal/platform"
)

// Version is reported by the health endpoint and the server header.
var Version = "dev"

// Server represents the API server
type Server struct {
	app    *fiber.App
	facade *platform.Facade
	units  int
	log    zerolog.Logger
}

// NewServer creates a new API server answering from facade. units is the
// default number of duration units in formatted uptimes.
func NewServer(facade *platform.Facade, units int, log zerolog.Logger) (*Server, error) {
	if err := platform.ValidateSupport(); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "picoFetch",
		AppName:               "picoFetch " + Version,
		DisableStartupMessage: true,
	})

	app.Use(logger.Middleware(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		MaxAge:       86400, // 24 hours
	}))

	server := &Server{
		app:    app,
		facade: facade,
		units:  units,
		log:    log,
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	api.Get("/cpu", s.getCPU)
	api.Get("/memory", s.getMemory)
	api.Get("/disk", s.getDisk)
	api.Get("/uptime", s.getUptime)
	api.Get("/os-release", s.getOSRelease)
	api.Get("/snapshot", s.getSnapshot)

	// Health check
	api.Get("/health", s.healthCheck)
}

// App exposes the fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the API server
func (s *Server) Start(address string) error {
	s.log.Info().Str("address", address).Msg("listening")
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  s.facade.Name(),
		"version":   Version,
		"timestamp": time.Now().Unix(),
	})
}
