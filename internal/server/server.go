package server

import (
	"log"

	"lms-presentation-be/internal/bootstrap"
	"lms-presentation-be/internal/config"
	"lms-presentation-be/internal/pkg/serverutils"
	"lms-presentation-be/internal/service"
	"lms-presentation-be/pkg/document"
	"lms-presentation-be/pkg/export"
	"lms-presentation-be/pkg/layout"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

var errorMappings = []serverutils.ErrorMapping{
	{Err: service.ErrPresentationNotFound, Status: fiber.StatusNotFound},
	{Err: service.ErrSessionNotFound, Status: fiber.StatusNotFound},
	{Err: layout.ErrLayoutNotFound, Status: fiber.StatusNotFound},
	{Err: service.ErrReadOnlySession, Status: fiber.StatusForbidden},
	{Err: service.ErrInvalidEdit, Status: fiber.StatusBadRequest},
	{Err: document.ErrMalformedDocument, Status: fiber.StatusBadRequest},
	{Err: export.ErrExportFailure, Status: fiber.StatusInternalServerError},
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, imported documents can be large
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Content-Disposition",
	}))

	// traces all HTTP requests
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(errorMappings...))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.LayoutController.RegisterRoutes(api)
	c.PresentationController.RegisterRoutes(api)
}
