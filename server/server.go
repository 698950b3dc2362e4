// Package server exposes the media listings, file streaming and the size
// report over HTTP.
package server

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"media-server/config"
	"media-server/history"
	"media-server/media"
	"media-server/report"
	"media-server/scan"
)

type Server struct {
	cfg      *config.Config
	listings map[string]media.Listing
	library  *media.Library
	reports  *report.Builder
	history  *history.Store // nil when the archive is disabled
	app      *fiber.App
}

// New wires the HTTP routes. archive may be nil.
func New(cfg *config.Config, archive *history.Store) *Server {
	s := &Server{
		cfg:      cfg,
		listings: media.Listings(cfg.VideoDir, cfg.AudioDir),
		library:  media.NewLibrary(cfg.VideoDir),
		reports:  report.NewBuilder(scan.NewScanner(cfg.ScanWorkers), cfg.DiskUsage, cfg.VideoDir, cfg.AudioDir),
		history:  archive,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "media-server",
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})
	s.routes()
	return s
}

func (s *Server) routes() {
	app := s.app

	app.Use(recover.New())
	if s.cfg.LogRequests {
		app.Use(logger.New())
	}
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/files", s.handleListing("files"))
	api.Get("/images", s.handleListing("images"))
	api.Get("/audio", s.handleListing("audio"))
	api.Get("/reports", s.handleHistory)

	app.Get("/media/:filename", s.handleMedia)
	app.Get("/data_size", compress.New(), s.handleDataSize)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/listing", websocket.New(s.handleWebSocket))
}

// App exposes the fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen() error {
	log.Printf("Server starting on %s", s.cfg.Addr())
	log.Printf("Video/image directory: %s", s.cfg.VideoDir)
	log.Printf("Audio directory: %s", s.cfg.AudioDir)
	return s.app.Listen(s.cfg.Addr())
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// errorHandler turns every error that reaches fiber into a JSON body. Only
// client errors keep their message; anything else is reported generically.
func errorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) && e.Code < fiber.StatusInternalServerError {
		switch e.Code {
		case fiber.StatusNotFound:
			return c.Status(e.Code).JSON(fiber.Map{"error": "Not found"})
		case fiber.StatusMethodNotAllowed:
			return c.Status(e.Code).JSON(fiber.Map{"error": "Method not allowed"})
		default:
			return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
		}
	}

	log.Printf("Error: %s %s: %v", c.Method(), c.OriginalURL(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
