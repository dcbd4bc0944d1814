// Package api serves the journal over HTTP with Fiber.
package api

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mattwhite/moodjournal-go/internal/journal"
	"github.com/mattwhite/moodjournal-go/internal/logging"
)

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr string
	// AccessLog receives one line per request. Nil disables access logging.
	AccessLog io.Writer
	// Now is the clock used for "today" and analytics windows.
	Now func() time.Time
}

// Server exposes the Fiber application.
type Server struct {
	app   *fiber.App
	store journal.Store
	cfg   Config
}

// NewServer wires handlers and middleware.
func NewServer(cfg Config, store journal.Store) *Server {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	if cfg.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			Format: "${time} | ${status} | ${latency} | ${method} ${path}\n",
			Output: cfg.AccessLog,
		}))
	}
	app.Use(cors.New())

	srv := &Server{app: app, store: store, cfg: cfg}
	srv.registerRoutes()
	return srv
}

// App exposes the underlying Fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App { return s.app }

const shutdownTimeout = 10 * time.Second

// Run serves HTTP traffic until the context is cancelled or Listen fails.
func (s *Server) Run(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		logging.Info("mood journal API listening", "addr", s.cfg.Addr)
		listenErr <- s.app.Listen(s.cfg.Addr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	return <-listenErr
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api")

	api.Get("/journal", s.handleListEntries)
	api.Get("/journal/:date", s.handleGetEntry)
	api.Post("/journal", s.handleSaveEntry)
	api.Delete("/journal/:id", s.handleDeleteEntry)

	api.Get("/reminders", s.handleListReminders)
	api.Get("/reminders/:id", s.handleGetReminder)
	api.Post("/reminders", s.handleCreateReminder)
	api.Put("/reminders/:id", s.handleUpdateReminder)
	api.Patch("/reminders/:id/toggle", s.handleToggleReminder)
	api.Delete("/reminders/:id", s.handleDeleteReminder)

	api.Get("/settings", s.handleGetSettings)
	api.Put("/settings", s.handleUpdateSettings)

	api.Get("/analytics", s.handleAnalytics)

	api.Get("/moods", s.handleMoods)
	api.Get("/stickers", s.handleStickers)
	api.Get("/playlists", s.handlePlaylists)
}

// errorHandler renders every failure as {"message": ...}. Validation
// failures add the field-level problems under "errors".
func errorHandler(c *fiber.Ctx, err error) error {
	var ve *journal.ValidationError
	var fe *fiber.Error
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ve.Message, "errors": ve.Details})
	case errors.As(err, &fe):
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	case errors.Is(err, journal.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Not found"})
	default:
		logging.Error("request failed", "method", c.Method(), "path", c.Path(), "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
}

func paramID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// notFound converts journal.ErrNotFound into a 404 carrying msg.
func notFound(err error, msg string) error {
	if errors.Is(err, journal.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, msg)
	}
	return err
}
