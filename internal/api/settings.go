package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

func (s *Server) handleGetSettings(c *fiber.Ctx) error {
	st, err := s.store.GetSettings(c.UserContext())
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}
	return c.JSON(st)
}

// handleUpdateSettings applies only the fields present in the body.
func (s *Server) handleUpdateSettings(c *fiber.Ctx) error {
	var u journal.SettingsUpdate
	if err := c.BodyParser(&u); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	st, err := s.store.UpdateSettings(c.UserContext(), u)
	if err != nil {
		return err
	}
	return c.JSON(st)
}
