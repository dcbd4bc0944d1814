package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

func (s *Server) handleListEntries(c *fiber.Ctx) error {
	entries, err := s.store.ListEntries(c.UserContext())
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	return c.JSON(entries)
}

func (s *Server) handleGetEntry(c *fiber.Ctx) error {
	date := c.Params("date")
	if _, err := journal.ParseDate(date); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}
	e, err := s.store.GetEntryByDate(c.UserContext(), date)
	if err != nil {
		return notFound(err, "Journal entry not found")
	}
	return c.JSON(e)
}

// handleSaveEntry creates the entry for a date or replaces the existing one.
func (s *Server) handleSaveEntry(c *fiber.Ctx) error {
	var in journal.EntryInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		return err
	}
	e, created, err := s.store.UpsertEntry(c.UserContext(), in)
	if err != nil {
		return fmt.Errorf("save entry: %w", err)
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(e)
}

func (s *Server) handleDeleteEntry(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteEntry(c.UserContext(), id); err != nil {
		return notFound(err, "Journal entry not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
