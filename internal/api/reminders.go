package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

func (s *Server) handleListReminders(c *fiber.Ctx) error {
	view, ok := journal.ParseReminderView(c.Query("view"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "view must be all, today or upcoming")
	}
	rs, err := s.store.ListReminders(c.UserContext())
	if err != nil {
		return fmt.Errorf("list reminders: %w", err)
	}
	return c.JSON(journal.FilterReminders(rs, view, s.cfg.Now()))
}

func (s *Server) handleGetReminder(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	r, err := s.store.GetReminder(c.UserContext(), id)
	if err != nil {
		return notFound(err, "Reminder not found")
	}
	return c.JSON(r)
}

func (s *Server) parseReminder(c *fiber.Ctx) (journal.ReminderInput, error) {
	var in journal.ReminderInput
	if err := c.BodyParser(&in); err != nil {
		return in, fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	return in, in.Validate()
}

func (s *Server) handleCreateReminder(c *fiber.Ctx) error {
	in, err := s.parseReminder(c)
	if err != nil {
		return err
	}
	r, err := s.store.CreateReminder(c.UserContext(), in)
	if err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

func (s *Server) handleUpdateReminder(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	in, err := s.parseReminder(c)
	if err != nil {
		return err
	}
	r, err := s.store.UpdateReminder(c.UserContext(), id, in)
	if err != nil {
		return notFound(err, "Reminder not found")
	}
	return c.JSON(r)
}

func (s *Server) handleToggleReminder(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	r, err := s.store.ToggleReminder(c.UserContext(), id)
	if err != nil {
		return notFound(err, "Reminder not found")
	}
	return c.JSON(r)
}

func (s *Server) handleDeleteReminder(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteReminder(c.UserContext(), id); err != nil {
		return notFound(err, "Reminder not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
