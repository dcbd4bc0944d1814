package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mattwhite/moodjournal-go/internal/analytics"
	"github.com/mattwhite/moodjournal-go/internal/journal"
)

func (s *Server) handleAnalytics(c *fiber.Ctx) error {
	r, ok := analytics.ParseRange(c.Query("range"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "range must be 7days, 30days, 90days or all")
	}
	entries, err := s.store.ListEntries(c.UserContext())
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	return c.JSON(analytics.Compute(entries, r, s.cfg.Now()))
}

type moodInfo struct {
	Emoji    string             `json:"emoji"`
	Category analytics.Category `json:"category"`
	Label    string             `json:"label"`
}

func (s *Server) handleMoods(c *fiber.Ctx) error {
	emojis := journal.MoodEmojis()
	out := make([]moodInfo, 0, len(emojis))
	for _, e := range emojis {
		cat := analytics.Classify(e)
		out = append(out, moodInfo{Emoji: e, Category: cat, Label: cat.Label()})
	}
	return c.JSON(out)
}

func (s *Server) handleStickers(c *fiber.Ctx) error {
	defs, ok := journal.Stickers(c.Query("category"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown sticker category")
	}
	return c.JSON(fiber.Map{
		"categories": journal.StickerCategories(),
		"stickers":   defs,
	})
}

// handlePlaylists falls back to the default list for unknown moods.
func (s *Server) handlePlaylists(c *fiber.Ctx) error {
	return c.JSON(journal.PlaylistsFor(c.Query("mood")))
}
