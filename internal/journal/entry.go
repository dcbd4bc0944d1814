// Package journal holds the mood journal domain: entries, stickers,
// reminders and display settings, plus the fixed catalogs the app ships with.
package journal

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Entry is one day's mood journal record.
type Entry struct {
	ID       int       `json:"id"`
	Date     string    `json:"date"` // YYYY-MM-DD
	Mood     string    `json:"mood"`
	Content  string    `json:"content"`
	Stickers []Sticker `json:"stickers"`
}

// Sticker is a decorative sticker placed on an entry page.
type Sticker struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	ImageURL string  `json:"imageUrl"`
	PosX     float64 `json:"posX"`
	PosY     float64 `json:"posY"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// EntryInput is the payload for creating or replacing an entry.
type EntryInput struct {
	Date     string    `json:"date"`
	Mood     string    `json:"mood"`
	Content  string    `json:"content"`
	Stickers []Sticker `json:"stickers"`
}

// Normalize trims the date and assigns ids to stickers that arrived without one.
func (in *EntryInput) Normalize() {
	in.Date = strings.TrimSpace(in.Date)
	for i := range in.Stickers {
		if in.Stickers[i].ID == "" {
			in.Stickers[i].ID = uuid.NewString()
		}
	}
}

// Validate checks the input against the mood set and sticker catalog.
func (in EntryInput) Validate() error {
	var details []string
	if _, err := ParseDate(in.Date); err != nil {
		details = append(details, fmt.Sprintf("date: %q is not a YYYY-MM-DD date", in.Date))
	}
	if !IsMoodEmoji(in.Mood) {
		details = append(details, fmt.Sprintf("mood: %q is not one of the supported moods", in.Mood))
	}
	for i, s := range in.Stickers {
		if !IsStickerCategory(s.Type) {
			details = append(details, fmt.Sprintf("stickers[%d].type: unknown category %q", i, s.Type))
		}
		if s.Width < 0 || s.Height < 0 {
			details = append(details, fmt.Sprintf("stickers[%d]: negative size", i))
		}
	}
	if len(details) > 0 {
		return &ValidationError{Message: "Invalid journal entry data", Details: details}
	}
	return nil
}

// ToEntry builds an Entry with the given id from the input.
func (in EntryInput) ToEntry(id int) Entry {
	return Entry{
		ID:       id,
		Date:     in.Date,
		Mood:     in.Mood,
		Content:  in.Content,
		Stickers: CloneStickers(in.Stickers),
	}
}

// CloneStickers returns a copy of s that never aliases the caller's slice.
// A nil or empty list comes back as an empty, non-nil slice.
func CloneStickers(s []Sticker) []Sticker {
	return append([]Sticker{}, s...)
}
