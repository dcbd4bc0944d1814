package analytics

import (
	"math"
	"time"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

// PrimaryMood is the most frequent category in a window.
type PrimaryMood struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Emoji    string   `json:"emoji"`
	Share    int      `json:"share"` // percent of the window, rounded
}

// Report bundles every derived view for one analytics page.
type Report struct {
	Range           Range               `json:"range"`
	RangeLabel      string              `json:"rangeLabel"`
	TotalEntries    int                 `json:"totalEntries"`
	FilteredEntries int                 `json:"filteredEntries"`
	PrimaryMood     *PrimaryMood        `json:"primaryMood"`
	Distribution    []DistributionEntry `json:"distribution"`
	Trends          []TrendPoint        `json:"trends"`
	EmojiUsage      []EmojiCount        `json:"emojiUsage"`
	Streaks         StreakResult        `json:"streaks"`
	WordCounts      WordCountStats      `json:"wordCounts"`
	WordCountTrend  []WordCountPoint    `json:"wordCountTrend"`
}

// Compute builds a Report. history is the complete entry list; the window
// is derived from it here so streaks see the full history while every
// other view sees only the window.
func Compute(history []journal.Entry, r Range, now time.Time) Report {
	window := FilterByRange(history, r, now)
	dist := Distribution(window)
	return Report{
		Range:           r,
		RangeLabel:      r.Label(),
		TotalEntries:    len(history),
		FilteredEntries: len(window),
		PrimaryMood:     primaryMood(dist, len(window)),
		Distribution:    dist,
		Trends:          Trends(window),
		EmojiUsage:      EmojiUsage(window),
		Streaks:         Streaks(history, now),
		WordCounts:      WordCounts(window),
		WordCountTrend:  WordCountTrend(window),
	}
}

func primaryMood(dist []DistributionEntry, n int) *PrimaryMood {
	if len(dist) == 0 || n == 0 {
		return nil
	}
	top := dist[0]
	return &PrimaryMood{
		Category: top.Category,
		Label:    top.Category.Label(),
		Emoji:    RepresentativeEmoji(top.Category),
		Share:    int(math.Round(float64(top.Count) / float64(n) * 100)),
	}
}
