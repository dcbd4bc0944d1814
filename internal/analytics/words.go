package analytics

import (
	"math"
	"slices"
	"strings"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

// WordCountStats summarizes entry lengths in words.
type WordCountStats struct {
	Average int `json:"average"`
	Max     int `json:"max"`
	Min     int `json:"min"`
}

// CountWords counts whitespace-separated words.
func CountWords(content string) int { return len(strings.Fields(content)) }

// WordCounts computes the rounded mean, max and min word count of entries.
// An empty set yields all zeros.
func WordCounts(entries []journal.Entry) WordCountStats {
	if len(entries) == 0 {
		return WordCountStats{}
	}
	total := 0
	stats := WordCountStats{Min: math.MaxInt}
	for _, e := range entries {
		n := CountWords(e.Content)
		total += n
		stats.Max = max(stats.Max, n)
		stats.Min = min(stats.Min, n)
	}
	stats.Average = int(math.Round(float64(total) / float64(len(entries))))
	return stats
}

// WordCountPoint is the length of one entry for the word-count chart.
type WordCountPoint struct {
	Date          string `json:"date"`
	DateFormatted string `json:"dateFormatted"`
	Words         int    `json:"words"`
}

// WordCountTrendSize is how many recent entries WordCountTrend keeps.
const WordCountTrendSize = 10

// WordCountTrend returns word counts of the most recent entries, oldest first.
func WordCountTrend(entries []journal.Entry) []WordCountPoint {
	recent := make([]journal.Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := entryDay(e); ok {
			recent = append(recent, e)
		}
	}
	sortNewestFirst(recent)
	if len(recent) > WordCountTrendSize {
		recent = recent[:WordCountTrendSize]
	}
	out := make([]WordCountPoint, 0, len(recent))
	for _, e := range recent {
		d, _ := entryDay(e)
		out = append(out, WordCountPoint{
			Date:          e.Date,
			DateFormatted: d.Format(DisplayDateLayout),
			Words:         CountWords(e.Content),
		})
	}
	slices.Reverse(out)
	return out
}
