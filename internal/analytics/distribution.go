package analytics

import (
	"sort"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

// DistributionEntry is one bar of the mood histogram.
type DistributionEntry struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// Distribution counts entries per category, drops empty categories and
// orders by count descending, ties in category enumeration order.
func Distribution(entries []journal.Entry) []DistributionEntry {
	var counts CategoryCounts
	for _, e := range entries {
		counts.add(Classify(e.Mood))
	}
	out := make([]DistributionEntry, 0, len(categories))
	for _, c := range categories {
		if n := counts.Get(c); n > 0 {
			out = append(out, DistributionEntry{Category: c, Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category.order() < out[j].Category.order()
	})
	return out
}

// EmojiCount is how often one raw mood emoji was used.
type EmojiCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// EmojiUsage ranks raw mood emojis by use, ties by emoji string.
func EmojiUsage(entries []journal.Entry) []EmojiCount {
	usage := make(map[string]int)
	for _, e := range entries {
		usage[e.Mood]++
	}
	out := make([]EmojiCount, 0, len(usage))
	for emoji, n := range usage {
		out = append(out, EmojiCount{Emoji: emoji, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Emoji < out[j].Emoji
	})
	return out
}

// CategoryCounts holds a count for every category, zero-filled.
type CategoryCounts struct {
	Happy   int `json:"happy"`
	Sad     int `json:"sad"`
	Angry   int `json:"angry"`
	Love    int `json:"love"`
	Neutral int `json:"neutral"`
}

// Get returns the count for c.
func (cc CategoryCounts) Get(c Category) int {
	switch c {
	case Happy:
		return cc.Happy
	case Sad:
		return cc.Sad
	case Angry:
		return cc.Angry
	case Love:
		return cc.Love
	default:
		return cc.Neutral
	}
}

// Total sums all categories.
func (cc CategoryCounts) Total() int {
	return cc.Happy + cc.Sad + cc.Angry + cc.Love + cc.Neutral
}

func (cc *CategoryCounts) add(c Category) {
	switch c {
	case Happy:
		cc.Happy++
	case Sad:
		cc.Sad++
	case Angry:
		cc.Angry++
	case Love:
		cc.Love++
	default:
		cc.Neutral++
	}
}
