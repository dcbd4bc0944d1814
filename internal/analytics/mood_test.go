package analytics_test

import (
	"testing"

	"github.com/mattwhite/moodjournal-go/internal/analytics"
	"github.com/mattwhite/moodjournal-go/internal/journal"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		mood string
		want analytics.Category
	}{
		{"😊", analytics.Happy},
		{"😌", analytics.Happy},
		{"😎", analytics.Happy},
		{"😍", analytics.Love},
		{"🥰", analytics.Love},
		{"😢", analytics.Sad},
		{"😞", analytics.Sad},
		{"😡", analytics.Angry},
		{"😴", analytics.Neutral},
		{"🤔", analytics.Neutral},
		{"", analytics.Neutral},
		{"🦄", analytics.Neutral},
		{"happy", analytics.Neutral},
	}
	for _, tt := range tests {
		if got := analytics.Classify(tt.mood); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.mood, got, tt.want)
		}
	}
}

func TestEveryCatalogMoodHasACategory(t *testing.T) {
	counts := make(map[analytics.Category]int)
	for _, m := range journal.MoodEmojis() {
		counts[analytics.Classify(m)]++
	}
	for _, c := range analytics.Categories() {
		if counts[c] == 0 {
			t.Errorf("no catalog mood classifies as %q", c)
		}
	}
}

func TestCategoriesOrder(t *testing.T) {
	want := []analytics.Category{analytics.Happy, analytics.Sad, analytics.Angry, analytics.Love, analytics.Neutral}
	got := analytics.Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	got[0] = "mutated"
	if analytics.Categories()[0] != analytics.Happy {
		t.Error("Categories() exposed package state")
	}
}

func TestRepresentativeEmoji(t *testing.T) {
	want := map[analytics.Category]string{
		analytics.Happy:   "😊",
		analytics.Sad:     "😢",
		analytics.Angry:   "😡",
		analytics.Love:    "😍",
		analytics.Neutral: "😌",
	}
	for _, c := range analytics.Categories() {
		if got := analytics.RepresentativeEmoji(c); got != want[c] {
			t.Errorf("RepresentativeEmoji(%q) = %q, want %q", c, got, want[c])
		}
		if c.Label() == "" {
			t.Errorf("%q has no label", c)
		}
	}
	// The neutral legend emoji is not itself classified as neutral.
	if got := analytics.Classify(analytics.RepresentativeEmoji(analytics.Neutral)); got != analytics.Happy {
		t.Errorf("Classify(neutral legend) = %q, want %q", got, analytics.Happy)
	}
}
