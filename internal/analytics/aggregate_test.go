package analytics_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/mattwhite/moodjournal-go/internal/analytics"
	"github.com/mattwhite/moodjournal-go/internal/journal"
)

func scenario() ([]journal.Entry, time.Time) {
	return []journal.Entry{
		entry("2024-01-01", "😊", "first day"),
		entry("2024-01-02", "😊", "second"),
		entry("2024-01-04", "😢", "a rough one today"),
	}, time.Date(2024, 1, 4, 20, 0, 0, 0, time.UTC)
}

func TestDistributionScenario(t *testing.T) {
	entries, _ := scenario()
	got := analytics.Distribution(entries)
	want := []analytics.DistributionEntry{
		{Category: analytics.Happy, Count: 2},
		{Category: analytics.Sad, Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Distribution = %+v, want %+v", got, want)
	}
}

func TestDistributionTieBreak(t *testing.T) {
	tests := []struct {
		name  string
		moods []string
		want  []analytics.Category
	}{
		{"sad before happy in input", []string{"😢", "😊"}, []analytics.Category{analytics.Happy, analytics.Sad}},
		{"three-way tie", []string{"😴", "🥰", "😡"}, []analytics.Category{analytics.Angry, analytics.Love, analytics.Neutral}},
		{"count wins over order", []string{"😊", "🤔", "😴"}, []analytics.Category{analytics.Neutral, analytics.Happy}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in []journal.Entry
			for _, m := range tt.moods {
				in = append(in, entry("2024-01-01", m, ""))
			}
			got := analytics.Distribution(in)
			if len(got) != len(tt.want) {
				t.Fatalf("Distribution = %+v, want categories %v", got, tt.want)
			}
			for i, c := range tt.want {
				if got[i].Category != c {
					t.Errorf("Distribution[%d] = %q, want %q", i, got[i].Category, c)
				}
			}
		})
	}
}

func TestDistributionSumsToInput(t *testing.T) {
	in := []journal.Entry{
		entry("2024-01-01", "😊", ""),
		entry("2024-01-01", "", ""),
		entry("2024-01-02", "🦄", ""),
		entry("2024-01-03", "😡", ""),
		entry("2024-01-04", "😍", ""),
	}
	total := 0
	for _, d := range analytics.Distribution(in) {
		if d.Count == 0 {
			t.Errorf("zero count for %q", d.Category)
		}
		total += d.Count
	}
	if total != len(in) {
		t.Errorf("distribution total = %d, want %d", total, len(in))
	}
	if got := analytics.Distribution(nil); len(got) != 0 {
		t.Errorf("Distribution(nil) = %+v, want empty", got)
	}
}

func TestTrendsScenario(t *testing.T) {
	entries, _ := scenario()
	got := analytics.Trends(entries)
	want := []analytics.TrendPoint{
		{Date: "2024-01-01", DateFormatted: "Jan 1, 2024", Counts: analytics.CategoryCounts{Happy: 1}},
		{Date: "2024-01-02", DateFormatted: "Jan 2, 2024", Counts: analytics.CategoryCounts{Happy: 1}},
		{Date: "2024-01-04", DateFormatted: "Jan 4, 2024", Counts: analytics.CategoryCounts{Sad: 1}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Trends = %+v, want %+v", got, want)
	}
}

func TestTrendsSumsSameDay(t *testing.T) {
	in := []journal.Entry{
		entry("2024-05-02", "😊", ""),
		entry("2024-05-01", "😢", ""),
		entry("2024-05-01", "😊", ""),
		entry("2024-05-01", "🤔", ""),
		entry("bad", "😊", ""),
	}
	got := analytics.Trends(in)
	if len(got) != 2 {
		t.Fatalf("Trends len = %d, want 2", len(got))
	}
	if got[0].Date != "2024-05-01" || got[0].Counts.Total() != 3 {
		t.Errorf("Trends[0] = %+v, want 3 entries on 2024-05-01", got[0])
	}
	if got[0].Counts.Get(analytics.Neutral) != 1 || got[0].Counts.Get(analytics.Sad) != 1 {
		t.Errorf("Trends[0].Counts = %+v", got[0].Counts)
	}
	if got[1].Counts.Total() != 1 {
		t.Errorf("Trends[1] = %+v, want 1 entry", got[1])
	}
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		now   time.Time
		want  analytics.StreakResult
	}{
		{"empty", nil, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), analytics.StreakResult{}},
		{"gap breaks current", []string{"2024-01-01", "2024-01-02", "2024-01-04"}, time.Date(2024, 1, 4, 9, 0, 0, 0, time.UTC), analytics.StreakResult{Current: 1, Longest: 2}},
		{"yesterday keeps streak alive", []string{"2024-01-01", "2024-01-02", "2024-01-03"}, time.Date(2024, 1, 4, 23, 59, 0, 0, time.UTC), analytics.StreakResult{Current: 3, Longest: 3}},
		{"two days ago is stale", []string{"2024-01-01", "2024-01-02"}, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), analytics.StreakResult{Current: 0, Longest: 2}},
		{"lone old entry", []string{"2023-06-01"}, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), analytics.StreakResult{Current: 0, Longest: 1}},
		{"duplicates count once", []string{"2024-01-03", "2024-01-03", "2024-01-04"}, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), analytics.StreakResult{Current: 2, Longest: 2}},
		{"year boundary", []string{"2023-12-30", "2023-12-31", "2024-01-01"}, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), analytics.StreakResult{Current: 3, Longest: 3}},
		{"leap day", []string{"2024-02-28", "2024-02-29", "2024-03-01"}, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), analytics.StreakResult{Current: 3, Longest: 3}},
		{"month boundary without leap day", []string{"2023-02-28", "2023-03-01"}, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), analytics.StreakResult{Current: 2, Longest: 2}},
		{"older run longer", []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-09", "2024-01-10"}, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), analytics.StreakResult{Current: 2, Longest: 4}},
		{"unparseable ignored", []string{"nope", "2024-01-04"}, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), analytics.StreakResult{Current: 1, Longest: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in []journal.Entry
			for _, d := range tt.dates {
				in = append(in, entry(d, "😊", ""))
			}
			got := analytics.Streaks(in, tt.now)
			if got != tt.want {
				t.Errorf("Streaks(%v) = %+v, want %+v", tt.dates, got, tt.want)
			}
			if got.Longest < got.Current {
				t.Errorf("longest %d < current %d", got.Longest, got.Current)
			}
		})
	}
}

func TestStreaksAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	in := []journal.Entry{
		entry("2024-03-09", "😊", ""),
		entry("2024-03-10", "😊", ""),
		entry("2024-03-11", "😊", ""),
	}
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"late evening local, next day in UTC", time.Date(2024, 3, 11, 23, 30, 0, 0, ny), 3},
		{"next morning", time.Date(2024, 3, 12, 0, 15, 0, 0, ny), 3},
		{"two days later", time.Date(2024, 3, 13, 0, 15, 0, 0, ny), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analytics.Streaks(in, tt.now)
			if got.Current != tt.want {
				t.Errorf("Streaks current = %d, want %d", got.Current, tt.want)
			}
			if got.Longest != 3 {
				t.Errorf("Streaks longest = %d, want 3", got.Longest)
			}
		})
	}
}

func TestWordCounts(t *testing.T) {
	tests := []struct {
		name     string
		contents []string
		want     analytics.WordCountStats
	}{
		{"empty", nil, analytics.WordCountStats{}},
		{"single entry", []string{"I feel okay about today"}, analytics.WordCountStats{Average: 5, Max: 5, Min: 5}},
		{"whitespace runs", []string{"  I\tfeel\n okay   today "}, analytics.WordCountStats{Average: 4, Max: 4, Min: 4}},
		{"blank content", []string{"", "one two three"}, analytics.WordCountStats{Average: 2, Max: 3, Min: 0}},
		{"rounds half up", []string{"a", "a b"}, analytics.WordCountStats{Average: 2, Max: 2, Min: 1}},
		{"rounds down", []string{"a", "a", "a b"}, analytics.WordCountStats{Average: 1, Max: 2, Min: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in []journal.Entry
			for _, c := range tt.contents {
				in = append(in, entry("2024-01-01", "😊", c))
			}
			if got := analytics.WordCounts(in); got != tt.want {
				t.Errorf("WordCounts(%q) = %+v, want %+v", tt.contents, got, tt.want)
			}
		})
	}
}

func TestWordCountTrend(t *testing.T) {
	var in []journal.Entry
	for d := 1; d <= 12; d++ {
		date := time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC).Format(journal.DateLayout)
		content := ""
		for i := 0; i < d; i++ {
			content += "w "
		}
		in = append(in, entry(date, "😊", content))
	}
	got := analytics.WordCountTrend(in)
	if len(got) != analytics.WordCountTrendSize {
		t.Fatalf("WordCountTrend len = %d, want %d", len(got), analytics.WordCountTrendSize)
	}
	if got[0].Date != "2024-01-03" || got[0].Words != 3 {
		t.Errorf("first point = %+v, want 2024-01-03 with 3 words", got[0])
	}
	last := got[len(got)-1]
	if last.Date != "2024-01-12" || last.Words != 12 || last.DateFormatted != "Jan 12, 2024" {
		t.Errorf("last point = %+v", last)
	}
}

func TestWordCountTrendOrdersByParsedDate(t *testing.T) {
	in := []journal.Entry{
		entry("2024-01-09", "😊", "one"),
		entry(" 2024-01-10 ", "😊", "one two"),
		entry("2024-01-08", "😊", "one two three"),
	}
	got := analytics.WordCountTrend(in)
	if len(got) != 3 {
		t.Fatalf("WordCountTrend len = %d, want 3", len(got))
	}
	wantWords := []int{3, 1, 2}
	for i, w := range wantWords {
		if got[i].Words != w {
			t.Errorf("point %d = %+v, want %d words", i, got[i], w)
		}
	}
	if got[2].DateFormatted != "Jan 10, 2024" {
		t.Errorf("newest point = %+v", got[2])
	}
}

func TestEmojiUsage(t *testing.T) {
	in := []journal.Entry{
		entry("2024-01-01", "😢", ""),
		entry("2024-01-02", "😊", ""),
		entry("2024-01-03", "😊", ""),
		entry("2024-01-04", "😌", ""),
	}
	got := analytics.EmojiUsage(in)
	if len(got) != 3 || got[0] != (analytics.EmojiCount{Emoji: "😊", Count: 2}) {
		t.Fatalf("EmojiUsage = %+v", got)
	}
	if got[1].Emoji > got[2].Emoji {
		t.Errorf("ties not ordered by emoji: %+v", got[1:])
	}
}

func TestComputeSeparatesHistoryAndWindow(t *testing.T) {
	history := []journal.Entry{
		entry("2024-02-01", "😢", "long ago"),
		entry("2024-02-28", "😊", "one two three"),
		entry("2024-02-29", "😊", "one"),
		entry("2024-03-01", "😡", "one two"),
	}
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rep := analytics.Compute(history, analytics.Last7Days, now)

	if rep.TotalEntries != 4 || rep.FilteredEntries != 3 {
		t.Errorf("total/filtered = %d/%d, want 4/3", rep.TotalEntries, rep.FilteredEntries)
	}
	if rep.RangeLabel != "the last 7 days" {
		t.Errorf("RangeLabel = %q", rep.RangeLabel)
	}
	if rep.Streaks != (analytics.StreakResult{Current: 3, Longest: 3}) {
		t.Errorf("Streaks = %+v", rep.Streaks)
	}
	if rep.WordCounts != (analytics.WordCountStats{Average: 2, Max: 3, Min: 1}) {
		t.Errorf("WordCounts = %+v", rep.WordCounts)
	}
	if len(rep.Trends) != 3 {
		t.Errorf("Trends len = %d, want 3", len(rep.Trends))
	}
	if rep.PrimaryMood == nil || rep.PrimaryMood.Category != analytics.Happy || rep.PrimaryMood.Share != 67 {
		t.Errorf("PrimaryMood = %+v, want happy at 67%%", rep.PrimaryMood)
	}
}

func TestComputeEmpty(t *testing.T) {
	rep := analytics.Compute(nil, analytics.AllTime, time.Now())
	if rep.PrimaryMood != nil {
		t.Errorf("PrimaryMood = %+v, want nil", rep.PrimaryMood)
	}
	if rep.Streaks != (analytics.StreakResult{}) || rep.WordCounts != (analytics.WordCountStats{}) {
		t.Errorf("empty report = %+v", rep)
	}
	if len(rep.Distribution) != 0 || len(rep.Trends) != 0 {
		t.Errorf("empty report has data: %+v", rep)
	}
}

func TestComputeIdempotent(t *testing.T) {
	entries, now := scenario()
	a := analytics.Compute(entries, analytics.AllTime, now)
	b := analytics.Compute(entries, analytics.AllTime, now)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Compute not idempotent:\n%+v\n%+v", a, b)
	}
}
