package analytics

import (
	"sort"
	"time"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

// DisplayDateLayout renders dates for charts and tooltips.
const DisplayDateLayout = "Jan 2, 2006"

// TrendPoint is the mood breakdown of one calendar day.
type TrendPoint struct {
	Date          string         `json:"date"`
	DateFormatted string         `json:"dateFormatted"`
	Counts        CategoryCounts `json:"counts"`
}

// Trends groups entries by calendar day and counts categories per day,
// oldest day first. Days without entries are not synthesized; several
// entries on one day are summed. Entries with unparseable dates are skipped.
func Trends(entries []journal.Entry) []TrendPoint {
	byDay := make(map[time.Time]*CategoryCounts)
	var days []time.Time
	for _, e := range entries {
		day, ok := entryDay(e)
		if !ok {
			continue
		}
		cc, seen := byDay[day]
		if !seen {
			cc = &CategoryCounts{}
			byDay[day] = cc
			days = append(days, day)
		}
		cc.add(Classify(e.Mood))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]TrendPoint, 0, len(days))
	for _, d := range days {
		out = append(out, TrendPoint{
			Date:          journal.FormatDate(d),
			DateFormatted: d.Format(DisplayDateLayout),
			Counts:        *byDay[d],
		})
	}
	return out
}
