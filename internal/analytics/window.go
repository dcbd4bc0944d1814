package analytics

import (
	"sort"
	"time"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

// Range selects how far back the analytics window reaches.
type Range string

const (
	Last7Days  Range = "7days"
	Last30Days Range = "30days"
	Last90Days Range = "90days"
	AllTime    Range = "all"
)

// Ranges lists the selectable windows, narrowest first.
func Ranges() []Range { return []Range{Last7Days, Last30Days, Last90Days, AllTime} }

// ParseRange maps a wire value to a Range. Empty input selects Last7Days.
func ParseRange(s string) (Range, bool) {
	switch r := Range(s); r {
	case "":
		return Last7Days, true
	case Last7Days, Last30Days, Last90Days, AllTime:
		return r, true
	default:
		return "", false
	}
}

// Days is the window length, or 0 for AllTime.
func (r Range) Days() int {
	switch r {
	case Last7Days:
		return 7
	case Last30Days:
		return 30
	case Last90Days:
		return 90
	default:
		return 0
	}
}

// Label describes the window for headings, e.g. "the last 7 days".
func (r Range) Label() string {
	switch r {
	case Last7Days:
		return "the last 7 days"
	case Last30Days:
		return "the last 30 days"
	case Last90Days:
		return "the last 90 days"
	default:
		return "all time"
	}
}

// Next cycles through Ranges.
func (r Range) Next() Range {
	all := Ranges()
	for i, x := range all {
		if x == r {
			return all[(i+1)%len(all)]
		}
	}
	return Last7Days
}

// Cutoff returns the first calendar day inside the window, as midnight UTC.
// ok is false for AllTime.
func (r Range) Cutoff(now time.Time) (cutoff time.Time, ok bool) {
	n := r.Days()
	if n == 0 {
		return time.Time{}, false
	}
	return journal.Civil(now).AddDate(0, 0, -n), true
}

// FilterByRange returns the entries inside r as of now, newest first.
// The cutoff day is included. Entries with an unparseable date are dropped
// from bounded windows and sorted last for AllTime. The input is not modified.
func FilterByRange(entries []journal.Entry, r Range, now time.Time) []journal.Entry {
	cutoff, bounded := r.Cutoff(now)
	out := make([]journal.Entry, 0, len(entries))
	for _, e := range entries {
		if bounded {
			day, ok := entryDay(e)
			if !ok || day.Before(cutoff) {
				continue
			}
		}
		out = append(out, e)
	}
	sortNewestFirst(out)
	return out
}

func sortNewestFirst(entries []journal.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, okI := entryDay(entries[i])
		dj, okJ := entryDay(entries[j])
		if okI != okJ {
			return okI
		}
		return di.After(dj)
	})
}

func entryDay(e journal.Entry) (time.Time, bool) {
	d, err := journal.ParseDate(e.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
