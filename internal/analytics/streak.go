package analytics

import (
	"sort"
	"time"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

// StreakResult holds journaling streaks in days.
type StreakResult struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Streaks measures consecutive-day journaling over the full history; pass
// the unfiltered entries, never a windowed view.
//
// The current streak is alive while the latest entry is from today or
// yesterday (relative to now's calendar date) and counts back through
// consecutive days from that entry. The longest streak is the longest run
// of consecutive days anywhere in the history and is never below the
// current streak; any history has a longest streak of at least 1.
func Streaks(all []journal.Entry, now time.Time) StreakResult {
	days := distinctDays(all)
	if len(days) == 0 {
		return StreakResult{}
	}

	var res StreakResult
	yesterday := journal.Civil(now).AddDate(0, 0, -1)
	latest := len(days) - 1
	if !days[latest].Before(yesterday) {
		res.Current = 1
		for i := latest; i > 0; i-- {
			if !isNextDay(days[i-1], days[i]) {
				break
			}
			res.Current++
		}
	}

	res.Longest = max(res.Current, 1)
	run := 1
	for i := 1; i < len(days); i++ {
		if isNextDay(days[i-1], days[i]) {
			run++
			res.Longest = max(res.Longest, run)
		} else {
			run = 1
		}
	}
	return res
}

// distinctDays returns the set of parseable entry days, oldest first.
func distinctDays(entries []journal.Entry) []time.Time {
	seen := make(map[time.Time]bool, len(entries))
	days := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		d, ok := entryDay(e)
		if !ok || seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func isNextDay(prev, next time.Time) bool {
	return prev.AddDate(0, 0, 1).Equal(next)
}
