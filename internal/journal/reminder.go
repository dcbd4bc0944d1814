package journal

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Priority ranks reminders that share a due date.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool { return p.rank() < 3 }

// Reminder is a dated to-do kept next to the journal.
type Reminder struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Note      string    `json:"note"`
	DueDate   string    `json:"dueDate"` // YYYY-MM-DD
	Completed bool      `json:"completed"`
	Priority  Priority  `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReminderInput is the payload for creating or replacing a reminder.
// Nil Completed and empty Priority keep the current value on update and
// fall back to false / medium on create.
type ReminderInput struct {
	Title     string   `json:"title"`
	Note      string   `json:"note"`
	DueDate   string   `json:"dueDate"`
	Completed *bool    `json:"completed"`
	Priority  Priority `json:"priority"`
}

// Validate checks required fields and enumerations.
func (in ReminderInput) Validate() error {
	var details []string
	if strings.TrimSpace(in.Title) == "" {
		details = append(details, "title: required")
	}
	if _, err := ParseDate(in.DueDate); err != nil {
		details = append(details, fmt.Sprintf("dueDate: %q is not a YYYY-MM-DD date", in.DueDate))
	}
	if in.Priority != "" && !in.Priority.Valid() {
		details = append(details, fmt.Sprintf("priority: %q must be low, medium or high", in.Priority))
	}
	if len(details) > 0 {
		return &ValidationError{Message: "Invalid reminder data", Details: details}
	}
	return nil
}

// NewReminder builds a fresh reminder from the input.
func (in ReminderInput) NewReminder(id int, createdAt time.Time) Reminder {
	r := Reminder{
		ID:        id,
		Title:     strings.TrimSpace(in.Title),
		Note:      in.Note,
		DueDate:   strings.TrimSpace(in.DueDate),
		Priority:  PriorityMedium,
		CreatedAt: createdAt,
	}
	if in.Completed != nil {
		r.Completed = *in.Completed
	}
	if in.Priority != "" {
		r.Priority = in.Priority
	}
	return r
}

// Merge applies the input over an existing reminder, keeping id and creation time.
func (in ReminderInput) Merge(existing Reminder) Reminder {
	r := existing
	r.Title = strings.TrimSpace(in.Title)
	r.Note = in.Note
	r.DueDate = strings.TrimSpace(in.DueDate)
	if in.Completed != nil {
		r.Completed = *in.Completed
	}
	if in.Priority != "" {
		r.Priority = in.Priority
	}
	return r
}

// SortReminders orders reminders by due date ascending, then high priority
// first, then id for a stable result.
func SortReminders(rs []Reminder) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].DueDate != rs[j].DueDate {
			return rs[i].DueDate < rs[j].DueDate
		}
		if rs[i].Priority.rank() != rs[j].Priority.rank() {
			return rs[i].Priority.rank() < rs[j].Priority.rank()
		}
		return rs[i].ID < rs[j].ID
	})
}

// ReminderView selects which reminders a list shows.
type ReminderView string

const (
	ReminderViewAll      ReminderView = "all"
	ReminderViewToday    ReminderView = "today"
	ReminderViewUpcoming ReminderView = "upcoming"
)

// ParseReminderView maps a query value to a view; empty means all.
func ParseReminderView(s string) (ReminderView, bool) {
	switch v := ReminderView(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return ReminderViewAll, true
	case ReminderViewAll, ReminderViewToday, ReminderViewUpcoming:
		return v, true
	default:
		return "", false
	}
}

// FilterReminders keeps the reminders visible in view as of now. Today means
// due on now's calendar date, upcoming means due on a later date.
func FilterReminders(rs []Reminder, view ReminderView, now time.Time) []Reminder {
	today := Today(now)
	out := make([]Reminder, 0, len(rs))
	for _, r := range rs {
		switch view {
		case ReminderViewToday:
			if r.DueDate != today {
				continue
			}
		case ReminderViewUpcoming:
			if r.DueDate <= today {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
