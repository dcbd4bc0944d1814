package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattwhite/moodjournal-go/internal/analytics"
	"github.com/mattwhite/moodjournal-go/internal/journal"
)

const reflectionSystem = `You are a warm, perceptive journaling companion. You receive mood statistics and recent entries from someone's mood journal. Write a short reflection that helps them understand their emotional patterns.

Use these sections:

**🌤 MOOD PATTERNS**
- What the mood distribution and day-by-day trend show
- Shifts between categories worth noticing

**🔥 CONSISTENCY**
- Comment on the current and longest streak
- Recognize effort without guilt-tripping gaps

**💭 THEMES**
- Recurring topics, people or situations in the entries
- How those themes line up with the moods recorded

**🌱 SUGGESTIONS**
- 3-4 gentle, specific ideas grounded in the data

Keep the tone encouraging and honest. Cite the data. Do not diagnose.`

const promptsSystem = `You create personalized journal prompts from someone's recent mood journal entries. Build on themes they have been exploring, address the moods they recorded, and vary the kind of prompt (reflection, gratitude, planning, challenge).

Format your response as a JSON array of exactly 7 strings, each a complete question or writing prompt. Example:
["First prompt here?", "Second prompt here?"]`

const remindersSystem = `You read someone's recent mood journal entries and pull out concrete things they said they want or need to do. Only include actions the entries actually mention.

Respond with a JSON array of objects with these keys:
- "title": short imperative phrase
- "note": one sentence citing the entry that suggested it
- "priority": "high", "medium" or "low"
- "daysFromNow": integer, 0 for today

Return [] if nothing actionable is mentioned.`

// Reflect writes an AI reflection over a mood report and recent entries.
func (c *Client) Reflect(ctx context.Context, rep analytics.Report, recent []journal.Entry) (string, error) {
	user := fmt.Sprintf("%s\n\nRecent Journal Entries:\n%s\n\nPlease reflect on my mood patterns.",
		ReportSummary(rep), FormatEntries(recent, 14))
	return c.complete(ctx, reflectionSystem, user)
}

// Prompts generates personalized writing prompts from recent entries.
func (c *Client) Prompts(ctx context.Context, recent []journal.Entry) ([]string, error) {
	user := fmt.Sprintf("Here are my journal entries from the last week:\n\n%s\n\nPlease generate 7 personalized journal prompts.", FormatEntries(recent, 7))
	text, err := c.complete(ctx, promptsSystem, user)
	if err != nil {
		return nil, err
	}
	return ParsePrompts(text)
}

// SuggestReminders extracts actionable reminders from recent entries, due
// relative to now.
func (c *Client) SuggestReminders(ctx context.Context, recent []journal.Entry, now time.Time) ([]journal.ReminderInput, error) {
	user := fmt.Sprintf("Here are my recent journal entries:\n\n%s", FormatEntries(recent, 3))
	text, err := c.complete(ctx, remindersSystem, user)
	if err != nil {
		return nil, err
	}
	return ParseReminders(text, now)
}

// ReportSummary renders an analytics report as plain text for a prompt.
func ReportSummary(rep analytics.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mood Statistics for %s:\n", rep.RangeLabel)
	fmt.Fprintf(&b, "- Entries in range: %d (of %d total)\n", rep.FilteredEntries, rep.TotalEntries)
	if rep.PrimaryMood != nil {
		fmt.Fprintf(&b, "- Primary mood: %s %s (%d%%)\n", rep.PrimaryMood.Emoji, rep.PrimaryMood.Label, rep.PrimaryMood.Share)
	}
	fmt.Fprintf(&b, "- Current streak: %d days, longest streak: %d days\n", rep.Streaks.Current, rep.Streaks.Longest)
	fmt.Fprintf(&b, "- Words per entry: average %d, max %d, min %d\n", rep.WordCounts.Average, rep.WordCounts.Max, rep.WordCounts.Min)

	if len(rep.Distribution) > 0 {
		b.WriteString("\nMood Distribution:\n")
		for _, d := range rep.Distribution {
			fmt.Fprintf(&b, "- %s: %d\n", d.Category.Label(), d.Count)
		}
	}
	if len(rep.Trends) > 0 {
		b.WriteString("\nDaily Moods:\n")
		for _, p := range rep.Trends {
			var parts []string
			for _, c := range analytics.Categories() {
				if n := p.Counts.Get(c); n > 0 {
					parts = append(parts, fmt.Sprintf("%s %d", strings.ToLower(c.Label()), n))
				}
			}
			fmt.Fprintf(&b, "- %s: %s\n", p.DateFormatted, strings.Join(parts, ", "))
		}
	}
	return b.String()
}

// FormatEntries renders up to limit entries, newest first, skipping empty ones.
func FormatEntries(entries []journal.Entry, limit int) string {
	var b strings.Builder
	n := 0
	for _, e := range entries {
		if n == limit {
			break
		}
		content := strings.TrimSpace(e.Content)
		if content == "" {
			continue
		}
		heading := e.Date
		if d, err := journal.ParseDate(e.Date); err == nil {
			heading = d.Format("Monday, January 2, 2006")
		}
		fmt.Fprintf(&b, "\n=== %s %s ===\n%s\n", heading, e.Mood, content)
		n++
	}
	return b.String()
}

// ParsePrompts pulls the JSON array of prompts out of a model response.
func ParsePrompts(text string) ([]string, error) {
	var prompts []string
	if err := json.Unmarshal([]byte(jsonArray(text)), &prompts); err != nil {
		return nil, fmt.Errorf("could not parse prompts from response: %w", err)
	}
	out := prompts[:0]
	for _, p := range prompts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("could not parse prompts from response")
	}
	return out, nil
}

type suggestedReminder struct {
	Title       string `json:"title"`
	Note        string `json:"note"`
	Priority    string `json:"priority"`
	DaysFromNow int    `json:"daysFromNow"`
}

// ParseReminders turns a model response into valid reminder inputs,
// dropping items that fail validation.
func ParseReminders(text string, now time.Time) ([]journal.ReminderInput, error) {
	var raw []suggestedReminder
	if err := json.Unmarshal([]byte(jsonArray(text)), &raw); err != nil {
		return nil, fmt.Errorf("could not parse reminders from response: %w", err)
	}
	today := journal.Civil(now)
	var out []journal.ReminderInput
	for _, r := range raw {
		in := journal.ReminderInput{
			Title:    r.Title,
			Note:     r.Note,
			DueDate:  journal.FormatDate(today.AddDate(0, 0, max(r.DaysFromNow, 0))),
			Priority: journal.Priority(strings.ToLower(r.Priority)),
		}
		if !in.Priority.Valid() {
			in.Priority = journal.PriorityMedium
		}
		if in.Validate() == nil {
			out = append(out, in)
		}
	}
	return out, nil
}

func jsonArray(text string) string {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return text
	}
	return text[start : end+1]
}

// SavePrompts writes prompts as a numbered list the editor picks from.
func SavePrompts(path string, prompts []string, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Generated on %s\n\n", now.Format("2006-01-02 15:04:05"))
	for i, p := range prompts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

// LoadPrompts reads a file written by SavePrompts. A missing file yields nil.
func LoadPrompts(path string) []string {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var prompts []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		dot := strings.Index(line, ". ")
		if dot < 1 || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := fmt.Sscanf(line[:dot], "%d", new(int)); err != nil {
			continue
		}
		if p := strings.TrimSpace(line[dot+2:]); p != "" {
			prompts = append(prompts, p)
		}
	}
	return prompts
}
