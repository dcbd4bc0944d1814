// Package editor is the terminal composer for today's journal entry.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mattwhite/moodjournal-go/internal/ai"
	"github.com/mattwhite/moodjournal-go/internal/analytics"
	"github.com/mattwhite/moodjournal-go/internal/journal"
	"github.com/mattwhite/moodjournal-go/internal/logging"
	"github.com/mattwhite/moodjournal-go/internal/session"
)

// TargetWords is the daily goal shown in the status bar.
const TargetWords = 500

const saveTimeout = 5 * time.Second

// Options wires the editor to its store and per-user files.
type Options struct {
	Store       journal.Store
	SessionDir  string
	PromptsPath string
	Now         func() time.Time
}

type Model struct {
	content      []string
	cursor       position
	viewport     viewport
	store        journal.Store
	date         string
	stickers     []journal.Sticker
	moods        []string
	mood         int
	modified     bool
	lastActivity time.Time
	typingTime   time.Duration
	sessionDir   string
	now          func() time.Time
	status       string
}

type position struct {
	row int
	col int
}

type viewport struct {
	width  int
	height int
}

type tickMsg time.Time

type savedMsg struct {
	entry *journal.Entry
	err   error
}

var defaultPrompts = []string{
	"What are three things you're grateful for today?",
	"What made you smile today?",
	"How do you want to feel at the end of today?",
	"What drained your energy today, and what restored it?",
	"What would make today great?",
	"Who did you connect with today?",
	"What's weighing on your mind right now?",
	"What's one kind thing you did for yourself today?",
	"When did you feel most like yourself today?",
	"What's one thing you're looking forward to?",
	"How will you take care of yourself today?",
	"What surprised you today?",
	"What would you tell a friend who had your day?",
	"What's one feeling you'd like to let go of?",
	"How can you bring more joy into your routine tomorrow?",
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func isGhost(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "<!--") && strings.HasSuffix(t, "-->")
}

func ghostText(line string) string {
	t := strings.TrimSpace(line)
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(t, "<!--"), "-->"))
}

func dailyPrompt(path string, now time.Time) string {
	prompts := ai.LoadPrompts(path)
	if len(prompts) == 0 {
		prompts = defaultPrompts
	}
	return prompts[(now.YearDay()-1)%len(prompts)]
}

func header(now time.Time, prompt string) []string {
	return []string{
		fmt.Sprintf("<!-- %s -->", now.Format("Monday, January 2, 2006")),
		fmt.Sprintf("<!-- %s -->", prompt),
		"",
	}
}

// New loads today's entry, or starts a blank page headed by a writing prompt.
func New(ctx context.Context, opts Options) (Model, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	now := opts.Now()
	m := Model{
		store:        opts.Store,
		date:         journal.Today(now),
		moods:        journal.MoodEmojis(),
		sessionDir:   opts.SessionDir,
		now:          opts.Now,
		lastActivity: now,
	}
	m.content = header(now, dailyPrompt(opts.PromptsPath, now))

	existing, err := opts.Store.GetEntryByDate(ctx, m.date)
	switch {
	case err == nil:
		m.content = append(m.content, strings.Split(existing.Content, "\n")...)
		m.stickers = existing.Stickers
		for i, mood := range m.moods {
			if mood == existing.Mood {
				m.mood = i
			}
		}
	case errors.Is(err, journal.ErrNotFound):
	default:
		return Model{}, fmt.Errorf("load today's entry: %w", err)
	}

	last := len(m.content) - 1
	if m.content[last] != "" {
		m.content = append(m.content, "")
		last++
	}
	m.cursor = position{row: last}

	if m.sessionDir != "" {
		s, err := session.Load(m.sessionDir, m.date)
		if err != nil {
			logging.Warn("could not read session stats", "date", m.date, "error", err)
		}
		m.typingTime = s.TypingTime()
	}
	return m, nil
}

// Mood is the emoji currently selected for the entry.
func (m Model) Mood() string { return m.moods[m.mood] }

// Body is the entry text without the prompt header.
func (m Model) Body() string {
	var lines []string
	for _, line := range m.content {
		if isGhost(line) {
			continue
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func (m Model) saveCmd(persistEntry bool) tea.Cmd {
	in := journal.EntryInput{
		Date:     m.date,
		Mood:     m.Mood(),
		Content:  m.Body(),
		Stickers: m.stickers,
	}
	stats := session.Stats{
		TypingSeconds: int(m.typingTime.Seconds()),
		WordCount:     analytics.CountWords(in.Content),
	}
	store, dir := m.store, m.sessionDir
	return func() tea.Msg {
		var msg savedMsg
		if persistEntry {
			ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
			defer cancel()
			in.Normalize()
			if err := in.Validate(); err != nil {
				return savedMsg{err: err}
			}
			e, _, err := store.UpsertEntry(ctx, in)
			if err != nil {
				return savedMsg{err: err}
			}
			msg.entry = &e
		}
		if dir != "" {
			if err := session.Save(dir, in.Date, stats); err != nil {
				logging.Warn("could not write session stats", "date", in.Date, "error", err)
			}
		}
		return msg
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.now().Sub(m.lastActivity) < time.Minute {
			m.typingTime += time.Second
		}
		return m, tickCmd()

	case savedMsg:
		if msg.err != nil {
			logging.Error("save entry failed", "date", m.date, "error", msg.err)
			m.status = "save failed: " + msg.err.Error()
			return m, nil
		}
		if msg.entry != nil {
			m.modified = false
			m.stickers = msg.entry.Stickers
			m.status = "saved"
			logging.Info("entry saved", "date", m.date, "mood", msg.entry.Mood)
		}

	case tea.WindowSizeMsg:
		m.viewport.width = msg.Width
		m.viewport.height = msg.Height - 2

	case tea.KeyMsg:
		m.lastActivity = m.now()
		m.status = ""
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Sequence(m.saveCmd(m.modified), tea.Quit)
		case tea.KeyCtrlS:
			return m, m.saveCmd(true)
		case tea.KeyTab:
			m.mood = (m.mood + 1) % len(m.moods)
			m.modified = true
		case tea.KeyShiftTab:
			m.mood = (m.mood + len(m.moods) - 1) % len(m.moods)
			m.modified = true
		case tea.KeyUp:
			if m.cursor.row > 0 {
				m.cursor.row--
				m.clampCol()
			}
		case tea.KeyDown:
			if m.cursor.row < len(m.content)-1 {
				m.cursor.row++
				m.clampCol()
			}
		case tea.KeyLeft:
			if m.cursor.col > 0 {
				_, size := utf8.DecodeLastRuneInString(m.content[m.cursor.row][:m.cursor.col])
				m.cursor.col -= size
			} else if m.cursor.row > 0 {
				m.cursor.row--
				m.cursor.col = len(m.content[m.cursor.row])
			}
		case tea.KeyRight:
			line := m.content[m.cursor.row]
			if m.cursor.col < len(line) {
				_, size := utf8.DecodeRuneInString(line[m.cursor.col:])
				m.cursor.col += size
			} else if m.cursor.row < len(m.content)-1 {
				m.cursor.row++
				m.cursor.col = 0
			}
		case tea.KeyEnter:
			m.modified = true
			line := m.content[m.cursor.row]
			rest := line[m.cursor.col:]
			m.content[m.cursor.row] = line[:m.cursor.col]
			m.content = append(m.content[:m.cursor.row+1], append([]string{rest}, m.content[m.cursor.row+1:]...)...)
			m.cursor.row++
			m.cursor.col = 0
		case tea.KeyBackspace:
			m.modified = true
			if m.cursor.col > 0 {
				line := m.content[m.cursor.row]
				_, size := utf8.DecodeLastRuneInString(line[:m.cursor.col])
				m.content[m.cursor.row] = line[:m.cursor.col-size] + line[m.cursor.col:]
				m.cursor.col -= size
			} else if m.cursor.row > 0 {
				prev := m.content[m.cursor.row-1]
				m.cursor.col = len(prev)
				m.content[m.cursor.row-1] = prev + m.content[m.cursor.row]
				m.content = append(m.content[:m.cursor.row], m.content[m.cursor.row+1:]...)
				m.cursor.row--
			}
		case tea.KeySpace:
			m.insert(" ")
		case tea.KeyRunes:
			m.insert(string(msg.Runes))
		}
	}
	return m, nil
}

func (m *Model) insert(s string) {
	m.modified = true
	line := m.content[m.cursor.row]
	m.content[m.cursor.row] = line[:m.cursor.col] + s + line[m.cursor.col:]
	m.cursor.col += len(s)
}

func (m *Model) clampCol() {
	if n := len(m.content[m.cursor.row]); m.cursor.col > n {
		m.cursor.col = n
	}
}

func wordWrap(line string, width int) []string {
	if width <= 0 || len(line) <= width {
		return []string{line}
	}

	var wrapped []string
	var current strings.Builder
	if lead := len(line) - len(strings.TrimLeft(line, " ")); lead > 0 {
		current.WriteString(strings.Repeat(" ", lead))
	}

	for _, word := range strings.Fields(line) {
		if current.Len() > 0 && current.Len()+1+len(word) > width {
			wrapped = append(wrapped, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		if len(word) <= width {
			current.WriteString(word)
			continue
		}
		for len(word) > 0 {
			space := width - current.Len()
			if space <= 0 {
				wrapped = append(wrapped, current.String())
				current.Reset()
				space = width
			}
			take := min(space, len(word))
			current.WriteString(word[:take])
			word = word[take:]
		}
	}
	if current.Len() > 0 {
		wrapped = append(wrapped, current.String())
	}
	if len(wrapped) == 0 {
		wrapped = []string{line}
	}
	return wrapped
}

func (m Model) visualLines(line string) []string {
	if isGhost(line) {
		return wordWrap(ghostText(line), m.viewport.width)
	}
	return wordWrap(line, m.viewport.width)
}

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF1493")).Bold(true)
	ghostStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AA6688"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

func (m Model) View() string {
	var s strings.Builder

	maxHeight := max(m.viewport.height-2, 1)

	cursorVisual := 0
	for i := 0; i < m.cursor.row; i++ {
		cursorVisual += len(m.visualLines(m.content[i]))
	}
	scroll := 0
	if cursorVisual >= maxHeight {
		scroll = cursorVisual - maxHeight + 1
	}

	visible, row := 0, 0
	for i, line := range m.content {
		ghost := isGhost(line)
		wrapped := m.visualLines(line)
		for w, part := range wrapped {
			if row < scroll {
				row++
				continue
			}
			if visible >= maxHeight {
				break
			}
			switch {
			case i == m.cursor.row && w == 0 && m.cursor.col < len(part):
				s.WriteString(part[:m.cursor.col])
				s.WriteString(cursorStyle.Render("│"))
				s.WriteString(part[m.cursor.col:])
			case i == m.cursor.row && w == len(wrapped)-1:
				s.WriteString(part)
				s.WriteString(cursorStyle.Render("│"))
			case ghost:
				s.WriteString(ghostStyle.Render(part))
			default:
				s.WriteString(part)
			}
			s.WriteString("\n")
			visible++
			row++
		}
		if visible >= maxHeight {
			break
		}
	}
	for i := visible; i < maxHeight; i++ {
		s.WriteString("~\n")
	}

	s.WriteString("\n")
	s.WriteString(m.statusBar())
	return s.String()
}

func (m Model) statusBar() string {
	words := analytics.CountWords(m.Body())
	left := fmt.Sprintf("%s %d/%d", m.Mood(), words, TargetWords)
	right := fmt.Sprintf("%dm", int(m.typingTime.Minutes()))
	if m.status != "" {
		right = m.status + "  " + right
	}
	const pad = "  "
	minWidth := lipgloss.Width(left) + lipgloss.Width(right) + len(pad)*2 + 2

	if m.viewport.width < minWidth+3 {
		bar := fmt.Sprintf("%s %d words %s", m.Mood(), words, right)
		if lipgloss.Width(bar) > m.viewport.width {
			bar = fmt.Sprintf("%s %dw", m.Mood(), words)
		}
		return bar
	}

	width := max(m.viewport.width-minWidth, 5)
	progress := min(float64(words)/TargetWords, 1.0)
	filled := int(progress * float64(width))

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < width; i++ {
		if i < filled {
			bar.WriteString(filledStyle.Render("━"))
		} else {
			bar.WriteString(emptyStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return dimStyle.Render(left) + pad + bar.String() + pad + dimStyle.Render(right)
}
