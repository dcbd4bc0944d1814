// Package statsui is the terminal mood dashboard.
package statsui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	btable "github.com/charmbracelet/bubbles/table"
	bviewport "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mattwhite/moodjournal-go/internal/analytics"
	"github.com/mattwhite/moodjournal-go/internal/journal"
	"github.com/mattwhite/moodjournal-go/internal/logging"
	"github.com/mattwhite/moodjournal-go/internal/session"
)

const (
	tabOverview = iota
	tabDaily
	tabMoods
	tabTrends
	tabInsights
)

const (
	loadTimeout    = 10 * time.Second
	insightTimeout = 2 * time.Minute
)

// EntryLister is the part of the store the dashboard reads.
type EntryLister interface {
	ListEntries(ctx context.Context) ([]journal.Entry, error)
}

// Insighter writes a reflection over a report. *ai.Client satisfies it.
type Insighter interface {
	Reflect(ctx context.Context, rep analytics.Report, recent []journal.Entry) (string, error)
}

// Options wires the dashboard to its data sources. Insighter may be nil
// when no API key is configured.
type Options struct {
	Entries    EntryLister
	Insighter  Insighter
	SessionDir string
	Range      analytics.Range
	Now        func() time.Time
}

type Model struct {
	entries     EntryLister
	insighter   Insighter
	sessionDir  string
	now         func() time.Time
	rng         analytics.Range
	history     []journal.Entry
	sessions    []session.Day
	report      analytics.Report
	viewport    viewport
	selectedTab int
	tabs        []string
	loading     bool
	err         error
	aiInsights  string
	aiLoading   bool
	aiError     error
	loader      spinner.Model
	aiLoader    spinner.Model
	moodBar     progress.Model
	contentVP   bviewport.Model
	help        help.Model
	keys        keymap
	daily       paginator.Model
	dailySize   int
	moodTable   btable.Model
	trendsTable btable.Model
	sideWidth   int
	showHelp    bool
	// animated counters
	animate     bool
	entriesAnim int
	streakAnim  int
	longestAnim int
	avgAnim     int
}

type viewport struct {
	width  int
	height int
}

func (m Model) mainWidth() int { return m.viewport.width - m.sideWidth }

// New builds a dashboard that loads its entries on Init.
func New(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Range == "" {
		opts.Range = analytics.Last7Days
	}

	ld := spinner.New()
	ld.Spinner = spinner.MiniDot
	ld.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF1493"))

	aiSpin := spinner.New()
	aiSpin.Spinner = spinner.Dot
	aiSpin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF1493")).Bold(true)

	m := Model{
		entries:    opts.Entries,
		insighter:  opts.Insighter,
		sessionDir: opts.SessionDir,
		now:        opts.Now,
		rng:        opts.Range,
		tabs:       []string{"Overview", "Daily", "Moods", "Trends", "AI Insights"},
		loading:    true,
		loader:     ld,
		aiLoader:   aiSpin,
		moodBar:    progress.New(progress.WithDefaultGradient()),
		help:       help.New(),
		keys:       newKeymap(),
		contentVP:  bviewport.New(0, 0),
		daily:      paginator.New(),
		dailySize:  14,
		sideWidth:  28,
		animate:    true,
	}
	m.daily.Type = paginator.Dots
	m.daily.PerPage = m.dailySize
	return m
}

type animTickMsg time.Time

func animTickCmd() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return animTickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCmd(m.entries, m.sessionDir), m.loader.Tick)
}

type loadedMsg struct {
	history  []journal.Entry
	sessions []session.Day
}
type loadErrorMsg struct{ err error }
type insightsMsg struct{ text string }
type insightsErrorMsg struct{ err error }

func loadCmd(src EntryLister, sessionDir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		history, err := src.ListEntries(ctx)
		if err != nil {
			return loadErrorMsg{err}
		}
		var days []session.Day
		if sessionDir != "" {
			if days, err = session.LoadAll(sessionDir); err != nil {
				logging.Warn("could not read session stats", "dir", sessionDir, "error", err)
			}
		}
		return loadedMsg{history: history, sessions: days}
	}
}

func insightsCmd(in Insighter, rep analytics.Report, recent []journal.Entry) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), insightTimeout)
		defer cancel()
		text, err := in.Reflect(ctx, rep, recent)
		if err != nil {
			return insightsErrorMsg{err}
		}
		return insightsMsg{text}
	}
}

// recompute refreshes the report for the selected range.
func (m *Model) recompute() {
	m.report = analytics.Compute(m.history, m.rng, m.now())
	m.rebuildTables()
	m.updateDailyPages()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.width = msg.Width
		m.viewport.height = msg.Height
		m.moodBar.Width = max(m.mainWidth()-16, 20)
		contentHeight := max(m.viewport.height-3, 5)
		m.contentVP.Width = m.mainWidth()
		m.contentVP.Height = contentHeight
		m.dailySize = max(contentHeight-6, 7)
		m.daily.PerPage = m.dailySize
		m.rebuildTables()
		m.updateDailyPages()
	case loadedMsg:
		m.history = msg.history
		m.sessions = msg.sessions
		m.loading = false
		m.entriesAnim, m.streakAnim, m.longestAnim, m.avgAnim = 0, 0, 0, 0
		m.recompute()
		m.animate = true
		logging.Debug("dashboard loaded", "entries", len(m.history), "range", m.rng)
		return m, animTickCmd()
	case loadErrorMsg:
		m.err = msg.err
		m.loading = false
		logging.Error("dashboard load failed", "error", msg.err)
	case insightsMsg:
		m.aiInsights = msg.text
		m.aiLoading = false
		m.contentVP.SetContent(m.aiInsights)
	case insightsErrorMsg:
		m.aiError = msg.err
		m.aiLoading = false
		logging.Error("insights failed", "error", msg.err)
	case spinner.TickMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		cmds = append(cmds, cmd)
		if m.aiLoading {
			m.aiLoader, cmd = m.aiLoader.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	case animTickMsg:
		if m.loading || !m.animate {
			return m, nil
		}
		var a, b, c, d bool
		m.entriesAnim, a = stepInt(m.entriesAnim, m.report.FilteredEntries)
		m.streakAnim, b = stepInt(m.streakAnim, m.report.Streaks.Current)
		m.longestAnim, c = stepInt(m.longestAnim, m.report.Streaks.Longest)
		m.avgAnim, d = stepInt(m.avgAnim, m.report.WordCounts.Average)
		if a && b && c && d {
			m.animate = false
			return m, nil
		}
		return m, animTickCmd()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.selectedTab = (m.selectedTab + 1) % len(m.tabs)
		case key.Matches(msg, m.keys.PrevTab):
			m.selectedTab = (m.selectedTab - 1 + len(m.tabs)) % len(m.tabs)
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, m.keys.Range):
			if !m.loading && m.err == nil {
				m.rng = m.rng.Next()
				m.recompute()
				m.animate = true
				return m, animTickCmd()
			}
		case key.Matches(msg, m.keys.GenerateAI):
			return m.generateInsights()
		case key.Matches(msg, m.keys.PrevPage):
			if m.selectedTab == tabDaily {
				m.daily.NextPage()
			}
		case key.Matches(msg, m.keys.NextPage):
			if m.selectedTab == tabDaily {
				m.daily.PrevPage()
			}
		default:
			return m.scroll(msg)
		}
	}
	return m, nil
}

func (m Model) generateInsights() (tea.Model, tea.Cmd) {
	if m.selectedTab != tabInsights || m.aiLoading || m.loading {
		return m, nil
	}
	if m.insighter == nil {
		m.aiError = fmt.Errorf("no Anthropic API key configured")
		return m, nil
	}
	m.aiLoading = true
	m.aiError = nil
	m.aiInsights = ""
	recent := analytics.FilterByRange(m.history, analytics.AllTime, m.now())
	return m, tea.Batch(m.aiLoader.Tick, insightsCmd(m.insighter, m.report, recent))
}

func (m Model) scroll(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.selectedTab {
	case tabMoods:
		m.moodTable, cmd = m.moodTable.Update(msg)
	case tabTrends:
		m.trendsTable, cmd = m.trendsTable.Update(msg)
	case tabInsights:
		m.contentVP, cmd = m.contentVP.Update(msg)
	}
	return m, cmd
}

func stepInt(curr, target int) (int, bool) {
	if curr >= target {
		return target, true
	}
	v := min(curr+max((target-curr)/7, 1), target)
	return v, v == target
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.NewStyle().
			Width(m.viewport.width).
			Height(m.viewport.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(m.loader.View() + " Loading your journal...")
	}
	if m.err != nil {
		return lipgloss.NewStyle().
			Width(m.viewport.width).
			Height(m.viewport.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var body string
	switch m.selectedTab {
	case tabOverview:
		body = m.renderOverview()
	case tabDaily:
		body = m.renderDaily()
	case tabMoods:
		body = m.renderMoods()
	case tabTrends:
		body = m.renderTrends()
	case tabInsights:
		body = m.renderAIInsights()
	}
	main := lipgloss.JoinVertical(lipgloss.Left, m.renderHeaderBanner(), body, m.renderFooter())
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF1493")).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFF"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

func (m Model) renderSidebar() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF1493")).Render("Mood Journal")
	subtitle := lipgloss.NewStyle().Foreground(lipgloss.Color("#AAA")).Render("Dashboard")
	icons := []string{"🏠", "📅", "🎭", "📈", "🤖"}
	var items []string
	for i, tab := range m.tabs {
		items = append(items, m.renderSidebarTab(i, tab, icons[i]))
	}
	quick := []string{
		labelStyle.Render("Quick Stats"),
		fmt.Sprintf("Entries: %d", m.report.TotalEntries),
		fmt.Sprintf("Writing: %s", formatDuration(session.Total(m.sessions))),
		fmt.Sprintf("Streak: %d", m.streakAnim),
	}
	box := lipgloss.NewStyle().
		Width(m.sideWidth).
		Height(m.viewport.height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444")).
		Padding(1, 2)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		strings.Join(items, "\n"),
		"",
		strings.Join(quick, "\n"),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("#777")).Render("? for help"),
	))
}

func (m Model) renderSidebarTab(index int, label, icon string) string {
	style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#AAA"))
	s := fmt.Sprintf("%s %s", icon, label)
	if index == m.selectedTab {
		return style.Foreground(lipgloss.Color("#FF1493")).Bold(true).Render(s)
	}
	return style.Render(s)
}

func (m Model) renderHeaderBanner() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB6C1")).Render("Mood Insights")
	subtitle := lipgloss.NewStyle().Foreground(lipgloss.Color("#DDD")).Render(capitalize(m.report.RangeLabel) + "  (r to change)")

	counterStyle := lipgloss.NewStyle().Padding(1, 3)
	counter := func(label, value string) string {
		return counterStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			labelStyle.Render(label), valueStyle.Render(value)))
	}
	counters := lipgloss.JoinHorizontal(lipgloss.Top,
		counter("Entries", fmt.Sprintf("%d", m.entriesAnim)),
		counter("Streak", fmt.Sprintf("%d", m.streakAnim)),
		counter("Longest", fmt.Sprintf("%d", m.longestAnim)),
		counter("Avg Words", fmt.Sprintf("%d", m.avgAnim)),
	)

	banner := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444")).
		Background(lipgloss.Color("#2A0F25")).
		Padding(1, 2).
		Width(max(m.mainWidth()-4, 20)).
		Align(lipgloss.Center)
	return banner.Render(lipgloss.JoinVertical(lipgloss.Center, title, subtitle, counters))
}

func (m Model) renderHelpOverlay() string {
	box := lipgloss.NewStyle().
		Width(max(m.viewport.width-8, 20)).
		Height(max(m.viewport.height-6, 5)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF1493")).
		Padding(1, 2)
	overlay := box.Render(m.help.FullHelpView(m.keys.FullHelp()) + "\n\nPress '?' to close")
	return lipgloss.NewStyle().Width(m.viewport.width).Height(m.viewport.height).Align(lipgloss.Center, lipgloss.Center).Render(overlay)
}

func (m Model) renderOverview() string {
	rep := m.report
	var content []string
	content = append(content, titleStyle.Render("📊 "+capitalize(rep.RangeLabel)))

	if rep.FilteredEntries == 0 {
		content = append(content, mutedStyle.Render("No entries in this range yet. Write one with `moodjournal`."))
		return lipgloss.NewStyle().Padding(2).Render(strings.Join(content, "\n"))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444")).
		Padding(1, 2).
		Margin(0, 2, 1, 0)
	stat := func(label, value string) string {
		return labelStyle.Render(label) + "  " + valueStyle.Render(value)
	}
	left := []string{
		stat("Entries", fmt.Sprintf("%d of %d", rep.FilteredEntries, rep.TotalEntries)),
		stat("Current Streak", fmt.Sprintf("%d days", rep.Streaks.Current)),
		stat("Longest Streak", fmt.Sprintf("%d days", rep.Streaks.Longest)),
	}
	right := []string{
		stat("Avg Words", fmt.Sprintf("%d", rep.WordCounts.Average)),
		stat("Longest Entry", fmt.Sprintf("%d words", rep.WordCounts.Max)),
		stat("Shortest Entry", fmt.Sprintf("%d words", rep.WordCounts.Min)),
	}
	content = append(content, lipgloss.JoinHorizontal(lipgloss.Top,
		card.Render(strings.Join(left, "\n")),
		card.Render(strings.Join(right, "\n")),
	))

	if p := rep.PrimaryMood; p != nil {
		content = append(content, titleStyle.Render(fmt.Sprintf("Primary Mood: %s %s", p.Emoji, p.Label)))
		meta := labelStyle.Render(fmt.Sprintf("%d%% of entries", p.Share))
		content = append(content, lipgloss.JoinHorizontal(lipgloss.Top, m.moodBar.ViewAs(float64(p.Share)/100), " ", meta))
	}

	if len(rep.WordCountTrend) > 0 {
		content = append(content, "")
		content = append(content, titleStyle.Render("Recent Entry Lengths"))
		content = append(content, renderSparkline(rep.WordCountTrend))
	}
	return lipgloss.NewStyle().Padding(2).Render(strings.Join(content, "\n"))
}

// renderDaily lists calendar days newest page last, one mood per day.
func (m Model) renderDaily() string {
	var content []string
	content = append(content, titleStyle.Render("📅 Daily Moods"))

	byDate := make(map[string][]journal.Entry)
	for _, e := range m.history {
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	typing := make(map[string]time.Duration)
	for _, d := range m.sessions {
		typing[d.Date] = d.Stats.TypingTime()
	}

	today := journal.Civil(m.now())
	end := today.AddDate(0, 0, -m.daily.Page*m.dailySize)
	for i := 0; i < m.dailySize; i++ {
		d := end.AddDate(0, 0, -i)
		date := journal.FormatDate(d)
		label := d.Format("Mon, Jan 2")
		if d.Equal(today) {
			label += " (Today)"
		}
		entries, ok := byDate[date]
		if !ok {
			content = append(content, mutedStyle.Render(fmt.Sprintf("%-20s %s", label, renderEmptyBar(30))))
			continue
		}
		var moods []string
		words := 0
		for _, e := range entries {
			moods = append(moods, e.Mood)
			words += analytics.CountWords(e.Content)
		}
		line := fmt.Sprintf("%-20s %s %5d words  %6s  %s", label, renderMiniBar(words, 300, 30), words,
			formatDuration(typing[date]), strings.Join(moods, " "))
		if d.Equal(today) {
			line = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF1493")).Render(line)
		}
		content = append(content, line)
	}
	content = append(content, "", m.daily.View())
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(content, "\n"))
}

func (m Model) renderMoods() string {
	var content []string
	content = append(content, titleStyle.Render("🎭 Mood Distribution"))
	if len(m.report.Distribution) == 0 {
		content = append(content, mutedStyle.Render("No moods recorded in this range."))
	}
	for _, d := range m.report.Distribution {
		content = append(content, fmt.Sprintf("%s %-8s %s %3d",
			analytics.RepresentativeEmoji(d.Category), d.Category.Label(),
			renderMiniBar(d.Count, m.report.FilteredEntries, 30), d.Count))
	}
	content = append(content, "", titleStyle.Render("Emoji Usage"), m.moodTable.View())
	return lipgloss.NewStyle().Padding(2).Render(strings.Join(content, "\n"))
}

func (m Model) renderTrends() string {
	header := titleStyle.Render("📈 Mood Trends") + "\n"
	if len(m.report.Trends) == 0 {
		return lipgloss.NewStyle().Padding(2).Render(header + mutedStyle.Render("No dated entries in this range."))
	}
	return lipgloss.NewStyle().Padding(2).Render(header + m.trendsTable.View())
}

func (m Model) renderAIInsights() string {
	var content []string
	content = append(content, titleStyle.Render("🤖 AI Mood Reflection"))

	if m.aiLoading {
		return lipgloss.NewStyle().Padding(2, 0).Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(lipgloss.Color("#FF1493")).Render("🔮 Reflecting on your moods…"),
			"",
			m.aiLoader.View(),
			labelStyle.Render("This may take a few moments as AI reviews your recent entries."),
		))
	}

	if m.aiError != nil {
		msg := fmt.Sprintf("❌ Error generating insights: %v", m.aiError)
		if strings.Contains(m.aiError.Error(), "API key") {
			msg += "\n\n💡 Tip: run `moodjournal onboard` or export ANTHROPIC_API_KEY"
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Padding(2, 0).Render(msg)
	}

	if m.aiInsights == "" {
		hint := lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Padding(1, 0)
		content = append(content,
			lipgloss.NewStyle().Foreground(lipgloss.Color("#FF1493")).Bold(true).Padding(1, 0).
				Render("Press 'g' to reflect on "+m.report.RangeLabel),
			hint.Render("Uses the mood report above plus your recent entries."),
		)
		return lipgloss.NewStyle().Padding(2).Render(strings.Join(content, "\n"))
	}

	content = append(content, m.contentVP.View())
	return lipgloss.NewStyle().Padding(2).Render(strings.Join(content, "\n"))
}

func (m Model) renderFooter() string {
	return lipgloss.NewStyle().
		Width(max(m.mainWidth(), 10)).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#444")).
		Padding(0, 2).
		Render(m.help.View(m.keys))
}

func renderMiniBar(current, total, width int) string {
	frac := 0.0
	if total > 0 {
		frac = min(float64(current)/float64(total), 1.0)
	}
	filled := int(frac * float64(width))
	on := lipgloss.NewStyle().Foreground(lipgloss.Color("#AA6688"))
	off := lipgloss.NewStyle().Foreground(lipgloss.Color("#444"))
	var bar strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			bar.WriteString(on.Render("▓"))
		} else {
			bar.WriteString(off.Render("░"))
		}
	}
	return bar.String()
}

func renderEmptyBar(width int) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#333")).Render(strings.Repeat("─", width))
}

// renderSparkline draws one block per entry, scaled to the longest.
func renderSparkline(points []analytics.WordCountPoint) string {
	if len(points) == 0 {
		return ""
	}
	blocks := []rune("▁▂▃▄▅▆▇█")
	most := 0
	for _, p := range points {
		most = max(most, p.Words)
	}
	var b strings.Builder
	for _, p := range points {
		idx := 0
		if most > 0 {
			idx = p.Words * (len(blocks) - 1) / most
		}
		b.WriteRune(blocks[idx])
		b.WriteRune(' ')
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, b.String(), labelStyle.Render("(words per entry)"))
}

type keymap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Range      key.Binding
	GenerateAI key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeymap() keymap {
	return keymap{
		NextTab:    key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab/→", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("⇧tab/←", "prev tab")),
		Range:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "change range")),
		GenerateAI: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "AI reflection (Insights tab)")),
		PrevPage:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "older days (Daily)")),
		NextPage:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "newer days (Daily)")),
		ScrollUp:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevTab, k.NextTab, k.Range, k.Help, k.Quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTab, k.NextTab, k.Range},
		{k.ScrollUp, k.ScrollDown, k.PrevPage, k.NextPage},
		{k.GenerateAI, k.Help, k.Quit},
	}
}

// rebuildTables refreshes the emoji and trend tables from the report.
func (m *Model) rebuildTables() {
	width := max(m.mainWidth()-6, 40)

	var rows []btable.Row
	for _, u := range m.report.EmojiUsage {
		rows = append(rows, btable.Row{
			u.Emoji,
			analytics.Classify(u.Emoji).Label(),
			fmt.Sprintf("%d", u.Count),
		})
	}
	mt := btable.New(
		btable.WithColumns([]btable.Column{{Title: "Mood", Width: 6}, {Title: "Category", Width: 10}, {Title: "Entries", Width: 8}}),
		btable.WithRows(rows),
		btable.WithFocused(true),
		btable.WithHeight(min(len(rows)+1, 10)),
	)
	mt.SetStyles(tableStyles())
	mt.SetWidth(width)
	m.moodTable = mt

	cols := []btable.Column{{Title: "Date", Width: 14}}
	for _, c := range analytics.Categories() {
		cols = append(cols, btable.Column{Title: analytics.RepresentativeEmoji(c) + " " + c.Label(), Width: 10})
	}
	var trows []btable.Row
	for i := len(m.report.Trends) - 1; i >= 0; i-- {
		p := m.report.Trends[i]
		row := btable.Row{p.DateFormatted}
		for _, c := range analytics.Categories() {
			row = append(row, fmt.Sprintf("%d", p.Counts.Get(c)))
		}
		trows = append(trows, row)
	}
	tt := btable.New(
		btable.WithColumns(cols),
		btable.WithRows(trows),
		btable.WithFocused(true),
		btable.WithHeight(max(m.contentVP.Height-12, 5)),
	)
	tt.SetStyles(tableStyles())
	tt.SetWidth(width)
	m.trendsTable = tt
}

// updateDailyPages sizes the paginator to cover the selected range.
func (m *Model) updateDailyPages() {
	days := m.rng.Days()
	if days == 0 {
		days = 90
		if oldest, ok := oldestDay(m.history); ok {
			days = max(int(journal.Civil(m.now()).Sub(oldest).Hours()/24)+1, 1)
		}
	}
	m.daily.SetTotalPages(days)
	if m.daily.Page >= m.daily.TotalPages {
		m.daily.Page = 0
	}
}

func oldestDay(entries []journal.Entry) (time.Time, bool) {
	var oldest time.Time
	found := false
	for _, e := range entries {
		d, err := journal.ParseDate(e.Date)
		if err != nil {
			continue
		}
		if !found || d.Before(oldest) {
			oldest, found = d, true
		}
	}
	return oldest, found
}

func tableStyles() btable.Styles {
	s := btable.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true).
		BorderForeground(lipgloss.Color("#444")).
		Foreground(lipgloss.Color("#FF1493"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFF")).
		Background(lipgloss.Color("#4A1242"))
	s.Cell = s.Cell.Foreground(lipgloss.Color("#DDD"))
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
