package onboarding

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mattwhite/moodjournal-go/internal/config"
	"github.com/mattwhite/moodjournal-go/internal/logging"
)

var (
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = blurredStyle

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginBottom(2)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

const featureList = `  • moodjournal prompts - Generate personalized writing prompts
  • moodjournal todo - Turn plans in your entries into reminders
  • moodjournal analyze - Reflect on your mood patterns
`

type Model struct {
	textInput  textinput.Model
	configPath string
	err        error
	saved      bool
	width      int
	height     int
}

// NewModel asks for an API key and stores it in the config file at path.
func NewModel(path string) Model {
	ti := textinput.New()
	ti.Placeholder = "sk-ant-api03-..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return Model{
		textInput:  ti,
		configPath: path,
	}
}

// Saved reports whether a key was written.
func (m Model) Saved() bool { return m.saved }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			apiKey := strings.TrimSpace(m.textInput.Value())
			if apiKey == "" {
				return m, nil
			}
			if err := config.SaveAPIKey(m.configPath, apiKey); err != nil {
				logging.Error("save api key failed", "path", m.configPath, "error", err)
				m.err = err
				return m, nil
			}
			m.saved = true
			logging.Info("api key saved", "path", m.configPath)
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.saved {
		return successStyle.Render("\n✅ API key saved successfully!\n\nYou can now use AI features:\n" + featureList + "\n")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("📔 Welcome to Mood Journal"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Let's set up AI-powered features"))
	b.WriteString("\n\n")

	b.WriteString("Mood Journal can use AI to:\n")
	b.WriteString("  • Generate writing prompts from your recent entries\n")
	b.WriteString("  • Suggest reminders from plans you wrote about\n")
	b.WriteString("  • Reflect on your mood patterns and streaks\n\n")

	b.WriteString("Enter your Anthropic API key:\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(warningStyle.Render(fmt.Sprintf("Error: %v\n", m.err)))
	}

	b.WriteString(helpStyle.Render("(Press Enter to save, Esc to skip)"))

	return b.String()
}

// NeedsOnboarding reports whether no API key is configured.
func NeedsOnboarding(cfg config.Config) bool {
	return cfg.AI.APIKey == ""
}

// RunOnboarding runs the interactive key prompt.
func RunOnboarding(path string) error {
	_, err := tea.NewProgram(NewModel(path)).Run()
	return err
}

// RunCLIOnboarding is the line-based prompt for non-interactive terminals.
func RunCLIOnboarding(path string, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "📔 Welcome to Mood Journal")
	fmt.Fprintln(out, "\n If you'd like to use AI features, please provide an Anthropic API key")
	fmt.Fprint(out, "\nEnter your Anthropic API key (or press Enter to skip): ")

	apiKey, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		fmt.Fprintln(out, "\nSkipping API key setup. You can set it later by:")
		fmt.Fprintln(out, "  • Running 'moodjournal onboard'")
		fmt.Fprintln(out, "  • Setting the ANTHROPIC_API_KEY environment variable")
		return nil
	}

	if err := config.SaveAPIKey(path, apiKey); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}

	fmt.Fprintln(out, "\n✅ API key saved successfully!")
	fmt.Fprint(out, "\nYou can now use AI features:\n"+featureList)
	return nil
}
