package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattwhite/moodjournal-go/internal/ai"
	"github.com/mattwhite/moodjournal-go/internal/analytics"
	"github.com/mattwhite/moodjournal-go/internal/api"
	"github.com/mattwhite/moodjournal-go/internal/config"
	"github.com/mattwhite/moodjournal-go/internal/editor"
	"github.com/mattwhite/moodjournal-go/internal/journal"
	"github.com/mattwhite/moodjournal-go/internal/logging"
	"github.com/mattwhite/moodjournal-go/internal/onboarding"
	"github.com/mattwhite/moodjournal-go/internal/statsui"
	"github.com/mattwhite/moodjournal-go/internal/storage"
)

const aiTimeout = 2 * time.Minute

func printHelp() {
	fmt.Println("📔 Mood Journal - a daily mood journal with analytics")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  moodjournal                  Write today's entry")
	fmt.Println("  moodjournal stats            Open the mood dashboard")
	fmt.Println("  moodjournal report [-range]  Print mood analytics (7days, 30days, 90days, all)")
	fmt.Println("  moodjournal serve            Start the HTTP API")
	fmt.Println("  moodjournal onboard          Set up AI features (API key)")
	fmt.Println()
	fmt.Println("AI Commands (requires API key):")
	fmt.Println("  moodjournal analyze [-range] Reflect on your mood patterns")
	fmt.Println("  moodjournal prompts          Generate personalized writing prompts")
	fmt.Println("  moodjournal todo             Turn plans in recent entries into reminders")
	fmt.Println()
	fmt.Println("Other:")
	fmt.Println("  moodjournal help             Show this help message")
	fmt.Println()
	fmt.Println("First time? Run 'moodjournal onboard' to set up AI features.")
}

// app carries what every command needs.
type app struct {
	cfg     config.Config
	cfgPath string
	dir     string
}

func (a app) sessionDir() string  { return filepath.Join(a.dir, "sessions") }
func (a app) promptsPath() string { return filepath.Join(a.dir, "prompts.md") }

func main() {
	cfg, path, err := config.LoadDefault()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	a := app{cfg: cfg, cfgPath: path, dir: filepath.Dir(path)}

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if cmd == "serve" {
		err = logging.Init(os.Stderr, cfg.Log.Level)
	} else {
		err = logging.InitFile(config.LogDir(a.dir), cfg.Log.Level)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	if err := a.run(cmd, os.Args[min(2, len(os.Args)):]); err != nil {
		logging.Error("command failed", "command", cmd, "error", err)
		fmt.Printf("Error: %v\n", err)
		logging.Close()
		os.Exit(1)
	}
}

func (a app) run(cmd string, args []string) error {
	switch cmd {
	case "", "write":
		if cmd == "" && onboarding.NeedsOnboarding(a.cfg) && !a.hasRun() {
			a.firstRun()
		}
		return a.write()
	case "stats":
		return a.stats()
	case "report":
		return a.report(args, os.Stdout)
	case "analyze":
		return a.analyze(args)
	case "prompts":
		return a.prompts()
	case "todo":
		return a.todo()
	case "serve":
		return a.serve()
	case "onboard":
		if err := onboarding.RunOnboarding(a.cfgPath); err != nil {
			return onboarding.RunCLIOnboarding(a.cfgPath, os.Stdin, os.Stdout)
		}
		return nil
	case "help", "--help", "-h":
		printHelp()
		return nil
	default:
		fmt.Printf("Unknown command: %s\n\n", cmd)
		printHelp()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// hasRun reports whether a config file exists, meaning setup was offered before.
func (a app) hasRun() bool {
	_, err := os.Stat(a.cfgPath)
	return err == nil
}

func (a app) firstRun() {
	fmt.Println("📔 Welcome to Mood Journal!")
	fmt.Println("\nIt looks like this is your first time here.")
	fmt.Println("Would you like to set up AI features? (You can do this later with 'moodjournal onboard')")
	fmt.Print("\nPress Enter to continue or Ctrl+C to skip: ")
	fmt.Scanln()
	if err := onboarding.RunOnboarding(a.cfgPath); err != nil {
		fmt.Printf("Setup error: %v\n", err)
	}
	if !a.hasRun() {
		// Remember that setup was offered even when skipped.
		if err := a.cfg.Save(a.cfgPath); err != nil {
			logging.Warn("could not write config", "path", a.cfgPath, "error", err)
		}
	}
}

func (a app) openStore() (journal.Store, error) {
	store, err := storage.Open(a.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return store, nil
}

func (a app) write() error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	m, err := editor.New(context.Background(), editor.Options{
		Store:       store,
		SessionDir:  a.sessionDir(),
		PromptsPath: a.promptsPath(),
	})
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (a app) stats() error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	opts := statsui.Options{Entries: store, SessionDir: a.sessionDir()}
	if client, err := ai.NewClient(a.cfg.AI); err == nil {
		opts.Insighter = client
	}
	_, err = tea.NewProgram(statsui.New(opts), tea.WithAltScreen()).Run()
	return err
}

func parseRange(name string, args []string) (analytics.Range, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	raw := fs.String("range", string(analytics.Last7Days), "time window: 7days, 30days, 90days or all")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	r, ok := analytics.ParseRange(*raw)
	if !ok {
		return "", fmt.Errorf("unknown range %q", *raw)
	}
	return r, nil
}

// loadReport reads every entry and computes the report for r.
func (a app) loadReport(ctx context.Context, r analytics.Range) (analytics.Report, []journal.Entry, error) {
	store, err := a.openStore()
	if err != nil {
		return analytics.Report{}, nil, err
	}
	defer store.Close()

	history, err := store.ListEntries(ctx)
	if err != nil {
		return analytics.Report{}, nil, fmt.Errorf("list entries: %w", err)
	}
	now := time.Now()
	return analytics.Compute(history, r, now), analytics.FilterByRange(history, analytics.AllTime, now), nil
}

func (a app) report(args []string, out io.Writer) error {
	r, err := parseRange("report", args)
	if err != nil {
		return err
	}
	rep, _, err := a.loadReport(context.Background(), r)
	if err != nil {
		return err
	}
	if rep.FilteredEntries == 0 {
		fmt.Fprintf(out, "No entries in %s.\n", rep.RangeLabel)
		return nil
	}
	fmt.Fprint(out, ai.ReportSummary(rep))
	return nil
}

func (a app) aiClient() (*ai.Client, context.Context, context.CancelFunc, error) {
	client, err := ai.NewClient(a.cfg.AI)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx, cancelTimeout := context.WithTimeout(ctx, aiTimeout)
	return client, ctx, func() { cancelTimeout(); cancel() }, nil
}

func (a app) analyze(args []string) error {
	r, err := parseRange("analyze", args)
	if err != nil {
		return err
	}
	client, ctx, cancel, err := a.aiClient()
	if err != nil {
		return err
	}
	defer cancel()

	rep, recent, err := a.loadReport(ctx, r)
	if err != nil {
		return err
	}
	if rep.TotalEntries == 0 {
		return errors.New("no journal entries yet; write one first")
	}
	fmt.Println("🔍 Reflecting on your moods...")
	text, err := client.Reflect(ctx, rep, recent)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(text)
	return nil
}

func (a app) prompts() error {
	client, ctx, cancel, err := a.aiClient()
	if err != nil {
		return err
	}
	defer cancel()

	_, recent, err := a.loadReport(ctx, analytics.AllTime)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		return errors.New("no journal entries yet; write one first")
	}
	fmt.Println("✨ Generating personalized prompts...")
	prompts, err := client.Prompts(ctx, recent)
	if err != nil {
		return err
	}
	if err := ai.SavePrompts(a.promptsPath(), prompts, time.Now()); err != nil {
		return fmt.Errorf("save prompts: %w", err)
	}
	fmt.Println()
	for i, p := range prompts {
		fmt.Printf("%d. %s\n", i+1, p)
	}
	fmt.Printf("\nSaved to %s; the editor will pick from these.\n", a.promptsPath())
	return nil
}

func (a app) todo() error {
	client, ctx, cancel, err := a.aiClient()
	if err != nil {
		return err
	}
	defer cancel()

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	history, err := store.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	now := time.Now()
	recent := analytics.FilterByRange(history, analytics.AllTime, now)
	if len(recent) == 0 {
		return errors.New("no journal entries yet; write one first")
	}

	fmt.Println("📝 Looking for plans in your recent entries...")
	suggestions, err := client.SuggestReminders(ctx, recent, now)
	if err != nil {
		return err
	}
	if len(suggestions) == 0 {
		fmt.Println("\nNothing actionable found.")
		return nil
	}
	fmt.Println()
	for _, in := range suggestions {
		rem, err := store.CreateReminder(ctx, in)
		if err != nil {
			return fmt.Errorf("create reminder: %w", err)
		}
		fmt.Printf("• [%s] %s (due %s)\n", rem.Priority, rem.Title, rem.DueDate)
	}
	return nil
}

func (a app) serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	srv := api.NewServer(api.Config{Addr: a.cfg.Server.Addr, AccessLog: os.Stdout}, store)
	return srv.Run(ctx)
}
