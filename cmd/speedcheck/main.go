// Package main provides the CLI entrypoint for speedcheck.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/speedcheck/internal/config"
	"github.com/verte-zerg/speedcheck/internal/generator"
	"github.com/verte-zerg/speedcheck/internal/model"
	"github.com/verte-zerg/speedcheck/internal/stats"
	"github.com/verte-zerg/speedcheck/internal/tui"
	"github.com/verte-zerg/speedcheck/internal/wordlist"
)

const (
	defaultLang        = "en"
	defaultWordsPerRow = 4
	defaultVisibleRows = 3
	defaultDuration    = 60
	defaultTickMs      = 1000
	defaultCaps        = 0.0
	defaultPunct       = 0.0
)

const defaultPunctSet = ".,!?;:"

var (
	practiceLang        string
	practiceWordList    string
	practiceWordsPerRow int
	practiceVisibleRows int
	practiceDuration    int
	practiceTickMs      int
	practiceCaps        float64
	practicePunct       float64
	practicePunctSet    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "speedcheck",
		Short:         "Timed typing speed check",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "language code of the word list")
	rootCmd.Flags().StringVar(&practiceWordList, "wordlist", "", "path to a word list file (overrides --lang lookup)")
	rootCmd.Flags().IntVar(&practiceWordsPerRow, "words-per-row", defaultWordsPerRow, "words in each row")
	rootCmd.Flags().IntVar(&practiceVisibleRows, "visible-rows", defaultVisibleRows, "rows shown at once")
	rootCmd.Flags().IntVar(&practiceDuration, "duration", defaultDuration, "countdown length in ticks")
	rootCmd.Flags().IntVar(&practiceTickMs, "tick-ms", defaultTickMs, "length of one tick in milliseconds")
	rootCmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyStringConfig(cmd, "wordlist", &practiceWordList, fileCfg.Practice.WordList)
	applyIntConfig(cmd, "words-per-row", &practiceWordsPerRow, fileCfg.Practice.WordsPerRow)
	applyIntConfig(cmd, "visible-rows", &practiceVisibleRows, fileCfg.Practice.VisibleRows)
	applyIntConfig(cmd, "duration", &practiceDuration, fileCfg.Practice.Duration)
	applyIntConfig(cmd, "tick-ms", &practiceTickMs, fileCfg.Practice.TickMs)
	applyFloatConfig(cmd, "caps", &practiceCaps, fileCfg.Practice.CapsPct)
	applyFloatConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctPct)
	applyStringConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Practice.PunctSet)

	if practiceTickMs < 1 {
		return fmt.Errorf("--tick-ms must be >= 1")
	}
	cfg := model.Config{
		Lang:        practiceLang,
		WordList:    practiceWordList,
		WordsPerRow: practiceWordsPerRow,
		VisibleRows: practiceVisibleRows,
		Duration:    practiceDuration,
		Tick:        time.Duration(practiceTickMs) * time.Millisecond,
		CapsPct:     practiceCaps,
		PunctPct:    practicePunct,
		PunctSet:    practicePunctSet,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	words, err := loadWords(cfg)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("speedcheck needs an interactive terminal")
	}

	gen := generator.New(words, generator.Options{
		CapsPct:  cfg.CapsPct,
		PunctPct: cfg.PunctPct,
		PunctSet: []rune(cfg.PunctSet),
	})
	m, err := tui.NewModel(cfg, gen)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := m.Err(); err != nil {
		return err
	}
	if err := stats.RenderSummary(cmd.OutOrStdout(), m.Summary()); err != nil {
		logErrf("failed to write summary: %v\n", err)
	}
	return nil
}

func loadWords(cfg model.Config) ([]string, error) {
	filter := wordlist.FilterForLang(cfg.Lang)
	if cfg.WordList != "" {
		words, err := wordlist.LoadWords(cfg.WordList, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", cfg.WordList, err)
		}
		return words, nil
	}
	path := config.DefaultWordListPath(cfg.Lang)
	words, err := wordlist.LoadWords(path, filter)
	if err == nil {
		return words, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	if strings.ToLower(cfg.Lang) != defaultLang {
		return nil, wordListLoadError(cfg.Lang, path, err)
	}
	logErrf("word list %s not found, using embedded list\n", path)
	return wordlist.Default()
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available word list languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	langs, err := listLangs(config.DefaultWordListDir())
	if err != nil {
		return err
	}
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// listLangs returns the languages with a word list in dir. English is always
// available through the embedded list.
func listLangs(dir string) ([]string, error) {
	seen := map[string]struct{}{defaultLang: {}}
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		seen[strings.TrimSuffix(name, ".txt")] = struct{}{}
	}
	langs := make([]string, 0, len(seen))
	for lang := range seen {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# speedcheck configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lang = %q             # Language code
# wordlist = ""           # Word list file; empty means wordlists/<lang>.txt
# words-per-row = %d       # Words in each row
# visible-rows = %d        # Rows shown at once
# duration = %d           # Countdown length in ticks
# tick-ms = %d          # Length of one tick in milliseconds
# caps = %.2f             # Probability of capitalized first letter (0-1)
# punct = %.2f            # Punctuation probability per word (0-1)
# punct-set = %q      # Punctuation set
`,
		defaultLang,
		defaultWordsPerRow,
		defaultVisibleRows,
		defaultDuration,
		defaultTickMs,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.WordsPerRow < 1 {
		return fmt.Errorf("--words-per-row must be >= 1")
	}
	if cfg.VisibleRows < 2 {
		return fmt.Errorf("--visible-rows must be >= 2")
	}
	if cfg.Duration < 1 {
		return fmt.Errorf("--duration must be >= 1")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func wordListLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		fmt.Sprintf("language %q not found", lang),
		"Run: speedcheck langs",
		"Or pass an explicit file: speedcheck --wordlist <path>",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

var errOut io.Writer = os.Stderr

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(errOut, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
