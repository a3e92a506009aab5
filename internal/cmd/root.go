package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"multiselect/internal/combo"
	"multiselect/internal/config"
	"multiselect/internal/format"
	"multiselect/internal/ui"
)

// ErrCancelled is returned when the user leaves without confirming
var ErrCancelled = errors.New("selection cancelled")

var errNoItems = errors.New("no items to select from: pass them as arguments, --items-file or in the config file")

// NewRootCmd builds the multiselect command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "multiselect [items...]",
		Short: "Pick several items from a list in the terminal",
		Long: `multiselect shows a dropdown list with a checkbox per item and prints the
checked items when you confirm. Items come from the arguments, from an items
file (one per line, "text<TAB>data" to attach data) and from the config file.`,
		Example: `
# Pick from arguments
multiselect Apple Banana Cherry

# Read items from stdin, print the data of checked items
printf 'Apple\tAPL\nBanana\tBAN\n' | multiselect --items-file -

# Print one joined line, shortened display after two items
multiselect --joined --summary leading --summary-threshold 2 a b c d
  `,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runRoot,
	}

	f := root.Flags()
	f.StringP("config", "c", "", "Config file (default "+config.DefaultPath()+")")
	f.StringP("items-file", "f", "", `Read items from file, "-" for stdin`)
	f.String("output", "data", `What to print for checked items: "data" or "text"`)
	f.String("display", "data", `What the field shows: "data" or "text"`)
	f.String("delimiter", ",", "Delimiter between displayed values")
	f.Bool("select-all", false, "Show a Select All entry")
	f.String("select-all-text", combo.DefaultSelectAllText, "Label of the Select All entry")
	f.String("placeholder", "", "Text shown while nothing is selected")
	f.Int("max", 0, "Maximum number of checked items (0 = unlimited)")
	f.Bool("close-on-select", false, "Close the list after each toggle")
	f.Bool("no-duplicates", false, "Skip items whose text or data is already present")
	f.String("summary", "none", `Shorten long selections: "none", "leading" or "count"`)
	f.Int("summary-threshold", 0, "Number of values shown before summarising")
	f.BoolP("joined", "j", false, "Print the joined text instead of one value per line")
	f.String("log-file", "", "Log file (default "+defaultLogPath()+")")
	f.BoolP("debug", "d", false, "Debug logging")

	root.AddCommand(newInitCmd())
	return root
}

// Execute runs the CLI and exits non-zero on error or cancel
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, ErrCancelled) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	debug, _ := flags.GetBool("debug")
	logPath, _ := flags.GetString("log-file")
	if logPath == "" {
		logPath = defaultLogPath()
	}
	closeLog := setupLogging(logPath, debug)
	defer closeLog()

	sched := ui.NewTeaScheduler()
	ctrl, err := buildControl(cmd, args, sched)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	model := ui.NewModel(ctrl, sched)
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.ErrOrStderr()))
	model.SetProgram(p)

	slog.Info("Starting UI", "items", ctrl.Count())
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			slog.Info("UI interrupted", "error", err)
			return ErrCancelled
		}
		slog.Error("TUI run error", "error", err)
		return fmt.Errorf("failed to run program: %w", err)
	}

	res := model.Result()
	if !res.Confirmed {
		return ErrCancelled
	}
	joined, _ := flags.GetBool("joined")
	return writeResult(cmd.OutOrStdout(), res, joined)
}

// buildControl loads the config, applies flag overrides and items, and
// creates the control
func buildControl(cmd *cobra.Command, args []string, sched *ui.TeaScheduler) (*combo.MultiSelect, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	for _, arg := range args {
		cfg.Items = append(cfg.Items, config.ItemConfig{Text: arg})
	}
	if path, _ := cmd.Flags().GetString("items-file"); path != "" {
		items, err := readItemsFile(path, cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		cfg.Items = append(cfg.Items, items...)
	}

	ctrl := combo.New(combo.WithScheduler(sched))
	if err := cfg.Apply(ctrl); err != nil {
		ctrl.Close()
		return nil, err
	}
	if ctrl.Count() == 0 {
		ctrl.Close()
		return nil, errNoItems
	}
	return ctrl, nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.NewConfigService().LoadFromPath(path)
	}
	return config.NewConfigService().Load()
}

// applyFlags overrides config values with flags the user actually set
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	str := func(name string, dst *string) {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}
	num := func(name string, dst *int) {
		if f.Changed(name) {
			*dst, _ = f.GetInt(name)
		}
	}

	str("output", &cfg.Control.OutputType)
	str("display", &cfg.Control.DisplayType)
	str("delimiter", &cfg.Delimiter.Symbol)
	str("select-all-text", &cfg.Control.SelectAllText)
	str("placeholder", &cfg.Control.Placeholder)
	str("summary", &cfg.Summary.Mode)
	num("max", &cfg.Control.MaxSelection)
	num("summary-threshold", &cfg.Summary.Threshold)
	if f.Changed("select-all") {
		cfg.Control.SelectAll, _ = f.GetBool("select-all")
	}
	if f.Changed("close-on-select") {
		cfg.Control.CloseOnSelect, _ = f.GetBool("close-on-select")
	}
	if f.Changed("no-duplicates") {
		noDup, _ := f.GetBool("no-duplicates")
		cfg.Control.Duplicates = !noDup
	}
	return cfg.Validate()
}

// writeResult prints the joined text or one value per line
func writeResult(w io.Writer, res ui.Result, joined bool) error {
	if joined {
		_, err := fmt.Fprintln(w, res.Text)
		return err
	}
	for _, v := range res.Data {
		if _, err := fmt.Fprintln(w, format.Stringify(v)); err != nil {
			return err
		}
	}
	return nil
}
