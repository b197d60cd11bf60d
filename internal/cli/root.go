package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/mytodo/internal/todo"
	"github.com/Makepad-fr/mytodo/internal/tui"
	"github.com/Makepad-fr/mytodo/internal/ui"
)

type App struct {
	Theme      string
	NoColor    bool
	ForceColor bool
	LogFile    string
	LogLevel   string
	Seed       []string

	clip     todo.Clipboard
	logger   *slog.Logger
	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	app := &App{
		clip:   todo.ClipboardFunc(clipboard.WriteAll),
		logger: discardLogger(),
	}

	cmd := &cobra.Command{
		Use:           "mytodo",
		Short:         "A small in-memory todo list for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  mytodo

  # Start with a couple of items
  mytodo --add "Buy milk" --add "Call mom"

  # Drive a session from a script
  printf 'add Buy milk\ndone 1\nls\n' | mytodo batch
`),
		RunE: app.logged(func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		}),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := ui.SetTheme(app.Theme); err != nil {
			return usageError{msg: err.Error()}
		}
		ui.SetColorForcing(app.ForceColor, app.NoColor)

		l, closeLog, err := openLogger(app.LogFile, app.LogLevel)
		if err != nil {
			return err
		}
		app.logger = l
		app.closeLog = closeLog
		l.Info("start", "command", cmd.CommandPath(), "theme", ui.Current().Name)
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Theme, "theme", envOr("MYTODO_THEME", "classic"), "Color theme (classic|neon|mono)")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", envOr("NO_COLOR", "") != "", "Disable colors")
	cmd.PersistentFlags().BoolVar(&app.ForceColor, "force-color", false, "Force colors even when not writing to a terminal")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("MYTODO_LOG", ""), "Write JSON logs to this file")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("MYTODO_LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringArrayVar(&app.Seed, "add", nil, "Add an item at start (repeatable, not saved)")

	cmd.AddCommand(newBatchCmd(app))

	return cmd
}

func newBatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Run list commands from a file or stdin without the TUI",
		Long:  "Run list commands from a file or stdin without the TUI.\n\n" + helpText(),
		Args:  cobra.MaximumNArgs(1),
		RunE: app.logged(func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			r := app.newRunner(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if code := r.RunScript(in); code != 0 {
				return exitError{code: code}
			}
			return nil
		}),
	}
}

// logged wraps run so the log gets its "stop" record and is closed whether
// or not run fails. Cobra skips post-run hooks after a RunE error.
func (app *App) logged(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if cerr := app.finish(cmd, err); err == nil {
				err = cerr
			}
		}()
		return run(cmd, args)
	}
}

func (app *App) finish(cmd *cobra.Command, runErr error) error {
	if app.closeLog == nil {
		return nil
	}
	if runErr != nil {
		app.logger.Error("command failed", "command", cmd.CommandPath(), "err", runErr)
	}
	app.logger.Info("stop", "command", cmd.CommandPath())
	closeLog := app.closeLog
	app.closeLog = nil
	app.logger = discardLogger()
	if err := closeLog(); err != nil {
		return fmt.Errorf("close log: %w", err)
	}
	return nil
}

func runTUI(app *App) error {
	h := tui.NewHost()
	return tui.Run(app.newSession(h), h, app.clip)
}

// newSession starts an empty list on h, seeded from --add.
func (app *App) newSession(h todo.Host) *todo.Session {
	s := todo.NewSession(h, todo.WithLogger(app.logger))
	s.Seed(app.Seed...)
	return s
}

func (app *App) newRunner(out, errOut io.Writer) *Runner {
	r := &Runner{out: out, err: errOut, clip: app.clip, log: app.logger}
	r.sess = app.newSession(lineHost{out: out})
	return r
}

// Execute runs the root command and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var ee exitError
	if !errors.As(err, &ee) {
		ui.Fail(stderr, err.Error())
	}
	return exitCode(err)
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func helpText() string {
	var b strings.Builder
	PrintHelp(&b)
	return b.String()
}
