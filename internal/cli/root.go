// Package cli implements the todo command tree.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todos/internal/app"
	"github.com/idilsaglam/todos/internal/config"
	"github.com/idilsaglam/todos/internal/logging"
	"github.com/idilsaglam/todos/internal/tui"
	"github.com/idilsaglam/todos/internal/ui"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// rootFlags are the persistent flags; env is what PersistentPreRunE builds
// from them.
type rootFlags struct {
	configPath string
	theme      string
	logFile    string
	noColor    bool
	forceColor bool
}

type env struct {
	cfg      *config.Config
	log      *slog.Logger
	closeLog func() error
}

// newRootCmd builds the command tree. The returned env is filled in by
// PersistentPreRunE; run tears it down whether or not the command failed.
func newRootCmd() (*cobra.Command, *env) {
	var (
		flags rootFlags
		e     = &env{}
	)

	root := &cobra.Command{
		Use:           "todo",
		Short:         "todo - a tiny in-memory todo list",
		Long:          "todo keeps a todo list in memory for the life of the process.\nRun without arguments for the interactive list.",
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e.log.Info("starting app")
			sess := app.NewSession(e.log)
			sess.Subscribe(func(snap app.Snapshot) {
				e.log.Debug("snapshot", "view", snap.View.String(), "todos", len(snap.Todos))
			})
			return tui.Run(sess, tui.Options{CharLimit: e.cfg.UI.CharLimit})
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/todos/config.toml)")
	pf.StringVar(&flags.theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&flags.logFile, "log-file", "", "append JSON logs to this file")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colors")
	pf.BoolVar(&flags.forceColor, "force-color", false, "force colors even when not a terminal")

	root.AddCommand(newReplayCmd(e))
	root.AddCommand(newVersionCmd())
	return root, e
}

func (e *env) setup(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("theme") {
		cfg.UI.Theme = flags.theme
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = flags.logFile
	}

	ui.SetTheme(cfg.UI.Theme)
	ui.SetColorForcing(flags.forceColor, flags.noColor)

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log, closeLog, err := logging.New(cfg.Log.File, level)
	if err != nil {
		return err
	}
	e.cfg, e.log, e.closeLog = cfg, log, closeLog
	return nil
}

// teardown closes the log file at most once.
func (e *env) teardown() error {
	if e.closeLog == nil {
		return nil
	}
	closeLog := e.closeLog
	e.closeLog = nil
	if err := closeLog(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

// Main runs the CLI with os.Args and returns the process exit code.
func Main() int {
	root, e := newRootCmd()
	return run(root, e, nil)
}

func run(root *cobra.Command, e *env, args []string) int {
	if args != nil {
		root.SetArgs(args)
	}
	err := root.Execute()
	if cerr := e.teardown(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil {
		return exitOK
	}
	ui.Fail(root.ErrOrStderr(), err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(root.ErrOrStderr(), ui.Current().Muted.Render("Run `todo --help` for usage."))
		return exitUsage
	}
	return exitError
}
