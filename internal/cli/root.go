package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/notepad/internal/config"
	"github.com/idilsaglam/notepad/internal/errs"
	"github.com/idilsaglam/notepad/internal/logging"
	"github.com/idilsaglam/notepad/internal/notepad"
	"github.com/idilsaglam/notepad/internal/store/backend"
	"github.com/idilsaglam/notepad/internal/tui"
	"github.com/idilsaglam/notepad/internal/ui"
)

// app carries what every subcommand needs once the root pre-run has wired it.
type app struct {
	// root flags
	cfgPath string
	dataDir string
	backend string
	theme   string
	noColor bool
	verbose bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg config.Config
	log *zap.Logger
	kv  backend.KV
	np  *notepad.Notepad
}

// Run executes the CLI and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	return run(context.Background(), args, os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut}
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if err != nil {
		ui.Fail(errOut, errs.MessageOf(err))
	}
	return errs.ExitCode(err)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "notepad",
		Short: "A small notepad for the terminal",
		Long: `notepad keeps short text notes and a preferred text size.
Run it without a subcommand for the interactive editor, or script it with the subcommands below.
Notes are referred to by their 1-based position from "notepad ls", their id, or a unique id prefix.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errs.New(errs.InvalidArgument, fmt.Sprintf("unknown command %q, see notepad --help", args[0]))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context(), cmd.Name() == "tui" || !cmd.HasParent())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errs.Wrap(errs.InvalidArgument, "flags", err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default <data-dir>/config.yaml)")
	pf.StringVar(&a.dataDir, "data-dir", "", "directory holding notes and config (default ~/.notepad)")
	pf.StringVar(&a.backend, "backend", "", "storage backend: file, sqlite, s3 or memory")
	pf.StringVar(&a.theme, "theme", "", "output theme: classic, neon or mono")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.newCmd(),
		a.listCmd(),
		a.showCmd(),
		a.renameCmd(),
		a.editCmd(),
		a.rmCmd(),
		a.fontCmd(),
		a.tuiCmd(),
	)
	return root
}

// setup loads config, builds the logger, opens storage and loads the notepad.
// Interactive sessions log to a file so the alternate screen stays clean.
func (a *app) setup(ctx context.Context, interactive bool) error {
	path := a.cfgPath
	if path == "" && a.dataDir != "" {
		path = config.DefaultPath(a.dataDir)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return errs.Wrap(errs.InvalidArgument, "config", err)
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	if a.backend != "" {
		cfg.Backend = a.backend
	}
	if a.theme != "" {
		cfg.Theme = a.theme
	}
	if a.noColor {
		cfg.NoColor = true
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if interactive && cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "notepad.log")
	}
	if err := cfg.Validate(); err != nil {
		return errs.Wrap(errs.InvalidArgument, "config", err)
	}
	a.cfg = cfg

	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		ui.SetColorForcing(false, true)
	}

	a.log, err = logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return errs.Wrap(errs.InvalidArgument, "logging", err)
	}

	a.kv, err = backend.Open(ctx, cfg)
	if err != nil {
		return errs.Wrap(errs.Unavailable, "storage", err)
	}
	a.log.Debug("storage opened", zap.String("backend", cfg.Backend), zap.String("data_dir", cfg.DataDir))

	a.np = notepad.Open(ctx, a.kv, notepad.WithLogger(a.log))
	return nil
}

func (a *app) close() {
	if a.kv != nil {
		if err := a.kv.Close(); err != nil && a.log != nil {
			a.log.Warn("close storage", zap.Error(err))
		}
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// persisted turns a pending write failure into a command error.
func (a *app) persisted() error {
	if err := a.np.Err(); err != nil {
		return errs.Wrap(errs.Unavailable, "changes were not saved", err)
	}
	return nil
}

func (a *app) runTUI(ctx context.Context) error {
	if err := tui.Run(ctx, a.np, a.log); err != nil {
		return errs.Wrap(errs.Unavailable, "interactive session", err)
	}
	return nil
}

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive editor (the default)",
		Args:  exactArgs(0, "notepad tui"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},
	}
}

// exactArgs is cobra.ExactArgs with a usage error code.
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errs.New(errs.InvalidArgument, "usage: "+usage)
		}
		return nil
	}
}

// minArgs is cobra.MinimumNArgs with a usage error code.
func minArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return errs.New(errs.InvalidArgument, "usage: "+usage)
		}
		return nil
	}
}
