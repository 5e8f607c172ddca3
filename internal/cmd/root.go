package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"sdr/internal/bugstorage/filesystem"
	"sdr/internal/config"
	"sdr/internal/dispatch"
	"sdr/internal/logging"
	"sdr/internal/tracker"
	"sdr/internal/ui"

	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use, after the option
// pass has applied its overrides to Config.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	resolveOnce sync.Once
	printer     *ui.Printer

	// Captured before dispatch; option handlers modify Config.
	Config  config.Config
	WorkDir string
	Out     io.Writer
	Err     io.Writer
	Logger  *slog.Logger
}

// Settings returns the configuration with the acting user and database path
// filled in from the workspace when no option, variable or file set them.
func (p *AppProvider) Settings() config.Config {
	p.resolveOnce.Do(func() {
		p.Config.ResolveDefaults(p.WorkDir)
	})
	return p.Config
}

// Printer returns the printer for standard output.
func (p *AppProvider) Printer() *ui.Printer {
	if p.printer != nil {
		return p.printer
	}
	cfg := p.Settings()
	opts := []ui.PrinterOption{ui.WithLogger(p.logger())}
	if cfg.Speak {
		opts = append(opts, ui.WithSpeaker(ui.CommandSpeaker{Command: cfg.SpeakCommand}))
	}
	p.printer = ui.NewPrinter(p.out(), ui.ShouldColor(p.out(), string(cfg.Color)), opts...)
	return p.printer
}

// Get returns the App, opening the bug database on first call.
func (p *AppProvider) Get(ctx context.Context) (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init(ctx)
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a test App.
func NewTestProvider(app *App) *AppProvider {
	p := &AppProvider{
		app:     app,
		printer: app.Printer,
		Config:  app.Config,
		WorkDir: app.WorkDir,
		Out:     app.Out,
		Err:     app.Err,
		Logger:  app.Logger,
	}
	p.resolveOnce.Do(func() {})
	return p
}

func (p *AppProvider) init(ctx context.Context) (*App, error) {
	cfg := p.Settings()
	logger := p.logger()

	store := filesystem.New(cfg.DBPath, filesystem.WithLogger(logger))
	tr, err := tracker.Open(ctx, store, cfg.User, tracker.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	app := &App{
		Tracker: tr,
		Config:  cfg,
		Printer: p.Printer(),
		Logger:  logger,
		WorkDir: p.WorkDir,
		Out:     p.out(),
		Err:     p.errOut(),
	}

	if repairs := tr.Repairs(); len(repairs) > 0 {
		app.Printer.Warn("Warning: Found duplicate bug IDs, new IDs were assigned")
		for _, r := range repairs {
			app.Printer.PrintBug(r.Bug)
		}
	}
	return app, nil
}

func (p *AppProvider) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p *AppProvider) errOut() io.Writer {
	if p.Err == nil {
		return os.Stderr
	}
	return p.Err
}

func (p *AppProvider) logger() *slog.Logger {
	if p.Logger == nil {
		p.Logger = logging.New(p.errOut(), p.Config.Debug || logging.DebugFromEnv())
	}
	return p.Logger
}

// Execute runs the CLI.
func Execute() error {
	cfg, err := config.Load(config.DefaultDir())
	if err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot get current directory: %w", err)
	}

	provider := &AppProvider{
		Config:  cfg,
		WorkDir: wd,
		Out:     os.Stdout,
		Err:     os.Stderr,
	}
	return newRootCmd(provider).Execute()
}

// newRootCmd creates the root command. Flag parsing is disabled: options and
// commands are matched by the dispatch tables so options may appear anywhere.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sdr [command] [arguments] [options]",
		Short: "Short Distance Runner, a bug tracker that lives in your checkout",
		Long: `Short Distance Runner keeps a list of bugs in sdr_db.yaml, found by searching
upward from the current directory. Run "sdr help" for the list of commands.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newDispatcher(provider).Run(cmd.Context(), args)
		},
	}
	rootCmd.SetOut(provider.out())
	rootCmd.SetErr(provider.errOut())
	return rootCmd
}

// newDispatcher builds the option and command tables.
func newDispatcher(provider *AppProvider) *dispatch.Dispatcher {
	d := &dispatch.Dispatcher{
		Options: newOptionTable(provider),
		Err:     provider.errOut(),
		Strict:  provider.Config.Strict,
	}
	d.Commands = dispatch.Table{
		newListCmd(provider),
		newFindCmd(provider),
		newFstatCmd(provider),
		newAddCmd(provider),
		newStatCmd(provider),
		newPrioCmd(provider),
		newNoteCmd(provider),
		newShowCmd(provider),
		newMkusrCmd(provider),
		newUserCmd(provider),
		newUpdateCmd(provider),
		newVersionCmd(provider),
		newHelpCmd(provider, d),
	}
	return d
}
