package ui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/twine/internal/config"
	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/dateutil"
	"github.com/javiermolinar/twine/internal/di"
	"github.com/javiermolinar/twine/internal/di/providers"
	"github.com/javiermolinar/twine/internal/drag"
	"github.com/javiermolinar/twine/internal/grid"
	"github.com/javiermolinar/twine/internal/logger"
	"github.com/javiermolinar/twine/internal/planner"
	"github.com/javiermolinar/twine/internal/tags"
	"github.com/javiermolinar/twine/internal/tui"
	"github.com/javiermolinar/twine/internal/validation"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// ErrBlockNotFound is returned by commands given an id that matches no block.
var ErrBlockNotFound = errors.New("block not found")

// App holds the CLI application state.
type App struct {
	settings providers.Settings
	injector *do.RootScope
	owned    bool // injector was created here and is shut down by Close
	root     *cobra.Command

	now      func() time.Time
	copyText func(string) error
	runBoard func(tui.Deps) error
}

// Option configures an App.
type Option func(*App)

// WithInjector makes the app use an existing container instead of building one.
func WithInjector(injector *do.RootScope) Option {
	return func(a *App) { a.injector = injector }
}

// WithClock sets the clock used to resolve relative dates.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(copyText func(string) error) Option {
	return func(a *App) { a.copyText = copyText }
}

// NewApp creates a new CLI application.
func NewApp(opts ...Option) *App {
	a := &App{
		now:      time.Now,
		copyText: clipboard.WriteAll,
		runBoard: tui.Run,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "twine",
		Short: "Plan social content on a four-week board",
		Long: `Twine schedules content blocks (text, creative, recycled and flexible posts)
into morning, afternoon and evening slots over a four-week grid.

Run without arguments to open the board. Drag blocks onto each other to swap
them, or onto an empty slot to move them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.bootstrap(cmd == a.root)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runBoard(a.boardDeps())
		},
	}

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.settings.ConfigPath, "config", "", "Config file (default ~/.config/twine/config.toml)")
	flags.BoolVar(&a.settings.Ephemeral, "ephemeral", false, "Keep everything in memory for this run")
	flags.BoolVar(&a.settings.Debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&a.settings.NoColor, "no-color", false, "Disable color output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.doneCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.dragCmd())
	a.root.AddCommand(a.clearCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.copyCmd())
	a.root.AddCommand(a.seedCmd())
	a.root.AddCommand(a.tagsCmd())

	return a
}

// bootstrap builds the container on first use.
func (a *App) bootstrap(board bool) error {
	if a.settings.NoColor {
		DisableColor()
	}
	if a.injector != nil {
		return nil
	}
	a.settings.TUI = board
	a.injector = di.NewContainer(a.settings)
	a.owned = true
	return di.Bootstrap(a.injector)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "twine %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// SetArgs overrides the command-line arguments.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects command output and errors.
func (a *App) SetOutput(w io.Writer) {
	a.root.SetOut(w)
	a.root.SetErr(w)
}

// Close shuts down the container if this app created it.
func (a *App) Close() error {
	if a.injector == nil || !a.owned {
		return nil
	}
	return di.Shutdown(a.injector)
}

func (a *App) config() *config.Config {
	return do.MustInvoke[*config.Config](a.injector)
}

func (a *App) store() *planner.Store {
	return do.MustInvoke[*planner.Store](a.injector)
}

func (a *App) tags() *tags.Store {
	return do.MustInvoke[*tags.Store](a.injector)
}

func (a *App) validator() *validation.Validator {
	return do.MustInvoke[*validation.Validator](a.injector)
}

func (a *App) coordinator() *drag.Coordinator {
	return do.MustInvoke[*drag.Coordinator](a.injector)
}

func (a *App) log() *logger.Logger {
	return do.MustInvoke[*logger.Logger](a.injector)
}

func (a *App) boardDeps() tui.Deps {
	return tui.Deps{
		Config:      a.config(),
		Store:       a.store(),
		Tags:        a.tags(),
		Cache:       do.MustInvoke[*grid.Cache](a.injector),
		Coordinator: a.coordinator(),
		Log:         a.log().Logger,
		Now:         a.now,
		Start:       a.boardStart(),
		Copy:        a.copyText,
	}
}

// today returns the current calendar day.
func (a *App) today() time.Time {
	return dateutil.Day(a.now())
}

// boardStart returns the configured first day of the board, or today.
func (a *App) boardStart() time.Time {
	if d := a.config().Planner.StartDate; d != "" {
		if t, err := dateutil.ParseDay(d); err == nil {
			return t
		}
	}
	return a.today()
}

// mustFind returns block id or ErrBlockNotFound.
func (a *App) mustFind(id string) (content.Block, error) {
	b, ok := a.store().BlockByID(id)
	if !ok {
		return content.Block{}, fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	return b, nil
}
