package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/ijqrs/internal/bookmarks"
	"github.com/oakwood-commons/ijqrs/internal/config"
	"github.com/oakwood-commons/ijqrs/internal/engine"
	"github.com/oakwood-commons/ijqrs/internal/panes"
	"github.com/oakwood-commons/ijqrs/internal/session"
	"github.com/oakwood-commons/ijqrs/internal/source"
	"github.com/oakwood-commons/ijqrs/internal/ui"
	"github.com/oakwood-commons/ijqrs/pkg/logger"
	"github.com/oakwood-commons/ijqrs/pkg/settings"
)

var cliParams = settings.NewCliParams()

var (
	engineBinary   string
	query          string
	bookmarksFile  string
	configFile     string
	debug          bool
	renderSnapshot bool
	startKeys      []string
	snapshotWidth  int
	snapshotHeight int
)

var (
	stdinIsPiped     = func() bool { stat, _ := os.Stdin.Stat(); return (stat.Mode() & os.ModeCharDevice) == 0 }
	openTerminalIOFn = openTerminalIO
	termGetSize      = term.GetSize
	newResizeTicker  = func(d time.Duration) resizeTicker { return realResizeTicker{Ticker: time.NewTicker(d)} }
	sendWindowSize   = func(p *tea.Program, msg tea.WindowSizeMsg) { p.Send(msg) }
	newRunner        = func(binary string, args ...string) engine.Runner { return engine.New(binary, args...) }
	runProgram       = ui.Run
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [file]",
	Short: "Compose jq queries interactively against a JSON document",
	Long: `ijqrs shows a JSON document next to the result of a jq query and re-runs the
query each time you press Enter. The document is read from FILE, or from stdin
when FILE is omitted and input is piped.

Press ? inside the dashboard for key bindings and internal commands.`,
	Example:       "\n  ijqrs data.json\n  ijqrs data.json -e '.items[0].name'\n  curl -s https://api.github.com/repos/jqlang/jq | ijqrs\n  ijqrs data.json --snapshot --press '<C-u>.name<CR>'\n",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level := cliParams.MinLogLevel
		if debug {
			level = logger.DebugLevel
		}
		lgr, err := logger.Setup(level, cliParams.LogFile)
		if err != nil {
			return err
		}
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		ctx := logger.WithLogger(cmd.Context(), lgr)
		cmd.SetContext(settings.IntoContext(ctx, cliParams))
		return nil
	},
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	lgr := logger.FromContext(ctx)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	doc, err := source.Load(path, os.Stdin, stdinIsPiped())
	if errors.Is(err, source.ErrNoInput) {
		return cmd.Help()
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := doc.Cleanup(); err != nil {
			lgr.Error(err, "removing temporary source")
		}
	}()
	cliParams.Source = settings.SourceSettings{FromStdin: doc.Temporary(), Path: doc.Path}
	cliParams.NoColor = cfg.UI.NoColor
	lgr.V(1).Info("source loaded", logger.SourceKey, doc.Path, "bytes", len(doc.Content))

	store, err := bookmarks.NewFileStore(cfg.Bookmarks.File)
	if err != nil {
		return err
	}
	list, err := panes.NewBookmarkList(store)
	if err != nil {
		return err
	}

	sizing := resolveSnapshotSize(snapshotWidth, snapshotHeight)
	m, err := ui.New(ctx, ui.Options{
		Session:    session.New(doc.Content, cfg.Query.Initial, list),
		Runner:     newRunner(cfg.Engine.Binary, cfg.Engine.Args...),
		SourcePath: doc.Path,
		EngineName: filepath.Base(cfg.Engine.Binary),
		Styles:     ui.NewStyles(cfg.UI.Theme, cfg.UI.NoColor),
		Width:      sizing.Width,
		Height:     sizing.Height,
	})
	if err != nil {
		return err
	}

	ui.ApplyStartupKeys(m, startKeys)
	if m.Quitting() {
		return m.Err()
	}
	if renderSnapshot {
		fmt.Fprintln(cmd.OutOrStdout(), m.Render())
		return nil
	}

	opts, cleanup := getProgramOptions()
	defer cleanup()
	return runProgram(m, opts...)
}

// loadConfig merges the config file with the flags set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(config.ResolvePath(configFile))
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("engine") {
		cfg.Engine.Binary = engineBinary
	}
	if flags.Changed("query") {
		cfg.Query.Initial = query
	}
	if flags.Changed("bookmarks-file") {
		cfg.Bookmarks.File = bookmarksFile
	}
	if flags.Changed("no-color") {
		cfg.UI.NoColor = cliParams.NoColor
	}
	return cfg, cfg.Validate()
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "path to a YAML config file (default $XDG_CONFIG_HOME/ijqrs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&cliParams.LogFile, "log-file", "", "append JSON logs to this file (logs are discarded when unset)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")

	rootCmd.Flags().StringVar(&engineBinary, "engine", "", "jq-compatible binary to run queries with (default from config: jq)")
	rootCmd.Flags().StringVarP(&query, "query", "e", "", "initial query (default from config: .|keys)")
	rootCmd.Flags().StringVar(&bookmarksFile, "bookmarks-file", "", "bookmark file (default $XDG_CONFIG_HOME/ijqrs/bookmarks)")
	rootCmd.Flags().BoolVar(&cliParams.NoColor, "no-color", false, "disable colors (reverse video is kept for the cursor and highlights)")
	rootCmd.Flags().StringArrayVar(&startKeys, "press", nil, "Simulate keys on startup. Use <Key> for special keys (e.g. <CR>, <Esc>, <C-w>, <F1>). Literal text types normally. Example: --press '<C-u>.items[0]<CR>'")
	rootCmd.Flags().BoolVar(&renderSnapshot, "snapshot", false, "render a single frame to stdout and exit; honors --width/--height")
	rootCmd.Flags().IntVar(&snapshotWidth, "width", 0, "frame width in columns (default: terminal width)")
	rootCmd.Flags().IntVar(&snapshotHeight, "height", 0, "frame height in rows (default: terminal height)")

	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
