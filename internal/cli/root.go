package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"todomatic/internal/config"
	"todomatic/internal/format"
	"todomatic/internal/ids"
	"todomatic/internal/logging"
	"todomatic/internal/todo"
	"todomatic/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	Filter     string
	LogFile    string
	LogLevel   string
	LogFormat  string
	PrettyJSON bool
	Format     string
	SeqIDs     bool
}

// session is everything a command needs after flags and config are resolved.
type session struct {
	cfg    config.Config
	store  todo.Store
	filter todo.Filter
	log    *log.Logger
	closer io.Closer
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todomatic",
		Short:        "TodoMatic: a small keyboard-first to-do list",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  todomatic

  # Start on the Active filter with a debug log
  todomatic --filter active --log-file /tmp/todomatic.log --log-level debug

  # Print the seed tasks without starting the UI
  todomatic list --filter completed --format edn
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("TODOMATIC_CONFIG", ""), "Path to config.toml (default: $XDG_CONFIG_HOME/todomatic/config.toml)")
	cmd.PersistentFlags().StringVar(&app.Filter, "filter", envOr("TODOMATIC_FILTER", ""), "Initial filter ("+strings.Join(todo.FilterNames(), "|")+")")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("TODOMATIC_LOG", ""), "Write logs to this file (default: no logging)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("TODOMATIC_LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFormat, "log-format", envOr("TODOMATIC_LOG_FORMAT", "logfmt"), "Log line format (logfmt|json)")
	cmd.PersistentFlags().BoolVar(&app.SeqIDs, "seq-ids", false, "Number generated task ids todo-1, todo-2, ... instead of random tokens")
	_ = cmd.PersistentFlags().MarkHidden("seq-ids")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TODOMATIC_FORMAT", "json"), "Output format for non-interactive commands (json|edn|text)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newFiltersCmd(app))

	return cmd
}

func runTUI(app *App) error {
	s, err := openSession(app)
	if err != nil {
		return err
	}
	defer s.closer.Close()

	s.log.Info("session started", "tasks", s.store.Len(), "filter", s.filter.String())
	err = tui.Run(tui.Options{
		Store:  s.store,
		Filter: s.filter,
		Logger: s.log,
		Theme:  s.cfg.TUI.Theme,
		Glyphs: s.cfg.TUI.Glyphs,
	})
	if err != nil {
		s.log.Error("tui exited", "err", err)
		return err
	}
	s.log.Info("session ended")
	return nil
}

// openSession resolves config, logging, the initial store and the filter.
// The --filter flag wins over the config file.
func openSession(app *App) (session, error) {
	path, err := config.Path(app.ConfigPath)
	if err != nil {
		return session{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return session{}, err
	}

	filter := cfg.Filter
	if strings.TrimSpace(app.Filter) != "" {
		f, err := todo.ParseFilter(app.Filter)
		if err != nil {
			return session{}, fmt.Errorf("--filter: %w", err)
		}
		filter = f
	}

	var jsonLogs bool
	switch strings.ToLower(strings.TrimSpace(app.LogFormat)) {
	case "", "logfmt":
	case "json":
		jsonLogs = true
	default:
		return session{}, fmt.Errorf("--log-format: unknown format %q (expected logfmt or json)", app.LogFormat)
	}
	logger, closer, err := logging.New(logging.Options{Path: app.LogFile, Level: app.LogLevel, JSON: jsonLogs})
	if err != nil {
		return session{}, err
	}

	var gen ids.Generator = ids.NewRandom(ids.DefaultPrefix)
	if app.SeqIDs {
		gen = ids.NewSequence(ids.DefaultPrefix)
	}
	logger.Debug("config loaded", "path", path, "seed", len(cfg.Tasks))

	return session{
		cfg:    cfg,
		store:  todo.NewStore(gen, cfg.SeedTasks()...),
		filter: filter,
		log:    logger,
		closer: closer,
	}, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}
