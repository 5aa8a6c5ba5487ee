package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/tizhi/internal/app"
	"github.com/abhisek/tizhi/internal/config"
	"github.com/abhisek/tizhi/internal/logging"
)

// globals carries what the persistent flags resolve to. Each command tree
// gets its own so tests can build fresh ones.
type globals struct {
	configPath string
	logLevel   string
	logFile    string

	cfg     *config.Config
	log     *zap.Logger
	cleanup func()
}

// setup loads configuration and builds the logger. The TUI owns the
// terminal, so it only logs when a log file is configured; other commands
// log to stderr.
func (g *globals) setup(cmd *cobra.Command, tui bool) error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFile != "" {
		cfg.Log.File = g.logFile
	}

	fallback := cmd.ErrOrStderr()
	if tui {
		fallback = nil
	}
	log, cleanup, err := logging.New(cfg.Log, fallback)
	if err != nil {
		return err
	}

	g.cfg, g.log, g.cleanup = cfg, log.With(zap.String("command", cmd.Name())), cleanup
	g.log.Debug("configuration loaded",
		zap.String("default_sex", cfg.Respondent.DefaultSex),
		zap.String("format", cfg.Output.Format),
		zap.Int("workers", cfg.Score.Workers))
	return nil
}

func (g *globals) close() {
	if g.cleanup != nil {
		g.cleanup()
		g.cleanup = nil
	}
}

func newRootCmd() (*cobra.Command, *globals) {
	g := &globals{}

	root := &cobra.Command{
		Use:   "tizhi",
		Short: "TCM body constitution self-assessment",
		Long: "Tizhi scores the nine-constitution (中医体质) questionnaire.\n" +
			"Run without a subcommand to answer it in the terminal.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd, cmd == cmd.Root())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			g.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				Config: g.cfg,
				Logger: g.log,
			})
		},
	}

	root.PersistentFlags().StringVar(&g.configPath, "config", "",
		fmt.Sprintf("config file (default %s, overridden by %s* env vars)", defaultConfigHint(), config.EnvPrefix))
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&g.logFile, "log-file", "", "append logs to this file")

	root.AddCommand(
		newQuestionsCmd(g),
		newScoreCmd(g),
		newTemplateCmd(g),
		newVersionCmd(),
	)
	return root, g
}

func defaultConfigHint() string {
	p, err := config.DefaultPath()
	if err != nil {
		return "$XDG_CONFIG_HOME/tizhi/config.yaml"
	}
	return p
}

// Execute runs the command line until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, g := newRootCmd()
	defer g.close()
	return root.ExecuteContext(ctx)
}
