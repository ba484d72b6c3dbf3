package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/knightpath/bfs"
	"github.com/katalvlaran/knightpath/internal/config"
	"github.com/katalvlaran/knightpath/internal/logging"
	"github.com/katalvlaran/knightpath/internal/metrics"
	"github.com/katalvlaran/knightpath/internal/render"
	"github.com/katalvlaran/knightpath/internal/service"
	"github.com/katalvlaran/knightpath/knight"
)

// app is the state shared by all subcommands once the root pre-run finishes.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Collector
	svc     *service.Service
}

// flags holds persistent flag values.
type flags struct {
	configPath string
	logLevel   string
	notation   string
	policy     string
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	var (
		f flags
		a = &app{}
	)

	root := &cobra.Command{
		Use:          "knightpath",
		Short:        "Shortest knight paths on an 8×8 chessboard",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, f)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&f.notation, "notation", "", "square labels: coords or algebraic")
	pf.StringVar(&f.policy, "policy", "", "BFS visit marking: enqueue or dequeue")

	root.AddCommand(
		pathCmd(a),
		movesCmd(a),
		reachCmd(a),
		tableCmd(a),
		serveCmd(a),
	)

	return root
}

// setup loads configuration, applies flag overrides and wires the service.
func (a *app) setup(cmd *cobra.Command, f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("notation") {
		cfg.Notation = f.notation
	}
	if cmd.Flags().Changed("policy") {
		cfg.VisitPolicy = f.policy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	policy, err := bfs.ParseVisitPolicy(cfg.VisitPolicy)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics.Namespace)
	}

	a.cfg = cfg
	a.logger = logger
	a.metrics = collector
	a.svc = service.New(knight.NewGraph(), policy, logger, collector)
	logger.Debug("configured",
		zap.String("environment", cfg.Environment),
		zap.String("notation", cfg.Notation),
		zap.String("policy", policy.String()),
	)

	return nil
}

// renderer returns a Renderer bound to the command's stdout.
func (a *app) renderer(cmd *cobra.Command) (*render.Renderer, error) {
	n, err := render.ParseNotation(a.cfg.Notation)
	if err != nil {
		return nil, fmt.Errorf("notation: %w", err)
	}

	return render.New(cmd.OutOrStdout(), n), nil
}
