// Package cmd contains the stepgraph command tree.
package cmd

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/stepgraph/internal/config"
	"github.com/katalvlaran/stepgraph/internal/engine"
	"github.com/katalvlaran/stepgraph/internal/metrics"
)

// Version is the current version of stepgraph.
var Version = "0.1.0"

// app is the state shared by every subcommand once the root has loaded the
// configuration.
type app struct {
	configPath string
	logLevel   string

	cfg     *config.Config
	logger  *log.Logger
	closer  io.Closer
	metrics *metrics.Metrics
	engine  *engine.Engine
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "stepgraph",
		Short: "Step-by-step graph algorithm demonstrator",
		Long: `stepgraph runs BFS, DFS, Dijkstra, Bellman-Ford or A* on an undirected
weighted graph and explains every step it takes.

Graphs use nodes 0..n-1 and edges written as "u v weight". Each run prints a
Step Trace followed by the visit order or the shortest path.

Examples:
  stepgraph interactive                     # prompt for a graph and an algorithm
  stepgraph serve --addr :8080              # HTTP JSON endpoint
  stepgraph run scenarios/*.yaml            # replay scenario files
  stepgraph generate grid --rows 3 --cols 3 --algorithm dijkstra --end 8

See 'stepgraph <command> --help' for command-specific options.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a TOML config file (default: built-in defaults)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override log.level (debug|info|warn|error)")

	root.AddCommand(
		newInteractiveCmd(a),
		newServeCmd(a),
		newRunCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// Execute runs the command tree against os.Args and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the configuration, applies flag overrides and builds the
// logger, metrics and engine.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err = applyOverrides(cmd.Flags(), cfg); err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	a.cfg, a.logger, a.closer = cfg, logger, closer
	a.metrics = metrics.New()
	a.engine = engine.New(
		engine.WithLimits(engine.Limits{MaxNodes: cfg.Engine.MaxNodes, MaxEdges: cfg.Engine.MaxEdges}),
		engine.WithLogger(logger),
		engine.WithMetrics(a.metrics),
	)
	logger.Debugf("Configuration loaded (config=%q)", a.configPath)

	return nil
}

// applyOverrides copies explicitly set flags over the loaded configuration.
// Flags that a subcommand does not define are simply absent from fs.
func applyOverrides(fs *pflag.FlagSet, cfg *config.Config) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "log-level":
			cfg.Log.Level = f.Value.String()
		case "addr":
			cfg.Server.Addr = f.Value.String()
		case "workers":
			cfg.Batch.Workers, err = fs.GetInt("workers")
		case "diagram":
			cfg.CLI.Diagram, err = fs.GetBool("diagram")
		}
	})

	return err
}
