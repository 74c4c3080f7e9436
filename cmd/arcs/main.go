// Command arcs smooths and plots the sentiment arcs of four Cinderella
// variants.
//
// Usage:
//
//	arcs [command] [flags]
//
// Examples:
//
//	arcs render --out figures --format svg
//	arcs smooth perrault --window 9
//	echo "1 -2 3 0 4 -1 2 5" | arcs smooth - --window 5
//	arcs stats grimm-1812 grimm-1857
//	arcs kernel --window 5,7,9,15
//	arcs segments ye-xian
//	arcs schema > arcs.schema.json
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/cinderella-arcs/internal/config"
)

// app carries state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool

	logger *zap.Logger
	cfg    *config.Config
}

func newRootCmd() *cobra.Command {
	return newAppCmd(&app{})
}

// newAppCmd builds the command tree around a; a preset logger is kept.
func newAppCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "arcs",
		Short: "Savitzky-Golay sentiment arcs of four Cinderella variants",
		Long: `arcs reproduces the sentiment-arc figures of the Ye Xian, Perrault and
Grimm (1812, 1857) Cinderella variants.

Clause-level sentiment scores in [-5, 5] are smoothed with a reflect-padded
Savitzky-Golay filter and plotted per variant, plus a comparison of all four
normalised to narrative progression.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newRenderCmd(a),
		newSmoothCmd(a),
		newStatsCmd(a),
		newKernelCmd(a),
		newSegmentsCmd(a),
		newSchemaCmd(a),
	)
	return root
}

// setup builds the logger and loads the configuration.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.logger == nil {
		zc := zap.NewProductionConfig()
		if a.verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	// An explicit --config must exist; without one the defaults apply.
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(a.configPath); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger.Debug("Configuration loaded",
		zap.String("path", a.configPath),
		zap.String("output_dir", cfg.OutputDir),
		zap.String("format", cfg.Format))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
