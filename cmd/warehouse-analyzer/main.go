package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opscart/warehouse-efficiency-analyzer/pkg/config"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/generator"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/metrics"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/output"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/reporter"
	"github.com/opscart/warehouse-efficiency-analyzer/pkg/runner"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "warehouse-analyzer",
		Short: "Warehouse compute efficiency analyzer",
		Long: `Generate a day of synthetic warehouse CPU and memory telemetry, count idle
and over-provisioned minutes and auto-scaling events, print recommendations
and plot the usage to a PNG chart.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return runAnalysis(cmd, cfg)
		},
	}

	defaults := config.NewConfig()
	rootCmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	rootCmd.Flags().Int("minutes", defaults.Minutes, "Number of one-minute observations to generate")
	rootCmd.Flags().Uint64("seed", defaults.Seed, "Random seed (0 derives one from the clock)")
	rootCmd.Flags().String("chart-path", defaults.ChartPath, "Where to write the usage chart (PNG)")
	rootCmd.Flags().StringP("output", "o", defaults.OutputFormat, "Output format: text, json, csv, html, metrics")
	rootCmd.Flags().BoolP("verbose", "v", defaults.Verbose, "Enable debug logging")

	return rootCmd
}

func runAnalysis(cmd *cobra.Command, cfg *config.Config) error {
	runID := uuid.New().String()

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Str("run_id", runID).Logger()
	ctx := logger.WithContext(cmd.Context())

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug().
		Uint64("seed", seed).
		Int("minutes", cfg.Minutes).
		Str("output", cfg.OutputFormat).
		Msg("starting analysis")

	collector := metrics.NewCollector(runID)
	handler, err := output.NewHandler(cfg.OutputFormat, cmd.OutOrStdout(), collector)
	if err != nil {
		return err
	}

	result, err := runner.Run(ctx, runner.Options{
		RunID:     runID,
		Generator: generator.NewSeeded(seed),
		Now:       time.Now(),
		Minutes:   cfg.Minutes,
		ChartPath: cfg.ChartPath,
		Metrics:   collector,
	})
	if err != nil {
		return err
	}

	if err := handler.Display(ctx, reporter.New(result)); err != nil {
		return fmt.Errorf("failed to display %s output: %w", handler.Format(), err)
	}
	return nil
}
