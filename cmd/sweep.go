package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetops/rentalgap/config"
	"github.com/fleetops/rentalgap/core/analysis"
	"github.com/fleetops/rentalgap/infra/dataset"
	"github.com/fleetops/rentalgap/pkg/export"
)

var (
	sweepThresholds []int
	sweepScope      string
	sweepOut        string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a one-off threshold sweep",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().IntSliceVar(&sweepThresholds, "thresholds", nil, "thresholds in minutes (default from config)")
	sweepCmd.Flags().StringVar(&sweepScope, "scope", "", "all or connect (default from config)")
	sweepCmd.Flags().StringVarP(&sweepOut, "out", "o", "", "write result to file (.csv or .json) instead of stdout")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if len(sweepThresholds) == 0 {
		sweepThresholds = cfg.Analysis.Thresholds
	}
	if sweepScope == "" {
		sweepScope = cfg.Analysis.Scope
	}
	scope, err := analysis.ParseScope(sweepScope)
	if err != nil {
		return err
	}
	for _, t := range sweepThresholds {
		if t < 0 {
			return fmt.Errorf("threshold must be non-negative, got %d", t)
		}
	}

	rentals, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	points := analysis.Sweep(rentals, sweepThresholds, scope)

	if sweepOut == "" {
		return export.WriteCSV(os.Stdout, points)
	}
	f, err := os.Create(sweepOut)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() { _ = f.Close() }()
	return export.Write(f, sweepOut, points)
}
