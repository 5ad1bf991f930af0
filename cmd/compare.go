package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetops/rentalgap/config"
	"github.com/fleetops/rentalgap/core/analysis"
	"github.com/fleetops/rentalgap/infra/dataset"
)

var compareThreshold int

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all-vehicles and connect-only scopes at one threshold",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().IntVarP(&compareThreshold, "threshold", "t", 120, "threshold in minutes")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if compareThreshold < 0 {
		return fmt.Errorf("threshold must be non-negative, got %d", compareThreshold)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	rentals, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	out := struct {
		Comparison analysis.Comparison   `json:"comparison"`
		Trends     []analysis.ScopeTrend `json:"trends"`
	}{
		Comparison: analysis.Compare(rentals, compareThreshold),
		Trends:     analysis.CompareTrends(rentals, cfg.Analysis.Thresholds),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
