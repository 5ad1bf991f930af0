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

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print dataset-wide delay statistics",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	rentals, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(analysis.BuildOverview(rentals))
}
