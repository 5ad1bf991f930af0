package config

import (
	"fmt"

	"github.com/fleetops/rentalgap/core/analysis"
)

// AnalysisConfig defines the sweep executed on startup.
type AnalysisConfig struct {
	// Thresholds are candidate minimum buffers in minutes, evaluated in
	// order.
	Thresholds []int `json:"thresholds"`
	// Scope is "all" or "connect".
	Scope string `json:"scope"`
}

// SetDefaults applies the dashboard's conventional sweep: 0 to 300 minutes
// in 30-minute steps over all vehicles.
func (c *AnalysisConfig) SetDefaults() {
	if len(c.Thresholds) == 0 {
		for t := 0; t <= 300; t += 30 {
			c.Thresholds = append(c.Thresholds, t)
		}
	}
	if c.Scope == "" {
		c.Scope = string(analysis.ScopeAll)
	}
}

// Validate checks thresholds and scope.
func (c AnalysisConfig) Validate() error {
	for _, t := range c.Thresholds {
		if t < 0 {
			return fmt.Errorf("threshold must be non-negative, got %d", t)
		}
	}
	if _, err := analysis.ParseScope(c.Scope); err != nil {
		return err
	}
	return nil
}

// ParsedScope returns the validated scope.
func (c AnalysisConfig) ParsedScope() analysis.Scope {
	s, _ := analysis.ParseScope(c.Scope)
	return s
}
