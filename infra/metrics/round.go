package metrics

import "math"

// round3 trims float fields to three decimals before export.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
