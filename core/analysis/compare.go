package analysis

import "github.com/fleetops/rentalgap/core/rental"

// Comparison evaluates one threshold against both scopes.
type Comparison struct {
	Threshold int    `json:"threshold"`
	All       Result `json:"all"`
	Connect   Result `json:"connect"`
}

// Compare runs the calculator for both scopes at a single threshold, sharing
// one delay index.
func Compare(rentals []rental.Rental, threshold int) Comparison {
	idx := rental.NewDelayIndex(rentals)
	return Comparison{
		Threshold: threshold,
		All:       Calculate(rentals, idx, threshold, ScopeAll),
		Connect:   Calculate(rentals, idx, threshold, ScopeConnect),
	}
}

// ScopeTrend is one scope's sweep paired with the solved share per point.
type ScopeTrend struct {
	Scope       Scope        `json:"scope"`
	Points      []SweepPoint `json:"points"`
	SolvedShare []float64    `json:"solved_share"`
}

// CompareTrends sweeps the thresholds for both scopes so the curves can be
// read side by side.
func CompareTrends(rentals []rental.Rental, thresholds []int) []ScopeTrend {
	trends := make([]ScopeTrend, 0, 2)
	for _, scope := range []Scope{ScopeAll, ScopeConnect} {
		points := Sweep(rentals, thresholds, scope)
		trends = append(trends, ScopeTrend{
			Scope:       scope,
			Points:      points,
			SolvedShare: SolvedShare(points),
		})
	}
	return trends
}
