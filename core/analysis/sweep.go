package analysis

import "github.com/fleetops/rentalgap/core/rental"

// SweepPoint is one threshold-sweep record.
type SweepPoint struct {
	Threshold int `json:"threshold"`
	Result
}

// Sweep runs Calculate for each threshold in order and returns one point per
// threshold. The delay index is built once and shared across the sweep.
func Sweep(rentals []rental.Rental, thresholds []int, scope Scope) []SweepPoint {
	idx := rental.NewDelayIndex(rentals)
	points := make([]SweepPoint, 0, len(thresholds))
	for _, t := range thresholds {
		points = append(points, SweepPoint{
			Threshold: t,
			Result:    Calculate(rentals, idx, t, scope),
		})
	}
	return points
}

// SolvedShare returns, per sweep point, problems solved as a share of the
// problems observed in the data. Current problems do not depend on the
// threshold, so the baseline is taken from the first point.
func SolvedShare(points []SweepPoint) []float64 {
	shares := make([]float64, len(points))
	if len(points) == 0 {
		return shares
	}
	base := points[0].CurrentProblems
	for i, p := range points {
		shares[i] = percent(p.ProblemsSolved, base)
	}
	return shares
}
