package analysis

import (
	"fmt"
	"strings"

	"github.com/fleetops/rentalgap/core/rental"
)

// Scope selects the population a buffer policy applies to.
type Scope string

const (
	// ScopeAll applies the policy to every vehicle.
	ScopeAll Scope = "all"
	// ScopeConnect restricts the policy to keyless checkin rentals.
	ScopeConnect Scope = "connect"
)

// ParseScope normalizes a scope string. The empty string maps to ScopeAll.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(s) {
	case "", string(ScopeAll):
		return ScopeAll, nil
	case string(ScopeConnect):
		return ScopeConnect, nil
	}
	return "", fmt.Errorf("unknown scope %q", s)
}

// Result quantifies the cost/benefit of enforcing a minimum buffer between
// consecutive rentals of the same vehicle. All percentage fields are in
// [0, 100].
type Result struct {
	TotalRentals        int     `json:"total_rentals"`
	RentalsWithPrevious int     `json:"rentals_with_previous"`
	BlockedRentals      int     `json:"blocked_rentals"`
	BlockedPercentage   float64 `json:"blocked_percentage"`
	CurrentProblems     int     `json:"current_problems"`
	ProblemsSolved      int     `json:"problems_solved"`
	SolveEfficiency     float64 `json:"solve_efficiency"`
	AvailabilityImpact  float64 `json:"availability_impact"`
}

// rowFlags are the per-row policy outcomes for one consecutive rental.
type rowFlags struct {
	blocked bool
	problem bool
	solved  bool
}

// classify evaluates a single rental against the candidate threshold. The
// rental's own checkout delay is irrelevant here; only the previous
// occupant's delay matters.
func classify(r rental.Rental, idx rental.DelayIndex, threshold int) rowFlags {
	var f rowFlags
	if !r.GapToPrevious.Valid {
		// Contract says the gap is present whenever a previous rental is
		// set. A missing gap can satisfy neither comparison.
		return f
	}
	gap := r.GapToPrevious.Value
	f.blocked = gap < float64(threshold)
	if prev := idx.PreviousDelay(r); prev.Valid {
		f.problem = rental.ClampDelay(prev.Value) > gap
	}
	f.solved = f.problem && f.blocked
	return f
}

func inScope(r rental.Rental, scope Scope) bool {
	return scope != ScopeConnect || r.IsConnect()
}

// Calculate runs the delay-impact calculation for one threshold. The index
// must be built from the full, unfiltered table: the previous rental may
// belong to a different scope, but its delay is still attributed.
func Calculate(rentals []rental.Rental, idx rental.DelayIndex, threshold int, scope Scope) Result {
	var res Result
	for _, r := range rentals {
		if !inScope(r, scope) {
			continue
		}
		res.TotalRentals++
		if !r.HasPrevious() {
			continue
		}
		res.RentalsWithPrevious++
		f := classify(r, idx, threshold)
		if f.blocked {
			res.BlockedRentals++
		}
		if f.problem {
			res.CurrentProblems++
		}
		if f.solved {
			res.ProblemsSolved++
		}
	}
	res.BlockedPercentage = percent(res.BlockedRentals, res.RentalsWithPrevious)
	res.SolveEfficiency = percent(res.ProblemsSolved, res.BlockedRentals)
	res.AvailabilityImpact = percent(res.BlockedRentals, res.TotalRentals)
	return res
}

// CalculateAt is a convenience wrapper that builds the delay index itself.
// Callers evaluating several thresholds should use Sweep instead.
func CalculateAt(rentals []rental.Rental, threshold int, scope Scope) Result {
	return Calculate(rentals, rental.NewDelayIndex(rentals), threshold, scope)
}

// percent returns num/den*100, or 0 when den is 0. Empty-scope sweeps report
// 0%, never NaN.
func percent(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}
