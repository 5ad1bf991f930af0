package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/fleetops/rentalgap/core/rental"
)

// DatasetSummary counts the headline populations of the table.
type DatasetSummary struct {
	TotalRentals    int `json:"total_rentals"`
	ConnectRentals  int `json:"connect_rentals"`
	MobileRentals   int `json:"mobile_rentals"`
	CanceledRentals int `json:"canceled_rentals"`
	WithPrevious    int `json:"with_previous"`
}

// DelayStats describe observed checkout delays across the whole table.
// Means and quantiles are computed on clamped delays.
type DelayStats struct {
	WithDelayData int     `json:"with_delay_data"`
	EarlyReturns  int     `json:"early_returns"`
	OnTimeReturns int     `json:"on_time_returns"`
	LateReturns   int     `json:"late_returns"`
	MeanDelay     float64 `json:"mean_delay_minutes"`
	MedianDelay   float64 `json:"median_delay_minutes"`
	P90Delay      float64 `json:"p90_delay_minutes"`
}

// LateImpact describes how often the previous occupant returned late and what
// that lateness cost the next driver. LateReturnRate divides by consecutive
// rentals whose previous delay is known; ImpactRate divides by all
// consecutive rentals.
type LateImpact struct {
	WithDelayData   int     `json:"with_delay_data"`
	LateReturns     int     `json:"late_returns"`
	LateReturnRate  float64 `json:"late_return_rate"`
	AvgLateDelay    float64 `json:"avg_late_delay_minutes"`
	ImpactedDrivers int     `json:"impacted_drivers"`
	ImpactRate      float64 `json:"impact_rate"`
	AvgWaitTime     float64 `json:"avg_wait_minutes"`
}

// CancellationStats attribute cancellations to handover conflicts.
type CancellationStats struct {
	TotalCanceled int     `json:"total_canceled"`
	DelayRelated  int     `json:"delay_related"`
	DelayShare    float64 `json:"delay_share"`
}

// Overview bundles the dataset-wide statistics that frame a threshold
// decision.
type Overview struct {
	Summary       DatasetSummary    `json:"summary"`
	Delays        DelayStats        `json:"delays"`
	Impact        LateImpact        `json:"impact"`
	Cancellations CancellationStats `json:"cancellations"`
}

// BuildOverview computes the overview statistics from the full table.
func BuildOverview(rentals []rental.Rental) Overview {
	var o Overview
	idx := rental.NewDelayIndex(rentals)

	var delays []float64
	var lateDelays, waits []float64
	for _, r := range rentals {
		o.Summary.TotalRentals++
		if r.IsConnect() {
			o.Summary.ConnectRentals++
		} else if r.CheckinType == rental.CheckinMobile {
			o.Summary.MobileRentals++
		}
		if r.IsCanceled() {
			o.Summary.CanceledRentals++
			o.Cancellations.TotalCanceled++
		}
		if r.HasPrevious() {
			o.Summary.WithPrevious++
		}

		if r.CheckoutDelay.Valid {
			o.Delays.WithDelayData++
			switch {
			case r.CheckoutDelay.Value < 0:
				o.Delays.EarlyReturns++
			case r.CheckoutDelay.Value == 0:
				o.Delays.OnTimeReturns++
			default:
				o.Delays.LateReturns++
			}
			delays = append(delays, rental.ClampDelay(r.CheckoutDelay.Value))
		}

		if !r.HasPrevious() {
			continue
		}
		prev := idx.PreviousDelay(r)
		if prev.Valid {
			o.Impact.WithDelayData++
			clean := rental.ClampDelay(prev.Value)
			if clean > 0 {
				o.Impact.LateReturns++
				lateDelays = append(lateDelays, clean)
			}
			if r.GapToPrevious.Valid && clean > r.GapToPrevious.Value {
				o.Impact.ImpactedDrivers++
				waits = append(waits, clean-r.GapToPrevious.Value)
				if r.IsCanceled() {
					o.Cancellations.DelayRelated++
				}
			}
		}
	}

	if len(delays) > 0 {
		sort.Float64s(delays)
		o.Delays.MeanDelay = stat.Mean(delays, nil)
		o.Delays.MedianDelay = stat.Quantile(0.5, stat.Empirical, delays, nil)
		o.Delays.P90Delay = stat.Quantile(0.9, stat.Empirical, delays, nil)
	}
	o.Impact.LateReturnRate = percent(o.Impact.LateReturns, o.Impact.WithDelayData)
	o.Impact.ImpactRate = percent(o.Impact.ImpactedDrivers, o.Summary.WithPrevious)
	if len(lateDelays) > 0 {
		o.Impact.AvgLateDelay = stat.Mean(lateDelays, nil)
	}
	if len(waits) > 0 {
		o.Impact.AvgWaitTime = stat.Mean(waits, nil)
	}
	o.Cancellations.DelayShare = percent(o.Cancellations.DelayRelated, o.Cancellations.TotalCanceled)
	return o
}
