package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/fleetops/rentalgap/core/metrics"
)

// PromSink exposes sweep results as Prometheus metrics. One gauge sample per
// scope and threshold; the /metrics server is started separately.
type PromSink struct {
	sweeps       *prometheus.CounterVec
	blocked      *prometheus.GaugeVec
	blockedPct   *prometheus.GaugeVec
	solved       *prometheus.GaugeVec
	efficiency   *prometheus.GaugeVec
	availability *prometheus.GaugeVec
	lateRate     prometheus.Gauge
	impactRate   prometheus.Gauge
}

// NewPromSink registers the metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		sweeps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rentalgap_sweeps_total",
			Help: "Total number of threshold sweeps executed",
		}, []string{"scope"}),
		blocked: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rentalgap_blocked_rentals",
			Help: "Rentals that would be denied at the candidate threshold",
		}, []string{"scope", "threshold"}),
		blockedPct: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rentalgap_blocked_percentage",
			Help: "Blocked rentals as a percentage of consecutive rentals",
		}, []string{"scope", "threshold"}),
		solved: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rentalgap_problems_solved",
			Help: "Handover conflicts the threshold would have prevented",
		}, []string{"scope", "threshold"}),
		efficiency: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rentalgap_solve_efficiency",
			Help: "Share of blocked rentals that prevented a real conflict",
		}, []string{"scope", "threshold"}),
		availability: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rentalgap_availability_impact",
			Help: "Blocked rentals as a percentage of the scoped population",
		}, []string{"scope", "threshold"}),
		lateRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rentalgap_late_return_rate",
			Help: "Percentage of observed previous returns that were late",
		}),
		impactRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rentalgap_impact_rate",
			Help: "Percentage of consecutive rentals impacted by a late return",
		}),
	}
	collectors := []prometheus.Collector{
		s.sweeps, s.blocked, s.blockedPct, s.solved, s.efficiency,
		s.availability, s.lateRate, s.impactRate,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}
	return s, nil
}

// RecordSweep sets the gauges for every point of the sweep.
func (s *PromSink) RecordSweep(ev coremetrics.SweepEvent) error {
	scope := string(ev.Scope)
	s.sweeps.WithLabelValues(scope).Inc()
	for _, p := range ev.Points {
		th := strconv.Itoa(p.Threshold)
		s.blocked.WithLabelValues(scope, th).Set(float64(p.BlockedRentals))
		s.blockedPct.WithLabelValues(scope, th).Set(p.BlockedPercentage)
		s.solved.WithLabelValues(scope, th).Set(float64(p.ProblemsSolved))
		s.efficiency.WithLabelValues(scope, th).Set(p.SolveEfficiency)
		s.availability.WithLabelValues(scope, th).Set(p.AvailabilityImpact)
	}
	return nil
}

// RecordOverview publishes the dataset-wide rates.
func (s *PromSink) RecordOverview(ev coremetrics.OverviewEvent) error {
	s.lateRate.Set(ev.Overview.Impact.LateReturnRate)
	s.impactRate.Set(ev.Overview.Impact.ImpactRate)
	return nil
}
