package metrics

import (
	"time"

	"github.com/fleetops/rentalgap/core/analysis"
)

// SweepEvent captures one completed threshold sweep.
type SweepEvent struct {
	RunID  string
	Scope  analysis.Scope
	Points []analysis.SweepPoint
	Time   time.Time
}

// MetricsSink records analysis results for observability purposes.
type MetricsSink interface {
	RecordSweep(ev SweepEvent) error
}

// OverviewEvent is a snapshot of the dataset-wide statistics.
type OverviewEvent struct {
	RunID    string
	Overview analysis.Overview
	Time     time.Time
}

// OverviewRecorder is implemented by sinks able to record overview snapshots.
type OverviewRecorder interface {
	RecordOverview(ev OverviewEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSweep(SweepEvent) error       { return nil }
func (NopSink) RecordOverview(OverviewEvent) error { return nil }
