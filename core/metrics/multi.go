package metrics

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSweep forwards the sweep to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordSweep(ev SweepEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordSweep(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordOverview forwards overview snapshots to sinks that support them.
func (m *MultiSink) RecordOverview(ev OverviewEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(OverviewRecorder); ok {
			if err := rec.RecordOverview(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
