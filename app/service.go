package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/rentalgap/config"
	"github.com/fleetops/rentalgap/core/analysis"
	coremetrics "github.com/fleetops/rentalgap/core/metrics"
	"github.com/fleetops/rentalgap/core/rental"
	"github.com/fleetops/rentalgap/infra/dataset"
	"github.com/fleetops/rentalgap/infra/logger"
	"github.com/fleetops/rentalgap/infra/metrics"
	"github.com/fleetops/rentalgap/infra/store"
	"github.com/fleetops/rentalgap/pkg/export"
)

// Service runs the configured analysis: one dataset load, one threshold
// sweep, one overview, recorded to every configured sink.
type Service struct {
	cfg     *config.Config
	log     logger.Logger
	sink    coremetrics.MetricsSink
	history *store.SQLiteStore
	rentals []rental.Rental
	runID   string
}

// New creates a Service from the configuration. The dataset is loaded once
// here and treated as immutable afterwards.
func New(cfg *config.Config) (*Service, error) {
	logger.SetLevel(cfg.Logging.Level)
	logg := logger.New("service")

	rentals, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logg.Infof("loaded %d rentals from %s", len(rentals), cfg.Dataset.Path)

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	svc := &Service{
		cfg:     cfg,
		log:     logg,
		sink:    sink,
		rentals: rentals,
		runID:   uuid.NewString(),
	}
	if cfg.Store.Enabled {
		st, err := store.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("history store: %w", err)
		}
		svc.history = st
		svc.sink = coremetrics.NewMultiSink(sink, st)
	}
	return svc, nil
}

// Run executes the analysis and blocks until it completes or the context is
// canceled. When a Prometheus address is configured the /metrics listener
// stays up until cancellation.
func (s *Service) Run(ctx context.Context) error {
	if addr := s.cfg.Metrics.PrometheusAddr; addr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, addr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	now := time.Now()
	overview := analysis.BuildOverview(s.rentals)
	if rec, ok := s.sink.(coremetrics.OverviewRecorder); ok {
		if err := rec.RecordOverview(coremetrics.OverviewEvent{
			RunID: s.runID, Overview: overview, Time: now,
		}); err != nil {
			return fmt.Errorf("record overview: %w", err)
		}
	}
	s.log.Debugw("overview", map[string]any{
		"total_rentals":    overview.Summary.TotalRentals,
		"with_previous":    overview.Summary.WithPrevious,
		"late_return_rate": overview.Impact.LateReturnRate,
		"impact_rate":      overview.Impact.ImpactRate,
	})

	if err := ctx.Err(); err != nil {
		return err
	}

	scope := s.cfg.Analysis.ParsedScope()
	points := analysis.Sweep(s.rentals, s.cfg.Analysis.Thresholds, scope)
	if err := s.sink.RecordSweep(coremetrics.SweepEvent{
		RunID: s.runID, Scope: scope, Points: points, Time: now,
	}); err != nil {
		return fmt.Errorf("record sweep: %w", err)
	}
	for _, p := range points {
		s.log.Infof("threshold %3d min: blocked %d (%.1f%%), solved %d/%d, availability impact %.1f%%",
			p.Threshold, p.BlockedRentals, p.BlockedPercentage,
			p.ProblemsSolved, p.CurrentProblems, p.AvailabilityImpact)
	}

	if path := s.cfg.Export.Path; path != "" {
		if err := s.exportSweep(path, points); err != nil {
			return err
		}
		s.log.Infof("sweep written to %s", path)
	}

	if s.cfg.Metrics.PrometheusAddr != "" {
		<-ctx.Done()
	}
	return nil
}

func (s *Service) exportSweep(path string, points []analysis.SweepPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	defer func() { _ = f.Close() }()
	if err := export.Write(f, path, points); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// RunID identifies this service invocation in the history store.
func (s *Service) RunID() string { return s.runID }

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.history != nil {
		return s.history.Close()
	}
	return nil
}
