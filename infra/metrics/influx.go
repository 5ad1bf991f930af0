package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/fleetops/rentalgap/core/metrics"
	"github.com/fleetops/rentalgap/infra/logger"
)

// InfluxSink writes sweep results to an InfluxDB instance using the official
// client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a NopSink
// when the health check fails, so an unreachable instance never blocks a run.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordSweep writes one point per sweep record.
func (s *InfluxSink) RecordSweep(ev coremetrics.SweepEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, r := range ev.Points {
		p := write.NewPointWithMeasurement("threshold_sweep").
			AddTag("run_id", ev.RunID).
			AddTag("scope", string(ev.Scope)).
			AddTag("threshold", strconv.Itoa(r.Threshold)).
			AddField("total_rentals", r.TotalRentals).
			AddField("rentals_with_previous", r.RentalsWithPrevious).
			AddField("blocked_rentals", r.BlockedRentals).
			AddField("blocked_percentage", round3(r.BlockedPercentage)).
			AddField("current_problems", r.CurrentProblems).
			AddField("problems_solved", r.ProblemsSolved).
			AddField("solve_efficiency", round3(r.SolveEfficiency)).
			AddField("availability_impact", round3(r.AvailabilityImpact)).
			SetTime(ev.Time)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordOverview persists the dataset-wide snapshot.
func (s *InfluxSink) RecordOverview(ev coremetrics.OverviewEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	o := ev.Overview
	p := write.NewPointWithMeasurement("dataset_overview").
		AddTag("run_id", ev.RunID).
		AddField("total_rentals", o.Summary.TotalRentals).
		AddField("with_previous", o.Summary.WithPrevious).
		AddField("late_return_rate", round3(o.Impact.LateReturnRate)).
		AddField("impact_rate", round3(o.Impact.ImpactRate)).
		AddField("avg_wait_minutes", round3(o.Impact.AvgWaitTime)).
		AddField("canceled_total", o.Cancellations.TotalCanceled).
		AddField("canceled_delay_related", o.Cancellations.DelayRelated).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close shuts down the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }
