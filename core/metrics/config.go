package metrics

import "github.com/fleetops/rentalgap/core/factory"

// Config defines settings for metrics sinks. PrometheusAddr, when set,
// starts the /metrics listener alongside any configured prometheus sink.
type Config struct {
	Sinks          []factory.ModuleConfig `json:"sinks"`
	PrometheusAddr string                 `json:"prometheus_addr"`
}
