// Package metrics defines the sink interfaces used to publish analysis
// results. Concrete sinks live in infra/metrics and register themselves
// through the factory registry.
package metrics
