// Package metrics implements sequence.Recorder on top of Prometheus.
//
// Collectors (namespace "syracuse"):
//
//	walks_total{outcome}          counter    cycle walks by outcome
//	walk_steps                    histogram  steps per successful walk
//	batches_total{outcome}        counter    batch runs by outcome
//	batch_size                    histogram  vectors per batch
//	batch_duration_seconds        histogram  wall time from dispatch to join
//
// Outcomes: ok, step_limit, cancelled, invalid_config, panic, error.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	seq, _ := sequence.New(rel, terms, sequence.WithRecorder(metrics.New(reg)))
//	…
//	_ = metrics.WriteText(os.Stdout, reg)
package metrics
