// Package metrics provides build observability for tim.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics collection never needs nil checks:
//
//	gen := build.NewGenerator(s) // NoopRecorder
//	gen := build.NewGenerator(s, build.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder registers its collectors on a caller supplied registry.
// The registry can then be served over HTTP (HTTPHandler, used by preview) or
// written once to a node_exporter textfile (WriteTextfile, used by
// build --metrics-textfile).
package metrics
