// Package metrics exposes expvar-published counters for the propagation
// engine (pushes, invalidations, conversions, refused connections). It
// intentionally avoids external dependencies and is consumed by the
// optional nodeflow-server for /debug/vars and /metrics endpoints.
package metrics
