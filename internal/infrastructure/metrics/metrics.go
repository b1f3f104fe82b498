package metrics

import (
	"expvar"
)

// Propagation metrics (counters) published via expvar.
var (
	propagationPushes  = new(expvar.Int)
	invalidations      = new(expvar.Int)
	conversionsApplied = new(expvar.Int)
	connectionsRefused = new(expvar.Int)
	nodeRecomputes     = expvar.NewMap("nodeflow_node_recomputes_total")
)

func init() {
	expvar.Publish("nodeflow_propagation_pushes_total", propagationPushes)
	expvar.Publish("nodeflow_invalidations_total", invalidations)
	expvar.Publish("nodeflow_conversions_applied_total", conversionsApplied)
	expvar.Publish("nodeflow_connections_refused_total", connectionsRefused)
}

// Propagation helpers
func IncPropagationPushes()  { propagationPushes.Add(1) }
func IncInvalidations()      { invalidations.Add(1) }
func IncConversionsApplied() { conversionsApplied.Add(1) }
func IncConnectionsRefused() { connectionsRefused.Add(1) }

// IncNodeRecomputes counts completed compute scopes per node kind.
func IncNodeRecomputes(kind string) { nodeRecomputes.Add(kind, 1) }
