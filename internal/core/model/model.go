// Package model defines the node contract: the verified description of a
// node kind's shape (Definition -> Spec) and the behavioral interface
// every node kind must support at runtime.
package model

import (
	"github.com/zeptofine/nodeflow/internal/core/data"
	"github.com/zeptofine/nodeflow/internal/core/port"
)

// ConnectionPolicy restricts how many consumers an output port may feed
type ConnectionPolicy string

const (
	// ConnectionPolicyOne restricts an output port to a single consumer
	ConnectionPolicyOne ConnectionPolicy = "one"
	// ConnectionPolicyMany lets an output port feed multiple consumers
	ConnectionPolicyMany ConnectionPolicy = "many"
)

// ConnectionEvent describes one end of a wire attaching to or detaching
// from a node, as reported by the owning scene.
type ConnectionEvent struct {
	// ID is the connection's identifier within the scene
	ID string
	// Port is the local port the wire attaches to
	Port port.Port
}

// Model is the behavioral contract every node kind must support
// PRINCIPLES:
// - DIP: The propagation engine depends on this interface only
// - ISP: Presentation hooks are optional extension points returning nothing
type Model interface {
	// Spec returns the kind's verified, immutable descriptor
	Spec() *Spec

	// SetInData stores the incoming envelope at the given input port and
	// reacts (typically by recomputing). Called by the propagation engine
	// whenever the producing port upstream changes; a nil envelope means
	// the input became unavailable and must be tolerated.
	SetInData(envelope data.NodeData, p port.Port)

	// OutData returns the current output envelope for a port. nil means
	// "do not propagate downstream".
	OutData(portIndex int) data.NodeData

	// Validation returns the node's current self-reported health.
	Validation() Validation

	// PortOutConnectionPolicy reports how many consumers the given output
	// port may feed.
	PortOutConnectionPolicy(portIndex int) ConnectionPolicy

	// Resizable reports whether a presentation layer may resize the node.
	Resizable() bool

	// EmbeddedWidget returns an opaque presentational widget handle, or
	// nil when the kind presents none. The core never inspects it.
	EmbeddedWidget() any

	// PainterDelegate returns an opaque painting hook, or nil.
	PainterDelegate() any

	// Connection lifecycle notifications, fired by the owning scene when
	// a wire attaches or detaches.
	InputConnectionCreated(ev ConnectionEvent)
	InputConnectionDeleted(ev ConnectionEvent)
	OutputConnectionCreated(ev ConnectionEvent)
	OutputConnectionDeleted(ev ConnectionEvent)

	// Save returns kind-specific instance state for persistence. The
	// scene records the kind name alongside; the state map itself is
	// opaque to the engine.
	Save() map[string]any

	// Restore loads kind-specific instance state. Malformed input must
	// leave state unset rather than fail.
	Restore(state map[string]any)

	// Emitter exposes the node's output notification channel. The
	// propagation engine is the core's only subscriber; external
	// renderers may add their own.
	Emitter() *Emitter
}

// Base provides the default contract behavior. Concrete kinds embed it
// and override what they need.
type Base struct {
	spec    *Spec
	emitter Emitter
}

// NewBase creates the embedded base for a concrete kind.
func NewBase(spec *Spec) Base {
	return Base{spec: spec}
}

// Spec returns the kind's verified descriptor.
func (b *Base) Spec() *Spec { return b.spec }

// SetInData is a no-op by default.
func (b *Base) SetInData(data.NodeData, port.Port) {}

// OutData returns nothing by default.
func (b *Base) OutData(int) data.NodeData { return nil }

// Validation is valid with no message by default.
func (b *Base) Validation() Validation { return Valid() }

// PortOutConnectionPolicy defaults to many.
func (b *Base) PortOutConnectionPolicy(int) ConnectionPolicy { return ConnectionPolicyMany }

// Resizable defaults to false.
func (b *Base) Resizable() bool { return false }

// EmbeddedWidget defaults to none.
func (b *Base) EmbeddedWidget() any { return nil }

// PainterDelegate defaults to none.
func (b *Base) PainterDelegate() any { return nil }

// Connection lifecycle defaults are no-ops.
func (b *Base) InputConnectionCreated(ConnectionEvent)  {}
func (b *Base) InputConnectionDeleted(ConnectionEvent)  {}
func (b *Base) OutputConnectionCreated(ConnectionEvent) {}
func (b *Base) OutputConnectionDeleted(ConnectionEvent) {}

// Save persists nothing by default.
func (b *Base) Save() map[string]any { return map[string]any{} }

// Restore loads nothing by default.
func (b *Base) Restore(map[string]any) {}

// Emitter returns the node's notification emitter.
func (b *Base) Emitter() *Emitter { return &b.emitter }
