// Package data defines the typed envelope that travels between ports and
// the type identities attached to it. The actual value is stored in
// concrete envelope kinds; the engine only ever sees this interface.
package data

import (
	"slices"
	"sync"

	"github.com/zeptofine/nodeflow/internal/core/port"
)

// NodeDataType identifies a data "kind". Two instances are the same type
// iff their IDs compare equal; Name is cosmetic only.
type NodeDataType struct {
	ID   string `json:"id" msgpack:"id"`
	Name string `json:"name" msgpack:"name"`
}

// SameAs reports type identity by ID, ignoring the display name.
func (t NodeDataType) SameAs(other NodeDataType) bool {
	return t.ID == other.ID
}

// Unset reports whether the type identity is missing. An unset type is
// disallowed for any concrete envelope kind.
func (t NodeDataType) Unset() bool {
	return t.ID == ""
}

// NodeData is the envelope for a value flowing on a port
// PRINCIPLES:
// - ISP: Minimal surface - identity, text form, guard
// - DIP: The engine depends on this interface, never on concrete kinds
type NodeData interface {
	// DataType returns the fixed type identity of this envelope kind
	DataType() NodeDataType

	// Text returns a human-readable form of the value, for display layers
	Text() string

	// Guard returns the per-envelope lock used during multi-input reads
	Guard() *sync.Mutex
}

// SameType reports whether two envelopes carry the same type ID.
// A nil envelope has no type and matches nothing.
func SameType(a, b NodeData) bool {
	if a == nil || b == nil {
		return false
	}
	return a.DataType().SameAs(b.DataType())
}

// LockAll acquires every distinct non-nil guard in the given order and
// returns a function releasing them in reverse. Callers must pass
// envelopes in a fixed order (input-port index) so overlapping
// computations cannot deadlock. One envelope wired to several inputs is
// locked once.
func LockAll(envelopes ...NodeData) (unlock func()) {
	locked := make([]*sync.Mutex, 0, len(envelopes))
	for _, e := range envelopes {
		if e == nil {
			continue
		}
		g := e.Guard()
		if slices.Contains(locked, g) {
			continue
		}
		g.Lock()
		locked = append(locked, g)
	}
	return func() {
		for i := len(locked) - 1; i >= 0; i-- {
			locked[i].Unlock()
		}
	}
}

// DataTypes holds per-port-index type identities, one map per direction,
// for node kinds whose ports carry different types per index.
type DataTypes struct {
	Inputs  map[int]NodeDataType
	Outputs map[int]NodeDataType
}

// For returns the map for the given direction.
func (d DataTypes) For(t port.PortType) map[int]NodeDataType {
	if t == port.PortTypeInput {
		return d.Inputs
	}
	return d.Outputs
}

// CaptionOverride holds optional per-port-index caption overrides, one map
// per direction. A nil map leaves the default blank captions in place.
type CaptionOverride struct {
	Inputs  map[int]string
	Outputs map[int]string
}

// For returns the override map for the given direction, which may be nil.
func (c CaptionOverride) For(t port.PortType) map[int]string {
	if t == port.PortTypeInput {
		return c.Inputs
	}
	return c.Outputs
}
