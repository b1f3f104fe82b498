// Package port provides the addressing primitives every other component
// keys on: a port is one connection point on a node, identified by its
// direction and its index within that direction.
package port

import "fmt"

// PortType represents the direction of a port
type PortType string

const (
	// PortTypeInput represents a consuming port
	PortTypeInput PortType = "input"
	// PortTypeOutput represents a producing port
	PortTypeOutput PortType = "output"
)

// Valid reports whether the port type is one of the two known directions.
func (t PortType) Valid() bool {
	return t == PortTypeInput || t == PortTypeOutput
}

// Opposite returns the other direction. Panics on an unknown direction,
// which is a programming error.
func (t PortType) Opposite() PortType {
	switch t {
	case PortTypeInput:
		return PortTypeOutput
	case PortTypeOutput:
		return PortTypeInput
	}
	panic(fmt.Sprintf("port: unknown port type %q", string(t)))
}

// Port identifies one connection point on a node
// PRINCIPLES:
// - KISS: Immutable value pair, equality by value
// - SRP: Addressing only, no behavior beyond identity
type Port struct {
	Type  PortType `json:"type" msgpack:"type"`
	Index int      `json:"index" msgpack:"index"`
}

// NewPort creates a port address. Negative indices are a programming error.
func NewPort(t PortType, index int) Port {
	if !t.Valid() {
		panic(fmt.Sprintf("port: unknown port type %q", string(t)))
	}
	if index < 0 {
		panic(fmt.Sprintf("port: negative port index %d", index))
	}
	return Port{Type: t, Index: index}
}

func (p Port) String() string {
	return fmt.Sprintf("%s[%d]", p.Type, p.Index)
}

// Count holds the number of ports a node kind declares per direction
type Count struct {
	Inputs  int `json:"inputs" msgpack:"inputs"`
	Outputs int `json:"outputs" msgpack:"outputs"`
}

// For returns the declared count for the given direction. Panics on an
// unknown direction, which is a programming error.
func (c Count) For(t PortType) int {
	switch t {
	case PortTypeInput:
		return c.Inputs
	case PortTypeOutput:
		return c.Outputs
	}
	panic(fmt.Sprintf("port: unknown port type %q", string(t)))
}

// Contains reports whether the port address is in range for this count.
func (c Count) Contains(p Port) bool {
	return p.Index >= 0 && p.Index < c.For(p.Type)
}
