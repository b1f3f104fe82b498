// Package scene defines domain-specific errors
package scene

import "errors"

// Domain errors - defined once, used everywhere
var (
	// Node errors
	ErrNodeNotFound = errors.New("node not found")

	// Connection errors
	ErrConnectionNotFound = errors.New("connection not found")
	ErrPortOutOfRange     = errors.New("port index out of range")
	ErrNoConverter        = errors.New("no converter registered between port types")
	ErrPortOccupied       = errors.New("port already has a connection")
	ErrSelfConnection     = errors.New("cannot connect a node to itself")
)
