// Package model defines domain-specific errors
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - defined once, used everywhere
var (
	// Registry errors
	ErrInvalidModelName = errors.New("invalid model name")
	ErrNilFactory       = errors.New("model factory cannot be nil")
	ErrDuplicateModel   = errors.New("duplicate model name")
	ErrModelNotFound    = errors.New("model not found")
)

// VerificationError aggregates every inconsistency found while verifying a
// node kind, so the kind author sees all problems at once rather than
// fixing them one failure at a time.
type VerificationError struct {
	Name    string
	Reasons []string
}

func (e *VerificationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "verification of node kind %q failed:", e.Name)
	for _, reason := range e.Reasons {
		sb.WriteString("\n* ")
		sb.WriteString(reason)
	}
	return sb.String()
}
