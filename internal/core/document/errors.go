// Package document defines domain-specific errors
package document

import "errors"

// Domain errors - defined once, used everywhere
var (
	ErrNilDocument       = errors.New("document cannot be nil")
	ErrInvalidDocumentID = errors.New("invalid document ID")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrDuplicateNodeID   = errors.New("duplicate node ID in document")
	ErrUnknownNodeRef    = errors.New("connection references unknown node")
)
