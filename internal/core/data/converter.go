package data

import "sync"

// ConverterFunc translates an envelope of one type into another.
type ConverterFunc func(NodeData) NodeData

// TypeConverter binds a source and target type identity to a conversion
// function. Lookups are exact-ID, not hierarchical.
type TypeConverter struct {
	From    NodeDataType
	To      NodeDataType
	Convert ConverterFunc
}

type converterKey struct {
	from string
	to   string
}

// ConverterRegistry holds the registered type converters, consulted at
// connection-establishment time. Read-only after setup in practice, but
// guarded so registration order does not matter.
// PRINCIPLES:
// - SRP: Single responsibility - converter storage and lookup
// - KISS: Exact (source, target) ID map, no hierarchy
type ConverterRegistry struct {
	mu         sync.RWMutex
	converters map[converterKey]TypeConverter
}

// NewConverterRegistry creates an empty converter registry.
func NewConverterRegistry() *ConverterRegistry {
	return &ConverterRegistry{converters: make(map[converterKey]TypeConverter)}
}

// Register adds a converter. Untyped endpoints are rejected: the unset
// type identity is disallowed for any concrete data kind.
func (r *ConverterRegistry) Register(tc TypeConverter) error {
	if tc.Convert == nil {
		return ErrNilConverter
	}
	if tc.From.Unset() || tc.To.Unset() {
		return ErrUntypedConverter
	}
	if tc.From.SameAs(tc.To) {
		return ErrSelfConversion
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.converters[converterKey{from: tc.From.ID, to: tc.To.ID}] = tc
	return nil
}

// Lookup returns the converter for the (source, target) pair. Absence
// means the two types are not interconvertible.
func (r *ConverterRegistry) Lookup(from, to NodeDataType) (TypeConverter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tc, ok := r.converters[converterKey{from: from.ID, to: to.ID}]
	return tc, ok
}
