package model

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zeptofine/nodeflow/internal/core/data"
)

// Factory builds a fresh node instance for a verified kind.
type Factory func(spec *Spec) Model

// Registration declares a node kind for the registry: its shape, the
// factory producing instances, and optional presentation hints.
type Registration struct {
	Definition Definition
	Factory    Factory
	// Category groups kinds for the canvas's node palette.
	Category string
	// Style is an opaque presentation hint passed through to the canvas.
	Style any
}

type registryEntry struct {
	spec     *Spec
	factory  Factory
	category string
	style    any
}

// Registry holds every verified node kind and the type converters
// consulted at connection time. A kind is verified exactly once, at
// registration; a definition error aborts registration of the kind.
// PRINCIPLES:
// - SRP: Kind registration, instantiation and converter lookup only
// - DIP: Scenes depend on the registry, never on concrete kinds
type Registry struct {
	mu         sync.RWMutex
	models     map[string]registryEntry
	converters *data.ConverterRegistry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		models:     make(map[string]registryEntry),
		converters: data.NewConverterRegistry(),
	}
}

// Register verifies and stores a node kind. Verification failures are
// definition-time errors meant to be fixed by the kind author, never
// recovered from at runtime.
func (r *Registry) Register(reg Registration) error {
	if reg.Definition.Name == "" {
		return ErrInvalidModelName
	}
	if reg.Factory == nil {
		return ErrNilFactory
	}

	spec, err := reg.Definition.Verify()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.models[spec.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateModel, spec.Name)
	}
	r.models[spec.Name] = registryEntry{
		spec:     spec,
		factory:  reg.Factory,
		category: reg.Category,
		style:    reg.Style,
	}
	return nil
}

// Create instantiates a node of the named kind.
func (r *Registry) Create(name string) (Model, error) {
	r.mu.RLock()
	entry, ok := r.models[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return entry.factory(entry.spec), nil
}

// Spec returns the verified descriptor for the named kind.
func (r *Registry) Spec(name string) (*Spec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return entry.spec, nil
}

// Style returns the opaque presentation hint registered for a kind.
func (r *Registry) Style(name string) any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.models[name].style
}

// Categories returns the sorted distinct categories of registered kinds.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, entry := range r.models {
		if entry.category != "" {
			seen[entry.category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// Models returns the sorted kind names in a category; an empty category
// returns every registered kind.
func (r *Registry) Models(category string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.models))
	for name, entry := range r.models {
		if category == "" || entry.category == category {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// RegisterTypeConverter adds a converter for connection-time use.
func (r *Registry) RegisterTypeConverter(tc data.TypeConverter) error {
	return r.converters.Register(tc)
}

// Converter returns the registered converter for a (source, target) type
// pair, if any.
func (r *Registry) Converter(from, to data.NodeDataType) (data.TypeConverter, bool) {
	return r.converters.Lookup(from, to)
}
