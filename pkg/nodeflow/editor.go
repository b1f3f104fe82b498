package nodeflow

import (
	"context"

	"github.com/zeptofine/nodeflow/internal/adapters/repository/memory"
	"github.com/zeptofine/nodeflow/internal/core/data"
	"github.com/zeptofine/nodeflow/internal/core/document"
	"github.com/zeptofine/nodeflow/internal/core/model"
	"github.com/zeptofine/nodeflow/internal/core/port"
	"github.com/zeptofine/nodeflow/internal/core/scene"
)

// Re-export core types for convenience
type (
	Port             = port.Port
	PortType         = port.PortType
	PortCount        = port.Count
	NodeData         = data.NodeData
	NodeDataType     = data.NodeDataType
	DataTypes        = data.DataTypes
	CaptionOverride  = data.CaptionOverride
	TypeConverter    = data.TypeConverter
	Definition       = model.Definition
	Spec             = model.Spec
	Model            = model.Model
	Base             = model.Base
	Registration     = model.Registration
	Registry         = model.Registry
	Validation       = model.Validation
	ConnectionPolicy = model.ConnectionPolicy
	Scene            = scene.Scene
	Node             = scene.Node
	Connection       = scene.Connection
	Document         = document.Document
	DocumentStore    = document.Store
)

// Direction and policy constants re-exported for callers.
const (
	PortTypeInput        = port.PortTypeInput
	PortTypeOutput       = port.PortTypeOutput
	ConnectionPolicyOne  = model.ConnectionPolicyOne
	ConnectionPolicyMany = model.ConnectionPolicyMany
)

// NewRegistry creates an empty node-kind registry.
func NewRegistry() *Registry { return model.NewRegistry() }

// NewBase returns the embeddable default model implementation for
// custom node kinds.
func NewBase(spec *Spec) Base { return model.NewBase(spec) }

// Editor owns a scene and a document store, wiring the default in-memory
// components for local usage and tests.
type Editor struct {
	registry *Registry
	scene    *Scene
	store    document.Store
}

// NewEditor constructs an editor over a registry with in-memory storage.
func NewEditor(registry *Registry) *Editor {
	return &Editor{
		registry: registry,
		scene:    scene.New(registry),
		store:    memory.NewFlowStore(nil),
	}
}

// NewEditorWithStore constructs an editor persisting to the given store.
func NewEditorWithStore(registry *Registry, store document.Store) *Editor {
	return &Editor{
		registry: registry,
		scene:    scene.New(registry),
		store:    store,
	}
}

// Registry returns the editor's node-kind registry.
func (e *Editor) Registry() *Registry { return e.registry }

// Scene returns the live scene.
func (e *Editor) Scene() *Scene { return e.scene }

// SaveFlow persists the current scene under an identifier.
func (e *Editor) SaveFlow(ctx context.Context, id string) error {
	return e.store.Save(ctx, id, e.scene.Save())
}

// LoadFlow replaces the scene contents with a stored flow.
func (e *Editor) LoadFlow(ctx context.Context, id string) error {
	doc, err := e.store.Load(ctx, id)
	if err != nil {
		return err
	}
	return e.scene.Load(doc)
}
