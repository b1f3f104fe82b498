// Package document defines the flow document exchanged with storage: the
// persisted form of a scene's nodes and connections. The engine prescribes
// only each node's identity and kind name; everything under State is
// kind-specific and opaque.
package document

import (
	"time"

	"github.com/zeptofine/nodeflow/pkg/validation"
)

// Node is the persisted form of one node instance.
type Node struct {
	ID    string         `json:"id" msgpack:"id" validate:"required"`
	Name  string         `json:"name" msgpack:"name" validate:"required"`
	State map[string]any `json:"state,omitempty" msgpack:"state,omitempty"`
}

// Connection is the persisted form of one wire.
type Connection struct {
	ID      string `json:"id" msgpack:"id" validate:"required"`
	OutNode string `json:"out_node" msgpack:"out_node" validate:"required"`
	OutPort int    `json:"out_port" msgpack:"out_port" validate:"gte=0"`
	InNode  string `json:"in_node" msgpack:"in_node" validate:"required"`
	InPort  int    `json:"in_port" msgpack:"in_port" validate:"gte=0"`
}

// Document is a complete persisted flow.
type Document struct {
	Nodes       []Node       `json:"nodes" msgpack:"nodes" validate:"dive"`
	Connections []Connection `json:"connections" msgpack:"connections" validate:"dive"`
	SavedAt     time.Time    `json:"saved_at,omitempty" msgpack:"saved_at,omitempty"`
}

// Validate ensures document integrity before a scene rebuilds from it.
func (d *Document) Validate() error {
	if d == nil {
		return ErrNilDocument
	}
	if err := validation.Struct(d); err != nil {
		return err
	}
	ids := make(map[string]struct{}, len(d.Nodes))
	for _, n := range d.Nodes {
		if _, dup := ids[n.ID]; dup {
			return ErrDuplicateNodeID
		}
		ids[n.ID] = struct{}{}
	}
	for _, c := range d.Connections {
		if _, ok := ids[c.OutNode]; !ok {
			return ErrUnknownNodeRef
		}
		if _, ok := ids[c.InNode]; !ok {
			return ErrUnknownNodeRef
		}
	}
	return nil
}
