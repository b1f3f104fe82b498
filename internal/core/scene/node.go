package scene

import (
	"github.com/zeptofine/nodeflow/internal/core/data"
	"github.com/zeptofine/nodeflow/internal/core/model"
)

// Node is a live, stateful occurrence of a node kind inside a scene.
type Node struct {
	// ID is the scene-assigned instance identifier
	ID string

	// Model is the kind's behavioral instance
	Model model.Model
}

// Name returns the node's kind name.
func (n *Node) Name() string {
	return n.Model.Spec().Name
}

// Connection is a wire from an upstream output port to a downstream input
// port. When the two port types differ, the converter captured at
// connection time is applied to every envelope pushed across the wire.
type Connection struct {
	ID string

	Out     *Node
	OutPort int
	In      *Node
	InPort  int

	converter *data.TypeConverter
}
