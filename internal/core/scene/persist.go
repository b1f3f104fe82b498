package scene

import (
	"sort"
	"time"

	"github.com/zeptofine/nodeflow/internal/core/document"
)

// Save captures the scene as a flow document: every node's kind name and
// kind-specific state under its instance ID, plus every wire. Node order
// is deterministic for stable serialized output.
func (s *Scene) Save() *document.Document {
	doc := &document.Document{SavedAt: time.Now().UTC()}

	for _, n := range s.Nodes() {
		state := n.Model.Save()
		doc.Nodes = append(doc.Nodes, document.Node{
			ID:    n.ID,
			Name:  n.Name(),
			State: state,
		})
	}
	sort.Slice(doc.Nodes, func(i, j int) bool { return doc.Nodes[i].ID < doc.Nodes[j].ID })

	for _, c := range s.Connections() {
		doc.Connections = append(doc.Connections, document.Connection{
			ID:      c.ID,
			OutNode: c.Out.ID,
			OutPort: c.OutPort,
			InNode:  c.In.ID,
			InPort:  c.InPort,
		})
	}
	sort.Slice(doc.Connections, func(i, j int) bool {
		return doc.Connections[i].ID < doc.Connections[j].ID
	})

	return doc
}

// Load rebuilds the scene from a flow document: validates it, clears the
// scene, recreates each node (restoring its state before any wiring so
// the initial pushes carry restored values), then reconnects every wire.
func (s *Scene) Load(doc *document.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	s.Clear()

	for _, dn := range doc.Nodes {
		node, err := s.createNode(dn.Name, dn.ID)
		if err != nil {
			return err
		}
		node.Model.Restore(dn.State)
	}
	for _, dc := range doc.Connections {
		if _, err := s.connect(dc.ID, dc.OutNode, dc.OutPort, dc.InNode, dc.InPort); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes every connection and node.
func (s *Scene) Clear() {
	for _, c := range s.Connections() {
		_ = s.Disconnect(c.ID)
	}
	for id := range s.nodes {
		delete(s.nodes, id)
		delete(s.outgoing, id)
		delete(s.incoming, id)
	}
}
