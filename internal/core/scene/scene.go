// Package scene owns live node instances and the wires between them, and
// runs the propagation protocol: when an upstream output changes, the new
// envelope is pushed into every connected downstream input, which may
// trigger recomputation and a cascade of further pushes.
//
// Propagation is depth-first per update and is not deduplicated: a
// diamond-shaped graph may recompute a common descendant more than once
// per root update. That is an accepted inefficiency, not a correctness
// bug, as long as recomputation is idempotent given identical inputs.
package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zeptofine/nodeflow/internal/core/data"
	"github.com/zeptofine/nodeflow/internal/core/model"
	"github.com/zeptofine/nodeflow/internal/core/port"
	"github.com/zeptofine/nodeflow/internal/infrastructure/metrics"
)

// Scene holds node instances and connections. All mutation and
// propagation happens synchronously on the calling goroutine; the scene
// is not safe for concurrent use from multiple goroutines.
type Scene struct {
	registry *model.Registry

	nodes       map[string]*Node
	connections map[string]*Connection

	// outgoing maps node ID -> output port index -> wires leaving it.
	outgoing map[string]map[int][]*Connection
	// incoming maps node ID -> input port index -> the single wire into it.
	incoming map[string]map[int]*Connection
}

// New creates an empty scene over a registry of verified node kinds.
func New(registry *model.Registry) *Scene {
	return &Scene{
		registry:    registry,
		nodes:       make(map[string]*Node),
		connections: make(map[string]*Connection),
		outgoing:    make(map[string]map[int][]*Connection),
		incoming:    make(map[string]map[int]*Connection),
	}
}

// Registry returns the registry this scene instantiates kinds from.
func (s *Scene) Registry() *model.Registry { return s.registry }

// CreateNode instantiates a node of the named kind and subscribes the
// propagation engine to its output notifications.
func (s *Scene) CreateNode(name string) (*Node, error) {
	return s.createNode(name, uuid.NewString())
}

func (s *Scene) createNode(name, id string) (*Node, error) {
	m, err := s.registry.Create(name)
	if err != nil {
		return nil, err
	}

	node := &Node{ID: id, Model: m}
	s.nodes[id] = node
	s.outgoing[id] = make(map[int][]*Connection)
	s.incoming[id] = make(map[int]*Connection)

	// The scene is the core's only subscriber; renderers may add theirs.
	m.Emitter().OnUpdated(func(portIndex int) { s.propagate(node, portIndex) })
	m.Emitter().OnInvalidated(func(portIndex int) { s.invalidate(node, portIndex) })
	return node, nil
}

// Node returns a node instance by ID.
func (s *Scene) Node(id string) (*Node, error) {
	node, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return node, nil
}

// Nodes returns every node instance in the scene.
func (s *Scene) Nodes() []*Node {
	nodes := make([]*Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// Connections returns every wire in the scene.
func (s *Scene) Connections() []*Connection {
	conns := make([]*Connection, 0, len(s.connections))
	for _, c := range s.connections {
		conns = append(conns, c)
	}
	return conns
}

// RemoveNode detaches every wire touching the node, then destroys it.
func (s *Scene) RemoveNode(id string) error {
	node, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	for _, conn := range s.Connections() {
		if conn.Out == node || conn.In == node {
			if err := s.Disconnect(conn.ID); err != nil {
				return err
			}
		}
	}
	delete(s.nodes, id)
	delete(s.outgoing, id)
	delete(s.incoming, id)
	return nil
}

// Connect wires (out, outPort) -> (in, inPort). The connection is refused
// when either port is out of range, the target input or a single-consumer
// output is occupied, or the two port types differ with no registered
// converter. On success the upstream's current envelope (if any) is
// pushed to the new consumer immediately.
func (s *Scene) Connect(outID string, outPort int, inID string, inPort int) (*Connection, error) {
	return s.connect(uuid.NewString(), outID, outPort, inID, inPort)
}

func (s *Scene) connect(id, outID string, outPort int, inID string, inPort int) (*Connection, error) {
	out, err := s.Node(outID)
	if err != nil {
		return nil, err
	}
	in, err := s.Node(inID)
	if err != nil {
		return nil, err
	}
	if out == in {
		return nil, ErrSelfConnection
	}

	outSpec, inSpec := out.Model.Spec(), in.Model.Spec()
	outAddr := port.Port{Type: port.PortTypeOutput, Index: outPort}
	inAddr := port.Port{Type: port.PortTypeInput, Index: inPort}

	// Dynamic kinds are trusted at runtime; static kinds are range-checked.
	if !outSpec.Dynamic && !outSpec.NumPorts.Contains(outAddr) {
		return nil, fmt.Errorf("%w: %s on %s", ErrPortOutOfRange, outAddr, outSpec.Name)
	}
	if !inSpec.Dynamic && !inSpec.NumPorts.Contains(inAddr) {
		return nil, fmt.Errorf("%w: %s on %s", ErrPortOutOfRange, inAddr, inSpec.Name)
	}

	// An input port holds one wire; an output port with policy "one"
	// holds one wire.
	if _, taken := s.incoming[inID][inPort]; taken {
		return nil, fmt.Errorf("%w: %s on %s", ErrPortOccupied, inAddr, inSpec.Name)
	}
	if out.Model.PortOutConnectionPolicy(outPort) == model.ConnectionPolicyOne &&
		len(s.outgoing[outID][outPort]) > 0 {
		return nil, fmt.Errorf("%w: %s on %s", ErrPortOccupied, outAddr, outSpec.Name)
	}

	conn := &Connection{ID: id, Out: out, OutPort: outPort, In: in, InPort: inPort}

	// Connection-time type check: identical IDs connect directly; a
	// registered converter bridges differing IDs; anything else is
	// refused and surfaced to the caller.
	if !outSpec.Dynamic && !inSpec.Dynamic {
		outType, inType := outSpec.DataType(outAddr), inSpec.DataType(inAddr)
		if !outType.SameAs(inType) {
			tc, ok := s.registry.Converter(outType, inType)
			if !ok {
				metrics.IncConnectionsRefused()
				return nil, fmt.Errorf("%w: %s -> %s", ErrNoConverter, outType.ID, inType.ID)
			}
			conn.converter = &tc
		}
	}

	s.connections[id] = conn
	s.outgoing[outID][outPort] = append(s.outgoing[outID][outPort], conn)
	s.incoming[inID][inPort] = conn

	out.Model.OutputConnectionCreated(model.ConnectionEvent{ID: id, Port: outAddr})
	in.Model.InputConnectionCreated(model.ConnectionEvent{ID: id, Port: inAddr})

	if envelope := out.Model.OutData(outPort); envelope != nil {
		s.push(conn, envelope)
	}
	return conn, nil
}

// Disconnect removes a wire, notifies both endpoint models, and pushes
// "input became unavailable" downstream.
func (s *Scene) Disconnect(id string) error {
	conn, ok := s.connections[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrConnectionNotFound, id)
	}
	delete(s.connections, id)

	wires := s.outgoing[conn.Out.ID][conn.OutPort]
	for i, c := range wires {
		if c == conn {
			s.outgoing[conn.Out.ID][conn.OutPort] = append(wires[:i], wires[i+1:]...)
			break
		}
	}
	delete(s.incoming[conn.In.ID], conn.InPort)

	outAddr := port.Port{Type: port.PortTypeOutput, Index: conn.OutPort}
	inAddr := port.Port{Type: port.PortTypeInput, Index: conn.InPort}
	conn.Out.Model.OutputConnectionDeleted(model.ConnectionEvent{ID: id, Port: outAddr})
	conn.In.Model.InputConnectionDeleted(model.ConnectionEvent{ID: id, Port: inAddr})

	metrics.IncInvalidations()
	conn.In.Model.SetInData(nil, inAddr)
	return nil
}

// propagate handles "output N updated": re-fetch the envelope and push it
// into every consumer wired to that port. A nil envelope is not
// propagated.
func (s *Scene) propagate(node *Node, portIndex int) {
	envelope := node.Model.OutData(portIndex)
	if envelope == nil {
		return
	}
	// Snapshot: a downstream recomputation may rewire the scene mid-push.
	wires := append([]*Connection(nil), s.outgoing[node.ID][portIndex]...)
	for _, conn := range wires {
		s.push(conn, envelope)
	}
}

// invalidate handles "output N invalidated": push absence downstream,
// cascading the same way as an update.
func (s *Scene) invalidate(node *Node, portIndex int) {
	wires := append([]*Connection(nil), s.outgoing[node.ID][portIndex]...)
	for _, conn := range wires {
		metrics.IncInvalidations()
		conn.In.Model.SetInData(nil, port.Port{Type: port.PortTypeInput, Index: conn.InPort})
	}
}

func (s *Scene) push(conn *Connection, envelope data.NodeData) {
	if conn.converter != nil {
		envelope = conn.converter.Convert(envelope)
		metrics.IncConversionsApplied()
	}
	metrics.IncPropagationPushes()
	conn.In.Model.SetInData(envelope, port.Port{Type: port.PortTypeInput, Index: conn.InPort})
}
