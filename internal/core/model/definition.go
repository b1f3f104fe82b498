package model

import (
	"fmt"

	"github.com/zeptofine/nodeflow/internal/core/data"
	"github.com/zeptofine/nodeflow/internal/core/port"
)

// Definition is the declared, pre-verification shape of a node kind.
// Exactly one of AllDataTypes (one uniform type broadcast to every port)
// or DataTypes (explicit per-direction, per-index maps) must be set;
// declaring both or neither is a definition-time error.
type Definition struct {
	Name           string
	Caption        string
	CaptionVisible bool
	NumPorts       port.Count

	AllDataTypes *data.NodeDataType
	DataTypes    *data.DataTypes

	CaptionOverride data.CaptionOverride

	// PortCaptionVisible overrides the default (false) visibility for
	// specific ports.
	PortCaptionVisible struct {
		Inputs  map[int]bool
		Outputs map[int]bool
	}

	// Dynamic marks a kind whose port shape is computed at runtime.
	// Dynamic kinds opt out of static verification; the engine trusts
	// them.
	Dynamic bool
}

// Spec is the verified, immutable descriptor of a node kind: the three
// derived per-direction, per-index tables plus the declared identity.
// One Spec exists per kind, produced once by Verify and never mutated.
type Spec struct {
	Name           string
	Caption        string
	CaptionVisible bool
	NumPorts       port.Count
	Dynamic        bool

	dataTypes      map[port.PortType]map[int]data.NodeDataType
	captions       map[port.PortType]map[int]string
	captionVisible map[port.PortType]map[int]bool
}

// DataType returns the verified type identity for a port. Out-of-range
// access is a programming error.
func (s *Spec) DataType(p port.Port) data.NodeDataType {
	dt, ok := s.dataTypes[p.Type][p.Index]
	if !ok {
		panic(fmt.Sprintf("model: %s has no data type for port %s", s.Name, p))
	}
	return dt
}

// PortCaption returns the caption shown for a port ("" by default).
func (s *Spec) PortCaption(p port.Port) string {
	caption, ok := s.captions[p.Type][p.Index]
	if !ok {
		panic(fmt.Sprintf("model: %s has no caption entry for port %s", s.Name, p))
	}
	return caption
}

// PortCaptionVisible reports whether the caption for a port is shown.
func (s *Spec) PortCaptionVisible(p port.Port) bool {
	visible, ok := s.captionVisible[p.Type][p.Index]
	if !ok {
		panic(fmt.Sprintf("model: %s has no caption visibility entry for port %s", s.Name, p))
	}
	return visible
}
