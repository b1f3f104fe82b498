package model

import (
	"fmt"

	"github.com/zeptofine/nodeflow/internal/core/data"
	"github.com/zeptofine/nodeflow/internal/core/port"
)

var portTypes = []port.PortType{port.PortTypeInput, port.PortTypeOutput}

// Verify checks a node kind's declared attributes once, at definition
// time, and resolves them into an immutable Spec: the per-direction,
// per-index data type, caption and caption-visibility tables. It either
// succeeds, or fails with a single aggregated error enumerating every
// inconsistency found - not just the first.
//
// Dynamic kinds skip static verification entirely; the engine trusts
// them at runtime.
func (d Definition) Verify() (*Spec, error) {
	var reasons []string

	if d.Name == "" {
		reasons = append(reasons, "node kind has no name")
	}

	caption := d.Caption
	if caption == "" && d.CaptionVisible {
		caption = d.Name
	}

	spec := &Spec{
		Name:           d.Name,
		Caption:        caption,
		CaptionVisible: d.CaptionVisible,
		NumPorts:       d.NumPorts,
		Dynamic:        d.Dynamic,
	}

	if d.Dynamic {
		if len(reasons) > 0 {
			return nil, &VerificationError{Name: d.Name, Reasons: reasons}
		}
		return spec, nil
	}

	if d.NumPorts.Inputs < 0 || d.NumPorts.Outputs < 0 {
		reasons = append(reasons, fmt.Sprintf("negative port count %+v", d.NumPorts))
		return nil, &VerificationError{Name: d.Name, Reasons: reasons}
	}

	// Captions: all-blank defaults, then overlay any overrides.
	spec.captions = make(map[port.PortType]map[int]string, len(portTypes))
	for _, pt := range portTypes {
		table := make(map[int]string, d.NumPorts.For(pt))
		for i := 0; i < d.NumPorts.For(pt); i++ {
			table[i] = ""
		}
		for i, c := range d.CaptionOverride.For(pt) {
			table[i] = c
		}
		spec.captions[pt] = table
	}

	// Data types: exactly one of uniform or per-port must be declared.
	switch {
	case d.AllDataTypes != nil && d.DataTypes != nil:
		reasons = append(reasons, "cannot declare both AllDataTypes and DataTypes")
	case d.AllDataTypes == nil && d.DataTypes == nil:
		reasons = append(reasons, "either AllDataTypes or DataTypes must be declared")
	case d.AllDataTypes != nil:
		spec.dataTypes = make(map[port.PortType]map[int]data.NodeDataType, len(portTypes))
		for _, pt := range portTypes {
			table := make(map[int]data.NodeDataType, d.NumPorts.For(pt))
			for i := 0; i < d.NumPorts.For(pt); i++ {
				table[i] = *d.AllDataTypes
			}
			spec.dataTypes[pt] = table
		}
	default:
		spec.dataTypes = make(map[port.PortType]map[int]data.NodeDataType, len(portTypes))
		for _, pt := range portTypes {
			table := make(map[int]data.NodeDataType, len(d.DataTypes.For(pt)))
			for i, dt := range d.DataTypes.For(pt) {
				table[i] = dt
			}
			spec.dataTypes[pt] = table
		}
	}

	// Caption visibility: false per port unless overridden.
	spec.captionVisible = make(map[port.PortType]map[int]bool, len(portTypes))
	for _, pt := range portTypes {
		table := make(map[int]bool, d.NumPorts.For(pt))
		for i := 0; i < d.NumPorts.For(pt); i++ {
			table[i] = false
		}
		overrides := d.PortCaptionVisible.Inputs
		if pt == port.PortTypeOutput {
			overrides = d.PortCaptionVisible.Outputs
		}
		for i, v := range overrides {
			table[i] = v
		}
		spec.captionVisible[pt] = table
	}

	// Totality: every index in range must be present in every table for
	// every direction with a non-zero port count. A zero-count direction
	// requires no entries.
	tables := []struct {
		name    string
		present func(pt port.PortType, i int) bool
	}{
		{"data types", func(pt port.PortType, i int) bool {
			if spec.dataTypes == nil {
				return true // already reported above
			}
			_, ok := spec.dataTypes[pt][i]
			return ok
		}},
		{"port captions", func(pt port.PortType, i int) bool {
			_, ok := spec.captions[pt][i]
			return ok
		}},
		{"caption visibility", func(pt port.PortType, i int) bool {
			_, ok := spec.captionVisible[pt][i]
			return ok
		}},
	}
	for _, table := range tables {
		for _, pt := range portTypes {
			for i := 0; i < d.NumPorts.For(pt); i++ {
				if !table.present(pt, i) {
					reasons = append(reasons,
						fmt.Sprintf("%s entry missing for %s[%d]", table.name, pt, i))
				}
			}
		}
	}

	// An unset type identity is disallowed for any concrete port.
	for _, pt := range portTypes {
		for i := 0; i < d.NumPorts.For(pt); i++ {
			if dt, ok := spec.dataTypes[pt][i]; ok && dt.Unset() {
				reasons = append(reasons,
					fmt.Sprintf("data type for %s[%d] has no ID", pt, i))
			}
		}
	}

	if len(reasons) > 0 {
		return nil, &VerificationError{Name: d.Name, Reasons: reasons}
	}
	return spec, nil
}

// MustVerify is Verify for statically-known kinds whose definitions are
// expected to be correct; it panics on a definition error.
func (d Definition) MustVerify() *Spec {
	spec, err := d.Verify()
	if err != nil {
		panic(err)
	}
	return spec
}
