package calculator

import (
	"github.com/zeptofine/nodeflow/internal/core/data"
	"github.com/zeptofine/nodeflow/internal/core/model"
	"github.com/zeptofine/nodeflow/internal/core/port"
)

// NumberDisplay consumes a numeric envelope and holds its text form for a
// presentation layer to show. It stays in warning until a numeric
// envelope arrives.
type NumberDisplay struct {
	model.Base

	number     data.NodeData
	validation model.Validation
}

// NumberDisplayDefinition declares the NumberDisplay kind.
func NumberDisplayDefinition() model.Definition {
	dt := DecimalType
	return model.Definition{
		Name:            "NumberDisplay",
		NumPorts:        port.Count{Inputs: 1, Outputs: 0},
		AllDataTypes:    &dt,
		CaptionOverride: data.CaptionOverride{Inputs: map[int]string{0: "Number"}},
	}
}

// NewNumberDisplay builds a NumberDisplay instance.
func NewNumberDisplay(spec *model.Spec) model.Model {
	return &NumberDisplay{
		Base:       model.NewBase(spec),
		validation: model.Warning("Uninitialized"),
	}
}

// SetInData stores the propagated envelope, tolerating absence.
func (d *NumberDisplay) SetInData(envelope data.NodeData, p port.Port) {
	d.number = envelope
	if acceptable(envelope) {
		d.validation = model.Valid()
	} else {
		d.validation = model.Warning(msgMissingInputs)
	}
}

// Text returns the displayed text, "" when no value is shown.
func (d *NumberDisplay) Text() string {
	if !acceptable(d.number) {
		return ""
	}
	return d.number.Text()
}

// Validation returns the node's current state and message.
func (d *NumberDisplay) Validation() model.Validation { return d.validation }
