package calculator

import (
	"fmt"
	"strconv"

	"github.com/zeptofine/nodeflow/internal/core/data"
	"github.com/zeptofine/nodeflow/internal/core/model"
	"github.com/zeptofine/nodeflow/internal/core/port"
)

// NumberSource produces a decimal value set by the user. A presentation
// layer would wire a line edit to SetText; the core only needs the
// programmatic surface.
type NumberSource struct {
	model.Base

	number *DecimalData
}

// NumberSourceDefinition declares the NumberSource kind.
func NumberSourceDefinition() model.Definition {
	dt := DecimalType
	return model.Definition{
		Name:            "NumberSource",
		NumPorts:        port.Count{Inputs: 0, Outputs: 1},
		AllDataTypes:    &dt,
		CaptionOverride: data.CaptionOverride{Outputs: map[int]string{0: "Result"}},
	}
}

// NewNumberSource builds a NumberSource instance.
func NewNumberSource(spec *model.Spec) model.Model {
	return &NumberSource{Base: model.NewBase(spec)}
}

// SetNumber sets the produced value and announces the update.
func (s *NumberSource) SetNumber(value float64) {
	s.number = NewDecimal(value)
	s.Emitter().EmitUpdated(0)
}

// SetText parses user-entered text. Unparseable text invalidates the
// output instead of updating it.
func (s *NumberSource) SetText(text string) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.Emitter().EmitInvalidated(0)
		return
	}
	s.number = NewDecimal(value)
	s.Emitter().EmitUpdated(0)
}

// Number returns the current value envelope, nil before the first set.
func (s *NumberSource) Number() *DecimalData { return s.number }

// OutData returns the produced envelope.
func (s *NumberSource) OutData(portIndex int) data.NodeData {
	if portIndex != 0 {
		panic(fmt.Sprintf("calculator: NumberSource has no output %d", portIndex))
	}
	if s.number == nil {
		return nil
	}
	return s.number
}

// Save persists the value under "number".
func (s *NumberSource) Save() map[string]any {
	state := map[string]any{}
	if s.number != nil {
		state["number"] = s.number.Number()
	}
	return state
}

// Restore loads the value from saved state. Malformed state leaves the
// value unset.
func (s *NumberSource) Restore(state map[string]any) {
	raw, ok := state["number"]
	if !ok {
		return
	}
	switch v := raw.(type) {
	case float64:
		s.number = NewDecimal(v)
	case int:
		s.number = NewDecimal(float64(v))
	case int64:
		s.number = NewDecimal(float64(v))
	case string:
		if value, err := strconv.ParseFloat(v, 64); err == nil {
			s.number = NewDecimal(value)
		}
	}
}
