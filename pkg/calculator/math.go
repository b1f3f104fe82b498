package calculator

import (
	"fmt"
	"math"

	"github.com/zeptofine/nodeflow/internal/core/data"
	"github.com/zeptofine/nodeflow/internal/core/model"
	"github.com/zeptofine/nodeflow/internal/core/port"
	"github.com/zeptofine/nodeflow/internal/infrastructure/metrics"
)

const msgMissingInputs = "Missing or incorrect inputs"

// applyFunc runs the domain arithmetic over two numbers, returning the
// result envelope (nil when the computation is domain-invalid) and the
// validation outcome.
type applyFunc func(a, b float64) (data.NodeData, model.Validation)

// MathOperation is the shared behavior of every two-input arithmetic
// kind: input gating, the scoped two-guard compute, and result storage.
//
// On every SetInData it first re-validates that both input slots hold an
// acceptable envelope; if not, the node goes to warning, the stored
// result is cleared, and output 0 is invalidated - the arithmetic is
// never run with incomplete inputs. When both inputs are present the
// arithmetic runs under both input guards, and "output 0 updated" is
// emitted exactly once after the scope exits.
type MathOperation struct {
	model.Base

	inputs     [2]data.NodeData
	result     data.NodeData
	validation model.Validation

	apply applyFunc
}

func newMathOperation(spec *model.Spec, apply applyFunc) *MathOperation {
	return &MathOperation{
		Base:       model.NewBase(spec),
		validation: model.Warning("Uninitialized"),
		apply:      apply,
	}
}

// SetInData stores the envelope in one of the two input slots and
// recomputes when both are satisfied.
func (m *MathOperation) SetInData(envelope data.NodeData, p port.Port) {
	if p.Type != port.PortTypeInput || p.Index < 0 || p.Index > 1 {
		panic(fmt.Sprintf("calculator: %s received data on %s", m.Spec().Name, p))
	}
	m.inputs[p.Index] = envelope

	if !m.checkInputs() {
		return
	}
	m.compute()
}

func (m *MathOperation) checkInputs() bool {
	if !acceptable(m.inputs[0]) || !acceptable(m.inputs[1]) {
		m.validation = model.Warning(msgMissingInputs)
		m.result = nil
		m.Emitter().EmitInvalidated(0)
		return false
	}
	m.validation = model.Valid()
	return true
}

// compute runs the arithmetic under a scoped acquisition of both input
// guards, in input-port order, so a concurrent writer cannot mutate one
// input mid-computation after the other was read.
func (m *MathOperation) compute() {
	if m.inputs[0] == nil || m.inputs[1] == nil {
		panic(fmt.Sprintf("calculator: %s compute with absent inputs", m.Spec().Name))
	}

	unlock := data.LockAll(m.inputs[0], m.inputs[1])
	a, _ := numberOf(m.inputs[0])
	b, _ := numberOf(m.inputs[1])
	m.result, m.validation = m.apply(a, b)
	unlock()

	metrics.IncNodeRecomputes(m.Spec().Name)
	m.Emitter().EmitUpdated(0)
}

// OutData returns the current result envelope; nil when the node is not
// in a computed state.
func (m *MathOperation) OutData(portIndex int) data.NodeData {
	if portIndex != 0 {
		panic(fmt.Sprintf("calculator: %s has no output %d", m.Spec().Name, portIndex))
	}
	return m.result
}

// Validation returns the node's current state and message.
func (m *MathOperation) Validation() model.Validation { return m.validation }

func mathDefinition(name string, captions data.CaptionOverride) model.Definition {
	dt := DecimalType
	return model.Definition{
		Name:            name,
		CaptionVisible:  true,
		NumPorts:        port.Count{Inputs: 2, Outputs: 1},
		AllDataTypes:    &dt,
		CaptionOverride: captions,
	}
}

var resultCaption = map[int]string{0: "Result"}

// AdditionDefinition declares the Addition kind.
func AdditionDefinition() model.Definition {
	return mathDefinition("Addition", data.CaptionOverride{Outputs: resultCaption})
}

// NewAddition builds an Addition instance.
func NewAddition(spec *model.Spec) model.Model {
	return newMathOperation(spec, func(a, b float64) (data.NodeData, model.Validation) {
		return NewDecimal(a + b), model.Valid()
	})
}

// SubtractionDefinition declares the Subtraction kind.
func SubtractionDefinition() model.Definition {
	return mathDefinition("Subtraction", data.CaptionOverride{
		Inputs:  map[int]string{0: "Minuend", 1: "Subtrahend"},
		Outputs: resultCaption,
	})
}

// NewSubtraction builds a Subtraction instance.
func NewSubtraction(spec *model.Spec) model.Model {
	return newMathOperation(spec, func(a, b float64) (data.NodeData, model.Validation) {
		return NewDecimal(a - b), model.Valid()
	})
}

// MultiplicationDefinition declares the Multiplication kind.
func MultiplicationDefinition() model.Definition {
	return mathDefinition("Multiplication", data.CaptionOverride{
		Inputs:  map[int]string{0: "A", 1: "B"},
		Outputs: resultCaption,
	})
}

// NewMultiplication builds a Multiplication instance.
func NewMultiplication(spec *model.Spec) model.Model {
	return newMathOperation(spec, func(a, b float64) (data.NodeData, model.Validation) {
		return NewDecimal(a * b), model.Valid()
	})
}

var divisorCaptions = data.CaptionOverride{
	Inputs:  map[int]string{0: "Dividend", 1: "Divisor"},
	Outputs: resultCaption,
}

// DivisionDefinition declares the Division kind.
func DivisionDefinition() model.Definition {
	return mathDefinition("Division", divisorCaptions)
}

// NewDivision builds a Division instance. Dividing by zero is a domain
// error: the node reports it through validation and clears its result.
func NewDivision(spec *model.Spec) model.Model {
	return newMathOperation(spec, func(a, b float64) (data.NodeData, model.Validation) {
		if b == 0.0 {
			return nil, model.Errored("Division by zero error")
		}
		return NewDecimal(a / b), model.Valid()
	})
}

// ModuloDefinition declares the Modulo kind.
func ModuloDefinition() model.Definition {
	return mathDefinition("Modulo", divisorCaptions)
}

// NewModulo builds a Modulo instance. A zero divisor is reported the same
// way Division reports it.
func NewModulo(spec *model.Spec) model.Model {
	return newMathOperation(spec, func(a, b float64) (data.NodeData, model.Validation) {
		if b == 0.0 {
			return nil, model.Errored("Division by zero error")
		}
		return NewDecimal(math.Mod(a, b)), model.Valid()
	})
}
