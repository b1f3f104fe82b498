// Package calculator provides the arithmetic node kinds: number sources,
// a display sink, and binary math operations over decimal envelopes, with
// integer<->decimal converters for mixed wiring.
package calculator

import (
	"strconv"
	"sync"

	"github.com/zeptofine/nodeflow/internal/core/data"
)

// Type identities for the calculator envelopes.
var (
	DecimalType = data.NodeDataType{ID: "decimal", Name: "Decimal"}
	IntegerType = data.NodeDataType{ID: "integer", Name: "Integer"}
)

// DecimalData is an envelope holding a floating point number.
type DecimalData struct {
	number float64
	guard  sync.Mutex
}

// NewDecimal creates a decimal envelope.
func NewDecimal(number float64) *DecimalData {
	return &DecimalData{number: number}
}

// DataType returns the decimal type identity.
func (d *DecimalData) DataType() data.NodeDataType { return DecimalType }

// Number returns the held value.
func (d *DecimalData) Number() float64 { return d.number }

// Text returns the number in %g form.
func (d *DecimalData) Text() string { return strconv.FormatFloat(d.number, 'g', -1, 64) }

// Guard returns the per-envelope lock.
func (d *DecimalData) Guard() *sync.Mutex { return &d.guard }

// IntegerData is an envelope holding an integer.
type IntegerData struct {
	number int64
	guard  sync.Mutex
}

// NewInteger creates an integer envelope.
func NewInteger(number int64) *IntegerData {
	return &IntegerData{number: number}
}

// DataType returns the integer type identity.
func (d *IntegerData) DataType() data.NodeDataType { return IntegerType }

// Number returns the held value.
func (d *IntegerData) Number() int64 { return d.number }

// Text returns the number in base 10.
func (d *IntegerData) Text() string { return strconv.FormatInt(d.number, 10) }

// Guard returns the per-envelope lock.
func (d *IntegerData) Guard() *sync.Mutex { return &d.guard }

// IntegerToDecimal converts integer envelopes to decimal ones.
func IntegerToDecimal() data.TypeConverter {
	return data.TypeConverter{
		From: IntegerType,
		To:   DecimalType,
		Convert: func(d data.NodeData) data.NodeData {
			return NewDecimal(float64(d.(*IntegerData).Number()))
		},
	}
}

// DecimalToInteger converts decimal envelopes to integer ones, truncating
// toward zero.
func DecimalToInteger() data.TypeConverter {
	return data.TypeConverter{
		From: DecimalType,
		To:   IntegerType,
		Convert: func(d data.NodeData) data.NodeData {
			return NewInteger(int64(d.(*DecimalData).Number()))
		},
	}
}

// numberOf extracts the numeric value from either envelope kind.
func numberOf(d data.NodeData) (float64, bool) {
	switch v := d.(type) {
	case *DecimalData:
		return v.Number(), true
	case *IntegerData:
		return float64(v.Number()), true
	}
	return 0, false
}

// acceptable reports whether an input envelope is present and of a kind
// the math models accept.
func acceptable(d data.NodeData) bool {
	if d == nil {
		return false
	}
	_, ok := numberOf(d)
	return ok
}
