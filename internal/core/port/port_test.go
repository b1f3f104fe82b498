package port

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortType_Opposite(t *testing.T) {
	assert.Equal(t, PortTypeOutput, PortTypeInput.Opposite())
	assert.Equal(t, PortTypeInput, PortTypeOutput.Opposite())
	assert.Panics(t, func() { PortType("sideways").Opposite() })
}

func TestNewPort(t *testing.T) {
	p := NewPort(PortTypeInput, 1)
	assert.Equal(t, PortTypeInput, p.Type)
	assert.Equal(t, 1, p.Index)
	assert.Equal(t, "input[1]", p.String())

	assert.Panics(t, func() { NewPort(PortTypeInput, -1) })
	assert.Panics(t, func() { NewPort(PortType("bad"), 0) })
}

func TestCount_For(t *testing.T) {
	c := Count{Inputs: 2, Outputs: 1}
	assert.Equal(t, 2, c.For(PortTypeInput))
	assert.Equal(t, 1, c.For(PortTypeOutput))
	assert.Panics(t, func() { c.For(PortType("bad")) })
}

func TestCount_Contains(t *testing.T) {
	c := Count{Inputs: 2, Outputs: 0}

	tests := []struct {
		name string
		port Port
		want bool
	}{
		{"first input", Port{PortTypeInput, 0}, true},
		{"last input", Port{PortTypeInput, 1}, true},
		{"input out of range", Port{PortTypeInput, 2}, false},
		{"no outputs declared", Port{PortTypeOutput, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Contains(tt.port))
		})
	}
}
