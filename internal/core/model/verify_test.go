package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeptofine/nodeflow/internal/core/data"
	"github.com/zeptofine/nodeflow/internal/core/port"
)

var decimalType = data.NodeDataType{ID: "decimal", Name: "Decimal"}

func uniformDefinition(inputs, outputs int) Definition {
	dt := decimalType
	return Definition{
		Name:         "TestKind",
		NumPorts:     port.Count{Inputs: inputs, Outputs: outputs},
		AllDataTypes: &dt,
	}
}

func TestVerify_Totality(t *testing.T) {
	tests := []struct {
		name    string
		inputs  int
		outputs int
	}{
		{"binary operation", 2, 1},
		{"source", 0, 1},
		{"sink", 1, 0},
		{"wide", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := uniformDefinition(tt.inputs, tt.outputs).Verify()
			require.NoError(t, err)

			for i := 0; i < tt.inputs; i++ {
				p := port.Port{Type: port.PortTypeInput, Index: i}
				assert.Equal(t, decimalType, spec.DataType(p))
				assert.Equal(t, "", spec.PortCaption(p))
				assert.False(t, spec.PortCaptionVisible(p))
			}
			for i := 0; i < tt.outputs; i++ {
				p := port.Port{Type: port.PortTypeOutput, Index: i}
				assert.Equal(t, decimalType, spec.DataType(p))
			}

			// A direction with zero declared ports has no entries, and
			// out-of-range access is fatal.
			outOfRange := port.Port{Type: port.PortTypeInput, Index: tt.inputs}
			assert.Panics(t, func() { spec.DataType(outOfRange) })
		})
	}
}

func TestVerify_MutualExclusivity(t *testing.T) {
	dt := decimalType

	t.Run("both declared", func(t *testing.T) {
		def := uniformDefinition(1, 1)
		def.DataTypes = &data.DataTypes{
			Inputs:  map[int]data.NodeDataType{0: dt},
			Outputs: map[int]data.NodeDataType{0: dt},
		}
		_, err := def.Verify()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "both")
	})

	t.Run("neither declared", func(t *testing.T) {
		def := Definition{Name: "Untyped", NumPorts: port.Count{Inputs: 1, Outputs: 1}}
		_, err := def.Verify()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "either")
	})
}

func TestVerify_CollectsEveryReason(t *testing.T) {
	// Per-port declaration missing one input entry, plus an untyped
	// output: the aggregated error must list all of it at once.
	def := Definition{
		Name:     "Broken",
		NumPorts: port.Count{Inputs: 2, Outputs: 1},
		DataTypes: &data.DataTypes{
			Inputs:  map[int]data.NodeDataType{0: decimalType},
			Outputs: map[int]data.NodeDataType{0: {}},
		},
	}

	_, err := def.Verify()
	require.Error(t, err)

	var verr *VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "data types entry missing for input[1]")
	assert.Contains(t, err.Error(), "data type for output[0] has no ID")
	assert.Len(t, verr.Reasons, 2)
}

func TestVerify_CaptionOverlay(t *testing.T) {
	def := uniformDefinition(2, 1)
	def.CaptionOverride = data.CaptionOverride{
		Inputs:  map[int]string{0: "Dividend", 1: "Divisor"},
		Outputs: map[int]string{0: "Result"},
	}
	def.PortCaptionVisible.Inputs = map[int]bool{0: true}

	spec, err := def.Verify()
	require.NoError(t, err)

	assert.Equal(t, "Dividend", spec.PortCaption(port.Port{Type: port.PortTypeInput, Index: 0}))
	assert.Equal(t, "Divisor", spec.PortCaption(port.Port{Type: port.PortTypeInput, Index: 1}))
	assert.Equal(t, "Result", spec.PortCaption(port.Port{Type: port.PortTypeOutput, Index: 0}))
	assert.True(t, spec.PortCaptionVisible(port.Port{Type: port.PortTypeInput, Index: 0}))
	assert.False(t, spec.PortCaptionVisible(port.Port{Type: port.PortTypeInput, Index: 1}))
}

func TestVerify_PartialCaptionOverrideKeepsBlanks(t *testing.T) {
	def := uniformDefinition(2, 1)
	def.CaptionOverride = data.CaptionOverride{Inputs: map[int]string{1: "Divisor"}}

	spec, err := def.Verify()
	require.NoError(t, err)
	assert.Equal(t, "", spec.PortCaption(port.Port{Type: port.PortTypeInput, Index: 0}))
	assert.Equal(t, "Divisor", spec.PortCaption(port.Port{Type: port.PortTypeInput, Index: 1}))
}

func TestVerify_CaptionDefaultsToName(t *testing.T) {
	def := uniformDefinition(1, 1)
	def.CaptionVisible = true

	spec, err := def.Verify()
	require.NoError(t, err)
	assert.Equal(t, "TestKind", spec.Caption)
}

func TestVerify_Dynamic_SkipsStaticChecks(t *testing.T) {
	// A dynamic kind declares neither data type form; that is fine
	// because the engine trusts dynamic kinds at runtime.
	def := Definition{Name: "Dynamic", Dynamic: true}
	spec, err := def.Verify()
	require.NoError(t, err)
	assert.True(t, spec.Dynamic)
}

func TestVerify_MissingName(t *testing.T) {
	dt := decimalType
	def := Definition{NumPorts: port.Count{Inputs: 1}, AllDataTypes: &dt}
	_, err := def.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}
