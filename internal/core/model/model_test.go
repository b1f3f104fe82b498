package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeptofine/nodeflow/internal/core/data"
	"github.com/zeptofine/nodeflow/internal/core/port"
)

// passthroughModel is the minimal concrete kind used in these tests.
type passthroughModel struct {
	Base
}

func newPassthrough(spec *Spec) Model { return &passthroughModel{Base: NewBase(spec)} }

func TestBase_Defaults(t *testing.T) {
	spec := uniformDefinition(1, 1).MustVerify()
	m := newPassthrough(spec)

	assert.Same(t, spec, m.Spec())
	assert.Nil(t, m.OutData(0))
	assert.Equal(t, Valid(), m.Validation())
	assert.Equal(t, ConnectionPolicyMany, m.PortOutConnectionPolicy(0))
	assert.False(t, m.Resizable())
	assert.Nil(t, m.EmbeddedWidget())
	assert.Nil(t, m.PainterDelegate())
	assert.Empty(t, m.Save())

	// Tolerated no-ops.
	m.SetInData(nil, port.Port{Type: port.PortTypeInput, Index: 0})
	m.Restore(map[string]any{"junk": struct{}{}})
	m.InputConnectionCreated(ConnectionEvent{})
	m.OutputConnectionDeleted(ConnectionEvent{})
}

func TestValidationConstructors(t *testing.T) {
	assert.Equal(t, Validation{State: ValidationValid}, Valid())
	assert.Equal(t, Validation{State: ValidationWarning, Message: "m"}, Warning("m"))
	assert.Equal(t, Validation{State: ValidationError, Message: "m"}, Errored("m"))
}

func TestEmitter_DeliversInOrder(t *testing.T) {
	var e Emitter
	var got []int
	e.OnUpdated(func(i int) { got = append(got, i) })
	e.OnUpdated(func(i int) { got = append(got, i+100) })
	e.OnInvalidated(func(i int) { got = append(got, -i) })

	e.EmitUpdated(3)
	e.EmitInvalidated(5)

	assert.Equal(t, []int{3, 103, -5}, got)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	t.Run("rejects unnamed and nil-factory registrations", func(t *testing.T) {
		err := reg.Register(Registration{Factory: newPassthrough})
		assert.ErrorIs(t, err, ErrInvalidModelName)

		err = reg.Register(Registration{Definition: uniformDefinition(1, 1)})
		assert.ErrorIs(t, err, ErrNilFactory)
	})

	t.Run("register and create", func(t *testing.T) {
		require.NoError(t, reg.Register(Registration{
			Definition: uniformDefinition(1, 1),
			Factory:    newPassthrough,
			Category:   "Operations",
		}))

		m, err := reg.Create("TestKind")
		require.NoError(t, err)
		assert.Equal(t, "TestKind", m.Spec().Name)

		spec, err := reg.Spec("TestKind")
		require.NoError(t, err)
		assert.Same(t, m.Spec(), spec, "one verified descriptor per kind")
	})

	t.Run("duplicate name refused", func(t *testing.T) {
		err := reg.Register(Registration{
			Definition: uniformDefinition(1, 1),
			Factory:    newPassthrough,
		})
		assert.ErrorIs(t, err, ErrDuplicateModel)
	})

	t.Run("definition error aborts registration", func(t *testing.T) {
		err := reg.Register(Registration{
			Definition: Definition{Name: "Bad", NumPorts: port.Count{Inputs: 1}},
			Factory:    newPassthrough,
		})
		require.Error(t, err)
		_, err = reg.Create("Bad")
		assert.ErrorIs(t, err, ErrModelNotFound)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := reg.Create("Nope")
		assert.ErrorIs(t, err, ErrModelNotFound)
	})

	t.Run("categories and models", func(t *testing.T) {
		assert.Equal(t, []string{"Operations"}, reg.Categories())
		assert.Equal(t, []string{"TestKind"}, reg.Models("Operations"))
		assert.Empty(t, reg.Models("Missing"))
	})

	t.Run("type converters", func(t *testing.T) {
		integer := data.NodeDataType{ID: "integer", Name: "Integer"}
		require.NoError(t, reg.RegisterTypeConverter(data.TypeConverter{
			From:    integer,
			To:      decimalType,
			Convert: func(d data.NodeData) data.NodeData { return d },
		}))

		_, ok := reg.Converter(integer, decimalType)
		assert.True(t, ok)
		_, ok = reg.Converter(decimalType, integer)
		assert.False(t, ok)
	})
}
