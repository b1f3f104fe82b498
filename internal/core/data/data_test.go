package data

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeData is a minimal envelope for exercising the package.
type fakeData struct {
	dt    NodeDataType
	guard sync.Mutex
}

func (f *fakeData) DataType() NodeDataType { return f.dt }
func (f *fakeData) Text() string           { return f.dt.ID }
func (f *fakeData) Guard() *sync.Mutex     { return &f.guard }

func TestNodeDataType_SameAs(t *testing.T) {
	a := NodeDataType{ID: "decimal", Name: "Decimal"}
	b := NodeDataType{ID: "decimal", Name: "Something Else Entirely"}
	c := NodeDataType{ID: "integer", Name: "Decimal"}

	assert.True(t, a.SameAs(b), "display name must not matter")
	assert.False(t, a.SameAs(c), "ID must matter")
}

func TestSameType_NilEnvelopes(t *testing.T) {
	d := &fakeData{dt: NodeDataType{ID: "decimal", Name: "Decimal"}}
	assert.False(t, SameType(nil, d))
	assert.False(t, SameType(d, nil))
	assert.True(t, SameType(d, d))
}

func TestLockAll(t *testing.T) {
	a := &fakeData{dt: NodeDataType{ID: "a"}}
	b := &fakeData{dt: NodeDataType{ID: "b"}}

	unlock := LockAll(a, nil, b)
	// Both guards are held inside the scope.
	assert.False(t, a.guard.TryLock())
	assert.False(t, b.guard.TryLock())
	unlock()
	assert.True(t, a.guard.TryLock())
	assert.True(t, b.guard.TryLock())
	a.guard.Unlock()
	b.guard.Unlock()
}

func TestLockAll_SameEnvelopeTwice(t *testing.T) {
	// One producer wired to two inputs of the same node hands the
	// consumer the same envelope twice; its guard is taken once.
	a := &fakeData{dt: NodeDataType{ID: "a"}}

	unlock := LockAll(a, a)
	assert.False(t, a.guard.TryLock())
	unlock()
	assert.True(t, a.guard.TryLock())
	a.guard.Unlock()
}

func TestConverterRegistry(t *testing.T) {
	integer := NodeDataType{ID: "integer", Name: "Integer"}
	decimal := NodeDataType{ID: "decimal", Name: "Decimal"}

	reg := NewConverterRegistry()

	t.Run("rejects nil function", func(t *testing.T) {
		err := reg.Register(TypeConverter{From: integer, To: decimal})
		assert.ErrorIs(t, err, ErrNilConverter)
	})

	t.Run("rejects untyped endpoints", func(t *testing.T) {
		err := reg.Register(TypeConverter{
			From:    NodeDataType{},
			To:      decimal,
			Convert: func(d NodeData) NodeData { return d },
		})
		assert.ErrorIs(t, err, ErrUntypedConverter)
	})

	t.Run("rejects identity conversion", func(t *testing.T) {
		err := reg.Register(TypeConverter{
			From:    decimal,
			To:      decimal,
			Convert: func(d NodeData) NodeData { return d },
		})
		assert.ErrorIs(t, err, ErrSelfConversion)
	})

	t.Run("lookup is exact and directional", func(t *testing.T) {
		require.NoError(t, reg.Register(TypeConverter{
			From:    integer,
			To:      decimal,
			Convert: func(d NodeData) NodeData { return d },
		}))

		_, ok := reg.Lookup(integer, decimal)
		assert.True(t, ok)
		_, ok = reg.Lookup(decimal, integer)
		assert.False(t, ok, "reverse direction must not be implied")
	})
}
