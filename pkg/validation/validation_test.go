package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    string `json:"id" validate:"required,node_id"`
	Count int    `json:"count" validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Struct(&sample{ID: "node-1", Count: 2}))
	})

	t.Run("collects field errors", func(t *testing.T) {
		err := Struct(&sample{ID: "", Count: -1})
		require.Error(t, err)

		errs, ok := err.(Errors)
		require.True(t, ok)
		assert.Len(t, errs, 2)
		assert.Contains(t, err.Error(), "field is required")
		assert.Contains(t, err.Error(), "at least 0")
	})

	t.Run("node_id format", func(t *testing.T) {
		err := Struct(&sample{ID: "not a node id!"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "valid node identifier")
	})
}
