// Package integration contains end-to-end tests for NodeFlow
package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeptofine/nodeflow/internal/adapters/repository/memory"
	"github.com/zeptofine/nodeflow/pkg/calculator"
	"github.com/zeptofine/nodeflow/pkg/nodeflow"
)

func buildRegistry(t *testing.T) *nodeflow.Registry {
	t.Helper()
	registry := nodeflow.NewRegistry()
	require.NoError(t, calculator.Register(registry))
	return registry
}

// TestFlowLifecycle drives a full flow: build, evaluate, persist, reload
// and keep evaluating.
func TestFlowLifecycle(t *testing.T) {
	editor := nodeflow.NewEditorWithStore(buildRegistry(t), memory.NewFlowStore(nil))
	sc := editor.Scene()

	a, err := sc.CreateNode("NumberSource")
	require.NoError(t, err)
	b, err := sc.CreateNode("NumberSource")
	require.NoError(t, err)
	product, err := sc.CreateNode("Multiplication")
	require.NoError(t, err)
	quotient, err := sc.CreateNode("Division")
	require.NoError(t, err)
	display, err := sc.CreateNode("NumberDisplay")
	require.NoError(t, err)

	_, err = sc.Connect(a.ID, 0, product.ID, 0)
	require.NoError(t, err)
	_, err = sc.Connect(b.ID, 0, product.ID, 1)
	require.NoError(t, err)
	_, err = sc.Connect(product.ID, 0, quotient.ID, 0)
	require.NoError(t, err)
	_, err = sc.Connect(b.ID, 0, quotient.ID, 1)
	require.NoError(t, err)
	_, err = sc.Connect(quotient.ID, 0, display.ID, 0)
	require.NoError(t, err)

	left := a.Model.(*calculator.NumberSource)
	right := b.Model.(*calculator.NumberSource)

	// (6 * 2) / 2 = 6
	left.SetNumber(6)
	right.SetNumber(2)
	assert.Equal(t, "6", display.Model.(*calculator.NumberDisplay).Text())

	ctx := context.Background()
	require.NoError(t, editor.SaveFlow(ctx, "pipeline"))

	assert.Contains(t, editor.Scene().Registry().Categories(), calculator.Category)

	// Reload into the same editor and verify the restored flow computes.
	require.NoError(t, editor.LoadFlow(ctx, "pipeline"))

	restoredA, err := editor.Scene().Node(a.ID)
	require.NoError(t, err)
	restoredDisplay, err := editor.Scene().Node(display.ID)
	require.NoError(t, err)
	assert.Equal(t, "6", restoredDisplay.Model.(*calculator.NumberDisplay).Text())

	// New values flow through the restored wires.
	restoredA.Model.(*calculator.NumberSource).SetNumber(10)
	assert.Equal(t, "10", restoredDisplay.Model.(*calculator.NumberDisplay).Text())
}

// TestFlowDivisionByZeroRecovers exercises the error path end to end.
func TestFlowDivisionByZeroRecovers(t *testing.T) {
	editor := nodeflow.NewEditor(buildRegistry(t))
	sc := editor.Scene()

	num, err := sc.CreateNode("NumberSource")
	require.NoError(t, err)
	den, err := sc.CreateNode("NumberSource")
	require.NoError(t, err)
	div, err := sc.CreateNode("Division")
	require.NoError(t, err)
	display, err := sc.CreateNode("NumberDisplay")
	require.NoError(t, err)

	_, err = sc.Connect(num.ID, 0, div.ID, 0)
	require.NoError(t, err)
	_, err = sc.Connect(den.ID, 0, div.ID, 1)
	require.NoError(t, err)
	_, err = sc.Connect(div.ID, 0, display.ID, 0)
	require.NoError(t, err)

	num.Model.(*calculator.NumberSource).SetNumber(8)
	den.Model.(*calculator.NumberSource).SetNumber(0)
	assert.Equal(t, "Division by zero error", div.Model.Validation().Message)

	den.Model.(*calculator.NumberSource).SetNumber(4)
	assert.Equal(t, "2", display.Model.(*calculator.NumberDisplay).Text())
}
