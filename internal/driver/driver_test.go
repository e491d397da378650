package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/optiq/internal/diag"
	"github.com/oxhq/optiq/internal/node"
	"github.com/oxhq/optiq/internal/options"
)

// buildProgram wraps expr in a one-statement PROGRAM so expr always has
// a parent and self-rewrites go through the common ReplaceWith path.
func buildProgram(expr *node.Node) *node.Node {
	root := node.New(node.PROGRAM)
	root.AppendChild(expr)
	return root
}

func TestOptimizeFoldsNestedLiteralsKeepsIdentifierPlusZero(t *testing.T) {
	// (x + 0) + (1 + 2) -> (x + 0) + 3: the nested literal sum folds, but
	// x + 0 stays because add-zero only fires on a numeric literal x (an
	// identifier could hold a string). Exercises post-order recursion
	// plus the per-node fixed point.
	x := node.New(node.IDENTIFIER)
	left := node.New(node.ADD)
	left.AppendChild(x)
	left.AppendChild(node.NewInteger(0))

	right := node.New(node.ADD)
	right.AppendChild(node.NewInteger(1))
	right.AppendChild(node.NewInteger(2))

	outer := node.New(node.ADD)
	outer.AppendChild(left)
	outer.AppendChild(right)
	root := buildProgram(outer)

	opts := options.Options{UnsafeMath: true}
	rec := diag.NewRecorder()
	require.NoError(t, OptimizeRoot(root, opts, rec))

	result := root.Child(0)
	require.Equal(t, node.ADD, result.Kind())
	assert.Equal(t, left, result.Child(0))
	assert.Equal(t, x, left.Child(0))
	require.Equal(t, node.INTEGER, result.Child(1).Kind())
	assert.Equal(t, int64(3), result.Child(1).Integer())
}

func TestOptimizeRejectsNonRoot(t *testing.T) {
	root := node.New(node.BLOCK)
	child := node.NewInteger(1)
	root.AppendChild(child)

	err := OptimizeRoot(child, options.Default(), diag.NewRecorder())
	assert.Error(t, err)
}

func TestOptimizeWhileTrueBecomesForever(t *testing.T) {
	body := node.New(node.BLOCK)
	while := node.New(node.WHILE)
	while.AppendChild(node.New(node.TRUE))
	while.AppendChild(body)
	root := buildProgram(while)

	require.NoError(t, OptimizeRoot(root, options.Default(), diag.NewRecorder()))
	result := root.Child(0)
	require.Equal(t, node.FOR, result.Kind())
	assert.Equal(t, body, result.Child(3))
}

func TestOptimizeGatesUnsafeMathByDefault(t *testing.T) {
	x := node.New(node.IDENTIFIER)
	mul := node.New(node.MULTIPLY)
	mul.AppendChild(x)
	mul.AppendChild(node.NewInteger(0))
	root := buildProgram(mul)

	require.NoError(t, OptimizeRoot(root, options.Default(), diag.NewRecorder()))
	assert.Equal(t, node.MULTIPLY, root.Child(0).Kind())
}

func TestOptimizeNoopOnUnknownRoot(t *testing.T) {
	changed, err := Optimize(node.New(node.UNKNOWN), options.Default(), diag.NewRecorder())
	require.NoError(t, err)
	assert.False(t, changed)
}
