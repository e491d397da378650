package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/optiq/internal/diag"
	"github.com/oxhq/optiq/internal/node"
	"github.com/oxhq/optiq/internal/rules"
)

// wrap builds root(child) so child has a parent and replaceAt can
// exercise the common ReplaceWith path instead of the root-only
// Become fallback.
func wrap(child *node.Node) *node.Node {
	root := node.New(node.BLOCK)
	root.AppendChild(child)
	return root
}

func TestApplyArithmeticIntegerFastPath(t *testing.T) {
	a, b := node.NewInteger(3), node.NewInteger(4)
	dest := node.New(node.ADD)
	wrap(dest)
	dest.AppendChild(a)
	dest.AppendChild(b)
	capture := []*node.Node{dest, a, b}

	rec := diag.NewRecorder()
	err := Apply(capture, []rules.TransformOp{{Op: rules.OpAdd, Args: [6]int{1, 2, 0}}}, rec)
	require.NoError(t, err)
	assert.Equal(t, node.INTEGER, capture[0].Kind())
	assert.Equal(t, int64(7), capture[0].Integer())
}

func TestApplyDivideByZeroWarnsAndProducesInfinity(t *testing.T) {
	a, b := node.NewInteger(5), node.NewInteger(0)
	dest := node.New(node.DIVIDE)
	wrap(dest)
	dest.AppendChild(a)
	dest.AppendChild(b)
	capture := []*node.Node{dest, a, b}

	rec := diag.NewRecorder()
	err := Apply(capture, []rules.TransformOp{{Op: rules.OpDivide, Args: [6]int{1, 2, 0}}}, rec)
	require.NoError(t, err)

	f, ok := capture[0].ToFloatingPoint()
	require.True(t, ok)
	assert.Greater(t, f, 0.0)
	assert.Equal(t, 0, rec.ErrorCount())
	assert.Len(t, rec.Entries(), 1)
}

func TestApplyBitwiseAndInt32Coercion(t *testing.T) {
	a := node.NewFloat(4294967296) // wraps to 0 as int32
	b := node.NewInteger(7)
	dest := node.New(node.BITWISE_AND)
	wrap(dest)
	dest.AppendChild(a)
	dest.AppendChild(b)
	capture := []*node.Node{dest, a, b}

	err := Apply(capture, []rules.TransformOp{{Op: rules.OpBitwiseAnd, Args: [6]int{1, 2, 0}}}, diag.NewRecorder())
	require.NoError(t, err)
	assert.Equal(t, int64(0), capture[0].Integer())
}

func TestApplyMoveDetachesSourceAndReplacesDest(t *testing.T) {
	x := node.New(node.IDENTIFIER)
	zero := node.NewInteger(0)
	addNode := node.New(node.ADD)
	root := wrap(addNode)
	addNode.AppendChild(x)
	addNode.AppendChild(zero)
	capture := []*node.Node{addNode, x, zero}

	err := Apply(capture, []rules.TransformOp{{Op: rules.OpMove, Args: [6]int{1, 0}}}, diag.NewRecorder())
	require.NoError(t, err)
	assert.Equal(t, x, root.Child(0))
	assert.Equal(t, root, x.Parent())
}

func TestApplySwapExchangesPositions(t *testing.T) {
	a := node.NewInteger(1)
	b := node.NewInteger(2)
	list := node.New(node.LIST)
	wrap(list)
	list.AppendChild(a)
	list.AppendChild(b)
	capture := []*node.Node{a, b}

	err := Apply(capture, []rules.TransformOp{{Op: rules.OpSwap, Args: [6]int{0, 1}}}, diag.NewRecorder())
	require.NoError(t, err)
	assert.Equal(t, b, list.Child(0))
	assert.Equal(t, a, list.Child(1))
}

func TestApplyRemoveRootMarksUnknown(t *testing.T) {
	target := node.New(node.EMPTY)
	capture := []*node.Node{target}
	err := Apply(capture, []rules.TransformOp{{Op: rules.OpRemove, Args: [6]int{0}}}, diag.NewRecorder())
	require.NoError(t, err)
	assert.Equal(t, node.UNKNOWN, target.Kind())
}

func TestApplyRemoveNonRootDetaches(t *testing.T) {
	a := node.NewInteger(1)
	b := node.NewInteger(2)
	list := node.New(node.LIST)
	wrap(list)
	list.AppendChild(a)
	list.AppendChild(b)
	capture := []*node.Node{list, a, b}

	err := Apply(capture, []rules.TransformOp{{Op: rules.OpRemove, Args: [6]int{1}}}, diag.NewRecorder())
	require.NoError(t, err)
	assert.Equal(t, 1, list.ChildrenSize())
	assert.Equal(t, b, list.Child(0))
}

func TestApplySetNodeTypeRebuildsWithChildren(t *testing.T) {
	child := node.NewInteger(1)
	target := node.New(node.LOGICAL_NOT)
	wrap(target)
	target.AppendChild(child)
	capture := []*node.Node{target}

	err := Apply(capture, []rules.TransformOp{{Op: rules.OpSetNodeType, Args: [6]int{0}, KindConst: node.BOOLEAN_CAST}}, diag.NewRecorder())
	require.NoError(t, err)
	assert.Equal(t, node.BOOLEAN_CAST, capture[0].Kind())
	require.Equal(t, 1, capture[0].ChildrenSize())
	assert.Equal(t, child, capture[0].Child(0))
}

func TestApplyWhileTrueToForever(t *testing.T) {
	body := node.New(node.BLOCK)
	cond := node.New(node.TRUE)
	while := node.New(node.WHILE)
	wrap(while)
	while.AppendChild(cond)
	while.AppendChild(body)
	capture := []*node.Node{while, cond, body}

	err := Apply(capture, []rules.TransformOp{{Op: rules.OpWhileTrueToForever, Args: [6]int{0, 2}}}, diag.NewRecorder())
	require.NoError(t, err)

	result := capture[0]
	require.Equal(t, node.FOR, result.Kind())
	require.Equal(t, 4, result.ChildrenSize())
	assert.Equal(t, body, result.Child(3))
	for i := 0; i < 3; i++ {
		assert.Equal(t, node.EMPTY, result.Child(i).Kind())
	}
}

func TestApplyMatchLiteralCompiles(t *testing.T) {
	text := node.NewString("hello")
	pattern := node.NewString("/^he.*/i")
	dest := node.New(node.MATCH)
	wrap(dest)
	dest.AppendChild(text)
	dest.AppendChild(pattern)
	capture := []*node.Node{dest, text, pattern}

	err := Apply(capture, []rules.TransformOp{{Op: rules.OpMatch, Args: [6]int{1, 2, 0}}}, diag.NewRecorder())
	require.NoError(t, err)
	assert.Equal(t, node.TRUE, capture[0].Kind())
}

func TestApplyMatchInvalidRegexSynthesizesThrow(t *testing.T) {
	text := node.NewString("hello")
	pattern := node.NewString("/[/")
	dest := node.New(node.MATCH)
	wrap(dest)
	dest.AppendChild(text)
	dest.AppendChild(pattern)
	capture := []*node.Node{dest, text, pattern}

	rec := diag.NewRecorder()
	err := Apply(capture, []rules.TransformOp{{Op: rules.OpMatch, Args: [6]int{1, 2, 0}}}, rec)
	require.NoError(t, err)
	assert.Equal(t, node.THROW, capture[0].Kind())
	assert.Equal(t, 1, rec.ErrorCount())
}

func TestApplySmartMatchWhitespaceNormalization(t *testing.T) {
	a := node.NewString("a   b")
	b := node.NewString("a b")
	dest := node.New(node.SMART_MATCH)
	wrap(dest)
	dest.AppendChild(a)
	dest.AppendChild(b)
	capture := []*node.Node{dest, a, b}

	err := Apply(capture, []rules.TransformOp{{Op: rules.OpSmartMatch, Args: [6]int{1, 2, 0}}}, diag.NewRecorder())
	require.NoError(t, err)
	assert.Equal(t, node.TRUE, capture[0].Kind())
}

func TestCheckIdxOutOfRange(t *testing.T) {
	capture := []*node.Node{node.NewInteger(1)}
	err := Apply(capture, []rules.TransformOp{{Op: rules.OpNegate, Args: [6]int{5, 0}}}, diag.NewRecorder())
	require.Error(t, err)
	assert.IsType(t, diag.InternalError{}, err)
}
