package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/optiq/internal/node"
	"github.com/oxhq/optiq/internal/options"
	"github.com/oxhq/optiq/internal/rules"
)

func addZeroRule() rules.Rule {
	return rules.Rule{
		Name: "add-zero",
		Pattern: []rules.MatchEntry{
			{Depth: 0, NodeKinds: []node.Kind{node.ADD}, Flags: rules.MatchFlagChildren},
			{Depth: 1},
			{
				Depth:     1,
				NodeKinds: []node.Kind{node.INTEGER},
				Literal:   &rules.LiteralConstraint{Kind: rules.LiteralEquals, IsInt: true, Int: 0},
			},
		},
	}
}

func TestMatchSucceedsAndCaptures(t *testing.T) {
	add := node.New(node.ADD)
	x := node.New(node.IDENTIFIER)
	zero := node.NewInteger(0)
	add.AppendChild(x)
	add.AppendChild(zero)

	capture, ok, err := Match(add, addZeroRule(), options.Default())
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, capture, 3)
	assert.Equal(t, add, capture[0])
	assert.Equal(t, x, capture[1])
	assert.Equal(t, zero, capture[2])
}

func TestMatchFailsOnWrongChildCount(t *testing.T) {
	add := node.New(node.ADD)
	add.AppendChild(node.New(node.IDENTIFIER))
	add.AppendChild(node.NewInteger(0))
	add.AppendChild(node.NewInteger(1)) // extra child

	_, ok, err := Match(add, addZeroRule(), options.Default())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchFailsOnWrongLiteral(t *testing.T) {
	add := node.New(node.ADD)
	add.AppendChild(node.New(node.IDENTIFIER))
	add.AppendChild(node.NewInteger(1))

	_, ok, err := Match(add, addZeroRule(), options.Default())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchGatedByUnsafeMath(t *testing.T) {
	r := addZeroRule()
	r.Safety = rules.SafetyUnsafeMath

	add := node.New(node.ADD)
	add.AppendChild(node.New(node.IDENTIFIER))
	add.AppendChild(node.NewInteger(0))

	_, ok, err := Match(add, r, options.Default())
	require.NoError(t, err)
	assert.False(t, ok, "unsafe-math rule should not match with defaults")

	_, ok, err = Match(add, r, options.Options{UnsafeMath: true})
	require.NoError(t, err)
	assert.True(t, ok, "unsafe-math rule should match once enabled")
}

func TestMatchNoSideEffectLiteral(t *testing.T) {
	r := rules.Rule{
		Pattern: []rules.MatchEntry{
			{Depth: 0, NodeKinds: []node.Kind{node.MULTIPLY}, Flags: rules.MatchFlagChildren},
			{Depth: 1, Literal: &rules.LiteralConstraint{Kind: rules.LiteralNoSideEffect}},
			{Depth: 1, NodeKinds: []node.Kind{node.INTEGER}, Literal: &rules.LiteralConstraint{Kind: rules.LiteralEquals, IsInt: true, Int: 0}},
		},
	}

	withCall := node.New(node.MULTIPLY)
	withCall.AppendChild(node.New(node.CALL))
	withCall.AppendChild(node.NewInteger(0))
	_, ok, err := Match(withCall, r, options.Default())
	require.NoError(t, err)
	assert.False(t, ok, "a side-effecting operand should not match LiteralNoSideEffect")

	withIdent := node.New(node.MULTIPLY)
	withIdent.AppendChild(node.New(node.IDENTIFIER))
	withIdent.AppendChild(node.NewInteger(0))
	_, ok, err = Match(withIdent, r, options.Default())
	require.NoError(t, err)
	assert.True(t, ok, "a side-effect-free operand should match LiteralNoSideEffect")
}
