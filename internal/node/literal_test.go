package node

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToIntegerCoercions(t *testing.T) {
	cases := []struct {
		n    *Node
		want int64
		ok   bool
	}{
		{NewInteger(5), 5, true},
		{NewFloat(5.9), 5, true},
		{NewBool(true), 1, true},
		{NewBool(false), 0, true},
		{New(UNDEFINED), 0, true},
		{NewString("42"), 42, true},
		{NewString("nope"), 0, false},
		{New(CALL), 0, false},
	}
	for _, c := range cases {
		got, ok := c.n.ToInteger()
		assert.Equal(t, c.ok, ok, "ToInteger(%v) ok", c.n.Kind())
		if c.ok {
			assert.Equal(t, c.want, got, "ToInteger(%v)", c.n.Kind())
		}
	}
}

func TestToFloatingPointUndefinedIsNaN(t *testing.T) {
	f, ok := New(UNDEFINED).ToFloatingPoint()
	require.True(t, ok)
	assert.True(t, math.IsNaN(f))
}

func TestToBooleanTypeOnlyDoesNotMutate(t *testing.T) {
	n := NewInteger(0)
	assert.False(t, n.ToBooleanTypeOnly())
	assert.Equal(t, INTEGER, n.Kind())
}

func TestToBooleanMutates(t *testing.T) {
	n := NewInteger(0)
	b := n.ToBoolean()
	assert.False(t, b)
	assert.Equal(t, FALSE, n.Kind())
}

func TestToNumberStringParsing(t *testing.T) {
	n := NewString("  3.5  ")
	require.True(t, n.ToNumber())
	assert.Equal(t, FLOATING_POINT, n.Kind())
	assert.Equal(t, 3.5, n.Float())

	n2 := NewString("")
	require.True(t, n2.ToNumber())
	assert.Equal(t, INTEGER, n2.Kind())
	assert.Equal(t, int64(0), n2.Integer())

	n3 := NewString("garbage")
	require.True(t, n3.ToNumber())
	assert.Equal(t, FLOATING_POINT, n3.Kind())
	assert.True(t, math.IsNaN(n3.Float()))
}

func TestToStringFormatting(t *testing.T) {
	assert.Equal(t, "Infinity", NewFloat(math.Inf(1)).ToString())
	assert.Equal(t, "NaN", NewFloat(math.NaN()).ToString())
	assert.Equal(t, "-7", NewInteger(-7).ToString())
}

func TestToUnknownMarksForCleanup(t *testing.T) {
	n := NewInteger(1)
	n.ToUnknown()
	assert.Equal(t, UNKNOWN, n.Kind())
}
