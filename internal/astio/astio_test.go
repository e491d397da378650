package astio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/optiq/internal/node"
)

func buildSample() *node.Node {
	add := node.New(node.ADD)
	add.SetPosition(node.Position{Filename: "a.js", Line: 3, Column: 5})
	add.AppendChild(node.New(node.IDENTIFIER))
	add.AppendChild(node.NewInteger(0))
	return add
}

func TestMarshalUnmarshalRoundTrips(t *testing.T) {
	original := buildSample()
	data, err := Marshal(original)
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)

	require.Equal(t, node.ADD, decoded.Kind())
	require.Equal(t, 2, decoded.ChildrenSize())
	assert.Equal(t, node.IDENTIFIER, decoded.Child(0).Kind())
	assert.Equal(t, node.INTEGER, decoded.Child(1).Kind())
	assert.Equal(t, int64(0), decoded.Child(1).Integer())
	assert.Equal(t, 3, decoded.Position().Line)
	assert.Equal(t, "a.js", decoded.Position().Filename)
}

func TestUnmarshalRejectsUnknownKind(t *testing.T) {
	_, err := Unmarshal([]byte(`{"kind":"NOT_A_REAL_KIND"}`))
	assert.Error(t, err)
}

func TestMarshalOmitsZeroLiteralFields(t *testing.T) {
	data, err := Marshal(node.New(node.ADD))
	require.NoError(t, err)
	s := string(data)
	for _, field := range []string{`"int"`, `"float"`, `"str"`, `"bool"`} {
		assert.NotContains(t, s, field)
	}
}
