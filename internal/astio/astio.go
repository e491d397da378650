// Package astio loads and dumps node.Node trees as JSON, the on-disk
// shape for fixture files, the CLI's input/output, and test golden
// files, grounded on the teacher's config.PrintResultCLI/internal/model
// JSON conventions (plain exported struct fields, encoding/json,
// 2-space indentation) rather than anything format-specific to the
// original parser.
package astio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/oxhq/optiq/internal/node"
)

// wireNode is the JSON-facing shape of a node.Node. Literal fields are
// omitempty so a fixture for, say, an ADD node doesn't carry four
// useless zero-value literal columns.
type wireNode struct {
	Kind     string      `json:"kind"`
	Int      int64       `json:"int,omitempty"`
	Float    float64     `json:"float,omitempty"`
	Str      string      `json:"str,omitempty"`
	Bool     bool        `json:"bool,omitempty"`
	Children []*wireNode `json:"children,omitempty"`
	File     string      `json:"file,omitempty"`
	Line     int         `json:"line,omitempty"`
	Column   int         `json:"column,omitempty"`
}

var kindByName = func() map[string]node.Kind {
	m := make(map[string]node.Kind, 64)
	// Walk every kind the stringer table knows by probing String(); the
	// enum is small, closed, and contiguous from UNKNOWN, so this is
	// cheaper to maintain than a second hand-written name table that
	// could drift from kind.go.
	for k := node.Kind(0); k <= node.BOOLEAN_CAST; k++ {
		m[k.String()] = k
	}
	return m
}()

// Encode writes the tree rooted at n to w as indented JSON.
func Encode(w io.Writer, n *node.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toWire(n))
}

// Marshal is Encode into a byte slice, for callers that want the bytes
// directly rather than an io.Writer (diagstore fixtures, tests).
func Marshal(n *node.Node) ([]byte, error) {
	return json.MarshalIndent(toWire(n), "", "  ")
}

// Decode reads a JSON tree from r and builds the equivalent node.Node
// graph, detached (no parent) at the root.
func Decode(r io.Reader) (*node.Node, error) {
	var w wireNode
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, fmt.Errorf("astio: decode: %w", err)
	}
	return fromWire(&w)
}

// Unmarshal is Decode from a byte slice.
func Unmarshal(data []byte) (*node.Node, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("astio: unmarshal: %w", err)
	}
	return fromWire(&w)
}

func toWire(n *node.Node) *wireNode {
	if n == nil {
		return nil
	}
	w := &wireNode{Kind: n.Kind().String()}
	pos := n.Position()
	w.File, w.Line, w.Column = pos.Filename, pos.Line, pos.Column

	switch n.Kind() {
	case node.INTEGER:
		w.Int = n.Integer()
	case node.FLOATING_POINT:
		w.Float = n.Float()
	case node.STRING:
		w.Str = n.String_()
	case node.TRUE, node.FALSE:
		w.Bool = n.Kind() == node.TRUE
	}

	for i := 0; i < n.ChildrenSize(); i++ {
		w.Children = append(w.Children, toWire(n.Child(i)))
	}
	return w
}

func fromWire(w *wireNode) (*node.Node, error) {
	kind, ok := kindByName[w.Kind]
	if !ok {
		return nil, fmt.Errorf("astio: unknown node kind %q", w.Kind)
	}

	var n *node.Node
	switch kind {
	case node.INTEGER:
		n = node.NewInteger(w.Int)
	case node.FLOATING_POINT:
		n = node.NewFloat(w.Float)
	case node.STRING:
		n = node.NewString(w.Str)
	default:
		n = node.New(kind)
	}
	n.SetPosition(node.Position{Filename: w.File, Line: w.Line, Column: w.Column})

	for _, c := range w.Children {
		child, err := fromWire(c)
		if err != nil {
			return nil, err
		}
		n.AppendChild(child)
	}
	return n, nil
}
