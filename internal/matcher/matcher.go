// Package matcher implements spec §4.2: given a node and a rule's
// match pattern, decide applicability and record the matched
// sub-nodes into an ordered capture array.
//
// Grounded on the teacher's internal/matcher/tree.go ASTMatcher, which
// walked a tree-sitter query's captures in source order; this package
// does the in-memory analogue over the optimizer's own Node tree and a
// MatchEntry pattern instead of a compiled tree-sitter query.
package matcher

import (
	"github.com/oxhq/optiq/internal/diag"
	"github.com/oxhq/optiq/internal/node"
	"github.com/oxhq/optiq/internal/options"
	"github.com/oxhq/optiq/internal/rules"
)

const maxDepth = 255

// Match implements rules.Rule matching against n, per spec §4.2. ok is
// false both when the rule's safety flags are closed by opts and when
// the pattern genuinely fails to match the subtree at n; callers that
// need to distinguish "skipped" from "tried and failed" don't need to
// here, since the Driver only cares whether a rewrite happened.
func Match(n *node.Node, r rules.Rule, opts options.Options) ([]*node.Node, bool, error) {
	if !gated(r, opts) {
		return nil, false, nil
	}
	if len(r.Pattern) == 0 {
		return nil, false, nil
	}

	capture := make([]*node.Node, 0, len(r.Pattern))
	next, ok, err := matchEntry(r.Pattern, 0, n, 0, &capture)
	if err != nil {
		return nil, false, err
	}
	if !ok || next != len(r.Pattern) {
		return nil, false, nil
	}
	return capture, true, nil
}

func gated(r rules.Rule, opts options.Options) bool {
	if r.Safety&rules.SafetyUnsafeMath != 0 && !opts.Get("unsafe-math") {
		return false
	}
	if r.Safety&rules.SafetyUnsafeObject != 0 && !opts.Get("unsafe-object") {
		return false
	}
	return true
}

// matchEntry matches pattern[idx] (which must have the given depth)
// against n, appending to *capture on success, and returns the index
// just past every pattern entry consumed by n's subtree.
func matchEntry(pattern []rules.MatchEntry, idx int, n *node.Node, depth int, capture *[]*node.Node) (int, bool, error) {
	if depth > maxDepth {
		return idx, false, diag.NewInternalError("match depth exceeded %d", maxDepth)
	}
	e := pattern[idx]

	if !entryMatches(e, n, *capture) {
		return idx, false, nil
	}
	*capture = append(*capture, n)
	next := idx + 1

	if !e.HasChildren() {
		return next, true, nil
	}

	childDepth := depth + 1
	nChildren := n.ChildrenSize()
	consumed := 0
	for consumed < nChildren {
		if next >= len(pattern) || int(pattern[next].Depth) != childDepth {
			break
		}
		child := n.Child(consumed)
		var ok bool
		var err error
		next, ok, err = matchEntry(pattern, next, child, childDepth, capture)
		if err != nil {
			return next, false, err
		}
		if !ok {
			return next, false, nil
		}
		consumed++
	}
	if consumed != nChildren {
		// Partial match: extra real children beyond what the pattern
		// described fail here, per spec §4.2 step 4. The opposite case
		// (the pattern expected more children than n has) leaves those
		// entries unconsumed, and Match fails it when next stops short
		// of len(pattern).
		return next, false, nil
	}
	return next, true, nil
}

func entryMatches(e rules.MatchEntry, n *node.Node, captureSoFar []*node.Node) bool {
	if len(e.NodeKinds) > 0 && !containsKind(e.NodeKinds, n.Kind()) {
		return false
	}
	if e.Literal != nil && !literalMatches(*e.Literal, n, captureSoFar) {
		return false
	}
	if len(e.AttributesOptions) > 0 {
		matched := false
		for _, set := range e.AttributesOptions {
			if n.CompareAllAttributes(set) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if len(e.FlagsOptions) > 0 {
		matched := false
		for _, set := range e.FlagsOptions {
			if n.CompareAllFlags(set) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func containsKind(kinds []node.Kind, k node.Kind) bool {
	for _, x := range kinds {
		if x == k {
			return true
		}
	}
	return false
}

func literalMatches(c rules.LiteralConstraint, n *node.Node, captureSoFar []*node.Node) bool {
	switch c.Kind {
	case rules.LiteralNoSideEffect:
		return !n.HasSideEffects()
	case rules.LiteralIdentifierEquals:
		want := c.Str
		if c.CaptureRef >= 0 && c.CaptureRef < len(captureSoFar) {
			want = captureSoFar[c.CaptureRef].ToString()
		}
		return n.ToString() == want
	case rules.LiteralMaskEquals:
		if !n.Kind().IsNumeric() {
			return false
		}
		v, ok := n.ToInteger()
		if !ok {
			return false
		}
		return v&c.Mask == c.Expected
	case rules.LiteralEquals:
		switch {
		case c.IsInt:
			v, ok := n.ToInteger()
			return ok && v == c.Int
		case c.IsFloat:
			v, ok := n.ToFloatingPoint()
			if !ok {
				return false
			}
			// NaN matches NaN, per spec §4.2 edge case.
			if isNaN(c.Float) && isNaN(v) {
				return true
			}
			return v == c.Float
		case c.IsString:
			return n.Kind() == node.STRING && n.String_() == c.Str
		default:
			return false
		}
	case rules.LiteralTruthy:
		return n.ToBooleanTypeOnly()
	case rules.LiteralFalsy:
		return !n.ToBooleanTypeOnly()
	default:
		return true
	}
}

func isNaN(f float64) bool { return f != f }
