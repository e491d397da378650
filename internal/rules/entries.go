package rules

import "github.com/oxhq/optiq/internal/node"

// Small constructors for the match entries the category tables below
// build patterns out of. None of these mutate shared state; every call
// returns a fresh MatchEntry value, matching spec §3's data-only shape.

var literalKinds = []node.Kind{
	node.INTEGER, node.FLOATING_POINT, node.STRING,
	node.TRUE, node.FALSE, node.UNDEFINED, node.NULL,
}

// any matches one node of whatever kind at depth, without descending
// into its children — used to capture a whole subtree intact.
func any(depth uint8) MatchEntry {
	return MatchEntry{Depth: depth}
}

// anyNoSideEffect is any, further constrained to subtrees a rule can
// discard outright without changing observable behavior.
func anyNoSideEffect(depth uint8) MatchEntry {
	return MatchEntry{Depth: depth, Literal: &LiteralConstraint{Kind: LiteralNoSideEffect}}
}

// literalAny matches any of the literal-carrying kinds, which is
// enough to guarantee HasSideEffects() is false and ToString/ToNumber
// behave predictably.
func literalAny(depth uint8) MatchEntry {
	return MatchEntry{Depth: depth, NodeKinds: literalKinds}
}

// ofKind matches a node whose kind is one of kinds, without descending.
func ofKind(depth uint8, kinds ...node.Kind) MatchEntry {
	return MatchEntry{Depth: depth, NodeKinds: kinds}
}

// parent matches a node whose kind is one of kinds and whose children
// the following pattern entries (at depth+1) must fully describe.
func parent(depth uint8, kinds ...node.Kind) MatchEntry {
	return MatchEntry{Depth: depth, NodeKinds: kinds, Flags: MatchFlagChildren}
}

func intEquals(depth uint8, v int64) MatchEntry {
	return MatchEntry{
		Depth:     depth,
		NodeKinds: []node.Kind{node.INTEGER},
		Literal:   &LiteralConstraint{Kind: LiteralEquals, IsInt: true, Int: v},
	}
}

func stringLit(depth uint8) MatchEntry {
	return MatchEntry{Depth: depth, NodeKinds: []node.Kind{node.STRING}}
}

// numericLit matches a bare INTEGER or FLOATING_POINT literal, the
// shape every numeric opcode's source operand needs per validateRule's
// entryGuaranteesNumeric check.
func numericLit(depth uint8) MatchEntry {
	return MatchEntry{Depth: depth, NodeKinds: []node.Kind{node.INTEGER, node.FLOATING_POINT}}
}

// identifierEqualTo matches an IDENTIFIER whose name equals the
// already-captured identifier at captureRef, per spec §3's
// identifier_equals constraint with a capture-index operand.
func identifierEqualTo(depth uint8, captureRef int) MatchEntry {
	return MatchEntry{
		Depth:     depth,
		NodeKinds: []node.Kind{node.IDENTIFIER},
		Literal:   &LiteralConstraint{Kind: LiteralIdentifierEquals, CaptureRef: captureRef},
	}
}

func identifierNamed(depth uint8, name string) MatchEntry {
	return MatchEntry{
		Depth:     depth,
		NodeKinds: []node.Kind{node.IDENTIFIER},
		Literal:   &LiteralConstraint{Kind: LiteralIdentifierEquals, CaptureRef: -1, Str: name},
	}
}
