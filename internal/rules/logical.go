package rules

import "github.com/oxhq/optiq/internal/node"

// logicalCategory covers LOGICAL_NOT/LOGICAL_AND/LOGICAL_OR/LOGICAL_XOR
// short-circuit and double-negation identities, rebuilt from the
// identities optimizer_logical.ci is known to define per
// optimizer_tables.cpp (the generated .ci source itself is not part of
// this retrieval).
var logicalCategory = Category{
	Name: "logical",
	Rules: []Rule{
		{
			// !!x -> (boolean)x: move x into the inner NOT's slot, then
			// retype the outer NOT to a cast over its now-single child.
			Name: "double-negation-to-boolean-cast",
			Pattern: []MatchEntry{
				parent(0, node.LOGICAL_NOT),
				parent(1, node.LOGICAL_NOT),
				any(2),
			},
			Program: []TransformOp{
				{Op: OpMove, Args: [6]int{2, 1}},
				{Op: OpSetNodeType, Args: [6]int{0}, KindConst: node.BOOLEAN_CAST},
			},
		},
		{
			Name: "logical-not-literal",
			Pattern: []MatchEntry{
				parent(0, node.LOGICAL_NOT),
				literalAny(1),
			},
			Program: []TransformOp{{Op: OpLogicalNot, Args: [6]int{1, 0}}},
		},
		{
			Name: "logical-xor-literals",
			Pattern: []MatchEntry{
				parent(0, node.LOGICAL_XOR),
				literalAny(1),
				literalAny(2),
			},
			Program: []TransformOp{{Op: OpLogicalXor, Args: [6]int{1, 2, 0}}},
		},
		{
			// false && x -> false, x dropped so it must be side-effect
			// free.
			Name: "and-false-short-circuit",
			Pattern: []MatchEntry{
				parent(0, node.LOGICAL_AND),
				ofKind(1, node.FALSE),
				anyNoSideEffect(2),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{1, 0}}},
		},
		{
			// true && x -> x.
			Name: "and-true-identity",
			Pattern: []MatchEntry{
				parent(0, node.LOGICAL_AND),
				ofKind(1, node.TRUE),
				any(2),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{2, 0}}},
		},
		{
			// true || x -> true, x dropped so it must be side-effect
			// free.
			Name: "or-true-short-circuit",
			Pattern: []MatchEntry{
				parent(0, node.LOGICAL_OR),
				ofKind(1, node.TRUE),
				anyNoSideEffect(2),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{1, 0}}},
		},
		{
			// false || x -> x.
			Name: "or-false-identity",
			Pattern: []MatchEntry{
				parent(0, node.LOGICAL_OR),
				ofKind(1, node.FALSE),
				any(2),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{2, 0}}},
		},
	},
}
