package rules

import "github.com/oxhq/optiq/internal/node"

// comparisonCategory covers EQUAL/STRICTLY_EQUAL/LESS/LESS_EQUAL
// literal folding plus the De Morgan-style NOT_EQUAL/GREATER/
// GREATER_EQUAL reductions to the engine's narrower opcode set, rebuilt
// from the identities optimizer_compare.ci, optimizer_equality.ci, and
// optimizer_relational.ci are known to define per optimizer_tables.cpp
// (the generated .ci sources themselves are not part of this
// retrieval).
var comparisonCategory = Category{
	Name: "comparison",
	Rules: []Rule{
		{
			Name: "equal-literals",
			Pattern: []MatchEntry{
				parent(0, node.EQUAL),
				literalAny(1),
				literalAny(2),
			},
			Program: []TransformOp{{Op: OpEqual, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "strictly-equal-literals",
			Pattern: []MatchEntry{
				parent(0, node.STRICTLY_EQUAL),
				literalAny(1),
				literalAny(2),
			},
			Program: []TransformOp{{Op: OpStrictlyEqual, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "less-literals",
			Pattern: []MatchEntry{
				parent(0, node.LESS),
				literalAny(1),
				literalAny(2),
			},
			Program: []TransformOp{{Op: OpLess, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "less-equal-literals",
			Pattern: []MatchEntry{
				parent(0, node.LESS_EQUAL),
				literalAny(1),
				literalAny(2),
			},
			Program: []TransformOp{{Op: OpLessEqual, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "compare-literals",
			Pattern: []MatchEntry{
				parent(0, node.COMPARE),
				literalAny(1),
				literalAny(2),
			},
			Program: []TransformOp{{Op: OpCompare, Args: [6]int{1, 2, 0}}},
		},
		{
			// a != b -> !(a == b), folded in two steps over the same
			// destination slot: EQUAL first, then LOGICAL_NOT of its
			// own result.
			Name: "not-equal-literals",
			Pattern: []MatchEntry{
				parent(0, node.NOT_EQUAL),
				literalAny(1),
				literalAny(2),
			},
			Program: []TransformOp{
				{Op: OpEqual, Args: [6]int{1, 2, 0}},
				{Op: OpLogicalNot, Args: [6]int{0, 0}},
			},
		},
		{
			Name: "strictly-not-equal-literals",
			Pattern: []MatchEntry{
				parent(0, node.STRICTLY_NOT_EQUAL),
				literalAny(1),
				literalAny(2),
			},
			Program: []TransformOp{
				{Op: OpStrictlyEqual, Args: [6]int{1, 2, 0}},
				{Op: OpLogicalNot, Args: [6]int{0, 0}},
			},
		},
		{
			// a > b -> b < a, restricted to literal operands like the
			// other comparison folds: OpLess/OpLessEqual fold straight to
			// a TRUE/FALSE literal rather than building a relabeled LESS
			// node, so a non-literal operand (e.g. two identifiers) would
			// be folded to a constant regardless of its runtime value.
			Name: "greater-literals-swap",
			Pattern: []MatchEntry{
				parent(0, node.GREATER),
				literalAny(1),
				literalAny(2),
			},
			Program: []TransformOp{{Op: OpLess, Args: [6]int{2, 1, 0}}},
		},
		{
			Name: "greater-equal-literals-swap",
			Pattern: []MatchEntry{
				parent(0, node.GREATER_EQUAL),
				literalAny(1),
				literalAny(2),
			},
			Program: []TransformOp{{Op: OpLessEqual, Args: [6]int{2, 1, 0}}},
		},
	},
}
