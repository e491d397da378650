package rules

import "github.com/oxhq/optiq/internal/node"

// multiplicativeCategory covers MULTIPLY, DIVIDE, MODULO, and POWER, rebuilt
// from the identities optimizer_additive.ci/optimizer_tables.cpp
// describe the multiplicative table implementing (the generated .ci
// source itself is not part of this retrieval).
var multiplicativeCategory = Category{
	Name: "multiplicative",
	Rules: []Rule{
		{
			// x * 1 -> x, safe: multiplying by +1 never changes sign or
			// NaN-ness. x is constrained to a numeric literal since
			// "foo" * 1 is NaN, not "foo".
			Name: "multiply-by-one",
			Pattern: []MatchEntry{
				parent(0, node.MULTIPLY),
				numericLit(1),
				intEquals(1, 1),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{1, 0}}},
		},
		{
			Name: "one-times-x",
			Pattern: []MatchEntry{
				parent(0, node.MULTIPLY),
				intEquals(1, 1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{2, 0}}},
		},
		{
			// x * 0 -> 0, unsafe: NaN * 0 and Infinity * 0 are both NaN,
			// not 0, so this is only sound under unsafe-math. The
			// discarded operand must be side-effect free.
			Name:   "multiply-by-zero",
			Safety: SafetyUnsafeMath,
			Pattern: []MatchEntry{
				parent(0, node.MULTIPLY),
				anyNoSideEffect(1),
				intEquals(1, 0),
			},
			Program: []TransformOp{{Op: OpSetInteger, Args: [6]int{0}, IntConst: 0}},
		},
		{
			// x / 1 -> x, safe, and x must be numeric: "foo" / 1 is NaN.
			Name: "divide-by-one",
			Pattern: []MatchEntry{
				parent(0, node.DIVIDE),
				numericLit(1),
				intEquals(1, 1),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{1, 0}}},
		},
		{
			// x / x -> 1 for the same identifier x, unsafe: fails to
			// hold when x is 0 (NaN, not 1) or NaN.
			Name:   "divide-identifier-by-itself",
			Safety: SafetyUnsafeMath,
			Pattern: []MatchEntry{
				parent(0, node.DIVIDE),
				ofKind(1, node.IDENTIFIER),
				identifierEqualTo(1, 1),
			},
			Program: []TransformOp{{Op: OpSetInteger, Args: [6]int{0}, IntConst: 1}},
		},
		{
			Name: "multiply-literals",
			Pattern: []MatchEntry{
				parent(0, node.MULTIPLY),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpMultiply, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "divide-literals",
			Pattern: []MatchEntry{
				parent(0, node.DIVIDE),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpDivide, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "modulo-literals",
			Pattern: []MatchEntry{
				parent(0, node.MODULO),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpModulo, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "power-literals",
			Pattern: []MatchEntry{
				parent(0, node.POWER),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpPower, Args: [6]int{1, 2, 0}}},
		},
	},
}
