package rules

import "github.com/oxhq/optiq/internal/node"

// additiveCategory covers ADD and SUBTRACT, grounded on
// optimizer_additive.ci's entries as described by optimizer_tables.cpp
// (the table itself ships as a generated .ci include not present in
// this retrieval, so these are rebuilt from the identities it is known
// to define, not transcribed from it).
var additiveCategory = Category{
	Name: "additive",
	Rules: []Rule{
		{
			// x + 0 -> x. Gated on unsafe-math because it silently turns
			// (-0) + 0 into +0, changing the sign of the result. x is
			// constrained to numeric since "foo" + 0 is "foo0", not "foo".
			Name:   "add-zero",
			Safety: SafetyUnsafeMath,
			Pattern: []MatchEntry{
				parent(0, node.ADD),
				numericLit(1),
				intEquals(1, 0),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{1, 0}}},
		},
		{
			// x - 0 -> x. IEEE754 subtraction of +0 never changes sign,
			// so this one needs no safety gate. x is constrained to numeric
			// since "foo" - 0 is NaN, not "foo".
			Name: "subtract-zero",
			Pattern: []MatchEntry{
				parent(0, node.SUBTRACT),
				numericLit(1),
				intEquals(1, 0),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{1, 0}}},
		},
		{
			// 0 - <numeric literal> -> -<literal>, a genuine constant
			// fold (not a symbolic x -> -x rewrite, since NEGATE only
			// has a value to negate when the operand already is one).
			Name: "zero-minus-literal",
			Pattern: []MatchEntry{
				parent(0, node.SUBTRACT),
				intEquals(1, 0),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpNegate, Args: [6]int{2, 0}}},
		},
		{
			// <a> + <b> -> folded literal, when both operands are
			// already numeric literals.
			Name: "add-literals",
			Pattern: []MatchEntry{
				parent(0, node.ADD),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpAdd, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "subtract-literals",
			Pattern: []MatchEntry{
				parent(0, node.SUBTRACT),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpSubtract, Args: [6]int{1, 2, 0}}},
		},
	},
}
