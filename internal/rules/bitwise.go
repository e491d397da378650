package rules

import "github.com/oxhq/optiq/internal/node"

// bitwiseCategory covers the bitwise and shift/rotate identities,
// rebuilt from the identities optimizer_bitwise.ci is known to define
// per optimizer_tables.cpp (the generated .ci source itself is not
// part of this retrieval).
var bitwiseCategory = Category{
	Name: "bitwise",
	Rules: []Rule{
		{
			// x & 0 -> 0. Bitwise AND has no NaN/Infinity ambiguity, so
			// this holds for every int32-coercible x; only the dropped
			// operand needs to be side-effect free.
			Name: "and-zero",
			Pattern: []MatchEntry{
				parent(0, node.BITWISE_AND),
				anyNoSideEffect(1),
				intEquals(1, 0),
			},
			Program: []TransformOp{{Op: OpSetInteger, Args: [6]int{0}, IntConst: 0}},
		},
		{
			// x & -1 -> x, either operand order. AND against all-ones
			// is the identity for int32 bitwise AND.
			Name: "and-all-ones-left",
			Pattern: []MatchEntry{
				parent(0, node.BITWISE_AND),
				intEquals(1, -1),
				any(2),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{2, 0}}},
		},
		{
			Name: "and-all-ones-right",
			Pattern: []MatchEntry{
				parent(0, node.BITWISE_AND),
				any(1),
				intEquals(2, -1),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{1, 0}}},
		},
		{
			Name: "or-zero-left",
			Pattern: []MatchEntry{
				parent(0, node.BITWISE_OR),
				intEquals(1, 0),
				any(2),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{2, 0}}},
		},
		{
			Name: "or-zero-right",
			Pattern: []MatchEntry{
				parent(0, node.BITWISE_OR),
				any(1),
				intEquals(2, 0),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{1, 0}}},
		},
		{
			Name: "xor-zero-left",
			Pattern: []MatchEntry{
				parent(0, node.BITWISE_XOR),
				intEquals(1, 0),
				any(2),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{2, 0}}},
		},
		{
			Name: "xor-zero-right",
			Pattern: []MatchEntry{
				parent(0, node.BITWISE_XOR),
				any(1),
				intEquals(2, 0),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{1, 0}}},
		},
		{
			// x << 0 -> x. Not commutative: only the shift-amount side
			// can be the dropped zero.
			Name: "shift-left-by-zero",
			Pattern: []MatchEntry{
				parent(0, node.SHIFT_LEFT),
				any(1),
				intEquals(2, 0),
			},
			Program: []TransformOp{{Op: OpMove, Args: [6]int{1, 0}}},
		},
		{
			Name: "and-literals",
			Pattern: []MatchEntry{
				parent(0, node.BITWISE_AND),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpBitwiseAnd, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "or-literals",
			Pattern: []MatchEntry{
				parent(0, node.BITWISE_OR),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpBitwiseOr, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "xor-literals",
			Pattern: []MatchEntry{
				parent(0, node.BITWISE_XOR),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpBitwiseXor, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "not-literal",
			Pattern: []MatchEntry{
				parent(0, node.BITWISE_NOT),
				numericLit(1),
			},
			Program: []TransformOp{{Op: OpBitwiseNot, Args: [6]int{1, 0}}},
		},
		{
			Name: "shift-left-literals",
			Pattern: []MatchEntry{
				parent(0, node.SHIFT_LEFT),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpShiftLeft, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "shift-right-literals",
			Pattern: []MatchEntry{
				parent(0, node.SHIFT_RIGHT),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpShiftRight, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "shift-right-unsigned-literals",
			Pattern: []MatchEntry{
				parent(0, node.SHIFT_RIGHT_UNSIGNED),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpShiftRightUnsigned, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "rotate-left-literals",
			Pattern: []MatchEntry{
				parent(0, node.ROTATE_LEFT),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpRotateLeft, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "rotate-right-literals",
			Pattern: []MatchEntry{
				parent(0, node.ROTATE_RIGHT),
				numericLit(1),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpRotateRight, Args: [6]int{1, 2, 0}}},
		},
	},
}
