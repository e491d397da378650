package rules

import "github.com/oxhq/optiq/internal/node"

// builtinsCategory folds calls to Math.max/Math.min with two numeric
// literal arguments to their result, exercising the MAXIMUM/MINIMUM
// opcodes spec §3 defines but which no operator token maps to directly
// (as2js exposes them only through these built-ins, matched here as a
// CALL to a known identifier over a two-element LIST).
var builtinsCategory = Category{
	Name: "builtins",
	Rules: []Rule{
		{
			Name: "math-max-literals",
			Pattern: []MatchEntry{
				parent(0, node.CALL),
				identifierNamed(1, "Math.max"),
				parent(1, node.LIST),
				numericLit(2),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpMaximum, Args: [6]int{3, 4, 0}}},
		},
		{
			Name: "math-min-literals",
			Pattern: []MatchEntry{
				parent(0, node.CALL),
				identifierNamed(1, "Math.min"),
				parent(1, node.LIST),
				numericLit(2),
				numericLit(2),
			},
			Program: []TransformOp{{Op: OpMinimum, Args: [6]int{3, 4, 0}}},
		},
	},
}
