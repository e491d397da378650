package rules

import "github.com/oxhq/optiq/internal/node"

// stringCategory covers CONCATENATE, MATCH, and SMART_MATCH literal
// folding. CONCATENATE folding is rebuilt from the identity
// optimizer_additive.ci is known to also define for string operands
// (the generated .ci source itself is not part of this retrieval);
// MATCH and SMART_MATCH are this engine's own additions over opcodes
// spec §3 defines but as2js's tables predate.
var stringCategory = Category{
	Name: "string",
	Rules: []Rule{
		{
			Name: "concatenate-literals",
			Pattern: []MatchEntry{
				parent(0, node.CONCATENATE),
				stringLit(1),
				stringLit(2),
			},
			Program: []TransformOp{{Op: OpConcatenate, Args: [6]int{1, 2, 0}}},
		},
		{
			// /pattern/flags literal tested against a literal string:
			// fold to TRUE/FALSE at compile time, or to a synthesized
			// throw new SyntaxError(...) when the pattern fails to
			// compile.
			Name: "match-literals",
			Pattern: []MatchEntry{
				parent(0, node.MATCH),
				stringLit(1),
				stringLit(2),
			},
			Program: []TransformOp{{Op: OpMatch, Args: [6]int{1, 2, 0}}},
		},
		{
			Name: "smart-match-literals",
			Pattern: []MatchEntry{
				parent(0, node.SMART_MATCH),
				stringLit(1),
				stringLit(2),
			},
			Program: []TransformOp{{Op: OpSmartMatch, Args: [6]int{1, 2, 0}}},
		},
	},
}
