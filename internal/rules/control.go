package rules

import "github.com/oxhq/optiq/internal/node"

// controlCategory covers statement-level rewrites, rebuilt from the
// identity optimizer_statements.ci is known to define per
// optimizer_tables.cpp (the generated .ci source itself is not part of
// this retrieval) and from the scenario worked out in this engine's own
// spec for WHILE_TRUE_TO_FOREVER.
var controlCategory = Category{
	Name: "control",
	Rules: []Rule{
		{
			// while (true) body -> for (;;) body.
			Name: "while-true-to-forever",
			Pattern: []MatchEntry{
				parent(0, node.WHILE),
				ofKind(1, node.TRUE),
				any(2),
			},
			Program: []TransformOp{{Op: OpWhileTrueToForever, Args: [6]int{0, 2}}},
		},
	},
}
