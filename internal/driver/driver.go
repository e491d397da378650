// Package driver implements spec §4.4: the fixed-point walk that
// applies the rule catalogue to a tree until no rule fires, child-most
// subtrees first.
//
// Grounded on the teacher's internal/core/manipulator.go Apply loop
// (collect matches, apply each, report whether anything changed) and
// on as2js's optimizer_tables.cpp optimize_tree(), which recurses into
// children before repeatedly sweeping the table set over the current
// node until a full pass finds nothing left to do — this package keeps
// that same two-level loop (recurse down, then fix point at each
// level) rather than the alternative of one global worklist, since it
// is the behavior spec §4.4 and the original both describe.
package driver

import (
	"github.com/oxhq/optiq/internal/diag"
	"github.com/oxhq/optiq/internal/matcher"
	"github.com/oxhq/optiq/internal/node"
	"github.com/oxhq/optiq/internal/options"
	"github.com/oxhq/optiq/internal/rules"
	"github.com/oxhq/optiq/internal/transform"
)

// Optimize rewrites the tree rooted at n to a fixed point, per spec
// §4.4, and returns whether any rewrite was applied anywhere in the
// tree. The only errors it returns are internal errors (spec §7); a
// rule matching but failing to apply cleanly always indicates a
// rule-table or node-API bug, not a problem with the input tree.
func Optimize(n *node.Node, opts options.Options, sink diag.Sink) (bool, error) {
	if n == nil || n.Kind() == node.UNKNOWN {
		return false, nil
	}

	catalogue := rules.Catalogue()
	changed := false

	for i := 0; i < n.ChildrenSize(); i++ {
		childChanged, err := Optimize(n.Child(i), opts, sink)
		if err != nil {
			return changed, err
		}
		changed = changed || childChanged
	}

	for {
		repeat := false
		for _, cat := range catalogue {
			for _, r := range cat.Rules {
				capture, ok, err := matcher.Match(n, r, opts)
				if err != nil {
					return changed, err
				}
				if !ok {
					continue
				}

				// n may be replaced as a unit by this rule's program.
				// When it has a parent, the replacement lands in n's
				// old slot there and n itself ends up detached, so the
				// new occupant must be refetched the same way as2js's
				// optimize_tree() does (by parent + saved offset)
				// instead of continuing to scan the now-orphaned node.
				// A parentless n is mutated in place via Node.Become,
				// so no refetch is needed in that case.
				parent, offset := n.Parent(), n.Offset()
				if err := transform.Apply(capture, r.Program, sink); err != nil {
					return changed, err
				}
				if parent != nil {
					n = parent.Child(offset)
				}
				repeat = true
				changed = true
			}
		}
		if !repeat {
			break
		}
	}

	return changed, nil
}

// OptimizeRoot runs Optimize and then sweeps the tree for nodes that
// REMOVE marked UNKNOWN (a removed match root or a parentless capture),
// per spec §4.4 step 4. An UNKNOWN root is left untouched, since
// Optimize skips it.
func OptimizeRoot(root *node.Node, opts options.Options, sink diag.Sink) error {
	if root == nil {
		return diag.NewInternalError("OptimizeRoot called with a nil tree")
	}
	if root.Parent() != nil {
		return diag.NewInternalError("OptimizeRoot called with a non-root node")
	}
	if _, err := Optimize(root, opts, sink); err != nil {
		return err
	}
	node.CleanTree(root)
	return nil
}
