// Package optiq is the public entry point spec §6 describes: a single
// call that rewrites a tree to a fixed point and reports how many
// errors that produced.
package optiq

import (
	"github.com/oxhq/optiq/internal/diag"
	"github.com/oxhq/optiq/internal/driver"
	"github.com/oxhq/optiq/internal/node"
	"github.com/oxhq/optiq/internal/options"
)

// Node, Kind, and Options are re-exported as aliases of the internal
// types. The node constructors and the diag package are not
// re-exported.
type (
	Node    = node.Node
	Kind    = node.Kind
	Options = options.Options
)

// Optimize rewrites root in place to a fixed point per spec §4.4 and
// returns the recorder holding every diagnostic emitted while doing so,
// together with the number of ERROR/FATAL ones among them (spec §6's
// optimize(node) -> errorCount value). An
// internal error (spec §7) aborts the pass early and is itself folded
// into a FATAL diagnostic before counting, rather than panicking the
// caller: a bug in the rule tables or node API should surface as one
// more entry in the diagnostic log, not a crash of whatever embeds
// this package.
func Optimize(root *Node, opts Options) (*diag.Recorder, int) {
	rec := diag.NewRecorder()
	if err := driver.OptimizeRoot(root, opts, rec); err != nil {
		rec.Emit(diag.Diagnostic{
			Severity: diag.Fatal,
			Code:     diag.CodeInternal,
			Message:  err.Error(),
		})
	}
	return rec, rec.ErrorCount()
}
