// Package diag implements the diagnostic sink the optimizer core reads
// and writes through, grounded on the teacher's CLIError/ErrorCode
// pattern (internal/core/errorfmt.go, internal/model/errors.go) but
// restructured per spec §9's design note: a handle passed into
// optimize and queried by delta, instead of ambient global state.
package diag

import (
	"fmt"

	"github.com/oxhq/optiq/internal/node"
)

// Severity mirrors spec §6's WARNING/ERROR/FATAL domain.
type Severity string

const (
	Warning Severity = "warning"
	Error   Severity = "error"
	Fatal   Severity = "fatal"
)

// Code enumerates the diagnostic codes the core can emit, per spec §6
// ("at minimum: INVALID_NUMBER for divide-by-zero and shift-out-of-range,
// INTERNAL_ERROR"). INVALID_REGEX is kept distinct from INVALID_NUMBER
// so tooling built on top of diagstore can tell them apart, the same
// way the teacher keeps ErrInvalidRegex separate from its other codes
// in internal/model/errors.go.
type Code string

const (
	InvalidNumber Code = "INVALID_NUMBER"
	InvalidRegex  Code = "INVALID_REGEX"
	CodeInternal  Code = "INTERNAL_ERROR"
)

// Diagnostic is a single emitted message, carrying enough of the
// offending node's position to point a user at the source.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Position node.Position
}

// Sink is what the core reports through. Recorder is the in-memory
// default; callers that need persistence (see internal/diagstore) wrap
// or additionally drain a Recorder rather than implement Sink directly,
// keeping the core's dependency surface to this one small interface.
type Sink interface {
	Emit(d Diagnostic)
}

// Recorder is the default Sink: an ordered, in-memory log of every
// diagnostic emitted during a call. Counts are computed from the log on
// demand (ErrorCount); no per-severity counters are kept.
type Recorder struct {
	entries []Diagnostic
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Emit(d Diagnostic) { r.entries = append(r.entries, d) }

func (r *Recorder) Entries() []Diagnostic { return r.entries }

// ErrorCount returns the number of ERROR and FATAL severity diagnostics
// recorded, which is exactly the value spec §6's optimize(node) must
// return.
func (r *Recorder) ErrorCount() int {
	n := 0
	for _, d := range r.entries {
		if d.Severity == Error || d.Severity == Fatal {
			n++
		}
	}
	return n
}

// Since returns the diagnostics recorded after the given index, for
// callers computing an error-count delta across a sub-call the way
// spec §6 describes reading "the running count of errors before and
// after its work".
func (r *Recorder) Since(mark int) []Diagnostic {
	if mark >= len(r.entries) {
		return nil
	}
	return r.entries[mark:]
}

func (r *Recorder) Mark() int { return len(r.entries) }

// InternalError is the distinguished error type for the bug-indicating
// failures spec §7 lists: rule-table inconsistency, match depth over
// 255, a coercion the match pattern should have prevented, rewriting a
// parentless node. It carries the same Code-plus-Message shape as the
// teacher's CLIError (internal/core/errorfmt.go) so a caller printing
// it gets a stable, greppable identifier.
type InternalError struct {
	Code    Code
	Message string
}

func (e InternalError) Error() string { return string(e.Code) + ": " + e.Message }

func NewInternalError(format string, args ...any) InternalError {
	return InternalError{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}
