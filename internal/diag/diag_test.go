package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/optiq/internal/node"
)

func TestRecorderErrorCountIgnoresWarnings(t *testing.T) {
	r := NewRecorder()
	r.Emit(Diagnostic{Severity: Warning, Code: InvalidNumber, Message: "divide by zero"})
	r.Emit(Diagnostic{Severity: Error, Code: InvalidRegex, Message: "bad pattern"})
	r.Emit(Diagnostic{Severity: Fatal, Code: CodeInternal, Message: "boom"})

	assert.Equal(t, 2, r.ErrorCount())
	assert.Len(t, r.Entries(), 3)
}

func TestRecorderMarkAndSince(t *testing.T) {
	r := NewRecorder()
	r.Emit(Diagnostic{Severity: Warning, Message: "first"})
	mark := r.Mark()
	r.Emit(Diagnostic{Severity: Error, Message: "second"})
	r.Emit(Diagnostic{Severity: Error, Message: "third"})

	since := r.Since(mark)
	require.Len(t, since, 2)
	assert.Equal(t, "second", since[0].Message)
	assert.Equal(t, "third", since[1].Message)
}

func TestRecorderSinceAtEndReturnsNil(t *testing.T) {
	r := NewRecorder()
	r.Emit(Diagnostic{Severity: Warning, Message: "only"})
	assert.Nil(t, r.Since(r.Mark()))
}

func TestDiagnosticCarriesPosition(t *testing.T) {
	r := NewRecorder()
	pos := node.Position{Line: 12, Filename: "a.js"}
	r.Emit(Diagnostic{Severity: Error, Code: InvalidNumber, Message: "bad", Position: pos})
	assert.Equal(t, pos, r.Entries()[0].Position)
}

func TestInternalErrorFormatsCodeAndMessage(t *testing.T) {
	err := NewInternalError("offset %d out of range", 5)
	assert.Equal(t, CodeInternal, err.Code)
	assert.Equal(t, "INTERNAL_ERROR: offset 5 out of range", err.Error())
}

func TestInternalErrorSatisfiesErrorInterface(t *testing.T) {
	var err error = NewInternalError("bug")
	assert.Error(t, err)
}
