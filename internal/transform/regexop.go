package transform

import (
	"regexp"
	"strings"

	"github.com/oxhq/optiq/internal/diag"
	"github.com/oxhq/optiq/internal/node"
	"github.com/oxhq/optiq/internal/rules"
)

// applyMatch implements MATCH per spec §4.3. The pattern is recognized
// either as a raw regex body or as a `/body/flags` literal; only the
// `i` (case-insensitive) flag is recognized, others are ignored. A
// compile failure replaces the destination with a synthesized
// `throw new SyntaxError(...)` subtree and emits an ERROR diagnostic
// instead of propagating a Go error, so optimization can continue
// without looping on the same rule (spec §7).
//
// Compilation uses the standard library's RE2-based regexp package.
// The example corpus's regex engines (go-tree-sitter's own grammar
// matching, coregx/coregex) either don't expose regex compilation at
// all or only expose internal NFA/DFA construction types with no
// documented top-level entry point in the retrieved snippet — adopting
// an unknown public API by guesswork would be worse than the
// standard library here (see DESIGN.md).
func applyMatch(capture []*node.Node, op rules.TransformOp, sink diag.Sink) error {
	textNode, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	patternNode, err := checkIdx(capture, op.Args[1])
	if err != nil {
		return err
	}
	dest := op.Args[2]
	if _, err := checkIdx(capture, dest); err != nil {
		return err
	}
	if patternNode.Kind() != node.STRING {
		return diag.NewInternalError("MATCH pattern operand is not a STRING literal")
	}

	body, caseInsensitive := parseRegexLiteral(patternNode.String_())
	goPattern := body
	if caseInsensitive {
		goPattern = "(?i)" + goPattern
	}

	re, compileErr := regexp.Compile(goPattern)
	if compileErr != nil {
		pos := capture[dest].Position()
		sink.Emit(diag.Diagnostic{
			Severity: diag.Error,
			Code:     diag.InvalidRegex,
			Message:  "invalid regular expression: " + compileErr.Error(),
			Position: pos,
		})
		replaceAt(capture, dest, buildSyntaxErrorThrow(compileErr.Error(), pos))
		return nil
	}

	replaceAt(capture, dest, node.NewBool(re.MatchString(textNode.ToString())))
	return nil
}

// parseRegexLiteral splits a `/body/flags` literal into its body and
// whether the `i` flag was present; a string with no surrounding
// slashes is treated as a raw body.
func parseRegexLiteral(lit string) (body string, caseInsensitive bool) {
	if len(lit) >= 2 && lit[0] == '/' {
		if idx := strings.LastIndex(lit, "/"); idx > 0 {
			body = lit[1:idx]
			flags := lit[idx+1:]
			return body, strings.Contains(flags, "i")
		}
	}
	return lit, false
}

// buildSyntaxErrorThrow constructs THROW(CALL(IDENTIFIER "SyntaxError",
// LIST(STRING msg, STRING filename, INTEGER line))) per spec §4.3 and
// the scenario 6 example in spec §8.
func buildSyntaxErrorThrow(message string, pos node.Position) *node.Node {
	ident := node.New(node.IDENTIFIER)
	ident.SetPosition(pos)
	ident.SetString("SyntaxError")
	// SetString overwrites kind to STRING; restore IDENTIFIER.
	ident.SetKind(node.IDENTIFIER)

	list := node.New(node.LIST)
	list.SetPosition(pos)
	list.AppendChild(node.NewString(message))
	list.AppendChild(node.NewString(pos.Filename))
	list.AppendChild(node.NewInteger(int64(pos.Line)))

	call := node.New(node.CALL)
	call.SetPosition(pos)
	call.AppendChild(ident)
	call.AppendChild(list)

	throw := node.New(node.THROW)
	throw.SetPosition(pos)
	throw.AppendChild(call)
	return throw
}
