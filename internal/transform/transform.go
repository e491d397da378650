// Package transform implements spec §4.3: executing a rule's transform
// program — a short sequence of opcodes operating on small indices into
// a capture array — against the AST, through the node package's API
// only (ReplaceWith, Become, AppendChild, DeleteChild, SetKind and the
// literal setters), so every mutation preserves the well-formedness
// invariant I1.
//
// Grounded on the teacher's internal/core/manipulator.go Apply, which
// walks an ordered list of matches applying one Operation each; this
// package is the in-memory analogue, one TransformOp at a time against
// node.Node captures instead of byte spans against source text.
package transform

import (
	"github.com/oxhq/optiq/internal/diag"
	"github.com/oxhq/optiq/internal/node"
	"github.com/oxhq/optiq/internal/rules"
)

// Apply executes every operation in program against capture, in order,
// per spec §4.3. A nil error means the capture array and the AST it
// points into are well-formed; any error is an internal error (spec
// §7) and the caller must not apply further operations in the program.
func Apply(capture []*node.Node, program []rules.TransformOp, sink diag.Sink) error {
	for _, op := range program {
		if err := applyOne(capture, op, sink); err != nil {
			return err
		}
	}
	return nil
}

func applyOne(capture []*node.Node, op rules.TransformOp, sink diag.Sink) error {
	switch op.Op {
	case rules.OpAdd, rules.OpSubtract, rules.OpMultiply, rules.OpDivide, rules.OpModulo, rules.OpPower:
		return applyArithmetic(capture, op, sink)
	case rules.OpNegate:
		return applyNegate(capture, op)
	case rules.OpBitwiseAnd, rules.OpBitwiseOr, rules.OpBitwiseXor:
		return applyBitwiseBinary(capture, op)
	case rules.OpBitwiseNot:
		return applyBitwiseNot(capture, op)
	case rules.OpShiftLeft, rules.OpShiftRight, rules.OpShiftRightUnsigned, rules.OpRotateLeft, rules.OpRotateRight:
		return applyShiftOrRotate(capture, op, sink)
	case rules.OpLogicalNot:
		return applyLogicalNot(capture, op)
	case rules.OpLogicalXor:
		return applyLogicalXor(capture, op)
	case rules.OpConcatenate:
		return applyConcatenate(capture, op)
	case rules.OpCompare:
		return applyCompareSpaceship(capture, op)
	case rules.OpEqual, rules.OpStrictlyEqual, rules.OpLess, rules.OpLessEqual:
		return applyCompareBoolean(capture, op)
	case rules.OpMatch:
		return applyMatch(capture, op, sink)
	case rules.OpSmartMatch:
		return applySmartMatch(capture, op)
	case rules.OpMaximum, rules.OpMinimum:
		return applyMinMax(capture, op)
	case rules.OpMove:
		return applyMove(capture, op)
	case rules.OpSwap:
		return applySwap(capture, op)
	case rules.OpRemove:
		return applyRemove(capture, op)
	case rules.OpSetInteger:
		return applySetInteger(capture, op)
	case rules.OpSetNodeType:
		return applySetNodeType(capture, op)
	case rules.OpToConditional:
		return applyToConditional(capture, op)
	case rules.OpToInteger:
		return applyToInteger(capture, op)
	case rules.OpToNumber:
		return applyToNumber(capture, op)
	case rules.OpWhileTrueToForever:
		return applyWhileTrueToForever(capture, op)
	default:
		return diag.NewInternalError("unknown opcode %v", op.Op)
	}
}

// replaceAt installs result at capture[idx], routing through
// node.ReplaceWith when the target has a parent (the common case) and
// falling back to Node.Become when it doesn't (the target is the tree
// root itself).
func replaceAt(capture []*node.Node, idx int, result *node.Node) {
	target := capture[idx]
	if target.Parent() != nil {
		target.ReplaceWith(result)
		capture[idx] = result
	} else {
		target.Become(result)
	}
}

func checkIdx(capture []*node.Node, idx int) (*node.Node, error) {
	if idx < 0 || idx >= len(capture) {
		return nil, diag.NewInternalError("capture index %d out of range (len %d)", idx, len(capture))
	}
	return capture[idx], nil
}
