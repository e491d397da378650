package transform

import (
	"github.com/oxhq/optiq/internal/diag"
	"github.com/oxhq/optiq/internal/node"
	"github.com/oxhq/optiq/internal/rules"
)

// applyLogicalNot implements LOGICAL_NOT per spec §4.3: coerce via
// to_boolean_type_only and store the negation.
func applyLogicalNot(capture []*node.Node, op rules.TransformOp) error {
	src, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	dest := op.Args[1]
	if _, err := checkIdx(capture, dest); err != nil {
		return err
	}
	replaceAt(capture, dest, node.NewBool(!src.ToBooleanTypeOnly()))
	return nil
}

// applyLogicalXor implements LOGICAL_XOR per spec §4.3: FALSE when both
// operands agree, otherwise the operand whose boolean value is TRUE
// (identity-preserving — the operand node itself becomes the result
// rather than a freshly synthesized boolean literal).
func applyLogicalXor(capture []*node.Node, op rules.TransformOp) error {
	src1, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	src2, err := checkIdx(capture, op.Args[1])
	if err != nil {
		return err
	}
	dest := op.Args[2]
	if _, err := checkIdx(capture, dest); err != nil {
		return err
	}

	b1 := src1.ToBooleanTypeOnly()
	b2 := src2.ToBooleanTypeOnly()
	if b1 == b2 {
		replaceAt(capture, dest, node.NewBool(false))
		return nil
	}
	if b1 {
		replaceAt(capture, dest, src1)
	} else {
		replaceAt(capture, dest, src2)
	}
	return nil
}

// applyMinMax implements MAXIMUM and MINIMUM per spec §4.3: NaN on
// either side returns the non-NaN side unchanged; otherwise the
// greater/lesser source is returned unchanged (not recomputed), so
// identity and any side-effect-free subtree under it survive.
func applyMinMax(capture []*node.Node, op rules.TransformOp) error {
	src1, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	src2, err := checkIdx(capture, op.Args[1])
	if err != nil {
		return err
	}
	dest := op.Args[2]
	if _, err := checkIdx(capture, dest); err != nil {
		return err
	}

	f1, ok1 := src1.ToFloatingPoint()
	f2, ok2 := src2.ToFloatingPoint()
	if !ok1 || !ok2 {
		return diag.NewInternalError("MAXIMUM/MINIMUM operand not numeric-convertible")
	}

	pick := func(pickFirst bool) {
		if pickFirst {
			replaceAt(capture, dest, src1)
		} else {
			replaceAt(capture, dest, src2)
		}
	}

	switch {
	case isNaNf(f1) && isNaNf(f2):
		replaceAt(capture, dest, node.NewFloat(f1))
	case isNaNf(f1):
		pick(false)
	case isNaNf(f2):
		pick(true)
	case op.Op == rules.OpMaximum:
		pick(f1 >= f2)
	default: // OpMinimum
		pick(f1 <= f2)
	}
	return nil
}

func isNaNf(f float64) bool { return f != f }

// applyConcatenate implements CONCATENATE per spec §4.3.
func applyConcatenate(capture []*node.Node, op rules.TransformOp) error {
	src1, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	src2, err := checkIdx(capture, op.Args[1])
	if err != nil {
		return err
	}
	dest := op.Args[2]
	if _, err := checkIdx(capture, dest); err != nil {
		return err
	}
	replaceAt(capture, dest, node.NewString(src1.ToString()+src2.ToString()))
	return nil
}
