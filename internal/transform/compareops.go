package transform

import (
	"github.com/oxhq/optiq/internal/node"
	"github.com/oxhq/optiq/internal/rules"
)

// applyCompareSpaceship implements COMPARE per spec §4.3: an ordered
// comparison yields -1/0/+1; an unordered one (including NaN cases)
// yields the UNDEFINED literal.
func applyCompareSpaceship(capture []*node.Node, op rules.TransformOp) error {
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

	switch node.Compare(src1, src2, node.Loose) {
	case node.Less:
		replaceAt(capture, dest, node.NewInteger(-1))
	case node.Equal:
		replaceAt(capture, dest, node.NewInteger(0))
	case node.Greater:
		replaceAt(capture, dest, node.NewInteger(1))
	default:
		replaceAt(capture, dest, node.New(node.UNDEFINED))
	}
	return nil
}

// applyCompareBoolean implements EQUAL, STRICTLY_EQUAL, LESS, and
// LESS_EQUAL per spec §4.3, using the node API's comparison under
// LOOSE, STRICT, LOOSE, LOOSE modes respectively.
func applyCompareBoolean(capture []*node.Node, op rules.TransformOp) error {
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

	var mode node.CompareMode
	if op.Op == rules.OpStrictlyEqual {
		mode = node.Strict
	} else {
		mode = node.Loose
	}
	result := node.Compare(src1, src2, mode)

	var truth bool
	switch op.Op {
	case rules.OpEqual, rules.OpStrictlyEqual:
		truth = result == node.Equal
	case rules.OpLess:
		truth = result == node.Less
	case rules.OpLessEqual:
		truth = result == node.Less || result == node.Equal
	}
	replaceAt(capture, dest, node.NewBool(truth))
	return nil
}

// applySmartMatch implements SMART_MATCH per spec §4.3: simplify both
// operand strings (trim, collapse internal whitespace, empty -> "0")
// then compare under Smart mode.
func applySmartMatch(capture []*node.Node, op rules.TransformOp) error {
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

	a := node.NewString(node.SmartSimplify(src1.ToString()))
	b := node.NewString(node.SmartSimplify(src2.ToString()))
	replaceAt(capture, dest, node.NewBool(node.Compare(a, b, node.Smart) == node.Equal))
	return nil
}
