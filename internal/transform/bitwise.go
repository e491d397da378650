package transform

import (
	"fmt"
	"math/bits"

	"github.com/oxhq/optiq/internal/diag"
	"github.com/oxhq/optiq/internal/node"
	"github.com/oxhq/optiq/internal/rules"
)

// toInt32 implements the source language's low-32-bit integer
// coercion spec §4.3 requires bitwise opcodes to operate under.
func toInt32(n *node.Node) (int32, error) {
	v, ok := n.ToInteger()
	if !ok {
		return 0, diag.NewInternalError("bitwise operand not integer-convertible")
	}
	return int32(uint32(v)), nil
}

func applyBitwiseBinary(capture []*node.Node, op rules.TransformOp) error {
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
	a, err := toInt32(src1)
	if err != nil {
		return err
	}
	b, err := toInt32(src2)
	if err != nil {
		return err
	}
	var r int32
	switch op.Op {
	case rules.OpBitwiseAnd:
		r = a & b
	case rules.OpBitwiseOr:
		r = a | b
	case rules.OpBitwiseXor:
		r = a ^ b
	default:
		return diag.NewInternalError("not a binary bitwise opcode: %v", op.Op)
	}
	replaceAt(capture, dest, node.NewInteger(int64(r)))
	return nil
}

func applyBitwiseNot(capture []*node.Node, op rules.TransformOp) error {
	src, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	dest := op.Args[1]
	if _, err := checkIdx(capture, dest); err != nil {
		return err
	}
	a, err := toInt32(src)
	if err != nil {
		return err
	}
	replaceAt(capture, dest, node.NewInteger(int64(^a)))
	return nil
}

// applyShiftOrRotate implements SHIFT_LEFT, SHIFT_RIGHT (arithmetic,
// sign-extending), SHIFT_RIGHT_UNSIGNED (logical), ROTATE_LEFT,
// ROTATE_RIGHT, masking the amount to 5 bits and warning when the
// original amount fell outside [0, 32), per spec §4.3.
func applyShiftOrRotate(capture []*node.Node, op rules.TransformOp, sink diag.Sink) error {
	valueNode, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	amountNode, err := checkIdx(capture, op.Args[1])
	if err != nil {
		return err
	}
	dest := op.Args[2]
	if _, err := checkIdx(capture, dest); err != nil {
		return err
	}

	value, err := toInt32(valueNode)
	if err != nil {
		return err
	}
	rawAmount, ok := amountNode.ToInteger()
	if !ok {
		return diag.NewInternalError("shift amount not integer-convertible")
	}
	maskedAmount := uint(rawAmount) & 0x1F
	if rawAmount < 0 || rawAmount >= 32 {
		sink.Emit(diag.Diagnostic{
			Severity: diag.Warning,
			Code:     diag.InvalidNumber,
			Message:  fmt.Sprintf("shift/rotate amount %d out of range, masked to %d", rawAmount, maskedAmount),
			Position: amountNode.Position(),
		})
	}

	var result int64
	switch op.Op {
	case rules.OpShiftLeft:
		result = int64(value << maskedAmount)
	case rules.OpShiftRight:
		result = int64(value >> maskedAmount)
	case rules.OpShiftRightUnsigned:
		result = int64(uint32(value) >> maskedAmount)
	case rules.OpRotateLeft:
		result = int64(int32(bits.RotateLeft32(uint32(value), int(maskedAmount))))
	case rules.OpRotateRight:
		result = int64(int32(bits.RotateLeft32(uint32(value), -int(maskedAmount))))
	default:
		return diag.NewInternalError("not a shift/rotate opcode: %v", op.Op)
	}
	replaceAt(capture, dest, node.NewInteger(result))
	return nil
}
