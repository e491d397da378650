package transform

import (
	"math"

	"github.com/oxhq/optiq/internal/diag"
	"github.com/oxhq/optiq/internal/node"
	"github.com/oxhq/optiq/internal/rules"
)

// applyArithmetic implements ADD, SUBTRACT, MULTIPLY, DIVIDE, MODULO,
// POWER per spec §4.3: integer arithmetic when both sources are
// INTEGER (except divide-by-zero, which emits a warning and produces a
// FLOATING_POINT result), float arithmetic otherwise with NaN
// propagation, and POWER always producing FLOATING_POINT.
func applyArithmetic(capture []*node.Node, op rules.TransformOp, sink diag.Sink) error {
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

	bothInt := src1.Kind() == node.INTEGER && src2.Kind() == node.INTEGER && op.Op != rules.OpPower
	if bothInt {
		a, b := src1.Integer(), src2.Integer()
		switch op.Op {
		case rules.OpAdd:
			replaceAt(capture, dest, node.NewInteger(a+b))
			return nil
		case rules.OpSubtract:
			replaceAt(capture, dest, node.NewInteger(a-b))
			return nil
		case rules.OpMultiply:
			replaceAt(capture, dest, node.NewInteger(a*b))
			return nil
		case rules.OpDivide:
			if b == 0 {
				sink.Emit(diag.Diagnostic{
					Severity: diag.Warning,
					Code:     diag.InvalidNumber,
					Message:  "integer division by zero",
					Position: capture[dest].Position(),
				})
				replaceAt(capture, dest, node.NewFloat(divZero(a)))
				return nil
			}
			replaceAt(capture, dest, node.NewInteger(a/b))
			return nil
		case rules.OpModulo:
			if b == 0 {
				sink.Emit(diag.Diagnostic{
					Severity: diag.Warning,
					Code:     diag.InvalidNumber,
					Message:  "modulo by zero",
					Position: capture[dest].Position(),
				})
				replaceAt(capture, dest, node.NewFloat(math.NaN()))
				return nil
			}
			replaceAt(capture, dest, node.NewInteger(a%b))
			return nil
		}
	}

	af, ok1 := src1.ToFloatingPoint()
	bf, ok2 := src2.ToFloatingPoint()
	if !ok1 || !ok2 {
		return diag.NewInternalError("arithmetic opcode %v operand not numeric-convertible", op.Op)
	}

	var result float64
	switch op.Op {
	case rules.OpAdd:
		result = af + bf
	case rules.OpSubtract:
		result = af - bf
	case rules.OpMultiply:
		result = af * bf
	case rules.OpDivide:
		result = af / bf
	case rules.OpModulo:
		result = math.Mod(af, bf)
	case rules.OpPower:
		result = math.Pow(af, bf)
	}
	replaceAt(capture, dest, node.NewFloat(result))
	return nil
}

// divZero implements the three divide-by-zero outcomes spec §4.3
// requires for integer division: +Infinity, -Infinity, or NaN.
func divZero(dividend int64) float64 {
	switch {
	case dividend > 0:
		return math.Inf(1)
	case dividend < 0:
		return math.Inf(-1)
	default:
		return math.NaN()
	}
}

// applyNegate implements NEGATE per spec §4.3: integer and float
// operands are negated in place (no kind change, so no ReplaceWith is
// needed); anything else is coerced to FLOATING_POINT first. NaN stays
// NaN under either path.
func applyNegate(capture []*node.Node, op rules.TransformOp) error {
	src, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	switch src.Kind() {
	case node.INTEGER:
		src.SetInteger(-src.Integer())
	case node.FLOATING_POINT:
		src.SetFloat(-src.Float())
	default:
		f, ok := src.ToFloatingPoint()
		if !ok {
			return diag.NewInternalError("NEGATE operand not numeric-convertible")
		}
		src.SetFloat(-f)
	}
	dest := op.Args[1]
	if dest != op.Args[0] {
		if _, err := checkIdx(capture, dest); err != nil {
			return err
		}
		replaceAt(capture, dest, src)
	}
	return nil
}
