package transform

import (
	"github.com/oxhq/optiq/internal/diag"
	"github.com/oxhq/optiq/internal/node"
	"github.com/oxhq/optiq/internal/rules"
)

// applyMove implements MOVE per spec §4.3: Args[0] is hoisted into the
// position Args[1] currently occupies. The vacated slot gets an EMPTY
// placeholder rather than being spliced out of its parent's child list,
// so sibling offsets elsewhere in the same transform program stay
// valid. Nothing removes the placeholder afterwards (CleanTree only
// drops UNKNOWN nodes); it stays in src's old parent, which in the
// catalogue's MOVE rules is the node being replaced at Args[1], so it
// leaves the tree together with that node.
func applyMove(capture []*node.Node, op rules.TransformOp) error {
	src, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	dest := op.Args[1]
	if _, err := checkIdx(capture, dest); err != nil {
		return err
	}
	if src.Parent() != nil {
		src.ReplaceWith(node.New(node.EMPTY))
	}
	replaceAt(capture, dest, src)
	return nil
}

// applySwap implements SWAP per spec §4.3: the two captured nodes trade
// tree positions. A placeholder holds Args[0]'s slot open while Args[1]
// is moved there, since a node can never sit in two parents at once.
func applySwap(capture []*node.Node, op rules.TransformOp) error {
	a, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	b, err := checkIdx(capture, op.Args[1])
	if err != nil {
		return err
	}
	placeholder := node.New(node.EMPTY)
	replaceAt(capture, op.Args[0], placeholder)
	replaceAt(capture, op.Args[1], a)
	replaceAt(capture, op.Args[0], b)
	return nil
}

// applyRemove implements REMOVE per spec §4.3. Index 0 is always the
// pattern's own root capture; a root cannot splice itself out of a
// parent it may not even have (it might be the whole tree), so it is
// marked UNKNOWN instead and left for the Driver's post-pass CleanTree
// sweep, same as a parentless ReplaceWith falls back to Become.
func applyRemove(capture []*node.Node, op rules.TransformOp) error {
	target, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	if op.Args[0] == 0 {
		target.SetKind(node.UNKNOWN)
		return nil
	}
	parent := target.Parent()
	if parent == nil {
		target.SetKind(node.UNKNOWN)
		return nil
	}
	parent.DeleteChild(target.Offset())
	return nil
}

// applySetInteger implements SET_INTEGER per spec §4.3: replace the
// destination with a fresh INTEGER literal carrying the op's constant.
func applySetInteger(capture []*node.Node, op rules.TransformOp) error {
	dest := op.Args[0]
	if _, err := checkIdx(capture, dest); err != nil {
		return err
	}
	replaceAt(capture, dest, node.NewInteger(op.IntConst))
	return nil
}

// applySetNodeType implements SET_NODE_TYPE per spec §4.3: the target
// is rebuilt as a fresh node of the op's constant kind with the same
// children and position, since Node.SetKind alone would leave a node
// whose child shape no longer matches its new kind's expectations.
func applySetNodeType(capture []*node.Node, op rules.TransformOp) error {
	dest := op.Args[0]
	target, err := checkIdx(capture, dest)
	if err != nil {
		return err
	}
	fresh := node.New(op.KindConst)
	fresh.SetPosition(target.Position())
	for i := 0; i < target.ChildrenSize(); i++ {
		fresh.AppendChild(target.Child(i))
	}
	replaceAt(capture, dest, fresh)
	return nil
}

// applyToConditional implements TO_CONDITIONAL per spec §4.3: builds
// CONDITIONAL(cond, whenTrue, whenFalse) at the destination from three
// existing captures.
func applyToConditional(capture []*node.Node, op rules.TransformOp) error {
	cond, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	whenTrue, err := checkIdx(capture, op.Args[1])
	if err != nil {
		return err
	}
	whenFalse, err := checkIdx(capture, op.Args[2])
	if err != nil {
		return err
	}
	dest := op.Args[3]
	if _, err := checkIdx(capture, dest); err != nil {
		return err
	}

	result := node.New(node.CONDITIONAL)
	result.SetPosition(cond.Position())
	result.AppendChild(cond)
	result.AppendChild(whenTrue)
	result.AppendChild(whenFalse)
	replaceAt(capture, dest, result)
	return nil
}

// applyToInteger implements TO_INTEGER per spec §4.3: the source's
// to_integer reading becomes a fresh INTEGER literal at the
// destination, leaving the source itself untouched.
func applyToInteger(capture []*node.Node, op rules.TransformOp) error {
	src, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	dest := op.Args[1]
	if _, err := checkIdx(capture, dest); err != nil {
		return err
	}
	v, ok := src.ToInteger()
	if !ok {
		return diag.NewInternalError("TO_INTEGER operand not integer-convertible")
	}
	replaceAt(capture, dest, node.NewInteger(v))
	return nil
}

// applyToNumber implements TO_NUMBER per spec §4.3: the target coerces
// itself in place to whichever numeric literal kind its current value
// maps to (the node API's to_number already mutates in place, so no
// replaceAt is needed unless the opcode names a separate destination).
func applyToNumber(capture []*node.Node, op rules.TransformOp) error {
	src, err := checkIdx(capture, op.Args[0])
	if err != nil {
		return err
	}
	if !src.ToNumber() {
		return diag.NewInternalError("TO_NUMBER operand not numeric-convertible")
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

// applyWhileTrueToForever implements WHILE_TRUE_TO_FOREVER per spec
// §4.3 and the scenario 4 example in spec §8: `while (true) body`
// becomes `for (;;) body`, an unconditional FOR with three EMPTY
// clause slots ahead of the carried-over body.
func applyWhileTrueToForever(capture []*node.Node, op rules.TransformOp) error {
	dest := op.Args[0]
	target, err := checkIdx(capture, dest)
	if err != nil {
		return err
	}
	body, err := checkIdx(capture, op.Args[1])
	if err != nil {
		return err
	}

	result := node.New(node.FOR)
	result.SetPosition(target.Position())
	result.AppendChild(node.New(node.EMPTY))
	result.AppendChild(node.New(node.EMPTY))
	result.AppendChild(node.New(node.EMPTY))
	result.AppendChild(body)
	replaceAt(capture, dest, result)
	return nil
}
