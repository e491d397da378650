package node

import (
	"math"
	"strconv"
	"strings"
)

// --- raw literal accessors --------------------------------------------

func (n *Node) Integer() int64      { return n.intVal }
func (n *Node) SetInteger(v int64)  { n.kind = INTEGER; n.intVal = v }
func (n *Node) Float() float64      { return n.floatVal }
func (n *Node) SetFloat(v float64)  { n.kind = FLOATING_POINT; n.floatVal = v }
func (n *Node) String_() string     { return n.strVal }
func (n *Node) SetString(v string)  { n.kind = STRING; n.strVal = v }
func (n *Node) Bool() bool          { return n.boolVal }
func (n *Node) SetBool(v bool) {
	n.boolVal = v
	if v {
		n.kind = TRUE
	} else {
		n.kind = FALSE
	}
}

// --- coercions -----------------------------------------------------------

// ToInteger coerces the node's literal value to a 64-bit signed integer.
// ok is false when the node carries no convertible literal value, which
// the matcher must have ruled out before any transform opcode relies on
// this (spec invariant I3).
func (n *Node) ToInteger() (int64, bool) {
	switch n.kind {
	case INTEGER:
		return n.intVal, true
	case FLOATING_POINT:
		if math.IsNaN(n.floatVal) {
			return 0, true
		}
		return int64(n.floatVal), true
	case TRUE:
		return 1, true
	case FALSE, NULL, UNDEFINED:
		return 0, true
	case STRING:
		f, err := strconv.ParseFloat(strings.TrimSpace(n.strVal), 64)
		if err != nil {
			return 0, false
		}
		return int64(f), true
	default:
		return 0, false
	}
}

// ToFloatingPoint coerces to float64, propagating NaN for values with
// no sensible numeric reading (spec: "if either source is NaN, the
// result is NaN" relies on this never erroring for literal-typed
// captures).
func (n *Node) ToFloatingPoint() (float64, bool) {
	switch n.kind {
	case INTEGER:
		return float64(n.intVal), true
	case FLOATING_POINT:
		return n.floatVal, true
	case TRUE:
		return 1, true
	case FALSE, NULL:
		return 0, true
	case UNDEFINED:
		return math.NaN(), true
	case STRING:
		s := strings.TrimSpace(n.strVal)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN(), true
		}
		return f, true
	default:
		return 0, false
	}
}

// ToBooleanTypeOnly computes the node's truthiness without mutating it,
// per spec §3's "to_boolean_type_only" accessor.
func (n *Node) ToBooleanTypeOnly() bool {
	switch n.kind {
	case TRUE:
		return true
	case FALSE, NULL, UNDEFINED:
		return false
	case INTEGER:
		return n.intVal != 0
	case FLOATING_POINT:
		return n.floatVal != 0 && !math.IsNaN(n.floatVal)
	case STRING:
		return n.strVal != ""
	default:
		// Non-literal nodes (objects, functions, ...) are truthy.
		return true
	}
}

// ToBoolean computes the truthiness and also converts the node in place
// to the TRUE/FALSE literal kind, mirroring as2js's to_boolean() which
// is used when an expression's boolean result can fully replace it.
func (n *Node) ToBoolean() bool {
	b := n.ToBooleanTypeOnly()
	n.SetBool(b)
	return b
}

// ToNumber coerces the node in place to whichever numeric literal kind
// (INTEGER or FLOATING_POINT) its current value corresponds to.
func (n *Node) ToNumber() bool {
	switch n.kind {
	case INTEGER, FLOATING_POINT:
		return true
	case TRUE:
		n.SetInteger(1)
		return true
	case FALSE, NULL:
		n.SetInteger(0)
		return true
	case UNDEFINED:
		n.SetFloat(math.NaN())
		return true
	case STRING:
		s := strings.TrimSpace(n.strVal)
		if s == "" {
			n.SetInteger(0)
			return true
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			n.SetInteger(i)
			return true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			n.SetFloat(f)
			return true
		}
		n.SetFloat(math.NaN())
		return true
	default:
		return false
	}
}

// ToString coerces the node's value to its source-language string
// representation without mutating the node.
func (n *Node) ToString() string {
	switch n.kind {
	case STRING:
		return n.strVal
	case INTEGER:
		return strconv.FormatInt(n.intVal, 10)
	case FLOATING_POINT:
		if math.IsNaN(n.floatVal) {
			return "NaN"
		}
		if math.IsInf(n.floatVal, 1) {
			return "Infinity"
		}
		if math.IsInf(n.floatVal, -1) {
			return "-Infinity"
		}
		return strconv.FormatFloat(n.floatVal, 'g', -1, 64)
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case NULL:
		return "null"
	case UNDEFINED:
		return "undefined"
	case IDENTIFIER:
		return n.strVal
	default:
		return ""
	}
}

// ToUnknown marks the node UNKNOWN so a later CleanTree sweep physically
// removes it, per spec's REMOVE-on-root semantics.
func (n *Node) ToUnknown() { n.kind = UNKNOWN }
