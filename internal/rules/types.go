// Package rules declares the optimization catalogue as data: match
// patterns, transform programs, and safety flags, grouped into
// categories purely for maintenance (spec §4.1). Nothing in this
// package mutates a table after init; Catalogue's validation pass
// runs once and panics on a malformed rule, per spec's "a violation is
// a build-time error in the rule."
//
// Shaped after the teacher's providers/golang/config.go alias-map
// tables and providers/catalog.go registry: static data plus a small
// registration/lookup surface, no behavior baked into the data itself.
package rules

import "github.com/oxhq/optiq/internal/node"

// MatchFlag is the single currently-defined match-entry flag bit from
// spec §3: "has children to match".
type MatchFlag uint8

const (
	MatchFlagNone     MatchFlag = 0
	MatchFlagChildren MatchFlag = 1 << 0
)

// LiteralKind selects which of the disjoint literal_constraint
// predicates spec §3 describes a MatchEntry carries.
type LiteralKind int

const (
	LiteralNone LiteralKind = iota
	LiteralNoSideEffect
	LiteralIdentifierEquals
	LiteralMaskEquals
	LiteralEquals
	LiteralTruthy
	LiteralFalsy
)

// LiteralConstraint is the optional value-level predicate on a match
// entry's candidate node, per spec §3.
type LiteralConstraint struct {
	Kind LiteralKind

	// LiteralIdentifierEquals: if CaptureRef >= 0, compare against the
	// string of that capture index; otherwise compare against Str.
	CaptureRef int

	// LiteralMaskEquals
	Mask     int64
	Expected int64

	// LiteralEquals: exactly one of IsInt/IsFloat/IsString is set.
	IsInt    bool
	IsFloat  bool
	IsString bool
	Int      int64
	Float    float64
	Str      string
}

// MatchEntry describes one node at a known depth in a pattern's
// depth-first linearization, per spec §3.
type MatchEntry struct {
	Depth             uint8
	Flags             MatchFlag
	NodeKinds         []node.Kind // empty means "any kind"
	Literal           *LiteralConstraint
	AttributesOptions [][]node.Attribute // matches if equal to any one set
	FlagsOptions      [][]node.Flag
}

func (e MatchEntry) HasChildren() bool { return e.Flags&MatchFlagChildren != 0 }

// Opcode is the fixed, stable transform primitive set from spec §3.
type Opcode int

const (
	OpAdd Opcode = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpPower
	OpNegate
	OpBitwiseAnd
	OpBitwiseOr
	OpBitwiseXor
	OpBitwiseNot
	OpShiftLeft
	OpShiftRight
	OpShiftRightUnsigned
	OpRotateLeft
	OpRotateRight
	OpLogicalNot
	OpLogicalXor
	OpConcatenate
	OpCompare
	OpEqual
	OpStrictlyEqual
	OpLess
	OpLessEqual
	OpMatch
	OpSmartMatch
	OpMaximum
	OpMinimum
	OpMove
	OpSwap
	OpRemove
	OpSetInteger
	OpSetNodeType
	OpToConditional
	OpToInteger
	OpToNumber
	OpWhileTrueToForever
)

// numericArgOpcodes require at least their source indices to resolve
// to a numeric-convertible capture, per spec §4.1's third structural
// precondition.
var numericArgOpcodes = map[Opcode]bool{
	OpAdd: true, OpSubtract: true, OpMultiply: true, OpDivide: true,
	OpModulo: true, OpPower: true, OpNegate: true,
	OpBitwiseAnd: true, OpBitwiseOr: true, OpBitwiseXor: true, OpBitwiseNot: true,
	OpShiftLeft: true, OpShiftRight: true, OpShiftRightUnsigned: true,
	OpRotateLeft: true, OpRotateRight: true,
	OpMaximum: true, OpMinimum: true,
	OpToInteger: true, OpToNumber: true,
}

// TransformOp is one step of a rule's transform program: an opcode plus
// up to six small indices into the capture array. Unused argument
// slots are left at their zero value and ignored by the opcode.
type TransformOp struct {
	Op   Opcode
	Args [6]int

	// IntConst (SET_INTEGER's value) and KindConst (SET_NODE_TYPE's kind)
	// carry constants some opcodes need beyond capture indices.
	IntConst  int64
	KindConst node.Kind
}

// SafetyFlag gates a rule on the options subsystem, spec §3/§6.
type SafetyFlag uint8

const (
	SafetyNone         SafetyFlag = 0
	SafetyUnsafeMath    SafetyFlag = 1 << 0
	SafetyUnsafeObject SafetyFlag = 1 << 1
)

// Rule is one optimization: a name, safety flags, a match pattern, and
// a transform program, per spec §3.
type Rule struct {
	Name    string
	Safety  SafetyFlag
	Pattern []MatchEntry
	Program []TransformOp
}

// Category groups rules solely for maintenance; it has no runtime
// effect beyond ordering (spec §3: "categories have no runtime
// effect").
type Category struct {
	Name  string
	Rules []Rule
}
