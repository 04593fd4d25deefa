package objrules

import (
	"errors"
	"fmt"
)

// Rule represents an object-lowering invariant code (OBJ-series).
type Rule int

const (
	ruleInvalid Rule = iota

	OBJ001PrimaryCtorHasParams
	OBJ002BridgeOnForeignOwner
	OBJ003DuplicateCompanion
	OBJ004DoubleRewrite
	OBJ005DanglingObjectRef
)

// String returns the canonical code and short name of the rule.
// Example: "OBJ001: PrimaryCtorHasParams"
func (r Rule) String() string {
	switch r {
	case OBJ001PrimaryCtorHasParams:
		return "OBJ001: PrimaryCtorHasParams"
	case OBJ002BridgeOnForeignOwner:
		return "OBJ002: BridgeOnForeignOwner"
	case OBJ003DuplicateCompanion:
		return "OBJ003: DuplicateCompanion"
	case OBJ004DoubleRewrite:
		return "OBJ004: DoubleRewrite"
	case OBJ005DanglingObjectRef:
		return "OBJ005: DanglingObjectRef"
	default:
		return fmt.Sprintf("rule-unknown(%d)", int(r))
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case OBJ001PrimaryCtorHasParams:
		return "A singleton's primary constructor must take no value parameters."
	case OBJ002BridgeOnForeignOwner:
		return "A bridged companion's owner must be a local extension, not a foreign declaration."
	case OBJ003DuplicateCompanion:
		return "A declaration may nest at most one companion object."
	case OBJ004DoubleRewrite:
		return "A singleton reference node must be rewritten exactly once."
	case OBJ005DanglingObjectRef:
		return "No singleton reference node may survive the lowering."
	default:
		return fmt.Sprintf("unknown-rule(%d)", int(r))
	}
}

// Canonical constructors, for readability and stable call sites.

func PrimaryCtorHasParams() Rule { return OBJ001PrimaryCtorHasParams }
func BridgeOnForeignOwner() Rule { return OBJ002BridgeOnForeignOwner }
func DuplicateCompanion() Rule   { return OBJ003DuplicateCompanion }
func DoubleRewrite() Rule        { return OBJ004DoubleRewrite }
func DanglingObjectRef() Rule    { return OBJ005DanglingObjectRef }

// Violation is a broken internal invariant of the object lowering. It always
// means a bug upstream or in the pass itself, never bad user code: the
// program has already passed semantic validation by the time the backend
// runs. The compilation run fails at the first one.
type Violation struct {
	Rule    Rule
	Details string
}

func (v *Violation) Error() string {
	if v.Details == "" {
		return v.Rule.String()
	}

	return fmt.Sprintf("%s: %s", v.Rule, v.Details)
}

// Violate builds a violation with formatted details.
func Violate(rule Rule, format string, args ...any) error {
	return &Violation{
		Rule:    rule,
		Details: fmt.Sprintf(format, args...),
	}
}

// RuleOf extracts the rule code from err, or ruleInvalid and false when err
// carries no violation.
func RuleOf(err error) (Rule, bool) {
	var v *Violation
	if !errors.As(err, &v) {
		return ruleInvalid, false
	}

	return v.Rule, true
}
