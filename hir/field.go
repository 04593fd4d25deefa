package hir

import "fmt"

// Field is a stored property of a class-like declaration. The record is
// constructed and validated in one step by [NewField]; passes never flip
// individual properties of an existing field, they build a new one.
type Field struct {
	Name       string
	Type       Reference
	Visibility Visibility
	Static     bool

	// Init is the field initializer. For backing fields synthesized by
	// the object lowering it is either a single constant construction or
	// an [InitBlock].
	Init Expr

	// Shared tags the field shared-immutable-after-init: later stages
	// must make its value visible across threads once published.
	Shared bool

	// KeepRaw suppresses the external freeze/optimization pass over Init.
	// Set on lazy initializers whose statement sequence must reach codegen
	// untouched. A deliberate, tracked suppression, not a hint.
	KeepRaw bool
}

// NewField builds a field record, checking the parts that every later stage
// relies on. Invalid input here is a bug in the calling pass, so it panics.
func NewField(name string, typ Reference, vis Visibility, static bool, init Expr) *Field {
	if name == "" {
		panic("hir.NewField: empty field name")
	}
	if typ.IsZero() {
		panic(fmt.Sprintf("hir.NewField: field %s has no type", name))
	}

	return &Field{
		Name:       name,
		Type:       typ,
		Visibility: vis,
		Static:     static,
		Init:       init,
	}
}

func (*Field) isNode() {}
