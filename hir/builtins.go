package hir

// UnitAccessorName is the name of the pre-existing global accessor of the
// built-in Unit object. The runtime defines it; no pass ever synthesizes
// another one.
const UnitAccessorName = "theUnitInstance"

// Builtins holds the declarations the runtime provides to every program.
type Builtins struct {
	// Unit is the built-in unit object. It has no members worth lowering
	// and references to it resolve to UnitAccessor.
	Unit *Decl

	// UnitAccessor is the global accessor of Unit. It exists before any
	// backend pass runs.
	UnitAccessor *Func
}

// NewBuiltins installs the built-in declarations.
func NewBuiltins() *Builtins {
	unit := &Decl{
		Ref:  Reference{Package: "tarn", Name: "Unit"},
		Kind: KindObject,
	}

	acc := &Func{
		Name:       UnitAccessorName,
		Owner:      unit,
		ReturnType: unit.Ref,
	}
	unit.Funcs = append(unit.Funcs, acc)

	return &Builtins{
		Unit:         unit,
		UnitAccessor: acc,
	}
}

// IsUnit reports whether d is the built-in unit object.
func (b *Builtins) IsUnit(d *Decl) bool {
	return d == b.Unit || d.Ref == b.Unit.Ref
}
