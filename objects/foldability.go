package objects

import "github.com/tarn-lang/tarn/backend/hir"

// constFoldable reports whether a singleton can be built once, with no side
// effects, ahead of any running code. True when the user explicitly allowed
// precreation, or when every stored field holds a compile-time constant and
// every constructor is a trivial auto-generated delegator.
//
// The check is purely structural and conservative: a false negative only
// costs a lazier strategy, a false positive would break program semantics.
// That is why safe statement shapes are enumerated exhaustively and
// everything unrecognized disqualifies.
func constFoldable(d *hir.Decl) bool {
	if d.Annotations.Has(hir.AnnotEagerInit) {
		return true
	}

	for _, f := range d.Fields {
		if f.Init != nil && !constExpr(f.Init) {
			return false
		}
	}

	for _, c := range d.Ctors {
		if !trivialCtor(c) {
			return false
		}
	}

	return true
}

// trivialCtor recognizes the only constructor shape safe to fold: an
// auto-generated zero-parameter constructor delegating to the universal base
// constructor, whose body assigns nothing but constants to fields.
func trivialCtor(c *hir.Constructor) bool {
	if !c.AutoGenerated || !c.DelegatesToAny {
		return false
	}
	if len(c.Params) > 0 {
		return false
	}

	for _, s := range c.Body {
		switch st := s.(type) {
		case *hir.SetField:
			if !constExpr(st.Value) {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// constExpr recognizes compile-time constants. Only literals qualify:
// constructor calls, field reads, and runtime calls may all run code.
func constExpr(e hir.Expr) bool {
	_, ok := e.(*hir.Const)
	return ok
}
