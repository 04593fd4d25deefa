package objects

import "github.com/tarn-lang/tarn/backend/hir"

// bridgedCompanion reports whether d is a companion mirroring the class
// object of the foreign runtime class its owner extends. Such companions are
// backed by the foreign runtime directly and get no local storage.
func (e *Engine) bridgedCompanion(d *hir.Decl) bool {
	return d.Kind == hir.KindCompanion && d.Parent != nil && !d.Parent.ForeignBase.IsZero()
}

// bridgeExpr builds the expression reinterpreting the owner's foreign class
// handle as the companion's value:
//
//	bridge(resolveForeignClass(<foreign base>), <companion type>)
//
// The same expression serves as the accessor body and as the inline
// replacement at use sites.
func (e *Engine) bridgeExpr(d *hir.Decl) hir.Expr {
	return &hir.Call{
		Callee: e.abi.Bridge,
		Args: []hir.Expr{
			&hir.Call{
				Callee: e.abi.ResolveForeignClass,
				Args:   []hir.Expr{&hir.TypeExpr{Type: d.Parent.ForeignBase}},
			},
			&hir.TypeExpr{Type: d.Ref},
		},
	}
}
