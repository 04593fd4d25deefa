package objects

import (
	"github.com/tarn-lang/tarn/backend/buildcfg"
	"github.com/tarn-lang/tarn/backend/hir"
	"github.com/tarn-lang/tarn/backend/objrules"
)

// lowerResult is what the synthesizer hands back to the driver: the members
// to attach to the owner and the strategy that produced them.
type lowerResult struct {
	owner    *hir.Decl
	field    *hir.Field // nil for foreign-bridged singletons
	accessor *hir.Func
	strategy Strategy
}

// lowerObject builds the backing field named fieldName and the accessor of a
// singleton declaration. owner receives the synthesized members: the
// declaration itself for named objects, the enclosing class for companions.
//
// Precondition: the primary constructor takes no value parameters. A
// violation is an upstream bug, not a user diagnostic.
func (e *Engine) lowerObject(d, owner *hir.Decl, fieldName string) (*lowerResult, error) {
	if pc := d.PrimaryCtor(); pc != nil && len(pc.Params) > 0 {
		return nil, objrules.Violate(objrules.PrimaryCtorHasParams(),
			"%s takes %d value parameters", d.Ref, len(pc.Params))
	}

	acc := e.Accessor(d)
	res := &lowerResult{owner: owner, accessor: acc}

	switch {
	case e.bridgedCompanion(d):
		if owner.Foreign {
			return nil, objrules.Violate(objrules.BridgeOnForeignOwner(),
				"companion %s of foreign declaration %s", d.Ref, owner.Ref)
		}
		acc.Body = []hir.Stmt{&hir.Return{X: e.bridgeExpr(d)}}
		res.strategy = StrategyBridged

	case constFoldable(d) && !d.Annotations.Has(hir.AnnotThreadLocal):
		field := hir.NewField(fieldName, d.Ref, hir.Private, true, &hir.Construct{Type: d.Ref})
		field.Shared = d.Annotations.Has(hir.AnnotShared) ||
			e.cfg.MemoryModel == buildcfg.MemoryModelStrict
		acc.Body = readFieldBody(owner.Ref, fieldName)
		res.field = field
		res.strategy = StrategyPrecomputed

	default:
		// Thread-confined singletons land here even when foldable: they
		// need one instance per thread, never one precreated instance
		// globally.
		field := hir.NewField(fieldName, d.Ref, hir.Private, true,
			e.lazyInit(d, owner.Ref, fieldName))
		field.KeepRaw = true
		field.Shared = d.Annotations.Has(hir.AnnotShared)
		acc.Body = readFieldBody(owner.Ref, fieldName)
		res.field = field
		res.strategy = StrategyLazy
	}

	e.strategies[d.Ref] = res.strategy

	return res, nil
}

// lazyInit builds the three-step lazy initializer:
//  1. store the runtime sentinel, so a reentrant read during step 2 on the
//     initializing thread sees the sentinel instead of recursing;
//  2. construct the value and hand it with the field to the publish
//     primitive, which owns the happens-before guarantee and makes sure
//     exactly one construction is observed program-wide;
//  3. read back and return the published value.
//
// The statement sequence must reach codegen untouched, hence KeepRaw on the
// field carrying it.
func (e *Engine) lazyInit(d *hir.Decl, owner hir.Reference, fieldName string) *hir.InitBlock {
	return &hir.InitBlock{Stmts: []hir.Stmt{
		&hir.SetField{Owner: owner, Name: fieldName, Value: &hir.Call{
			Callee: e.abi.CreateSentinel,
			Args:   []hir.Expr{&hir.TypeExpr{Type: d.Ref}},
		}},
		&hir.ExprStmt{X: &hir.Call{
			Callee: e.abi.Publish,
			Args: []hir.Expr{
				&hir.FieldRef{Owner: owner, Name: fieldName},
				&hir.Construct{Type: d.Ref},
			},
		}},
		&hir.Return{X: &hir.GetField{Owner: owner, Name: fieldName}},
	}}
}

// readFieldBody is the accessor body every stored strategy reduces to for
// later stages: read the backing field.
func readFieldBody(owner hir.Reference, name string) []hir.Stmt {
	return []hir.Stmt{&hir.Return{X: &hir.GetField{Owner: owner, Name: name}}}
}
