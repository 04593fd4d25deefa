package objects

import (
	"fmt"

	"github.com/tarn-lang/tarn/backend/hir"
	"github.com/tarn-lang/tarn/backend/objrules"
)

// Run lowers every singleton declaration of the file and rewrites every
// singleton reference in it. The compiler driver calls it once per file;
// the engine's accessor cache carries over, so declarations referenced
// across files still end up with a single accessor.
//
// The walk first collects what to synthesize and what to rewrite, then
// applies both in one mutation step; the tree is never half-rewritten when
// an invariant violation aborts the run.
func (e *Engine) Run(file *hir.File) error {
	var results []*lowerResult
	for _, d := range file.Decls {
		if err := e.visit(d, &results); err != nil {
			return fmt.Errorf("lower objects of %s: %w", file.Name, err)
		}
	}

	// Attach synthesized members before the rewrite so the verification
	// sweep covers their bodies too.
	for _, r := range results {
		r.accessor.Owner = r.owner
		r.owner.Funcs = append(r.owner.Funcs, r.accessor)
		if r.field != nil {
			r.owner.Fields = append(r.owner.Fields, r.field)
		}
	}

	patches, err := e.collectRewrites(file)
	if err != nil {
		return fmt.Errorf("collect singleton rewrites of %s: %w", file.Name, err)
	}

	if err := e.applyRewrites(file, patches); err != nil {
		return fmt.Errorf("rewrite singleton references of %s: %w", file.Name, err)
	}

	return nil
}

// visit walks declarations depth-first. A named object is lowered onto
// itself with the "instance" field; the at-most-one companion among direct
// children is lowered onto the enclosing declaration with the "companion"
// field.
func (e *Engine) visit(d *hir.Decl, results *[]*lowerResult) error {
	var companion *hir.Decl
	for _, n := range d.Nested {
		if n.Kind != hir.KindCompanion {
			continue
		}
		if companion != nil {
			return objrules.Violate(objrules.DuplicateCompanion(),
				"%s nests both %s and %s", d.Ref, companion.Ref, n.Ref)
		}
		companion = n
	}

	if d.Kind == hir.KindObject && !e.builtins.IsUnit(d) {
		res, err := e.lowerObject(d, d, "instance")
		if err != nil {
			return err
		}
		*results = append(*results, res)
	}

	if companion != nil {
		res, err := e.lowerObject(companion, d, "companion")
		if err != nil {
			return err
		}
		*results = append(*results, res)
	}

	for _, n := range d.Nested {
		if err := e.visit(n, results); err != nil {
			return err
		}
	}

	return nil
}

// collectRewrites records a replacement for every singleton-reference node
// of the file, keyed by source span.
func (e *Engine) collectRewrites(file *hir.File) (*patchSet, error) {
	ps := newPatchSet()

	var err error
	hir.InspectExprs(file, func(x hir.Expr) {
		if err != nil {
			return
		}
		ref, ok := x.(*hir.ObjectRef)
		if !ok {
			return
		}
		err = ps.add(ref.Span, e.replacement(ref.Decl))
	})
	if err != nil {
		return nil, err
	}

	return ps, nil
}

// replacement builds the expression a singleton read lowers to.
func (e *Engine) replacement(d *hir.Decl) hir.Expr {
	switch {
	case e.builtins.IsUnit(d):
		// The built-in unit keeps its pre-existing global accessor; the
		// synthesizer is never involved.
		return &hir.Call{Callee: e.abi.UnitAccessor}

	case e.bridgedCompanion(d):
		// Bridged companions have no storage to read: the bridge
		// expression is inlined at the use site.
		return e.bridgeExpr(d)

	default:
		return &hir.Call{Callee: e.accessorRef(d)}
	}
}

// applyRewrites replaces every singleton-reference node with its collected
// patch and verifies none survived.
func (e *Engine) applyRewrites(file *hir.File, ps *patchSet) error {
	var err error
	hir.RewriteFile(file, func(x hir.Expr) hir.Expr {
		ref, ok := x.(*hir.ObjectRef)
		if !ok {
			return x
		}

		repl, ok := ps.take(ref.Span)
		if !ok {
			if err == nil {
				err = objrules.Violate(objrules.DanglingObjectRef(),
					"no rewrite for reference to %s at %s", ref.Decl.Ref, ref.Span)
			}
			return x
		}

		return repl
	})
	if err != nil {
		return err
	}

	if !ps.fullyConsumed() {
		return objrules.Violate(objrules.DanglingObjectRef(),
			"collected %d rewrites, applied %d", ps.inserted, ps.consumed)
	}

	return nil
}
