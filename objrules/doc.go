// Package objrules defines the canonical OBJ-series invariant codes raised by
// the singleton-object lowering.
//
// Every failure of the lowering is an internal-invariant violation: the
// program has already passed the front end, so a broken precondition here
// points at an upstream pass or at the lowering itself. The OBJ-series gives
// each such condition a stable numeric and textual identity so that compiler
// crashes can be classified, reported, and traced consistently.
//
// Rule codes follow the format “OBJ<NNN>: <Name>”:
//
//	001–003  Declaration-shape preconditions
//	004–009  Reference-rewrite bookkeeping
//
// Typical use in the pass:
//
//	if len(pc.Params) > 0 {
//	    return objrules.Violate(objrules.PrimaryCtorHasParams(), "object %s", d.Ref)
//	}
//
// Rule identifiers are stable; never renumber existing codes.
package objrules
