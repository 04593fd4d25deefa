package objects

import (
	"fmt"

	"github.com/sirkon/rbtree"

	"github.com/tarn-lang/tarn/backend/hir"
	"github.com/tarn-lang/tarn/backend/objrules"
)

// exprPatch is a pending replacement of the expression node at span.
type exprPatch struct {
	span hir.Span
	repl hir.Expr
}

// Cmp defines ordering for the RB-tree as "disjoint by position":
//   - -1 if this span ends before other starts,
//   - 1 if this span starts after other ends,
//   - 0 on any overlap.
//
// Singleton references are leaves, so two of them never nest: overlap can
// only mean the same node, and InsertReturn hands the existing patch back so
// the caller can flag the double rewrite.
func (p *exprPatch) Cmp(other *exprPatch) int {
	if p.span.End <= other.span.Start {
		return -1
	}
	if p.span.Start >= other.span.End {
		return 1
	}

	return 0
}

// patchSet holds the reference rewrites collected during traversal, keyed by
// source span. Collection leaves the tree untouched; mutation happens only
// when the driver applies the set.
type patchSet struct {
	tree     *rbtree.Tree[*exprPatch]
	inserted int
	consumed int
}

func newPatchSet() *patchSet {
	return &patchSet{tree: rbtree.New[*exprPatch]()}
}

// add registers a replacement for the node at span. A second registration
// for the same span violates the rewritten-exactly-once invariant.
func (s *patchSet) add(span hir.Span, repl hir.Expr) error {
	if span.End <= span.Start {
		// The front end stamps every reference node with its source
		// range; an empty span here means the tree is corrupted.
		panic(fmt.Sprintf("objects: reference node without a source span: %s", span))
	}

	p := &exprPatch{span: span, repl: repl}
	if r := s.tree.InsertReturn(p); r != p {
		return objrules.Violate(objrules.DoubleRewrite(), "second rewrite for span %s", span)
	}
	s.inserted++

	return nil
}

// take resolves the replacement for the node at span.
func (s *patchSet) take(span hir.Span) (hir.Expr, bool) {
	probe := &exprPatch{span: span}
	r := s.tree.Search(probe)
	if r == nil || r.span != span {
		return nil, false
	}
	s.consumed++

	return r.repl, true
}

// fullyConsumed reports whether every collected patch was applied.
func (s *patchSet) fullyConsumed() bool {
	return s.inserted == s.consumed
}
