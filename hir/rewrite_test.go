package hir

import (
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"
)

func TestRewriteExprReplacesLeaves(t *testing.T) {
	obj := &Decl{
		Ref:  Reference{Package: "app", Name: "Config"},
		Kind: KindObject,
	}

	in := &Call{
		Callee: Reference{Package: "app", Name: "use"},
		Args: []Expr{
			&ObjectRef{Decl: obj, Span: Span{Start: 3, End: 9}},
			&Construct{
				Type: obj.Ref,
				Args: []Expr{&Const{Value: "1", Type: Reference{Package: "tarn", Name: "Int"}}},
			},
		},
	}

	repl := &GetField{Owner: obj.Ref, Name: "instance"}
	got := RewriteExpr(in, func(e Expr) Expr {
		if _, ok := e.(*ObjectRef); ok {
			return repl
		}
		return e
	})

	want := Expr(&Call{
		Callee: Reference{Package: "app", Name: "use"},
		Args: []Expr{
			repl,
			&Construct{
				Type: obj.Ref,
				Args: []Expr{&Const{Value: "1", Type: Reference{Package: "tarn", Name: "Int"}}},
			},
		},
	})
	if !reflect.DeepEqual(got, want) {
		deepequal.SideBySide(t, "rewritten expression", want, got)
	}
}

func TestRewriteExprReusesUntouchedNodes(t *testing.T) {
	in := &Construct{
		Type: Reference{Package: "app", Name: "Config"},
		Args: []Expr{&Const{Value: "1", Type: Reference{Package: "tarn", Name: "Int"}}},
	}

	got := RewriteExpr(in, func(e Expr) Expr { return e })
	if got != Expr(in) {
		t.Fatal("expected the identical node back when nothing changed")
	}
}

func TestRewriteFileCoverage(t *testing.T) {
	obj := &Decl{Ref: Reference{Package: "app", Name: "Log"}, Kind: KindObject}
	mark := func(at int) *ObjectRef {
		return &ObjectRef{Decl: obj, Span: Span{Start: at, End: at + 3}}
	}

	owner := &Decl{Ref: Reference{Package: "app", Name: "Svc"}, Kind: KindClass}
	nested := &Decl{
		Ref:    Reference{Package: "app", Outer: "Svc", Name: "Inner"},
		Kind:   KindClass,
		Parent: owner,
		Funcs: []*Func{{
			Name:       "ping",
			ReturnType: obj.Ref,
			Body:       []Stmt{&Return{X: mark(40)}},
		}},
	}
	owner.Nested = []*Decl{nested}
	owner.Fields = []*Field{
		NewField("log", obj.Ref, Private, false, mark(10)),
	}
	owner.Ctors = []*Constructor{{
		Primary: true,
		Body:    []Stmt{&SetField{Owner: owner.Ref, Name: "log", Value: mark(20)}},
	}}
	owner.Funcs = []*Func{{
		Name:       "use",
		ReturnType: obj.Ref,
		Body:       []Stmt{&Return{X: mark(30)}},
	}}

	file := &File{
		Name:  "cover.tarn",
		Decls: []*Decl{owner},
		Funcs: []*Func{{
			Name:       "main",
			ReturnType: obj.Ref,
			Body:       []Stmt{&Return{X: mark(50)}},
		}},
	}

	var seen int
	InspectExprs(file, func(e Expr) {
		if _, ok := e.(*ObjectRef); ok {
			seen++
		}
	})
	if seen != 5 {
		t.Fatalf("expected 5 singleton references across the file, saw %d", seen)
	}

	RewriteFile(file, func(e Expr) Expr {
		if _, ok := e.(*ObjectRef); ok {
			return &GetField{Owner: obj.Ref, Name: "instance"}
		}
		return e
	})

	var left int
	InspectExprs(file, func(e Expr) {
		if _, ok := e.(*ObjectRef); ok {
			left++
		}
	})
	if left != 0 {
		t.Fatalf("expected no singleton references after rewrite, %d left", left)
	}
}
