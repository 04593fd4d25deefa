package hir

import "fmt"

// RewriteExpr rebuilds e bottom-up: children first, then f applied to the
// node itself. f must return a non-nil expression. Nodes are reused when
// nothing under them changed.
func RewriteExpr(e Expr, f func(Expr) Expr) Expr {
	if e == nil {
		return nil
	}

	switch x := e.(type) {
	case *Const, *GetField, *FieldRef, *TypeExpr, *ObjectRef:
		// Leaves.

	case *Construct:
		if args, changed := rewriteExprs(x.Args, f); changed {
			e = &Construct{Type: x.Type, Args: args}
		}

	case *Call:
		if args, changed := rewriteExprs(x.Args, f); changed {
			e = &Call{Callee: x.Callee, Args: args}
		}

	case *InitBlock:
		if stmts, changed := rewriteStmts(x.Stmts, f); changed {
			e = &InitBlock{Stmts: stmts}
		}

	default:
		panic(fmt.Sprintf("hir.RewriteExpr: unhandled expression %T", e))
	}

	return f(e)
}

func rewriteExprs(list []Expr, f func(Expr) Expr) (res []Expr, changed bool) {
	res = list
	for i, e := range list {
		r := RewriteExpr(e, f)
		if r == e {
			continue
		}
		if !changed {
			res = make([]Expr, len(list))
			copy(res, list)
			changed = true
		}
		res[i] = r
	}

	return res, changed
}

// RewriteStmt rebuilds expressions inside a statement.
func RewriteStmt(s Stmt, f func(Expr) Expr) Stmt {
	switch x := s.(type) {
	case *SetField:
		if v := RewriteExpr(x.Value, f); v != x.Value {
			return &SetField{Owner: x.Owner, Name: x.Name, Value: v}
		}

	case *ExprStmt:
		if v := RewriteExpr(x.X, f); v != x.X {
			return &ExprStmt{X: v}
		}

	case *Return:
		if v := RewriteExpr(x.X, f); v != x.X {
			return &Return{X: v}
		}

	default:
		panic(fmt.Sprintf("hir.RewriteStmt: unhandled statement %T", s))
	}

	return s
}

func rewriteStmts(list []Stmt, f func(Expr) Expr) (res []Stmt, changed bool) {
	res = list
	for i, s := range list {
		r := RewriteStmt(s, f)
		if r == s {
			continue
		}
		if !changed {
			res = make([]Stmt, len(list))
			copy(res, list)
			changed = true
		}
		res[i] = r
	}

	return res, changed
}

// RewriteFile applies f to every expression of the file: function bodies,
// constructor bodies, and field initializers, through nested declarations.
// The tree itself is updated in place; subtrees are rebuilt as needed.
func RewriteFile(file *File, f func(Expr) Expr) {
	for _, fn := range file.Funcs {
		fn.Body, _ = rewriteStmts(fn.Body, f)
	}
	for _, d := range file.Decls {
		rewriteDecl(d, f)
	}
}

func rewriteDecl(d *Decl, f func(Expr) Expr) {
	for _, fld := range d.Fields {
		fld.Init = RewriteExpr(fld.Init, f)
	}
	for _, fn := range d.Funcs {
		fn.Body, _ = rewriteStmts(fn.Body, f)
	}
	for _, c := range d.Ctors {
		c.Body, _ = rewriteStmts(c.Body, f)
	}
	for _, n := range d.Nested {
		rewriteDecl(n, f)
	}
}

// InspectExprs calls f for every expression of the file, same coverage as
// [RewriteFile], leaves before parents.
func InspectExprs(file *File, f func(Expr)) {
	RewriteFile(file, func(e Expr) Expr {
		f(e)
		return e
	})
}
