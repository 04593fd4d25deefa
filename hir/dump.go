package hir

import (
	"fmt"
	"strings"
)

// Dump renders the file tree in a stable single-pass textual form. The
// output is deterministic for identical trees, which makes it usable for
// golden tests and pass debugging. It is not parsed back.
func Dump(file *File) string {
	var d dumper
	d.linef(0, "file %s", file.Name)
	for _, decl := range file.Decls {
		d.decl(0, decl)
	}
	for _, fn := range file.Funcs {
		d.fn(0, fn)
	}

	return d.b.String()
}

type dumper struct {
	b strings.Builder
}

func (d *dumper) linef(depth int, format string, args ...any) {
	d.b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(&d.b, format, args...)
	d.b.WriteByte('\n')
}

func (d *dumper) decl(depth int, decl *Decl) {
	head := fmt.Sprintf("%s %s", decl.Kind, decl.Ref)
	if a := decl.Annotations.String(); a != "" {
		head += " " + a
	}
	if decl.Foreign {
		head += " foreign"
	}
	if !decl.ForeignBase.IsZero() {
		head += " extends foreign " + decl.ForeignBase.String()
	}
	d.linef(depth, "%s", head)

	for _, f := range decl.Fields {
		d.field(depth+1, f)
	}
	for _, c := range decl.Ctors {
		d.ctor(depth+1, c)
	}
	for _, fn := range decl.Funcs {
		d.fn(depth+1, fn)
	}
	for _, n := range decl.Nested {
		d.decl(depth+1, n)
	}
}

func (d *dumper) field(depth int, f *Field) {
	flags := []string{f.Visibility.String()}
	if f.Static {
		flags = append(flags, "static")
	}
	if f.Shared {
		flags = append(flags, "shared")
	}
	if f.KeepRaw {
		flags = append(flags, "keepraw")
	}

	line := fmt.Sprintf("field %s: %s (%s)", f.Name, f.Type, strings.Join(flags, " "))
	if f.Init != nil {
		line += " = " + ExprString(f.Init)
	}
	d.linef(depth, "%s", line)
}

func (d *dumper) ctor(depth int, c *Constructor) {
	var flags []string
	if c.Primary {
		flags = append(flags, "primary")
	}
	if c.AutoGenerated {
		flags = append(flags, "auto")
	}
	if c.DelegatesToAny {
		flags = append(flags, "delegates-any")
	}

	var params []string
	for _, p := range c.Params {
		params = append(params, fmt.Sprintf("%s: %s", p.Name, p.Type))
	}

	head := "ctor(" + strings.Join(params, ", ") + ")"
	if len(flags) > 0 {
		head += " " + strings.Join(flags, " ")
	}
	d.linef(depth, "%s", head)

	for _, s := range c.Body {
		d.linef(depth+1, "%s", StmtString(s))
	}
}

func (d *dumper) fn(depth int, fn *Func) {
	d.linef(depth, "func %s(): %s", fn.Name, fn.ReturnType)
	for _, s := range fn.Body {
		d.linef(depth+1, "%s", StmtString(s))
	}
}

// ExprString renders a single expression on one line.
func ExprString(e Expr) string {
	switch x := e.(type) {
	case *Const:
		return "lit " + x.Value

	case *Construct:
		return fmt.Sprintf("new %s(%s)", x.Type, exprList(x.Args))

	case *GetField:
		return fmt.Sprintf("read %s.%s", x.Owner, x.Name)

	case *FieldRef:
		return fmt.Sprintf("&%s.%s", x.Owner, x.Name)

	case *Call:
		return fmt.Sprintf("call %s(%s)", x.Callee, exprList(x.Args))

	case *TypeExpr:
		return "type " + x.Type.String()

	case *ObjectRef:
		return "objectref " + x.Decl.Ref.String()

	case *InitBlock:
		parts := make([]string, len(x.Stmts))
		for i, s := range x.Stmts {
			parts[i] = StmtString(s)
		}
		return "{ " + strings.Join(parts, "; ") + " }"

	default:
		return fmt.Sprintf("expr-unknown(%T)", e)
	}
}

func exprList(list []Expr) string {
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = ExprString(e)
	}

	return strings.Join(parts, ", ")
}

// StmtString renders a single statement on one line.
func StmtString(s Stmt) string {
	switch x := s.(type) {
	case *SetField:
		return fmt.Sprintf("set %s.%s = %s", x.Owner, x.Name, ExprString(x.Value))

	case *ExprStmt:
		return "do " + ExprString(x.X)

	case *Return:
		if x.X == nil {
			return "return"
		}
		return "return " + ExprString(x.X)

	default:
		return fmt.Sprintf("stmt-unknown(%T)", s)
	}
}
