package hir

// SetField assigns a value to a static field.
//
//	Config.instance = createSentinel(Config)
type SetField struct {
	Owner Reference
	Name  string
	Value Expr
}

// ExprStmt evaluates an expression for its effect.
type ExprStmt struct {
	X Expr
}

// Return returns from the enclosing function or initializer.
// X is nil for a bare return.
type Return struct {
	X Expr
}

func (*SetField) isNode() {}
func (*ExprStmt) isNode() {}
func (*Return) isNode()   {}
func (*SetField) isStmt() {}
func (*ExprStmt) isStmt() {}
func (*Return) isStmt()   {}
