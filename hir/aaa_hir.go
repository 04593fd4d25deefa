package hir

// Node is the base interface implemented by all HIR node types.
// Each node denotes a single construct of the high-level intermediate
// representation the backend passes operate on (declarations, members,
// expressions, statements).
type Node interface {
	isNode()
}

// Expr marks nodes that may appear in value position: literals,
// constructor calls, field reads, runtime calls, singleton references.
type Expr interface {
	Node
	isExpr()
}

// Stmt marks nodes that may appear in a function or initializer body.
type Stmt interface {
	Node
	isStmt()
}
