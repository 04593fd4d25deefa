package hir

// Const is a compile-time constant literal in its source form.
//
//	"hello"  // Value: `"hello"`, Type: "tarn".String
//	42       // Value: `42`,      Type: "tarn".Int
type Const struct {
	Value string
	Type  Reference
}

// Construct is a constructor invocation of the given type.
//
//	Config()  // Type: "app".Config, no Args
type Construct struct {
	Type Reference
	Args []Expr
}

// GetField reads a static field.
//
//	Config.instance  // Owner: "app".Config, Name: "instance"
type GetField struct {
	Owner Reference
	Name  string
}

// FieldRef passes a static field itself, not its value, to a runtime
// primitive. Only meaningful as an argument of a runtime call.
type FieldRef struct {
	Owner Reference
	Name  string
}

// Call invokes a function by reference.
//
//	publish(&Config.instance, Config())
type Call struct {
	Callee Reference
	Args   []Expr
}

// TypeExpr passes a type as a metadata operand of a runtime call.
type TypeExpr struct {
	Type Reference
}

// ObjectRef reads a singleton's value at a use site. The object lowering
// replaces every such node with an accessor call or an inlined bridge
// expression; none survive the pass.
type ObjectRef struct {
	Decl *Decl
	Span Span
}

// InitBlock is an ordered statement sequence used as a field initializer.
// The lazy singleton initializer is the only producer.
type InitBlock struct {
	Stmts []Stmt
}

func (*Const) isNode()     {}
func (*Construct) isNode() {}
func (*GetField) isNode()  {}
func (*FieldRef) isNode()  {}
func (*Call) isNode()      {}
func (*TypeExpr) isNode()  {}
func (*ObjectRef) isNode() {}
func (*InitBlock) isNode() {}
func (*Const) isExpr()     {}
func (*Construct) isExpr() {}
func (*GetField) isExpr()  {}
func (*FieldRef) isExpr()  {}
func (*Call) isExpr()      {}
func (*TypeExpr) isExpr()  {}
func (*ObjectRef) isExpr() {}
func (*InitBlock) isExpr() {}
