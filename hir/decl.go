package hir

import (
	"encoding"
	"fmt"
)

// Kind tags class-like declarations.
type Kind int

const (
	kindInvalid Kind = iota

	// KindClass is an ordinary class.
	KindClass

	// KindInterface is an interface.
	KindInterface

	// KindObject is a named singleton object declaration.
	KindObject

	// KindCompanion is the companion object nested in a class.
	KindCompanion
)

func (k Kind) String() string {
	v, err := k.MarshalText()
	if err != nil {
		return fmt.Sprintf("kind-invalid(%d)", int(k))
	}

	return string(v)
}

var _ encoding.TextUnmarshaler = (*Kind)(nil)

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "class":
		*k = KindClass
	case "interface":
		*k = KindInterface
	case "object":
		*k = KindObject
	case "companion":
		*k = KindCompanion
	default:
		return fmt.Errorf("unknown declaration kind %q", b)
	}

	return nil
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindClass:
		return []byte("class"), nil
	case KindInterface:
		return []byte("interface"), nil
	case KindObject:
		return []byte("object"), nil
	case KindCompanion:
		return []byte("companion"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid Kind(%d)", int(k))
	}
}

// Visibility of a member.
type Visibility int

const (
	visibilityInvalid Visibility = iota
	Public
	Private
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Private:
		return "private"
	default:
		return fmt.Sprintf("visibility-invalid(%d)", int(v))
	}
}

// Param is a value parameter of a constructor or function.
type Param struct {
	Name string
	Type Reference
}

// Constructor is a constructor of a class-like declaration. The front end
// restricts auto-generated constructor bodies to plain field assignments;
// the foldability analyzer relies on that restriction being structural, not
// assumed.
type Constructor struct {
	Params        []Param
	Primary       bool
	AutoGenerated bool

	// DelegatesToAny is set when the constructor only delegates to the
	// universal base constructor.
	DelegatesToAny bool

	Body []Stmt
}

// Func is a function or method. Synthesized accessors become Funcs attached
// to their owner declaration.
type Func struct {
	Name       string
	Owner      *Decl // nil until attached
	ReturnType Reference
	Body       []Stmt
}

// Decl is a class-like declaration: class, interface, object, or companion.
type Decl struct {
	Ref         Reference
	Kind        Kind
	Parent      *Decl
	Nested      []*Decl
	Fields      []*Field
	Funcs       []*Func
	Ctors       []*Constructor
	Annotations Annotations

	// Foreign is set for declarations defined by the foreign object
	// runtime rather than by compiled Tarn code.
	Foreign bool

	// ForeignBase names the foreign runtime class this local declaration
	// extends. Zero when the supertype chain is fully local.
	ForeignBase Reference

	Span Span
}

// IsSingleton reports whether the declaration is guaranteed at most one
// instance per scope: a named object or a companion.
func (d *Decl) IsSingleton() bool {
	return d.Kind == KindObject || d.Kind == KindCompanion
}

// PrimaryCtor returns the primary constructor, or nil when the declaration
// has none recorded.
func (d *Decl) PrimaryCtor() *Constructor {
	for _, c := range d.Ctors {
		if c.Primary {
			return c
		}
	}

	return nil
}

// File is the unit of backend traversal: the declarations and top-level
// functions of a single source file.
type File struct {
	Name  string
	Decls []*Decl
	Funcs []*Func
}

func (*Decl) isNode()        {}
func (*Func) isNode()        {}
func (*Constructor) isNode() {}
