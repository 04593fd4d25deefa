package hir

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Reference identifies a declared entity of the compiled program: a class,
// object, function, or field. It is the stable key used to attribute
// synthesized members to declarations across files and passes.
type Reference struct {
	// Package is the Tarn package path declaring the entity
	// (e.g. "app", "tarn.rt").
	Package string

	// Outer is the name of the enclosing class-like declaration.
	// Empty for top-level entities.
	Outer string

	// Name is the declared identifier of the entity within its scope.
	Name string
}

// IsZero reports whether the reference identifies nothing.
func (r Reference) IsZero() bool {
	return r == Reference{}
}

func (r Reference) String() string {
	v, err := r.MarshalText()
	if err != nil {
		return fmt.Sprintf("reference-invalid(%q.%s.%s)", r.Package, r.Outer, r.Name)
	}

	return string(v)
}

var _ encoding.TextUnmarshaler = (*Reference)(nil)

func (r *Reference) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return errors.New("empty reference")
	}

	// Expected forms:
	//   "pkg/path".Name
	//   "pkg/path".Outer.Name

	if !strings.HasPrefix(s, `"`) {
		return fmt.Errorf("reference must start with quoted package: %q", s)
	}
	end := strings.Index(s[1:], `"`)
	if end < 0 {
		return fmt.Errorf("unterminated quoted package in reference: %q", s)
	}
	end++ // include the first quote

	pkg := s[1:end]
	if pkg == "" {
		return fmt.Errorf("package cannot be empty in reference: %q", s)
	}

	rest := strings.TrimPrefix(s[end+1:], ".")
	if rest == "" {
		return fmt.Errorf("reference must contain a name: %q", s)
	}

	parts := strings.Split(rest, ".")
	if len(parts) < 1 || len(parts) > 2 {
		return fmt.Errorf("reference must have 1 or 2 identifiers after package: %q", s)
	}

	for _, p := range parts {
		if !isIdent(p) {
			return fmt.Errorf("invalid identifier %q in reference %q", p, s)
		}
	}

	r.Package = pkg
	switch len(parts) {
	case 1:
		r.Outer = ""
		r.Name = parts[0]
	case 2:
		r.Outer = parts[0]
		r.Name = parts[1]
	}

	return nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func (r Reference) MarshalText() ([]byte, error) {
	if r.Package == "" {
		return nil, fmt.Errorf("cannot marshal Reference: empty Package")
	}
	if r.Name == "" {
		return nil, fmt.Errorf("cannot marshal Reference: empty Name")
	}

	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(r.Package)
	b.WriteByte('"')
	b.WriteByte('.')

	if r.Outer != "" {
		b.WriteString(r.Outer)
		b.WriteByte('.')
	}

	b.WriteString(r.Name)

	return []byte(b.String()), nil
}

// Member returns the reference of a member named name declared inside the
// entity r refers to. Only valid for top-level r: nesting deeper than one
// level keeps the innermost owner.
func (r Reference) Member(name string) Reference {
	return Reference{
		Package: r.Package,
		Outer:   r.Name,
		Name:    name,
	}
}
