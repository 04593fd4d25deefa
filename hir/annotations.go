package hir

import "strings"

// Annotations is the set of concurrency markers the front end attaches to a
// declaration. The backend consumes them read-only.
type Annotations uint8

const (
	// AnnotThreadLocal marks a thread-confined declaration: one instance
	// per thread, never a single precreated instance shared globally.
	AnnotThreadLocal Annotations = 1 << iota

	// AnnotShared marks a declaration whose instance is shared across
	// threads and immutable after initialization.
	AnnotShared

	// AnnotEagerInit marks a declaration the user allows to be created
	// ahead of any running code.
	AnnotEagerInit
)

// Has reports whether every marker of m is present in a.
func (a Annotations) Has(m Annotations) bool {
	return a&m == m
}

func (a Annotations) String() string {
	if a == 0 {
		return ""
	}

	var parts []string
	if a.Has(AnnotThreadLocal) {
		parts = append(parts, "@threadlocal")
	}
	if a.Has(AnnotShared) {
		parts = append(parts, "@shared")
	}
	if a.Has(AnnotEagerInit) {
		parts = append(parts, "@eager")
	}

	return strings.Join(parts, " ")
}
