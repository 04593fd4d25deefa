// Package runtimeabi names the object-runtime primitives the backend emits
// calls to. The primitives themselves live in the Tarn runtime; the backend
// treats them as external collaborators and never selects the concrete
// atomic or locking machinery behind them.
//
// Contract of the publish primitive, relied upon by the lazy initialization
// the object lowering generates:
//
//   - idempotent across concurrent first callers;
//   - exactly one constructor invocation is observed program-wide;
//   - construction completes before any observer sees the published value;
//   - on constructor failure the field is left retryable, never holding a
//     half-initialized value.
//
// The wait/retry policy of a caller racing an in-progress initialization is
// the runtime's business. The lowering only guarantees it emits no
// unsynchronized fast path around the primitive.
package runtimeabi

import "github.com/tarn-lang/tarn/backend/hir"

// Package is the runtime package declaring the object primitives.
const Package = "tarn.rt"

// ABI holds the references of the runtime primitives the object lowering
// emits calls to.
type ABI struct {
	// CreateSentinel builds the runtime "uninitialized" value for a type:
	// createSentinel(type) -> value.
	CreateSentinel hir.Reference

	// Publish stores a constructed value into a field with a
	// happens-before edge for every later reader:
	// publish(field, constructedValue).
	Publish hir.Reference

	// Bridge reinterprets a foreign class handle as a value of a local
	// type: bridge(foreignClassHandle, type) -> value.
	Bridge hir.Reference

	// ResolveForeignClass obtains the foreign runtime's class handle for
	// a type: resolveForeignClass(type) -> foreignClassHandle.
	ResolveForeignClass hir.Reference

	// UnitAccessor is the pre-existing global accessor of the built-in
	// unit object.
	UnitAccessor hir.Reference
}

// Default returns the canonical runtime symbols.
func Default() ABI {
	return ABI{
		CreateSentinel:      sym("createSentinel"),
		Publish:             sym("publish"),
		Bridge:              sym("bridge"),
		ResolveForeignClass: sym("resolveForeignClass"),
		UnitAccessor:        sym(hir.UnitAccessorName),
	}
}

func sym(name string) hir.Reference {
	return hir.Reference{
		Package: Package,
		Outer:   "objects",
		Name:    name,
	}
}
