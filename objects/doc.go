// Package objects implements the singleton-object lowering of the Tarn
// backend.
//
// The pass converts every object and companion declaration into a private
// static backing field plus an accessor function, and rewrites every
// singleton-reference expression into an accessor call. Three strategies
// exist:
//
//   - precomputed-constant: the instance is built once, ahead of any running
//     code; the accessor just reads the field;
//   - lazy-double-checked: the field starts from a runtime sentinel and the
//     instance is installed through the runtime publish primitive, which
//     owns the cross-thread ordering guarantee;
//   - foreign-bridged: a companion mirroring a foreign runtime's class
//     object gets no storage at all, only a bridge expression.
//
// The strategy is chosen once per declaration from structural analysis, the
// concurrency annotations, and the active memory model. The pass runs
// single-threaded, one file at a time; the accessor cache is the only state
// shared across files and keeps the one-accessor-per-declaration guarantee.
// Should file traversal ever parallelize, the cache must become a concurrent
// map with atomic get-or-create.
//
// Every failure is an internal-invariant violation reported through
// objrules; the compilation run stops at the first one.
package objects
