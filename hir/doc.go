// Package hir holds the subset of the Tarn high-level intermediate
// representation consumed and extended by the backend lowering passes.
//
// The front end produces a tree of declarations per file: class-like
// declarations with members, constructors, and annotations, plus function
// bodies built from a small sealed statement/expression hierarchy. Backend
// passes synthesize new members into this tree (backing fields, accessor
// functions) and rewrite expressions in place.
//
// Identity of a declaration across passes is its [Reference]; node pointers
// are only stable within a single compilation run.
package hir
