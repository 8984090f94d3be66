// Package query answers read-only questions against a catalog.Repository:
// exact function lookup, case-insensitive substring search, filtered
// listings, and an aggregate library overview.
//
// Two failure channels exist. A malformed input (empty name where one is
// required) produces a *ValidationError naming the offending parameter. A
// well-formed lookup that matches nothing produces ErrFunctionNotFound;
// callers serving remote clients are expected to translate that sentinel
// into a normal response payload rather than a protocol failure, because a
// miss is an ordinary outcome of browsing an API catalog. Empty or
// whitespace-only search queries are not errors at all: they return zero
// results.
//
// Every operation is a pure read. The Engine holds no state of its own
// beyond the repository reference, so it is safe for concurrent use.
package query
