// Package catalog holds the static metadata catalog of the openreview-py
// client library: class descriptors with their methods, standalone utility
// function descriptors, and a derived view that projects the primary client
// class's public methods into function-shaped records.
//
// The dataset is a build-time literal; nothing in this package performs I/O
// or calls the real OpenReview API. A Repository wraps one Snapshot and
// exposes three read-only views:
//
//   - Classes: every catalogued class, methods included.
//   - Tools: standalone utility functions from openreview.tools, with
//     per-parameter documentation.
//   - Functions: the primary client class's methods flattened into Function
//     records (constructor and private methods excluded).
//
// Accessors return fresh copies on every call so callers can never corrupt
// the canonical dataset through mutation of returned values. A Repository is
// therefore safe for concurrent use without any locking: the snapshot is
// immutable for the life of the process.
//
// Example usage:
//
//	repo := catalog.NewDefault()
//	for _, fn := range repo.Functions() {
//	    fmt.Println(fn.Module, fn.Name, fn.Signature)
//	}
package catalog
