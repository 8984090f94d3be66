// Package server exposes the catalog query engine over the Model Context
// Protocol. It registers one typed tool per query operation on an
// *mcp.Server from the official Go SDK, logs every call through zap, and
// leaves transport selection (stdio or streamable HTTP) to the caller.
//
// Lookup misses are translated into success-shaped payloads carrying an
// "error" message instead of protocol errors: an agent browsing an API
// catalog should branch on content, not on the error channel. Validation
// failures (an empty name, for example) do surface as tool errors.
package server
