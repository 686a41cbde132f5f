// Package alloydoc provides a documentation lookup service for alloy.rs
// types. It holds a small, curated catalog of type entries and resolves
// free-text queries to ranked entries with a deterministic fuzzy matcher.
//
// This package contains domain types, interfaces and the pure matching
// algorithms. Implementations that depend on third-party packages live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// goldmark/, mcp/).
package alloydoc
