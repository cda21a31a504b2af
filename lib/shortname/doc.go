// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package shortname lazily shortens fully qualified type names to
// their display form by removing path prefixes from every identifier.
//
// A fully qualified name is what a runtime reflection facility
// produces: "alloc::vec::Vec<core::option::Option<u32>>" from a
// Rust-style runtime, "map[string]*ref.Entity" from Go's reflect, or
// a full import path like "github.com/bureau-foundation/bureau/lib/ref.Entity".
// The short form strips the path prefix from each identifier while
// preserving generic nesting, punctuation, and non-path tokens:
//
//	Vec<Option<u32>>
//	map[string]*Entity
//	Entity
//
// [Name] is an immutable lazy view over the input string. Constructing
// it performs no work and no allocation; shortening happens when the
// view is materialized. [Name.String] returns a shared substring of the
// input when the name has no structural characters, [Name.AppendTo]
// reuses a caller-provided buffer, and [Name.Format] and [Name.WriteTo]
// stream segments without building an intermediate string.
//
// The API surface:
//
//   - [New] -- wrap an already-produced qualified name string
//   - [For], [Of], [OfType] -- obtain the name of a Go type via reflect
//   - [Shorten] -- one-shot convenience for callers that want a string
//   - [Name.Original] -- the unmodified input
//   - [Name.Spans] -- byte ranges of the input that survive shortening,
//     for callers that render the dropped prefixes differently instead
//     of removing them (cmd/shortname's --color mode)
//
// The operation is total: malformed or unbalanced input is shortened
// segment by segment and never produces an error or panic.
//
// This package has no dependencies on other packages in this module.
package shortname
