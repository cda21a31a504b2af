// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Shortname strips module path prefixes from fully qualified type
// names. It is a pipeline building block: names arrive as arguments
// or on stdin (one per line), and the shortened forms go to stdout,
// so log post-processors and shell steps can disqualify reflection
// output without parsing type syntax themselves.
//
//	$ shortname 'alloc::vec::Vec<core::option::Option<u32>>'
//	Vec<Option<u32>>
//
//	$ grep panic daemon.log | shortname --original
//
// With --color the dropped prefixes are rendered faint instead of
// removed, which keeps the full name greppable while making the
// interesting part readable. --json emits one object per name for
// structured consumers.
//
// Exit codes:
//
//	0  success
//	1  read or write failure
//	2  bad arguments
package main
