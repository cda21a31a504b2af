// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package shortname

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// structural is the set of characters that delimit identifiers inside
// a qualified name: generic argument brackets, tuple and array
// punctuation, separators, and the Go type-syntax characters for
// maps, structs, pointers, and references. Everything between two
// structural characters is a single path that collapses independently,
// which is what makes nested generics work without tracking depth.
const structural = " <>()[]{},;*&"

// Name is a lazily shortened view of a fully qualified type name.
//
// The zero value is an empty name; use IsZero to check. Name is an
// immutable value type: it holds the input string and computes the
// short form on demand. Construction never allocates. String returns
// a substring of the input (no copy) when the input contains no
// structural characters; AppendTo, Format, and WriteTo stream the
// short form segment by segment without building it.
type Name struct {
	full string
}

// New wraps a fully qualified name string in a lazy Name view. The
// input is not validated: shortening is total over anything a
// reflection facility emits, and degrades gracefully on anything else.
func New(full string) Name {
	return Name{full: full}
}

// Shorten is the one-shot form of New(full).String() for callers that
// just want the shortened string.
func Shorten(full string) string {
	return Name{full: full}.String()
}

// Original returns the input string, unmodified.
func (n Name) Original() string { return n.full }

// IsZero reports whether the Name is the zero value (empty input).
func (n Name) IsZero() bool { return n.full == "" }

// String returns the materialized short form.
//
// When the input contains no structural characters the result is a
// substring of the input and no allocation occurs. Otherwise a single
// buffer of len(Original()) is allocated and filled in one pass.
func (n Name) String() string {
	if strings.IndexAny(n.full, structural) < 0 {
		return collapse(n.full)
	}
	var builder strings.Builder
	builder.Grow(len(n.full))
	s := scanner{full: n.full}
	for {
		start, end, ok := s.next()
		if !ok {
			return builder.String()
		}
		builder.WriteString(n.full[start:end])
	}
}

// AppendTo appends the short form to dst and returns the extended
// slice. No allocation occurs when dst has sufficient capacity.
func (n Name) AppendTo(dst []byte) []byte {
	s := scanner{full: n.full}
	for {
		start, end, ok := s.next()
		if !ok {
			return dst
		}
		dst = append(dst, n.full[start:end]...)
	}
}

// Spans calls visit with the byte range [start, end) of each segment
// of the original string that survives shortening, in input order.
// Concatenating the ranges yields the short form. Callers that want
// to display the dropped prefixes differently instead of removing
// them (dimmed, struck through) can walk the gaps between spans.
func (n Name) Spans(visit func(start, end int)) {
	s := scanner{full: n.full}
	for {
		start, end, ok := s.next()
		if !ok {
			return
		}
		visit(start, end)
	}
}

// WriteTo writes the short form to w segment by segment, implementing
// io.WriterTo. No intermediate string is built.
func (n Name) WriteTo(w io.Writer) (int64, error) {
	var written int64
	s := scanner{full: n.full}
	for {
		start, end, ok := s.next()
		if !ok {
			return written, nil
		}
		count, err := io.WriteString(w, n.full[start:end])
		written += int64(count)
		if err != nil {
			return written, err
		}
	}
}

// Format implements fmt.Formatter. The 's' and 'v' verbs write the
// short form without materializing it; 'q' writes the short form as a
// quoted Go string literal. Use Original for the unshortened input.
func (n Name) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		s := scanner{full: n.full}
		for {
			start, end, ok := s.next()
			if !ok {
				return
			}
			io.WriteString(state, n.full[start:end])
		}
	case 'q':
		io.WriteString(state, strconv.Quote(n.String()))
	default:
		fmt.Fprintf(state, "%%!%c(shortname.Name=%s)", verb, n.full)
	}
}

// MarshalText implements encoding.TextMarshaler. The canonical
// external representation is the short form, so a Name can sit in a
// JSON or YAML struct field. There is no UnmarshalText: shortening
// discards the path prefixes, so the original cannot be recovered.
func (n Name) MarshalText() ([]byte, error) {
	return n.AppendTo(nil), nil
}

// scanner makes a single forward pass over a qualified name, yielding
// the byte range of every segment that survives shortening. The input
// is cut at each structural character; the run before it (the chunk)
// collapses to its final path segment via collapse. A path separator
// immediately after a closing bracket starts a member path (method or
// enum variant on a generic, tuple, or array type) and is kept so the
// member segments stay attached to their parent:
//
//	Assets<DynamicScene>::asset_event_system
//	(String, String)::default
//	Gen[int].Method
//
// scanner is a value type driven entirely by its caller's loop, so
// materialization needs no heap state.
type scanner struct {
	full      string
	offset    int
	separator int // pending "::" or "." span after a closing bracket
}

// next returns the byte range of the next surviving segment, or
// ok=false when the input is exhausted.
func (s *scanner) next() (start, end int, ok bool) {
	if s.separator > 0 {
		start, end = s.offset, s.offset+s.separator
		s.offset, s.separator = end, 0
		return start, end, true
	}
	if s.offset >= len(s.full) {
		return 0, 0, false
	}

	remaining := s.full[s.offset:]
	cut := strings.IndexAny(remaining, structural)
	if cut < 0 {
		segment := collapse(remaining)
		s.offset = len(s.full)
		return len(s.full) - len(segment), len(s.full), true
	}

	segment := collapse(remaining[:cut+1])
	end = s.offset + cut + 1
	s.offset = end
	switch s.full[end-1] {
	case '>', ')', ']', '}':
		if strings.HasPrefix(s.full[end:], "::") {
			s.separator = 2
		} else if end < len(s.full) && s.full[end] == '.' {
			s.separator = 1
		}
	}
	return end - len(segment), end, true
}

// collapse returns the suffix of chunk that the short form keeps:
// the final path segment, or the final two segments when the
// second-to-last one names a type (starts with an ASCII uppercase
// letter), which preserves enum variants and type members such as
// Option::None and RenderSet::Prepare. The result is always a suffix
// of chunk, so callers can derive byte offsets from its length.
func collapse(chunk string) string {
	last := lastSegmentStart(chunk)
	if last == 0 {
		return chunk
	}

	separator := 1
	if chunk[last-1] == ':' {
		separator = 2
	}
	previous := lastSegmentStart(chunk[:last-separator])
	if previous < last-separator && isUpperASCII(chunk[previous]) {
		return chunk[previous:]
	}
	return chunk[last:]
}

// lastSegmentStart returns the byte index just past the last path
// separator in s, or 0 if s contains none. Separators are "::"
// (Rust-style paths), "." (Go package qualifiers), and "/" (import
// path segments). Multi-byte UTF-8 sequences never contain these
// bytes, so the backward byte scan is safe on non-ASCII identifiers.
func lastSegmentStart(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '.', '/':
			return i + 1
		case ':':
			if i > 0 && s[i-1] == ':' {
				return i + 1
			}
		}
	}
	return 0
}

func isUpperASCII(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
