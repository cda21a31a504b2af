// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestProcessArguments(t *testing.T) {
	var buffer bytes.Buffer
	err := process(&buffer, strings.NewReader("ignored::when::args::present"), []string{
		"alloc::vec::Vec<core::option::Option<u32>>",
		"u32",
	}, options{profile: termenv.Ascii})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	want := "Vec<Option<u32>>\nu32\n"
	if buffer.String() != want {
		t.Errorf("output = %q, want %q", buffer.String(), want)
	}
}

func TestProcessFilterMode(t *testing.T) {
	input := strings.NewReader("a::b::Outer<c::d::Inner>\nmap[string]*ref.Entity\n")
	var buffer bytes.Buffer
	err := process(&buffer, input, nil, options{profile: termenv.Ascii})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	want := "Outer<Inner>\nmap[string]*Entity\n"
	if buffer.String() != want {
		t.Errorf("output = %q, want %q", buffer.String(), want)
	}
}

func TestProcessShowOriginal(t *testing.T) {
	var buffer bytes.Buffer
	err := process(&buffer, nil, []string{"bevy_prelude::make_fun_game"}, options{
		showOriginal: true,
		profile:      termenv.Ascii,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	want := "make_fun_game\tbevy_prelude::make_fun_game\n"
	if buffer.String() != want {
		t.Errorf("output = %q, want %q", buffer.String(), want)
	}
}

func TestProcessJSON(t *testing.T) {
	var buffer bytes.Buffer
	err := process(&buffer, nil, []string{"ref.Entity"}, options{
		jsonOutput: true,
		profile:    termenv.Ascii,
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	want := `{"full":"ref.Entity","short":"Entity"}` + "\n"
	if buffer.String() != want {
		t.Errorf("output = %q, want %q", buffer.String(), want)
	}
}

func TestColorize(t *testing.T) {
	const full = "alloc::vec::Vec<core::option::Option<u32>>"
	colored := colorize(full, termenv.ANSI)

	if !strings.Contains(colored, "\x1b[2m") {
		t.Errorf("colorize output has no faint escape sequence: %q", colored)
	}
	// The dropped prefixes are dimmed, not removed: every byte of the
	// original must still be present in order.
	stripped := strings.NewReplacer("\x1b[2m", "", "\x1b[0m", "").Replace(colored)
	if stripped != full {
		t.Errorf("colorize dropped bytes: got %q, want %q", stripped, full)
	}
}

func TestSelectProfile(t *testing.T) {
	if _, err := selectProfile("sometimes"); err == nil {
		t.Error("selectProfile should reject unknown modes")
	}
	profile, err := selectProfile("never")
	if err != nil {
		t.Fatalf("selectProfile(never): %v", err)
	}
	if profile != termenv.Ascii {
		t.Errorf("selectProfile(never) = %v, want Ascii", profile)
	}
	if profile, _ := selectProfile("always"); profile != termenv.ANSI {
		t.Errorf("selectProfile(always) = %v, want ANSI", profile)
	}
}
