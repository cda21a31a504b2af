// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/shortname/lib/shortname"
	"github.com/bureau-foundation/shortname/lib/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Handle --version before anything else.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("shortname")
		return 0
	}

	var (
		showOriginal bool
		colorMode    string
		jsonOutput   bool
		help         bool
	)

	flagSet := pflag.NewFlagSet("shortname", pflag.ContinueOnError)
	flagSet.BoolVar(&showOriginal, "original", false, "print the full name after the short form, tab separated")
	flagSet.StringVar(&colorMode, "color", "auto", "render dropped prefixes faint instead of removing them: auto, always, never")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit one {\"full\":...,\"short\":...} JSON object per name")
	flagSet.BoolVarP(&help, "help", "h", false, "show help")
	flagSet.SetOutput(io.Discard)

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printUsage(flagSet)
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		printUsage(flagSet)
		return 2
	}
	if help {
		printUsage(flagSet)
		return 0
	}

	profile, err := selectProfile(colorMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	opts := options{
		showOriginal: showOriginal,
		jsonOutput:   jsonOutput,
		profile:      profile,
	}

	writer := bufio.NewWriter(os.Stdout)
	if err := process(writer, os.Stdin, flagSet.Args(), opts); err != nil {
		writer.Flush()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if err := writer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// options controls how each name is rendered.
type options struct {
	showOriginal bool
	jsonOutput   bool

	// profile is the terminal color profile used for --color output.
	// termenv.Ascii disables coloring entirely, in which case the
	// prefixes are removed rather than dimmed.
	profile termenv.Profile
}

// selectProfile maps the --color flag to a termenv profile. "auto"
// defers to termenv's environment detection, which downgrades to
// Ascii when stdout is not a terminal or NO_COLOR is set.
func selectProfile(mode string) (termenv.Profile, error) {
	switch mode {
	case "never":
		return termenv.Ascii, nil
	case "always":
		return termenv.ANSI, nil
	case "auto":
		return termenv.EnvColorProfile(), nil
	default:
		return termenv.Ascii, fmt.Errorf("invalid --color mode %q (expected auto, always, or never)", mode)
	}
}

// process shortens every name and writes one output line per input.
// Names come from args when present, otherwise from input one per
// line (the filter mode used in shell pipelines).
func process(w io.Writer, input io.Reader, args []string, opts options) error {
	if len(args) > 0 {
		for _, full := range args {
			if err := writeLine(w, full, opts); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := writeLine(w, scanner.Text(), opts); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// lineRecord is the --json output shape, one object per line.
type lineRecord struct {
	Full  string `json:"full"`
	Short string `json:"short"`
}

func writeLine(w io.Writer, full string, opts options) error {
	if opts.jsonOutput {
		data, err := json.Marshal(lineRecord{Full: full, Short: shortname.Shorten(full)})
		if err != nil {
			return fmt.Errorf("encoding %q: %w", full, err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	}

	if opts.profile != termenv.Ascii {
		_, err := fmt.Fprintln(w, colorize(full, opts.profile))
		return err
	}

	short := shortname.Shorten(full)
	var err error
	if opts.showOriginal {
		_, err = fmt.Fprintf(w, "%s\t%s\n", short, full)
	} else {
		_, err = fmt.Fprintln(w, short)
	}
	return err
}

// colorize renders the full name with the dropped prefixes faint
// instead of removed, using the span ranges the shortener keeps.
func colorize(full string, profile termenv.Profile) string {
	var builder strings.Builder
	previous := 0
	shortname.New(full).Spans(func(start, end int) {
		if start > previous {
			builder.WriteString(profile.String(full[previous:start]).Faint().String())
		}
		builder.WriteString(full[start:end])
		previous = end
	})
	if previous < len(full) {
		builder.WriteString(profile.String(full[previous:]).Faint().String())
	}
	return builder.String()
}

func printUsage(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `shortname strips module path prefixes from fully qualified type names.

Usage:
  shortname [flags] [name ...]

Names are read from the arguments, or from stdin one per line when no
names are given.

Flags:
%s`, flagSet.FlagUsages())
}
