// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toc builds a markdown table of contents from the header lines of a
// document: it derives a display name and an anchor slug per header, extracts
// entries from a file, and renders them as an indented bullet list.
// Implements: docs/ARCHITECTURE § Extraction, § Rendering.
package toc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPath reports a path that does not name an existing regular file.
	ErrInvalidPath = errors.New("not a valid file")

	// ErrMalformedHeader reports a header line with no title after its '#' run.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrRead reports any other failure while opening or reading the file.
	ErrRead = errors.New("could not read file")
)

// Header is a trimmed markdown line that starts with one or more '#'.
type Header struct {
	// Raw is the line with surrounding whitespace removed.
	Raw string
	// Level is the number of leading '#' characters (at least 1).
	Level int
	// Title is the text after the '#' run, trimmed.
	Title string
}

// ParseHeader builds a Header from line. It returns an error wrapping
// ErrMalformedHeader when line does not start with '#' or has an empty title.
func ParseHeader(line string) (Header, error) {
	raw := strings.TrimSpace(line)
	level := hashRun(raw)
	if level == 0 {
		return Header{}, fmt.Errorf("%w: %q does not start with '#'", ErrMalformedHeader, line)
	}
	h := Header{Raw: raw, Level: level, Title: Name(raw)}
	if h.Title == "" {
		return Header{}, fmt.Errorf("%w: %q has no title", ErrMalformedHeader, raw)
	}
	return h, nil
}

// Depth returns the zero-based nesting level of the header.
func (h Header) Depth() int {
	return h.Level - 1
}

// Slug returns the anchor fragment for the header.
func (h Header) Slug() string {
	return Slug(h.Raw)
}

// Slug converts a header line into the fragment used in a "(#...)" link
// target. The leading '#' run collapses to one '#', a single space right after
// it is dropped, remaining spaces become '-', the result is lowercased, and
// every '.' is removed. The leading '#' is kept.
//
// Other punctuation is left alone and runs of spaces are not collapsed, so the
// result can differ from GitHub's own anchor ids.
func Slug(line string) string {
	s := line
	if n := hashRun(s); n > 1 {
		s = s[n-1:]
	}
	if len(s) >= 2 && s[0] == '#' && s[1] == ' ' {
		s = "#" + s[2:]
	}
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, ".", "")
}

// Name returns the display label for a header line: the whole leading '#'
// run is stripped and surrounding whitespace trimmed.
func Name(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}

// hashRun counts the leading '#' characters of s.
func hashRun(s string) int {
	n := 0
	for n < len(s) && s[n] == '#' {
		n++
	}
	return n
}
