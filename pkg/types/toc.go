// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TOCEntry is one line of a table of contents, derived from a markdown header.
type TOCEntry struct {
	// Name is the display label (header text without the leading '#' run).
	Name string `json:"name" yaml:"name"`

	// Slug is the anchor fragment including its leading '#' (e.g. "#my-section").
	Slug string `json:"slug" yaml:"slug"`

	// Depth is the zero-based nesting level: the count of leading '#' minus one.
	Depth int `json:"depth" yaml:"depth"`

	// Line is the 1-based line number of the header in the source file.
	Line int `json:"line" yaml:"line"`
}

// DisplayLink returns the markdown link for the entry, e.g. "[Intro](#intro)".
func (e TOCEntry) DisplayLink() string {
	return "[" + e.Name + "](" + e.Slug + ")"
}
