// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toc

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/git-toc/pkg/types"
)

const (
	indentWidth = 4
	bullet      = "* "

	bannerWidth = 116
	bannerTitle = "Github Table of Content Helper"
)

// Render returns the entries as a nested markdown bullet list. Entries deeper
// than maxDepth are skipped; the rest keep their order and are indented by
// four spaces per level. The result has no trailing newline.
func Render(entries []types.TOCEntry, maxDepth int) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Depth > maxDepth {
			continue
		}
		lines = append(lines, strings.Repeat(" ", e.Depth*indentWidth)+bullet+e.DisplayLink())
	}
	return strings.Join(lines, "\n")
}

// Filter returns the entries whose depth is at most maxDepth, in order.
func Filter(entries []types.TOCEntry, maxDepth int) []types.TOCEntry {
	out := make([]types.TOCEntry, 0, len(entries))
	for _, e := range entries {
		if e.Depth <= maxDepth {
			out = append(out, e)
		}
	}
	return out
}

// WriteReport writes the rendered TOC framed by banners, with a line telling
// the user where to paste it.
func WriteReport(w io.Writer, mdFile, rendered string) error {
	rule := strings.Repeat("=", bannerWidth)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(titleRule(bannerTitle) + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Copy following output into your markdown file '%s', where the table of content should be displayed:\n", mdFile)
	b.WriteString("\n")
	b.WriteString(rendered + "\n")
	b.WriteString("\n")
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// titleRule centres title in a bannerWidth line of '=' with one space on each side.
func titleRule(title string) string {
	pad := bannerWidth - len(title) - 2
	if pad < 0 {
		return title
	}
	left := pad / 2
	return strings.Repeat("=", left) + " " + title + " " + strings.Repeat("=", pad-left)
}
