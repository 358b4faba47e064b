// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toc

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/git-toc/pkg/types"
)

// ExportEntry is a TOC entry with its rendered link, as written by WriteYAML
// and WriteJSON.
type ExportEntry struct {
	Name  string `json:"name" yaml:"name"`
	Slug  string `json:"slug" yaml:"slug"`
	Link  string `json:"link" yaml:"link"`
	Depth int    `json:"depth" yaml:"depth"`
	Line  int    `json:"line" yaml:"line"`
}

// WriteYAML writes the entries up to maxDepth to w as a YAML sequence.
func WriteYAML(w io.Writer, entries []types.TOCEntry, maxDepth int) error {
	data, err := yaml.Marshal(exportEntries(entries, maxDepth))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON writes the entries up to maxDepth to w as an indented JSON array.
func WriteJSON(w io.Writer, entries []types.TOCEntry, maxDepth int) error {
	data, err := json.MarshalIndent(exportEntries(entries, maxDepth), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func exportEntries(entries []types.TOCEntry, maxDepth int) []ExportEntry {
	filtered := Filter(entries, maxDepth)
	out := make([]ExportEntry, len(filtered))
	for i, e := range filtered {
		out[i] = ExportEntry{
			Name:  e.Name,
			Slug:  e.Slug,
			Link:  e.DisplayLink(),
			Depth: e.Depth,
			Line:  e.Line,
		}
	}
	return out
}
