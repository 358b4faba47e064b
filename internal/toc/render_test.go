// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toc

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/git-toc/pkg/types"
)

func sampleEntries() []types.TOCEntry {
	return []types.TOCEntry{
		{Name: "A", Slug: "#a", Depth: 0, Line: 1},
		{Name: "B", Slug: "#b", Depth: 1, Line: 3},
		{Name: "C", Slug: "#c", Depth: 2, Line: 5},
		{Name: "D", Slug: "#d", Depth: 1, Line: 7},
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		entries  []types.TOCEntry
		maxDepth int
		want     string
	}{
		{
			name:     "deeper entries dropped without affecting siblings",
			entries:  sampleEntries(),
			maxDepth: 1,
			want:     "* [A](#a)\n    * [B](#b)\n    * [D](#d)",
		},
		{
			name:     "all levels",
			entries:  sampleEntries(),
			maxDepth: 3,
			want:     "* [A](#a)\n    * [B](#b)\n        * [C](#c)\n    * [D](#d)",
		},
		{
			name:     "top level only",
			entries:  sampleEntries(),
			maxDepth: 0,
			want:     "* [A](#a)",
		},
		{
			name: "first line keeps its indentation",
			entries: []types.TOCEntry{
				{Name: "Sub", Slug: "#sub", Depth: 1},
				{Name: "Top", Slug: "#top", Depth: 0},
			},
			maxDepth: 3,
			want:     "    * [Sub](#sub)\n* [Top](#top)",
		},
		{
			name:     "negative depth renders nothing",
			entries:  sampleEntries(),
			maxDepth: -1,
			want:     "",
		},
		{
			name:     "no entries",
			entries:  []types.TOCEntry{},
			maxDepth: 3,
			want:     "",
		},
		{
			name:     "nil entries",
			maxDepth: 3,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.entries, tt.maxDepth))
		})
	}
}

func TestRenderEmitsOneLinePerIncludedEntry(t *testing.T) {
	entries := sampleEntries()
	for maxDepth := 0; maxDepth <= 3; maxDepth++ {
		got := Render(entries, maxDepth)
		assert.Equal(t, got, Render(entries, maxDepth), "render must be repeatable")

		lines := strings.Split(got, "\n")
		want := Filter(entries, maxDepth)
		require.Len(t, lines, len(want))
		for i, e := range want {
			assert.Equal(t, strings.Repeat(" ", 4*e.Depth)+"* "+e.DisplayLink(), lines[i])
		}
	}
}

func TestFilter(t *testing.T) {
	got := Filter(sampleEntries(), 1)
	names := make([]string, len(got))
	for i, e := range got {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"A", "B", "D"}, names)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, "docs/README.md", "* [A](#a)"))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 9)

	rule := strings.Repeat("=", 116)
	assert.Equal(t, rule, lines[0])
	assert.Equal(t, strings.Repeat("=", 42)+" Github Table of Content Helper "+strings.Repeat("=", 42), lines[1])
	assert.Len(t, lines[1], 116)
	assert.Equal(t, rule, lines[2])
	assert.Equal(t, "Copy following output into your markdown file 'docs/README.md', where the table of content should be displayed:", lines[3])
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "* [A](#a)", lines[5])
	assert.Equal(t, "", lines[6])
	assert.Equal(t, rule, lines[7])
	assert.Equal(t, "", lines[8])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleEntries(), 1))

	var got []ExportEntry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, ExportEntry{Name: "B", Slug: "#b", Link: "[B](#b)", Depth: 1, Line: 3}, got[1])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleEntries(), 0))

	var got []ExportEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []ExportEntry{{Name: "A", Slug: "#a", Link: "[A](#a)", Depth: 0, Line: 1}}, got)
	assert.True(t, strings.HasSuffix(buf.String(), "]\n"))
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil, 3))
	assert.Equal(t, "[]\n", buf.String())
}
