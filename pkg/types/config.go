// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// OutputFormat selects how the table of contents is printed.
type OutputFormat string

const (
	// FormatText prints the full report: banners, instruction line, and TOC.
	FormatText OutputFormat = "text"
	// FormatMarkdown prints only the rendered TOC.
	FormatMarkdown OutputFormat = "markdown"
	// FormatYAML prints the filtered entries as YAML.
	FormatYAML OutputFormat = "yaml"
	// FormatJSON prints the filtered entries as JSON.
	FormatJSON OutputFormat = "json"
)

// DefaultMaxDepth is the deepest level shown when no depth is configured.
const DefaultMaxDepth = 3

// LogLevel names the console logging verbosity: none, normal, or debug.
type LogLevel string

const (
	LogNone   LogLevel = "none"
	LogNormal LogLevel = "normal"
	LogDebug  LogLevel = "debug"
)

// TOCConfig holds the resolved settings for one table-of-contents run. The
// tags match the keys of git-toc.yaml and the GIT_TOC_* environment variables.
type TOCConfig struct {
	// MDFile is the path of the markdown file to scan.
	MDFile string `json:"md_file" yaml:"md_file"`

	// MaxDepth is the deepest zero-based level included in the output (default 3).
	MaxDepth int `json:"max_depth" yaml:"max_depth"`

	// Format selects the output: text, markdown, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format"`

	// LogLevel is the stderr verbosity: none, normal, or debug (default normal).
	LogLevel LogLevel `json:"log_level" yaml:"log_level"`
}

// Validate reports the first setting that cannot be used for a run.
func (c TOCConfig) Validate() error {
	if c.MDFile == "" {
		return fmt.Errorf("md_file is required")
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be non-negative, got %d", c.MaxDepth)
	}
	switch c.Format {
	case FormatText, FormatMarkdown, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("unsupported format %q: use text, markdown, yaml, or json", c.Format)
	}
	switch c.LogLevel {
	case LogNone, LogNormal, LogDebug:
	default:
		return fmt.Errorf("unsupported log level %q: use none, normal, or debug", c.LogLevel)
	}
	return nil
}
