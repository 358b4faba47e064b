// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/git-toc/internal/toc"
	"github.com/pdiddy/git-toc/pkg/types"
)

// runTOC extracts the headers of --md-file and prints them in the requested
// format. An invalid path prints a diagnostic and produces no output.
func (a *app) runTOC(cmd *cobra.Command, args []string) error {
	cfg, err := a.tocConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.log.Debug("Building table of contents",
		zap.String("md_file", cfg.MDFile),
		zap.Int("max_depth", cfg.MaxDepth),
		zap.String("format", string(cfg.Format)))

	entries, err := toc.Extract(cfg.MDFile, a.log)
	if errors.Is(err, toc.ErrInvalidPath) {
		fmt.Fprintf(cmd.ErrOrStderr(), "[!] %v..\n", err)
		return nil
	}
	if err != nil {
		return err
	}

	return writeTOC(cmd.OutOrStdout(), cfg, entries)
}

func writeTOC(w io.Writer, cfg types.TOCConfig, entries []types.TOCEntry) error {
	switch cfg.Format {
	case types.FormatText:
		return toc.WriteReport(w, cfg.MDFile, toc.Render(entries, cfg.MaxDepth))
	case types.FormatMarkdown:
		rendered := toc.Render(entries, cfg.MaxDepth)
		if rendered == "" {
			return nil
		}
		_, err := io.WriteString(w, rendered+"\n")
		return err
	case types.FormatYAML:
		return toc.WriteYAML(w, entries, cfg.MaxDepth)
	case types.FormatJSON:
		return toc.WriteJSON(w, entries, cfg.MaxDepth)
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
}
