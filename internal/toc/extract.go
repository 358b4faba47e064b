// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/pdiddy/git-toc/pkg/types"
)

// maxLineSize bounds a single line; bufio.Scanner's default of 64 KiB is too
// small for generated markdown with long inline tables.
const maxLineSize = 1 << 20

// Extract reads the markdown file at path and returns its TOC entries in file
// order. A path that cannot be stat'ed (missing, or under a non-directory) or
// is not a regular file yields an error wrapping ErrInvalidPath; open and read
// failures wrap ErrRead. A file without headers yields an empty slice and a nil
// error.
func Extract(path string, log *zap.Logger) (entries []types.TOCEntry, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("'%s' is %w: %w", path, ErrInvalidPath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("'%s' is %w", path, ErrInvalidPath)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("closing %s: %w", path, cerr))
			entries = nil
		}
	}()

	log.Debug("Scanning markdown file", zap.String("path", path), zap.Int64("size", info.Size()))

	entries, err = ExtractReader(f, log)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	return entries, nil
}

// ExtractReader scans r line by line and returns one entry per header line
// (a line whose first character is '#'). Headers without a title are skipped
// with a warning.
func ExtractReader(r io.Reader, log *zap.Logger) ([]types.TOCEntry, error) {
	entries := []types.TOCEntry{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if !strings.HasPrefix(line, "#") {
			continue
		}

		h, err := ParseHeader(line)
		if err != nil {
			log.Warn("Skipping header", zap.Int("line", lineNum), zap.Error(err))
			continue
		}

		entries = append(entries, types.TOCEntry{
			Name:  h.Title,
			Slug:  h.Slug(),
			Depth: h.Depth(),
			Line:  lineNum,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	log.Debug("Extracted headers", zap.Int("lines", lineNum), zap.Int("entries", len(entries)))
	return entries, nil
}
