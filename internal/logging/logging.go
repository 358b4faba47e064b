// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the console logger used for diagnostics. All log
// output goes to a single sink (stderr in the CLI) so stdout carries only the
// table of contents.
// Implements: docs/ARCHITECTURE § Logging.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/git-toc/pkg/types"
)

// New returns a logger writing to w at the given verbosity. LogNone returns a
// no-op logger; LogNormal enables info and above; LogDebug enables everything.
func New(level types.LogLevel, w zapcore.WriteSyncer) (*zap.Logger, error) {
	var enabler zapcore.LevelEnabler
	switch level {
	case types.LogNone:
		return zap.NewNop(), nil
	case types.LogNormal, "":
		enabler = zapcore.InfoLevel
	case types.LogDebug:
		enabler = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("unsupported log level %q", level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(w), enabler)
	return zap.New(core), nil
}
