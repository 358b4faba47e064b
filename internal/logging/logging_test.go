// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/git-toc/pkg/types"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		level     types.LogLevel
		wantInfo  bool
		wantDebug bool
	}{
		{name: "none discards everything", level: types.LogNone},
		{name: "normal logs info", level: types.LogNormal, wantInfo: true},
		{name: "empty level behaves as normal", level: "", wantInfo: true},
		{name: "debug logs debug", level: types.LogDebug, wantInfo: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(tt.level, zapcore.AddSync(&buf))
			require.NoError(t, err)

			log.Info("info message")
			log.Debug("debug message")
			require.NoError(t, log.Sync())

			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info message")))
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug message")))
		})
	}
}

func TestNewUnsupportedLevel(t *testing.T) {
	_, err := New("verbose", zapcore.AddSync(&bytes.Buffer{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}

func TestNewOmitsTimeAndCaller(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(types.LogNormal, zapcore.AddSync(&buf))
	require.NoError(t, err)

	log.Warn("careful")
	require.NoError(t, log.Sync())

	assert.Equal(t, "WARN\tcareful\n", buf.String())
}
