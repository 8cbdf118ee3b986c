package cliutil

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogHandler(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		wantErr  bool
		contains []string
		missing  []string
	}{
		{
			name:     "text at debug",
			level:    "debug",
			contains: []string{"converted", "schemas=3", "dropped"},
		},
		{
			name:     "info filters debug",
			level:    "info",
			contains: []string{"converted"},
			missing:  []string{"dropped"},
		},
		{
			name:     "json",
			level:    "info",
			format:   "json",
			contains: []string{`"msg":"converted"`, `"schemas":3`},
		},
		{
			name:     "logfmt",
			level:    "info",
			format:   "logfmt",
			contains: []string{"msg=converted", "schemas=3"},
		},
		{name: "bad level", level: "loud", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h, err := NewLogHandler(&buf, tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			logger := slog.New(h)
			logger.Info("converted", "schemas", 3)
			logger.Debug("dropped")

			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, "info", LogLevel(false, false))
	assert.Equal(t, "error", LogLevel(true, false))
	assert.Equal(t, "debug", LogLevel(false, true))
	assert.Equal(t, "debug", LogLevel(true, true))
}

func TestStringList(t *testing.T) {
	var s StringList
	assert.Equal(t, "", s.String())

	require.NoError(t, s.Set("example, xml"))
	require.NoError(t, s.Set(",deprecated,,"))
	assert.Equal(t, StringList{"example", "xml", "deprecated"}, s)
	assert.Equal(t, "example,xml,deprecated", s.String())

	var nilList *StringList
	assert.Equal(t, "", nilList.String())
}
