package cliutil

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

// Log output formats accepted by NewLogHandler.
const (
	LogFormatText   = "text"
	LogFormatJSON   = "json"
	LogFormatLogfmt = "logfmt"
)

// NewLogHandler returns a slog.Handler that renders records with
// charmbracelet/log. Level is one of debug, info, warn or error; format is
// one of the LogFormat constants (empty means text).
func NewLogHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("cliutil: invalid log level %q: %w", level, err)
	}

	opts := log.Options{Level: lvl, Prefix: "oas2jsonschema"}
	switch strings.ToLower(format) {
	case "", LogFormatText:
		opts.Formatter = log.TextFormatter
	case LogFormatJSON:
		opts.Formatter = log.JSONFormatter
	case LogFormatLogfmt:
		opts.Formatter = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("cliutil: invalid log format %q (expected %s, %s or %s)", format, LogFormatText, LogFormatJSON, LogFormatLogfmt)
	}
	return log.NewWithOptions(w, opts), nil
}

// LogLevel maps the -q and -v command flags to a level name. Verbose wins.
func LogLevel(quiet, verbose bool) string {
	switch {
	case verbose:
		return "debug"
	case quiet:
		return "error"
	default:
		return "info"
	}
}
