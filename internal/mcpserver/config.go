package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/oas2jsonschema/parser"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Conversion defaults, overridable per tool call.
	DateToDateTime       bool
	RemoveReadOnly       bool
	RemoveWriteOnly      bool
	PatternProperties    bool
	EnumToInteger        bool
	NullableEverywhere   bool
	StringAcceptsInteger bool
	KeepNotSupported     []string

	// Input limits.
	MaxInlineSize int64
	MaxFileSize   int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OAS2JSONSCHEMA_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:         envBool("OAS2JSONSCHEMA_CACHE_ENABLED", true),
		CacheMaxSize:         envInt("OAS2JSONSCHEMA_CACHE_MAX_SIZE", 10),
		CacheFileTTL:         envDuration("OAS2JSONSCHEMA_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:      envDuration("OAS2JSONSCHEMA_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval:   envDuration("OAS2JSONSCHEMA_CACHE_SWEEP_INTERVAL", 60*time.Second),
		DateToDateTime:       envBool("OAS2JSONSCHEMA_DATE_TO_DATETIME", false),
		RemoveReadOnly:       envBool("OAS2JSONSCHEMA_REMOVE_READONLY", false),
		RemoveWriteOnly:      envBool("OAS2JSONSCHEMA_REMOVE_WRITEONLY", false),
		PatternProperties:    envBool("OAS2JSONSCHEMA_PATTERN_PROPERTIES", true),
		EnumToInteger:        envBool("OAS2JSONSCHEMA_ENUM_TO_INTEGER", false),
		NullableEverywhere:   envBool("OAS2JSONSCHEMA_NULLABLE", false),
		StringAcceptsInteger: envBool("OAS2JSONSCHEMA_STRING_ACCEPTS_INTEGER", false),
		KeepNotSupported:     envList("OAS2JSONSCHEMA_KEEP"),
		MaxInlineSize:        int64(envInt("OAS2JSONSCHEMA_MAX_INLINE_SIZE", 10*1024*1024)),
		MaxFileSize:          int64(envInt("OAS2JSONSCHEMA_MAX_FILE_SIZE", int(parser.DefaultMaxFileSize))),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}

// envList splits a comma-separated env var, dropping blank entries.
func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
