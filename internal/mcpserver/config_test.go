package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearEnv clears all OAS2JSONSCHEMA_* env vars to isolate tests from the ambient environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OAS2JSONSCHEMA_CACHE_ENABLED", "OAS2JSONSCHEMA_CACHE_MAX_SIZE",
		"OAS2JSONSCHEMA_CACHE_FILE_TTL", "OAS2JSONSCHEMA_CACHE_CONTENT_TTL",
		"OAS2JSONSCHEMA_CACHE_SWEEP_INTERVAL",
		"OAS2JSONSCHEMA_DATE_TO_DATETIME", "OAS2JSONSCHEMA_REMOVE_READONLY",
		"OAS2JSONSCHEMA_REMOVE_WRITEONLY", "OAS2JSONSCHEMA_PATTERN_PROPERTIES",
		"OAS2JSONSCHEMA_ENUM_TO_INTEGER", "OAS2JSONSCHEMA_NULLABLE",
		"OAS2JSONSCHEMA_STRING_ACCEPTS_INTEGER", "OAS2JSONSCHEMA_KEEP",
		"OAS2JSONSCHEMA_MAX_INLINE_SIZE", "OAS2JSONSCHEMA_MAX_FILE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.False(t, c.DateToDateTime)
	assert.False(t, c.RemoveReadOnly)
	assert.False(t, c.RemoveWriteOnly)
	assert.True(t, c.PatternProperties)
	assert.False(t, c.EnumToInteger)
	assert.False(t, c.NullableEverywhere)
	assert.False(t, c.StringAcceptsInteger)
	assert.Empty(t, c.KeepNotSupported)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, int64(10*1024*1024), c.MaxFileSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OAS2JSONSCHEMA_CACHE_ENABLED", "false")
	t.Setenv("OAS2JSONSCHEMA_CACHE_MAX_SIZE", "50")
	t.Setenv("OAS2JSONSCHEMA_CACHE_FILE_TTL", "30m")
	t.Setenv("OAS2JSONSCHEMA_CACHE_CONTENT_TTL", "10m")
	t.Setenv("OAS2JSONSCHEMA_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("OAS2JSONSCHEMA_DATE_TO_DATETIME", "true")
	t.Setenv("OAS2JSONSCHEMA_REMOVE_READONLY", "1")
	t.Setenv("OAS2JSONSCHEMA_REMOVE_WRITEONLY", "true")
	t.Setenv("OAS2JSONSCHEMA_PATTERN_PROPERTIES", "false")
	t.Setenv("OAS2JSONSCHEMA_ENUM_TO_INTEGER", "true")
	t.Setenv("OAS2JSONSCHEMA_NULLABLE", "true")
	t.Setenv("OAS2JSONSCHEMA_STRING_ACCEPTS_INTEGER", "true")
	t.Setenv("OAS2JSONSCHEMA_KEEP", "example, xml,,")
	t.Setenv("OAS2JSONSCHEMA_MAX_INLINE_SIZE", "5242880")
	t.Setenv("OAS2JSONSCHEMA_MAX_FILE_SIZE", "1024")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.True(t, c.DateToDateTime)
	assert.True(t, c.RemoveReadOnly)
	assert.True(t, c.RemoveWriteOnly)
	assert.False(t, c.PatternProperties)
	assert.True(t, c.EnumToInteger)
	assert.True(t, c.NullableEverywhere)
	assert.True(t, c.StringAcceptsInteger)
	assert.Equal(t, []string{"example", "xml"}, c.KeepNotSupported)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.Equal(t, int64(1024), c.MaxFileSize)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OAS2JSONSCHEMA_CACHE_MAX_SIZE", "banana")
	t.Setenv("OAS2JSONSCHEMA_CACHE_FILE_TTL", "not-a-duration")
	t.Setenv("OAS2JSONSCHEMA_CACHE_ENABLED", "maybe")
	t.Setenv("OAS2JSONSCHEMA_NULLABLE", "sometimes")
	t.Setenv("OAS2JSONSCHEMA_MAX_INLINE_SIZE", "abc")
	t.Setenv("OAS2JSONSCHEMA_MAX_FILE_SIZE", "-1")

	c := loadConfig()

	// Invalid values should fall back to defaults.
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.False(t, c.NullableEverywhere)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, int64(10*1024*1024), c.MaxFileSize)
}
