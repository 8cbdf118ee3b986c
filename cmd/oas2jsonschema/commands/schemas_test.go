package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oas2jsonschema/parser"
)

func TestRunSchemas_Stdout(t *testing.T) {
	streams, out, _ := testStreams("")
	require.NoError(t, RunSchemas([]string{"-q", "--format", "json", petstoreFile}, streams))

	res, err := parser.New().ParseBytes(out.Bytes())
	require.NoError(t, err)
	require.Len(t, res.Data, 1)

	schemas := res.Data["schemas"].(map[string]any)
	assert.Len(t, schemas, 2)
	for name, raw := range schemas {
		s := raw.(map[string]any)
		assert.Equal(t, "http://json-schema.org/draft-04/schema#", s["$schema"], name)
		assert.NotContains(t, s, "components", name)
	}
}

func TestRunSchemas_OutDir(t *testing.T) {
	outDir := t.TempDir()
	streams, out, errOut := testStreams("")

	require.NoError(t, RunSchemas([]string{"--out-dir", outDir, petstoreFile}, streams))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "converted component schemas")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"Error.yaml", "Pet.yaml"}, names)

	res, err := parser.ParseWithOptions(parser.WithFilePath(filepath.Join(outDir, "Pet.yaml")))
	require.NoError(t, err)
	assert.Contains(t, res.Data["properties"], "name")
	assert.Contains(t, res.Data, "components")
}

func TestRunSchemas_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		wantMsg string
	}{
		{name: "no input", args: nil, wantMsg: "exactly one file path"},
		{name: "output and out-dir", args: []string{"-o", "x.yaml", "--out-dir", ".", petstoreFile}, wantMsg: "mutually exclusive"},
		{name: "out-dir is a file", args: []string{"--out-dir", petstoreFile, petstoreFile}, wantMsg: "is not a directory"},
		{
			name:    "malformed components",
			args:    []string{"-"},
			stdin:   `{"components": {"schemas": ["Pet"]}}`,
			wantMsg: "#/components",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streams, _, _ := testStreams(tt.stdin)
			err := RunSchemas(tt.args, streams)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestCheckComponentFileName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{name: "Pet"},
		{name: "pet.v1"},
		{name: "", wantErr: true},
		{name: ".", wantErr: true},
		{name: "..", wantErr: true},
		{name: "a/b", wantErr: true},
		{name: `a\b`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkComponentFileName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
