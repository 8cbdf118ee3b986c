package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oas2jsonschema/parser"
)

const petstoreFile = "../../testdata/petstore.yaml"

const usersJSON = `{
  "openapi": "3.0.3",
  "info": {"title": "Users", "version": "1"},
  "paths": {},
  "components": {
    "schemas": {
      "User": {
        "type": "object",
        "required": ["id", "password"],
        "properties": {
          "id": {"type": "integer", "readOnly": true},
          "password": {"type": "string", "writeOnly": true},
          "team": {"$ref": "#/components/schemas/Team"}
        }
      },
      "Team": {"type": "object", "properties": {"name": {"type": "string", "example": "core"}}}
    }
  }
}`

// withConfig swaps the package configuration for the duration of a test.
func withConfig(t *testing.T, mutate func(c *serverConfig)) {
	t.Helper()
	prev := cfg
	next := *prev
	mutate(&next)
	cfg = &next
	t.Cleanup(func() { cfg = prev })
}

func parseOutput(t *testing.T, data string) map[string]any {
	t.Helper()
	res, err := parser.New().ParseBytes([]byte(data))
	require.NoError(t, err)
	return res.Data
}

func TestConversionOptions_Defaults(t *testing.T) {
	withConfig(t, func(c *serverConfig) {
		c.RemoveWriteOnly = true
		c.KeepNotSupported = []string{"example"}
	})

	_, output, err := handleConvertDocument(context.Background(), &mcp.CallToolRequest{}, convertDocumentInput{
		Spec: specInput{Content: usersJSON},
	})
	require.NoError(t, err)

	doc := parseOutput(t, output.Document)
	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	user := schemas["User"].(map[string]any)
	assert.NotContains(t, user["properties"], "password")
	assert.Equal(t, []any{"id"}, user["required"])

	team := schemas["Team"].(map[string]any)
	name := team["properties"].(map[string]any)["name"].(map[string]any)
	assert.Equal(t, "core", name["example"])
}

func TestConversionOptions_CallOverridesDefaults(t *testing.T) {
	withConfig(t, func(c *serverConfig) {
		c.RemoveWriteOnly = true
		c.KeepNotSupported = []string{"example"}
	})
	keepNothing := false

	_, output, err := handleConvertDocument(context.Background(), &mcp.CallToolRequest{}, convertDocumentInput{
		Spec: specInput{Content: usersJSON},
		Options: conversionOptions{
			RemoveWriteOnly: &keepNothing,
			Keep:            []string{},
		},
	})
	require.NoError(t, err)

	doc := parseOutput(t, output.Document)
	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	user := schemas["User"].(map[string]any)
	assert.Contains(t, user["properties"], "password")

	team := schemas["Team"].(map[string]any)
	name := team["properties"].(map[string]any)["name"].(map[string]any)
	assert.NotContains(t, name, "example")
}

func TestConvertDocumentTool_Inline(t *testing.T) {
	specCache.reset()
	_, output, err := handleConvertDocument(context.Background(), &mcp.CallToolRequest{}, convertDocumentInput{
		Spec: specInput{Content: usersJSON},
	})
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", output.Version)
	assert.Equal(t, 2, output.SchemaCount)
	assert.Empty(t, output.WrittenTo)
	assert.Contains(t, output.Document, `"$schema": "http://json-schema.org/draft-04/schema#"`)
	assert.Equal(t, 1, specCache.size())
}

func TestConvertDocumentTool_FileInputYAMLOutput(t *testing.T) {
	_, output, err := handleConvertDocument(context.Background(), &mcp.CallToolRequest{}, convertDocumentInput{
		Spec: specInput{File: petstoreFile},
	})
	require.NoError(t, err)

	doc := parseOutput(t, output.Document)
	assert.Equal(t, "http://json-schema.org/draft-04/schema#", doc["$schema"])
	assert.Equal(t, 2, output.SchemaCount)

	// The parameter schema under paths was converted too.
	param := doc["paths"].(map[string]any)["/pets"].(map[string]any)["get"].(map[string]any)["parameters"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{"integer", "null"}, param["schema"].(map[string]any)["type"])
}

func TestConvertDocumentTool_OutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "converted.json")

	_, output, err := handleConvertDocument(context.Background(), &mcp.CallToolRequest{}, convertDocumentInput{
		Spec:   specInput{File: petstoreFile},
		Format: "json",
		Output: outPath,
	})
	require.NoError(t, err)

	assert.Equal(t, outPath, output.WrittenTo)
	assert.Empty(t, output.Document, "document should not be inline when written to file")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Pet"`)
}

func TestConvertDocumentTool_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   convertDocumentInput
		wantMsg string
	}{
		{
			name:    "no input",
			input:   convertDocumentInput{},
			wantMsg: "exactly one of file or content must be provided",
		},
		{
			name:    "both inputs",
			input:   convertDocumentInput{Spec: specInput{File: petstoreFile, Content: usersJSON}},
			wantMsg: "exactly one of file or content must be provided",
		},
		{
			name:    "bad format",
			input:   convertDocumentInput{Spec: specInput{Content: usersJSON}, Format: "xml"},
			wantMsg: "unsupported output format",
		},
		{
			name: "bad keep keyword",
			input: convertDocumentInput{
				Spec:    specInput{Content: usersJSON},
				Options: conversionOptions{Keep: []string{"title"}},
			},
			wantMsg: "title",
		},
		{
			name: "output is a directory",
			input: convertDocumentInput{
				Spec:   specInput{Content: usersJSON},
				Output: os.TempDir(),
			},
			wantMsg: "directory",
		},
		{
			name:    "malformed schemas",
			input:   convertDocumentInput{Spec: specInput{Content: `{"components": {"schemas": []}}`}},
			wantMsg: "#/components",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, err := handleConvertDocument(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
			text := res.Content[0].(*mcp.TextContent).Text
			assert.Contains(t, text, tt.wantMsg)
		})
	}
}

func TestConvertSchemaTool(t *testing.T) {
	_, output, err := handleConvertSchema(context.Background(), &mcp.CallToolRequest{}, convertSchemaInput{
		Schema: specInput{Content: "type: object\nx-patternProperties:\n  '^x-': {type: string}\n"},
	})
	require.NoError(t, err)

	schema := parseOutput(t, output.Schema)
	assert.Equal(t, map[string]any{"^x-": map[string]any{"type": "string"}}, schema["patternProperties"])
	assert.NotContains(t, schema, "x-patternProperties")
}

func TestConvertSchemaTool_PatternPropertiesDisabled(t *testing.T) {
	off := false
	_, output, err := handleConvertSchema(context.Background(), &mcp.CallToolRequest{}, convertSchemaInput{
		Schema:  specInput{Content: `{"type": "object", "x-patternProperties": {"^x-": {"type": "string"}}}`},
		Options: conversionOptions{PatternProperties: &off},
		Format:  "yaml",
	})
	require.NoError(t, err)

	schema := parseOutput(t, output.Schema)
	assert.Contains(t, schema, "x-patternProperties")
	assert.NotContains(t, schema, "patternProperties")
}

func TestConvertSchemaSetTool(t *testing.T) {
	_, output, err := handleConvertSchemaSet(context.Background(), &mcp.CallToolRequest{}, convertSchemaSetInput{
		Spec: specInput{Content: usersJSON},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, output.Total)
	assert.Equal(t, 2, output.Returned)
	require.Len(t, output.Schemas, 2)
	assert.Equal(t, "Team", output.Schemas[0].Name)
	assert.Equal(t, "User", output.Schemas[1].Name)
	assert.Equal(t, "#/components/schemas/User", output.Schemas[1].Ref)

	user := parseOutput(t, output.Schemas[1].Schema)
	assert.Equal(t, "http://json-schema.org/draft-04/schema#", user["$schema"])
	assert.Contains(t, user["components"].(map[string]any)["schemas"], "Team")
}

func TestConvertSchemaSetTool_Names(t *testing.T) {
	_, output, err := handleConvertSchemaSet(context.Background(), &mcp.CallToolRequest{}, convertSchemaSetInput{
		Spec:  specInput{Content: usersJSON},
		Names: []string{"User"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, output.Total)
	require.Len(t, output.Schemas, 1)
	assert.Equal(t, "User", output.Schemas[0].Name)

	res, _, err := handleConvertSchemaSet(context.Background(), &mcp.CallToolRequest{}, convertSchemaSetInput{
		Spec:  specInput{Content: usersJSON},
		Names: []string{"Missing"},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content[0].(*mcp.TextContent).Text, `"Missing"`)
}

func TestConvertTools_DoNotMutateCachedInput(t *testing.T) {
	specCache.reset()
	input := convertDocumentInput{Spec: specInput{Content: usersJSON}}

	_, first, err := handleConvertDocument(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	_, second, err := handleConvertDocument(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, first.Document, second.Document)
	cached, err := input.Spec.resolve()
	require.NoError(t, err)
	assert.NotContains(t, cached.Data, "$schema")
}
