// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the OpenAPI to JSON Schema conversion as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oas2jsonschema"
)

const serverInstructions = `oas2jsonschema MCP server: converts OpenAPI 3.0 schemas and documents to JSON Schema draft-04.

Configuration: conversion defaults are configurable via OAS2JSONSCHEMA_* environment variables set in your MCP client config. Every tool accepts an options object that overrides them per call.

Key settings:
- OAS2JSONSCHEMA_DATE_TO_DATETIME (default: false): rewrite format date to date-time
- OAS2JSONSCHEMA_REMOVE_READONLY / OAS2JSONSCHEMA_REMOVE_WRITEONLY (default: false): drop readOnly/writeOnly properties
- OAS2JSONSCHEMA_PATTERN_PROPERTIES (default: true): translate x-patternProperties
- OAS2JSONSCHEMA_KEEP: comma-separated OpenAPI-only keywords to keep
- OAS2JSONSCHEMA_ENUM_TO_INTEGER, OAS2JSONSCHEMA_NULLABLE, OAS2JSONSCHEMA_STRING_ACCEPTS_INTEGER (default: false): legacy type widening
- OAS2JSONSCHEMA_CACHE_ENABLED (default: true): cache parsed inputs per session

Caching: parsed inputs are cached per session. File entries use path+mtime as key (auto-invalidated on change); inline content is keyed by its hash.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}
	return newServer().Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oas2jsonschema", Version: oas2jsonschema.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_document",
		Description: "Convert every schema of an OpenAPI 3.0 document (components.schemas and every schema under paths) to JSON Schema draft-04. Returns the converted document inline, or writes it to output. Use format to choose json or yaml output.",
	}, handleConvertDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_schema",
		Description: "Convert a single OpenAPI 3.0 Schema Object to JSON Schema draft-04. Nullable becomes a null type, x-patternProperties becomes patternProperties, and OpenAPI-only keywords are removed.",
	}, handleConvertSchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_schema_set",
		Description: "Convert each component schema of an OpenAPI 3.0 document into a standalone JSON Schema that embeds all converted components, so #/components/schemas/... references resolve. Use names to return only some schemas.",
	}, handleConvertSchemaSet)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
