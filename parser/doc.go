// Package parser decodes API descriptions and schema documents from JSON or
// YAML into generic node trees for the converter package.
//
// The parser performs no schema-level interpretation: the result's Data is
// the document root as a map[string]any in which every nested value is a
// map[string]any, []any, string, number, bool, or nil. YAML mappings with
// non-string keys (such as unquoted HTTP status codes) are normalized to string
// keys so the tree is always JSON-compatible.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Version: %s, Format: %s\n", result.Version, result.SourceFormat)
//
// # Logging
//
// Parse operations accept a [Logger]. Wrap a *slog.Logger with [NewSlogAdapter]:
//
//	logger := parser.NewSlogAdapter(slog.Default())
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//		parser.WithLogger(logger),
//	)
package parser
