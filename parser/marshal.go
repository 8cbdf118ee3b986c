package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// OutputFileMode is the permission mode used by WriteFile (owner read/write only)
const OutputFileMode = 0o600

// ParseFormat maps a user supplied format name ("json", "yaml" or "yml") to a
// SourceFormat. Matching is case-insensitive.
func ParseFormat(name string) (SourceFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return SourceFormatJSON, nil
	case "yaml", "yml":
		return SourceFormatYAML, nil
	default:
		return SourceFormatUnknown, fmt.Errorf("unsupported output format %q (expected json or yaml)", name)
	}
}

// Marshal encodes a document tree. JSON output is indented with two spaces;
// any format other than JSON is written as YAML. Map keys are emitted in
// sorted order in both formats.
func Marshal(doc any, format SourceFormat) ([]byte, error) {
	if format == SourceFormatJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("parser: failed to marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to marshal YAML: %w", err)
	}
	return data, nil
}

// WriteFile marshals doc and writes it to path with OutputFileMode.
//
// If the file already exists its permissions are reset to OutputFileMode.
func WriteFile(doc any, format SourceFormat, path string) error {
	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, OutputFileMode); err != nil {
		return fmt.Errorf("parser: failed to write output file: %w", err)
	}
	if err := os.Chmod(path, OutputFileMode); err != nil {
		return fmt.Errorf("parser: failed to set output file permissions: %w", err)
	}
	return nil
}
