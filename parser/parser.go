package parser

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oas2jsonschema/oaserrors"
)

// DefaultMaxFileSize is the largest document Parse will read (10 MiB).
const DefaultMaxFileSize int64 = 10 << 20

// Parser decodes JSON or YAML API descriptions and bare schema documents
// into generic node trees (map[string]any).
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
	// MaxFileSize is the maximum number of bytes read from a file or reader.
	// Default: 10MB
	MaxFileSize int64
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{MaxFileSize: DefaultMaxFileSize}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

// SourceFormat represents the format of the source document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains a decoded document and metadata about its source.
//
// Data is owned by the caller. The converter package clones it before
// mutating unless cloning is explicitly disabled.
type ParseResult struct {
	// SourcePath is the path the document was read from.
	// For readers and byte slices it is "ParseReader.<format>" or "ParseBytes.<format>".
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the value of the top-level "openapi" or "swagger" key,
	// or empty when the document is a bare schema
	Version string
	// Data is the decoded document root
	Data map[string]any
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
}

// IsAPIDocument reports whether the parsed data is a full API description
// (it declares an "openapi" or "swagger" version) rather than a bare schema.
func (pr *ParseResult) IsAPIDocument() bool {
	return pr.Version != ""
}

// Parse reads and decodes the file at specPath.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	info, err := os.Stat(specPath)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	if info.Size() > p.maxFileSize() {
		return nil, &oaserrors.ParseError{
			Path:    specPath,
			Message: fmt.Sprintf("file size %s exceeds limit %s", FormatBytes(info.Size()), FormatBytes(p.maxFileSize())),
		}
	}

	loadStart := time.Now()
	data, err := os.ReadFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}

	format := detectFormatFromPath(specPath)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	res, err := p.decode(data, format, specPath)
	if err != nil {
		return nil, err
	}
	res.SourcePath = specPath
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader decodes a document from an io.Reader.
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	limit := p.maxFileSize()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, &oaserrors.ParseError{
			Path:    "ParseReader",
			Message: fmt.Sprintf("input exceeds limit %s", FormatBytes(limit)),
		}
	}

	format := detectFormatFromContent(data)
	res, err := p.decode(data, format, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes decodes a document from a byte slice.
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	format := detectFormatFromContent(data)
	res, err := p.decode(data, format, "ParseBytes")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

func (p *Parser) decode(data []byte, format SourceFormat, source string) (*ParseResult, error) {
	if format == SourceFormatUnknown {
		return nil, &oaserrors.ParseError{Path: source, Message: "document is empty"}
	}

	var root any
	switch format {
	case SourceFormatJSON:
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, &oaserrors.ParseError{Path: source, Format: string(format), Message: "decoding document", Cause: err}
		}
	default:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, &oaserrors.ParseError{Path: source, Format: string(format), Message: "decoding document", Cause: err}
		}
		root = normalizeYAMLValue(root)
	}

	doc, ok := root.(map[string]any)
	if !ok {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Format:  string(format),
			Message: fmt.Sprintf("document root must be an object, got %T", root),
		}
	}

	res := &ParseResult{
		SourceFormat: format,
		Version:      detectVersion(doc),
		Data:         doc,
		SourceSize:   int64(len(data)),
	}
	p.log().Debug("decoded document",
		"source", source,
		"format", string(format),
		"version", res.Version,
		"size", res.SourceSize)
	return res, nil
}

// detectVersion returns the declared OpenAPI or Swagger version, if any.
func detectVersion(doc map[string]any) string {
	for _, key := range []string{"openapi", "swagger"} {
		switch v := doc[key].(type) {
		case string:
			return v
		case float64:
			// swagger: 2.0 unquoted in YAML decodes as a number
			return fmt.Sprintf("%.1f", v)
		}
	}
	return ""
}
