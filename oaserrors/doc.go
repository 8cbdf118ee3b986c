// Package oaserrors provides structured error types for oas2jsonschema.
//
// Import path: github.com/erraggy/oas2jsonschema/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish a schema that is semantically invalid from one
// that is malformed or a document that could not be read.
//
// # Error Types
//
//   - [InvalidTypeError]: a schema declared a type outside the six valid types
//   - [ConversionError]: a schema could not be converted at all (e.g., it was absent)
//   - [ShapeError]: a node value had the wrong kind for its key
//   - [ParseError]: JSON/YAML decoding failures
//   - [ConfigError]: invalid options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidType]: Matches any [InvalidTypeError]
//   - [ErrConversion]: Matches any [ConversionError]
//   - [ErrShape]: Matches any [ShapeError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	out, err := converter.ConvertSchema(node)
//	if errors.Is(err, oaserrors.ErrInvalidType) {
//	    // the input declared an unknown type
//	}
//
//	var typeErr *oaserrors.InvalidTypeError
//	if errors.As(err, &typeErr) {
//	    fmt.Printf("bad type %q at %s\n", typeErr.Type, typeErr.Path)
//	}
package oaserrors
