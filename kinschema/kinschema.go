// Package kinschema converts kin-openapi models to JSON Schema draft-04.
//
// kin-openapi represents schemas and documents as typed structs. This
// package turns them into generic trees with the same JSON shape kin-openapi
// would write, then hands them to the converter package.
//
//	loader := openapi3.NewLoader()
//	doc, err := loader.LoadFromFile("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	converted, err := kinschema.ConvertDocument(doc, converter.WithRemoveReadOnly(true))
package kinschema

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"

	"github.com/erraggy/oas2jsonschema/converter"
	"github.com/erraggy/oas2jsonschema/oaserrors"
)

// FromSchema returns s as a generic schema tree.
func FromSchema(s *openapi3.Schema) (converter.Node, error) {
	if s == nil {
		return nil, &oaserrors.ConversionError{Path: "#", Message: "schema is nil"}
	}
	return toNode(s)
}

// FromSchemaRef returns ref as a generic schema tree. A reference is kept
// as {"$ref": "..."} and is not resolved.
func FromSchemaRef(ref *openapi3.SchemaRef) (converter.Node, error) {
	if ref == nil || (ref.Ref == "" && ref.Value == nil) {
		return nil, &oaserrors.ConversionError{Path: "#", Message: "schema reference is nil"}
	}
	return toNode(ref)
}

// FromDocument returns doc as a generic document tree.
func FromDocument(doc *openapi3.T) (converter.Node, error) {
	if doc == nil {
		return nil, &oaserrors.ConversionError{Path: "#", Message: "document is nil"}
	}
	return toNode(doc)
}

// toNode round-trips v through its JSON encoding. The result is freshly
// allocated, so the converter can skip cloning it.
func toNode(v any) (converter.Node, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &oaserrors.ConversionError{Path: "#", Message: fmt.Sprintf("encoding %T", v), Cause: err}
	}
	var n converter.Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, &oaserrors.ConversionError{Path: "#", Message: fmt.Sprintf("decoding %T", v), Cause: err}
	}
	return n, nil
}

// ConvertSchema converts a kin-openapi schema to a draft-04 schema.
func ConvertSchema(s *openapi3.Schema, opts ...converter.Option) (converter.Node, error) {
	n, err := FromSchema(s)
	if err != nil {
		return nil, err
	}
	return converter.ConvertSchema(n, withoutClone(opts)...)
}

// ConvertDocument converts every schema of a kin-openapi document.
func ConvertDocument(doc *openapi3.T, opts ...converter.Option) (converter.Node, error) {
	n, err := FromDocument(doc)
	if err != nil {
		return nil, err
	}
	return converter.ConvertDocument(n, withoutClone(opts)...)
}

// ConvertSchemaSet converts the component schemas of a kin-openapi document
// into one standalone draft-04 schema each.
func ConvertSchemaSet(doc *openapi3.T, opts ...converter.Option) (*converter.SchemaSet, error) {
	n, err := FromDocument(doc)
	if err != nil {
		return nil, err
	}
	return converter.ConvertSchemaSet(n, withoutClone(opts)...)
}

// withoutClone disables cloning ahead of opts; the tree from toNode is
// private, and callers may still re-enable it.
func withoutClone(opts []converter.Option) []converter.Option {
	return append([]converter.Option{converter.WithCloneSchema(false)}, opts...)
}
