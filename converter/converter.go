package converter

import (
	"fmt"
	"slices"

	"github.com/erraggy/oas2jsonschema/oaserrors"
	"github.com/erraggy/oas2jsonschema/parser"
)

// Converter converts schema trees from the OpenAPI 3.0 dialect to JSON
// Schema draft-04.
//
// A Converter is immutable once built and safe for concurrent use; each call
// keeps its own traversal state.
type Converter struct {
	opts         Options
	notSupported []string
	removeProps  []string
	log          parser.Logger
}

// New creates a Converter from DefaultOptions with opts applied on top.
func New(opts ...Option) (*Converter, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}
	return newConverter(cfg), nil
}

func newConverter(cfg Options) *Converter {
	log := cfg.Logger
	if log == nil {
		log = parser.NopLogger{}
	}
	cfg.KeepNotSupported = slices.Clone(cfg.KeepNotSupported)
	cfg.StructuralKeys = slices.Clone(cfg.StructuralKeys)
	cfg.RemoveProps = slices.Clone(cfg.RemoveProps)
	return &Converter{
		opts:         cfg,
		notSupported: ResolveNotSupported(DefaultNotSupported(), cfg.KeepNotSupported),
		removeProps:  resolveRemoveProps(cfg),
		log:          log,
	}
}

// Options returns a copy of the options the Converter was built with.
func (c *Converter) Options() Options {
	o := c.opts
	o.KeepNotSupported = slices.Clone(o.KeepNotSupported)
	o.StructuralKeys = slices.Clone(o.StructuralKeys)
	o.RemoveProps = slices.Clone(o.RemoveProps)
	return o
}

// NotSupported returns the keywords stripped from every converted node.
func (c *Converter) NotSupported() []string {
	return slices.Clone(c.notSupported)
}

// RemoveProps returns the boolean keywords that cause a property to be
// dropped, including readOnly and writeOnly when enabled.
func (c *Converter) RemoveProps() []string {
	return slices.Clone(c.removeProps)
}

// prepare returns the tree conversion will mutate: node itself, or a deep
// copy when CloneSchema is set.
func (c *Converter) prepare(node Node) (Node, error) {
	if node == nil {
		return nil, &oaserrors.ConversionError{Path: "#", Message: "schema is nil"}
	}
	if !c.opts.CloneSchema {
		return node, nil
	}
	cloned, err := cloneNode(node)
	if err != nil {
		return nil, err
	}
	if cloned == nil {
		return nil, &oaserrors.ConversionError{Path: "#", Message: "schema is nil after preparation"}
	}
	return cloned, nil
}

// ConvertSchema converts a single top-level schema and marks it with the
// draft-04 "$schema" URI. Unless CloneSchema is disabled, node is not modified.
func (c *Converter) ConvertSchema(node Node) (Node, error) {
	prepared, err := c.prepare(node)
	if err != nil {
		return nil, err
	}
	converted, err := c.Convert(prepared)
	if err != nil {
		return nil, err
	}
	converted["$schema"] = DraftSchemaURI
	return converted, nil
}

// ConvertSchema is a convenience function that builds a Converter from opts
// and converts a single top-level schema.
//
// Example:
//
//	schema, err := converter.ConvertSchema(node, converter.WithDateToDateTime(true))
func ConvertSchema(node Node, opts ...Option) (Node, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.ConvertSchema(node)
}
