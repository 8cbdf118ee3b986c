package converter

import (
	"maps"

	"github.com/erraggy/oas2jsonschema/internal/pathutil"
)

// SchemaSet holds one standalone draft-04 schema per component schema of a
// document.
//
// Every schema embeds the same Components value so that
// "#/components/schemas/..." references resolve inside it. Treat the set as
// read-only.
type SchemaSet struct {
	// Names lists the component names in sorted order.
	Names []string
	// Schemas holds the converted schema for Names[i] at index i.
	Schemas []Node
	// Components is {"schemas": {name: converted schema}}.
	Components Node
}

// Len returns the number of schemas in the set.
func (s *SchemaSet) Len() int {
	return len(s.Schemas)
}

// Schema returns the standalone schema for the named component.
func (s *SchemaSet) Schema(name string) (Node, bool) {
	for i, n := range s.Names {
		if n == name {
			return s.Schemas[i], true
		}
	}
	return nil, false
}

// ParseComponentSchemas converts every entry of doc's components.schemas
// and returns them as {"schemas": {name: converted schema}}, each schema
// marked with "$schema". A document without component schemas yields an
// empty "schemas" object.
func (c *Converter) ParseComponentSchemas(doc Node) (Node, error) {
	prepared, err := c.prepare(doc)
	if err != nil {
		return nil, err
	}
	schemas, err := componentSchemas(prepared)
	if err != nil {
		return nil, err
	}
	if schemas == nil {
		schemas = Node{}
	}

	path := pathutil.Get()
	defer pathutil.Put(path)
	path.Push("components")
	path.Push("schemas")
	if err := c.convertNamedSchemas(schemas, path, true); err != nil {
		return nil, err
	}
	return Node{"schemas": schemas}, nil
}

// ConvertSchemaSet converts the component schemas of doc into a SchemaSet.
//
// The exception passes (EnumToInteger, NullableEverywhere,
// StringAcceptsInteger) are not implied; pass LegacyExceptions to enable
// all three.
func (c *Converter) ConvertSchemaSet(doc Node) (*SchemaSet, error) {
	components, err := c.ParseComponentSchemas(doc)
	if err != nil {
		return nil, err
	}
	schemas := components["schemas"].(Node)

	set := &SchemaSet{
		Names:      sortedKeys(schemas),
		Components: components,
	}
	set.Schemas = make([]Node, 0, len(set.Names))
	for _, name := range set.Names {
		// A shallow copy keeps components.schemas free of the back reference.
		top := maps.Clone(schemas[name].(Node))
		top["components"] = components
		set.Schemas = append(set.Schemas, top)
	}
	c.log.Debug("converted schema set", "schemas", len(set.Names))
	return set, nil
}

// ParseComponentSchemas is a convenience function that builds a Converter
// from opts and converts a document's component schemas.
func ParseComponentSchemas(doc Node, opts ...Option) (Node, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.ParseComponentSchemas(doc)
}

// ConvertSchemaSet is a convenience function that builds a Converter from
// opts and converts a document's component schemas into a SchemaSet.
//
// Example:
//
//	set, err := converter.ConvertSchemaSet(doc, converter.LegacyExceptions())
//	for i, name := range set.Names {
//		fmt.Println(name, set.Schemas[i]["$schema"])
//	}
func ConvertSchemaSet(doc Node, opts ...Option) (*SchemaSet, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.ConvertSchemaSet(doc)
}
