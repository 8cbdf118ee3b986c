// Package converter converts OpenAPI 3.0 Schema Objects to JSON Schema
// draft-04.
//
// Schemas are generic trees ([Node], a map[string]any) such as those produced
// by the parser package. For each node the converter, in order:
//
//  1. converts the values of the structural keywords (allOf, anyOf, oneOf,
//     not, items, additionalProperties) recursively
//  2. converts every property, dropping properties flagged by RemoveProps,
//     and cleans "required" against the properties that are left
//  3. runs the opt-in widening passes over the properties
//  4. validates "type"
//  5. expresses nullable: true as a "null" type member (and as a
//     {"type": "null"} alternative of oneOf/anyOf)
//  6. moves x-patternProperties to patternProperties
//  7. strips keywords draft-04 does not know (nullable, discriminator,
//     readOnly, writeOnly, xml, externalDocs, example, deprecated)
//
// # Quick Start
//
// Convert a single schema:
//
//	schema, err := converter.ConvertSchema(converter.Node{
//		"type":     "string",
//		"nullable": true,
//	})
//	// schema: {"$schema": "http://json-schema.org/draft-04/schema#", "type": ["string", "null"]}
//
// Convert a parsed API description:
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc, err := converter.ConvertDocument(result.Data,
//		converter.WithRemoveReadOnly(true),
//		converter.WithDateToDateTime(true),
//	)
//
// Or build a reusable Converter; it is safe for concurrent use:
//
//	c, err := converter.New(converter.WithNullableEverywhere(true))
//	a, _ := c.ConvertSchema(schemaA)
//	b, _ := c.ConvertSchema(schemaB)
//
// # Ownership
//
// By default inputs are deep-copied before conversion and never modified.
// WithCloneSchema(false) converts in place, which is faster but mutates the
// caller's tree. [Converter.Convert] and [Converter.ProcessTree] always work
// in place.
//
// # Errors
//
// Failures are reported with the typed errors of the oaserrors package and
// carry the JSON Pointer of the failing node:
//
//	_, err := converter.ConvertSchema(converter.Node{"type": "foo"})
//	var typeErr *oaserrors.InvalidTypeError
//	if errors.As(err, &typeErr) {
//		fmt.Println(typeErr.Type, typeErr.Path) // foo #
//	}
//
// No partial result is returned on failure.
//
// # Related Packages
//
//   - [github.com/erraggy/oas2jsonschema/parser] - decode JSON and YAML documents
//   - [github.com/erraggy/oas2jsonschema/kinschema] - convert kin-openapi models
//   - [github.com/erraggy/oas2jsonschema/oaserrors] - error types
package converter
