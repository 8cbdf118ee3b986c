// Package oas2jsonschema converts OpenAPI 3.0 Schema Objects into JSON Schema
// draft-04 documents.
//
// OpenAPI 3.0 schemas are a dialect of JSON Schema: they add keywords such as
// nullable, discriminator, readOnly and example, restrict type to a single
// name, and spell patternProperties as the x-patternProperties extension.
// Validators that speak plain JSON Schema cannot consume them directly. The
// converter rewrites every schema in a document so that it can.
//
// # Packages
//
//   - parser: decode JSON or YAML documents into generic trees and write
//     results back out
//   - converter: the conversion pipeline, the schema-set helpers and the
//     option set
//   - oaserrors: typed errors returned by parser and converter
//   - kinschema: bridges to github.com/getkin/kin-openapi values
//
// The oas2jsonschema command wraps the same packages (convert, schema,
// schemas and an MCP server over stdio).
//
// # Quick Start
//
// Convert a whole document:
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc, err := converter.ConvertDocument(result.Data,
//		converter.WithRemoveWriteOnly(true),
//		converter.WithDateToDateTime(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, _ := parser.Marshal(doc, parser.SourceFormatJSON)
//	os.Stdout.Write(out)
//
// Convert a single schema:
//
//	schema, err := converter.ConvertSchema(converter.Node{
//		"type":     "string",
//		"nullable": true,
//	})
//	// schema == {"$schema": "http://json-schema.org/draft-04/schema#",
//	//            "type": ["string", "null"]}
//
// Emit every component schema as a standalone schema:
//
//	set, err := converter.ConvertSchemaSet(result.Data)
//	for i, name := range set.Names {
//		fmt.Println(name, set.Schemas[i]["$schema"])
//	}
//
// # Conversion Rules
//
// Each schema, including every nested schema under properties, items,
// additionalProperties, not and the allOf/anyOf/oneOf lists, is processed
// as follows:
//
//   - type is validated against the seven JSON Schema types
//   - nullable: true widens type to include "null"; a nullable enum also
//     accepts null
//   - format: date becomes date-time when WithDateToDateTime is set
//   - readOnly and writeOnly properties are removed on request, and
//     required is trimmed to the properties that are left
//   - x-patternProperties becomes patternProperties unless disabled
//   - keywords draft-04 does not know are stripped unless listed in
//     WithKeepNotSupported
//
// The root of every converted schema carries
// "$schema": "http://json-schema.org/draft-04/schema#".
//
// # Errors
//
// Conversion failures are typed and carry a JSON pointer to the offending
// node:
//
//	var typeErr *oaserrors.InvalidTypeError
//	if errors.As(err, &typeErr) {
//		fmt.Println(typeErr.Path)
//	}
//
// Use errors.Is with oaserrors.ErrInvalidType, oaserrors.ErrShape,
// oaserrors.ErrConfig or oaserrors.ErrParse for category checks.
//
// # Inputs Are Not Mutated
//
// By default the converter deep-copies its input before working on it.
// WithCloneSchema(false) converts in place, which is faster for large
// documents that are discarded afterwards.
package oas2jsonschema
