package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oas2jsonschema/converter"
	"github.com/erraggy/oas2jsonschema/internal/pathutil"
	"github.com/erraggy/oas2jsonschema/parser"
)

// conversionOptions are the per-call overrides shared by all convert tools.
// Unset fields fall back to the OAS2JSONSCHEMA_* defaults.
type conversionOptions struct {
	DateToDateTime       *bool    `json:"date_to_datetime,omitempty"       jsonschema:"Rewrite format date to date-time"`
	RemoveReadOnly       *bool    `json:"remove_readonly,omitempty"        jsonschema:"Drop properties marked readOnly"`
	RemoveWriteOnly      *bool    `json:"remove_writeonly,omitempty"       jsonschema:"Drop properties marked writeOnly"`
	PatternProperties    *bool    `json:"pattern_properties,omitempty"     jsonschema:"Translate x-patternProperties to patternProperties"`
	EnumToInteger        *bool    `json:"enum_to_integer,omitempty"        jsonschema:"Replace enum constraints on properties with an integer alternative"`
	NullableEverywhere   *bool    `json:"nullable_everywhere,omitempty"    jsonschema:"Make every typed property also accept null"`
	StringAcceptsInteger *bool    `json:"string_accepts_integer,omitempty" jsonschema:"Make string properties also accept integers"`
	Keep                 []string `json:"keep,omitempty"                   jsonschema:"OpenAPI-only keywords to keep in the output (e.g. example\\, xml)"`
	RemoveProps          []string `json:"remove_props,omitempty"           jsonschema:"Drop properties whose schema sets any of these keywords to true"`
}

// converterOptions merges the call overrides over the server defaults.
func (o conversionOptions) converterOptions() []converter.Option {
	pick := func(override *bool, fallback bool) bool {
		if override != nil {
			return *override
		}
		return fallback
	}
	keep := cfg.KeepNotSupported
	if o.Keep != nil {
		keep = o.Keep
	}

	opts := []converter.Option{
		converter.WithDateToDateTime(pick(o.DateToDateTime, cfg.DateToDateTime)),
		converter.WithRemoveReadOnly(pick(o.RemoveReadOnly, cfg.RemoveReadOnly)),
		converter.WithRemoveWriteOnly(pick(o.RemoveWriteOnly, cfg.RemoveWriteOnly)),
		converter.WithPatternProperties(pick(o.PatternProperties, cfg.PatternProperties)),
		converter.WithEnumToInteger(pick(o.EnumToInteger, cfg.EnumToInteger)),
		converter.WithNullableEverywhere(pick(o.NullableEverywhere, cfg.NullableEverywhere)),
		converter.WithStringAcceptsInteger(pick(o.StringAcceptsInteger, cfg.StringAcceptsInteger)),
	}
	if len(keep) > 0 {
		opts = append(opts, converter.WithKeepNotSupported(keep...))
	}
	if len(o.RemoveProps) > 0 {
		opts = append(opts, converter.WithRemoveProps(o.RemoveProps...))
	}
	return opts
}

// outputFormat picks the requested format, defaulting to the source format.
func outputFormat(requested string, source parser.SourceFormat) (parser.SourceFormat, error) {
	if requested == "" {
		if source == parser.SourceFormatJSON {
			return parser.SourceFormatJSON, nil
		}
		return parser.SourceFormatYAML, nil
	}
	return parser.ParseFormat(requested)
}

// emit either writes doc to output or returns it marshaled for inline use.
func emit(doc any, format parser.SourceFormat, output string) (inline, writtenTo string, err error) {
	if output != "" {
		path, err := pathutil.SanitizeOutputPath(output)
		if err != nil {
			return "", "", err
		}
		if err := parser.WriteFile(doc, format, path); err != nil {
			return "", "", err
		}
		return "", path, nil
	}
	data, err := parser.Marshal(doc, format)
	if err != nil {
		return "", "", err
	}
	return string(data), "", nil
}

type convertDocumentInput struct {
	Spec    specInput         `json:"spec"             jsonschema:"The OpenAPI 3.0 document to convert"`
	Options conversionOptions `json:"options,omitempty" jsonschema:"Conversion options overriding the server defaults"`
	Format  string            `json:"format,omitempty" jsonschema:"Output format (json or yaml). Defaults to the input format."`
	Output  string            `json:"output,omitempty" jsonschema:"File path to write the converted document. If omitted the document is returned inline."`
}

type convertDocumentOutput struct {
	Version     string `json:"version,omitempty"`
	SchemaCount int    `json:"schema_count"`
	WrittenTo   string `json:"written_to,omitempty"`
	Document    string `json:"document,omitempty"`
}

func handleConvertDocument(_ context.Context, _ *mcp.CallToolRequest, input convertDocumentInput) (*mcp.CallToolResult, convertDocumentOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), convertDocumentOutput{}, nil
	}
	format, err := outputFormat(input.Format, result.SourceFormat)
	if err != nil {
		return errResult(err), convertDocumentOutput{}, nil
	}

	doc, err := converter.ConvertDocument(result.Data, input.Options.converterOptions()...)
	if err != nil {
		return errResult(err), convertDocumentOutput{}, nil
	}

	output := convertDocumentOutput{Version: result.Version}
	if components, ok := doc["components"].(converter.Node); ok {
		if schemas, ok := components["schemas"].(converter.Node); ok {
			output.SchemaCount = len(schemas)
		}
	}
	output.Document, output.WrittenTo, err = emit(doc, format, input.Output)
	if err != nil {
		return errResult(err), convertDocumentOutput{}, nil
	}
	return nil, output, nil
}

type convertSchemaInput struct {
	Schema  specInput         `json:"schema"           jsonschema:"A single OpenAPI 3.0 Schema Object"`
	Options conversionOptions `json:"options,omitempty" jsonschema:"Conversion options overriding the server defaults"`
	Format  string            `json:"format,omitempty" jsonschema:"Output format (json or yaml). Defaults to the input format."`
}

type convertSchemaOutput struct {
	Schema string `json:"schema"`
}

func handleConvertSchema(_ context.Context, _ *mcp.CallToolRequest, input convertSchemaInput) (*mcp.CallToolResult, convertSchemaOutput, error) {
	result, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), convertSchemaOutput{}, nil
	}
	format, err := outputFormat(input.Format, result.SourceFormat)
	if err != nil {
		return errResult(err), convertSchemaOutput{}, nil
	}

	schema, err := converter.ConvertSchema(result.Data, input.Options.converterOptions()...)
	if err != nil {
		return errResult(err), convertSchemaOutput{}, nil
	}
	data, err := parser.Marshal(schema, format)
	if err != nil {
		return errResult(err), convertSchemaOutput{}, nil
	}
	return nil, convertSchemaOutput{Schema: string(data)}, nil
}

type convertSchemaSetInput struct {
	Spec    specInput         `json:"spec"             jsonschema:"The OpenAPI 3.0 document whose component schemas are converted"`
	Options conversionOptions `json:"options,omitempty" jsonschema:"Conversion options overriding the server defaults"`
	Names   []string          `json:"names,omitempty"  jsonschema:"Only return these component schemas (default all)"`
	Format  string            `json:"format,omitempty" jsonschema:"Output format (json or yaml). Defaults to the input format."`
}

type namedSchema struct {
	Name   string `json:"name"`
	Ref    string `json:"ref"`
	Schema string `json:"schema"`
}

type convertSchemaSetOutput struct {
	Total    int           `json:"total"`
	Returned int           `json:"returned"`
	Schemas  []namedSchema `json:"schemas,omitempty"`
}

func handleConvertSchemaSet(_ context.Context, _ *mcp.CallToolRequest, input convertSchemaSetInput) (*mcp.CallToolResult, convertSchemaSetOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), convertSchemaSetOutput{}, nil
	}
	format, err := outputFormat(input.Format, result.SourceFormat)
	if err != nil {
		return errResult(err), convertSchemaSetOutput{}, nil
	}

	set, err := converter.ConvertSchemaSet(result.Data, input.Options.converterOptions()...)
	if err != nil {
		return errResult(err), convertSchemaSetOutput{}, nil
	}

	names := set.Names
	if len(input.Names) > 0 {
		names = input.Names
	}

	output := convertSchemaSetOutput{Total: set.Len()}
	output.Schemas = makeSlice[namedSchema](len(names))
	for _, name := range names {
		schema, ok := set.Schema(name)
		if !ok {
			return errResult(fmt.Errorf("component schema %q not found", name)), convertSchemaSetOutput{}, nil
		}
		data, err := parser.Marshal(schema, format)
		if err != nil {
			return errResult(err), convertSchemaSetOutput{}, nil
		}
		output.Schemas = append(output.Schemas, namedSchema{Name: name, Ref: pathutil.SchemaRef(name), Schema: string(data)})
	}
	output.Returned = len(output.Schemas)
	return nil, output, nil
}
