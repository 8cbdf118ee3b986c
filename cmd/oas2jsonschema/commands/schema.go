package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oas2jsonschema/converter"
	"github.com/erraggy/oas2jsonschema/internal/cliutil"
)

// SchemaFlags contains flags for the schema command
type SchemaFlags struct {
	ConversionFlags
	OutputFlags
	Name string
}

// SetupSchemaFlags creates and configures a FlagSet for the schema command.
// Returns the FlagSet and a SchemaFlags struct with bound flag variables.
func SetupSchemaFlags() (*flag.FlagSet, *SchemaFlags) {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	flags := &SchemaFlags{}

	RegisterConversionFlags(fs, &flags.ConversionFlags)
	RegisterOutputFlags(fs, &flags.OutputFlags)
	fs.StringVar(&flags.Name, "name", "", "treat the input as a document and emit the named component schema, with all components embedded")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oas2jsonschema schema [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Convert a single OpenAPI 3.0 Schema Object to a JSON Schema draft-04 document.\n")
		cliutil.Writef(fs.Output(), "With --name the input is a whole API document and the output is the named\n")
		cliutil.Writef(fs.Output(), "component as a standalone schema whose #/components/schemas refs resolve.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oas2jsonschema schema pet.schema.yaml\n")
		cliutil.Writef(fs.Output(), "  oas2jsonschema schema --name Pet --format json openapi.yaml -o pet.json\n")
		cliutil.Writef(fs.Output(), "  echo '{\"type\":\"string\",\"nullable\":true}' | oas2jsonschema schema -q -\n")
	}

	return fs, flags
}

// HandleSchema executes the schema command
func HandleSchema(args []string) error {
	return RunSchema(args, StdStreams())
}

// RunSchema executes the schema command against the given streams.
func RunSchema(args []string, streams Streams) error {
	fs, flags := SetupSchemaFlags()
	fs.SetOutput(streams.Err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("schema command requires exactly one file path or '-' for stdin")
	}
	specPath := fs.Arg(0)

	logger, err := flags.NewLogger(streams.Err)
	if err != nil {
		return err
	}
	c, err := converter.New(flags.Options(logger)...)
	if err != nil {
		return err
	}

	result, err := ReadInput(specPath, streams, logger)
	if err != nil {
		return err
	}
	format, err := flags.ResolveFormat(result.SourceFormat)
	if err != nil {
		return err
	}

	var schema converter.Node
	if flags.Name == "" {
		schema, err = c.ConvertSchema(result.Data)
		if err != nil {
			return fmt.Errorf("converting %s: %w", FormatSpecPath(specPath), err)
		}
	} else {
		set, err := c.ConvertSchemaSet(result.Data)
		if err != nil {
			return fmt.Errorf("converting %s: %w", FormatSpecPath(specPath), err)
		}
		var ok bool
		if schema, ok = set.Schema(flags.Name); !ok {
			return fmt.Errorf("component schema %q not found in %s", flags.Name, FormatSpecPath(specPath))
		}
	}

	outputPath := flags.Output
	if outputPath != "" {
		if outputPath, err = ValidateOutputPath(outputPath, []string{specPath}); err != nil {
			return err
		}
	}
	if err := WriteResult(schema, format, outputPath, streams); err != nil {
		return err
	}
	logger.Debug("converted schema", "spec", FormatSpecPath(specPath), "name", flags.Name, "output", displayOutput(outputPath))
	return nil
}
