package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/oas2jsonschema/converter"
	"github.com/erraggy/oas2jsonschema/internal/cliutil"
)

// SchemasFlags contains flags for the schemas command
type SchemasFlags struct {
	ConversionFlags
	OutputFlags
	OutDir string
}

// SetupSchemasFlags creates and configures a FlagSet for the schemas command.
// Returns the FlagSet and a SchemasFlags struct with bound flag variables.
func SetupSchemasFlags() (*flag.FlagSet, *SchemasFlags) {
	fs := flag.NewFlagSet("schemas", flag.ContinueOnError)
	flags := &SchemasFlags{}

	RegisterConversionFlags(fs, &flags.ConversionFlags)
	RegisterOutputFlags(fs, &flags.OutputFlags)
	fs.StringVar(&flags.OutDir, "out-dir", "", "write one standalone schema file per component into this directory")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oas2jsonschema schemas [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Convert the component schemas of an OpenAPI 3.0 document.\n")
		cliutil.Writef(fs.Output(), "Without --out-dir, prints {\"schemas\": {name: schema}} with every schema\n")
		cliutil.Writef(fs.Output(), "marked as draft-04. With --out-dir, writes <Name>.json or <Name>.yaml per\n")
		cliutil.Writef(fs.Output(), "component, each embedding all converted components so refs resolve.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oas2jsonschema schemas openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oas2jsonschema schemas --out-dir schemas/ --format json openapi.yaml\n")
	}

	return fs, flags
}

// HandleSchemas executes the schemas command
func HandleSchemas(args []string) error {
	return RunSchemas(args, StdStreams())
}

// RunSchemas executes the schemas command against the given streams.
func RunSchemas(args []string, streams Streams) error {
	fs, flags := SetupSchemasFlags()
	fs.SetOutput(streams.Err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("schemas command requires exactly one file path or '-' for stdin")
	}
	if flags.OutDir != "" && flags.Output != "" {
		return fmt.Errorf("--output and --out-dir are mutually exclusive")
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

	if flags.OutDir == "" {
		components, err := c.ParseComponentSchemas(result.Data)
		if err != nil {
			return fmt.Errorf("converting %s: %w", FormatSpecPath(specPath), err)
		}
		outputPath := flags.Output
		if outputPath != "" {
			if outputPath, err = ValidateOutputPath(outputPath, []string{specPath}); err != nil {
				return err
			}
		}
		return WriteResult(components, format, outputPath, streams)
	}

	info, err := os.Stat(flags.OutDir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s is not a directory", flags.OutDir)
	}

	set, err := c.ConvertSchemaSet(result.Data)
	if err != nil {
		return fmt.Errorf("converting %s: %w", FormatSpecPath(specPath), err)
	}
	for i, name := range set.Names {
		if err := checkComponentFileName(name); err != nil {
			return err
		}
		outputPath, err := ValidateOutputPath(filepath.Join(flags.OutDir, name+OutputExtension(format)), []string{specPath})
		if err != nil {
			return err
		}
		if err := WriteResult(set.Schemas[i], format, outputPath, streams); err != nil {
			return err
		}
		logger.Debug("wrote component schema", "name", name, "output", outputPath)
	}
	logger.Info("converted component schemas", "spec", FormatSpecPath(specPath), "count", set.Len(), "dir", flags.OutDir)
	return nil
}

// checkComponentFileName rejects component names that cannot be used as a
// plain file name inside the output directory.
func checkComponentFileName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("component schema name %q cannot be used as a file name", name)
	}
	return nil
}
