package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/erraggy/oas2jsonschema/converter"
	"github.com/erraggy/oas2jsonschema/internal/cliutil"
	"github.com/erraggy/oas2jsonschema/parser"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	ConversionFlags
	OutputFlags
	OutDir string
	Jobs   int
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	RegisterConversionFlags(fs, &flags.ConversionFlags)
	RegisterOutputFlags(fs, &flags.OutputFlags)
	fs.StringVar(&flags.OutDir, "out-dir", "", "directory for converted documents (required with several inputs)")
	fs.IntVar(&flags.Jobs, "j", runtime.GOMAXPROCS(0), "maximum number of documents converted concurrently")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oas2jsonschema convert [flags] <file|-> [file...]\n\n")
		cliutil.Writef(fs.Output(), "Convert every schema of OpenAPI 3.0 documents to JSON Schema draft-04.\n")
		cliutil.Writef(fs.Output(), "Component schemas and every schema under paths are converted in place;\n")
		cliutil.Writef(fs.Output(), "the rest of the document is kept.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oas2jsonschema convert openapi.yaml -o openapi.schema.yaml\n")
		cliutil.Writef(fs.Output(), "  oas2jsonschema convert --remove-writeonly --format json openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oas2jsonschema convert --out-dir out/ -j 4 specs/*.yaml\n")
		cliutil.Writef(fs.Output(), "  cat openapi.yaml | oas2jsonschema convert -q - > converted.yaml\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    All documents converted\n")
		cliutil.Writef(fs.Output(), "  1    At least one document failed to convert\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	return RunConvert(args, StdStreams())
}

// RunConvert executes the convert command against the given streams.
func RunConvert(args []string, streams Streams) error {
	fs, flags := SetupConvertFlags()
	fs.SetOutput(streams.Err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		fs.Usage()
		return fmt.Errorf("convert command requires at least one file path or '-' for stdin")
	}
	if len(inputs) > 1 {
		if flags.OutDir == "" {
			return fmt.Errorf("converting %d documents requires --out-dir", len(inputs))
		}
		if flags.Output != "" {
			return fmt.Errorf("--output cannot be combined with several inputs; use --out-dir")
		}
		for _, in := range inputs {
			if in == StdinFilePath {
				return fmt.Errorf("stdin can only be converted on its own")
			}
		}
	}
	if flags.Jobs < 1 {
		return fmt.Errorf("-j must be at least 1, got %d", flags.Jobs)
	}

	logger, err := flags.NewLogger(streams.Err)
	if err != nil {
		return err
	}
	c, err := converter.New(flags.Options(logger)...)
	if err != nil {
		return err
	}

	if flags.OutDir == "" {
		return convertOne(c, logger, inputs[0], flags, streams)
	}

	info, err := os.Stat(flags.OutDir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s is not a directory", flags.OutDir)
	}

	seen := make(map[string]string, len(inputs))
	for _, in := range inputs {
		// The format is not known before parsing, so only the stem is compared.
		name := outputName(in, "")
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("inputs %s and %s would write the same output file", prev, in)
		}
		seen[name] = in
	}

	var (
		mu   sync.Mutex
		merr *multierror.Error
	)
	var g errgroup.Group
	g.SetLimit(flags.Jobs)
	for _, in := range inputs {
		g.Go(func() error {
			if err := convertOne(c, logger, in, flags, streams); err != nil {
				mu.Lock()
				merr = multierror.Append(merr, fmt.Errorf("%s: %w", in, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return merr.ErrorOrNil()
}

// convertOne converts a single document. With --out-dir the output path is
// derived from the input name.
func convertOne(c *converter.Converter, logger *slog.Logger, specPath string, flags *ConvertFlags, streams Streams) error {
	startTime := time.Now()
	logger = logger.With("spec", FormatSpecPath(specPath))

	result, err := ReadInput(specPath, streams, logger)
	if err != nil {
		return err
	}
	format, err := flags.ResolveFormat(result.SourceFormat)
	if err != nil {
		return err
	}
	if !result.IsAPIDocument() {
		logger.Warn("input does not declare an openapi or swagger version; converting it as a document anyway")
	}

	doc, err := c.ConvertDocument(result.Data)
	if err != nil {
		return fmt.Errorf("converting %s: %w", FormatSpecPath(specPath), err)
	}

	outputPath := flags.Output
	if flags.OutDir != "" {
		outputPath = filepath.Join(flags.OutDir, outputName(specPath, format))
	}
	if outputPath != "" {
		if outputPath, err = ValidateOutputPath(outputPath, []string{specPath}); err != nil {
			return err
		}
	}
	if err := WriteResult(doc, format, outputPath, streams); err != nil {
		return err
	}

	logger.Info("converted document",
		"version", result.Version,
		"schemas", countComponentSchemas(doc),
		"size", parser.FormatBytes(result.SourceSize),
		"output", displayOutput(outputPath),
		"elapsed", time.Since(startTime).Round(time.Microsecond))
	return nil
}

// outputName derives the --out-dir file name for an input.
func outputName(specPath string, format parser.SourceFormat) string {
	base := strings.TrimSuffix(filepath.Base(specPath), filepath.Ext(specPath))
	if format == "" {
		return base
	}
	return base + ".schema" + OutputExtension(format)
}

func countComponentSchemas(doc converter.Node) int {
	components, ok := doc["components"].(converter.Node)
	if !ok {
		return 0
	}
	schemas, _ := components["schemas"].(converter.Node)
	return len(schemas)
}

func displayOutput(outputPath string) string {
	if outputPath == "" {
		return "<stdout>"
	}
	return outputPath
}
