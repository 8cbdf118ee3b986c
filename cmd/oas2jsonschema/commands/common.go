// Package commands provides CLI command handlers for oas2jsonschema.
package commands

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/erraggy/oas2jsonschema/converter"
	"github.com/erraggy/oas2jsonschema/internal/cliutil"
	"github.com/erraggy/oas2jsonschema/internal/pathutil"
	"github.com/erraggy/oas2jsonschema/parser"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Output format flag values. An empty format means "same as the input".
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Streams are the standard streams a command reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// ConversionFlags are the converter options shared by every conversion command.
type ConversionFlags struct {
	DateToDateTime       bool
	Keep                 cliutil.StringList
	RemoveReadOnly       bool
	RemoveWriteOnly      bool
	NoPatternProperties  bool
	RemoveProps          cliutil.StringList
	EnumToInteger        bool
	Nullable             bool
	StringAcceptsInteger bool
	Legacy               bool
}

// OutputFlags control where and how results and diagnostics are written.
type OutputFlags struct {
	Output    string
	Format    string
	Quiet     bool
	Verbose   bool
	LogFormat string
}

// RegisterConversionFlags binds the shared conversion flags to fs.
func RegisterConversionFlags(fs *flag.FlagSet, flags *ConversionFlags) {
	fs.BoolVar(&flags.DateToDateTime, "date-to-datetime", false, "rewrite format: date to format: date-time")
	fs.Var(&flags.Keep, "keep", "OpenAPI-only keywords to keep (comma-separated, repeatable)")
	fs.BoolVar(&flags.RemoveReadOnly, "remove-readonly", false, "drop properties marked readOnly")
	fs.BoolVar(&flags.RemoveWriteOnly, "remove-writeonly", false, "drop properties marked writeOnly")
	fs.BoolVar(&flags.NoPatternProperties, "no-pattern-properties", false, "leave x-patternProperties untranslated")
	fs.Var(&flags.RemoveProps, "remove-props", "drop properties whose schema sets any of these keywords to true (comma-separated, repeatable)")
	fs.BoolVar(&flags.EnumToInteger, "enum-to-integer", false, "replace enum constraints on properties with an integer alternative")
	fs.BoolVar(&flags.Nullable, "nullable", false, "make every typed property also accept null")
	fs.BoolVar(&flags.StringAcceptsInteger, "string-accepts-integer", false, "make string properties also accept integers")
	fs.BoolVar(&flags.Legacy, "legacy", false, "enable all three legacy type-widening rules")
}

// RegisterOutputFlags binds the shared output flags to fs.
func RegisterOutputFlags(fs *flag.FlagSet, flags *OutputFlags) {
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: same as input)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the result, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose mode: log each conversion step")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: log each conversion step")
	fs.StringVar(&flags.LogFormat, "log-format", cliutil.LogFormatText, "diagnostic log format: text, json or logfmt")
}

// Options translates the flags into converter options.
func (f *ConversionFlags) Options(logger *slog.Logger) []converter.Option {
	opts := []converter.Option{
		converter.WithDateToDateTime(f.DateToDateTime),
		converter.WithRemoveReadOnly(f.RemoveReadOnly),
		converter.WithRemoveWriteOnly(f.RemoveWriteOnly),
		converter.WithPatternProperties(!f.NoPatternProperties),
		converter.WithEnumToInteger(f.EnumToInteger),
		converter.WithNullableEverywhere(f.Nullable),
		converter.WithStringAcceptsInteger(f.StringAcceptsInteger),
		converter.WithLogger(parser.NewSlogAdapter(logger)),
	}
	if f.Legacy {
		opts = append(opts, converter.LegacyExceptions())
	}
	if len(f.Keep) > 0 {
		opts = append(opts, converter.WithKeepNotSupported(f.Keep...))
	}
	if len(f.RemoveProps) > 0 {
		opts = append(opts, converter.WithRemoveProps(f.RemoveProps...))
	}
	return opts
}

// NewLogger builds the diagnostic logger for a command run.
func (f *OutputFlags) NewLogger(w io.Writer) (*slog.Logger, error) {
	h, err := cliutil.NewLogHandler(w, cliutil.LogLevel(f.Quiet, f.Verbose), f.LogFormat)
	if err != nil {
		return nil, err
	}
	return slog.New(h), nil
}

// ResolveFormat returns the output format for a result parsed from source.
func (f *OutputFlags) ResolveFormat(source parser.SourceFormat) (parser.SourceFormat, error) {
	if f.Format == "" {
		if source == parser.SourceFormatJSON {
			return parser.SourceFormatJSON, nil
		}
		return parser.SourceFormatYAML, nil
	}
	return parser.ParseFormat(f.Format)
}

// ReadInput parses specPath, or streams.In when specPath is StdinFilePath.
func ReadInput(specPath string, streams Streams, logger *slog.Logger) (*parser.ParseResult, error) {
	opts := []parser.Option{parser.WithLogger(parser.NewSlogAdapter(logger))}
	if specPath == StdinFilePath {
		opts = append(opts, parser.WithReader(streams.In), parser.WithSourceName(FormatSpecPath(specPath)))
	} else {
		opts = append(opts, parser.WithFilePath(specPath))
	}
	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FormatSpecPath(specPath), err)
	}
	return result, nil
}

// FormatSpecPath returns a display-friendly path for an input document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// ValidateOutputPath checks that writing outputPath would not clobber one of
// the inputs and returns the sanitized absolute path.
func ValidateOutputPath(outputPath string, inputPaths []string) (string, error) {
	cleaned, err := pathutil.SanitizeOutputPath(outputPath)
	if err != nil {
		return "", err
	}
	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return "", fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if cleaned == absInputPath {
			return "", fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}
	return cleaned, nil
}

// WriteResult writes doc to outputPath, or to streams.Out when outputPath is
// empty.
func WriteResult(doc any, format parser.SourceFormat, outputPath string, streams Streams) error {
	if outputPath != "" {
		return parser.WriteFile(doc, format, outputPath)
	}
	data, err := parser.Marshal(doc, format)
	if err != nil {
		return err
	}
	if _, err := streams.Out.Write(data); err != nil {
		return fmt.Errorf("writing result to stdout: %w", err)
	}
	return nil
}

// OutputExtension returns the file extension for a format.
func OutputExtension(format parser.SourceFormat) string {
	if format == parser.SourceFormatJSON {
		return ".json"
	}
	return ".yaml"
}
