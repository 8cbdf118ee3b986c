package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oas2jsonschema/internal/cliutil"
	"github.com/erraggy/oas2jsonschema/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command. The server is
// configured through OAS2JSONSCHEMA_* environment variables, so the only
// flags control diagnostics.
func SetupMCPFlags() (*flag.FlagSet, *OutputFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &OutputFlags{}

	fs.BoolVar(&flags.Verbose, "v", false, "log debug output to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug output to stderr")
	fs.StringVar(&flags.LogFormat, "log-format", cliutil.LogFormatText, "diagnostic log format: text, json or logfmt")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oas2jsonschema mcp [flags]\n\n")
		cliutil.Writef(fs.Output(), "Run an MCP (Model Context Protocol) server over stdio exposing the\n")
		cliutil.Writef(fs.Output(), "convert_document, convert_schema and convert_schema_set tools.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nConfiguration:\n")
		cliutil.Writef(fs.Output(), "  Conversion defaults come from OAS2JSONSCHEMA_* environment variables,\n")
		cliutil.Writef(fs.Output(), "  e.g. OAS2JSONSCHEMA_REMOVE_WRITEONLY=true or OAS2JSONSCHEMA_KEEP=example.\n")
	}

	return fs, flags
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	// stdout carries the protocol; diagnostics go to stderr.
	logger, err := flags.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Debug("starting MCP server")
	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
