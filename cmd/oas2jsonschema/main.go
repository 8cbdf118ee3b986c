package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oas2jsonschema"
	"github.com/erraggy/oas2jsonschema/cmd/oas2jsonschema/commands"
	"github.com/erraggy/oas2jsonschema/internal/cliutil"
)

// commandNames lists every top-level command, used for typo suggestions.
var commandNames = []string{"convert", "schema", "schemas", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	var err error

	switch command {
	case "version", "-v", "--version":
		cliutil.Writef(os.Stdout, "oas2jsonschema %s\n", oas2jsonschema.Version())
		if len(os.Args) > 2 && (os.Args[2] == "--verbose" || os.Args[2] == "-verbose") {
			cliutil.Writef(os.Stdout, "%s", oas2jsonschema.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		err = commands.HandleConvert(os.Args[2:])
	case "schema":
		err = commands.HandleSchema(os.Args[2:])
	case "schemas":
		err = commands.HandleSchemas(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when none
// is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`oas2jsonschema - OpenAPI 3.0 to JSON Schema draft-04 converter

Usage:
  oas2jsonschema <command> [options]

Commands:
  convert     Convert every schema of OpenAPI documents
  schema      Convert a single Schema Object, or one named component
  schemas     Convert all component schemas, optionally one file each
  mcp         Run an MCP server over stdio
  version     Show version information (--verbose for build details)
  help        Show this help message

Examples:
  oas2jsonschema convert openapi.yaml -o openapi.schema.yaml
  oas2jsonschema schema --name Pet --format json openapi.yaml
  oas2jsonschema schemas --out-dir schemas/ openapi.yaml
  cat pet.yaml | oas2jsonschema schema -q -

Run 'oas2jsonschema <command> --help' for more information on a command.`)
}
