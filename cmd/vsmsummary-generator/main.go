// Package main provides the CLI entrypoint for vsmsummary-generator.
//
// vsmsummary-generator derives the vsmsummary config of streaming-search
// schemas:
//   - Loads schemas from YAML files or annotated Go struct types
//   - Decides which summary fields need an explicit field map entry
//   - Writes one vsmsummary config per schema
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "derive":
		return deriveCmd(args[1:], stdout, stderr)
	case "explain":
		return explainCmd(args[1:], stdout, stderr)
	case "check":
		return checkCmd(args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return 0
	default:
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: vsmsummary-generator <command> [options] <schema>...")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  derive   Derive and write the vsmsummary config of each schema")
	fmt.Fprintln(w, "  explain  Print the mapping decision for every default summary field")
	fmt.Fprintln(w, "  check    Validate schemas only")
	fmt.Fprintln(w, "Schemas:")
	fmt.Fprintln(w, "  path/to/schema.yaml        YAML schema file")
	fmt.Fprintln(w, "  go:<pattern>#<Type>        annotated Go struct type")
	fmt.Fprintln(w, "Settings are read from VSMSUMMARY_* environment variables and .env.")
}
