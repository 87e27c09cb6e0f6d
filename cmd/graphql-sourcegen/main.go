// Package main provides the CLI entrypoint for graphql-sourcegen.
//
// graphql-sourcegen is a codegen tool that compiles GraphQL fragment
// definitions into typed Go model declarations:
//   - Parses schema SDL and fragment documents (gqlparser)
//   - Resolves every selected field against the schema, degrading to
//     string-like placeholders when the schema cannot answer
//   - Allocates deterministic model names and nesting scopes
//   - Emits gofmt-formatted model files, one per fragment
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
