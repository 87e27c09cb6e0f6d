// Package fragment provides the fragment AST consumed by resolution and
// its query-document frontend.
//
// The frontend uses github.com/vektah/gqlparser/v2 in parser-only mode:
// documents have to parse, but are not validated against a schema, since
// schema input is optional for the whole pipeline.
package fragment
