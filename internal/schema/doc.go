// Package schema provides the in-memory schema index and its type queries.
//
// It uses github.com/vektah/gqlparser/v2 to parse schema-definition-language
// files into a canonical model of objects, interfaces, unions, and leaf
// definitions.
//
// Key types:
//   - TypeRef: possibly-nullable, possibly-list-wrapped named type reference
//   - FieldDef: field name, type, deprecation, and description
//   - Schema: the index answering ResolveField and compatibility queries
package schema
