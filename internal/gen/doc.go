// Package gen renders assembled model trees into Go source files.
//
// Generation uses text/template plus string builders for the struct
// bodies, then runs the result through goimports, which both formats
// the file and attaches imports for mapped scalar types.
//
// Output patterns:
//   - One file per fragment, named after it in snake case
//   - Hoisted shapes as named struct declarations in dependency order
//   - Nested shapes as inline anonymous structs at the reference site
//   - Discriminated unions as a Typename member plus pointer variants
//   - Optional getters and required-member validators
package gen
