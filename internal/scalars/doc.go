// Package scalars maps resolved leaf type names to target representations.
//
// The built-in table covers the five standard scalars; user-supplied
// mappings override it by name. Unknown scalars degrade to a string-like
// representation so generation can proceed without schema support for
// every custom scalar.
package scalars
