// Package match provides name normalization, Levenshtein distance
// calculation, and did-you-mean ranking for unresolved field diagnostics.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - SuggestNames: ranks candidate names for a misspelled field
//   - SnakeCase: renders identifiers for generated filenames
package match
