// Package diagnostic provides structured warnings, errors, and
// "why this resolved" explanations for the model generator.
//
// Key capabilities:
//   - Unresolved field warnings with did-you-mean suggestions
//   - Union common-field omission reports
//   - Unknown scalar warnings
//   - Explanation of resolution decisions
package diagnostic
