package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for fuzzy matching.
// The normalization pipeline:
// 1. Tokenize CamelCase.
// 2. Case-fold to lower.
// 3. Strip separators (_, -, spaces).
func NormalizeIdent(s string) string {
	// First expand CamelCase before lowercasing
	tokens := tokenizeCamelCase(s)

	// Join, lowercase, and strip separators
	joined := strings.Join(tokens, "")
	joined = strings.ToLower(joined)
	joined = stripSeparators(joined)

	return joined
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "publishedAt" -> ["published", "At"]
//   - "wordCount" -> ["word", "Count"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "getHTTPResponse" -> ["get", "HTTP", "Response"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Handle separators - start a new token
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i == 0 {
			current.WriteRune(r)

			continue
		}

		if shouldStartNewToken(runes, i) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)
	isPrevSep := isSeparator(prevRune)

	// Transition from lowercase to uppercase: start new token
	// e.g., "wordCount" -> split before 'C'
	if isUpper && !isPrevUpper && !isPrevSep {
		return true
	}

	// End of acronym: check if next character is lowercase
	// e.g., "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if isUpper && isPrevUpper && hasNextLower {
		return true
	}

	return false
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// TokenizeIdent splits an identifier into normalized lowercase tokens.
// Useful for more advanced matching algorithms.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// SnakeCase renders an identifier in lower snake_case, e.g.
// "ContentFragment" -> "content_fragment".
func SnakeCase(s string) string {
	return strings.Join(TokenizeIdent(s), "_")
}
