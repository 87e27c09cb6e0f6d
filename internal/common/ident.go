package common

import (
	"strings"
	"unicode"
)

// IsValidIdent reports whether s is a legal identifier: a letter or
// underscore followed by letters, digits, or underscores.
func IsValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
		} else {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

// Capitalize returns s with its first byte uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
