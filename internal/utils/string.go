package utils

import (
	"unicode"
)

// IsWordChar reports whether r may appear inside a token:
// an ASCII letter, an ASCII digit or an underscore.
func IsWordChar(r rune) bool {
	return IsASCIILetter(r) || IsASCIIDigit(r) || r == '_'
}

// IsASCIILetter checks for a-z and A-Z only
func IsASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// IsASCIIDigit checks for 0-9 only
func IsASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// ContainsLetter checks if a string has at least one letter
func ContainsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// WithinBounds reports whether the byte length of s lies in [minLen, maxLen].
func WithinBounds(s string, minLen, maxLen int) bool {
	return len(s) >= minLen && len(s) <= maxLen
}
