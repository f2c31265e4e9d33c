package words

import (
	"strings"
	"unicode"

	"github.com/aqbifzl/rscheck/internal/utils"
)

// IsCamelCase reports whether s mixes lower and upper case letters with no two
// upper case letters side by side. Only letters and ASCII digits are allowed.
func IsCamelCase(s string) bool {
	var (
		lowerFound    bool
		upperFound    bool
		previousUpper bool
	)

	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			previousUpper = false
			lowerFound = true
		case unicode.IsUpper(r):
			if previousUpper {
				return false
			}
			previousUpper = true
			upperFound = true
		case !utils.IsASCIIDigit(r):
			return false
		}
	}

	return lowerFound && upperFound
}

// IsSnakeCase reports whether s has an inner underscore and at least one letter.
func IsSnakeCase(s string) bool {
	return strings.Contains(s, "_") &&
		utils.ContainsLetter(s) &&
		!strings.HasPrefix(s, "_") &&
		!strings.HasSuffix(s, "_")
}

// ParseCamelCase splits s before every upper case letter that follows at
// least one buffered character and lowercases the parts.
// ok is false when s is not camelCase.
func ParseCamelCase(s string) (parts []string, ok bool) {
	if !IsCamelCase(s) {
		return nil, false
	}

	var buffer strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) && buffer.Len() > 0 {
			parts = append(parts, strings.ToLower(buffer.String()))
			buffer.Reset()
		}
		buffer.WriteRune(r)
	}
	if buffer.Len() > 0 {
		parts = append(parts, strings.ToLower(buffer.String()))
	}

	return parts, true
}

// ParseSnakeCase splits s on every underscore and lowercases the parts.
// Consecutive underscores yield empty parts, which are kept.
// ok is false when s is not snake_case.
func ParseSnakeCase(s string) (parts []string, ok bool) {
	if !IsSnakeCase(s) {
		return nil, false
	}

	parts = strings.Split(s, "_")
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return parts, true
}
