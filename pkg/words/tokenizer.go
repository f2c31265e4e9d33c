// Package words turns lines of source text into the lowercase words the
// checker looks up: tokens are extracted first, then split by identifier style.
package words

import (
	"strings"

	"github.com/aqbifzl/rscheck/internal/utils"
)

// ExtractWords returns the tokens of line in order of occurrence.
// A token is a maximal run of ASCII letters, digits and underscores that
// contains at least one letter; runs of only digits and underscores are dropped.
func ExtractWords(line string) []string {
	var (
		tokens    []string
		current   strings.Builder
		hasLetter bool
	)

	flush := func() {
		if hasLetter {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		hasLetter = false
	}

	for _, r := range line {
		if !utils.IsWordChar(r) {
			flush()
			continue
		}
		current.WriteRune(r)
		if utils.IsASCIILetter(r) {
			hasLetter = true
		}
	}
	flush()

	return tokens
}
