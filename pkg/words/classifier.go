package words

import "strings"

// Classifier recognizes one identifier style and splits tokens written in it.
type Classifier interface {
	// Name identifies the style, e.g. "camelCase"
	Name() string

	// Split returns the lowercase parts of token, or false if token is not in this style
	Split(token string) ([]string, bool)
}

// CamelCase matches identifiers such as thisIsMyFunction.
type CamelCase struct{}

func (CamelCase) Name() string { return "camelCase" }

func (CamelCase) Split(token string) ([]string, bool) {
	return ParseCamelCase(token)
}

// SnakeCase matches identifiers such as my_function.
type SnakeCase struct{}

func (SnakeCase) Name() string { return "snake_case" }

func (SnakeCase) Split(token string) ([]string, bool) {
	return ParseSnakeCase(token)
}

// Identity matches every token and returns it lowercased as a single word.
type Identity struct{}

func (Identity) Name() string { return "identity" }

func (Identity) Split(token string) ([]string, bool) {
	return []string{strings.ToLower(token)}, true
}

// DefaultClassifiers is the lookup order used by Decompose.
// The last entry always matches.
var DefaultClassifiers = []Classifier{CamelCase{}, SnakeCase{}, Identity{}}

// Decompose splits token with DefaultClassifiers.
func Decompose(token string) []string {
	return DecomposeWith(DefaultClassifiers, token)
}

// DecomposeWith returns the parts produced by the first classifier that
// accepts token. If none does, the lowercased token is returned on its own.
func DecomposeWith(classifiers []Classifier, token string) []string {
	for _, c := range classifiers {
		if parts, ok := c.Split(token); ok {
			return parts
		}
	}
	return []string{strings.ToLower(token)}
}
