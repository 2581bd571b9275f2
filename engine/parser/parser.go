// Package parser tokenizes raw player input. Intentionally dumb: no NLP,
// just whitespace splitting with quote handling.
package parser

import (
	"strings"
	"unicode"
)

// Tokenize splits a line on whitespace, keeping double-quoted runs as
// single tokens. Quote characters toggle a "reading quoted span" flag and
// are stripped from the output; there is no nesting or escaping.
func Tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	quoted := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case unicode.IsSpace(r) && !quoted:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}
