// Package redline computes token-level alignments between two text bodies,
// producing both a span-annotated redline and a change-magnitude signal.
package redline

import (
	"regexp"
	"strings"
)

// tokenRe captures alternating word and whitespace runs so that the token
// sequence concatenates back to the original string exactly.
var tokenRe = regexp.MustCompile(`\S+|\s+`)

// Tokenize splits s into whitespace-preserving tokens for the visual redline.
func Tokenize(s string) []string {
	return tokenRe.FindAllString(s, -1)
}

// WordTokens splits s into whitespace-collapsed word tokens. This second
// tokenization feeds only the magnitude computation, so formatting-only edits
// do not inflate the change signal.
func WordTokens(s string) []string {
	return strings.Fields(s)
}
