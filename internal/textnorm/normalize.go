// Package textnorm cleans whitespace and line-wrap artifacts out of raw
// document text so that segmentation and diffing see stable input.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	horizWS     = regexp.MustCompile(`[ \t]+`)
	beforePunct = regexp.MustCompile(`[ \t]+([,.;:])`)
	openParen   = regexp.MustCompile(`\([ \t]+`)
	closeParen  = regexp.MustCompile(`[ \t]+\)`)
	openBrack   = regexp.MustCompile(`\[[ \t]+`)
	closeBrack  = regexp.MustCompile(`[ \t]+\]`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
	lineEnd     = regexp.MustCompile(`[.;:)]\s*$`)
)

// Normalize cleans raw document text: unified line endings, no NBSP, single
// spaces, no whitespace hugging punctuation or brackets, wrapped prose lines
// rejoined into logical lines, and blank-line runs collapsed. It is total and
// idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, " ", " ")
	s = horizWS.ReplaceAllString(s, " ")
	s = rewrapLines(s)
	// Tighten punctuation after rewrapping: joining a continuation line that
	// starts with "," or "." introduces a space before the punctuation, so the
	// hugging rules must see the rejoined text.
	s = beforePunct.ReplaceAllString(s, "$1")
	s = openParen.ReplaceAllString(s, "(")
	s = closeParen.ReplaceAllString(s, ")")
	s = openBrack.ReplaceAllString(s, "[")
	s = closeBrack.ReplaceAllString(s, "]")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// rewrapLines joins consecutive non-blank lines into one logical line until a
// line ends in '.', ';', ':' or ')'. Blank lines are kept as paragraph breaks.
func rewrapLines(s string) string {
	var out []string
	var buf []string

	flush := func() {
		if len(buf) > 0 {
			out = append(out, strings.Join(buf, " "))
			buf = buf[:0]
		}
	}

	for _, ln := range strings.Split(s, "\n") {
		t := strings.TrimSpace(ln)
		if t == "" {
			flush()
			out = append(out, "")
			continue
		}
		buf = append(buf, t)
		if lineEnd.MatchString(t) {
			flush()
		}
	}
	flush()

	return strings.Join(out, "\n")
}
