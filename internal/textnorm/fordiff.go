package textnorm

import (
	"regexp"
	"strings"
)

var typoFolder = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
	"—", "-", "–", "-",
	"·", "*",
	"§", "Section ",
	" ", " ", " ", " ",
)

var (
	groupedNumber = regexp.MustCompile(`\b\d{1,3}(?:,\d{3})+\b`)
	anyWSPunct    = regexp.MustCompile(`\s+([,.;:])`)
	nonWordDollar = regexp.MustCompile(`[^\w$]+`)
)

// ForDiff canonicalizes text for change-magnitude comparison: typographic
// quotes, dashes and section marks are folded to ASCII equivalents and
// thousands separators are stripped so that purely typographic edits do not
// register as changes.
func ForDiff(s string) string {
	s = Normalize(s)
	s = typoFolder.Replace(s)
	s = groupedNumber.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, ",", "")
	})
	s = horizWS.ReplaceAllString(s, " ")
	s = anyWSPunct.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// CosmeticallyEqual reports whether two bodies differ only in punctuation,
// casing, whitespace or typography.
func CosmeticallyEqual(a, b string) bool {
	ca := nonWordDollar.ReplaceAllString(strings.ToLower(ForDiff(a)), "")
	cb := nonWordDollar.ReplaceAllString(strings.ToLower(ForDiff(b)), "")
	return ca == cb
}
