// Package classify tags section text with coarse subject categories and
// flags likely appropriations content. Detection is keyword-driven: the
// engine has no model of statutory semantics.
package classify

import (
	"regexp"
	"sort"
)

// Tag is a subject category attached to a change record.
type Tag string

const (
	TagAuthority Tag = "Authority"
	TagFunding   Tag = "Funding"
	TagReporting Tag = "Reporting"
)

var (
	fundingRe = regexp.MustCompile(
		`(?i)\$\s?\d|\bappropriat|\bauthorized to be appropriated\b|\bgrant\b|\bfund(?:s|ing)?\b`)
	authorityRe = regexp.MustCompile(
		`(?i)\bshall\b|\bmay not\b|\bpenalt`)
	reportingRe = regexp.MustCompile(
		`(?i)not later than|\breport to congress\b|\bgao\b|\breporting requirement`)

	// appropsRe is deliberately broader than the Funding tag: it drives
	// prioritization, not categorization.
	appropsRe = regexp.MustCompile(
		`(?i)\$\s?\d|\bappropriat(?:e|ion|ed|ions)\b|\bauthorized to be appropriated\b|` +
			`\btransfer\b|\bobligation\b|\bresciss|\boffset\b|\bgrant\b|` +
			`\bfund(?:s|ing)?\b|\bremain available\b`)
)

// Tags classifies a before/after body pair. The result is sorted and
// independent of argument order.
func Tags(before, after string) []Tag {
	text := before + " " + after
	var tags []Tag
	if fundingRe.MatchString(text) {
		tags = append(tags, TagFunding)
	}
	if authorityRe.MatchString(text) {
		tags = append(tags, TagAuthority)
	}
	if reportingRe.MatchString(text) {
		tags = append(tags, TagReporting)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// IsAppropriations reports whether text looks funding-related.
func IsAppropriations(text string) bool {
	return appropsRe.MatchString(text)
}
