// Package segment splits a normalized document into ordered, identified
// sections using a cascade of structural header patterns.
package segment

import (
	"fmt"
	"strings"
)

// Section is one contiguous, identified unit of document text.
type Section struct {
	ID    string
	Title string
	Body  string
}

// Options controls header recognition.
type Options struct {
	// SpelledOutHeaders also accepts "SECTION"/"Section" headers in addition
	// to the abbreviated "SEC."/"Sec." form.
	SpelledOutHeaders bool
	// MaxSectionMatches rejects pathological over-matching of the numbered
	// strategy; beyond this count the cascade falls through to the coarser
	// strategies. Defaults to 800.
	MaxSectionMatches int
}

const defaultMaxSectionMatches = 800

func (o Options) withDefaults() Options {
	if o.MaxSectionMatches <= 0 {
		o.MaxSectionMatches = defaultMaxSectionMatches
	}
	return o
}

// strategy scans text for one kind of structural header and returns the
// resulting sections, or nil when the pattern does not apply.
type strategy func(text string, opts Options) []Section

// The cascade is strictly first-match-wins: exactly one strategy level is
// active per call.
var cascade = []strategy{
	numberedSections,
	divisionBlocks,
	titleBlocks,
	subtitleBlocks,
}

// Split segments text into document-order sections. It never fails: when no
// structural headers are found the whole document is returned as a single
// section with id "ALL".
func Split(text string, opts Options) []Section {
	opts = opts.withDefaults()
	for _, s := range cascade {
		if secs := s(text, opts); len(secs) > 0 {
			return dedupeIDs(secs)
		}
	}
	return []Section{{ID: "ALL", Title: "FULL TEXT", Body: strings.TrimSpace(text)}}
}

// dedupeIDs enforces id uniqueness; a repeated header number gets a
// disambiguating suffix in encounter order.
func dedupeIDs(secs []Section) []Section {
	seen := make(map[string]int, len(secs))
	for i := range secs {
		id := secs[i].ID
		if n, dup := seen[id]; dup {
			seen[id] = n + 1
			secs[i].ID = fmt.Sprintf("%s-%d", id, n+1)
			continue
		}
		seen[id] = 1
	}
	return secs
}
