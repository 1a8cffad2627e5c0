package segment

import (
	"fmt"
	"regexp"
	"strings"
)

// Line-anchored header patterns. Anchoring at line start deliberately
// excludes in-prose cross-references such as "section 12 U.S.C.".
var (
	secAbbrevRe  = regexp.MustCompile(`(?m)^(?:SEC\.|Sec\.)\s+(\d+[A-Za-z\-]*)[.: ]`)
	secSpelledRe = regexp.MustCompile(`(?m)^(?:SEC\.|Sec\.|SECTION|Section)\s+(\d+[A-Za-z\-]*)[.: ]`)

	secTitleAbbrevRe  = regexp.MustCompile(`^(?:SEC\.|Sec\.)\s+\d+[A-Za-z\-]*[.: ]\s*(.*)$`)
	secTitleSpelledRe = regexp.MustCompile(`^(?:SEC\.|Sec\.|SECTION|Section)\s+\d+[A-Za-z\-]*[.: ]\s*(.*)$`)

	divisionRe = regexp.MustCompile(`(?m)^DIVISION\s+[A-Z](?:\s*[\x{2014}-].*)?$`)
	titleRe    = regexp.MustCompile(`(?m)^TITLE\s+[IVXLC]+(?:\s*[\x{2014}-].*)?$`)
	subtitleRe = regexp.MustCompile(`(?m)^SUBTITLE\s+[A-Z](?:\s*[\x{2014}-].*)?$`)
)

// numberedSections recognizes statutory "SEC. n." headers. The captured
// numeral (plus optional letter suffix) becomes the section id.
func numberedSections(text string, opts Options) []Section {
	headerRe, headTitleRe := secAbbrevRe, secTitleAbbrevRe
	if opts.SpelledOutHeaders {
		headerRe, headTitleRe = secSpelledRe, secTitleSpelledRe
	}

	matches := headerRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 || len(matches) > opts.MaxSectionMatches {
		return nil
	}

	secs := make([]Section, 0, len(matches))
	for i, m := range matches {
		id := text[m[2]:m[3]]
		start := m[0]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		block := strings.TrimSpace(text[start:end])

		head, body, _ := strings.Cut(block, "\n")
		title := ""
		if tm := headTitleRe.FindStringSubmatch(head); tm != nil {
			title = strings.TrimSpace(tm[1])
		}
		if title == "" {
			title = "Section " + id
		}
		secs = append(secs, Section{
			ID:    id,
			Title: title,
			Body:  strings.TrimSpace(body),
		})
	}
	return secs
}

func divisionBlocks(text string, opts Options) []Section {
	return headerBlocks(text, divisionRe, "DIV")
}

func titleBlocks(text string, opts Options) []Section {
	return headerBlocks(text, titleRe, "TITLE")
}

func subtitleBlocks(text string, opts Options) []Section {
	return headerBlocks(text, subtitleRe, "SUB")
}

// headerBlocks splits text on coarse structural headers. Ids are synthesized
// in encounter order (e.g. DIV001); the matched header line is the title.
func headerBlocks(text string, re *regexp.Regexp, idPrefix string) []Section {
	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	secs := make([]Section, 0, len(matches))
	for i, m := range matches {
		header := strings.TrimSpace(text[m[0]:m[1]])
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		block := strings.TrimSpace(text[m[0]:end])
		secs = append(secs, Section{
			ID:    fmt.Sprintf("%s%03d", idPrefix, i+1),
			Title: header,
			Body:  strings.TrimSpace(strings.TrimPrefix(block, header)),
		})
	}
	return secs
}
