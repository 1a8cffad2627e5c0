package fetch

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// blockEnd tags get a trailing newline so paragraph structure survives
// flattening.
var blockEnd = map[string]bool{
	"p": true, "div": true, "section": true, "li": true, "tr": true,
	"td": true, "thead": true, "tbody": true, "pre": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// HTMLToText flattens an HTML page to plain text. Scripts, styles and site
// chrome are dropped; list items keep a bullet so enumerated clauses stay
// readable.
func HTMLToText(raw string) string {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		// html.Parse only fails on reader errors; a string reader never
		// produces one, but fall back to tag stripping just in case.
		return cleanupText(tagRe.ReplaceAllString(raw, " "))
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "header", "footer":
				return
			case "br":
				buf.WriteString("\n")
			case "li":
				buf.WriteString(" • ")
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			if n.Data == "p" {
				buf.WriteString("\n\n")
			} else if blockEnd[n.Data] {
				buf.WriteString("\n")
			}
		}
	}
	walk(doc)

	return cleanupText(buf.String())
}

var (
	tagRe      = regexp.MustCompile(`(?s)<[^>]+>`)
	horizWSRe  = regexp.MustCompile(`[ \t]+`)
	blankRunRe = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

func cleanupText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = horizWSRe.ReplaceAllString(s, " ")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
