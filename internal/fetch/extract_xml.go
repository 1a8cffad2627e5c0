package fetch

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// blockXML lists the bill-DTD elements that start a new line of text. Both
// the camel-case legacy names and the dashed bulkdata names appear in the
// wild.
var blockXML = map[string]bool{
	"officialTitle": true, "official-title": true,
	"shortTitle": true, "short-title": true,
	"longTitle": true, "long-title": true,
	"title": true, "section": true, "subsection": true,
	"paragraph": true, "subparagraph": true, "text": true,
	"quotedBlock": true, "quoted-block": true,
}

// XMLToText flattens bill XML to plain text, keeping structural elements on
// their own lines. Notes are folded inline in parentheses.
func XMLToText(raw string) string {
	doc, err := xmlquery.Parse(strings.NewReader(raw))
	if err != nil {
		return cleanupText(tagRe.ReplaceAllString(raw, " "))
	}

	var buf strings.Builder
	var walk func(*xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		isNote := n.Type == xmlquery.ElementNode && n.Data == "note"
		isBlock := n.Type == xmlquery.ElementNode && blockXML[n.Data]
		switch {
		case isNote:
			buf.WriteString(" (Note: ")
		case isBlock:
			buf.WriteString("\n")
		}
		if n.Type == xmlquery.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		switch {
		case isNote:
			buf.WriteString(") ")
		case isBlock:
			buf.WriteString("\n")
		}
	}
	walk(doc)

	return cleanupText(buf.String())
}

// OfficialTitle pulls the bill's official title out of its XML, or "" when
// the document has none.
func OfficialTitle(raw string) string {
	doc, err := xmlquery.Parse(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	n := xmlquery.FindOne(doc, "//official-title")
	if n == nil {
		n = xmlquery.FindOne(doc, "//officialTitle")
	}
	if n == nil {
		return ""
	}
	return strings.Join(strings.Fields(n.InnerText()), " ")
}
