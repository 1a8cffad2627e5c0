package render

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/dgallion1/billtracer/internal/redline"
)

// RedlineHTML renders a redline as escaped markup with <ins>/<del> wrappers.
// An invisible anchor named "{secID}-chg" lands just before the first change
// so navigation jumps to the edit, not the section top.
func RedlineHTML(secID string, doc redline.Doc) template.HTML {
	var buf strings.Builder
	anchored := false
	for _, span := range doc {
		esc := html.EscapeString(span.Text)
		if span.Type != redline.SpanEqual && !anchored {
			fmt.Fprintf(&buf, `<a id="%s-chg"></a>`, html.EscapeString(secID))
			anchored = true
		}
		switch span.Type {
		case redline.SpanDeleted:
			buf.WriteString("<del>" + esc + "</del>")
		case redline.SpanInserted:
			buf.WriteString("<ins>" + esc + "</ins>")
		default:
			buf.WriteString(esc)
		}
	}
	return template.HTML(buf.String())
}

// ChangeAnchor is the in-page target for a changed section. Sections whose
// redline has no marked span fall back to the section id itself.
func ChangeAnchor(secID string, doc redline.Doc) string {
	for _, span := range doc {
		if span.Type != redline.SpanEqual {
			return secID + "-chg"
		}
	}
	return secID
}
