// Package render produces the single-page comparison viewer.
package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dgallion1/billtracer/internal/compare"
)

// Meta carries everything about the page that isn't the change set itself.
type Meta struct {
	Label     string
	StageA    string
	StageB    string
	PresetKey string
	Version   string
	Generated time.Time
	Options   []PresetOption
}

// PresetOption is one entry in the bill-switcher dropdown.
type PresetOption struct {
	Key   string
	Label string
}

type navItem struct {
	Anchor string
	Status compare.Status
	SecID  string
	Title  string
}

type block struct {
	ID       string
	Status   compare.Status
	Title    string
	Tags     []string
	TagsAttr string
	Approps  bool
	Hidden   bool
	Body     template.HTML
}

type topItem struct {
	Anchor string
	SecID  string
	Title  string
	Status compare.Status
}

type pageData struct {
	Meta     Meta
	MetaLine string
	Stats    compare.Stats
	Nav      []navItem
	Blocks   []block
	Top      []topItem
	CSS      template.CSS
	JS       template.JS
}

// BuildPage renders the full viewer HTML for one change set.
func BuildPage(meta Meta, cs *compare.ChangeSet) (string, error) {
	data := pageData{
		Meta:  meta,
		Stats: cs.Stats,
		CSS:   template.CSS(pageCSS),
		JS:    template.JS(pageJS),
	}
	data.MetaLine = fmt.Sprintf("%s — Comparing %s → %s • %s • Generated %s",
		meta.Label, meta.StageA, meta.StageB, meta.Version,
		meta.Generated.Format("2006-01-02 15:04"))

	for _, rec := range cs.Records {
		anchor := ChangeAnchor(rec.SectionID, rec.Redline)
		tags := make([]string, 0, len(rec.Tags))
		for _, t := range rec.Tags {
			tags = append(tags, string(t))
		}
		data.Nav = append(data.Nav, navItem{
			Anchor: anchor,
			Status: rec.Status,
			SecID:  rec.SectionID,
			Title:  truncate(rec.Title, 100),
		})
		data.Blocks = append(data.Blocks, block{
			ID:       rec.SectionID,
			Status:   rec.Status,
			Title:    rec.Title,
			Tags:     tags,
			TagsAttr: strings.Join(tags, ","),
			Approps:  rec.IsApprops,
			Body:     RedlineHTML(rec.SectionID, rec.Redline),
		})
		if rec.IsApprops && len(data.Top) < 5 {
			data.Top = append(data.Top, topItem{
				Anchor: anchor,
				SecID:  rec.SectionID,
				Title:  truncate(rec.Title, 140),
				Status: rec.Status,
			})
		}
	}

	// Unchanged sections ship hidden; a toolbar toggle reveals them.
	for _, u := range cs.Unchanged {
		data.Blocks = append(data.Blocks, block{
			ID:     u.SectionID,
			Status: "Unchanged",
			Title:  u.Title,
			Hidden: true,
			Body:   template.HTML(template.HTMLEscapeString(u.Body)),
		})
	}

	var buf strings.Builder
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>BillTracer — Bill Evolution</title>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <style>{{.CSS}}</style>
</head>
<body>
<header>
  <div class="toolbar">
    <select id="bill-switch">
      {{- range .Meta.Options}}
      <option value="{{.Key}}"{{if eq .Key $.Meta.PresetKey}} selected{{end}}>{{.Label}}</option>
      {{- end}}
    </select>
    <button id="go-switch">View comparison</button>
  </div>
  <h1>BillTracer — Bill Evolution (Appropriations)</h1>
  <small class="muted">{{.MetaLine}}</small>
  <div class="counts">
    <span>Modified: <strong>{{.Stats.Modified}}</strong></span>
    <span>Added: <strong>{{.Stats.Added}}</strong></span>
    <span>Removed: <strong>{{.Stats.Removed}}</strong></span>
    <span>Unchanged: <strong>{{.Stats.Unchanged}}</strong></span>
  </div>
  <div class="top5">
    <strong>Top likely funding changes</strong>
    <ul>
      {{- range .Top}}
      <li><a href="#{{.Anchor}}">{{.SecID}}</a> — {{.Title}} <span class="chip status {{.Status}}">{{.Status}}</span></li>
      {{- else}}
      <li>No likely funding changes found.</li>
      {{- end}}
    </ul>
  </div>
</header>
<div class="wrap">
  <nav>
    <div class="controls">
      <input id="search" type="text" placeholder="Filter by text, section id, or content…" />
      <button class="btn" data-filter="Modified">Modified</button>
      <button class="btn" data-filter="Added">Added</button>
      <button class="btn" data-filter="Removed">Removed</button>
      <button class="btn" data-filter="Funding">Funding</button>
      <button class="btn" data-filter="Authority">Authority</button>
      <button class="btn" data-filter="Reporting">Reporting</button>
      <label style="display:flex;align-items:center;gap:6px;margin-left:auto;">
        <input id="toggle-unchanged" type="checkbox" /> Show unchanged
      </label>
    </div>
    {{- range .Nav}}
    <a class="toc-link" href="#{{.Anchor}}"><span class="chip status {{.Status}}">{{.Status}}</span> <strong>{{.SecID}}</strong><span class="sub">{{.Title}}</span></a>
    {{- else}}
    <em class="empty">No changed sections detected.</em>
    {{- end}}
  </nav>
  <main>
    {{- range .Blocks}}
    <section class="block" id="{{.ID}}" data-status="{{.Status}}" data-tags="{{.TagsAttr}}" data-title="{{.Title}}"{{if .Hidden}} style="display:none;"{{end}}>
      <h3>{{.Title}}</h3>
      <div>{{if .Approps}}<span class="chip approp">Appropriations</span> {{end}}<span class="chip {{if ne .Status "Unchanged"}}status {{end}}{{.Status}}">{{.Status}}</span>{{range .Tags}} <span class="chip tag">{{.}}</span>{{end}}</div>
      <pre>{{.Body}}</pre>
    </section>
    {{- else}}
    <p class="empty">No changed sections to display.</p>
    {{- end}}
  </main>
</div>
<script>{{.JS}}</script>
</body>
</html>
`))
