package fetch

import (
	"fmt"
	"strings"
)

// Preset identifies a bill with a known-interesting pair of versions.
type Preset struct {
	Congress int
	Chamber  string
	Number   int
	V1       string
	V2       string
	Label    string
}

// Presets are bills that demo well: large, heavily amended, and available
// from every mirror.
var Presets = map[string]Preset{
	"hr3684-117": {Congress: 117, Chamber: "house", Number: 3684, V1: "ih", V2: "enr",
		Label: "H.R. 3684 (117th) — Infrastructure Investment & Jobs Act"},
	"hr748-116": {Congress: 116, Chamber: "house", Number: 748, V1: "ih", V2: "enr",
		Label: "H.R. 748 (116th) — CARES Act vehicle"},
	"hr133-116": {Congress: 116, Chamber: "house", Number: 133, V1: "ih", V2: "enr",
		Label: "H.R. 133 (116th) — Consolidated Appropriations Act, 2021"},
}

// PresetKeys is the display order for Presets.
var PresetKeys = []string{"hr3684-117", "hr748-116", "hr133-116"}

// StageLabel maps a version code to a human-readable stage name.
func StageLabel(ver string) string {
	switch strings.ToLower(ver) {
	case "ih":
		return "Introduced (House)"
	case "is":
		return "Introduced (Senate)"
	case "rh":
		return "Reported (House)"
	case "rs":
		return "Reported (Senate)"
	case "eh":
		return "Engrossed (House)"
	case "es":
		return "Engrossed (Senate)"
	case "enr":
		return "Enrolled"
	default:
		return strings.ToUpper(ver)
	}
}

func chamberPath(chamber string) string {
	if strings.HasPrefix(strings.ToLower(chamber), "h") {
		return "house-bill"
	}
	return "senate-bill"
}

func billType(chamber string) string {
	if strings.HasPrefix(strings.ToLower(chamber), "h") {
		return "hr"
	}
	return "s"
}

// PackageID builds the govinfo package id, e.g. BILLS-117hr3684ih.
func PackageID(congress int, chamber string, number int, ver string) string {
	return fmt.Sprintf("BILLS-%d%s%d%s", congress, billType(chamber), number, strings.ToLower(ver))
}

// Candidate is one mirror URL plus the format hint used to decode it.
type Candidate struct {
	Kind string
	URL  string
}

// Candidates lists mirror URLs for one bill version, most reliable first.
// govinfo plain text is preferred; congress.gov is the fallback of last
// resort because it rate-limits aggressively.
func Candidates(congress int, chamber string, number int, ver string) []Candidate {
	bp := chamberPath(chamber)
	bt := billType(chamber)
	pkg := PackageID(congress, chamber, number, ver)
	lv := strings.ToLower(ver)

	return []Candidate{
		{"gi_txt", fmt.Sprintf("https://www.govinfo.gov/content/pkg/%s/txt/%s.txt", pkg, pkg)},
		{"gi_xml", fmt.Sprintf("https://www.govinfo.gov/content/pkg/%s/xml/%s.xml", pkg, pkg)},
		{"gi_htm", fmt.Sprintf("https://www.govinfo.gov/content/pkg/%s/htm/%s.htm", pkg, pkg)},
		{"bulk_xml", fmt.Sprintf("https://www.govinfo.gov/bulkdata/BILLS/%d/%s/BILLS-%d%s%d%s.xml", congress, bt, congress, bt, number, lv)},
		{"bulk_htm", fmt.Sprintf("https://www.govinfo.gov/bulkdata/BILLS/%d/%s/BILLS-%d%s%d%s.htm", congress, bt, congress, bt, number, lv)},
		{"cg_txt", fmt.Sprintf("https://www.congress.gov/bill/%dth-congress/%s/%d/text/%s?format=txt", congress, bp, number, lv)},
		{"cg_html", fmt.Sprintf("https://www.congress.gov/bill/%dth-congress/%s/%d/text/%s", congress, bp, number, lv)},
	}
}
