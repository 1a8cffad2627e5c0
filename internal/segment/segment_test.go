package segment

import (
	"fmt"
	"strings"
	"testing"
)

func TestSplit_NumberedSections(t *testing.T) {
	text := "SEC. 1. Short title.\nThis Act may be cited as the Test Act.\n" +
		"SEC. 2. Funding.\nThere is appropriated $5,000,000.\n" +
		"Sec. 3A. Definitions.\nIn this Act, terms apply."
	secs := Split(text, Options{})

	if len(secs) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(secs))
	}
	wantIDs := []string{"1", "2", "3A"}
	wantTitles := []string{"Short title.", "Funding.", "Definitions."}
	for i := range wantIDs {
		if secs[i].ID != wantIDs[i] {
			t.Errorf("section %d: expected id %q, got %q", i, wantIDs[i], secs[i].ID)
		}
		if secs[i].Title != wantTitles[i] {
			t.Errorf("section %d: expected title %q, got %q", i, wantTitles[i], secs[i].Title)
		}
	}
	if secs[1].Body != "There is appropriated $5,000,000." {
		t.Errorf("unexpected body: %q", secs[1].Body)
	}
}

func TestSplit_InProseReferenceIgnored(t *testing.T) {
	// "Sec. 12" mid-line is a cross-reference, not a header.
	text := "SEC. 1. Short title.\nAs defined in Sec. 12 of title 12 U.S.C., terms apply."
	secs := Split(text, Options{})
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	if secs[0].ID != "1" {
		t.Errorf("expected id %q, got %q", "1", secs[0].ID)
	}
}

func TestSplit_SpelledOutHeaders(t *testing.T) {
	text := "SECTION 1. Short title.\nBody one.\nSECTION 2. More.\nBody two."

	// Without the option, no numbered headers are found and no coarser
	// headers exist either, so the whole-document fallback applies.
	secs := Split(text, Options{})
	if len(secs) != 1 || secs[0].ID != "ALL" {
		t.Fatalf("expected ALL fallback, got %+v", secs)
	}

	secs = Split(text, Options{SpelledOutHeaders: true})
	if len(secs) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(secs))
	}
	if secs[0].ID != "1" || secs[1].ID != "2" {
		t.Errorf("expected ids 1,2, got %q,%q", secs[0].ID, secs[1].ID)
	}
}

func TestSplit_EmptyHeaderTitleSynthesized(t *testing.T) {
	text := "SEC. 7.\nBody text here."
	secs := Split(text, Options{})
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	if secs[0].Title != "Section 7" {
		t.Errorf("expected synthesized title, got %q", secs[0].Title)
	}
}

func TestSplit_OverMatchingFallsThrough(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "SEC. %d. Heading.\nBody.\n", i)
	}
	secs := Split(b.String(), Options{MaxSectionMatches: 10})
	if len(secs) != 1 || secs[0].ID != "ALL" {
		t.Fatalf("expected fallback past the match bound, got %d sections", len(secs))
	}
}

func TestSplit_DivisionFallback(t *testing.T) {
	text := "DIVISION A—DEPARTMENT OF DEFENSE\nDefense text.\nDIVISION B\nOther text."
	secs := Split(text, Options{})
	if len(secs) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(secs))
	}
	if secs[0].ID != "DIV001" || secs[1].ID != "DIV002" {
		t.Errorf("expected DIV001/DIV002, got %q/%q", secs[0].ID, secs[1].ID)
	}
	if secs[0].Title != "DIVISION A—DEPARTMENT OF DEFENSE" {
		t.Errorf("unexpected title %q", secs[0].Title)
	}
	if secs[0].Body != "Defense text." {
		t.Errorf("unexpected body %q", secs[0].Body)
	}
}

func TestSplit_TitleAndSubtitleFallbacks(t *testing.T) {
	text := "TITLE IV—APPROPRIATIONS\nMoney text.\nTITLE V\nMore."
	secs := Split(text, Options{})
	if len(secs) != 2 || secs[0].ID != "TITLE001" {
		t.Fatalf("expected TITLE blocks, got %+v", secs)
	}

	text = "SUBTITLE A\nAlpha.\nSUBTITLE B\nBeta."
	secs = Split(text, Options{})
	if len(secs) != 2 || secs[1].ID != "SUB002" {
		t.Fatalf("expected SUB blocks, got %+v", secs)
	}
}

func TestSplit_DivisionWinsOverTitle(t *testing.T) {
	// Strictly first-match-wins: divisions suppress title segmentation.
	text := "DIVISION A\nIntro.\nTITLE I\nInner title text."
	secs := Split(text, Options{})
	if len(secs) != 1 {
		t.Fatalf("expected 1 division section, got %d", len(secs))
	}
	if secs[0].ID != "DIV001" {
		t.Errorf("expected DIV001, got %q", secs[0].ID)
	}
}

func TestSplit_WholeDocumentFallback(t *testing.T) {
	secs := Split("  no headers anywhere in this text  ", Options{})
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	if secs[0].ID != "ALL" || secs[0].Title != "FULL TEXT" {
		t.Errorf("expected ALL/FULL TEXT, got %q/%q", secs[0].ID, secs[0].Title)
	}
	if secs[0].Body != "no headers anywhere in this text" {
		t.Errorf("expected trimmed body, got %q", secs[0].Body)
	}
}

func TestSplit_DuplicateIDsDisambiguated(t *testing.T) {
	text := "SEC. 1. First.\nBody one.\nSEC. 1. Again.\nBody two."
	secs := Split(text, Options{})
	if len(secs) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(secs))
	}
	if secs[0].ID == secs[1].ID {
		t.Errorf("ids must be unique, both %q", secs[0].ID)
	}
}
