package classify

import "testing"

func hasTag(tags []Tag, want Tag) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func TestTags_Funding(t *testing.T) {
	cases := []string{
		"There is appropriated $5,000,000.",
		"such sums as may be necessary are authorized to be appropriated",
		"a GRANT shall be made",
		"Funding for the program",
	}
	for _, c := range cases {
		if !hasTag(Tags(c, ""), TagFunding) {
			t.Errorf("%q: expected Funding tag", c)
		}
	}
}

func TestTags_Authority(t *testing.T) {
	cases := []string{
		"The Secretary shall submit",
		"A State may not impose",
		"subject to a civil penalty",
	}
	for _, c := range cases {
		if !hasTag(Tags("", c), TagAuthority) {
			t.Errorf("%q: expected Authority tag", c)
		}
	}
}

func TestTags_Reporting(t *testing.T) {
	cases := []string{
		"Not later than 180 days after enactment",
		"the Comptroller General shall report to Congress",
		"reviewed by GAO annually",
		"a reporting requirement applies",
	}
	for _, c := range cases {
		if !hasTag(Tags(c, ""), TagReporting) {
			t.Errorf("%q: expected Reporting tag", c)
		}
	}
}

func TestTags_OrderIndependent(t *testing.T) {
	before := "The Secretary shall act."
	after := "There is appropriated $1,000."
	ab := Tags(before, after)
	ba := Tags(after, before)
	if len(ab) != len(ba) {
		t.Fatalf("tag counts differ: %v vs %v", ab, ba)
	}
	for i := range ab {
		if ab[i] != ba[i] {
			t.Errorf("tags differ at %d: %v vs %v", i, ab, ba)
		}
	}
}

func TestTags_Sorted(t *testing.T) {
	tags := Tags("The Secretary shall report to Congress.", "appropriated $9")
	want := []Tag{TagAuthority, TagFunding, TagReporting}
	if len(tags) != len(want) {
		t.Fatalf("expected %v, got %v", want, tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], tags[i])
		}
	}
}

func TestTags_NoMatch(t *testing.T) {
	if tags := Tags("a quiet definitional clause", ""); len(tags) != 0 {
		t.Errorf("expected no tags, got %v", tags)
	}
}

func TestIsAppropriations_BroaderThanFunding(t *testing.T) {
	// These trip the prioritization hint without carrying the Funding tag.
	cases := []string{
		"authority to transfer amounts between accounts",
		"incur an obligation before the deadline",
		"subject to rescission under this title",
		"treated as an offset against collections",
		"amounts shall remain available until expended",
	}
	for _, c := range cases {
		if !IsAppropriations(c) {
			t.Errorf("%q: expected appropriations hint", c)
		}
	}
	if IsAppropriations("a definitions section with nothing fiscal") {
		t.Error("expected no hint for neutral text")
	}
}
