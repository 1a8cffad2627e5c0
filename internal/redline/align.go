package redline

import "strings"

// SpanType tags one span of a redline document.
type SpanType int

const (
	SpanEqual SpanType = iota
	SpanInserted
	SpanDeleted
)

func (t SpanType) String() string {
	switch t {
	case SpanInserted:
		return "Inserted"
	case SpanDeleted:
		return "Deleted"
	default:
		return "Equal"
	}
}

// Span carries the exact original substring, trailing whitespace included, so
// that concatenating spans round-trips into readable text.
type Span struct {
	Type SpanType
	Text string
}

// Doc is an ordered redline: the span-annotated difference between two
// bodies.
type Doc []Span

// Before reconstructs the old body from Equal and Deleted spans.
func (d Doc) Before() string {
	var b strings.Builder
	for _, s := range d {
		if s.Type != SpanInserted {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// After reconstructs the new body from Equal and Inserted spans.
func (d Doc) After() string {
	var b strings.Builder
	for _, s := range d {
		if s.Type != SpanDeleted {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// Align diffs a against b. It returns the visual redline built over
// whitespace-preserving tokens, the changed-token count and the equal ratio
// computed over whitespace-collapsed word tokens.
func Align(a, b string) (Doc, int, float64) {
	doc := buildDoc(Tokenize(a), Tokenize(b))
	changed, ratio := Magnitude(a, b)
	return doc, changed, ratio
}

func buildDoc(aTok, bTok []string) Doc {
	var doc Doc
	for _, op := range newMatcher(aTok, bTok).opcodes() {
		aText := strings.Join(aTok[op.i1:op.i2], "")
		bText := strings.Join(bTok[op.j1:op.j2], "")
		switch op.tag {
		case opEqual:
			doc = append(doc, Span{SpanEqual, aText})
		case opDelete:
			doc = append(doc, Span{SpanDeleted, aText})
		case opInsert:
			doc = append(doc, Span{SpanInserted, bText})
		case opReplace:
			doc = append(doc, Span{SpanDeleted, aText}, Span{SpanInserted, bText})
		}
	}
	return doc
}

// Magnitude measures how much a and b differ. changed counts the token
// positions consumed by non-equal opcodes on either side (a replace is
// double-counted); ratio is equal tokens over the total positions occupied,
// 1.0 when both inputs are empty.
func Magnitude(a, b string) (changed int, ratio float64) {
	ops := newMatcher(WordTokens(a), WordTokens(b)).opcodes()
	equal, total := 0, 0
	for _, op := range ops {
		aSpan, bSpan := op.i2-op.i1, op.j2-op.j1
		if op.tag == opEqual {
			equal += aSpan
		} else {
			changed += aSpan + bSpan
		}
		total += max(aSpan, bSpan)
	}
	if total == 0 {
		return 0, 1.0
	}
	return changed, float64(equal) / float64(total)
}

// Similarity is a normalized, order-sensitive, character-level similarity
// ratio in [0,1]: twice the matched length over the combined length.
func Similarity(a, b string) float64 {
	ar, br := []rune(a), []rune(b)
	if len(ar) == 0 && len(br) == 0 {
		return 1.0
	}
	aTok := make([]string, len(ar))
	for i, r := range ar {
		aTok[i] = string(r)
	}
	bTok := make([]string, len(br))
	for i, r := range br {
		bTok[i] = string(r)
	}
	matched := 0
	for _, bl := range newMatcher(aTok, bTok).matchingBlocks() {
		matched += bl.size
	}
	return 2 * float64(matched) / float64(len(aTok)+len(bTok))
}
