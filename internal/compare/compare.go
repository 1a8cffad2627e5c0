package compare

import (
	"sort"

	"github.com/dgallion1/billtracer/internal/classify"
	"github.com/dgallion1/billtracer/internal/redline"
	"github.com/dgallion1/billtracer/internal/segment"
	"github.com/dgallion1/billtracer/internal/textnorm"
)

// Compare normalizes and segments both raw texts, realigns renumbered
// sections, and classifies every section-level difference into an ordered
// ChangeSet. The only possible error is an invalid Config.
func Compare(oldRaw, newRaw string, cfg Config) (*ChangeSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := segment.Options{
		SpelledOutHeaders: cfg.SpelledOutHeaders,
		MaxSectionMatches: cfg.MaxSectionMatches,
	}
	oldSecs := segment.Split(textnorm.Normalize(oldRaw), opts)
	newSecs := segment.Split(textnorm.Normalize(newRaw), opts)

	// A renumbered section is keyed, diffed and reported under its new id.
	remap := realign(oldSecs, newSecs)
	oldByID := make(map[string]segment.Section, len(oldSecs))
	for _, s := range oldSecs {
		id := s.ID
		if mapped, ok := remap[id]; ok {
			id = mapped
		}
		oldByID[id] = s
	}
	newByID := make(map[string]segment.Section, len(newSecs))
	for _, s := range newSecs {
		newByID[s.ID] = s
	}

	ids := make([]string, 0, len(oldByID)+len(newByID))
	seen := make(map[string]bool, len(oldByID)+len(newByID))
	for id := range oldByID {
		ids = append(ids, id)
		seen[id] = true
	}
	for id := range newByID {
		if !seen[id] {
			ids = append(ids, id)
		}
	}
	// Short ids before long, then lexicographic: low section numbers first,
	// synthesized fallback ids such as ALL last.
	sort.Slice(ids, func(i, j int) bool { return idLess(ids[i], ids[j]) })

	cs := &ChangeSet{}
	for _, id := range ids {
		oldSec, inOld := oldByID[id]
		newSec, inNew := newByID[id]

		switch {
		case inOld && !inNew:
			cs.Stats.Removed++
			cs.Records = append(cs.Records, ChangeRecord{
				SectionID: id,
				Title:     oldSec.Title,
				Status:    StatusRemoved,
				IsApprops: classify.IsAppropriations(oldSec.Body),
				Redline:   redline.Doc{{Type: redline.SpanDeleted, Text: RemovedNotice}},
			})

		case inNew && !inOld:
			cs.Stats.Added++
			cs.Records = append(cs.Records, ChangeRecord{
				SectionID: id,
				Title:     newSec.Title,
				Status:    StatusAdded,
				Tags:      classify.Tags("", newSec.Body),
				IsApprops: classify.IsAppropriations(newSec.Body),
				Redline:   redline.Doc{{Type: redline.SpanInserted, Text: newSec.Body}},
			})

		default:
			cs.compareBodies(id, oldSec, newSec, cfg)
		}
	}

	// Appropriations-flagged records first, then the shared id key.
	sort.SliceStable(cs.Records, func(i, j int) bool {
		a, b := cs.Records[i], cs.Records[j]
		if a.IsApprops != b.IsApprops {
			return a.IsApprops
		}
		return idLess(a.SectionID, b.SectionID)
	})

	return cs, nil
}

// compareBodies decides between Unchanged and Modified for a section present
// in both versions.
func (cs *ChangeSet) compareBodies(id string, oldSec, newSec segment.Section, cfg Config) {
	title := newSec.Title
	if title == "" {
		title = oldSec.Title
	}

	unchanged := func(body string) {
		cs.Stats.Unchanged++
		cs.Unchanged = append(cs.Unchanged, UnchangedRecord{
			SectionID: id,
			Title:     title,
			Body:      body,
		})
	}

	before, after := oldSec.Body, newSec.Body
	if before == after {
		unchanged(before)
		return
	}
	if textnorm.CosmeticallyEqual(before, after) {
		unchanged(after)
		return
	}

	doc, changed, ratio := redline.Align(before, after)
	if changed < cfg.MinDiffTokens || ratio >= cfg.MinEqualRatio {
		unchanged(after)
		return
	}

	cs.Stats.Modified++
	cs.Records = append(cs.Records, ChangeRecord{
		SectionID: id,
		Title:     title,
		Status:    StatusModified,
		Tags:      classify.Tags(before, after),
		IsApprops: classify.IsAppropriations(before + " " + after),
		Redline:   doc,
	})
}

// idLess orders section ids shortest-first, then lexicographically.
func idLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
