package compare

import (
	"github.com/dgallion1/billtracer/internal/redline"
	"github.com/dgallion1/billtracer/internal/segment"
)

// minTitleSimilarity is the acceptance floor for fuzzy title matches.
const minTitleSimilarity = 0.90

// realign detects wholesale renumbering between two section lists. It
// activates only when the id overlap is below half of the smaller side;
// ordinary add/remove churn never triggers it. The returned mapping is
// old id -> new id for sections judged to be the same logical section.
func realign(old, new []segment.Section) map[string]string {
	oldIDs := make(map[string]bool, len(old))
	for _, s := range old {
		oldIDs[s.ID] = true
	}
	newIDs := make(map[string]bool, len(new))
	for _, s := range new {
		newIDs[s.ID] = true
	}

	shared := 0
	for id := range oldIDs {
		if newIDs[id] {
			shared++
		}
	}
	if 2*shared >= min(len(old), len(new)) {
		return nil
	}

	mapping := make(map[string]string)
	used := make(map[string]bool)
	for _, o := range old {
		if newIDs[o.ID] {
			continue
		}
		bestID, best := "", 0.0
		for _, n := range new {
			if oldIDs[n.ID] || used[n.ID] {
				continue
			}
			if r := redline.Similarity(o.Title, n.Title); r > best {
				best, bestID = r, n.ID
			}
		}
		if best >= minTitleSimilarity {
			mapping[o.ID] = bestID
			used[bestID] = true
		}
	}
	return mapping
}
