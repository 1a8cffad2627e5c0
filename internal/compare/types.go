// Package compare orchestrates normalization, segmentation, realignment,
// diffing and classification into an ordered change set for two versions of
// a document.
package compare

import (
	"github.com/dgallion1/billtracer/internal/classify"
	"github.com/dgallion1/billtracer/internal/redline"
)

// Status classifies one section-level change.
type Status string

const (
	StatusAdded    Status = "Added"
	StatusRemoved  Status = "Removed"
	StatusModified Status = "Modified"
)

// ChangeRecord is one materially changed section.
type ChangeRecord struct {
	SectionID string
	Title     string
	Status    Status
	Tags      []classify.Tag
	IsApprops bool
	Redline   redline.Doc
}

// UnchangedRecord is a section present in both versions whose bodies are
// judged equivalent.
type UnchangedRecord struct {
	SectionID string
	Title     string
	Body      string
}

// Stats tallies the change-set partitions; each count always equals the size
// of the corresponding partition.
type Stats struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Modified  int `json:"modified"`
	Unchanged int `json:"unchanged"`
}

// ChangeSet is the result of one document-pair comparison.
type ChangeSet struct {
	Records   []ChangeRecord
	Unchanged []UnchangedRecord
	Stats     Stats
}

// RemovedNotice is the fixed redline body for removed sections; the full
// removed text is deliberately not reproduced to keep noise low.
const RemovedNotice = "Section removed in newer version."
