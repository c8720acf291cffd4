package archetype

import (
	"github.com/RViz3d/archetype-manager/internal/domain/character"
)

// Kind classifies how an archetype feature interacts with the base feature list.
type Kind string

const (
	// KindReplacement wholly supersedes a base feature's identity at its slot
	KindReplacement Kind = "replacement"

	// KindModification layers behavior onto a base feature without changing
	// its identity in the list; realized via a copy record
	KindModification Kind = "modification"

	// KindAdditive has no base counterpart; purely inserted
	KindAdditive Kind = "additive"

	// KindUnknown means nothing could be extracted from the description
	KindUnknown Kind = "unknown"
)

// Origin records how an archetype feature entry was produced.
type Origin string

const (
	OriginAutoParsed Origin = "auto_parsed"
	OriginManual     Origin = "manual"
)

// Feature is one leveled feature override inside an archetype.
type Feature struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Kind        Kind   `json:"kind"`
	Target      string `json:"target,omitempty"` // normalized name of the base feature it replaces/modifies
	Description string `json:"description,omitempty"`
	SourceID    string `json:"source_id,omitempty"` // the feature's own compendium reference
	Origin      Origin `json:"origin"`

	// MatchedRef is the base feature this entry consumes. Populated during
	// diff generation; manually authored entries may pre-supply it.
	MatchedRef *character.FeatureReference `json:"matched_ref,omitempty"`
}

// Archetype is a named bundle of leveled feature overrides for one class.
type Archetype struct {
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	ClassTag string     `json:"class_tag"`
	Features []*Feature `json:"features"`
}

// Status tags one entry of a diff between a base feature list and an archetype.
type Status string

const (
	StatusUnchanged Status = "unchanged"
	StatusRemoved   Status = "removed"
	StatusAdded     Status = "added"
	StatusModified  Status = "modified"
)

// DiffEntry is one status-tagged line of a leveled diff. A diff is a total
// account of the union of base and archetype features: every base entry
// appears exactly once (Unchanged, Removed, or the base half of a Modified
// pair) and every non-additive archetype feature appears exactly once as the
// counterpart of an Added or Modified entry.
type DiffEntry struct {
	Status   Status                      `json:"status"`
	Level    int                         `json:"level"`
	Name     string                      `json:"name"`
	Original *character.FeatureReference `json:"original,omitempty"`
	Feature  *Feature                    `json:"feature,omitempty"`
}

// Conflict describes a feature-slot collision between two archetype diffs.
type Conflict struct {
	RefID  string `json:"ref_id,omitempty"`
	Level  int    `json:"level"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// SourceDoc is a raw feature document loaded from the content source.
type SourceDoc struct {
	ID          string
	Name        string
	Description string
}

// Parse builds an archetype from raw feature documents, classifying each
// description into kind, level, and target.
func Parse(name, classTag string, docs []SourceDoc) *Archetype {
	arch := &Archetype{
		Name:     name,
		Slug:     Slugify(name),
		ClassTag: classTag,
		Features: make([]*Feature, 0, len(docs)),
	}

	for _, doc := range docs {
		kind, target := Classify(doc.Description)

		level := 0
		if lvl, ok := ExtractLevel(doc.Description); ok {
			level = lvl
		}

		arch.Features = append(arch.Features, &Feature{
			Name:        doc.Name,
			Level:       level,
			Kind:        kind,
			Target:      target,
			Description: doc.Description,
			SourceID:    doc.ID,
			Origin:      OriginAutoParsed,
		})
	}

	return arch
}
