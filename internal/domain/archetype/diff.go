package archetype

import (
	"sort"

	"github.com/RViz3d/archetype-manager/internal/domain/character"
)

// GenerateDiff computes the leveled diff between a resolved base feature list
// and an archetype. The result is a total account of both sides: every base
// entry appears exactly once, every non-additive archetype feature appears
// exactly once, sorted ascending by level with ties kept in input order (base
// entries before archetype entries).
func GenerateDiff(base []character.FeatureReference, arch *Archetype) []DiffEntry {
	if arch == nil {
		return nil
	}

	// Resolve matched references for targeted features, first match wins per
	// base identity. Pre-supplied matches (manual entries) are kept as-is.
	consumedBy := make(map[string]*Feature, len(arch.Features))
	for _, feat := range arch.Features {
		if feat.Kind != KindReplacement && feat.Kind != KindModification {
			continue
		}
		if feat.MatchedRef == nil && feat.Target != "" {
			feat.MatchedRef = MatchTarget(feat.Target, base)
		}
		if feat.MatchedRef == nil {
			continue
		}
		if _, taken := consumedBy[feat.MatchedRef.RefID]; taken {
			// Two features naming the same slot: the later one falls back to
			// a plain addition
			feat.MatchedRef = nil
			continue
		}
		consumedBy[feat.MatchedRef.RefID] = feat
	}

	entries := make([]DiffEntry, 0, len(base)+len(arch.Features))

	// Base side: unchanged, removed, or the base half of a modified pair.
	for i := range base {
		ref := base[i]
		feat, consumed := consumedBy[ref.RefID]
		if !consumed {
			entries = append(entries, DiffEntry{
				Status:   StatusUnchanged,
				Level:    ref.Level,
				Name:     displayName(ref),
				Original: &base[i],
			})
			continue
		}

		switch feat.Kind {
		case KindReplacement:
			entries = append(entries, DiffEntry{
				Status:   StatusRemoved,
				Level:    ref.Level,
				Name:     displayName(ref),
				Original: &base[i],
			})
		case KindModification:
			// The base identity is retained at the base's level; the feature
			// rides along for copy-record creation
			entries = append(entries, DiffEntry{
				Status:   StatusModified,
				Level:    ref.Level,
				Name:     feat.Name,
				Original: &base[i],
				Feature:  feat,
			})
		}
	}

	// Archetype side: replacements surface as additions at their own level
	// and identity, unmatched targets degrade to additions, additive and
	// unknown features are pure additions.
	for _, feat := range arch.Features {
		if feat.Kind == KindModification && feat.MatchedRef != nil {
			continue // already paired above
		}

		entry := DiffEntry{
			Status:  StatusAdded,
			Level:   feat.Level,
			Name:    feat.Name,
			Feature: feat,
		}
		if feat.Kind == KindReplacement {
			entry.Original = feat.MatchedRef
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Level < entries[j].Level
	})

	return entries
}

// BuildNewAssociations rebuilds the owner's feature list from an applied diff:
// unchanged entries keep their original reference, modified entries keep the
// base identity at the base level, added entries take the archetype feature's
// own identity. Removed entries drop out.
func BuildNewAssociations(slug string, diff []DiffEntry) []character.FeatureReference {
	refs := make([]character.FeatureReference, 0, len(diff))

	for _, entry := range diff {
		switch entry.Status {
		case StatusUnchanged, StatusModified:
			if entry.Original != nil {
				refs = append(refs, *entry.Original)
			}
		case StatusAdded:
			refs = append(refs, addedReference(slug, entry))
		}
	}

	return refs
}

// addedReference produces the reference an Added entry contributes to the
// rebuilt list: the feature's own compendium reference when it has one, else
// a synthetic reference derived from the archetype slug and feature name.
// Synthetic IDs are deterministic so re-applying after a removal reproduces
// the list byte for byte.
func addedReference(slug string, entry DiffEntry) character.FeatureReference {
	refID := ""
	name := entry.Name
	if entry.Feature != nil {
		refID = entry.Feature.SourceID
		name = entry.Feature.Name
	}
	if refID == "" {
		refID = slug + ":" + Slugify(name)
	}

	return character.FeatureReference{
		RefID:        refID,
		Level:        entry.Level,
		ResolvedName: name,
	}
}

// DetectConflicts reports the feature slots two applied diffs would fight
// over: both consuming the same base identity, or a replacement and a
// modification landing on the same level. Pure pre-flight check, mutates
// nothing.
func DetectConflicts(a, b []DiffEntry) []Conflict {
	var conflicts []Conflict

	consumedA := consumedRefs(a)
	for _, entry := range b {
		if entry.Original == nil || !isConsuming(entry) {
			continue
		}
		if name, ok := consumedA[entry.Original.RefID]; ok {
			conflicts = append(conflicts, Conflict{
				RefID:  entry.Original.RefID,
				Level:  entry.Original.Level,
				Name:   name,
				Reason: "both archetypes alter the same base feature",
			})
		}
	}

	// Level collisions between a replacement's addition and a modification
	modifiedLevelsA := modifiedLevels(a)
	for _, entry := range b {
		if entry.Status != StatusAdded || entry.Feature == nil || entry.Feature.Kind != KindReplacement {
			continue
		}
		if name, ok := modifiedLevelsA[entry.Level]; ok {
			conflicts = append(conflicts, Conflict{
				Level:  entry.Level,
				Name:   name,
				Reason: "replacement and modification occupy the same level slot",
			})
		}
	}
	modifiedLevelsB := modifiedLevels(b)
	for _, entry := range a {
		if entry.Status != StatusAdded || entry.Feature == nil || entry.Feature.Kind != KindReplacement {
			continue
		}
		if name, ok := modifiedLevelsB[entry.Level]; ok {
			conflicts = append(conflicts, Conflict{
				Level:  entry.Level,
				Name:   name,
				Reason: "replacement and modification occupy the same level slot",
			})
		}
	}

	return conflicts
}

func isConsuming(entry DiffEntry) bool {
	return entry.Status == StatusRemoved || entry.Status == StatusModified
}

func consumedRefs(diff []DiffEntry) map[string]string {
	consumed := make(map[string]string)
	for _, entry := range diff {
		if entry.Original != nil && isConsuming(entry) {
			consumed[entry.Original.RefID] = entry.Name
		}
	}
	return consumed
}

func modifiedLevels(diff []DiffEntry) map[int]string {
	levels := make(map[int]string)
	for _, entry := range diff {
		if entry.Status == StatusModified {
			levels[entry.Level] = entry.Name
		}
	}
	return levels
}

func displayName(ref character.FeatureReference) string {
	if ref.ResolvedName != "" {
		return ref.ResolvedName
	}
	return ref.RefID
}
