package archetype

import (
	"time"

	"github.com/RViz3d/archetype-manager/internal/domain/character"
)

// FeatureSummary is the persisted shape of one archetype feature, enough to
// rebuild a diff for conflict checks without reloading the content source.
type FeatureSummary struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Kind     Kind   `json:"kind"`
	Target   string `json:"target,omitempty"`
	SourceID string `json:"source_id,omitempty"`
}

// Summary is the persisted shape of an applied archetype.
type Summary struct {
	Name     string           `json:"name"`
	Slug     string           `json:"slug"`
	ClassTag string           `json:"class_tag"`
	Features []FeatureSummary `json:"features"`
}

// Summarize captures the persisted summary of an archetype.
func Summarize(arch *Archetype) Summary {
	summary := Summary{
		Name:     arch.Name,
		Slug:     arch.Slug,
		ClassTag: arch.ClassTag,
		Features: make([]FeatureSummary, 0, len(arch.Features)),
	}
	for _, feat := range arch.Features {
		summary.Features = append(summary.Features, FeatureSummary{
			Name:     feat.Name,
			Level:    feat.Level,
			Kind:     feat.Kind,
			Target:   feat.Target,
			SourceID: feat.SourceID,
		})
	}
	return summary
}

// Restore rebuilds an archetype from its persisted summary.
func (s Summary) Restore() *Archetype {
	arch := &Archetype{
		Name:     s.Name,
		Slug:     s.Slug,
		ClassTag: s.ClassTag,
		Features: make([]*Feature, 0, len(s.Features)),
	}
	for _, feat := range s.Features {
		arch.Features = append(arch.Features, &Feature{
			Name:     feat.Name,
			Level:    feat.Level,
			Kind:     feat.Kind,
			Target:   feat.Target,
			SourceID: feat.SourceID,
			Origin:   OriginAutoParsed,
		})
	}
	return arch
}

// ApplicationRecord is the tracking state persisted per (character, class)
// pair. Backup is the feature list as it existed before the first archetype of
// the currently applied set and is the sole restoration point for a full
// reversal. The record is created on first successful apply and fully cleared
// (not merely emptied) when the last slug is removed.
type ApplicationRecord struct {
	AppliedSlugs []string                     `json:"applied_slugs"`
	Backup       []character.FeatureReference `json:"backup,omitempty"`
	AppliedAt    *time.Time                   `json:"applied_at,omitempty"`
	Snapshots    map[string]Summary           `json:"snapshots,omitempty"`
}

// HasSlug reports whether the archetype slug is currently applied.
func (r *ApplicationRecord) HasSlug(slug string) bool {
	if r == nil {
		return false
	}
	for _, s := range r.AppliedSlugs {
		if s == slug {
			return true
		}
	}
	return false
}

// AddSlug records an applied archetype and its summary.
func (r *ApplicationRecord) AddSlug(slug string, summary Summary, at time.Time) {
	if r.HasSlug(slug) {
		return
	}
	r.AppliedSlugs = append(r.AppliedSlugs, slug)
	if r.Snapshots == nil {
		r.Snapshots = make(map[string]Summary)
	}
	r.Snapshots[slug] = summary
	r.AppliedAt = &at
}

// RemoveSlug drops an applied archetype and its summary. Reports whether the
// slug was present.
func (r *ApplicationRecord) RemoveSlug(slug string) bool {
	if r == nil {
		return false
	}
	for i, s := range r.AppliedSlugs {
		if s == slug {
			r.AppliedSlugs = append(r.AppliedSlugs[:i], r.AppliedSlugs[i+1:]...)
			delete(r.Snapshots, slug)
			return true
		}
	}
	return false
}

// Empty reports whether no archetypes remain applied.
func (r *ApplicationRecord) Empty() bool {
	return r == nil || len(r.AppliedSlugs) == 0
}
