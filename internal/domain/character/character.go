package character

import "strings"

// FeatureReference is one leveled entry in a class's feature list. RefID points
// into the external compendium; ResolvedName is empty when resolution failed,
// which must never abort processing.
type FeatureReference struct {
	RefID        string `json:"ref_id"`
	Level        int    `json:"level"`
	ResolvedName string `json:"resolved_name,omitempty"`
}

// CharacterClass is the owner of a base feature list. Tag identifies the class
// for archetype matching (e.g. "fighter") independent of display name.
type CharacterClass struct {
	ID           string             `json:"id"`
	Key          string             `json:"key"`
	Name         string             `json:"name"`
	Tag          string             `json:"tag"`
	Level        int                `json:"level"`
	Associations []FeatureReference `json:"associations"`
}

// CopyRecord is an auxiliary owned item created for Modification-kind archetype
// features. It is tagged with the creating archetype's slug so selective
// removal can clean up exactly its own records.
type CopyRecord struct {
	ID             string `json:"id"`
	CreatedBySlug  string `json:"created_by_slug"`
	IsModifiedCopy bool   `json:"is_modified_copy"`
	Name           string `json:"name"`
	Description    string `json:"description"`
}

// Character is the entity archetypes are applied to.
type Character struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	RealmID string `json:"realm_id"`
	Name    string `json:"name"`

	Classes     []*CharacterClass `json:"classes"`
	CopyRecords []*CopyRecord     `json:"copy_records"`

	// ArchetypesByClassTag is a quick lookup of applied archetype slugs keyed
	// by class tag, maintained alongside the per-class application records.
	ArchetypesByClassTag map[string][]string `json:"archetypes_by_class_tag,omitempty"`
}

// ClassByID returns the class with the given ID, or nil.
func (c *Character) ClassByID(classID string) *CharacterClass {
	for _, cls := range c.Classes {
		if cls.ID == classID {
			return cls
		}
	}
	return nil
}

// ClassByTag returns the first class whose tag matches (case-insensitive), or nil.
func (c *Character) ClassByTag(tag string) *CharacterClass {
	for _, cls := range c.Classes {
		if strings.EqualFold(cls.Tag, tag) {
			return cls
		}
	}
	return nil
}

// CopyRecordsBySlug returns the copy records created by the given archetype slug.
func (c *Character) CopyRecordsBySlug(slug string) []*CopyRecord {
	var records []*CopyRecord
	for _, rec := range c.CopyRecords {
		if rec.IsModifiedCopy && rec.CreatedBySlug == slug {
			records = append(records, rec)
		}
	}
	return records
}

// AppliedArchetypes returns the applied slugs for a class tag from the quick
// lookup index.
func (c *Character) AppliedArchetypes(classTag string) []string {
	if c.ArchetypesByClassTag == nil {
		return nil
	}
	return c.ArchetypesByClassTag[strings.ToLower(classTag)]
}

// CloneAssociations returns a deep copy of a feature list. Backups and diffs
// must never alias the live slice.
func CloneAssociations(refs []FeatureReference) []FeatureReference {
	if refs == nil {
		return nil
	}
	cloned := make([]FeatureReference, len(refs))
	copy(cloned, refs)
	return cloned
}
