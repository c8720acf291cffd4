package testutils

import (
	"github.com/RViz3d/archetype-manager/internal/domain/archetype"
	"github.com/RViz3d/archetype-manager/internal/domain/character"
)

// CreateTestFighterClass creates a fighter class with the standard 12-entry
// leveled feature list used across the engine tests.
func CreateTestFighterClass(classID string) *character.CharacterClass {
	return &character.CharacterClass{
		ID:    classID,
		Key:   "fighter",
		Name:  "Fighter",
		Tag:   "fighter",
		Level: 20,
		Associations: []character.FeatureReference{
			{RefID: "fighter:1:bonus-feat", Level: 1, ResolvedName: "Bonus Feat"},
			{RefID: "fighter:2:bravery", Level: 2, ResolvedName: "Bravery"},
			{RefID: "fighter:3:armor-training-1", Level: 3, ResolvedName: "Armor Training 1"},
			{RefID: "fighter:5:weapon-training-1", Level: 5, ResolvedName: "Weapon Training 1"},
			{RefID: "fighter:7:armor-training-2", Level: 7, ResolvedName: "Armor Training 2"},
			{RefID: "fighter:9:weapon-training-2", Level: 9, ResolvedName: "Weapon Training 2"},
			{RefID: "fighter:11:armor-training-3", Level: 11, ResolvedName: "Armor Training 3"},
			{RefID: "fighter:13:weapon-training-3", Level: 13, ResolvedName: "Weapon Training 3"},
			{RefID: "fighter:15:armor-training-4", Level: 15, ResolvedName: "Armor Training 4"},
			{RefID: "fighter:17:weapon-training-4", Level: 17, ResolvedName: "Weapon Training 4"},
			{RefID: "fighter:19:armor-mastery", Level: 19, ResolvedName: "Armor Mastery"},
			{RefID: "fighter:20:weapon-mastery", Level: 20, ResolvedName: "Weapon Mastery"},
		},
	}
}

// CreateTestCharacter creates a character owning a fighter class
func CreateTestCharacter(id, ownerID, name string) *character.Character {
	return &character.Character{
		ID:      id,
		OwnerID: ownerID,
		RealmID: "realm-1",
		Name:    name,
		Classes: []*character.CharacterClass{
			CreateTestFighterClass(id + "-fighter"),
		},
	}
}

// CreateTwoHandedFighter creates the canonical test archetype: six
// replacements and one modification of the level 5 slot.
func CreateTwoHandedFighter() *archetype.Archetype {
	return &archetype.Archetype{
		Name:     "Two-Handed Fighter",
		Slug:     "two-handed-fighter",
		ClassTag: "fighter",
		Features: []*archetype.Feature{
			{Name: "Shattering Strike", Level: 2, Kind: archetype.KindReplacement, Target: "bravery", SourceID: "pf:shattering-strike", Description: "Level: 2\nThis replaces bravery."},
			{Name: "Overhand Chop", Level: 3, Kind: archetype.KindReplacement, Target: "armor training 1", SourceID: "pf:overhand-chop", Description: "Level: 3\nThis replaces armor training 1."},
			{Name: "Weapon Training", Level: 5, Kind: archetype.KindModification, Target: "weapon training 1", SourceID: "pf:weapon-training", Description: "Level: 5\nThis modifies weapon training. Bonuses apply only to two-handed weapons."},
			{Name: "Backswing", Level: 7, Kind: archetype.KindReplacement, Target: "armor training 2", SourceID: "pf:backswing", Description: "Level: 7\nThis replaces armor training 2."},
			{Name: "Piledriver", Level: 11, Kind: archetype.KindReplacement, Target: "armor training 3", SourceID: "pf:piledriver", Description: "Level: 11\nThis replaces armor training 3."},
			{Name: "Greater Power Attack", Level: 15, Kind: archetype.KindReplacement, Target: "armor training 4", SourceID: "pf:greater-power-attack", Description: "Level: 15\nThis replaces armor training 4."},
			{Name: "Devastating Blow", Level: 19, Kind: archetype.KindReplacement, Target: "armor mastery", SourceID: "pf:devastating-blow", Description: "Level: 19\nThis replaces armor mastery."},
		},
	}
}
