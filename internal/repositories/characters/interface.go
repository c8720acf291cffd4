package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/RViz3d/archetype-manager/internal/domain/archetype"
	"github.com/RViz3d/archetype-manager/internal/domain/character"
)

// Repository defines the persistence surface the archetype engine works
// against. Every operation is individually fallible and none of them are
// batched; the engine layers its own backup/rollback discipline on top.
type Repository interface {
	// Create stores a new character
	Create(ctx context.Context, char *character.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// GetByOwner retrieves all characters for a specific owner
	GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error)

	// Update replaces an existing character document
	Update(ctx context.Context, char *character.Character) error

	// Delete removes a character and its archetype records
	Delete(ctx context.Context, id string) error

	// GetApplicationRecord fetches the archetype tracking record for a
	// (character, class) pair. Absent records yield (nil, nil).
	GetApplicationRecord(ctx context.Context, characterID, classID string) (*archetype.ApplicationRecord, error)

	// SetApplicationRecord stores the archetype tracking record for a
	// (character, class) pair
	SetApplicationRecord(ctx context.Context, characterID, classID string, record *archetype.ApplicationRecord) error

	// ClearApplicationRecord removes the tracking record entirely, not merely
	// emptied
	ClearApplicationRecord(ctx context.Context, characterID, classID string) error

	// UpdateAssociations replaces a class's feature list
	UpdateAssociations(ctx context.Context, characterID, classID string, refs []character.FeatureReference) error

	// CreateCopyRecords stores copy records on the character, assigning IDs,
	// and returns them with IDs populated
	CreateCopyRecords(ctx context.Context, characterID string, records []*character.CopyRecord) ([]*character.CopyRecord, error)

	// DeleteCopyRecords removes the copy records with the given IDs
	DeleteCopyRecords(ctx context.Context, characterID string, ids []string) error

	// UpdateArchetypeIndex replaces the quick-lookup slug list for a class
	// tag; an empty list clears the entry
	UpdateArchetypeIndex(ctx context.Context, characterID, classTag string, slugs []string) error
}
