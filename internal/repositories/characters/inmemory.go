package characters

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/RViz3d/archetype-manager/internal/domain/archetype"
	"github.com/RViz3d/archetype-manager/internal/domain/character"
	apperr "github.com/RViz3d/archetype-manager/internal/errors"
	"github.com/RViz3d/archetype-manager/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the character
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu            sync.RWMutex
	characters    map[string]*character.Character
	records       map[string]*archetype.ApplicationRecord // characterID:classID
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		characters:    make(map[string]*character.Character),
		records:       make(map[string]*archetype.ApplicationRecord),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}
}

func recordMapKey(characterID, classID string) string {
	return characterID + ":" + classID
}

// cloneCharacter deep-copies through JSON so stored state never aliases
// caller state
func cloneCharacter(char *character.Character) *character.Character {
	data, err := json.Marshal(char)
	if err != nil {
		return nil
	}
	var cloned character.Character
	if err := json.Unmarshal(data, &cloned); err != nil {
		return nil
	}
	return &cloned
}

func cloneRecord(record *archetype.ApplicationRecord) *archetype.ApplicationRecord {
	data, err := json.Marshal(record)
	if err != nil {
		return nil
	}
	var cloned archetype.ApplicationRecord
	if err := json.Unmarshal(data, &cloned); err != nil {
		return nil
	}
	return &cloned
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; exists {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	r.characters[char.ID] = cloneCharacter(char)
	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[id]
	if !exists {
		return nil, apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return cloneCharacter(char), nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var chars []*character.Character
	for _, char := range r.characters {
		if char.OwnerID == ownerID {
			chars = append(chars, cloneCharacter(char))
		}
	}

	return chars, nil
}

// Update replaces an existing character document
func (r *InMemoryRepository) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; !exists {
		return apperr.NotFoundf("character with ID '%s' not found", char.ID)
	}

	r.characters[char.ID] = cloneCharacter(char)
	return nil
}

// Delete removes a character and its archetype records
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[id]
	if !exists {
		return apperr.NotFoundf("character with ID '%s' not found", id)
	}

	for _, cls := range char.Classes {
		delete(r.records, recordMapKey(id, cls.ID))
	}
	delete(r.characters, id)
	return nil
}

// GetApplicationRecord fetches the tracking record; absent yields (nil, nil)
func (r *InMemoryRepository) GetApplicationRecord(ctx context.Context, characterID, classID string) (*archetype.ApplicationRecord, error) {
	if characterID == "" || classID == "" {
		return nil, apperr.InvalidArgument("character ID and class ID are required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[recordMapKey(characterID, classID)]
	if !exists {
		return nil, nil
	}

	return cloneRecord(record), nil
}

// SetApplicationRecord stores the tracking record
func (r *InMemoryRepository) SetApplicationRecord(ctx context.Context, characterID, classID string, record *archetype.ApplicationRecord) error {
	if characterID == "" || classID == "" {
		return apperr.InvalidArgument("character ID and class ID are required")
	}
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[recordMapKey(characterID, classID)] = cloneRecord(record)
	return nil
}

// ClearApplicationRecord removes the tracking record entirely
func (r *InMemoryRepository) ClearApplicationRecord(ctx context.Context, characterID, classID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, recordMapKey(characterID, classID))
	return nil
}

// UpdateAssociations replaces a class's feature list
func (r *InMemoryRepository) UpdateAssociations(ctx context.Context, characterID, classID string, refs []character.FeatureReference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[characterID]
	if !exists {
		return apperr.NotFoundf("character with ID '%s' not found", characterID)
	}

	for _, cls := range char.Classes {
		if cls.ID == classID {
			cls.Associations = character.CloneAssociations(refs)
			return nil
		}
	}

	return apperr.NotFoundf("class '%s' not found on character '%s'", classID, characterID)
}

// CreateCopyRecords stores copy records, assigning IDs
func (r *InMemoryRepository) CreateCopyRecords(ctx context.Context, characterID string, records []*character.CopyRecord) ([]*character.CopyRecord, error) {
	if len(records) == 0 {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[characterID]
	if !exists {
		return nil, apperr.NotFoundf("character with ID '%s' not found", characterID)
	}

	created := make([]*character.CopyRecord, 0, len(records))
	for _, rec := range records {
		stored := *rec
		if stored.ID == "" {
			stored.ID = r.uuidGenerator.New()
		}
		char.CopyRecords = append(char.CopyRecords, &stored)

		returned := stored
		created = append(created, &returned)
	}

	return created, nil
}

// DeleteCopyRecords removes the copy records with the given IDs
func (r *InMemoryRepository) DeleteCopyRecords(ctx context.Context, characterID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[characterID]
	if !exists {
		return apperr.NotFoundf("character with ID '%s' not found", characterID)
	}

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	var kept []*character.CopyRecord
	for _, rec := range char.CopyRecords {
		if !drop[rec.ID] {
			kept = append(kept, rec)
		}
	}
	char.CopyRecords = kept

	return nil
}

// UpdateArchetypeIndex replaces the quick-lookup slug list for a class tag
func (r *InMemoryRepository) UpdateArchetypeIndex(ctx context.Context, characterID, classTag string, slugs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[characterID]
	if !exists {
		return apperr.NotFoundf("character with ID '%s' not found", characterID)
	}

	tag := strings.ToLower(classTag)
	if len(slugs) == 0 {
		delete(char.ArchetypesByClassTag, tag)
		if len(char.ArchetypesByClassTag) == 0 {
			char.ArchetypesByClassTag = nil
		}
	} else {
		if char.ArchetypesByClassTag == nil {
			char.ArchetypesByClassTag = make(map[string][]string)
		}
		char.ArchetypesByClassTag[tag] = append([]string(nil), slugs...)
	}

	return nil
}
