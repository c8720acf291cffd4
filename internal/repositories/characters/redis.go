package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/RViz3d/archetype-manager/internal/domain/archetype"
	"github.com/RViz3d/archetype-manager/internal/domain/character"
	apperr "github.com/RViz3d/archetype-manager/internal/errors"
	"github.com/RViz3d/archetype-manager/internal/uuid"
)

// characterData represents the serialized form of a character in Redis
type characterData struct {
	ID                   string                     `json:"id"`
	OwnerID              string                     `json:"owner_id"`
	RealmID              string                     `json:"realm_id"`
	Name                 string                     `json:"name"`
	Classes              []*character.CharacterClass `json:"classes"`
	CopyRecords          []*character.CopyRecord    `json:"copy_records,omitempty"`
	ArchetypesByClassTag map[string][]string        `json:"archetypes_by_class_tag,omitempty"`
	CreatedAt            time.Time                  `json:"created_at"`
	UpdatedAt            time.Time                  `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = NewRealTimeProvider()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
	}
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerCharactersKey generates the Redis key for an owner's character list
func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// recordKey generates the Redis key for a (character, class) application record
func (r *redisRepo) recordKey(characterID, classID string) string {
	return fmt.Sprintf("archetype:record:%s:%s", characterID, classID)
}

func toCharacterData(char *character.Character) *characterData {
	return &characterData{
		ID:                   char.ID,
		OwnerID:              char.OwnerID,
		RealmID:              char.RealmID,
		Name:                 char.Name,
		Classes:              char.Classes,
		CopyRecords:          char.CopyRecords,
		ArchetypesByClassTag: char.ArchetypesByClassTag,
	}
}

func toCharacter(data *characterData) *character.Character {
	return &character.Character{
		ID:                   data.ID,
		OwnerID:              data.OwnerID,
		RealmID:              data.RealmID,
		Name:                 data.Name,
		Classes:              data.Classes,
		CopyRecords:          data.CopyRecords,
		ArchetypesByClassTag: data.ArchetypesByClassTag,
	}
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return apperr.InvalidArgument("character owner ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	data := toCharacterData(char)
	data.CreatedAt = r.timeProvider.Now()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), string(jsonData), 0)
	pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperr.NotFoundf("character with ID '%s' not found", id).
				WithMeta("character_id", id)
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data characterData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	return toCharacter(&data), nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get owner characters: %w", err)
	}

	chars := make([]*character.Character, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			char, err := r.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get character %s: %w", id, err)
			}
			chars[i] = char
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return chars, nil
}

// Update replaces an existing character document
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	existing, err := r.getData(ctx, char.ID)
	if err != nil {
		return err
	}

	data := toCharacterData(char)
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.Set(ctx, r.key(char.ID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	return nil
}

// Delete removes a character, its owner index entry, and its archetype records
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	char, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerCharactersKey(char.OwnerID), id)
	for _, cls := range char.Classes {
		pipe.Del(ctx, r.recordKey(id, cls.ID))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

// GetApplicationRecord fetches the archetype tracking record for a
// (character, class) pair; absent records yield (nil, nil)
func (r *redisRepo) GetApplicationRecord(ctx context.Context, characterID, classID string) (*archetype.ApplicationRecord, error) {
	if characterID == "" || classID == "" {
		return nil, apperr.InvalidArgument("character ID and class ID are required")
	}

	jsonData, err := r.client.Get(ctx, r.recordKey(characterID, classID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application record: %w", err)
	}

	var record archetype.ApplicationRecord
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal application record: %w", err)
	}

	return &record, nil
}

// SetApplicationRecord stores the archetype tracking record
func (r *redisRepo) SetApplicationRecord(ctx context.Context, characterID, classID string, record *archetype.ApplicationRecord) error {
	if characterID == "" || classID == "" {
		return apperr.InvalidArgument("character ID and class ID are required")
	}
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}

	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal application record: %w", err)
	}

	if err := r.client.Set(ctx, r.recordKey(characterID, classID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to set application record: %w", err)
	}

	return nil
}

// ClearApplicationRecord removes the tracking record entirely
func (r *redisRepo) ClearApplicationRecord(ctx context.Context, characterID, classID string) error {
	if characterID == "" || classID == "" {
		return apperr.InvalidArgument("character ID and class ID are required")
	}

	if err := r.client.Del(ctx, r.recordKey(characterID, classID)).Err(); err != nil {
		return fmt.Errorf("failed to clear application record: %w", err)
	}

	return nil
}

// UpdateAssociations replaces a class's feature list
func (r *redisRepo) UpdateAssociations(ctx context.Context, characterID, classID string, refs []character.FeatureReference) error {
	data, err := r.getData(ctx, characterID)
	if err != nil {
		return err
	}

	updated := false
	for _, cls := range data.Classes {
		if cls.ID == classID {
			cls.Associations = refs
			updated = true
			break
		}
	}
	if !updated {
		return apperr.NotFoundf("class '%s' not found on character '%s'", classID, characterID)
	}

	return r.setData(ctx, data)
}

// CreateCopyRecords stores copy records on the character, assigning IDs
func (r *redisRepo) CreateCopyRecords(ctx context.Context, characterID string, records []*character.CopyRecord) ([]*character.CopyRecord, error) {
	if len(records) == 0 {
		return nil, nil
	}

	data, err := r.getData(ctx, characterID)
	if err != nil {
		return nil, err
	}

	created := make([]*character.CopyRecord, 0, len(records))
	for _, rec := range records {
		stored := *rec
		if stored.ID == "" {
			stored.ID = r.uuidGenerator.New()
		}
		created = append(created, &stored)
		data.CopyRecords = append(data.CopyRecords, &stored)
	}

	if err := r.setData(ctx, data); err != nil {
		return nil, err
	}

	return created, nil
}

// DeleteCopyRecords removes the copy records with the given IDs
func (r *redisRepo) DeleteCopyRecords(ctx context.Context, characterID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	data, err := r.getData(ctx, characterID)
	if err != nil {
		return err
	}

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := data.CopyRecords[:0]
	for _, rec := range data.CopyRecords {
		if !drop[rec.ID] {
			kept = append(kept, rec)
		}
	}
	if len(kept) == 0 {
		data.CopyRecords = nil
	} else {
		data.CopyRecords = kept
	}

	return r.setData(ctx, data)
}

// UpdateArchetypeIndex replaces the quick-lookup slug list for a class tag
func (r *redisRepo) UpdateArchetypeIndex(ctx context.Context, characterID, classTag string, slugs []string) error {
	data, err := r.getData(ctx, characterID)
	if err != nil {
		return err
	}

	tag := strings.ToLower(classTag)
	if len(slugs) == 0 {
		delete(data.ArchetypesByClassTag, tag)
		if len(data.ArchetypesByClassTag) == 0 {
			data.ArchetypesByClassTag = nil
		}
	} else {
		if data.ArchetypesByClassTag == nil {
			data.ArchetypesByClassTag = make(map[string][]string)
		}
		data.ArchetypesByClassTag[tag] = slugs
	}

	return r.setData(ctx, data)
}

func (r *redisRepo) getData(ctx context.Context, id string) (*characterData, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperr.NotFoundf("character with ID '%s' not found", id).
				WithMeta("character_id", id)
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data characterData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	return &data, nil
}

func (r *redisRepo) setData(ctx context.Context, data *characterData) error {
	data.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.Set(ctx, r.key(data.ID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	return nil
}
