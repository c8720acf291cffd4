//go:build integration
// +build integration

package characters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RViz3d/archetype-manager/internal/domain/archetype"
	"github.com/RViz3d/archetype-manager/internal/domain/character"
	"github.com/RViz3d/archetype-manager/internal/repositories/characters"
	"github.com/RViz3d/archetype-manager/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	client := testutils.CreateTestRedisClient(t)

	repo := characters.NewRedisRepository(&characters.RedisRepoConfig{
		Client: client,
	})

	ctx := context.Background()

	t.Run("create and retrieve character", func(t *testing.T) {
		char := testutils.CreateTestCharacter("it-char-1", "user-123", "Valeros")

		require.NoError(t, repo.Create(ctx, char))

		retrieved, err := repo.Get(ctx, char.ID)
		require.NoError(t, err)
		assert.Equal(t, char.Name, retrieved.Name)
		require.Len(t, retrieved.Classes, 1)
		assert.Len(t, retrieved.Classes[0].Associations, 12)
	})

	t.Run("create duplicate character fails", func(t *testing.T) {
		char := testutils.CreateTestCharacter("it-char-2", "user-123", "Seelah")

		require.NoError(t, repo.Create(ctx, char))
		err := repo.Create(ctx, char)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("application record lifecycle", func(t *testing.T) {
		char := testutils.CreateTestCharacter("it-char-3", "user-123", "Amiri")
		require.NoError(t, repo.Create(ctx, char))

		classID := char.Classes[0].ID

		got, err := repo.GetApplicationRecord(ctx, char.ID, classID)
		require.NoError(t, err)
		assert.Nil(t, got)

		now := time.Now().UTC().Truncate(time.Millisecond)
		record := &archetype.ApplicationRecord{
			AppliedSlugs: []string{"two-handed-fighter"},
			Backup:       char.Classes[0].Associations,
			AppliedAt:    &now,
		}
		require.NoError(t, repo.SetApplicationRecord(ctx, char.ID, classID, record))

		got, err = repo.GetApplicationRecord(ctx, char.ID, classID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, record.AppliedSlugs, got.AppliedSlugs)
		assert.Len(t, got.Backup, 12)

		require.NoError(t, repo.ClearApplicationRecord(ctx, char.ID, classID))
		got, err = repo.GetApplicationRecord(ctx, char.ID, classID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("associations and copy records round-trip", func(t *testing.T) {
		char := testutils.CreateTestCharacter("it-char-4", "user-456", "Harsk")
		require.NoError(t, repo.Create(ctx, char))

		classID := char.Classes[0].ID
		newRefs := []character.FeatureReference{
			{RefID: "pf:shattering-strike", Level: 2, ResolvedName: "Shattering Strike"},
		}
		require.NoError(t, repo.UpdateAssociations(ctx, char.ID, classID, newRefs))

		created, err := repo.CreateCopyRecords(ctx, char.ID, []*character.CopyRecord{
			{CreatedBySlug: "two-handed-fighter", IsModifiedCopy: true, Name: "Weapon Training (Two-Handed Fighter)"},
		})
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.NotEmpty(t, created[0].ID)

		retrieved, err := repo.Get(ctx, char.ID)
		require.NoError(t, err)
		assert.Equal(t, newRefs, retrieved.Classes[0].Associations)
		require.Len(t, retrieved.CopyRecords, 1)

		require.NoError(t, repo.DeleteCopyRecords(ctx, char.ID, []string{created[0].ID}))

		retrieved, err = repo.Get(ctx, char.ID)
		require.NoError(t, err)
		assert.Empty(t, retrieved.CopyRecords)
	})

	t.Run("get by owner", func(t *testing.T) {
		chars, err := repo.GetByOwner(ctx, "user-123")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(chars), 3)
	})
}
