package archetype_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RViz3d/archetype-manager/internal/clients/compendium"
	mockcompendium "github.com/RViz3d/archetype-manager/internal/clients/compendium/mock"
	domain "github.com/RViz3d/archetype-manager/internal/domain/archetype"
	"github.com/RViz3d/archetype-manager/internal/domain/character"
	"github.com/RViz3d/archetype-manager/internal/repositories/characters"
	svc "github.com/RViz3d/archetype-manager/internal/services/archetype"
	"github.com/RViz3d/archetype-manager/internal/testutils"
)

// recordingNotifier captures notifications for assertions. Safe for
// concurrent use.
type recordingNotifier struct {
	mu     sync.Mutex
	infos  []string
	warns  []string
	errors []string
}

func (n *recordingNotifier) Info(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.infos = append(n.infos, message)
}

func (n *recordingNotifier) Warn(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warns = append(n.warns, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *recordingNotifier) warnCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.warns)
}

// faultyRepo injects write failures into selected operations while passing
// everything else through to a real repository. failUpdateAssociationsAfter
// lets that many calls succeed before failing, so the restore write of a
// rollback can fail while the original write went through.
type faultyRepo struct {
	characters.Repository
	failSetRecord               bool
	failCreateCopyRecords       bool
	failUpdateAssociations      bool
	failUpdateAssociationsAfter int
	updateAssociationsCalls     int
}

func (r *faultyRepo) SetApplicationRecord(ctx context.Context, characterID, classID string, record *domain.ApplicationRecord) error {
	if r.failSetRecord {
		return errors.New("redis: connection refused")
	}
	return r.Repository.SetApplicationRecord(ctx, characterID, classID, record)
}

func (r *faultyRepo) CreateCopyRecords(ctx context.Context, characterID string, records []*character.CopyRecord) ([]*character.CopyRecord, error) {
	if r.failCreateCopyRecords {
		return nil, errors.New("redis: connection refused")
	}
	return r.Repository.CreateCopyRecords(ctx, characterID, records)
}

func (r *faultyRepo) UpdateAssociations(ctx context.Context, characterID, classID string, refs []character.FeatureReference) error {
	r.updateAssociationsCalls++
	if r.failUpdateAssociations {
		return errors.New("redis: connection refused")
	}
	if r.failUpdateAssociationsAfter > 0 && r.updateAssociationsCalls > r.failUpdateAssociationsAfter {
		return errors.New("redis: connection refused")
	}
	return r.Repository.UpdateAssociations(ctx, characterID, classID, refs)
}

// panickyRepo panics on the first Get, then behaves normally.
type panickyRepo struct {
	characters.Repository
	panicked bool
}

func (r *panickyRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if !r.panicked {
		r.panicked = true
		panic("character document corrupted")
	}
	return r.Repository.Get(ctx, id)
}

// blockingRepo parks the first Get until released, so a second operation can
// observe the busy guard.
type blockingRepo struct {
	characters.Repository
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *blockingRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	r.once.Do(func() { close(r.started) })
	<-r.release
	return r.Repository.Get(ctx, id)
}

func setupService(t *testing.T, repo characters.Repository) (svc.Service, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	service := svc.NewService(&svc.ServiceConfig{
		Repository: repo,
		Notifier:   notifier,
	})
	return service, notifier
}

func seedFighter(t *testing.T, repo characters.Repository) *character.Character {
	t.Helper()
	char := testutils.CreateTestCharacter("char-1", "user-1", "Valeros")
	require.NoError(t, repo.Create(context.Background(), char))
	return char
}

// unbreakableArchetype is a second fighter archetype used in stacking tests:
// one replacement and one modification, on slots the Two-Handed Fighter
// leaves alone.
func unbreakableArchetype() *domain.Archetype {
	return &domain.Archetype{
		Name:     "Unbreakable",
		Slug:     "unbreakable",
		ClassTag: "fighter",
		Features: []*domain.Feature{
			{Name: "Tough as Nails", Level: 1, Kind: domain.KindReplacement, Target: "bonus feat", SourceID: "pf:tough-as-nails"},
			{Name: "Unflinching", Level: 9, Kind: domain.KindModification, Target: "weapon training 2", SourceID: "pf:unflinching", Description: "Level: 9\nThis modifies weapon training 2."},
		},
	}
}

func TestApplyAndRemoveRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()
	service, notifier := setupService(t, repo)
	char := seedFighter(t, repo)
	class := char.Classes[0]
	originalRefs := character.CloneAssociations(class.Associations)

	result := service.Apply(ctx, &svc.ApplyInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Archetype:   testutils.CreateTwoHandedFighter(),
	})
	require.True(t, result.Success, "apply failed: %s", result.Reason)
	assert.False(t, result.RolledBack)
	assert.Len(t, notifier.infos, 1)

	// Feature list: 5 unchanged + 1 modified slot + 6 additions
	updated, err := repo.Get(ctx, char.ID)
	require.NoError(t, err)
	refs := updated.Classes[0].Associations
	require.Len(t, refs, 12)

	byID := make(map[string]character.FeatureReference)
	for _, ref := range refs {
		byID[ref.RefID] = ref
	}
	assert.Contains(t, byID, "pf:shattering-strike")
	assert.Equal(t, 2, byID["pf:shattering-strike"].Level)
	assert.Contains(t, byID, "fighter:5:weapon-training-1", "modified slot keeps the base identity")
	assert.NotContains(t, byID, "fighter:2:bravery", "replaced feature is gone")

	// Exactly one modified-copy record, named after the base feature
	require.Len(t, updated.CopyRecords, 1)
	assert.Equal(t, "Weapon Training (Two-Handed Fighter)", updated.CopyRecords[0].Name)
	assert.True(t, updated.CopyRecords[0].IsModifiedCopy)
	assert.Equal(t, "two-handed-fighter", updated.CopyRecords[0].CreatedBySlug)
	assert.NotEmpty(t, updated.CopyRecords[0].ID)

	// Tracking record: slug list, backup, summary snapshot
	record, err := repo.GetApplicationRecord(ctx, char.ID, class.ID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, []string{"two-handed-fighter"}, record.AppliedSlugs)
	assert.Equal(t, originalRefs, record.Backup)
	assert.Contains(t, record.Snapshots, "two-handed-fighter")
	require.NotNil(t, record.AppliedAt)
	assert.Equal(t, []string{"two-handed-fighter"}, updated.AppliedArchetypes("fighter"))

	// Full removal restores everything from the backup
	removeResult := service.Remove(ctx, &svc.RemoveInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Slug:        "two-handed-fighter",
	})
	require.True(t, removeResult.Success, "remove failed: %s", removeResult.Reason)
	assert.False(t, removeResult.Partial)

	restored, err := repo.Get(ctx, char.ID)
	require.NoError(t, err)
	assert.Equal(t, originalRefs, restored.Classes[0].Associations)
	assert.Empty(t, restored.CopyRecords)
	assert.Empty(t, restored.AppliedArchetypes("fighter"))

	record, err = repo.GetApplicationRecord(ctx, char.ID, class.ID)
	require.NoError(t, err)
	assert.Nil(t, record, "record is cleared entirely, not emptied")
}

func TestValidateClass(t *testing.T) {
	class := testutils.CreateTestFighterClass("class-1")
	arch := testutils.CreateTwoHandedFighter()

	assert.NoError(t, svc.ValidateClass(class, arch))

	class.Tag = "FIGHTER"
	assert.NoError(t, svc.ValidateClass(class, arch), "tags compare case-insensitively")

	arch.ClassTag = "rogue"
	assert.Error(t, svc.ValidateClass(class, arch))
	assert.Error(t, svc.ValidateClass(nil, arch))
	assert.Error(t, svc.ValidateClass(class, nil))
}

func TestApplyDuplicateRejected(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()
	service, _ := setupService(t, repo)
	char := seedFighter(t, repo)
	class := char.Classes[0]

	first := service.Apply(ctx, &svc.ApplyInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Archetype:   testutils.CreateTwoHandedFighter(),
	})
	require.True(t, first.Success)

	second := service.Apply(ctx, &svc.ApplyInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Archetype:   testutils.CreateTwoHandedFighter(),
	})
	assert.False(t, second.Success)
	assert.False(t, second.RolledBack, "duplicate is rejected before any write")
	assert.Contains(t, second.Reason, "already applied")

	record, err := repo.GetApplicationRecord(ctx, char.ID, class.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"two-handed-fighter"}, record.AppliedSlugs)
}

func TestApplyPermissionAndClassChecks(t *testing.T) {
	ctx := context.Background()

	t.Run("non-owner is rejected", func(t *testing.T) {
		repo := characters.NewInMemoryRepository()
		service, _ := setupService(t, repo)
		char := seedFighter(t, repo)

		result := service.Apply(ctx, &svc.ApplyInput{
			CharacterID: char.ID,
			ClassID:     char.Classes[0].ID,
			UserID:      "someone-else",
			Archetype:   testutils.CreateTwoHandedFighter(),
		})
		assert.False(t, result.Success)
		assert.Contains(t, result.Reason, "do not own")
	})

	t.Run("elevated caller bypasses ownership", func(t *testing.T) {
		repo := characters.NewInMemoryRepository()
		service, _ := setupService(t, repo)
		char := seedFighter(t, repo)

		result := service.Apply(ctx, &svc.ApplyInput{
			CharacterID: char.ID,
			ClassID:     char.Classes[0].ID,
			UserID:      "someone-else",
			Elevated:    true,
			Archetype:   testutils.CreateTwoHandedFighter(),
		})
		assert.True(t, result.Success, result.Reason)
	})

	t.Run("class tag mismatch is rejected", func(t *testing.T) {
		repo := characters.NewInMemoryRepository()
		service, _ := setupService(t, repo)
		char := seedFighter(t, repo)

		arch := testutils.CreateTwoHandedFighter()
		arch.ClassTag = "rogue"
		result := service.Apply(ctx, &svc.ApplyInput{
			CharacterID: char.ID,
			ClassID:     char.Classes[0].ID,
			UserID:      "user-1",
			Archetype:   arch,
		})
		assert.False(t, result.Success)
		assert.Contains(t, result.Reason, "rogue")
	})

	t.Run("unknown character", func(t *testing.T) {
		repo := characters.NewInMemoryRepository()
		service, _ := setupService(t, repo)

		result := service.Apply(ctx, &svc.ApplyInput{
			CharacterID: "missing",
			ClassID:     "missing-fighter",
			UserID:      "user-1",
			Archetype:   testutils.CreateTwoHandedFighter(),
		})
		assert.False(t, result.Success)
	})

	t.Run("unknown class", func(t *testing.T) {
		repo := characters.NewInMemoryRepository()
		service, _ := setupService(t, repo)
		char := seedFighter(t, repo)

		result := service.Apply(ctx, &svc.ApplyInput{
			CharacterID: char.ID,
			ClassID:     "not-a-class",
			UserID:      "user-1",
			Archetype:   testutils.CreateTwoHandedFighter(),
		})
		assert.False(t, result.Success)
		assert.Contains(t, result.Reason, "not-a-class")
	})
}

func TestApplyRollsBackOnWriteFailure(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		fault func(*faultyRepo)
	}{
		{"record write fails", func(r *faultyRepo) { r.failSetRecord = true }},
		{"copy record write fails", func(r *faultyRepo) { r.failCreateCopyRecords = true }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inner := characters.NewInMemoryRepository()
			repo := &faultyRepo{Repository: inner}
			service, notifier := setupService(t, repo)
			char := seedFighter(t, inner)
			class := char.Classes[0]
			originalRefs := character.CloneAssociations(class.Associations)
			tc.fault(repo)

			result := service.Apply(ctx, &svc.ApplyInput{
				CharacterID: char.ID,
				ClassID:     class.ID,
				UserID:      "user-1",
				Archetype:   testutils.CreateTwoHandedFighter(),
			})
			assert.False(t, result.Success)
			assert.True(t, result.RolledBack)
			assert.Len(t, notifier.errors, 1)
			assert.Empty(t, notifier.infos)

			restored, err := inner.Get(ctx, char.ID)
			require.NoError(t, err)
			assert.Equal(t, originalRefs, restored.Classes[0].Associations)
			assert.Empty(t, restored.CopyRecords)
			assert.Empty(t, restored.AppliedArchetypes("fighter"))

			record, err := inner.GetApplicationRecord(ctx, char.ID, class.ID)
			require.NoError(t, err)
			assert.Nil(t, record)
		})
	}
}

func TestApplySkipsCopyRecordForBareModifiedEntry(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()
	service, _ := setupService(t, repo)
	char := seedFighter(t, repo)
	class := char.Classes[0]

	// A caller-supplied preview diff whose modified entry lost its feature
	arch := testutils.CreateTwoHandedFighter()
	diff := domain.GenerateDiff(character.CloneAssociations(class.Associations), arch)
	for i := range diff {
		if diff[i].Status == domain.StatusModified {
			diff[i].Feature = nil
		}
	}

	result := service.Apply(ctx, &svc.ApplyInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Archetype:   arch,
		Diff:        diff,
	})
	require.True(t, result.Success, result.Reason)

	updated, err := repo.Get(ctx, char.ID)
	require.NoError(t, err)
	assert.Empty(t, updated.CopyRecords, "a modified entry with no feature produces no copy record")
	assert.Len(t, updated.Classes[0].Associations, 12, "the feature list is still rebuilt from the diff")
}

func TestApplyContainsFailingRollback(t *testing.T) {
	ctx := context.Background()
	inner := characters.NewInMemoryRepository()
	repo := &faultyRepo{Repository: inner}
	service, notifier := setupService(t, repo)
	char := seedFighter(t, repo)
	class := char.Classes[0]

	// The apply's own write succeeds, the record write fails, and the
	// rollback's restore write fails too
	repo.failSetRecord = true
	repo.failUpdateAssociationsAfter = 1

	result := service.Apply(ctx, &svc.ApplyInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Archetype:   testutils.CreateTwoHandedFighter(),
	})
	assert.False(t, result.Success)
	assert.True(t, result.RolledBack)
	assert.Contains(t, result.Reason, "archetype record")
	assert.Len(t, notifier.errors, 1, "the restore failure is logged, not notified")
	assert.Empty(t, notifier.infos)

	// The guard was released and the engine still works
	repo.failSetRecord = false
	repo.failUpdateAssociationsAfter = 0

	second := service.Apply(ctx, &svc.ApplyInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Archetype:   testutils.CreateTwoHandedFighter(),
	})
	assert.True(t, second.Success, second.Reason)
}

func TestApplyRecoversFromPanic(t *testing.T) {
	ctx := context.Background()
	inner := characters.NewInMemoryRepository()
	repo := &panickyRepo{Repository: inner}
	service, notifier := setupService(t, repo)
	char := seedFighter(t, inner)
	class := char.Classes[0]

	input := &svc.ApplyInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Archetype:   testutils.CreateTwoHandedFighter(),
	}

	result := service.Apply(ctx, input)
	assert.False(t, result.Success)
	assert.False(t, result.RolledBack)
	assert.Equal(t, "an internal error occurred", result.Reason)
	assert.Len(t, notifier.errors, 1)

	// Guard released by the deferred Release during unwinding
	second := service.Apply(ctx, &svc.ApplyInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Archetype:   testutils.CreateTwoHandedFighter(),
	})
	assert.True(t, second.Success, second.Reason)
}

func TestApplyBusyGuardRejectsConcurrentOperation(t *testing.T) {
	ctx := context.Background()
	inner := characters.NewInMemoryRepository()
	repo := &blockingRepo{
		Repository: inner,
		started:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	service, _ := setupService(t, repo)
	char := seedFighter(t, inner)
	class := char.Classes[0]

	firstDone := make(chan *svc.ApplyResult, 1)
	go func() {
		firstDone <- service.Apply(ctx, &svc.ApplyInput{
			CharacterID: char.ID,
			ClassID:     class.ID,
			UserID:      "user-1",
			Archetype:   testutils.CreateTwoHandedFighter(),
		})
	}()

	<-repo.started // first operation now holds the guard

	// A second operation on a different character is also rejected: the
	// guard is global
	other := testutils.CreateTestCharacter("char-2", "user-1", "Seelah")
	require.NoError(t, inner.Create(ctx, other))

	busy := service.Apply(ctx, &svc.ApplyInput{
		CharacterID: other.ID,
		ClassID:     other.Classes[0].ID,
		UserID:      "user-1",
		Archetype:   testutils.CreateTwoHandedFighter(),
	})
	assert.False(t, busy.Success)
	assert.Contains(t, busy.Reason, "in progress")

	busyRemove := service.Remove(ctx, &svc.RemoveInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Slug:        "two-handed-fighter",
	})
	assert.False(t, busyRemove.Success)
	assert.Contains(t, busyRemove.Reason, "in progress")

	close(repo.release)
	first := <-firstDone
	assert.True(t, first.Success, first.Reason)
}

func TestSelectiveRemoveLeavesOtherArchetypesIntact(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()
	service, _ := setupService(t, repo)
	char := seedFighter(t, repo)
	class := char.Classes[0]
	originalRefs := character.CloneAssociations(class.Associations)

	require.True(t, service.Apply(ctx, &svc.ApplyInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Archetype:   testutils.CreateTwoHandedFighter(),
	}).Success)
	require.True(t, service.Apply(ctx, &svc.ApplyInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Archetype:   unbreakableArchetype(),
	}).Success)

	stacked, err := repo.Get(ctx, char.ID)
	require.NoError(t, err)
	stackedRefs := character.CloneAssociations(stacked.Classes[0].Associations)

	result := service.Remove(ctx, &svc.RemoveInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Slug:        "two-handed-fighter",
	})
	require.True(t, result.Success, result.Reason)
	assert.True(t, result.Partial, "other archetypes remain, so the feature list is not restored")

	after, err := repo.Get(ctx, char.ID)
	require.NoError(t, err)
	assert.Equal(t, stackedRefs, after.Classes[0].Associations, "selective removal does not touch the feature list")

	require.Len(t, after.CopyRecords, 1, "only the removed slug's copy records go away")
	assert.Equal(t, "unbreakable", after.CopyRecords[0].CreatedBySlug)
	assert.Equal(t, "Unflinching (Unbreakable)", after.CopyRecords[0].Name)

	record, err := repo.GetApplicationRecord(ctx, char.ID, class.ID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, []string{"unbreakable"}, record.AppliedSlugs)
	assert.Equal(t, originalRefs, record.Backup, "the backup is untouched by a selective removal")
	assert.NotContains(t, record.Snapshots, "two-handed-fighter")
	assert.Equal(t, []string{"unbreakable"}, after.AppliedArchetypes("fighter"))
}

func TestRemoveNotApplied(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()
	service, _ := setupService(t, repo)
	char := seedFighter(t, repo)

	result := service.Remove(ctx, &svc.RemoveInput{
		CharacterID: char.ID,
		ClassID:     char.Classes[0].ID,
		UserID:      "user-1",
		Slug:        "two-handed-fighter",
	})
	assert.False(t, result.Success)
	assert.Contains(t, result.Reason, "not applied")
}

func TestReapplyAfterRemoveIsDeterministic(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()
	service, _ := setupService(t, repo)
	char := seedFighter(t, repo)
	class := char.Classes[0]

	apply := func() []character.FeatureReference {
		result := service.Apply(ctx, &svc.ApplyInput{
			CharacterID: char.ID,
			ClassID:     class.ID,
			UserID:      "user-1",
			Archetype:   testutils.CreateTwoHandedFighter(),
		})
		require.True(t, result.Success, result.Reason)
		updated, err := repo.Get(ctx, char.ID)
		require.NoError(t, err)
		return updated.Classes[0].Associations
	}

	firstRefs := apply()

	require.True(t, service.Remove(ctx, &svc.RemoveInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Slug:        "two-handed-fighter",
	}).Success)

	secondRefs := apply()
	assert.Equal(t, firstRefs, secondRefs, "re-applying after removal reproduces the same feature list")
}

func TestGenerateDiffService(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()
	service, _ := setupService(t, repo)
	char := seedFighter(t, repo)

	out, err := service.GenerateDiff(ctx, &svc.GenerateDiffInput{
		CharacterID: char.ID,
		ClassID:     char.Classes[0].ID,
		Archetype:   testutils.CreateTwoHandedFighter(),
	})
	require.NoError(t, err)

	counts := make(map[domain.Status]int)
	for _, entry := range out.Diff {
		counts[entry.Status]++
	}
	assert.Equal(t, 5, counts[domain.StatusUnchanged])
	assert.Equal(t, 6, counts[domain.StatusRemoved])
	assert.Equal(t, 6, counts[domain.StatusAdded])
	assert.Equal(t, 1, counts[domain.StatusModified])

	_, err = service.GenerateDiff(ctx, &svc.GenerateDiffInput{
		CharacterID: "missing",
		ClassID:     "missing-fighter",
		Archetype:   testutils.CreateTwoHandedFighter(),
	})
	assert.Error(t, err)
}

func TestCheckAgainstApplied(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()
	service, _ := setupService(t, repo)
	char := seedFighter(t, repo)
	class := char.Classes[0]
	base := character.CloneAssociations(class.Associations)

	candidate := &domain.Archetype{
		Name:     "Brawler",
		Slug:     "brawler",
		ClassTag: "fighter",
		Features: []*domain.Feature{
			{Name: "Close Control", Level: 2, Kind: domain.KindReplacement, Target: "bravery", SourceID: "pf:close-control"},
		},
	}
	candidateDiff := domain.GenerateDiff(character.CloneAssociations(base), candidate)

	t.Run("nothing applied yields no conflicts", func(t *testing.T) {
		conflicts, err := service.CheckAgainstApplied(ctx, &svc.CheckConflictsInput{
			CharacterID: char.ID,
			ClassID:     class.ID,
			Diff:        candidateDiff,
		})
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	require.True(t, service.Apply(ctx, &svc.ApplyInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      "user-1",
		Archetype:   testutils.CreateTwoHandedFighter(),
	}).Success)

	t.Run("shared base feature is reported", func(t *testing.T) {
		conflicts, err := service.CheckAgainstApplied(ctx, &svc.CheckConflictsInput{
			CharacterID: char.ID,
			ClassID:     class.ID,
			Diff:        candidateDiff,
		})
		require.NoError(t, err)
		require.Len(t, conflicts, 1)
		assert.Equal(t, "fighter:2:bravery", conflicts[0].RefID)
		assert.Equal(t, 2, conflicts[0].Level)
	})

	t.Run("disjoint candidate has no conflicts", func(t *testing.T) {
		disjoint := &domain.Archetype{
			Name:     "Tactician",
			Slug:     "tactician",
			ClassTag: "fighter",
			Features: []*domain.Feature{
				{Name: "Strategic Training", Level: 13, Kind: domain.KindReplacement, Target: "weapon training 3", SourceID: "pf:strategic-training"},
			},
		}
		conflicts, err := service.CheckAgainstApplied(ctx, &svc.CheckConflictsInput{
			CharacterID: char.ID,
			ClassID:     class.ID,
			Diff:        domain.GenerateDiff(character.CloneAssociations(base), disjoint),
		})
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})
}

func TestResolveAllToleratesFailures(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mockcompendium.NewMockClient(ctrl)
	notifier := &recordingNotifier{}
	service := svc.NewService(&svc.ServiceConfig{
		Repository: characters.NewInMemoryRepository(),
		Client:     mockClient,
		Notifier:   notifier,
	})

	refs := []character.FeatureReference{
		{RefID: "fighter:1:bonus-feat", Level: 1},
		{RefID: "fighter:2:bravery", Level: 2},
		{RefID: "fighter:3:broken", Level: 3},
		{RefID: "fighter:5:weapon-training-1", Level: 5},
		{RefID: "fighter:7:armor-training-2", Level: 7, ResolvedName: "Armor Training 2"},
	}

	mockClient.EXPECT().ResolveFeature(gomock.Any(), "fighter:1:bonus-feat").
		Return(&compendium.FeatureDoc{Name: "Bonus Feat"}, nil)
	mockClient.EXPECT().ResolveFeature(gomock.Any(), "fighter:2:bravery").
		Return(&compendium.FeatureDoc{Name: "Bravery"}, nil)
	mockClient.EXPECT().ResolveFeature(gomock.Any(), "fighter:3:broken").
		Return(nil, errors.New("feature not found"))
	mockClient.EXPECT().ResolveFeature(gomock.Any(), "fighter:5:weapon-training-1").
		Return(&compendium.FeatureDoc{Name: "Weapon Training 1"}, nil)
	// the already-resolved reference is not re-fetched

	resolved := service.ResolveAll(ctx, refs)
	require.Len(t, resolved, 5)
	assert.Equal(t, "Bonus Feat", resolved[0].ResolvedName)
	assert.Equal(t, "Bravery", resolved[1].ResolvedName)
	assert.Empty(t, resolved[2].ResolvedName, "the failing reference stays unresolved")
	assert.Equal(t, "fighter:3:broken", resolved[2].RefID, "reference ID is preserved")
	assert.Equal(t, 3, resolved[2].Level, "level is preserved")
	assert.Equal(t, "Weapon Training 1", resolved[3].ResolvedName)
	assert.Equal(t, "Armor Training 2", resolved[4].ResolvedName)

	assert.Equal(t, 1, notifier.warnCount(), "one warning per failed reference")
}

func TestLoadArchetype(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mockcompendium.NewMockClient(ctrl)
	service := svc.NewService(&svc.ServiceConfig{
		Repository: characters.NewInMemoryRepository(),
		Client:     mockClient,
		Notifier:   &recordingNotifier{},
	})

	library := []*compendium.FeatureDoc{
		{RefID: "fighter:2:shattering-strike", Name: "Shattering Strike", Description: "Two-Handed Fighter only. Level: 2\nThis replaces bravery.", Level: 2, ClassKey: "fighter"},
		{RefID: "fighter:2:bravery", Name: "Bravery", Description: "A bonus on saving throws against fear.", Level: 2, ClassKey: "fighter"},
	}
	mockClient.EXPECT().LoadFeatureLibrary(gomock.Any(), "fighter").Return(library, nil)

	arch, err := service.LoadArchetype(ctx, &svc.LoadArchetypeInput{
		Name:     "Two-Handed Fighter",
		ClassKey: "fighter",
	})
	require.NoError(t, err)
	assert.Equal(t, "two-handed-fighter", arch.Slug)
	require.Len(t, arch.Features, 1, "documents not naming the archetype are filtered out")
	feat := arch.Features[0]
	assert.Equal(t, "Shattering Strike", feat.Name)
	assert.Equal(t, domain.KindReplacement, feat.Kind)
	assert.Equal(t, 2, feat.Level)
	assert.Equal(t, "bravery", feat.Target)
	assert.Equal(t, "fighter:2:shattering-strike", feat.SourceID)
}
