package archetype

import (
	"context"
	"fmt"
	"log"
	"time"

	domain "github.com/RViz3d/archetype-manager/internal/domain/archetype"
	"github.com/RViz3d/archetype-manager/internal/domain/character"
	apperr "github.com/RViz3d/archetype-manager/internal/errors"
)

const modifiedCopyDescription = "This feature is modified by an applied archetype."

// GenerateDiff computes the leveled diff between the class's current feature
// list and the archetype. It is read-only and safe to run while another
// operation holds the guard.
func (s *service) GenerateDiff(ctx context.Context, input *GenerateDiffInput) (*GenerateDiffOutput, error) {
	if input == nil || input.Archetype == nil {
		return nil, fmt.Errorf("an archetype is required")
	}

	char, err := s.repo.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get character '%s': %w", input.CharacterID, err)
	}

	class := char.ClassByID(input.ClassID)
	if class == nil {
		return nil, fmt.Errorf("character '%s' has no class '%s'", input.CharacterID, input.ClassID)
	}

	return &GenerateDiffOutput{
		Diff: domain.GenerateDiff(class.Associations, input.Archetype),
	}, nil
}

// Apply applies an archetype to a character class. The persistence layer has
// no transactions, so the sequence of writes is treated as a pseudo
// transaction: the pre-apply state is captured first, and any failed write
// triggers a best-effort restore of everything written so far. Expected
// failures and internal errors alike come back through the result; Apply
// never panics out.
func (s *service) Apply(ctx context.Context, input *ApplyInput) (result *ApplyResult) {
	defer func() {
		if r := recover(); r != nil {
			s.notifier.Error(fmt.Sprintf("archetype apply panicked: %v", r))
			result = &ApplyResult{Reason: "an internal error occurred"}
		}
	}()

	if input == nil || input.Archetype == nil {
		return s.applyFailure(apperr.InvalidArgument("an archetype is required"))
	}
	arch := input.Archetype

	if !s.guard.TryAcquire() {
		return s.applyFailure(apperr.Unavailable("another archetype operation is in progress, try again shortly"))
	}
	defer s.guard.Release()

	char, err := s.repo.Get(ctx, input.CharacterID)
	if err != nil {
		return s.applyFailure(apperr.Wrapf(err, "failed to get character '%s'", input.CharacterID))
	}

	if !input.Elevated && char.OwnerID != input.UserID {
		return s.applyFailure(apperr.PermissionDenied(fmt.Sprintf("you do not own character '%s'", char.Name)))
	}

	class := char.ClassByID(input.ClassID)
	if class == nil {
		return s.applyFailure(apperr.NotFoundf("character '%s' has no class '%s'", char.Name, input.ClassID))
	}

	if err := ValidateClass(class, arch); err != nil {
		return s.applyFailure(err)
	}

	record, err := s.repo.GetApplicationRecord(ctx, input.CharacterID, input.ClassID)
	if err != nil {
		return s.applyFailure(apperr.Wrap(err, "failed to get archetype record"))
	}

	if record.HasSlug(arch.Slug) {
		return s.applyFailure(apperr.AlreadyExistsf("archetype '%s' is already applied to this class", arch.Name))
	}

	diff := input.Diff
	if diff == nil {
		diff = domain.GenerateDiff(class.Associations, arch)
	}

	// Pre-apply state, captured before the first write. This is what a
	// failed apply restores.
	prior := capturePriorState(class, record)

	fresh := record == nil
	if fresh {
		record = &domain.ApplicationRecord{
			Backup: character.CloneAssociations(class.Associations),
		}
	}

	newRefs := domain.BuildNewAssociations(arch.Slug, diff)
	if err := s.repo.UpdateAssociations(ctx, input.CharacterID, input.ClassID, newRefs); err != nil {
		return s.rollbackApply(ctx, input, class.Tag, prior, fresh, nil,
			fmt.Sprintf("failed to update feature list: %v", err))
	}

	copyRecs := buildCopyRecords(arch, diff)
	var createdIDs []string
	if len(copyRecs) > 0 {
		created, err := s.repo.CreateCopyRecords(ctx, input.CharacterID, copyRecs)
		if err != nil {
			return s.rollbackApply(ctx, input, class.Tag, prior, fresh, nil,
				fmt.Sprintf("failed to create copy records: %v", err))
		}
		for _, rec := range created {
			createdIDs = append(createdIDs, rec.ID)
		}
	}

	record.AddSlug(arch.Slug, domain.Summarize(arch), time.Now().UTC())
	if err := s.repo.SetApplicationRecord(ctx, input.CharacterID, input.ClassID, record); err != nil {
		return s.rollbackApply(ctx, input, class.Tag, prior, fresh, createdIDs,
			fmt.Sprintf("failed to store archetype record: %v", err))
	}

	if err := s.repo.UpdateArchetypeIndex(ctx, input.CharacterID, class.Tag, record.AppliedSlugs); err != nil {
		return s.rollbackApply(ctx, input, class.Tag, prior, fresh, createdIDs,
			fmt.Sprintf("failed to update archetype index: %v", err))
	}

	s.notifier.Info(fmt.Sprintf("Applied archetype '%s' to %s (%s)", arch.Name, char.Name, class.Name))
	return &ApplyResult{Success: true}
}

// Remove reverses a previously applied archetype. When the slug is the last
// one applied, the class feature list is restored from the backup and the
// tracking record is cleared entirely. When other archetypes remain, only the
// tracking state and the slug's copy records change; the feature list is left
// as-is because the stacked diffs cannot be algebraically subtracted.
func (s *service) Remove(ctx context.Context, input *RemoveInput) (result *RemoveResult) {
	defer func() {
		if r := recover(); r != nil {
			s.notifier.Error(fmt.Sprintf("archetype remove panicked: %v", r))
			result = &RemoveResult{Reason: "an internal error occurred"}
		}
	}()

	if input == nil || input.Slug == "" {
		return s.removeFailure(apperr.InvalidArgument("an archetype slug is required"))
	}

	if !s.guard.TryAcquire() {
		return s.removeFailure(apperr.Unavailable("another archetype operation is in progress, try again shortly"))
	}
	defer s.guard.Release()

	char, err := s.repo.Get(ctx, input.CharacterID)
	if err != nil {
		return s.removeFailure(apperr.Wrapf(err, "failed to get character '%s'", input.CharacterID))
	}

	if !input.Elevated && char.OwnerID != input.UserID {
		return s.removeFailure(apperr.PermissionDenied(fmt.Sprintf("you do not own character '%s'", char.Name)))
	}

	class := char.ClassByID(input.ClassID)
	if class == nil {
		return s.removeFailure(apperr.NotFoundf("character '%s' has no class '%s'", char.Name, input.ClassID))
	}

	record, err := s.repo.GetApplicationRecord(ctx, input.CharacterID, input.ClassID)
	if err != nil {
		return s.removeFailure(apperr.Wrap(err, "failed to get archetype record"))
	}

	if !record.HasSlug(input.Slug) {
		return s.removeFailure(apperr.FailedPreconditionf("archetype '%s' is not applied to this class", input.Slug))
	}

	slugRecords := char.CopyRecordsBySlug(input.Slug)
	var copyIDs []string
	for _, rec := range slugRecords {
		copyIDs = append(copyIDs, rec.ID)
	}

	prior := capturePriorState(class, record)
	last := len(record.AppliedSlugs) == 1
	partial := !last

	if last {
		if err := s.repo.UpdateAssociations(ctx, input.CharacterID, input.ClassID, record.Backup); err != nil {
			return s.removeFailure(apperr.Wrap(err, "failed to restore feature list"))
		}
	}

	if len(copyIDs) > 0 {
		if err := s.repo.DeleteCopyRecords(ctx, input.CharacterID, copyIDs); err != nil {
			s.rollbackRemove(ctx, input, class.Tag, prior, nil)
			return s.removeFailure(apperr.Wrap(err, "failed to delete copy records"))
		}
	}

	record.RemoveSlug(input.Slug)
	if last {
		err = s.repo.ClearApplicationRecord(ctx, input.CharacterID, input.ClassID)
	} else {
		err = s.repo.SetApplicationRecord(ctx, input.CharacterID, input.ClassID, record)
	}
	if err != nil {
		s.rollbackRemove(ctx, input, class.Tag, prior, slugRecords)
		return s.removeFailure(apperr.Wrap(err, "failed to update archetype record"))
	}

	if err := s.repo.UpdateArchetypeIndex(ctx, input.CharacterID, class.Tag, record.AppliedSlugs); err != nil {
		s.rollbackRemove(ctx, input, class.Tag, prior, slugRecords)
		return s.removeFailure(apperr.Wrap(err, "failed to update archetype index"))
	}

	s.notifier.Info(fmt.Sprintf("Removed archetype '%s' from %s (%s)", input.Slug, char.Name, class.Name))
	return &RemoveResult{Success: true, Partial: partial}
}

// priorState is the pre-operation snapshot an apply or remove restores from
// when one of its writes fails partway through.
type priorState struct {
	associations []character.FeatureReference
	record       *domain.ApplicationRecord
	slugs        []string
}

func capturePriorState(class *character.CharacterClass, record *domain.ApplicationRecord) priorState {
	prior := priorState{
		associations: character.CloneAssociations(class.Associations),
	}
	if record != nil {
		prior.record = cloneRecord(record)
		prior.slugs = append([]string(nil), record.AppliedSlugs...)
	}
	return prior
}

func cloneRecord(record *domain.ApplicationRecord) *domain.ApplicationRecord {
	clone := &domain.ApplicationRecord{
		AppliedSlugs: append([]string(nil), record.AppliedSlugs...),
		Backup:       character.CloneAssociations(record.Backup),
	}
	if record.AppliedAt != nil {
		at := *record.AppliedAt
		clone.AppliedAt = &at
	}
	if record.Snapshots != nil {
		clone.Snapshots = make(map[string]domain.Summary, len(record.Snapshots))
		for slug, summary := range record.Snapshots {
			clone.Snapshots[slug] = summary
		}
	}
	return clone
}

// rollbackApply undoes the writes an apply made before failing. Restore
// errors are logged and swallowed; the attempt already failed and the caller
// gets exactly one report of that.
func (s *service) rollbackApply(ctx context.Context, input *ApplyInput, classTag string, prior priorState, fresh bool, createdIDs []string, reason string) *ApplyResult {
	if err := s.repo.UpdateAssociations(ctx, input.CharacterID, input.ClassID, prior.associations); err != nil {
		log.Printf("rollback: failed to restore feature list for character '%s': %v", input.CharacterID, err)
	}

	if len(createdIDs) > 0 {
		if err := s.repo.DeleteCopyRecords(ctx, input.CharacterID, createdIDs); err != nil {
			log.Printf("rollback: failed to delete copy records for character '%s': %v", input.CharacterID, err)
		}
	}

	var err error
	if fresh {
		err = s.repo.ClearApplicationRecord(ctx, input.CharacterID, input.ClassID)
	} else {
		err = s.repo.SetApplicationRecord(ctx, input.CharacterID, input.ClassID, prior.record)
	}
	if err != nil {
		log.Printf("rollback: failed to restore archetype record for character '%s': %v", input.CharacterID, err)
	}

	if err := s.repo.UpdateArchetypeIndex(ctx, input.CharacterID, classTag, prior.slugs); err != nil {
		log.Printf("rollback: failed to restore archetype index for character '%s': %v", input.CharacterID, err)
	}

	s.notifier.Error(fmt.Sprintf("Archetype apply failed and was rolled back: %s", reason))
	return &ApplyResult{Reason: reason, RolledBack: true}
}

// rollbackRemove restores the pre-remove state after a write failed partway.
// Re-created copy records come back under fresh IDs.
func (s *service) rollbackRemove(ctx context.Context, input *RemoveInput, classTag string, prior priorState, deleted []*character.CopyRecord) {
	if err := s.repo.UpdateAssociations(ctx, input.CharacterID, input.ClassID, prior.associations); err != nil {
		log.Printf("rollback: failed to restore feature list for character '%s': %v", input.CharacterID, err)
	}

	if len(deleted) > 0 {
		if _, err := s.repo.CreateCopyRecords(ctx, input.CharacterID, deleted); err != nil {
			log.Printf("rollback: failed to restore copy records for character '%s': %v", input.CharacterID, err)
		}
	}

	if err := s.repo.SetApplicationRecord(ctx, input.CharacterID, input.ClassID, prior.record); err != nil {
		log.Printf("rollback: failed to restore archetype record for character '%s': %v", input.CharacterID, err)
	}

	if err := s.repo.UpdateArchetypeIndex(ctx, input.CharacterID, classTag, prior.slugs); err != nil {
		log.Printf("rollback: failed to restore archetype index for character '%s': %v", input.CharacterID, err)
	}
}

func (s *service) applyFailure(err error) *ApplyResult {
	s.notifier.Warn(fmt.Sprintf("Archetype apply failed: %v", err))
	return &ApplyResult{Reason: err.Error()}
}

func (s *service) removeFailure(err error) *RemoveResult {
	s.notifier.Warn(fmt.Sprintf("Archetype remove failed: %v", err))
	return &RemoveResult{Reason: err.Error()}
}

// buildCopyRecords produces one modified-copy record per Modified diff entry,
// named after the base feature with the archetype's name appended.
func buildCopyRecords(arch *domain.Archetype, diff []domain.DiffEntry) []*character.CopyRecord {
	var records []*character.CopyRecord
	for _, entry := range diff {
		if entry.Status != domain.StatusModified {
			continue
		}
		// A modified entry with no feature attached has nothing to copy
		if entry.Feature == nil {
			continue
		}

		description := entry.Feature.Description
		if description == "" {
			description = modifiedCopyDescription
		}

		records = append(records, &character.CopyRecord{
			CreatedBySlug:  arch.Slug,
			IsModifiedCopy: true,
			Name:           fmt.Sprintf("%s (%s)", entry.Name, arch.Name),
			Description:    description,
		})
	}
	return records
}
