package archetype

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/RViz3d/archetype-manager/internal/domain/archetype"
	"github.com/RViz3d/archetype-manager/internal/domain/character"
	apperr "github.com/RViz3d/archetype-manager/internal/errors"
)

// ValidateClass checks that an archetype targets the given class. Class tags
// compare case-insensitively.
func ValidateClass(class *character.CharacterClass, arch *domain.Archetype) error {
	if class == nil {
		return apperr.InvalidArgument("class is required")
	}
	if arch == nil {
		return apperr.InvalidArgument("archetype is required")
	}
	if !strings.EqualFold(class.Tag, arch.ClassTag) {
		return apperr.FailedPreconditionf("archetype '%s' is for the %s class, not %s", arch.Name, arch.ClassTag, class.Tag)
	}
	return nil
}

// CheckAgainstApplied reports the conflicts a candidate archetype diff would
// have with every archetype already applied to the class. Each applied
// archetype's diff is rebuilt from its persisted summary against the backed
// up feature list, so conflicts are judged against the same base the applied
// set was judged against.
func (s *service) CheckAgainstApplied(ctx context.Context, input *CheckConflictsInput) ([]domain.Conflict, error) {
	if input == nil || len(input.Diff) == 0 {
		return nil, nil
	}

	char, err := s.repo.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get character '%s': %w", input.CharacterID, err)
	}

	class := char.ClassByID(input.ClassID)
	if class == nil {
		return nil, fmt.Errorf("character '%s' has no class '%s'", input.CharacterID, input.ClassID)
	}

	record, err := s.repo.GetApplicationRecord(ctx, input.CharacterID, input.ClassID)
	if err != nil {
		return nil, fmt.Errorf("failed to get archetype record: %w", err)
	}
	if record.Empty() {
		return nil, nil
	}

	base := record.Backup
	if len(base) == 0 {
		base = class.Associations
	}

	var conflicts []domain.Conflict
	seen := make(map[string]bool)
	for _, slug := range record.AppliedSlugs {
		summary, ok := record.Snapshots[slug]
		if !ok {
			s.notifier.Warn(fmt.Sprintf("no stored summary for applied archetype '%s', skipping conflict check against it", slug))
			continue
		}

		appliedDiff := domain.GenerateDiff(character.CloneAssociations(base), summary.Restore())
		for _, conflict := range domain.DetectConflicts(input.Diff, appliedDiff) {
			key := fmt.Sprintf("%s|%d|%s|%s", conflict.RefID, conflict.Level, conflict.Name, conflict.Reason)
			if seen[key] {
				continue
			}
			seen[key] = true
			conflicts = append(conflicts, conflict)
		}
	}

	return conflicts, nil
}
