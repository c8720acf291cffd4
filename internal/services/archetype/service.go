package archetype

import (
	"context"

	"github.com/RViz3d/archetype-manager/internal/clients/compendium"
	domain "github.com/RViz3d/archetype-manager/internal/domain/archetype"
	"github.com/RViz3d/archetype-manager/internal/domain/character"
	"github.com/RViz3d/archetype-manager/internal/notify"
	"github.com/RViz3d/archetype-manager/internal/repositories/characters"
)

//go:generate mockgen -destination=mock/mock_service.go -package=mockarchetype -source=service.go

// Service is the archetype engine surface. Apply and Remove report expected
// failures (permission, duplicate, class mismatch, busy, not applied) through
// their result, never through a panic or error; unexpected internal errors are
// logged and converted to a failed result.
type Service interface {
	// GenerateDiff computes the leveled diff between a class's current
	// feature list and an archetype
	GenerateDiff(ctx context.Context, input *GenerateDiffInput) (*GenerateDiffOutput, error)

	// Apply applies an archetype to a character class as a single logical
	// transaction with rollback on any failure
	Apply(ctx context.Context, input *ApplyInput) *ApplyResult

	// Remove reverses a previously applied archetype, fully when it is the
	// last one applied, selectively otherwise
	Remove(ctx context.Context, input *RemoveInput) *RemoveResult

	// CheckAgainstApplied reports the conflicts a new archetype would have
	// with the archetypes already applied to the class
	CheckAgainstApplied(ctx context.Context, input *CheckConflictsInput) ([]domain.Conflict, error)

	// ResolveAll resolves the display names of feature references, tolerating
	// individual failures
	ResolveAll(ctx context.Context, refs []character.FeatureReference) []character.FeatureReference

	// LoadArchetype builds an archetype definition from the content source's
	// feature library
	LoadArchetype(ctx context.Context, input *LoadArchetypeInput) (*domain.Archetype, error)
}

// GenerateDiffInput identifies the class and archetype to diff
type GenerateDiffInput struct {
	CharacterID string
	ClassID     string
	Archetype   *domain.Archetype
}

// GenerateDiffOutput carries the computed diff
type GenerateDiffOutput struct {
	Diff []domain.DiffEntry
}

// ApplyInput carries everything needed to apply an archetype
type ApplyInput struct {
	CharacterID string
	ClassID     string
	UserID      string
	Elevated    bool // GM or similar role bypassing the ownership check

	Archetype *domain.Archetype

	// Diff is an optional precomputed diff (from a preview); when nil the
	// engine computes it
	Diff []domain.DiffEntry
}

// ApplyResult reports the outcome of an apply attempt
type ApplyResult struct {
	Success    bool
	Reason     string // user-facing reason when Success is false
	RolledBack bool
}

// RemoveInput identifies the archetype to reverse
type RemoveInput struct {
	CharacterID string
	ClassID     string
	UserID      string
	Elevated    bool
	Slug        string
}

// RemoveResult reports the outcome of a remove attempt. Partial is set when
// other archetypes remained applied, meaning the feature list was not
// restored from backup, only the tracking state and copy records changed.
type RemoveResult struct {
	Success bool
	Reason  string
	Partial bool
}

// CheckConflictsInput identifies the class and the candidate archetype diff
type CheckConflictsInput struct {
	CharacterID string
	ClassID     string
	Diff        []domain.DiffEntry
}

// LoadArchetypeInput names an archetype and the class whose feature library
// seeds its parsing
type LoadArchetypeInput struct {
	Name     string
	ClassKey string
}

// ServiceConfig holds configuration for creating the archetype service
type ServiceConfig struct {
	Repository characters.Repository
	Client     compendium.Client
	Notifier   notify.Notifier
}

type service struct {
	repo     characters.Repository
	client   compendium.Client
	notifier notify.Notifier
	guard    *OperationGuard
}

// NewService creates the archetype engine
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("Repository cannot be nil")
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.NewLogNotifier()
	}

	return &service{
		repo:     cfg.Repository,
		client:   cfg.Client,
		notifier: notifier,
		guard:    NewOperationGuard(),
	}
}
