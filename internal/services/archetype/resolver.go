package archetype

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/RViz3d/archetype-manager/internal/domain/archetype"
	"github.com/RViz3d/archetype-manager/internal/domain/character"
)

// Resolve resolves a single feature reference to its display name. It never
// fails: a missing or malformed reference, or an error from the content
// source, yields ("", false) and exactly one logged warning.
func (s *service) Resolve(ctx context.Context, refID string) (string, bool) {
	if refID == "" {
		s.notifier.Warn("feature reference is empty, leaving it unresolved")
		return "", false
	}
	if s.client == nil {
		s.notifier.Warn(fmt.Sprintf("no content source configured, cannot resolve '%s'", refID))
		return "", false
	}

	doc, err := s.client.ResolveFeature(ctx, refID)
	if err != nil {
		s.notifier.Warn(fmt.Sprintf("failed to resolve feature reference '%s': %v", refID, err))
		return "", false
	}

	return doc.Name, true
}

// ResolveAll resolves each reference independently, preserving input order
// and the original level and reference ID values exactly. One failure never
// blocks the others.
func (s *service) ResolveAll(ctx context.Context, refs []character.FeatureReference) []character.FeatureReference {
	resolved := make([]character.FeatureReference, len(refs))
	for i, ref := range refs {
		resolved[i] = ref
		if ref.ResolvedName != "" {
			continue
		}
		if name, ok := s.Resolve(ctx, ref.RefID); ok {
			resolved[i].ResolvedName = name
		}
	}
	return resolved
}

// LoadArchetype builds an archetype definition by classifying every feature
// document in the class's library whose description names the archetype, plus
// any document whose own name carries the archetype's name. An empty library
// yields an archetype with no features, not an error.
func (s *service) LoadArchetype(ctx context.Context, input *LoadArchetypeInput) (*domain.Archetype, error) {
	if input == nil || input.Name == "" {
		return nil, fmt.Errorf("archetype name is required")
	}
	if s.client == nil {
		return nil, fmt.Errorf("no content source configured")
	}

	library, err := s.client.LoadFeatureLibrary(ctx, input.ClassKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load feature library for '%s': %w", input.ClassKey, err)
	}

	needle := strings.ToLower(input.Name)
	var docs []domain.SourceDoc
	for _, doc := range library {
		if !strings.Contains(strings.ToLower(doc.Name), needle) &&
			!strings.Contains(strings.ToLower(doc.Description), needle) {
			continue
		}
		docs = append(docs, domain.SourceDoc{
			ID:          doc.RefID,
			Name:        doc.Name,
			Description: doc.Description,
		})
	}

	return domain.Parse(input.Name, input.ClassKey, docs), nil
}
