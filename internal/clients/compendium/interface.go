package compendium

//go:generate mockgen -destination=mock/mock_client.go -package=mockcompendium . Client

import "context"

// ClassInfo is the subset of class data the archetype engine needs.
type ClassInfo struct {
	Key  string
	Name string
	Tag  string
}

// FeatureDoc is one leveled class feature document from the content source.
// RefID is the engine-wide reference form "classKey:level:featureKey".
type FeatureDoc struct {
	RefID       string
	Key         string
	Name        string
	Description string
	Level       int
	ClassKey    string
}

// Client looks up classes and class features in the external content source.
// Lookups may fail; callers that must stay tolerant (the feature resolver)
// convert errors to warnings.
type Client interface {
	// GetClass fetches class info by key
	GetClass(ctx context.Context, key string) (*ClassInfo, error)

	// GetClassFeatures fetches the feature documents a class grants at a level
	GetClassFeatures(ctx context.Context, classKey string, level int) ([]*FeatureDoc, error)

	// ResolveFeature resolves a "classKey:level:featureKey" reference to its
	// feature document
	ResolveFeature(ctx context.Context, refID string) (*FeatureDoc, error)

	// LoadFeatureLibrary returns every leveled feature document of a class.
	// A class the content source does not know yields an empty list, not an
	// error.
	LoadFeatureLibrary(ctx context.Context, classKey string) ([]*FeatureDoc, error)
}
