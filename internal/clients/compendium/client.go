package compendium

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	apperr "github.com/RViz3d/archetype-manager/internal/errors"
)

const maxClassLevel = 20

// TODO: push context through the upstream API client once it accepts one
type client struct {
	api dnd5e.Interface

	mu    sync.Mutex
	cache map[string][]*FeatureDoc // classKey:level -> features
}

// Config holds configuration for the compendium client
type Config struct {
	HttpClient *http.Client
}

// New creates a compendium client backed by the dnd5e API.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg cannot be nil")
	}

	api, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		api:   api,
		cache: make(map[string][]*FeatureDoc),
	}, nil
}

func (c *client) GetClass(ctx context.Context, key string) (*ClassInfo, error) {
	if key == "" {
		return nil, apperr.InvalidArgument("class key is required")
	}

	class, err := c.api.GetClass(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get class '%s': %w", key, err)
	}

	return &ClassInfo{
		Key:  class.Key,
		Name: class.Name,
		Tag:  strings.ToLower(class.Key),
	}, nil
}

func (c *client) GetClassFeatures(ctx context.Context, classKey string, level int) ([]*FeatureDoc, error) {
	if classKey == "" {
		return nil, apperr.InvalidArgument("class key is required")
	}

	cacheKey := fmt.Sprintf("%s:%d", classKey, level)

	c.mu.Lock()
	cached, ok := c.cache[cacheKey]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	classLevel, err := c.api.GetClassLevel(classKey, level)
	if err != nil {
		return nil, fmt.Errorf("failed to get level %d for class '%s': %w", level, classKey, err)
	}

	features := make([]*FeatureDoc, 0, len(classLevel.Features))
	for _, ref := range classLevel.Features {
		if ref.Key == "" {
			continue
		}
		features = append(features, &FeatureDoc{
			RefID:    FormatRefID(classKey, level, ref.Key),
			Key:      ref.Key,
			Name:     ref.Name,
			Level:    level,
			ClassKey: classKey,
		})
	}

	c.mu.Lock()
	c.cache[cacheKey] = features
	c.mu.Unlock()

	return features, nil
}

func (c *client) ResolveFeature(ctx context.Context, refID string) (*FeatureDoc, error) {
	classKey, level, featureKey, err := ParseRefID(refID)
	if err != nil {
		return nil, err
	}

	features, err := c.GetClassFeatures(ctx, classKey, level)
	if err != nil {
		return nil, err
	}

	for _, doc := range features {
		if doc.Key == featureKey {
			return doc, nil
		}
	}

	return nil, apperr.NotFoundf("feature '%s' not found at %s level %d", featureKey, classKey, level)
}

func (c *client) LoadFeatureLibrary(ctx context.Context, classKey string) ([]*FeatureDoc, error) {
	if classKey == "" {
		return nil, apperr.InvalidArgument("class key is required")
	}

	// An unknown class means an absent content source for this class, which
	// is an empty library rather than an error
	if _, err := c.api.GetClass(classKey); err != nil {
		log.Printf("compendium: class '%s' not available: %v", classKey, err)
		return []*FeatureDoc{}, nil
	}

	var library []*FeatureDoc
	for level := 1; level <= maxClassLevel; level++ {
		features, err := c.GetClassFeatures(ctx, classKey, level)
		if err != nil {
			log.Printf("compendium: skipping %s level %d: %v", classKey, level, err)
			continue
		}
		library = append(library, features...)
	}

	return library, nil
}

// FormatRefID builds the canonical "classKey:level:featureKey" reference.
func FormatRefID(classKey string, level int, featureKey string) string {
	return fmt.Sprintf("%s:%d:%s", classKey, level, featureKey)
}

// ParseRefID splits a "classKey:level:featureKey" reference.
func ParseRefID(refID string) (classKey string, level int, featureKey string, err error) {
	parts := strings.SplitN(refID, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return "", 0, "", apperr.InvalidArgumentf("malformed feature reference '%s'", refID)
	}

	level, convErr := strconv.Atoi(parts[1])
	if convErr != nil {
		return "", 0, "", apperr.InvalidArgumentf("malformed feature reference '%s': bad level", refID)
	}

	return parts[0], level, parts[2], nil
}
