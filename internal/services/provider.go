package services

import (
	"github.com/RViz3d/archetype-manager/internal/clients/compendium"
	"github.com/RViz3d/archetype-manager/internal/notify"
	"github.com/RViz3d/archetype-manager/internal/repositories/characters"
	archetypeService "github.com/RViz3d/archetype-manager/internal/services/archetype"
)

// Provider holds all service instances
type Provider struct {
	ArchetypeService    archetypeService.Service
	CharacterRepository characters.Repository
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CompendiumClient    compendium.Client
	CharacterRepository characters.Repository
	Notifier            notify.Notifier
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	archService := archetypeService.NewService(&archetypeService.ServiceConfig{
		Repository: charRepo,
		Client:     cfg.CompendiumClient,
		Notifier:   cfg.Notifier,
	})

	return &Provider{
		ArchetypeService:    archService,
		CharacterRepository: charRepo,
	}
}
