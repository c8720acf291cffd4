package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/RViz3d/archetype-manager/internal/domain/character"
	"github.com/RViz3d/archetype-manager/internal/services"
	archetypeService "github.com/RViz3d/archetype-manager/internal/services/archetype"
)

const commandPrefix = "!archetype"

// Handler routes !archetype message commands to the archetype service. It
// holds no business logic: it parses arguments, calls the engine, and renders
// the returned result.
type Handler struct {
	ServiceProvider *services.Provider
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord message handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
	}
}

// HandleMessage dispatches !archetype subcommands
func (h *Handler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, commandPrefix) {
		return
	}

	args := strings.Fields(m.Content)[1:]
	if len(args) == 0 {
		h.sendHelp(s, m.ChannelID)
		return
	}

	ctx := context.Background()
	switch strings.ToLower(args[0]) {
	case "preview":
		h.handlePreview(ctx, s, m, args[1:])
	case "apply":
		h.handleApply(ctx, s, m, args[1:])
	case "remove":
		h.handleRemove(ctx, s, m, args[1:])
	case "list":
		h.handleList(ctx, s, m, args[1:])
	default:
		h.sendHelp(s, m.ChannelID)
	}
}

// handlePreview renders the diff an archetype would produce, plus any
// conflicts with the already applied set, without changing anything.
func (h *Handler) handlePreview(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		h.sendText(s, m.ChannelID, "Usage: `!archetype preview <class> <archetype name>`")
		return
	}

	char, class, ok := h.lookupClass(ctx, s, m, args[0])
	if !ok {
		return
	}

	arch, err := h.ServiceProvider.ArchetypeService.LoadArchetype(ctx, &archetypeService.LoadArchetypeInput{
		Name:     strings.Join(args[1:], " "),
		ClassKey: class.Key,
	})
	if err != nil {
		h.sendText(s, m.ChannelID, fmt.Sprintf("Failed to load archetype: %v", err))
		return
	}
	if len(arch.Features) == 0 {
		h.sendText(s, m.ChannelID, fmt.Sprintf("No features found for archetype '%s' on class '%s'.", arch.Name, class.Name))
		return
	}

	out, err := h.ServiceProvider.ArchetypeService.GenerateDiff(ctx, &archetypeService.GenerateDiffInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		Archetype:   arch,
	})
	if err != nil {
		h.sendText(s, m.ChannelID, fmt.Sprintf("Failed to generate preview: %v", err))
		return
	}

	conflicts, err := h.ServiceProvider.ArchetypeService.CheckAgainstApplied(ctx, &archetypeService.CheckConflictsInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		Diff:        out.Diff,
	})
	if err != nil {
		log.Printf("conflict check failed for character '%s': %v", char.ID, err)
	}

	h.sendEmbed(s, m.ChannelID, buildDiffEmbed(char, class, arch, out.Diff, conflicts))
}

func (h *Handler) handleApply(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		h.sendText(s, m.ChannelID, "Usage: `!archetype apply <class> <archetype name>`")
		return
	}

	char, class, ok := h.lookupClass(ctx, s, m, args[0])
	if !ok {
		return
	}

	arch, err := h.ServiceProvider.ArchetypeService.LoadArchetype(ctx, &archetypeService.LoadArchetypeInput{
		Name:     strings.Join(args[1:], " "),
		ClassKey: class.Key,
	})
	if err != nil {
		h.sendText(s, m.ChannelID, fmt.Sprintf("Failed to load archetype: %v", err))
		return
	}
	if len(arch.Features) == 0 {
		h.sendText(s, m.ChannelID, fmt.Sprintf("No features found for archetype '%s' on class '%s'.", arch.Name, class.Name))
		return
	}

	result := h.ServiceProvider.ArchetypeService.Apply(ctx, &archetypeService.ApplyInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      m.Author.ID,
		Archetype:   arch,
	})

	h.sendText(s, m.ChannelID, renderApplyResult(arch.Name, char.Name, result))
}

func (h *Handler) handleRemove(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 2 {
		h.sendText(s, m.ChannelID, "Usage: `!archetype remove <class> <archetype-slug>`")
		return
	}

	char, class, ok := h.lookupClass(ctx, s, m, args[0])
	if !ok {
		return
	}

	slug := strings.ToLower(args[1])
	result := h.ServiceProvider.ArchetypeService.Remove(ctx, &archetypeService.RemoveInput{
		CharacterID: char.ID,
		ClassID:     class.ID,
		UserID:      m.Author.ID,
		Slug:        slug,
	})

	h.sendText(s, m.ChannelID, renderRemoveResult(slug, char.Name, result))
}

// handleList shows the class's current feature list and applied archetypes.
func (h *Handler) handleList(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) < 1 {
		h.sendText(s, m.ChannelID, "Usage: `!archetype list <class>`")
		return
	}

	char, class, ok := h.lookupClass(ctx, s, m, args[0])
	if !ok {
		return
	}

	refs := h.ServiceProvider.ArchetypeService.ResolveAll(ctx, class.Associations)
	h.sendEmbed(s, m.ChannelID, buildListEmbed(char, class, refs))
}

// lookupClass finds the caller's character and the named class on it. Lookup
// failures are reported to the channel and ok is false.
func (h *Handler) lookupClass(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, classArg string) (*character.Character, *character.CharacterClass, bool) {
	chars, err := h.ServiceProvider.CharacterRepository.GetByOwner(ctx, m.Author.ID)
	if err != nil {
		h.sendText(s, m.ChannelID, fmt.Sprintf("Failed to look up your characters: %v", err))
		return nil, nil, false
	}
	if len(chars) == 0 {
		h.sendText(s, m.ChannelID, "You don't have a character yet.")
		return nil, nil, false
	}

	char := chars[0]
	class := char.ClassByTag(classArg)
	if class == nil {
		h.sendText(s, m.ChannelID, fmt.Sprintf("%s has no %s class.", char.Name, classArg))
		return nil, nil, false
	}

	return char, class, true
}

func (h *Handler) sendHelp(s *discordgo.Session, channelID string) {
	h.sendText(s, channelID, strings.Join([]string{
		"**Archetype commands:**",
		"`!archetype preview <class> <archetype name>` - preview the feature changes",
		"`!archetype apply <class> <archetype name>` - apply an archetype",
		"`!archetype remove <class> <archetype-slug>` - remove an applied archetype",
		"`!archetype list <class>` - show the class's features and archetypes",
	}, "\n"))
}

func (h *Handler) sendText(s *discordgo.Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("Failed to send message to channel %s: %v", channelID, err)
	}
}

func (h *Handler) sendEmbed(s *discordgo.Session, channelID string, embed *discordgo.MessageEmbed) {
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("Failed to send embed to channel %s: %v", channelID, err)
	}
}
