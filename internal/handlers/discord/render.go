package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	domain "github.com/RViz3d/archetype-manager/internal/domain/archetype"
	"github.com/RViz3d/archetype-manager/internal/domain/character"
	archetypeService "github.com/RViz3d/archetype-manager/internal/services/archetype"
)

func statusMarker(status domain.Status) string {
	switch status {
	case domain.StatusAdded:
		return "✨"
	case domain.StatusRemoved:
		return "❌"
	case domain.StatusModified:
		return "🔧"
	default:
		return "•"
	}
}

// renderDiffLines formats a diff one line per entry, level-prefixed
func renderDiffLines(diff []domain.DiffEntry) []string {
	lines := make([]string, 0, len(diff))
	for _, entry := range diff {
		line := fmt.Sprintf("%s Lv %d: %s", statusMarker(entry.Status), entry.Level, entry.Name)
		if entry.Status == domain.StatusAdded && entry.Original != nil {
			replaced := entry.Original.ResolvedName
			if replaced == "" {
				replaced = entry.Original.RefID
			}
			line += fmt.Sprintf(" (replaces %s)", replaced)
		}
		lines = append(lines, line)
	}
	return lines
}

func renderConflictLines(conflicts []domain.Conflict) []string {
	lines := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		lines = append(lines, fmt.Sprintf("⚠️ Lv %d %s: %s", c.Level, c.Name, c.Reason))
	}
	return lines
}

func buildDiffEmbed(char *character.Character, class *character.CharacterClass, arch *domain.Archetype, diff []domain.DiffEntry, conflicts []domain.Conflict) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s on %s (%s)", arch.Name, char.Name, class.Name),
		Description: strings.Join(renderDiffLines(diff), "\n"),
		Color:       0x3498db,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("!archetype apply %s %s", strings.ToLower(class.Tag), arch.Name),
		},
	}

	if len(conflicts) > 0 {
		embed.Color = 0xe67e22
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Conflicts with applied archetypes",
			Value: strings.Join(renderConflictLines(conflicts), "\n"),
		})
	}

	return embed
}

func buildListEmbed(char *character.Character, class *character.CharacterClass, refs []character.FeatureReference) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(refs))
	for _, ref := range refs {
		name := ref.ResolvedName
		if name == "" {
			name = ref.RefID
		}
		lines = append(lines, fmt.Sprintf("Lv %d: %s", ref.Level, name))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s: %s features", char.Name, class.Name),
		Description: strings.Join(lines, "\n"),
		Color:       0x2ecc71,
	}

	if applied := char.AppliedArchetypes(class.Tag); len(applied) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Applied archetypes",
			Value: strings.Join(applied, ", "),
		})
	}

	if records := modifiedCopyLines(char); len(records) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Modified features",
			Value: strings.Join(records, "\n"),
		})
	}

	return embed
}

func modifiedCopyLines(char *character.Character) []string {
	var lines []string
	for _, rec := range char.CopyRecords {
		if rec.IsModifiedCopy {
			lines = append(lines, rec.Name)
		}
	}
	return lines
}

func renderApplyResult(archName, charName string, result *archetypeService.ApplyResult) string {
	if result.Success {
		return fmt.Sprintf("✅ Applied **%s** to %s.", archName, charName)
	}
	if result.RolledBack {
		return fmt.Sprintf("❌ Applying **%s** failed and all changes were rolled back: %s", archName, result.Reason)
	}
	return fmt.Sprintf("❌ Could not apply **%s**: %s", archName, result.Reason)
}

func renderRemoveResult(slug, charName string, result *archetypeService.RemoveResult) string {
	if !result.Success {
		return fmt.Sprintf("❌ Could not remove **%s**: %s", slug, result.Reason)
	}
	if result.Partial {
		return fmt.Sprintf("✅ Removed **%s** from %s. Other archetypes remain applied, so the feature list was left in place.", slug, charName)
	}
	return fmt.Sprintf("✅ Removed **%s** from %s and restored the original features.", slug, charName)
}
