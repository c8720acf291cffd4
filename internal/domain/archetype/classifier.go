package archetype

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/RViz3d/archetype-manager/internal/domain/character"
)

// Classification patterns. These mirror the phrasing conventions of archetype
// feature descriptions: an explicit "Level: N" marker, a "this (ability)
// replaces X" sentence, a "this (ability) modifies X" sentence, and the
// variant phrasing "as the X ability, but ...".
var (
	levelRe   = regexp.MustCompile(`(?i)\blevel\s*:\s*(\d+)`)
	replaceRe = regexp.MustCompile(`(?i)\bthis\s+(?:ability\s+|feature\s+)?replaces\s+([^.;\n]+)`)
	modifyRe  = regexp.MustCompile(`(?i)\bthis\s+(?:ability\s+|feature\s+)?(?:modifies|alters)\s+([^.;\n]+)`)
	variantRe = regexp.MustCompile(`(?i)\bas\s+the\s+([^.;\n]+?)\s+(?:class\s+feature|ability|feature)\s*,?\s+(?:but|except)\b`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeTarget lowercases a target name, collapses internal whitespace,
// and trims surrounding space and trailing punctuation.
func NormalizeTarget(name string) string {
	normalized := whitespaceRe.ReplaceAllString(strings.ToLower(name), " ")
	normalized = strings.TrimSpace(normalized)
	return strings.TrimRight(normalized, ".,;:!")
}

// ExtractLevel finds an explicit "Level: N" marker in a feature description.
// The second return is false when no marker is present or the description is
// empty.
func ExtractLevel(description string) (int, bool) {
	if description == "" {
		return 0, false
	}

	match := levelRe.FindStringSubmatch(description)
	if match == nil {
		return 0, false
	}

	level, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return level, true
}

// ExtractReplaceTarget finds a "this replaces X" phrase and returns the
// normalized target name.
func ExtractReplaceTarget(description string) (string, bool) {
	match := replaceRe.FindStringSubmatch(description)
	if match == nil {
		return "", false
	}
	return NormalizeTarget(match[1]), true
}

// ExtractModifyTarget finds a "this modifies X" phrase and returns the
// normalized target name.
func ExtractModifyTarget(description string) (string, bool) {
	match := modifyRe.FindStringSubmatch(description)
	if match == nil {
		return "", false
	}
	return NormalizeTarget(match[1]), true
}

// Classify parses a feature description into its kind and target. Replacement
// wins over modification when both phrases appear; a level marker with no
// replace/modify phrase means additive; nothing extractable means unknown.
func Classify(description string) (Kind, string) {
	if description == "" {
		return KindUnknown, ""
	}

	if target, ok := ExtractReplaceTarget(description); ok {
		return KindReplacement, target
	}

	if target, ok := ExtractModifyTarget(description); ok {
		return KindModification, target
	}

	if _, ok := ExtractLevel(description); ok {
		return KindAdditive, ""
	}

	return KindUnknown, ""
}

// IsVariantPhrasing detects the "as the existing ability X, but ..." pattern,
// a hint that a feature is a refinement rather than a hard replacement. Used
// by callers for display and warnings, never by the diff algorithm.
func IsVariantPhrasing(description string) bool {
	return variantRe.MatchString(description)
}

// MatchTarget finds the base feature a normalized target name refers to.
// Matching is case-insensitive with collapsed whitespace, exact first, then a
// fuzzy prefix/substring pass. Returns nil when nothing matches.
func MatchTarget(targetName string, resolved []character.FeatureReference) *character.FeatureReference {
	target := NormalizeTarget(targetName)
	if target == "" {
		return nil
	}

	for i := range resolved {
		if NormalizeTarget(resolved[i].ResolvedName) == target {
			return &resolved[i]
		}
	}

	// Fuzzy pass: "weapon training" should match "Weapon Training (Ex)" and
	// "weapon training 1"
	for i := range resolved {
		name := NormalizeTarget(resolved[i].ResolvedName)
		if name == "" {
			continue
		}
		if strings.HasPrefix(name, target) || strings.HasPrefix(target, name) {
			return &resolved[i]
		}
	}

	return nil
}
