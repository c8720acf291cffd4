package archetype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RViz3d/archetype-manager/internal/domain/archetype"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple name",
			input: "Two-Handed Fighter",
			want:  "two-handed-fighter",
		},
		{
			name:  "collapses punctuation runs",
			input: "Oracle of Life!!  (Variant)",
			want:  "oracle-of-life-variant",
		},
		{
			name:  "trims edges",
			input: "  Mobile Fighter  ",
			want:  "mobile-fighter",
		},
		{
			name:  "digits preserved",
			input: "Weapon Master 2",
			want:  "weapon-master-2",
		},
		{
			name:  "already a slug",
			input: "sword-saint",
			want:  "sword-saint",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "!!!",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, archetype.Slugify(tt.input))
		})
	}
}
