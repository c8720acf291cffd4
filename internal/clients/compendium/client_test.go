package compendium_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RViz3d/archetype-manager/internal/clients/compendium"
	apperr "github.com/RViz3d/archetype-manager/internal/errors"
)

func TestFormatRefID(t *testing.T) {
	assert.Equal(t, "fighter:5:weapon-training", compendium.FormatRefID("fighter", 5, "weapon-training"))
}

func TestParseRefID(t *testing.T) {
	tests := []struct {
		name        string
		refID       string
		wantClass   string
		wantLevel   int
		wantFeature string
		wantErr     bool
	}{
		{
			name:        "well formed",
			refID:       "fighter:5:weapon-training",
			wantClass:   "fighter",
			wantLevel:   5,
			wantFeature: "weapon-training",
		},
		{
			name:        "feature key containing colons",
			refID:       "monk:3:ki:strike",
			wantClass:   "monk",
			wantLevel:   3,
			wantFeature: "ki:strike",
		},
		{
			name:    "missing parts",
			refID:   "fighter:5",
			wantErr: true,
		},
		{
			name:    "bad level",
			refID:   "fighter:five:weapon-training",
			wantErr: true,
		},
		{
			name:    "empty",
			refID:   "",
			wantErr: true,
		},
		{
			name:    "empty class",
			refID:   ":5:weapon-training",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classKey, level, featureKey, err := compendium.ParseRefID(tt.refID)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantClass, classKey)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantFeature, featureKey)
		})
	}
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := compendium.New(nil)
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidArgument(err))
}
