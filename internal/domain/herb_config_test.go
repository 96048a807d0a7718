package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHerbConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     HerbConfig
		wantErr error
	}{
		{
			name:    "no patches",
			cfg:     HerbConfig{},
			wantErr: ErrNoPatches,
		},
		{
			name:    "unknown patch",
			cfg:     HerbConfig{Patches: []HerbPatch{PatchCatherby, HerbPatch(42)}},
			wantErr: ErrUnknownPatch,
		},
		{
			name: "valid",
			cfg:  HerbConfig{Patches: []HerbPatch{PatchCatherby}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsConfigError(err))
		})
	}
}

func TestHerbConfig_HasPatch(t *testing.T) {
	cfg := HerbConfig{Patches: []HerbPatch{PatchArdougne, PatchWeiss}}
	assert.True(t, cfg.HasPatch(PatchWeiss))
	assert.False(t, cfg.HasPatch(PatchHosidius))
}

func TestValidateLevel(t *testing.T) {
	for _, lvl := range []int{1, 50, 99} {
		assert.NoError(t, ValidateLevel(lvl))
	}
	for _, lvl := range []int{0, -1, 100} {
		assert.ErrorIs(t, ValidateLevel(lvl), ErrInvalidLevel)
	}
}

func TestIsConfigError(t *testing.T) {
	assert.True(t, IsConfigError(fmt.Errorf("wrapped: %w", ErrSpellLevelTooLow)))
	assert.False(t, IsConfigError(ErrPriceLookup))
	assert.False(t, IsConfigError(errors.New("other")))
	assert.False(t, IsConfigError(nil))
}
