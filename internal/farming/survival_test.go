package farming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/utils"
)

func TestDiseaseChance(t *testing.T) {
	tests := []struct {
		name    string
		compost domain.Compost
		anima   domain.AnimaPlant
		want    float64
	}{
		{"no compost", domain.CompostNone, domain.AnimaNone, 27.0 / 128},
		{"compost", domain.CompostNormal, domain.AnimaNone, 14.0 / 128},
		{"supercompost", domain.CompostSuper, domain.AnimaNone, 6.0 / 128},
		{"ultracompost", domain.CompostUltra, domain.AnimaNone, 3.0 / 128},
		{"iasor floors 5.4 to 5", domain.CompostNone, domain.AnimaIasor, 5.0 / 128},
		{"iasor floors 2.8 to 2", domain.CompostNormal, domain.AnimaIasor, 2.0 / 128},
		{"iasor never reaches zero", domain.CompostUltra, domain.AnimaIasor, 1.0 / 128},
		{"attas does not affect disease", domain.CompostSuper, domain.AnimaAttas, 6.0 / 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &domain.HerbConfig{Compost: tt.compost, AnimaPlant: tt.anima}
			assert.Equal(t, tt.want, DiseaseChance(domain.PatchArdougne, cfg))
		})
	}
}

func TestDiseaseChance_DiseaseFreePatches(t *testing.T) {
	cfg := &domain.HerbConfig{HosidiusFiftyFavor: true}
	for _, compost := range domain.Composts() {
		for _, anima := range domain.AnimaPlants() {
			cfg.Compost, cfg.AnimaPlant = compost, anima
			for _, patch := range []domain.HerbPatch{domain.PatchTrollStronghold, domain.PatchWeiss, domain.PatchHosidius} {
				assert.Zero(t, DiseaseChance(patch, cfg), "%s %s %s", patch, compost, anima)
				assert.Equal(t, 1.0, Survival(DiseaseChance(patch, cfg), nil).Chance)
			}
		}
	}
}

func TestResurrectChance(t *testing.T) {
	chance, err := ResurrectChance(78)
	require.NoError(t, err)
	assert.Equal(t, 0.5, chance)

	chance, err = ResurrectChance(99)
	require.NoError(t, err)
	assert.Equal(t, 0.75, chance)

	chance, err = ResurrectChance(85)
	require.NoError(t, err)
	assert.InDelta(t, 0.5+7.0/21*0.25, chance, 1e-12)

	_, err = ResurrectChance(77)
	assert.ErrorIs(t, err, domain.ErrSpellLevelTooLow)
	assert.True(t, domain.IsConfigError(err))

	_, err = ResurrectChance(100)
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
}

func TestSurvival_NoResurrect(t *testing.T) {
	odds := Survival(27.0/128, nil)
	assert.Equal(t, 1030301.0/2097152, odds.Chance)
	assert.Zero(t, odds.CastChance)
}

func TestSurvival_MatchesBinomial(t *testing.T) {
	for n := 0; n <= 128; n++ {
		rate := float64(n) / 128
		assert.InDelta(t, utils.Binomial(rate, 3, 0), Survival(rate, nil).Chance, 1e-12, "rate %d/128", n)
	}
}

func TestSurvival_WithResurrect(t *testing.T) {
	rate := 27.0 / 128
	success := 0.5
	odds := Survival(rate, &success)

	base := 1030301.0 / 2097152
	assert.InDelta(t, 0.688286542892456, odds.Chance, 1e-12)
	assert.InDelta(t, 1-base, odds.CastChance, 1e-12)

	// Exactly one diseased cycle, resurrected successfully.
	healthy := 1 - rate
	assert.InDelta(t, base+3*healthy*healthy*rate*success, odds.Chance, 1e-15)
}

func TestSurvival_ResurrectNeverHurts(t *testing.T) {
	for n := 0; n <= 128; n++ {
		rate := float64(n) / 128
		without := Survival(rate, nil)
		for level := 78; level <= 99; level++ {
			success, err := ResurrectChance(level)
			require.NoError(t, err)
			with := Survival(rate, &success)
			assert.GreaterOrEqual(t, with.Chance, without.Chance)
			assert.LessOrEqual(t, with.Chance, 1.0)
			assert.GreaterOrEqual(t, with.CastChance, 0.0)
		}
	}
}

func TestSurvival_PanicsOnInvalidRate(t *testing.T) {
	assert.Panics(t, func() { Survival(-0.1, nil) })
	assert.Panics(t, func() { Survival(1.5, nil) })

	bad := 2.0
	assert.Panics(t, func() { Survival(0.1, &bad) })
}
