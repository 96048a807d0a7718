package farming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HerbRun_Go/internal/domain"
)

func TestIsDiseaseFree(t *testing.T) {
	tests := []struct {
		name  string
		patch domain.HerbPatch
		favor bool
		want  bool
	}{
		{"troll stronghold", domain.PatchTrollStronghold, false, true},
		{"weiss", domain.PatchWeiss, false, true},
		{"hosidius without favor", domain.PatchHosidius, false, false},
		{"hosidius with favor", domain.PatchHosidius, true, true},
		{"catherby ignores favor", domain.PatchCatherby, true, false},
		{"ardougne", domain.PatchArdougne, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &domain.HerbConfig{HosidiusFiftyFavor: tt.favor}
			assert.Equal(t, tt.want, IsDiseaseFree(tt.patch, cfg))
		})
	}
}

func TestYieldBonus(t *testing.T) {
	tests := []struct {
		name     string
		patch    domain.HerbPatch
		kandarin domain.DiaryLevel
		kourend  domain.DiaryLevel
		want     float64
	}{
		{"catherby none", domain.PatchCatherby, domain.DiaryNone, domain.DiaryElite, 0},
		{"catherby easy", domain.PatchCatherby, domain.DiaryEasy, domain.DiaryNone, 0},
		{"catherby medium", domain.PatchCatherby, domain.DiaryMedium, domain.DiaryNone, 0.05},
		{"catherby hard", domain.PatchCatherby, domain.DiaryHard, domain.DiaryNone, 0.10},
		{"catherby elite", domain.PatchCatherby, domain.DiaryElite, domain.DiaryNone, 0.15},
		{"guild kourend medium", domain.PatchFarmingGuild, domain.DiaryElite, domain.DiaryMedium, 0},
		{"guild kourend hard", domain.PatchFarmingGuild, domain.DiaryNone, domain.DiaryHard, 0.05},
		{"hosidius kourend elite", domain.PatchHosidius, domain.DiaryNone, domain.DiaryElite, 0.05},
		{"falador", domain.PatchFalador, domain.DiaryElite, domain.DiaryElite, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &domain.HerbConfig{KandarinDiary: tt.kandarin, KourendDiary: tt.kourend}
			assert.Equal(t, tt.want, YieldBonus(tt.patch, cfg))
		})
	}
}

func TestXPBonus(t *testing.T) {
	assert.Equal(t, 0.0, XPBonus(domain.PatchFalador, &domain.HerbConfig{FaladorDiary: domain.DiaryEasy}))
	assert.Equal(t, 0.10, XPBonus(domain.PatchFalador, &domain.HerbConfig{FaladorDiary: domain.DiaryMedium}))
	assert.Equal(t, 0.10, XPBonus(domain.PatchFalador, &domain.HerbConfig{FaladorDiary: domain.DiaryElite}))
	assert.Equal(t, 0.0, XPBonus(domain.PatchCatherby, &domain.HerbConfig{FaladorDiary: domain.DiaryElite}))
}

func TestDescribe(t *testing.T) {
	cfg := &domain.HerbConfig{
		KandarinDiary:      domain.DiaryElite,
		KourendDiary:       domain.DiaryHard,
		FaladorDiary:       domain.DiaryMedium,
		HosidiusFiftyFavor: true,
	}

	tests := []struct {
		patch domain.HerbPatch
		want  string
	}{
		{domain.PatchArdougne, "Ardougne"},
		{domain.PatchCatherby, "Catherby (+15% yield)"},
		{domain.PatchFalador, "Falador (+10% XP)"},
		{domain.PatchHosidius, "Hosidius (disease-free, +5% yield)"},
		{domain.PatchTrollStronghold, "Troll Stronghold (disease-free)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(tt.patch, cfg))
	}
}

func TestItemAndAnimaBonus(t *testing.T) {
	assert.Equal(t, 0.0, ItemBonus(&domain.HerbConfig{}))
	assert.Equal(t, 0.10, ItemBonus(&domain.HerbConfig{MagicSecateurs: true}))
	assert.Equal(t, 0.05, ItemBonus(&domain.HerbConfig{FarmingCape: true}))
	assert.InDelta(t, 0.15, ItemBonus(&domain.HerbConfig{MagicSecateurs: true, FarmingCape: true}), 1e-12)

	assert.Equal(t, 0.05, AnimaYieldBonus(&domain.HerbConfig{AnimaPlant: domain.AnimaAttas}))
	assert.Equal(t, 0.0, AnimaYieldBonus(&domain.HerbConfig{AnimaPlant: domain.AnimaIasor}))
	assert.Equal(t, 0.0, AnimaYieldBonus(&domain.HerbConfig{AnimaPlant: domain.AnimaKronos}))
}
