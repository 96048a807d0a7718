package farming

import (
	"fmt"
	"strings"

	"github.com/osse101/HerbRun_Go/internal/domain"
)

// IsDiseaseFree reports whether herbs in patch can never become diseased.
func IsDiseaseFree(patch domain.HerbPatch, cfg *domain.HerbConfig) bool {
	switch patch {
	case domain.PatchTrollStronghold, domain.PatchWeiss:
		return true
	case domain.PatchHosidius:
		return cfg.HosidiusFiftyFavor
	default:
		return false
	}
}

// YieldBonus is the chance-to-save bonus a patch grants through diary
// unlocks. It stacks with the equipment and anima plant bonuses.
func YieldBonus(patch domain.HerbPatch, cfg *domain.HerbConfig) float64 {
	switch patch {
	case domain.PatchCatherby:
		switch {
		case cfg.KandarinDiary.AtLeast(domain.DiaryElite):
			return CatherbyEliteBonus
		case cfg.KandarinDiary.AtLeast(domain.DiaryHard):
			return CatherbyHardBonus
		case cfg.KandarinDiary.AtLeast(domain.DiaryMedium):
			return CatherbyMediumBonus
		}
	case domain.PatchFarmingGuild, domain.PatchHosidius:
		if cfg.KourendDiary.AtLeast(domain.DiaryHard) {
			return KourendHardBonus
		}
	}
	return 0
}

// XPBonus is the XP bonus a patch grants for every action performed on it.
func XPBonus(patch domain.HerbPatch, cfg *domain.HerbConfig) float64 {
	if patch == domain.PatchFalador && cfg.FaladorDiary.AtLeast(domain.DiaryMedium) {
		return FaladorXPBonus
	}
	return 0
}

// Describe returns the patch name followed by its active bonuses, e.g.
// "Catherby (+10% yield)".
func Describe(patch domain.HerbPatch, cfg *domain.HerbConfig) string {
	var mods []string
	if IsDiseaseFree(patch, cfg) {
		mods = append(mods, "disease-free")
	}
	if bonus := YieldBonus(patch, cfg); bonus > 0 {
		mods = append(mods, fmt.Sprintf("%+.0f%% yield", bonus*100))
	}
	if bonus := XPBonus(patch, cfg); bonus > 0 {
		mods = append(mods, fmt.Sprintf("%+.0f%% XP", bonus*100))
	}

	if len(mods) == 0 {
		return patch.DisplayName()
	}
	return fmt.Sprintf("%s (%s)", patch.DisplayName(), strings.Join(mods, ", "))
}

// ItemBonus is the chance-to-save bonus from equipped items.
func ItemBonus(cfg *domain.HerbConfig) float64 {
	var bonus float64
	if cfg.MagicSecateurs {
		bonus += SecateursBonus
	}
	if cfg.FarmingCape {
		bonus += CapeBonus
	}
	return bonus
}

// AnimaYieldBonus is the chance-to-save bonus from the anima patch.
func AnimaYieldBonus(cfg *domain.HerbConfig) float64 {
	if cfg.AnimaPlant == domain.AnimaAttas {
		return AttasBonus
	}
	return 0
}
