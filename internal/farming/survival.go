package farming

import (
	"fmt"
	"math"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/utils"
)

// SurvivalOdds is the outcome of the disease model for one patch.
type SurvivalOdds struct {
	// Chance is the probability the herb reaches harvest, including
	// successful resurrections.
	Chance float64
	// CastChance is the probability Resurrect Crops is cast at all. It is 0
	// when the spell is not used.
	CastChance float64
}

// DiseaseChance is the per-cycle disease chance for herbs in patch.
// The rate is a whole number of 128ths, rounded down but never below 1/128.
func DiseaseChance(patch domain.HerbPatch, cfg *domain.HerbConfig) float64 {
	if IsDiseaseFree(patch, cfg) {
		return 0
	}

	modifier := 1.0
	if cfg.AnimaPlant == domain.AnimaIasor {
		modifier = IasorDiseaseModifier
	}
	numerator := math.Max(math.Floor(float64(cfg.Compost.DiseaseNumerator())*modifier), 1)
	return numerator / DiseaseDenominator
}

// ResurrectChance is the success chance of Resurrect Crops at magicLevel. It
// scales linearly from 50% at the required level to 75% at 99.
func ResurrectChance(magicLevel int) (float64, error) {
	required := domain.SpellResurrectCrops.Level()
	if magicLevel < required {
		return 0, fmt.Errorf("%w: resurrect crops needs %d, got %d", domain.ErrSpellLevelTooLow, required, magicLevel)
	}
	if magicLevel > domain.MaxLevel {
		return 0, fmt.Errorf("%w: magic level %d", domain.ErrInvalidLevel, magicLevel)
	}
	return utils.MapToRange(float64(magicLevel), float64(required), domain.MaxLevel, ResurrectMinChance, ResurrectMaxChance), nil
}

// Survival computes the chance a herb survives every disease cycle. When
// resurrect is non-nil the spell is cast on the first disease, at most once
// per planting, and succeeds with probability *resurrect.
//
// Without the spell the herb survives only if no cycle diseases it. With
// the spell it also survives when exactly one of the cycles diseases it and
// the cast succeeds, which happens with probability
// 3 * (1-rate)^2 * rate * resurrect.
func Survival(rate float64, resurrect *float64) SurvivalOdds {
	mustProbability("disease rate", rate)

	healthy := 1 - rate
	base := math.Pow(healthy, DiseaseCycles)
	if resurrect == nil {
		return SurvivalOdds{Chance: base}
	}

	success := *resurrect
	mustProbability("resurrect chance", success)
	odds := SurvivalOdds{
		Chance:     base + DiseaseCycles*healthy*healthy*rate*success,
		CastChance: 1 - base,
	}
	mustProbability("survival chance", odds.Chance)
	return odds
}

// mustProbability panics when p is not a probability. An out of range value
// means a formula is wrong, so it is never clamped.
func mustProbability(name string, p float64) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		panic(fmt.Sprintf("farming: %s %v outside [0, 1]", name, p))
	}
}
