package farming

import (
	"math"

	"github.com/osse101/HerbRun_Go/internal/domain"
)

// ChanceToSave is the chance that picking a herb does not use up a harvest
// life. The herb's table value is interpolated between level 1 and 99 and
// floored, then scaled by the item bonus and floored again, then scaled by
// the patch and anima bonuses. The rounding steps match the in-game
// calculator and change results at threshold levels.
func ChanceToSave(herb domain.Herb, farmingLevel int, itemBonus, patchBonus, animaBonus float64) float64 {
	info := herb.Info()
	level := float64(farmingLevel)

	interp := info.ChanceLow*(99-level)/98 + info.ChanceHigh*(level-1)/98
	chance := math.Floor(math.Floor(math.Floor(interp)*(1+itemBonus))*(1+patchBonus+animaBonus)+1) / SaveDenominator

	mustProbability("chance to save", chance)
	return chance
}

// ExpectedYield is the expected number of herbs picked from a fully grown
// patch with the given harvest lives.
func ExpectedYield(lives int, chanceToSave float64) float64 {
	if chanceToSave >= 1 {
		panic("farming: chance to save must be below 1")
	}
	return float64(lives) / (1 - chanceToSave)
}

// ExpectedXP is the XP for one planting. Compost XP is always granted,
// planting XP only when the herb survives, and harvest XP per herb picked.
func ExpectedXP(compost domain.Compost, herb domain.Herb, survival, observedYield float64) float64 {
	info := herb.Info()
	return compost.ApplyXP() + info.PlantXP*survival + info.HarvestXP*observedYield
}
