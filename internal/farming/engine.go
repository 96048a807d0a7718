package farming

import (
	"fmt"

	"github.com/osse101/HerbRun_Go/internal/domain"
)

// Engine provides pure herb run logic (no network or DB dependencies).
// Prices must be resolved into a PriceSheet before calling it.
type Engine struct{}

// NewEngine creates a new farming engine
func NewEngine() *Engine {
	return &Engine{}
}

// PatchStats computes the expected outcome of planting herb in one patch.
// Yield and XP already account for the survival chance.
func (e *Engine) PatchStats(patch domain.HerbPatch, herb domain.Herb, cfg *domain.HerbConfig, levels domain.Levels, sheet domain.PriceSheet) (domain.PatchStats, error) {
	resurrect, err := resolveResurrect(cfg, levels)
	if err != nil {
		return domain.PatchStats{}, err
	}
	if err := domain.ValidateLevel(levels.Farming); err != nil {
		return domain.PatchStats{}, fmt.Errorf("farming: %w", err)
	}
	return e.patchStats(patch, herb, cfg, levels.Farming, resurrect, sheet), nil
}

// HerbTotals computes the stats of planting herb in every configured patch.
// Survival chance is averaged across patches; cast chance, yield, XP and
// profit are summed. Prices are the same for every patch.
func (e *Engine) HerbTotals(herb domain.Herb, cfg *domain.HerbConfig, levels domain.Levels, sheet domain.PriceSheet) (domain.PatchStats, error) {
	if err := checkInputs(cfg, levels); err != nil {
		return domain.PatchStats{}, err
	}
	resurrect, err := resolveResurrect(cfg, levels)
	if err != nil {
		return domain.PatchStats{}, err
	}
	return e.herbTotals(herb, cfg, levels.Farming, resurrect, sheet), nil
}

// HerbTable computes one row per herb, in the order given. An empty herbs
// list means every herb in level order.
func (e *Engine) HerbTable(cfg *domain.HerbConfig, levels domain.Levels, sheet domain.PriceSheet, herbs []domain.Herb) ([]domain.HerbStats, error) {
	if err := checkInputs(cfg, levels); err != nil {
		return nil, err
	}
	resurrect, err := resolveResurrect(cfg, levels)
	if err != nil {
		return nil, err
	}
	if len(herbs) == 0 {
		herbs = domain.Herbs()
	}

	rows := make([]domain.HerbStats, 0, len(herbs))
	for _, herb := range herbs {
		if !herb.IsValid() {
			return nil, fmt.Errorf("%w: %d", domain.ErrUnknownHerb, int(herb))
		}
		rows = append(rows, domain.HerbStats{
			Herb:       herb,
			Name:       herb.DisplayName(),
			MeetsLevel: levels.Farming >= herb.Info().Level,
			Stats:      e.herbTotals(herb, cfg, levels.Farming, resurrect, sheet),
		})
	}
	return rows, nil
}

func (e *Engine) herbTotals(herb domain.Herb, cfg *domain.HerbConfig, farmingLevel int, resurrect *float64, sheet domain.PriceSheet) domain.PatchStats {
	var total domain.PatchStats
	for i, patch := range cfg.Patches {
		stats := e.patchStats(patch, herb, cfg, farmingLevel, resurrect, sheet)
		if i == 0 {
			total.SeedPrice = stats.SeedPrice
			total.HerbPrice = stats.HerbPrice
		}
		total.SurvivalChance += stats.SurvivalChance
		total.ResurrectCastChance += stats.ResurrectCastChance
		total.ExpectedYield += stats.ExpectedYield
		total.ExpectedXP += stats.ExpectedXP
		total.Profit += stats.Profit
	}
	total.SurvivalChance /= float64(len(cfg.Patches))
	return total
}

func (e *Engine) patchStats(patch domain.HerbPatch, herb domain.Herb, cfg *domain.HerbConfig, farmingLevel int, resurrect *float64, sheet domain.PriceSheet) domain.PatchStats {
	odds := Survival(DiseaseChance(patch, cfg), resurrect)

	cts := ChanceToSave(herb, farmingLevel, ItemBonus(cfg), YieldBonus(patch, cfg), AnimaYieldBonus(cfg))
	observed := ExpectedYield(cfg.Compost.HarvestLives(), cts) * odds.Chance
	prices := PriceStats(herb, cfg, observed, odds.CastChance, sheet)

	return domain.PatchStats{
		SurvivalChance:      odds.Chance,
		ResurrectCastChance: odds.CastChance,
		ExpectedYield:       observed,
		ExpectedXP:          ExpectedXP(cfg.Compost, herb, odds.Chance, observed),
		SeedPrice:           prices.SeedPrice,
		HerbPrice:           prices.HerbPrice,
		Profit:              prices.Profit,
	}
}

// checkInputs rejects configurations the aggregation cannot handle. It runs
// before any patch is computed so an empty patch list never reaches a
// division.
func checkInputs(cfg *domain.HerbConfig, levels domain.Levels) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := domain.ValidateLevel(levels.Farming); err != nil {
		return fmt.Errorf("farming: %w", err)
	}
	return nil
}

// resolveResurrect returns the Resurrect Crops success chance, or nil when
// the spell is not used.
func resolveResurrect(cfg *domain.HerbConfig, levels domain.Levels) (*float64, error) {
	if !cfg.ResurrectCrops {
		return nil, nil
	}
	if levels.Magic == 0 {
		return nil, domain.ErrMagicLevelRequired
	}
	chance, err := ResurrectChance(levels.Magic)
	if err != nil {
		return nil, err
	}
	return &chance, nil
}
