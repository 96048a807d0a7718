package farming

import (
	"slices"

	"github.com/osse101/HerbRun_Go/internal/domain"
)

// PriceResult holds the price fields of a PatchStats.
type PriceResult struct {
	SeedPrice domain.Price
	HerbPrice domain.Price
	Profit    int
}

// PriceStats computes the prices and expected profit of one planting.
// Missing prices count as free in the arithmetic but stay missing in the
// result.
func PriceStats(herb domain.Herb, cfg *domain.HerbConfig, observedYield, castChance float64, sheet domain.PriceSheet) PriceResult {
	info := herb.Info()
	seed := sheet.Lookup(info.SeedID)
	product := sheet.Lookup(info.ProductID)

	revenue := int(float64(product.OrZero()) * observedYield)
	cost := seed.OrZero() + CompostCost(cfg, sheet) + RuneCost(cfg, castChance, sheet)

	return PriceResult{
		SeedPrice: seed,
		HerbPrice: product,
		Profit:    revenue - cost,
	}
}

// CompostCost is the cost of the compost used on one patch. A bottomless
// bucket holds twice as much, so the cost is halved.
func CompostCost(cfg *domain.HerbConfig, sheet domain.PriceSheet) int {
	id, ok := cfg.Compost.ItemID()
	if !ok {
		return 0
	}
	cost := sheet.Lookup(id).OrZero()
	if cfg.BottomlessBucket {
		cost /= 2
	}
	return cost
}

// RuneCost is the expected cost of Resurrect Crops runes for one patch.
func RuneCost(cfg *domain.HerbConfig, castChance float64, sheet domain.PriceSheet) int {
	if !cfg.ResurrectCrops {
		return 0
	}
	var total int
	for _, rc := range domain.SpellResurrectCrops.Runes() {
		total += sheet.Lookup(rc.Rune.ItemID()).OrZero() * rc.Quantity
	}
	return int(float64(total) * castChance)
}

// RequiredItems returns every item ID that must be priced to compute the
// given herbs under cfg, sorted and without duplicates.
func RequiredItems(herbs []domain.Herb, cfg *domain.HerbConfig) []int {
	ids := make([]int, 0, 2*len(herbs)+5)
	for _, h := range herbs {
		info := h.Info()
		ids = append(ids, info.SeedID, info.ProductID)
	}
	if id, ok := cfg.Compost.ItemID(); ok {
		ids = append(ids, id)
	}
	if cfg.ResurrectCrops {
		for _, rc := range domain.SpellResurrectCrops.Runes() {
			ids = append(ids, rc.Rune.ItemID())
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
