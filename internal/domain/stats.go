package domain

// PatchStats is the expected outcome of one herb run, either for a single
// patch or summed over every configured patch.
type PatchStats struct {
	// SurvivalChance is the probability a planted seed reaches harvest.
	// Averaged, not summed, across patches.
	SurvivalChance float64 `json:"survival_chance"`
	// ResurrectCastChance is the probability Resurrect Crops gets cast.
	ResurrectCastChance float64 `json:"resurrect_cast_chance"`
	// ExpectedYield counts herbs harvested, already weighted by survival.
	ExpectedYield float64 `json:"expected_yield"`
	ExpectedXP    float64 `json:"expected_xp"`
	SeedPrice     Price   `json:"seed_price"`
	HerbPrice     Price   `json:"herb_price"`
	// Profit is in coins and may be negative.
	Profit int `json:"profit"`
}

// HerbStats is one row of the herb table.
type HerbStats struct {
	Herb Herb   `json:"herb"`
	Name string `json:"name"`
	// MeetsLevel is false when the farming level is below the seed's
	// requirement. The row is still computed.
	MeetsLevel bool       `json:"meets_level"`
	Stats      PatchStats `json:"stats"`
}
