package farming

// Disease model constants
const (
	// DiseaseCycles is the number of growth transitions during which a herb
	// can become diseased.
	DiseaseCycles = 3
	// DiseaseDenominator is the denominator of the per-cycle disease chance.
	DiseaseDenominator = 128
	// IasorDiseaseModifier scales the disease chance when Iasor is planted.
	IasorDiseaseModifier = 0.2
)

// Yield model constants
const (
	// SaveDenominator is the denominator of the chance to save a harvest life.
	SaveDenominator = 256

	SecateursBonus = 0.10
	CapeBonus      = 0.05
	AttasBonus     = 0.05
)

// Resurrect Crops success chance at the required level and at 99.
const (
	ResurrectMinChance = 0.50
	ResurrectMaxChance = 0.75
)

// Patch bonuses from achievement diaries
const (
	CatherbyMediumBonus = 0.05
	CatherbyHardBonus   = 0.10
	CatherbyEliteBonus  = 0.15
	KourendHardBonus    = 0.05
	FaladorXPBonus      = 0.10
)
