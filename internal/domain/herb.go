package domain

import "fmt"

// Herb is a plantable herb seed.
type Herb int

const (
	HerbGuam Herb = iota
	HerbMarrentill
	HerbTarromin
	HerbHarralander
	HerbGoutweed
	HerbRanarr
	HerbToadflax
	HerbIrit
	HerbAvantoe
	HerbKwuarm
	HerbSnapdragon
	HerbCadantine
	HerbLantadyme
	HerbDwarfWeed
	HerbTorstol
)

// HerbInfo holds the static data for one herb.
type HerbInfo struct {
	Name  string
	Level int
	// ChanceLow and ChanceHigh are the chance-to-save table values at
	// farming levels 1 and 99, out of 256.
	ChanceLow  float64
	ChanceHigh float64
	PlantXP    float64
	HarvestXP  float64
	SeedID     int
	ProductID  int
}

var herbNames = enumNames{
	"guam",
	"marrentill",
	"tarromin",
	"harralander",
	"goutweed",
	"ranarr",
	"toadflax",
	"irit",
	"avantoe",
	"kwuarm",
	"snapdragon",
	"cadantine",
	"lantadyme",
	"dwarf_weed",
	"torstol",
}

var herbTable = []HerbInfo{
	HerbGuam:        {Name: "Guam", Level: 9, ChanceLow: 25, ChanceHigh: 80, PlantXP: 11, HarvestXP: 12.5, SeedID: 5291, ProductID: 199},
	HerbMarrentill:  {Name: "Marrentill", Level: 14, ChanceLow: 28, ChanceHigh: 80, PlantXP: 13.5, HarvestXP: 15, SeedID: 5292, ProductID: 201},
	HerbTarromin:    {Name: "Tarromin", Level: 19, ChanceLow: 31, ChanceHigh: 80, PlantXP: 16, HarvestXP: 18, SeedID: 5293, ProductID: 203},
	HerbHarralander: {Name: "Harralander", Level: 26, ChanceLow: 36, ChanceHigh: 80, PlantXP: 21.5, HarvestXP: 24, SeedID: 5294, ProductID: 205},
	HerbGoutweed:    {Name: "Goutweed", Level: 29, ChanceLow: 39, ChanceHigh: 80, PlantXP: 105, HarvestXP: 45, SeedID: 6311, ProductID: 3261},
	HerbRanarr:      {Name: "Ranarr", Level: 32, ChanceLow: 39, ChanceHigh: 80, PlantXP: 27, HarvestXP: 30.5, SeedID: 5295, ProductID: 207},
	HerbToadflax:    {Name: "Toadflax", Level: 38, ChanceLow: 43, ChanceHigh: 80, PlantXP: 34, HarvestXP: 38.5, SeedID: 5296, ProductID: 3049},
	HerbIrit:        {Name: "Irit", Level: 44, ChanceLow: 46, ChanceHigh: 80, PlantXP: 43, HarvestXP: 48.5, SeedID: 5297, ProductID: 209},
	HerbAvantoe:     {Name: "Avantoe", Level: 50, ChanceLow: 50, ChanceHigh: 80, PlantXP: 54.5, HarvestXP: 61.5, SeedID: 5298, ProductID: 211},
	HerbKwuarm:      {Name: "Kwuarm", Level: 56, ChanceLow: 54, ChanceHigh: 80, PlantXP: 69, HarvestXP: 78, SeedID: 5299, ProductID: 213},
	HerbSnapdragon:  {Name: "Snapdragon", Level: 62, ChanceLow: 57, ChanceHigh: 80, PlantXP: 87.5, HarvestXP: 98.5, SeedID: 5300, ProductID: 3051},
	HerbCadantine:   {Name: "Cadantine", Level: 67, ChanceLow: 60, ChanceHigh: 80, PlantXP: 106.5, HarvestXP: 120, SeedID: 5301, ProductID: 215},
	HerbLantadyme:   {Name: "Lantadyme", Level: 73, ChanceLow: 64, ChanceHigh: 80, PlantXP: 134.5, HarvestXP: 151.5, SeedID: 5302, ProductID: 2485},
	HerbDwarfWeed:   {Name: "Dwarf weed", Level: 79, ChanceLow: 67, ChanceHigh: 80, PlantXP: 170.5, HarvestXP: 192, SeedID: 5303, ProductID: 217},
	HerbTorstol:     {Name: "Torstol", Level: 85, ChanceLow: 71, ChanceHigh: 80, PlantXP: 199.5, HarvestXP: 224.5, SeedID: 5304, ProductID: 219},
}

// Herbs returns every herb in ascending level order.
func Herbs() []Herb {
	herbs := make([]Herb, len(herbTable))
	for i := range herbTable {
		herbs[i] = Herb(i)
	}
	return herbs
}

// ParseHerb parses a herb by name, ignoring case and punctuation.
// Use farming.MatchHerb for fuzzy input.
func ParseHerb(s string) (Herb, error) {
	i, ok := herbNames.lookup(s, map[string]int{
		"guamleaf":   int(HerbGuam),
		"ranarrweed": int(HerbRanarr),
		"dwarf":      int(HerbDwarfWeed),
		"gout":       int(HerbGoutweed),
	})
	if !ok {
		return HerbGuam, fmt.Errorf("%w: %q", ErrUnknownHerb, s)
	}
	return Herb(i), nil
}

// Info returns the static data for h. It panics for an undeclared herb.
func (h Herb) Info() HerbInfo {
	return herbTable[h]
}

func (h Herb) String() string { return herbNames.name(int(h)) }

// DisplayName is the herb name as shown in game.
func (h Herb) DisplayName() string {
	if !h.IsValid() {
		return h.String()
	}
	return herbTable[h].Name
}

// IsValid reports whether h is one of the declared herbs.
func (h Herb) IsValid() bool { return herbNames.valid(int(h)) }

func (h Herb) MarshalText() ([]byte, error) { return herbNames.marshal("herb", int(h)) }

func (h *Herb) UnmarshalText(text []byte) error {
	v, err := ParseHerb(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
