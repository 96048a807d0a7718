package domain

import "fmt"

// HerbPatch is a herb patch location. Patches carry no state of their own;
// their bonuses are derived from a HerbConfig by the farming package.
type HerbPatch int

const (
	PatchArdougne HerbPatch = iota
	PatchCatherby
	PatchFalador
	PatchFarmingGuild
	PatchHarmonyIsland
	PatchHosidius
	PatchPortPhasmatys
	PatchTrollStronghold
	PatchWeiss
)

var patchNames = enumNames{
	"ardougne",
	"catherby",
	"falador",
	"farming_guild",
	"harmony_island",
	"hosidius",
	"port_phasmatys",
	"troll_stronghold",
	"weiss",
}

var patchDisplayNames = []string{
	"Ardougne",
	"Catherby",
	"Falador",
	"Farming Guild",
	"Harmony Island",
	"Hosidius",
	"Port Phasmatys",
	"Troll Stronghold",
	"Weiss",
}

// HerbPatches returns every patch in declaration order.
func HerbPatches() []HerbPatch {
	patches := make([]HerbPatch, len(patchNames))
	for i := range patchNames {
		patches[i] = HerbPatch(i)
	}
	return patches
}

// ParseHerbPatch parses a patch by name, e.g. "farming_guild" or "Farming Guild".
func ParseHerbPatch(s string) (HerbPatch, error) {
	i, ok := patchNames.lookup(s, map[string]int{
		"guild":     int(PatchFarmingGuild),
		"harmony":   int(PatchHarmonyIsland),
		"phasmatys": int(PatchPortPhasmatys),
		"troll":     int(PatchTrollStronghold),
		"trollheim": int(PatchTrollStronghold),
	})
	if !ok {
		return PatchArdougne, fmt.Errorf("%w: %q", ErrUnknownPatch, s)
	}
	return HerbPatch(i), nil
}

func (p HerbPatch) String() string { return patchNames.name(int(p)) }

// DisplayName is the location name as shown in game.
func (p HerbPatch) DisplayName() string {
	if !p.IsValid() {
		return p.String()
	}
	return patchDisplayNames[p]
}

// IsValid reports whether p is one of the declared patches.
func (p HerbPatch) IsValid() bool { return patchNames.valid(int(p)) }

func (p HerbPatch) MarshalText() ([]byte, error) { return patchNames.marshal("herb patch", int(p)) }

func (p *HerbPatch) UnmarshalText(text []byte) error {
	v, err := ParseHerbPatch(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
