package domain

// Rune is a magic rune.
type Rune int

const (
	RuneAir Rune = iota
	RuneWater
	RuneEarth
	RuneFire
	RuneMind
	RuneBody
	RuneChaos
	RuneDeath
	RuneBlood
	RuneCosmic
	RuneNature
	RuneLaw
	RuneAstral
	RuneSoul
	RuneWrath
)

var runeNames = enumNames{
	"air", "water", "earth", "fire", "mind", "body", "chaos", "death",
	"blood", "cosmic", "nature", "law", "astral", "soul", "wrath",
}

var runeItemIDs = []int{
	RuneAir:    556,
	RuneWater:  555,
	RuneEarth:  557,
	RuneFire:   554,
	RuneMind:   558,
	RuneBody:   559,
	RuneChaos:  562,
	RuneDeath:  560,
	RuneBlood:  565,
	RuneCosmic: 564,
	RuneNature: 561,
	RuneLaw:    563,
	RuneAstral: 9075,
	RuneSoul:   566,
	RuneWrath:  21880,
}

func (r Rune) String() string { return runeNames.name(int(r)) }

// ItemID returns the rune's item ID.
func (r Rune) ItemID() int { return runeItemIDs[r] }

// RuneCost is a rune and how many are consumed per cast.
type RuneCost struct {
	Rune     Rune
	Quantity int
}

// Spell is a castable spell.
type Spell int

const (
	// SpellResurrectCrops (Arceuus spellbook) revives a diseased or dead patch.
	SpellResurrectCrops Spell = iota
)

var spellNames = enumNames{"resurrect_crops"}

func (s Spell) String() string { return spellNames.name(int(s)) }

// Level is the magic level required to cast the spell.
func (s Spell) Level() int {
	switch s {
	case SpellResurrectCrops:
		return 78
	default:
		return 1
	}
}

// Runes returns the runes consumed by one cast.
func (s Spell) Runes() []RuneCost {
	switch s {
	case SpellResurrectCrops:
		return []RuneCost{
			{Rune: RuneEarth, Quantity: 25},
			{Rune: RuneNature, Quantity: 12},
			{Rune: RuneBlood, Quantity: 8},
			{Rune: RuneSoul, Quantity: 8},
		}
	default:
		return nil
	}
}
