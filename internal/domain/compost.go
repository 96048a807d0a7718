package domain

import "fmt"

// Compost is the compost tier applied to a patch before planting.
type Compost int

const (
	CompostNone Compost = iota
	CompostNormal
	CompostSuper
	CompostUltra
)

var compostNames = enumNames{"none", "normal", "super", "ultra"}

// Compost item IDs
const (
	ItemCompost      = 6032
	ItemSupercompost = 6034
	ItemUltracompost = 21483
)

// Composts returns every compost tier in ascending order.
func Composts() []Compost {
	return []Compost{CompostNone, CompostNormal, CompostSuper, CompostUltra}
}

// ParseCompost parses a compost tier by name.
func ParseCompost(s string) (Compost, error) {
	i, ok := compostNames.lookup(s, map[string]int{
		"compost":      int(CompostNormal),
		"supercompost": int(CompostSuper),
		"ultracompost": int(CompostUltra),
	})
	if !ok {
		return CompostNone, fmt.Errorf("%w: unknown compost %q", ErrConfig, s)
	}
	return Compost(i), nil
}

func (c Compost) String() string { return compostNames.name(int(c)) }

// IsValid reports whether c is one of the declared tiers.
func (c Compost) IsValid() bool { return compostNames.valid(int(c)) }

func (c Compost) MarshalText() ([]byte, error) { return compostNames.marshal("compost", int(c)) }

func (c *Compost) UnmarshalText(text []byte) error {
	v, err := ParseCompost(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ItemID returns the item to price for this tier. CompostNone has no item.
func (c Compost) ItemID() (int, bool) {
	switch c {
	case CompostNormal:
		return ItemCompost, true
	case CompostSuper:
		return ItemSupercompost, true
	case CompostUltra:
		return ItemUltracompost, true
	default:
		return 0, false
	}
}

// HarvestLives is the number of picks a mature plant has before any saves.
func (c Compost) HarvestLives() int {
	switch c {
	case CompostNormal:
		return 4
	case CompostSuper:
		return 5
	case CompostUltra:
		return 6
	default:
		return 3
	}
}

// ApplyXP is the farming XP granted for spreading the compost.
func (c Compost) ApplyXP() float64 {
	switch c {
	case CompostNormal:
		return 18
	case CompostSuper:
		return 26
	case CompostUltra:
		return 36
	default:
		return 0
	}
}

// DiseaseNumerator is the per-cycle disease chance out of 128.
func (c Compost) DiseaseNumerator() int {
	switch c {
	case CompostNormal:
		return 14
	case CompostSuper:
		return 6
	case CompostUltra:
		return 3
	default:
		return 27
	}
}

// DisplayName is the in-game item name, or "None".
func (c Compost) DisplayName() string {
	switch c {
	case CompostNormal:
		return "Compost"
	case CompostSuper:
		return "Supercompost"
	case CompostUltra:
		return "Ultracompost"
	default:
		return "None"
	}
}
