package domain

import "fmt"

// AnimaPlant is the plant growing in the Farming Guild anima patch. Its effect
// applies to every herb patch at once.
type AnimaPlant int

const (
	AnimaNone AnimaPlant = iota
	// AnimaKronos affects compost bins only.
	AnimaKronos
	// AnimaAttas raises the chance to save a harvest life.
	AnimaAttas
	// AnimaIasor lowers the disease chance.
	AnimaIasor
)

var animaNames = enumNames{"none", "kronos", "attas", "iasor"}

// AnimaPlants returns every anima plant option.
func AnimaPlants() []AnimaPlant {
	return []AnimaPlant{AnimaNone, AnimaKronos, AnimaAttas, AnimaIasor}
}

// ParseAnimaPlant parses an anima plant by name.
func ParseAnimaPlant(s string) (AnimaPlant, error) {
	i, ok := animaNames.lookup(s, nil)
	if !ok {
		return AnimaNone, fmt.Errorf("%w: unknown anima plant %q", ErrConfig, s)
	}
	return AnimaPlant(i), nil
}

func (a AnimaPlant) String() string { return animaNames.name(int(a)) }

// IsValid reports whether a is one of the declared plants.
func (a AnimaPlant) IsValid() bool { return animaNames.valid(int(a)) }

func (a AnimaPlant) MarshalText() ([]byte, error) { return animaNames.marshal("anima plant", int(a)) }

func (a *AnimaPlant) UnmarshalText(text []byte) error {
	v, err := ParseAnimaPlant(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// DisplayName is the capitalized plant name, or "None".
func (a AnimaPlant) DisplayName() string {
	switch a {
	case AnimaKronos:
		return "Kronos"
	case AnimaAttas:
		return "Attas"
	case AnimaIasor:
		return "Iasor"
	default:
		return "None"
	}
}
