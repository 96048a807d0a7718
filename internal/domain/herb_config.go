package domain

import (
	"fmt"
	"time"
)

// HerbConfig describes a player's herb run. It is read once per calculation
// and never modified by the engine.
type HerbConfig struct {
	Patches []HerbPatch `json:"patches" yaml:"patches" validate:"unique,dive,herbpatch"`

	// Yield equipment
	MagicSecateurs bool `json:"magic_secateurs" yaml:"magic_secateurs"`
	FarmingCape    bool `json:"farming_cape" yaml:"farming_cape"`

	// BottomlessBucket halves the cost of compost per patch.
	BottomlessBucket bool `json:"bottomless_bucket" yaml:"bottomless_bucket"`
	ResurrectCrops   bool `json:"resurrect_crops" yaml:"resurrect_crops"`

	Compost    Compost    `json:"compost" yaml:"compost" validate:"compost"`
	AnimaPlant AnimaPlant `json:"anima_plant" yaml:"anima_plant" validate:"anima"`

	FaladorDiary       DiaryLevel `json:"falador_diary" yaml:"falador_diary" validate:"diary"`
	KandarinDiary      DiaryLevel `json:"kandarin_diary" yaml:"kandarin_diary" validate:"diary"`
	KourendDiary       DiaryLevel `json:"kourend_diary" yaml:"kourend_diary" validate:"diary"`
	HosidiusFiftyFavor bool       `json:"hosidius_fifty_favor" yaml:"hosidius_fifty_favor"`
}

// Validate checks the invariants the engine relies on.
func (c *HerbConfig) Validate() error {
	if len(c.Patches) == 0 {
		return ErrNoPatches
	}
	for _, p := range c.Patches {
		if !p.IsValid() {
			return fmt.Errorf("%w: %d", ErrUnknownPatch, int(p))
		}
	}
	return nil
}

// HasPatch reports whether patch is part of the run.
func (c *HerbConfig) HasPatch(patch HerbPatch) bool {
	for _, p := range c.Patches {
		if p == patch {
			return true
		}
	}
	return false
}

// Levels are the player's skill levels used by a calculation.
type Levels struct {
	Farming int `json:"farming"`
	// Magic is zero when unknown. It is only needed for Resurrect Crops.
	Magic int `json:"magic,omitempty"`
}

// MaxLevel is the highest level a skill can reach.
const MaxLevel = 99

// ValidateLevel checks that level is a real skill level.
func ValidateLevel(level int) error {
	if level < 1 || level > MaxLevel {
		return fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	return nil
}

// HerbProfile is a named herb configuration saved through the API.
type HerbProfile struct {
	Name          string     `json:"name" validate:"required,profilename"`
	DefaultPlayer string     `json:"default_player,omitempty" validate:"omitempty,osrsname"`
	Config        HerbConfig `json:"config"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
