package domain

import "fmt"

// Skill is a hiscore skill. The declaration order matches the row order of
// the hiscore CSV.
type Skill int

const (
	SkillOverall Skill = iota
	SkillAttack
	SkillDefence
	SkillStrength
	SkillHitpoints
	SkillRanged
	SkillPrayer
	SkillMagic
	SkillCooking
	SkillWoodcutting
	SkillFletching
	SkillFishing
	SkillFiremaking
	SkillCrafting
	SkillSmithing
	SkillMining
	SkillHerblore
	SkillAgility
	SkillThieving
	SkillSlayer
	SkillFarming
	SkillRunecraft
	SkillHunter
	SkillConstruction
)

var skillNames = enumNames{
	"overall", "attack", "defence", "strength", "hitpoints", "ranged",
	"prayer", "magic", "cooking", "woodcutting", "fletching", "fishing",
	"firemaking", "crafting", "smithing", "mining", "herblore", "agility",
	"thieving", "slayer", "farming", "runecraft", "hunter", "construction",
}

var skillAliases = map[string]int{
	"total":        int(SkillOverall),
	"att":          int(SkillAttack),
	"atk":          int(SkillAttack),
	"def":          int(SkillDefence),
	"defense":      int(SkillDefence),
	"str":          int(SkillStrength),
	"hp":           int(SkillHitpoints),
	"range":        int(SkillRanged),
	"pray":         int(SkillPrayer),
	"mage":         int(SkillMagic),
	"cook":         int(SkillCooking),
	"wc":           int(SkillWoodcutting),
	"fletch":       int(SkillFletching),
	"fish":         int(SkillFishing),
	"fm":           int(SkillFiremaking),
	"craft":        int(SkillCrafting),
	"smith":        int(SkillSmithing),
	"mine":         int(SkillMining),
	"herb":         int(SkillHerblore),
	"agil":         int(SkillAgility),
	"thief":        int(SkillThieving),
	"thiev":        int(SkillThieving),
	"slay":         int(SkillSlayer),
	"farm":         int(SkillFarming),
	"rc":           int(SkillRunecraft),
	"runecrafting": int(SkillRunecraft),
	"hunt":         int(SkillHunter),
	"con":          int(SkillConstruction),
	"cons":         int(SkillConstruction),
}

// Skills returns every skill in hiscore order.
func Skills() []Skill {
	skills := make([]Skill, len(skillNames))
	for i := range skillNames {
		skills[i] = Skill(i)
	}
	return skills
}

// ParseSkill parses a skill by name or common abbreviation.
func ParseSkill(s string) (Skill, error) {
	i, ok := skillNames.lookup(s, skillAliases)
	if !ok {
		return SkillOverall, fmt.Errorf("%w: %q", ErrUnknownSkill, s)
	}
	return Skill(i), nil
}

func (s Skill) String() string { return skillNames.name(int(s)) }

// IsValid reports whether s is one of the declared skills.
func (s Skill) IsValid() bool { return skillNames.valid(int(s)) }

func (s Skill) MarshalText() ([]byte, error) { return skillNames.marshal("skill", int(s)) }

func (s *Skill) UnmarshalText(text []byte) error {
	v, err := ParseSkill(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// SkillLevel is one skill row of a hiscore entry. Rank and XP are -1 when the
// player is unranked in the skill.
type SkillLevel struct {
	Skill Skill `json:"skill"`
	Rank  int   `json:"rank"`
	Level int   `json:"level"`
	XP    int64 `json:"xp"`
}

// ActivityScore is a minigame, clue or boss row of a hiscore entry. Only
// activities the player is ranked in are kept.
type ActivityScore struct {
	Name  string `json:"name"`
	Rank  int    `json:"rank"`
	Score int64  `json:"score"`
}

// Player is a hiscore entry.
type Player struct {
	Name       string          `json:"name"`
	Skills     []SkillLevel    `json:"skills"`
	Activities []ActivityScore `json:"activities,omitempty"`
}

// Level returns the player's level in skill. Unranked skills report the
// starting level: 10 for Hitpoints, 1 otherwise.
func (p *Player) Level(skill Skill) int {
	for _, s := range p.Skills {
		if s.Skill == skill && s.Level > 0 {
			return s.Level
		}
	}
	if skill == SkillHitpoints {
		return 10
	}
	return 1
}
