package domain

import "fmt"

// DiaryLevel is the highest completed tier of an achievement diary.
// Values are ordered, so tiers compare with AtLeast.
type DiaryLevel int

const (
	DiaryNone DiaryLevel = iota
	DiaryEasy
	DiaryMedium
	DiaryHard
	DiaryElite
)

var diaryNames = enumNames{"none", "easy", "medium", "hard", "elite"}

// DiaryLevels returns every tier in ascending order.
func DiaryLevels() []DiaryLevel {
	return []DiaryLevel{DiaryNone, DiaryEasy, DiaryMedium, DiaryHard, DiaryElite}
}

// ParseDiaryLevel parses a diary tier by name.
func ParseDiaryLevel(s string) (DiaryLevel, error) {
	i, ok := diaryNames.lookup(s, nil)
	if !ok {
		return DiaryNone, fmt.Errorf("%w: unknown diary level %q", ErrConfig, s)
	}
	return DiaryLevel(i), nil
}

// AtLeast reports whether d meets the threshold tier.
func (d DiaryLevel) AtLeast(threshold DiaryLevel) bool { return d >= threshold }

func (d DiaryLevel) String() string { return diaryNames.name(int(d)) }

// IsValid reports whether d is one of the declared tiers.
func (d DiaryLevel) IsValid() bool { return diaryNames.valid(int(d)) }

func (d DiaryLevel) MarshalText() ([]byte, error) { return diaryNames.marshal("diary level", int(d)) }

func (d *DiaryLevel) UnmarshalText(text []byte) error {
	v, err := ParseDiaryLevel(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
