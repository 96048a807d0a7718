package farming

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/HerbRun_Go/internal/domain"
)

// MatchHerb resolves user input to a herb. Exact names and aliases win;
// otherwise the closest herb name within a small edit distance is used, so
// "snapdrgon" finds Snapdragon. Ambiguous or distant input is an error.
func MatchHerb(input string) (domain.Herb, error) {
	if herb, err := domain.ParseHerb(input); err == nil {
		return herb, nil
	}

	token := strings.ToLower(strings.TrimSpace(input))
	if token == "" {
		return domain.HerbGuam, fmt.Errorf("%w: empty name", domain.ErrUnknownHerb)
	}

	var (
		best     domain.Herb
		bestDist = -1
		tied     bool
	)
	for _, herb := range domain.Herbs() {
		name := strings.ToLower(herb.DisplayName())
		if strings.HasPrefix(name, token) && len(token) >= 3 {
			return herb, nil
		}
		dist := levenshtein.ComputeDistance(token, name)
		if dist > distanceLimit(len(name)) {
			continue
		}
		switch {
		case bestDist < 0 || dist < bestDist:
			best, bestDist, tied = herb, dist, false
		case dist == bestDist:
			tied = true
		}
	}

	if bestDist < 0 {
		return domain.HerbGuam, fmt.Errorf("%w: %q", domain.ErrUnknownHerb, input)
	}
	if tied {
		return domain.HerbGuam, fmt.Errorf("%w: %q is ambiguous", domain.ErrUnknownHerb, input)
	}
	return best, nil
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
