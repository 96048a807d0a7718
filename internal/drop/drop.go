// Package drop computes the chance of getting a drop: the binomial CDF of a
// per-roll probability over a number of attempts.
package drop

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/utils"
)

var (
	probabilityPattern = regexp.MustCompile(`^\s*(?P<num>[\d.]+)\s*(?:(/\s*(?P<denom>[\d.]+)\s*)|(?P<pct>%))?\s*$`)
	targetPattern      = regexp.MustCompile(`^(\d+)([-+]?)$`)
)

// ParseProbability parses a decimal ("0.02"), percentage ("2%") or fraction
// ("1/50"). The result must be in [0, 1].
func ParseProbability(s string) (float64, error) {
	m := probabilityPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q; try a decimal, percentage, or fraction", domain.ErrInvalidProbability, s)
	}

	num, err := strconv.ParseFloat(m[probabilityPattern.SubexpIndex("num")], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidProbability, s)
	}

	p := num
	switch {
	case m[probabilityPattern.SubexpIndex("denom")] != "":
		denom, err := strconv.ParseFloat(m[probabilityPattern.SubexpIndex("denom")], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidProbability, s)
		}
		p = num / denom
	case m[probabilityPattern.SubexpIndex("pct")] != "":
		p = num / 100
	}

	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: must be in range [0, 1], got %v", domain.ErrInvalidProbability, p)
	}
	return p, nil
}

// Bound says how a TargetRange compares successes against K.
type Bound int

const (
	Exactly Bound = iota
	AtMost
	AtLeast
)

// TargetRange is the number of successes being asked about: exactly K, at
// most K, or at least K.
type TargetRange struct {
	Bound Bound
	K     uint64
}

// DefaultTarget is one or more successes.
var DefaultTarget = TargetRange{Bound: AtLeast, K: 1}

// ParseTargetRange parses "3" (exactly 3), "3-" (3 or fewer) or "3+" (3 or
// more).
func ParseTargetRange(s string) (TargetRange, error) {
	m := targetPattern.FindStringSubmatch(s)
	if m == nil {
		return TargetRange{}, fmt.Errorf("%w: %q", domain.ErrInvalidTargetRange, s)
	}
	k, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return TargetRange{}, fmt.Errorf("%w: %q", domain.ErrInvalidTargetRange, s)
	}

	t := TargetRange{K: k}
	switch m[2] {
	case "-":
		t.Bound = AtMost
	case "+":
		t.Bound = AtLeast
	}
	return t, nil
}

func (t TargetRange) String() string {
	switch t.Bound {
	case AtMost:
		return fmt.Sprintf("≤%d", t.K)
	case AtLeast:
		return fmt.Sprintf("≥%d", t.K)
	default:
		return strconv.FormatUint(t.K, 10)
	}
}

// Values lists the success counts in the range that are possible in n
// trials.
func (t TargetRange) Values(n uint64) []uint64 {
	lo, hi := t.K, t.K
	switch t.Bound {
	case AtMost:
		lo = 0
	case AtLeast:
		hi = n
	}
	hi = min(hi, n)
	if lo > hi {
		return nil
	}

	ks := make([]uint64, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		ks = append(ks, k)
	}
	return ks
}

// Request describes one drop calculation.
type Request struct {
	// Probability of a success on one roll.
	Probability float64
	// Attempts is the number of chances, e.g. kill count.
	Attempts uint64
	// Rolls on the loot table per attempt. May be fractional for an average.
	Rolls  float64
	Target TargetRange
}

// Result is the answer to a Request.
type Result struct {
	Request
	// Trials is the effective number of rolls, floor(Attempts * Rolls).
	Trials uint64
	Chance float64
}

// Calculate returns the probability of the target number of successes.
func Calculate(req Request) (Result, error) {
	if math.IsNaN(req.Probability) || req.Probability < 0 || req.Probability > 1 {
		return Result{}, fmt.Errorf("%w: must be between 0 and 1, got %v", domain.ErrInvalidProbability, req.Probability)
	}
	if math.IsNaN(req.Rolls) || math.IsInf(req.Rolls, 0) || req.Rolls < 0 {
		return Result{}, fmt.Errorf("%w: got %v", domain.ErrInvalidRolls, req.Rolls)
	}

	trials := uint64(math.Floor(float64(req.Attempts) * req.Rolls))
	return Result{
		Request: req,
		Trials:  trials,
		Chance:  utils.BinomialCDF(req.Probability, trials, req.Target.Values(trials)),
	}, nil
}

// String renders the result as a sentence, e.g.
// "63.5830% chance of ≥1 successes in 50 attempts, with 1 roll(s)/attempt".
func (r Result) String() string {
	return fmt.Sprintf("%.4f%% chance of %s successes in %d attempts, with %s roll(s)/attempt",
		r.Chance*100, r.Target, r.Attempts, strconv.FormatFloat(r.Rolls, 'f', -1, 64))
}
