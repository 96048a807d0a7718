package report

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/HerbRun_Go/internal/domain"
)

// placeholder stands in for a value that is not known.
const placeholder = "—"

// Numbers are always formatted for English; the game itself is English only.
var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// FormatInt formats n with thousands separators.
func FormatInt(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f with thousands separators and the given precision.
func FormatFloat(f float64, precision int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", precision), f)
}

// FormatPrice formats a price in coins. A missing price renders as a dash.
func FormatPrice(p domain.Price) string {
	v, ok := p.Get()
	if !ok {
		return placeholder
	}
	return FormatInt(int64(v))
}

// FormatPercent formats a probability in [0, 1] as a percentage with one
// decimal place.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// FormatBool renders a flag as Yes or No.
func FormatBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Title capitalizes each word of s.
func Title(s string) string {
	return titler.String(s)
}
