// Package report renders calculator results as terminal tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/farming"
	"github.com/osse101/HerbRun_Go/internal/prices"
)

// newTable returns a table with the shared look. Columns whose index is in
// numeric are right-aligned.
func newTable(headers []string, numeric ...int) *table.Table {
	right := make(map[int]bool, len(numeric))
	for _, col := range numeric {
		right[col] = true
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderRow(false).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if right[col] {
				return numberStyle
			}
			return cellStyle
		})
}

// ConfigSummary writes the herb configuration, one setting per line, with
// each patch's bonuses spelled out.
func ConfigSummary(w io.Writer, cfg *domain.HerbConfig) error {
	var b strings.Builder
	b.WriteString("Patches:\n")
	for _, patch := range cfg.Patches {
		fmt.Fprintf(&b, " - %s\n", farming.Describe(patch, cfg))
	}
	fmt.Fprintf(&b, "Magic secateurs: %s\n", FormatBool(cfg.MagicSecateurs))
	fmt.Fprintf(&b, "Farming cape: %s\n", FormatBool(cfg.FarmingCape))
	fmt.Fprintf(&b, "Bottomless bucket: %s\n", FormatBool(cfg.BottomlessBucket))
	fmt.Fprintf(&b, "Resurrect crops: %s\n", FormatBool(cfg.ResurrectCrops))
	fmt.Fprintf(&b, "Compost: %s\n", cfg.Compost.DisplayName())
	fmt.Fprintf(&b, "Anima plant: %s\n", cfg.AnimaPlant.DisplayName())
	_, err := io.WriteString(w, b.String())
	return err
}

// HerbTable writes the herb calculator output: the levels and configuration
// used, followed by one row per herb. Herbs above the farming level are
// dimmed and losses are highlighted.
func HerbTable(w io.Writer, levels domain.Levels, cfg *domain.HerbConfig, rows []domain.HerbStats) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Farming level: %d\n", levels.Farming)
	if cfg.ResurrectCrops {
		fmt.Fprintf(&b, "Magic level: %d\n", levels.Magic)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if err := ConfigSummary(w, cfg); err != nil {
		return err
	}

	headers := []string{"Herb", "Survival Chance", "Yield per Run", "XP per Run", "Seed Price", "Herb Price", "Profit per Run"}
	if cfg.ResurrectCrops {
		headers = append(headers, "Resurrect Chance")
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		s := row.Stats
		cells[i] = []string{
			row.Name,
			FormatPercent(s.SurvivalChance),
			FormatFloat(s.ExpectedYield, 3),
			FormatFloat(s.ExpectedXP, 1),
			FormatPrice(s.SeedPrice),
			FormatPrice(s.HerbPrice),
			FormatInt(int64(s.Profit)),
		}
		if cfg.ResurrectCrops {
			cells[i] = append(cells[i], FormatPercent(s.ResurrectCastChance))
		}
	}

	t := newTable(headers).StyleFunc(herbStyle(rows)).Rows(cells...)

	note := "\nSurvival chance is an average across all patches. Yield, XP and profit take survival into account.\n"
	_, err := fmt.Fprintf(w, "%s%s\n", mutedStyle.Render(note), t.String())
	return err
}

func herbStyle(rows []domain.HerbStats) table.StyleFunc {
	return func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		style := numberStyle
		if col == 0 {
			style = cellStyle
		}
		if row >= 0 && row < len(rows) {
			if !rows[row].MeetsLevel {
				style = style.Faint(true)
			}
			if col == 6 && rows[row].Stats.Profit < 0 {
				style = style.Inherit(lossStyle)
			}
		}
		return style
	}
}

// HiscoreTable writes a player's skills.
func HiscoreTable(w io.Writer, player *domain.Player) error {
	cells := make([][]string, 0, len(player.Skills))
	for _, s := range player.Skills {
		cells = append(cells, []string{
			Title(s.Skill.String()),
			formatRanked(int64(s.Rank)),
			formatRanked(int64(s.Level)),
			formatRanked(s.XP),
		})
	}
	t := newTable([]string{"Skill", "Rank", "Level", "XP"}, 1, 2, 3).Rows(cells...)
	if _, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(player.Name), t.String()); err != nil {
		return err
	}
	if len(player.Activities) == 0 {
		return nil
	}

	cells = make([][]string, 0, len(player.Activities))
	for _, a := range player.Activities {
		cells = append(cells, []string{a.Name, FormatInt(int64(a.Rank)), FormatInt(a.Score)})
	}
	t = newTable([]string{"Activity", "Rank", "Score"}, 1, 2).Rows(cells...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// PriceTable writes search results. Items without trade data are left out.
func PriceTable(w io.Writer, quotes []prices.Quote) error {
	var cells [][]string
	for _, q := range quotes {
		if !q.Price.IsSome() {
			continue
		}
		cells = append(cells, []string{q.Item.Name, FormatPrice(q.Price)})
	}
	if len(cells) == 0 {
		_, err := io.WriteString(w, "No results\n")
		return err
	}
	t := newTable([]string{"Item", "Price"}, 1).Rows(cells...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}

// formatRanked renders the hiscore placeholder -1 as a dash.
func formatRanked(n int64) string {
	if n < 0 {
		return placeholder
	}
	return FormatInt(n)
}
