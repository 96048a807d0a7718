package discord

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/handler"
	"github.com/osse101/HerbRun_Go/internal/report"
)

// herbEmbedRows is how many herbs the /herbs embed lists
const herbEmbedRows = 8

// HerbsCommand returns the herb table command definition and handler
func HerbsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLevel := float64(1)

	herbChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Herbs()))
	for _, h := range domain.Herbs() {
		herbChoices = append(herbChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  h.DisplayName(),
			Value: h.String(),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "herbs",
		Description: "Expected profit of a herb run for a saved profile",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "profile",
				Description: "Saved profile name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "player",
				Description: "Look up levels on the hiscores for this player",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "farming_level",
				Description: "Farming level (overrides the hiscores)",
				MinValue:    &minLevel,
				MaxValue:    domain.MaxLevel,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "magic_level",
				Description: "Magic level (overrides the hiscores)",
				MinValue:    &minLevel,
				MaxValue:    domain.MaxLevel,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "herb",
				Description: "Only show this herb",
				Choices:     herbChoices,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) error {
		return handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			req, err := herbsRequest(i.ApplicationCommandData().Options)
			if err != nil {
				return nil, err
			}
			resp, err := client.HerbTable(ctx, req)
			if err != nil {
				return nil, err
			}
			return herbsEmbed(req.Profile, resp, herbEmbedRows), nil
		})
	}

	return cmd, handler
}

// herbsRequest builds the API request from the command options
func herbsRequest(opts []*discordgo.ApplicationCommandInteractionDataOption) (handler.HerbTableRequest, error) {
	m := optionMap(opts)

	var req handler.HerbTableRequest
	if o, ok := m["profile"]; ok {
		req.Profile = strings.TrimSpace(o.StringValue())
	}
	if req.Profile == "" {
		return req, &APIError{StatusCode: http.StatusBadRequest, Message: "a profile is required"}
	}
	if o, ok := m["player"]; ok {
		req.Player = strings.TrimSpace(o.StringValue())
	}
	if o, ok := m["farming_level"]; ok {
		req.FarmingLevel = int(o.IntValue())
	}
	if o, ok := m["magic_level"]; ok {
		req.MagicLevel = int(o.IntValue())
	}
	if o, ok := m["herb"]; ok {
		herb, err := domain.ParseHerb(o.StringValue())
		if err != nil {
			return req, &APIError{StatusCode: http.StatusBadRequest, Message: err.Error()}
		}
		req.Herbs = []domain.Herb{herb}
	}
	return req, nil
}

// herbsEmbed lists the most profitable herbs first. Herbs above the farming
// level sort last.
func herbsEmbed(profile string, resp *handler.HerbTableResponse, limit int) *discordgo.MessageEmbed {
	rows := append([]domain.HerbStats(nil), resp.Rows...)
	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].MeetsLevel != rows[b].MeetsLevel {
			return rows[a].MeetsLevel
		}
		return rows[a].Stats.Profit > rows[b].Stats.Profit
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	var desc strings.Builder
	fmt.Fprintf(&desc, "Farming **%d**", resp.Levels.Farming)
	if resp.Levels.Magic > 0 {
		fmt.Fprintf(&desc, " · Magic **%d**", resp.Levels.Magic)
	}
	for _, p := range resp.Patches {
		fmt.Fprintf(&desc, "\n• %s", p.Description)
	}

	embed := createEmbed(fmt.Sprintf("🌿 Herb run: %s", profile), desc.String(), ColorHerbs)
	for _, row := range rows {
		name := row.Name
		if !row.MeetsLevel {
			name = "🔒 " + name
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: name,
			Value: fmt.Sprintf("Profit **%s** gp\nYield %s · XP %s · Survival %s",
				report.FormatInt(int64(row.Stats.Profit)),
				report.FormatFloat(row.Stats.ExpectedYield, 1),
				report.FormatFloat(row.Stats.ExpectedXP, 0),
				report.FormatPercent(row.Stats.SurvivalChance)),
			Inline: true,
		})
	}
	return embed
}
