package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HerbRun_Go/internal/prices"
	"github.com/osse101/HerbRun_Go/internal/report"
)

// priceEmbedRows is how many matches the /price embed lists
const priceEmbedRows = 10

// PriceCommand returns the price lookup command definition and handler
func PriceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "price",
		Description: "Latest Grand Exchange price of an item",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Item name",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) error {
		return handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			query := ""
			if o, ok := optionMap(i.ApplicationCommandData().Options)["item"]; ok {
				query = strings.TrimSpace(o.StringValue())
			}
			quotes, err := client.SearchPrices(ctx, query)
			if err != nil {
				return nil, err
			}
			return priceEmbed(query, quotes, priceEmbedRows), nil
		})
	}

	return cmd, handler
}

func priceEmbed(query string, quotes []prices.Quote, limit int) *discordgo.MessageEmbed {
	if len(quotes) == 0 {
		return createEmbed(fmt.Sprintf("💰 %s", query), MsgNoPriceResults, ColorPrices)
	}
	if len(quotes) > limit {
		quotes = quotes[:limit]
	}

	embed := createEmbed(fmt.Sprintf("💰 %s", query), "", ColorPrices)
	for _, q := range quotes {
		value := report.FormatPrice(q.Price) + " gp"
		if q.Latest.High != nil && q.Latest.Low != nil {
			value += fmt.Sprintf("\nBuy %s · Sell %s",
				report.FormatInt(int64(*q.Latest.High)),
				report.FormatInt(int64(*q.Latest.Low)))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   q.Item.Name,
			Value:  value,
			Inline: true,
		})
	}
	return embed
}
