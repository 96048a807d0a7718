package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/farming"
	"github.com/osse101/HerbRun_Go/internal/handler"
	"github.com/osse101/HerbRun_Go/internal/prices"
)

func stringOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v,
	}
}

// Discord delivers integers as JSON numbers, which decode to float64
func intOpt(name string, v float64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: v,
	}
}

func TestHerbsRequest(t *testing.T) {
	tests := []struct {
		name    string
		opts    []*discordgo.ApplicationCommandInteractionDataOption
		want    handler.HerbTableRequest
		wantErr string
	}{
		{
			name: "profile only",
			opts: []*discordgo.ApplicationCommandInteractionDataOption{stringOpt("profile", "main")},
			want: handler.HerbTableRequest{Profile: "main"},
		},
		{
			name: "all options",
			opts: []*discordgo.ApplicationCommandInteractionDataOption{
				stringOpt("profile", " main "),
				stringOpt("player", "Zezima"),
				intOpt("farming_level", 85),
				intOpt("magic_level", 94),
				stringOpt("herb", "ranarr"),
			},
			want: handler.HerbTableRequest{
				Profile:      "main",
				Player:       "Zezima",
				FarmingLevel: 85,
				MagicLevel:   94,
				Herbs:        []domain.Herb{domain.HerbRanarr},
			},
		},
		{
			name:    "missing profile",
			opts:    []*discordgo.ApplicationCommandInteractionDataOption{stringOpt("player", "Zezima")},
			wantErr: "a profile is required",
		},
		{
			name: "unknown herb",
			opts: []*discordgo.ApplicationCommandInteractionDataOption{
				stringOpt("profile", "main"),
				stringOpt("herb", "snapdrgon"),
			},
			wantErr: "unknown herb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := herbsRequest(tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.True(t, IsAPIError(err, http.StatusBadRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHerbsEmbed(t *testing.T) {
	resp := &handler.HerbTableResponse{
		Levels:  domain.Levels{Farming: 70, Magic: 80},
		Patches: []farming.PatchInfo{{Patch: domain.PatchCatherby, Description: "Catherby (+5% yield)"}},
		Rows: []domain.HerbStats{
			{Name: "Guam leaf", MeetsLevel: true, Stats: domain.PatchStats{Profit: -1200, SurvivalChance: 0.9}},
			{Name: "Torstol", MeetsLevel: false, Stats: domain.PatchStats{Profit: 90000}},
			{Name: "Ranarr weed", MeetsLevel: true, Stats: domain.PatchStats{Profit: 45000, ExpectedYield: 8.26, ExpectedXP: 1234.4, SurvivalChance: 0.925}},
			{Name: "Snapdragon", MeetsLevel: true, Stats: domain.PatchStats{Profit: 30000}},
		},
	}

	embed := herbsEmbed("main", resp, 3)

	assert.Contains(t, embed.Title, "main")
	assert.Contains(t, embed.Description, "Farming **70**")
	assert.Contains(t, embed.Description, "Magic **80**")
	assert.Contains(t, embed.Description, "Catherby (+5% yield)")
	assert.Equal(t, FooterHerbRun, embed.Footer.Text)

	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "Ranarr weed", embed.Fields[0].Name)
	assert.Equal(t, "Snapdragon", embed.Fields[1].Name)
	assert.Equal(t, "Guam leaf", embed.Fields[2].Name, "above-level herbs sort last")
	assert.Contains(t, embed.Fields[0].Value, "Profit **45,000** gp")
	assert.Contains(t, embed.Fields[0].Value, "Yield 8.3")
	assert.Contains(t, embed.Fields[0].Value, "XP 1,234")
	assert.Contains(t, embed.Fields[0].Value, "Survival 92.5%")
	assert.Contains(t, embed.Fields[2].Value, "-1,200")

	// The input is not reordered
	assert.Equal(t, "Guam leaf", resp.Rows[0].Name)

	locked := herbsEmbed("main", resp, 10)
	require.Len(t, locked.Fields, 4)
	assert.Equal(t, "🔒 Torstol", locked.Fields[3].Name)
}

func TestPriceEmbed(t *testing.T) {
	high, low := 7400, 7200
	quotes := []prices.Quote{
		{Item: prices.Item{Name: "Ranarr weed"}, Latest: prices.ItemPrice{High: &high, Low: &low}, Price: domain.SomePrice(7300)},
		{Item: prices.Item{Name: "Ranarr potion (unf)"}, Price: domain.NoPrice()},
	}

	embed := priceEmbed("ranarr", quotes, 10)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "7,300 gp\nBuy 7,400 · Sell 7,200", embed.Fields[0].Value)
	assert.Equal(t, "— gp", embed.Fields[1].Value)

	assert.Len(t, priceEmbed("ranarr", quotes, 1).Fields, 1)

	empty := priceEmbed("zzz", nil, 10)
	assert.Empty(t, empty.Fields)
	assert.Equal(t, MsgNoPriceResults, empty.Description)
}

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"bad request", &APIError{StatusCode: http.StatusBadRequest, Message: "unknown herb"}, MsgInvalidInput + "\nunknown herb"},
		{"not found", &APIError{StatusCode: http.StatusNotFound, Message: "Profile not found"}, MsgNotFound + "\nProfile not found"},
		{"not found without message", &APIError{StatusCode: http.StatusNotFound}, MsgNotFound},
		{"rate limited", &APIError{StatusCode: http.StatusTooManyRequests}, MsgServiceBusy},
		{"upstream", fmt.Errorf("max retries exceeded: %w", &APIError{StatusCode: http.StatusBadGateway}), MsgUpstreamDown},
		{"timeout", context.DeadlineExceeded, MsgUpstreamDown},
		{"profiles disabled", &APIError{StatusCode: http.StatusServiceUnavailable, Message: "Profiles are disabled"}, "⚠️\nProfiles are disabled"},
		{"server error", &APIError{StatusCode: http.StatusInternalServerError}, MsgGenericError},
		{"transport", errors.New("connection refused"), MsgGenericError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.err))
		})
	}
}

func TestPingMessage(t *testing.T) {
	assert.Contains(t, pingMessage(true), MsgAPIUp)
	assert.Contains(t, pingMessage(false), MsgAPIDown)
	assert.True(t, strings.HasPrefix(pingMessage(false), MsgPong))
}
