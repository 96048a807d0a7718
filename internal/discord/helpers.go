package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
)

// commandTimeout bounds one command's API calls, retries included. Discord
// allows 15 minutes to edit a deferred response.
const commandTimeout = 30 * time.Second

// deferResponse acknowledges an interaction with a deferred message.
// Required before any call that might take longer than 3 seconds.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		return fmt.Errorf("failed to send deferred response: %w", err)
	}
	return nil
}

// handleEmbedResponse defers the response, runs action and edits the
// deferred message with either the embed or a friendly error.
func handleEmbedResponse(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	action func(ctx context.Context) (*discordgo.MessageEmbed, error),
) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	embed, err := action(ctx)
	if err != nil {
		respondError(s, i, formatFriendlyError(err))
		return err
	}

	sendEmbed(s, i, embed)
	return nil
}

// respondError edits the deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// sendEmbed edits the deferred response with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// createEmbed creates a standard embed with the HerbRun footer
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterHerbRun,
		},
	}
}

// optionMap indexes the interaction's options by name
func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

// formatFriendlyError turns an API failure into a message users can act on
func formatFriendlyError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return MsgUpstreamDown
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return MsgGenericError
	}

	switch apiErr.StatusCode {
	case http.StatusBadRequest:
		return withDetail(MsgInvalidInput, apiErr.Message)
	case http.StatusNotFound:
		return withDetail(MsgNotFound, apiErr.Message)
	case http.StatusTooManyRequests:
		return MsgServiceBusy
	case http.StatusBadGateway, http.StatusGatewayTimeout:
		return MsgUpstreamDown
	case http.StatusServiceUnavailable:
		return withDetail("⚠️", apiErr.Message)
	default:
		return MsgGenericError
	}
}

func withDetail(headline, detail string) string {
	if detail == "" {
		return headline
	}
	return headline + "\n" + detail
}
