package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// PingCommand answers with the bot's liveness and whether the API is reachable.
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check that the bot and the calculator API are up",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) error {
		ctx, cancel := context.WithTimeout(context.Background(), apiProbeTimeout)
		defer cancel()

		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: pingMessage(client.Healthy(ctx)),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
	}

	return cmd, handler
}

func pingMessage(apiUp bool) string {
	if apiUp {
		return MsgPong + "\n" + MsgAPIUp
	}
	return MsgPong + "\n" + MsgAPIDown
}
