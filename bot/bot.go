/* bot.go
 * Contains the Bot type and the slash command definitions. The command registration and
 * session lifecycle live in bot_runtime.go; the testable interaction handlers live in
 * handlers.go.
 */

package bot

import (
	"fmt"
	"strings"

	"freefire-bot/api/api"
	"freefire-bot/api/logic"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Bot ties the Discord command surface to the API pipeline.
type Bot struct {
	BotToken string
	GuildID  string // empty registers commands globally
	APIPtr   *api.API
	log      zerolog.Logger
}

// NewBot creates a Bot. Requires a discord bot token and a pointer to the api, both
// passed in from main.go.
func NewBot(botToken, guildID string, apiPtr *api.API, log zerolog.Logger) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		GuildID:  guildID,
		APIPtr:   apiPtr,
		log:      log,
	}, nil
}

// commands returns the slash command definitions registered on startup. Region, server
// and mode options are closed choice lists so Discord rejects most bad input before the
// validator sees it; the validator still re-checks everything.
func commands() []*discordgo.ApplicationCommand {
	regionChoices := make([]*discordgo.ApplicationCommandOptionChoice, len(logic.Regions))
	serverChoices := make([]*discordgo.ApplicationCommandOptionChoice, len(logic.Regions))
	for i, code := range logic.Regions {
		regionChoices[i] = &discordgo.ApplicationCommandOptionChoice{Name: code, Value: code}
		serverChoices[i] = &discordgo.ApplicationCommandOptionChoice{Name: code, Value: strings.ToLower(code)}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "uid",
			Description: "Get Free Fire player statistics by UID",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "uid",
					Description: "Player UID",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "region",
					Description: "Server region (default IND)",
					Required:    false,
					Choices:     regionChoices,
				},
			},
		},
		{
			Name:        "stats",
			Description: "Get detailed Free Fire player stats",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "uid",
					Description: "Player UID",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "server",
					Description: "Server region (default ind)",
					Required:    false,
					Choices:     serverChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "gamemode",
					Description: "Game mode (default br)",
					Required:    false,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Battle Royale", Value: "br"},
						{Name: "Clash Squad", Value: "cs"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "matchmode",
					Description: "Match mode (default CAREER)",
					Required:    false,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Career", Value: "CAREER"},
						{Name: "Normal", Value: "NORMAL"},
						{Name: "Ranked", Value: "RANKED"},
					},
				},
			},
		},
		{
			Name:        "like",
			Description: "Send likes to a Free Fire player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "uid",
					Description: "Player UID",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "server",
					Description: "Server region (default ind)",
					Required:    false,
					Choices:     serverChoices,
				},
			},
		},
		{
			Name:        "servers",
			Description: "Show available Free Fire regions",
		},
	}
}
