/* handlers.go
 * Contains testable handler methods that accept the InteractionSession interface. Each
 * command invocation defers the response, runs the pipeline once and edits the deferred
 * response with either a record embed or an error embed. Invocations are independent and
 * share no mutable state.
 */

package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// routeInteraction routes a slash command interaction to the appropriate handler
func (b *Bot) routeInteraction(session InteractionSession, interaction *discordgo.InteractionCreate) {
	if interaction.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch interaction.ApplicationCommandData().Name {
	case "uid":
		b.uidHandler(session, interaction)
	case "stats":
		b.statsHandler(session, interaction)
	case "like":
		b.likeHandler(session, interaction)
	case "servers":
		b.serversHandler(session, interaction)
	}
}

// uidHandler handles the /uid command
func (b *Bot) uidHandler(session InteractionSession, interaction *discordgo.InteractionCreate) {
	if !b.deferResponse(session, interaction) {
		return
	}

	opts := optionMap(interaction)
	uid := stringOption(opts, "uid", "")
	region := stringOption(opts, "region", "IND")

	record, err := b.APIPtr.LookupAccount(context.Background(), uid, region)
	if err != nil {
		b.log.Warn().Str("uid", uid).Str("region", region).Err(err).Msg("uid lookup failed")
		b.respondEmbed(session, interaction, errorEmbed(err))
		return
	}
	b.respondEmbed(session, interaction, accountEmbed(record))
}

// statsHandler handles the /stats command
func (b *Bot) statsHandler(session InteractionSession, interaction *discordgo.InteractionCreate) {
	if !b.deferResponse(session, interaction) {
		return
	}

	opts := optionMap(interaction)
	uid := stringOption(opts, "uid", "")
	server := stringOption(opts, "server", "ind")
	gamemode := stringOption(opts, "gamemode", "br")
	matchmode := stringOption(opts, "matchmode", "CAREER")

	record, err := b.APIPtr.LookupStats(context.Background(), uid, server, gamemode, matchmode)
	if err != nil {
		b.log.Warn().Str("uid", uid).Str("server", server).Err(err).Msg("stats lookup failed")
		b.respondEmbed(session, interaction, errorEmbed(err))
		return
	}
	b.respondEmbed(session, interaction, statsEmbed(record))
}

// likeHandler handles the /like command
func (b *Bot) likeHandler(session InteractionSession, interaction *discordgo.InteractionCreate) {
	if !b.deferResponse(session, interaction) {
		return
	}

	opts := optionMap(interaction)
	uid := stringOption(opts, "uid", "")
	server := stringOption(opts, "server", "ind")

	record, err := b.APIPtr.SendLikes(context.Background(), uid, server)
	if err != nil {
		b.log.Warn().Str("uid", uid).Str("server", server).Err(err).Msg("like request failed")
		b.respondEmbed(session, interaction, errorEmbed(err))
		return
	}
	b.respondEmbed(session, interaction, likeEmbed(record))
}

// serversHandler handles the /servers command; no network call is involved so the
// response is sent immediately rather than deferred
func (b *Bot) serversHandler(session InteractionSession, interaction *discordgo.InteractionCreate) {
	err := session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{serversEmbed()},
		},
	})
	if err != nil {
		b.log.Error().Err(err).Msg("failed to respond to servers command")
	}
}

// deferResponse acknowledges the interaction so the fetch can take its bounded wait
func (b *Bot) deferResponse(session InteractionSession, interaction *discordgo.InteractionCreate) bool {
	err := session.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		b.log.Error().Err(err).Msg("failed to acknowledge interaction")
		return false
	}
	return true
}

// respondEmbed edits the deferred response with a single embed
func (b *Bot) respondEmbed(session InteractionSession, interaction *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	_, err := session.InteractionResponseEdit(interaction.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		b.log.Error().Err(err).Msg("failed to edit interaction response")
	}
}

// optionMap flattens the interaction options for lookup by name
func optionMap(interaction *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := interaction.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// stringOption returns a string option value, or the default when the user omitted it
func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name, def string) string {
	if opt, ok := opts[name]; ok {
		if s := opt.StringValue(); s != "" {
			return s
		}
	}
	return def
}
