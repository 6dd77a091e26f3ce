//go:build !test

/* bot_runtime.go
 * Contains runtime-only Discord bot methods that use *discordgo.Session directly: session
 * lifecycle and slash command registration. Delegates interaction handling to the testable
 * handlers in handlers.go to avoid code duplication.
 */

package bot

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
)

// Run starts the Discord bot, registers the slash commands and blocks until the process
// is interrupted. Registered commands are removed again on shutdown.
func (b *Bot) Run() error {
	// create a session
	discord, err := discordgo.New("Bot " + b.BotToken)
	if err != nil {
		return err
	}

	// add the interaction handler
	discord.AddHandler(b.onInteraction)

	// open session
	if err := discord.Open(); err != nil {
		return err
	}
	defer discord.Close() // close session, after function termination

	registered, err := b.registerCommands(discord)
	if err != nil {
		return err
	}
	defer b.removeCommands(discord, registered)

	b.log.Info().Int("commands", len(registered)).Msg("bot running, slash commands registered")

	// keep bot running until there is an os interruption (ctrl + C or SIGTERM)
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	b.log.Info().Msg("shutting down")
	return nil
}

// registerCommands registers the defined slash commands against the configured guild,
// or globally when no guild is configured.
func (b *Bot) registerCommands(discord *discordgo.Session) ([]*discordgo.ApplicationCommand, error) {
	defs := commands()
	registered := make([]*discordgo.ApplicationCommand, 0, len(defs))
	for _, cmd := range defs {
		created, err := discord.ApplicationCommandCreate(discord.State.User.ID, b.GuildID, cmd)
		if err != nil {
			return nil, fmt.Errorf("error creating command '%s': %w", cmd.Name, err)
		}
		registered = append(registered, created)
	}
	return registered, nil
}

// removeCommands removes the commands registered by registerCommands.
func (b *Bot) removeCommands(discord *discordgo.Session, registered []*discordgo.ApplicationCommand) {
	for _, cmd := range registered {
		if err := discord.ApplicationCommandDelete(discord.State.User.ID, b.GuildID, cmd.ID); err != nil {
			b.log.Warn().Str("command", cmd.Name).Err(err).Msg("failed to remove command")
		}
	}
}

// onInteraction delegates to the testable router
// *discordgo.Session implements the InteractionSession interface
func (b *Bot) onInteraction(discord *discordgo.Session, interaction *discordgo.InteractionCreate) {
	b.routeInteraction(discord, interaction)
}
