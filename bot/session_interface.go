/* session_interface.go
 * Contains interface for the Discord session to enable mocking in tests
 */

package bot

import "github.com/bwmarrin/discordgo"

// InteractionSession defines the Discord session methods the command handlers use.
// This interface allows for easy mocking in tests.
type InteractionSession interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Ensure *discordgo.Session implements InteractionSession
var _ InteractionSession = (*discordgo.Session)(nil)
