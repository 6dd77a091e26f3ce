/* mock_session.go
 * Contains mock implementation of InteractionSession for testing
 */

package bot

import "github.com/bwmarrin/discordgo"

// MockSession implements InteractionSession for testing purposes
type MockSession struct {
	// Responses stores every initial interaction response sent during tests
	Responses []*discordgo.InteractionResponse
	// Edits stores every edit of a deferred response
	Edits []*discordgo.WebhookEdit
	// ErrorToReturn allows tests to simulate session errors
	ErrorToReturn error
}

// NewMockSession creates a new MockSession for testing
func NewMockSession() *MockSession {
	return &MockSession{}
}

// InteractionRespond implements InteractionSession.InteractionRespond
func (m *MockSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	if m.ErrorToReturn != nil {
		return m.ErrorToReturn
	}
	m.Responses = append(m.Responses, resp)
	return nil
}

// InteractionResponseEdit implements InteractionSession.InteractionResponseEdit
func (m *MockSession) InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	m.Edits = append(m.Edits, newresp)
	return &discordgo.Message{ID: "mock_message_id"}, nil
}

// LastEmbed returns the first embed of the last edit, or nil if none was sent
func (m *MockSession) LastEmbed() *discordgo.MessageEmbed {
	if len(m.Edits) == 0 {
		return nil
	}
	edit := m.Edits[len(m.Edits)-1]
	if edit.Embeds == nil || len(*edit.Embeds) == 0 {
		return nil
	}
	return (*edit.Embeds)[0]
}

// LastResponseEmbed returns the first embed of the last immediate response, or nil
func (m *MockSession) LastResponseEmbed() *discordgo.MessageEmbed {
	if len(m.Responses) == 0 {
		return nil
	}
	resp := m.Responses[len(m.Responses)-1]
	if resp.Data == nil || len(resp.Data.Embeds) == 0 {
		return nil
	}
	return resp.Data.Embeds[0]
}
