/* handlers_test.go
 * Contains unit tests for the slash command handlers using the mock session and httptest
 * upstreams behind a real API pipeline.
 */

package bot

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"freefire-bot/api/api"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBot creates a Bot whose pipeline talks to the given upstream URL
func newTestBot(t *testing.T, upstreamURL string) *Bot {
	t.Helper()
	apiPtr, err := api.NewAPI(api.Config{
		AccountBase: upstreamURL,
		StatsBase:   upstreamURL,
		LikeBase:    upstreamURL,
		LikeKey:     "test-key",
		Logger:      zerolog.Nop(),
	})
	require.NoError(t, err)

	b, err := NewBot("test_token", "", apiPtr, zerolog.Nop())
	require.NoError(t, err)
	return b
}

// newUpstream serves a fixed status and body and counts the requests it receives
func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int64, *string) {
	t.Helper()
	var requests atomic.Int64
	lastQuery := new(string)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		*lastQuery = r.URL.RawQuery
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts, &requests, lastQuery
}

// createInteraction builds a slash command interaction for testing
func createInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:   "interaction123",
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "user123", Username: "TestUser"},
			},
		},
	}
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Type:  discordgo.ApplicationCommandOptionString,
		Name:  name,
		Value: value,
	}
}

// region /uid tests

func TestUIDHandler_Success(t *testing.T) {
	ts, _, _ := newUpstream(t, http.StatusOK, `{"basicInfo": {"nickname": "Player1", "rank": 220, "level": 62}}`)
	bot := newTestBot(t, ts.URL)
	session := NewMockSession()

	bot.routeInteraction(session, createInteraction("uid", stringOpt("uid", "1633864660"), stringOpt("region", "IND")))

	require.Len(t, session.Responses, 1)
	assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, session.Responses[0].Type)

	embed := session.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Title, "Player1")
	assert.Contains(t, embed.Description, "1633864660")
	assert.Contains(t, embed.Description, "IND")
}

func TestUIDHandler_DefaultRegion(t *testing.T) {
	ts, _, lastQuery := newUpstream(t, http.StatusOK, `{"basicInfo": {}}`)
	bot := newTestBot(t, ts.URL)
	session := NewMockSession()

	bot.routeInteraction(session, createInteraction("uid", stringOpt("uid", "1633864660")))

	assert.Contains(t, *lastQuery, "region=IND")
}

func TestUIDHandler_InvalidUIDSkipsFetch(t *testing.T) {
	ts, requests, _ := newUpstream(t, http.StatusOK, `{}`)
	bot := newTestBot(t, ts.URL)
	session := NewMockSession()

	bot.routeInteraction(session, createInteraction("uid", stringOpt("uid", "12ab")))

	embed := session.LastEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, "❌ Invalid UID", embed.Title)
	assert.Equal(t, int64(0), requests.Load())
}

func TestUIDHandler_Upstream404(t *testing.T) {
	ts, requests, _ := newUpstream(t, http.StatusNotFound, "")
	bot := newTestBot(t, ts.URL)
	session := NewMockSession()

	bot.routeInteraction(session, createInteraction("uid", stringOpt("uid", "1633864660")))

	embed := session.LastEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, "❌ Player Not Found", embed.Title)
	assert.Contains(t, embed.Description, "404")
	assert.Equal(t, int64(1), requests.Load(), "no retry within the invocation")
}

// endregion

// region /stats tests

func TestStatsHandler_Defaults(t *testing.T) {
	ts, _, lastQuery := newUpstream(t, http.StatusOK, `{"basicInfo": {"nickname": "Player2"}, "stats": {"matchesPlayed": 10, "wins": 4, "kills": 20}}`)
	bot := newTestBot(t, ts.URL)
	session := NewMockSession()

	bot.routeInteraction(session, createInteraction("stats", stringOpt("uid", "1633864660")))

	assert.Contains(t, *lastQuery, "server=ind")
	assert.Contains(t, *lastQuery, "gamemode=br")
	assert.Contains(t, *lastQuery, "matchmode=CAREER")

	embed := session.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Title, "Player2")
	assert.Contains(t, embed.Description, "BR")
}

func TestStatsHandler_ErrorPayload(t *testing.T) {
	ts, _, _ := newUpstream(t, http.StatusOK, `{"status": "error"}`)
	bot := newTestBot(t, ts.URL)
	session := NewMockSession()

	bot.routeInteraction(session, createInteraction("stats", stringOpt("uid", "1633864660")))

	embed := session.LastEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, "❌ Player Not Found", embed.Title)
	assert.Contains(t, embed.Description, "no player data found or invalid UID")
}

// endregion

// region /like tests

func TestLikeHandler_FullSuccess(t *testing.T) {
	ts, _, lastQuery := newUpstream(t, http.StatusOK, `{"status": 2, "LikesGivenByAPI": 5, "PlayerNickname": "Player3"}`)
	bot := newTestBot(t, ts.URL)
	session := NewMockSession()

	bot.routeInteraction(session, createInteraction("like", stringOpt("uid", "1633864660"), stringOpt("server", "ind")))

	assert.Contains(t, *lastQuery, "server_name=ind")
	assert.Contains(t, *lastQuery, "key=test-key")

	embed := session.LastEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, "👍 Likes Sent!", embed.Title)
}

func TestLikeHandler_PartialStatusDistinctFromSuccess(t *testing.T) {
	ts, _, _ := newUpstream(t, http.StatusOK, `{"status": 1, "PlayerNickname": "Player3"}`)
	bot := newTestBot(t, ts.URL)
	session := NewMockSession()

	bot.routeInteraction(session, createInteraction("like", stringOpt("uid", "1633864660")))

	embed := session.LastEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, "👍 Like Request Processed", embed.Title)
	assert.Contains(t, embed.Fields[0].Value, "status code 1")
}

// endregion

// region /servers and routing tests

func TestServersHandler_ImmediateResponse(t *testing.T) {
	ts, requests, _ := newUpstream(t, http.StatusOK, `{}`)
	bot := newTestBot(t, ts.URL)
	session := NewMockSession()

	bot.routeInteraction(session, createInteraction("servers"))

	require.Len(t, session.Responses, 1)
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, session.Responses[0].Type)
	assert.Empty(t, session.Edits)
	assert.Equal(t, int64(0), requests.Load(), "listing commands make no network call")

	embed := session.LastResponseEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Fields[0].Value, "IND")
	assert.Contains(t, embed.Fields[0].Value, "PH")
}

func TestRouteInteraction_IgnoresNonCommand(t *testing.T) {
	ts, _, _ := newUpstream(t, http.StatusOK, `{}`)
	bot := newTestBot(t, ts.URL)
	session := NewMockSession()

	bot.routeInteraction(session, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{Type: discordgo.InteractionPing},
	})

	assert.Empty(t, session.Responses)
	assert.Empty(t, session.Edits)
}

func TestRouteInteraction_UnknownCommand(t *testing.T) {
	ts, _, _ := newUpstream(t, http.StatusOK, `{}`)
	bot := newTestBot(t, ts.URL)
	session := NewMockSession()

	bot.routeInteraction(session, createInteraction("unknown"))

	assert.Empty(t, session.Responses)
}

// endregion
