/* presenter.go
 * Formats normalized records and error kinds into Discord embeds. Formatting only:
 * thousands separators, suffixes and emoji selection. Every derived value already exists
 * on the record; no normalization decision is made here.
 */

package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"freefire-bot/api/external"
	"freefire-bot/api/logic"
	"freefire-bot/api/shared"

	"github.com/bwmarrin/discordgo"
)

const (
	colorGold   = 0xf1c40f
	colorBlue   = 0x3498db
	colorGreen  = 0x2ecc71
	colorOrange = 0xe67e22
	colorRed    = 0xe74c3c
)

const footerText = "Free Fire Player Stats • Real-time Data"

// rankEmojis keys an icon off the rank name; unmapped ranks fall back to the target emoji.
var rankEmojis = map[string]string{
	"Heroic": "👑", "Grandmaster": "🔥", "Master": "⚡",
	"Diamond": "💎", "Platinum": "💠", "Gold": "🥇",
	"Silver": "🥈", "Bronze": "🥉",
}

// accountEmbed renders an AccountRecord as the /uid result message
func accountEmbed(record *external.AccountRecord) *discordgo.MessageEmbed {
	rankEmoji, ok := rankEmojis[record.RankName]
	if !ok {
		rankEmoji = "🎯"
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎯 %s", record.Name),
		Description: fmt.Sprintf("**UID:** `%s` • **Region:** %s", record.UID, record.Region),
		Color:       colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "👤 Player Info",
				Value: fmt.Sprintf("**Name:** %s\n**Level:** %d\n**EXP:** %s\n**Status:** %s",
					record.Name, record.Level, formatThousands(record.Exp), record.Status),
				Inline: true,
			},
			{
				Name: fmt.Sprintf("%s Rank Info", rankEmoji),
				Value: fmt.Sprintf("**Rank:** %s (%d)\n**Points:** %s\n**Best Rank:** %s",
					record.RankName, record.RankNumber, formatThousands(record.RankPoints), record.MaxRank),
				Inline: true,
			},
			{
				Name: "🏠 Clan",
				Value: fmt.Sprintf("**Name:** %s\n**Level:** %d\n**Members:** %s",
					record.ClanName, record.ClanLevel, record.ClanMembers),
				Inline: true,
			},
			{
				Name: "📊 Social Stats",
				Value: fmt.Sprintf("**Likes:** %s\n**Badges:** %d\n**Season:** %d",
					formatThousands(record.Likes), record.Badges, record.SeasonID),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: footerText},
	}

	if record.LastLogin != "Unknown" {
		if epoch, err := strconv.ParseInt(record.LastLogin, 10, 64); err == nil {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   "🕒 Last Login",
				Value:  time.Unix(epoch, 0).UTC().Format("2006-01-02 15:04"),
				Inline: true,
			})
		}
	}

	return embed
}

// statsEmbed renders a StatsRecord as the /stats result message
func statsEmbed(record *external.StatsRecord) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📈 %s", record.Name),
		Description: fmt.Sprintf("**UID:** `%s` • **Server:** %s • %s / %s",
			record.UID, record.Server, record.Gamemode, record.Matchmode),
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "👤 Profile",
				Value: fmt.Sprintf("**Level:** %d\n**EXP:** %s\n**Rank Points:** %s\n**Likes:** %s",
					record.Level, formatThousands(record.Exp), formatThousands(record.RankPoints), formatThousands(record.Likes)),
				Inline: true,
			},
			{
				Name:   "🏠 Clan",
				Value:  fmt.Sprintf("**Name:** %s\n**Level:** %d", record.ClanName, record.ClanLevel),
				Inline: true,
			},
			{
				Name: "⚔️ Combat",
				Value: fmt.Sprintf("**Matches:** %s\n**Kills:** %s\n**Headshots:** %s\n**Damage:** %s",
					formatThousands(record.MatchesPlayed), formatThousands(record.Kills),
					formatThousands(record.Headshots), formatThousands(record.Damage)),
				Inline: true,
			},
			{
				Name: "🏆 Placements",
				Value: fmt.Sprintf("**Wins:** %s\n**Top 3:** %s\n**Top 6:** %s\n**Survival Time:** %s",
					formatThousands(record.Wins), formatThousands(record.Top3),
					formatThousands(record.Top6), formatThousands(record.SurvivalTime)),
				Inline: true,
			},
			{
				Name:   "📊 Ratios",
				Value:  fmt.Sprintf("**Win Rate:** %.2f%%\n**K/D:** %.2f", record.WinRate, record.KDRatio),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: footerText},
	}
}

// likeEmbed renders a completed like action. Status 2 is the fully successful rendering;
// any other code is completed-with-note, shown with the raw code untouched.
func likeEmbed(record *external.LikeRecord) *discordgo.MessageEmbed {
	title := "👍 Likes Sent!"
	color := colorGreen
	result := fmt.Sprintf("**%s** received **%s** likes", record.Nickname, formatThousands(record.LikesGiven))
	if record.Status != 2 {
		title = "👍 Like Request Processed"
		color = colorOrange
		result = fmt.Sprintf("The request completed with status code %d. No new likes may have been added (e.g. daily limit reached).", record.Status)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("**UID:** `%s` • **Server:** %s", record.UID, record.Server),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Result", Value: result, Inline: false},
			{
				Name: "📊 Like Count",
				Value: fmt.Sprintf("**Before:** %s\n**After:** %s\n**Given:** %s",
					formatThousands(record.LikesBefore), formatThousands(record.LikesAfter), formatThousands(record.LikesGiven)),
				Inline: true,
			},
			{Name: "⏳ Remaining", Value: record.Remains, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: footerText},
	}
}

// serversEmbed lists the region allow-list with a usage example
func serversEmbed() *discordgo.MessageEmbed {
	var codes strings.Builder
	for _, code := range logic.Regions {
		codes.WriteString(fmt.Sprintf("**%s**\n", code))
	}

	return &discordgo.MessageEmbed{
		Title:       "🌍 Free Fire Regions",
		Description: "Available regions for player lookup:",
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Region Codes", Value: codes.String(), Inline: false},
			{Name: "Usage Example", Value: "```/uid uid:1633864660 region:IND```", Inline: false},
		},
	}
}

// errorEmbed maps each error kind in the taxonomy to a distinct failure embed
func errorEmbed(err error) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{Color: colorRed}

	var invalidUID shared.InvalidUIDError
	var invalidRegion shared.InvalidRegionError
	var timeout shared.TimeoutError
	var upstream shared.UpstreamStatusError
	var malformed shared.MalformedResponseError
	var network shared.NetworkError

	switch {
	case errors.As(err, &invalidUID):
		embed.Title = "❌ Invalid UID"
		embed.Description = "UID must be numeric and at least 6 digits."

	case errors.As(err, &invalidRegion):
		embed.Title = "❌ Invalid Region"
		desc := fmt.Sprintf("`%s` is not a valid region. Valid: %s",
			invalidRegion.Region, strings.Join(logic.Regions, ", "))
		if invalidRegion.Suggestion != "" {
			desc += fmt.Sprintf("\nDid you mean `%s`?", invalidRegion.Suggestion)
		}
		embed.Description = desc

	case errors.As(err, &timeout):
		embed.Title = "⏱️ Request Timed Out"
		embed.Description = "The Free Fire API did not respond in time. Try again later."

	case errors.As(err, &upstream):
		embed.Title = "❌ Player Not Found"
		embed.Description = fmt.Sprintf("API returned status %d", upstream.Code)
		embed.Fields = checkHintFields()

	case errors.As(err, &malformed):
		embed.Title = "❌ Player Not Found"
		embed.Description = malformed.Detail
		embed.Fields = checkHintFields()

	case errors.As(err, &network):
		embed.Title = "🌐 Network Error"
		embed.Description = "Could not reach the Free Fire API. Try again later."

	default:
		embed.Title = "❌ Error"
		embed.Description = err.Error()
	}

	return embed
}

// checkHintFields reproduces the "things to check" hint shown on lookup failures
func checkHintFields() []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{{
		Name:   "💡 Check",
		Value:  "• UID is correct\n• Region is correct\n• Player might be private",
		Inline: false,
	}}
}

// formatThousands renders an integer with comma separators (12345 -> "12,345")
func formatThousands(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}
