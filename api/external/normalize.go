/* normalize.go
 * Contains the response normalization layer: the rules that turn a partially missing, loosely
 * typed upstream payload into a fully populated display record. All defaults and derived
 * metrics live here; the presenter performs formatting only.
 */

package external

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"freefire-bot/api/shared"
)

// NormalizeAccount maps the account API payload into an AccountRecord.
// Preconditions: receives the parsed top level object plus the validated uid and region
// Postconditions: returns a fully populated record, or shared.MalformedResponseError if the
// payload lacks the basicInfo container
func NormalizeAccount(data map[string]interface{}, uid, region string) (record *AccountRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			record = nil
			err = shared.MalformedResponseError{Detail: fmt.Sprintf("data parsing error: %v", r)}
		}
	}()

	if _, ok := data["basicInfo"]; !ok {
		return nil, shared.MalformedResponseError{Detail: "no player data found in response"}
	}

	basic := asMap(data["basicInfo"])
	clan := asMap(data["clanBasicInfo"])
	social := asMap(data["socialInfo"])

	rank := getInt(basic, "rank", 0)
	maxRank := getInt(basic, "maxRank", 0)

	return &AccountRecord{
		UID:         uid,
		Region:      region,
		Name:        getString(basic, "nickname", "Unknown"),
		Level:       getInt(basic, "level", 0),
		Exp:         getInt(basic, "exp", 0),
		RankNumber:  rank,
		RankName:    RankName(rank),
		RankPoints:  getInt(basic, "rankingPoints", 0),
		MaxRank:     MaxRankName(maxRank),
		ClanName:    getString(clan, "clanName", "No Clan"),
		ClanLevel:   getInt(clan, "clanLevel", 0),
		ClanMembers: fmt.Sprintf("%d/%d", getInt(clan, "memberNum", 0), getInt(clan, "capacity", 0)),
		Likes:       getInt(basic, "liked", 0),
		Badges:      getInt(basic, "badgeCnt", 0),
		LastLogin:   getLoose(basic, "lastLoginAt", "Unknown"),
		Status:      getString(social, "signature", "No status"),
		SeasonID:    getInt(basic, "seasonId", 0),
	}, nil
}

// NormalizeStats maps the player stats API payload into a StatsRecord, computing the
// derived win rate and kill/death ratio.
// Preconditions: receives the parsed top level object plus the validated parameters; server and
// gamemode arrive in their canonical wire casing and are upper cased here for display
// Postconditions: returns a fully populated record, or shared.MalformedResponseError when the
// upstream flags an error status
func NormalizeStats(data map[string]interface{}, uid, server, gamemode, matchmode string) (record *StatsRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			record = nil
			err = shared.MalformedResponseError{Detail: fmt.Sprintf("data parsing error: %v", r)}
		}
	}()

	if data == nil {
		return nil, shared.MalformedResponseError{Detail: "no player data found or invalid UID"}
	}
	if status, ok := data["status"].(string); ok && status == "error" {
		return nil, shared.MalformedResponseError{Detail: "no player data found or invalid UID"}
	}

	// The player payload may be nested under "data" or be the root object itself
	payload := data
	if nested, ok := data["data"].(map[string]interface{}); ok {
		payload = nested
	}

	basic := asMap(payload["basicInfo"])
	clan := asMap(payload["clanBasicInfo"])
	stats := asMap(payload["stats"])

	matches := getInt(stats, "matchesPlayed", 0)
	wins := getInt(stats, "wins", 0)
	kills := getInt(stats, "kills", 0)

	record = &StatsRecord{
		UID:           uid,
		Server:        strings.ToUpper(server),
		Gamemode:      strings.ToUpper(gamemode),
		Matchmode:     matchmode,
		Name:          getString(basic, "nickname", "Unknown"),
		Level:         getInt(basic, "level", 0),
		Exp:           getInt(basic, "exp", 0),
		RankPoints:    getInt(basic, "rankingPoints", 0),
		ClanName:      getString(clan, "clanName", "No Clan"),
		ClanLevel:     getInt(clan, "clanLevel", 0),
		Likes:         getInt(basic, "liked", 0),
		MatchesPlayed: matches,
		Kills:         kills,
		Headshots:     getInt(stats, "headshots", 0),
		Damage:        getInt(stats, "damage", 0),
		Wins:          wins,
		Top3:          getInt(stats, "top3", 0),
		Top6:          getInt(stats, "top6", 0),
		SurvivalTime:  getInt(stats, "survivalTime", 0),
	}

	// No division is attempted at all on an empty match history
	if matches > 0 {
		deaths := matches - wins
		record.Deaths = deaths
		record.WinRate = round2(float64(wins) / float64(matches) * 100)
		// max(deaths, 1) guards the division on a flawless record
		divisor := deaths
		if divisor < 1 {
			divisor = 1
		}
		record.KDRatio = round2(float64(kills) / float64(divisor))
	}
	return record, nil
}

// NormalizeLike maps the like API payload into a LikeRecord. The status code is passed
// through opaquely; only the presenter decides how each code is rendered.
// Preconditions: receives the parsed top level object plus the validated uid and server
// Postconditions: returns a fully populated record with the raw payload attached, or
// shared.MalformedResponseError when the body was empty or absent
func NormalizeLike(data map[string]interface{}, uid, server string) (record *LikeRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			record = nil
			err = shared.MalformedResponseError{Detail: fmt.Sprintf("data parsing error: %v", r)}
		}
	}()

	if len(data) == 0 {
		return nil, shared.MalformedResponseError{Detail: "no response from API"}
	}

	return &LikeRecord{
		UID:         uid,
		Server:      strings.ToUpper(server),
		LikesGiven:  getInt(data, "LikesGivenByAPI", 0),
		LikesAfter:  getInt(data, "LikesafterCommand", 0),
		LikesBefore: getInt(data, "LikesbeforeCommand", 0),
		Nickname:    getString(data, "PlayerNickname", "Unknown"),
		Remains:     getLoose(data, "remains", "Unknown"),
		Status:      getInt(data, "status", -1),
		Raw:         data,
	}, nil
}

// asMap returns the value as an object, treating absent or differently typed values
// as an empty mapping.
func asMap(v interface{}) map[string]interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

// getString reads a string field with a default for absent, empty or non-string values.
func getString(m map[string]interface{}, key, def string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return def
}

// getInt reads a numeric field. Upstream numbers arrive as JSON floats or as numeric
// strings; anything else falls back to the default.
func getInt(m map[string]interface{}, key string, def int) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// getLoose reads a field that may arrive as a string or a number, stringifying numbers,
// with a default for anything else. Used for last-login timestamps and remaining-likes
// counters whose upstream type is not stable.
func getLoose(m map[string]interface{}, key, def string) string {
	switch v := m[key].(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatInt(int64(v), 10)
	}
	return def
}

// round2 rounds to 2 decimal places, the display precision of the derived ratios.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
