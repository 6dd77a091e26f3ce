/* ranks.go
 * Contains the rank number to rank name mapping used by the account normalizer.
 */

package external

// rankNames maps the upstream rank codes to their display names.
var rankNames = map[int]string{
	220: "Heroic",
	219: "Grandmaster",
	218: "Master",
	217: "Diamond",
	216: "Platinum",
	215: "Gold",
	214: "Silver",
	213: "Bronze",
}

// RankName returns the display name for a current rank code. Any code outside the
// table maps to "Unranked".
func RankName(rank int) string {
	if name, ok := rankNames[rank]; ok {
		return name
	}
	return "Unranked"
}

// MaxRankName returns the display name for a best-ever rank code. Any code outside the
// table maps to "Unknown".
func MaxRankName(rank int) string {
	if name, ok := rankNames[rank]; ok {
		return name
	}
	return "Unknown"
}
