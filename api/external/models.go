/* models.go
 * This file contains the normalized display records produced from the upstream payloads.
 * Records are built once per invocation, handed to the presenter and discarded; nothing here
 * is persisted or mutated after construction.
 */

package external

// AccountRecord is the display ready result of an account lookup (the /uid command).
type AccountRecord struct {
	UID         string
	Region      string
	Name        string
	Level       int
	Exp         int
	RankNumber  int
	RankName    string
	RankPoints  int
	MaxRank     string
	ClanName    string
	ClanLevel   int
	ClanMembers string // "current/capacity"
	Likes       int
	Badges      int
	LastLogin   string // epoch seconds as a string, or "Unknown"
	Status      string
	SeasonID    int
}

// StatsRecord is the display ready result of a player stats lookup (the /stats command).
// Deaths, WinRate and KDRatio are derived during normalization, never by the presenter.
type StatsRecord struct {
	UID           string
	Server        string // upper cased for display
	Gamemode      string // upper cased for display
	Matchmode     string
	Name          string
	Level         int
	Exp           int
	RankPoints    int
	ClanName      string
	ClanLevel     int
	Likes         int
	MatchesPlayed int
	Kills         int
	Headshots     int
	Damage        int
	Wins          int
	Top3          int
	Top6          int
	SurvivalTime  int
	Deaths        int
	WinRate       float64 // percentage, rounded to 2 decimal places
	KDRatio       float64 // rounded to 2 decimal places
}

// LikeRecord is the display ready result of a like action (the /like command).
// Status 2 signals a fully successful like action; any other code is a completed but
// partial or no-op action, passed through opaquely. Raw retains the untouched upstream
// payload for diagnostics.
type LikeRecord struct {
	UID         string
	Server      string // upper cased for display
	LikesGiven  int
	LikesAfter  int
	LikesBefore int
	Nickname    string
	Remains     string
	Status      int // -1 when the upstream omits it
	Raw         map[string]interface{}
}
