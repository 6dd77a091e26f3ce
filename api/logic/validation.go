/* validation.go
 * Contains the input validation logic run before any network call is made. All functions here
 * are pure: they receive the raw command option values and return either a canonicalized value
 * or a validation error from the shared taxonomy.
 */

package logic

import (
	"fmt"
	"sort"
	"strings"

	"freefire-bot/api/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Regions is the fixed allow-list of server clusters, in canonical upper case.
// The same set serves every command; only the wire casing differs per endpoint.
var Regions = []string{"IND", "BD", "PK", "BR", "NA", "EU", "ME", "TR", "ID", "SG", "MY", "TH", "VN", "PH"}

// Gamemodes and Matchmodes are the closed enumerations accepted by the stats endpoint.
var (
	Gamemodes  = []string{"br", "cs"}
	Matchmodes = []string{"CAREER", "NORMAL", "RANKED"}
)

// ValidateUID checks a user supplied UID.
// Preconditions: receives the raw uid string from the command option
// Postconditions: returns the uid unchanged, or shared.InvalidUIDError if it contains a
// non-digit character or is shorter than 6 digits
func ValidateUID(uid string) (string, error) {
	if len(uid) < 6 {
		return "", shared.InvalidUIDError{UID: uid}
	}
	for _, r := range uid {
		if r < '0' || r > '9' {
			return "", shared.InvalidUIDError{UID: uid}
		}
	}
	return uid, nil
}

// ValidateRegion checks a region/server code against the allow-list, case insensitively.
// Preconditions: receives the raw region string from the command option
// Postconditions: returns the canonical upper case code, or shared.InvalidRegionError carrying
// the closest valid code as a suggestion when fuzzy matching ranks one
func ValidateRegion(region string) (string, error) {
	upper := strings.ToUpper(strings.TrimSpace(region))
	for _, code := range Regions {
		if code == upper {
			return code, nil
		}
	}
	return "", shared.InvalidRegionError{Region: region, Suggestion: suggestRegion(upper)}
}

// ValidateGamemode constrains the gamemode to its closed enumeration.
// Postconditions: returns the canonical lower case value used on the wire, or an error
func ValidateGamemode(mode string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(mode))
	for _, m := range Gamemodes {
		if m == lower {
			return lower, nil
		}
	}
	return "", fmt.Errorf("invalid gamemode %q, must be one of: %s", mode, strings.Join(Gamemodes, ", "))
}

// ValidateMatchmode constrains the matchmode to its closed enumeration.
// Postconditions: returns the canonical upper case value, or an error
func ValidateMatchmode(mode string) (string, error) {
	upper := strings.ToUpper(strings.TrimSpace(mode))
	for _, m := range Matchmodes {
		if m == upper {
			return upper, nil
		}
	}
	return "", fmt.Errorf("invalid matchmode %q, must be one of: %s", mode, strings.Join(Matchmodes, ", "))
}

// suggestRegion finds the closest valid region code for an invalid input, used to build the
// "did you mean" part of the validation error. Returns "" if nothing ranks.
func suggestRegion(input string) string {
	matches := fuzzy.RankFindFold(input, Regions)
	if len(matches) > 0 {
		sort.Sort(matches)
		return matches[0].Target
	}
	// The input may be longer than any code (e.g. "INDIA"), try the reverse direction
	for _, code := range Regions {
		if fuzzy.MatchFold(code, input) {
			return code
		}
	}
	return ""
}
