/* endpoints.go
 * Contains the per-variant endpoint descriptors. The three commands share one fetch path and
 * differ only in the data held here: base URL, path and bounded wait.
 */

package external

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Endpoint describes one upstream API endpoint.
type Endpoint struct {
	Name    string
	BaseURL string
	Path    string
	Timeout time.Duration
}

// URL builds the full request URL for the given query parameters.
func (e Endpoint) URL(params url.Values) string {
	return fmt.Sprintf("%s%s?%s", strings.TrimRight(e.BaseURL, "/"), e.Path, params.Encode())
}

// AccountEndpoint returns the descriptor for the account lookup API.
func AccountEndpoint(base string) Endpoint {
	return Endpoint{Name: "account", BaseURL: base, Path: "/account", Timeout: 10 * time.Second}
}

// StatsEndpoint returns the descriptor for the player stats API.
func StatsEndpoint(base string) Endpoint {
	return Endpoint{Name: "stats", BaseURL: base, Path: "/get_player_stats", Timeout: 15 * time.Second}
}

// LikeEndpoint returns the descriptor for the like action API.
func LikeEndpoint(base string) Endpoint {
	return Endpoint{Name: "like", BaseURL: base, Path: "/like", Timeout: 15 * time.Second}
}
