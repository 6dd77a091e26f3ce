/* external.go
 * Contains the logic used to fetch data from the upstream Free Fire APIs. One GET per command
 * invocation with a bounded wait, no retries and no connection reuse; the outcome is
 * classified into the shared error kinds before anything else sees it.
 */

package external

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"freefire-bot/api/shared"

	"github.com/rs/zerolog"
)

// userAgent mirrors the browser-like header the upstream APIs expect.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Fetcher issues single GET requests against the upstream endpoints. It holds no
// per-request state and is safe for concurrent use.
type Fetcher struct {
	log zerolog.Logger
}

// NewFetcher creates a Fetcher that logs through the given logger.
func NewFetcher(log zerolog.Logger) *Fetcher {
	return &Fetcher{log: log}
}

// FetchJSON performs one GET against the endpoint and parses the response body.
// Preconditions: receives validated query parameters; the endpoint descriptor carries the bounded wait
// Postconditions: returns the parsed top level object (nil for an empty body), or one of
// shared.TimeoutError, shared.NetworkError, shared.UpstreamStatusError, shared.MalformedResponseError
func (f *Fetcher) FetchJSON(ctx context.Context, ep Endpoint, params url.Values) (map[string]interface{}, error) {
	requestURL := ep.URL(params)

	// Each invocation opens and tears down its own client session
	client := &http.Client{Timeout: ep.Timeout}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, shared.NetworkError{Err: err}
	}
	request.Header.Set("User-Agent", userAgent)
	request.Header.Set("Accept", "application/json")

	f.log.Debug().Str("endpoint", ep.Name).Str("url", requestURL).Msg("fetching upstream")

	response, err := client.Do(request)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			f.log.Warn().Str("endpoint", ep.Name).Dur("timeout", ep.Timeout).Msg("upstream request timed out")
			return nil, shared.TimeoutError{}
		}
		f.log.Warn().Str("endpoint", ep.Name).Err(err).Msg("upstream request failed")
		return nil, shared.NetworkError{Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		f.log.Warn().Str("endpoint", ep.Name).Int("status", response.StatusCode).Msg("upstream returned non-200")
		return nil, shared.UpstreamStatusError{Code: response.StatusCode}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, shared.NetworkError{Err: err}
	}

	// An empty body is the normalizer's problem, not a transport fault
	if strings.TrimSpace(string(body)) == "" {
		return nil, nil
	}

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, shared.MalformedResponseError{Detail: "invalid JSON in upstream response"}
	}
	return data, nil
}
