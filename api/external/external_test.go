/* external_test.go
 * Contains unit tests for the fetcher's outcome classification, using httptest upstreams
 */

package external

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"freefire-bot/api/shared"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEndpoint builds a descriptor pointed at a test server
func testEndpoint(baseURL string, timeout time.Duration) Endpoint {
	return Endpoint{Name: "test", BaseURL: baseURL, Path: "/account", Timeout: timeout}
}

// region Endpoint URL tests

func TestEndpoint_URL(t *testing.T) {
	ep := AccountEndpoint("https://example.com/api/v1")

	params := url.Values{}
	params.Set("region", "IND")
	params.Set("uid", "123456")

	assert.Equal(t, "https://example.com/api/v1/account?region=IND&uid=123456", ep.URL(params))
}

func TestEndpoint_URLTrailingSlash(t *testing.T) {
	ep := StatsEndpoint("https://example.com/api/v1/")

	params := url.Values{}
	params.Set("uid", "123456")

	assert.Equal(t, "https://example.com/api/v1/get_player_stats?uid=123456", ep.URL(params))
}

func TestEndpoint_Timeouts(t *testing.T) {
	assert.Equal(t, 10*time.Second, AccountEndpoint("x").Timeout)
	assert.Equal(t, 15*time.Second, StatsEndpoint("x").Timeout)
	assert.Equal(t, 15*time.Second, LikeEndpoint("x").Timeout)
}

// endregion

// region FetchJSON tests

func TestFetchJSON_Success(t *testing.T) {
	var gotAccept, gotUserAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{"basicInfo": {"nickname": "Player1"}}`))
	}))
	defer ts.Close()

	fetcher := NewFetcher(zerolog.Nop())
	data, err := fetcher.FetchJSON(context.Background(), testEndpoint(ts.URL, 2*time.Second), url.Values{})

	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Contains(t, data, "basicInfo")
	assert.Equal(t, "application/json", gotAccept)
	assert.Contains(t, gotUserAgent, "Mozilla/5.0")
}

func TestFetchJSON_Non200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	fetcher := NewFetcher(zerolog.Nop())
	data, err := fetcher.FetchJSON(context.Background(), testEndpoint(ts.URL, 2*time.Second), url.Values{})

	assert.Nil(t, data)
	var upstream shared.UpstreamStatusError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, 404, upstream.Code)
}

func TestFetchJSON_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing is listening anymore

	fetcher := NewFetcher(zerolog.Nop())
	_, err := fetcher.FetchJSON(context.Background(), testEndpoint(ts.URL, 2*time.Second), url.Values{})

	var network shared.NetworkError
	assert.True(t, errors.As(err, &network))
}

func TestFetchJSON_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer ts.Close()

	fetcher := NewFetcher(zerolog.Nop())
	_, err := fetcher.FetchJSON(context.Background(), testEndpoint(ts.URL, 50*time.Millisecond), url.Values{})

	var timeout shared.TimeoutError
	assert.True(t, errors.As(err, &timeout))
}

func TestFetchJSON_EmptyBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	fetcher := NewFetcher(zerolog.Nop())
	data, err := fetcher.FetchJSON(context.Background(), testEndpoint(ts.URL, 2*time.Second), url.Values{})

	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFetchJSON_InvalidJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer ts.Close()

	fetcher := NewFetcher(zerolog.Nop())
	data, err := fetcher.FetchJSON(context.Background(), testEndpoint(ts.URL, 2*time.Second), url.Values{})

	assert.Nil(t, data)
	var malformed shared.MalformedResponseError
	assert.True(t, errors.As(err, &malformed))
}

// endregion
