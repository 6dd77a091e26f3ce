/* api.go
 * This file contains the public methods for the command pipeline: validate the user input,
 * fetch from the upstream API and normalize the payload into a display record. Handlers
 * should only call methods from this file, not the sub packages.
 */

package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"freefire-bot/api/external"
	"freefire-bot/api/logic"

	"github.com/rs/zerolog"
)

// API owns the fetcher and the per-variant endpoint descriptors. It is built once at
// startup, shared by all command invocations and holds no per-request state.
type API struct {
	Fetcher *external.Fetcher
	Account external.Endpoint
	Stats   external.Endpoint
	Like    external.Endpoint
	LikeKey string
	log     zerolog.Logger
}

// Config carries the upstream API locations and the static like-API key for NewAPI.
type Config struct {
	AccountBase string
	StatsBase   string
	LikeBase    string
	LikeKey     string
	Logger      zerolog.Logger
}

// NewAPI creates a new API instance with the provided configuration.
func NewAPI(cfg Config) (*API, error) {
	if cfg.AccountBase == "" || cfg.StatsBase == "" || cfg.LikeBase == "" {
		return nil, fmt.Errorf("accountBase, statsBase and likeBase are required")
	}

	return &API{
		Fetcher: external.NewFetcher(cfg.Logger),
		Account: external.AccountEndpoint(cfg.AccountBase),
		Stats:   external.StatsEndpoint(cfg.StatsBase),
		Like:    external.LikeEndpoint(cfg.LikeBase),
		LikeKey: cfg.LikeKey,
		log:     cfg.Logger,
	}, nil
}

// LookupAccount runs the /uid pipeline: validate, fetch, normalize.
// Postconditions: returns a display ready AccountRecord, or one of the shared error kinds;
// validation failures never reach the network
func (a *API) LookupAccount(ctx context.Context, uid, region string) (*external.AccountRecord, error) {
	uid, err := logic.ValidateUID(uid)
	if err != nil {
		return nil, err
	}
	region, err = logic.ValidateRegion(region)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("region", region)
	params.Set("uid", uid)

	data, err := a.Fetcher.FetchJSON(ctx, a.Account, params)
	if err != nil {
		return nil, err
	}
	return external.NormalizeAccount(data, uid, region)
}

// LookupStats runs the /stats pipeline. The server code travels lower case on the wire;
// the record carries the display casing.
func (a *API) LookupStats(ctx context.Context, uid, server, gamemode, matchmode string) (*external.StatsRecord, error) {
	uid, err := logic.ValidateUID(uid)
	if err != nil {
		return nil, err
	}
	region, err := logic.ValidateRegion(server)
	if err != nil {
		return nil, err
	}
	gamemode, err = logic.ValidateGamemode(gamemode)
	if err != nil {
		return nil, err
	}
	matchmode, err = logic.ValidateMatchmode(matchmode)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("server", strings.ToLower(region))
	params.Set("uid", uid)
	params.Set("matchmode", matchmode)
	params.Set("gamemode", gamemode)

	data, err := a.Fetcher.FetchJSON(ctx, a.Stats, params)
	if err != nil {
		return nil, err
	}
	return external.NormalizeStats(data, uid, region, gamemode, matchmode)
}

// SendLikes runs the /like pipeline. The static upstream key is appended here so the
// bot layer never sees it.
func (a *API) SendLikes(ctx context.Context, uid, server string) (*external.LikeRecord, error) {
	uid, err := logic.ValidateUID(uid)
	if err != nil {
		return nil, err
	}
	region, err := logic.ValidateRegion(server)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("uid", uid)
	params.Set("server_name", strings.ToLower(region))
	params.Set("key", a.LikeKey)

	data, err := a.Fetcher.FetchJSON(ctx, a.Like, params)
	if err != nil {
		return nil, err
	}
	return external.NormalizeLike(data, uid, region)
}
