/* main.go
 * The "main" method for running the bot: loads configuration, builds the API pipeline,
 * starts the uptime probe server and runs the Discord bot until interrupted.
 * Usage: go run main.go
 */

package main

import (
	"fmt"
	"os"

	"freefire-bot/api/api"
	"freefire-bot/bot"
	"freefire-bot/config"
	"freefire-bot/logger"
	"freefire-bot/web"
)

const serviceName = "Free Fire UID Bot"

func main() {
	log := logger.New(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	log = logger.New(cfg.LogLevel)

	apiPtr, err := api.NewAPI(api.Config{
		AccountBase: cfg.AccountBase,
		StatsBase:   cfg.StatsBase,
		LikeBase:    cfg.LikeBase,
		LikeKey:     cfg.LikeKey,
		Logger:      log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize API")
	}

	b, err := bot.NewBot(cfg.DiscordToken, cfg.GuildID, apiPtr, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize bot")
	}

	// The uptime probe runs on its own goroutine and shares no state with the command path
	go func() {
		if err := web.Start(web.Config{Addr: ":" + cfg.Port, ServiceName: serviceName}, log); err != nil {
			log.Error().Err(err).Msg("uptime probe server stopped")
		}
	}()

	if err := b.Run(); err != nil {
		log.Fatal().Err(err).Msg("bot exited with error")
	}
}
