/* config.go
 * Contains the environment backed configuration. A missing .env file is tolerated;
 * a missing bot token is not.
 */

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Defaults for the upstream API locations; each can be overridden from the environment.
const (
	DefaultAccountBase = "https://free-ff-api-src-5plp.onrender.com/api/v1"
	DefaultStatsBase   = "https://ff-community-api.vercel.app/api/v1"
	DefaultLikeBase    = "https://likes.ffgarena.cloud/api/v2"
)

// Config holds everything main needs to wire the application together.
type Config struct {
	DiscordToken string
	GuildID      string
	AccountBase  string
	StatsBase    string
	LikeBase     string
	LikeKey      string
	Port         string
	LogLevel     string
}

// Load reads configuration from the environment.
// Preconditions: godotenv may or may not find a .env file; both are fine
// Postconditions: returns a populated Config, or an error if DISCORD_BOT_TOKEN is absent
func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DiscordToken: os.Getenv("DISCORD_BOT_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),
		AccountBase:  getEnv("ACCOUNT_API_BASE", DefaultAccountBase),
		StatsBase:    getEnv("STATS_API_BASE", DefaultStatsBase),
		LikeBase:     getEnv("LIKE_API_BASE", DefaultLikeBase),
		LikeKey:      os.Getenv("LIKE_API_KEY"),
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required but not set")
	}

	logger.Info().
		Str("account_api", cfg.AccountBase).
		Str("stats_api", cfg.StatsBase).
		Str("like_api", cfg.LikeBase).
		Str("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg, nil
}

// getEnv reads a key from the environment, falling back when unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
