//go:build !test

/* server.go
 * Contains the HTTP server Start function that listens for incoming connections.
 * Excluded from test coverage as it blocks and requires real network binding.
 */

package web

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Start initializes and starts the uptime probe server with the given configuration
func Start(cfg Config, log zerolog.Logger) error {
	s := NewServer(cfg.ServiceName)

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HomeHandler)
	mux.HandleFunc("/health", s.HealthHandler)
	mux.HandleFunc("/ping", s.PingHandler)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	log.Info().Str("addr", cfg.Addr).Msg("uptime probe listening")
	return srv.ListenAndServe()
}
