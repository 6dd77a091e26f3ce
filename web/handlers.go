/* handlers.go
 * Contains the HTTP handlers for the uptime probe endpoints. These exist so hosting
 * monitors see the process as alive; they never touch the command path.
 */

package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HealthResponse is the body served on /health
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// HomeHandler serves the static availability string on /
func (s *Server) HomeHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "🎯 %s is running!", s.serviceName)
}

// HealthHandler serves the health JSON with the current UTC time on /health
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{
		Status:    "healthy",
		Service:   s.serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// PingHandler serves a fixed pong on /ping
func (s *Server) PingHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "pong")
}
