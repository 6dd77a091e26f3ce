/* models.go
 * Contains the configuration and server types for the uptime probe endpoints
 */

package web

// Config holds the configuration for the web server
type Config struct {
	Addr        string
	ServiceName string
}

// Server handles the uptime probe requests. It shares no state with the command path.
type Server struct {
	serviceName string
}

// NewServer creates a Server for the given service name
func NewServer(serviceName string) *Server {
	return &Server{serviceName: serviceName}
}
