package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/butch-garage/showroom/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

const instructions = `Butch Garage showroom. Use query_catalog to browse vehicles
(list_facets gives the accepted filter values) and read showroom://vehicles/{id}
for a vehicle with its market trend. generate_* tools are present only when a
Gemini API key is configured; every one may take several seconds.`

// Server exposes the showroom catalog, and optionally generation, over MCP.
type Server struct {
	ports  *Ports
	server *mcp.Server
	tools  []string
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "showroom",
		Title:   "Butch Garage Showroom",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions}),
	}

	s.registerTools()
	s.registerResources()
	logger.Debug("MCP server ready with %d tools (generation: %t)", len(s.tools), s.GenerationEnabled())

	return s, nil
}

// Tools returns the names of the registered tools in registration order.
func (s *Server) Tools() []string {
	return append([]string(nil), s.tools...)
}

// GenerationEnabled reports whether the generate_* tools were registered.
func (s *Server) GenerationEnabled() bool {
	return s.ports.Generation != nil
}

// Run serves over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the streamable HTTP transport on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("MCP HTTP shutdown: %v", err)
		}
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
