package mcp

import (
	"net/http"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/common"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/config"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/tools"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	server     *mcpserver.MCPServer
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
}

// NewHandler builds an MCP server exposing every registry tool plus the
// get_version connectivity tool.
func NewHandler(service string, registry *tools.Registry, logger *common.Logger) *Handler {
	mcpSrv := mcpserver.NewMCPServer(
		service,
		config.GetVersion(),
		mcpserver.WithToolCapabilities(true),
	)

	count := RegisterTools(mcpSrv, registry)
	mcpSrv.AddTool(VersionTool(), VersionToolHandler())

	// Stateless: each POST carries a complete JSON-RPC exchange, no session
	// affinity required.
	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	logger.Info().
		Int("tools", count).
		Msg("MCP handler initialized")

	return &Handler{
		server:     mcpSrv,
		streamable: streamable,
		logger:     logger,
	}
}

// Server returns the underlying MCP server, used by the stdio transport.
func (h *Handler) Server() *mcpserver.MCPServer {
	return h.server
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}

// Start runs the streamable HTTP transport as a standalone listener.
// Used by the dedicated MCP binary; the gateway mounts ServeHTTP instead.
func (h *Handler) Start(addr string) error {
	return h.streamable.Start(addr)
}
