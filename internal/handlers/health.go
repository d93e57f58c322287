package handlers

import (
	"net/http"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/common"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/config"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/tools"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger   *common.Logger
	service  string
	registry *tools.Registry
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(logger *common.Logger, service string, registry *tools.Registry) *HealthHandler {
	return &HealthHandler{logger: logger, service: service, registry: registry}
}

// ServeHTTP handles GET /health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"service":    h.service,
		"version":    config.GetVersion(),
		"toolsCount": h.registry.Len(),
	})
}
