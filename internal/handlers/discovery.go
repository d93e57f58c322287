package handlers

import (
	"net/http"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/common"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/config"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/schema"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/tools"
)

// DiscoveryRecord is the client-facing description of one registered tool.
type DiscoveryRecord struct {
	Name        string                                                  `json:"name"`
	Description string                                                  `json:"description"`
	Category    string                                                  `json:"category,omitempty"`
	Parameters  *orderedmap.OrderedMap[string, schema.FieldDescription] `json:"parameters"`
}

type usageInfo struct {
	Endpoint string         `json:"endpoint"`
	Example  map[string]any `json:"example"`
}

type discoveryResponse struct {
	Service     string            `json:"service"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	ToolsCount  int               `json:"toolsCount"`
	Tools       []DiscoveryRecord `json:"tools"`
	Usage       usageInfo         `json:"usage"`
}

// DiscoveryHandler handles tool discovery requests.
type DiscoveryHandler struct {
	logger      *common.Logger
	service     string
	description string
	registry    *tools.Registry
}

// NewDiscoveryHandler creates a new discovery handler.
func NewDiscoveryHandler(logger *common.Logger, service, description string, registry *tools.Registry) *DiscoveryHandler {
	return &DiscoveryHandler{
		logger:      logger,
		service:     service,
		description: description,
		registry:    registry,
	}
}

// ServeHTTP handles GET /api/tools. Records are recomputed on every request;
// the registry is small and static so the cost is negligible.
func (h *DiscoveryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	registered := h.registry.List()
	records := make([]DiscoveryRecord, 0, len(registered))
	for _, tool := range registered {
		records = append(records, DiscoveryRecord{
			Name:        tool.Name,
			Description: tool.Description,
			Category:    tool.Category,
			Parameters:  schema.Describe(tool.Parameters),
		})
	}

	WriteJSON(w, http.StatusOK, discoveryResponse{
		Service:     h.service,
		Version:     config.GetVersion(),
		Description: h.description,
		ToolsCount:  len(records),
		Tools:       records,
		Usage: usageInfo{
			Endpoint: "POST /api/tools/:toolName",
			Example: map[string]any{
				"tool": "search_discogs",
				"body": map[string]any{"query": "Rumours", "type": "release"},
			},
		},
	})
}
