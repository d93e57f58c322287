// Package app wires configuration, the Discogs client, the tool registry,
// and the HTTP handlers together.
package app

import (
	"fmt"
	"strings"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/catalog"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/common"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/config"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/discogs"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/handlers"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/mcp"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/tools"
)

// App holds all application components and dependencies.
type App struct {
	Config   *config.Config
	Logger   *common.Logger
	Client   *discogs.Client
	Registry *tools.Registry

	// HTTP handlers
	HealthHandler    *handlers.HealthHandler
	DiscoveryHandler *handlers.DiscoveryHandler
	InvokeHandler    *handlers.InvokeHandler
	VersionHandler   *handlers.VersionHandler
	MCPHandler       *mcp.Handler
}

// New initializes the application with all dependencies. A registry
// construction error (duplicate tool name, missing handler) is returned
// as-is so the caller can abort startup: the gateway never serves a
// partial tool set.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	a.Client = discogs.NewClient(cfg.Discogs)
	if !a.Client.HasToken() {
		logger.Warn().Msg("no Discogs token configured, authenticated tools will return errors")
	}

	toolList, err := catalog.Build(a.Client)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool catalog: %w", err)
	}

	registry, err := tools.NewRegistry(toolList...)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool registry: %w", err)
	}
	a.Registry = registry

	logToolCatalog(logger, registry)

	a.initHandlers()

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// logToolCatalog logs the registered tool names grouped by category.
// Observational only; category has no effect on request handling.
func logToolCatalog(logger *common.Logger, registry *tools.Registry) {
	byCategory := map[string][]string{}
	for _, t := range registry.List() {
		byCategory[t.Category] = append(byCategory[t.Category], t.Name)
	}

	for _, category := range []string{catalog.CategoryDatabase, catalog.CategoryMarketplace, catalog.CategoryCollection} {
		names := byCategory[category]
		if len(names) == 0 {
			continue
		}
		logger.Info().
			Str("category", category).
			Int("count", len(names)).
			Str("tools", strings.Join(names, ", ")).
			Msg("tools registered")
	}

	logger.Info().Int("total", registry.Len()).Msg("tool registry built")
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	service := a.Config.Server.Name

	a.HealthHandler = handlers.NewHealthHandler(a.Logger, service, a.Registry)
	a.DiscoveryHandler = handlers.NewDiscoveryHandler(a.Logger, service, a.Config.Server.Description, a.Registry)
	a.InvokeHandler = handlers.NewInvokeHandler(a.Logger, a.Registry)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.MCPHandler = mcp.NewHandler(service, a.Registry, a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
