// Package catalog defines the Discogs tool set exposed by the gateway.
// Each tool pairs a reflected input schema with a handler that validates
// its own parameters before calling the Discogs API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/discogs"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/schema"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/tools"
)

// Tool categories.
const (
	CategoryDatabase    = "database"
	CategoryMarketplace = "marketplace"
	CategoryCollection  = "collection"
)

// Build constructs the full tool set backed by client. Tool order here is
// the order tools appear in discovery responses.
func Build(client *discogs.Client) ([]*tools.Tool, error) {
	builders := []func(*discogs.Client) (*tools.Tool, error){
		newSearchTool,
		newReleaseTool,
		newMasterReleaseTool,
		newArtistTool,
		newArtistReleasesTool,
		newLabelTool,
		newLabelReleasesTool,
		newPriceSuggestionsTool,
		newIdentityTool,
		newCollectionValueTool,
		newCollectionFoldersTool,
	}

	built := make([]*tools.Tool, 0, len(builders))
	for _, build := range builders {
		tool, err := build(client)
		if err != nil {
			return nil, err
		}
		built = append(built, tool)
	}
	return built, nil
}

// newTool reflects a schema from the input type T, compiles a validator
// from it, and wraps run so every invocation decodes into T only after
// the raw parameters validate.
func newTool[T any](name, category, description string, run func(ctx context.Context, in T, ic tools.InvocationContext) (any, error)) (*tools.Tool, error) {
	var zero T
	inputSchema := schema.Reflect(zero)

	validator, err := compileValidator(inputSchema)
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", name, err)
	}

	return &tools.Tool{
		Name:        name,
		Description: description,
		Category:    category,
		Parameters:  inputSchema,
		Execute: func(ctx context.Context, params map[string]any, ic tools.InvocationContext) (any, error) {
			var in T
			if err := decodeParams(validator, params, &in); err != nil {
				return nil, err
			}
			return run(ctx, in, ic)
		},
	}, nil
}

// compileValidator turns a reflected schema into a gojsonschema validator.
// The $schema marker is stripped first since gojsonschema only understands
// drafts 4 through 7.
func compileValidator(s *jsonschema.Schema) (*gojsonschema.Schema, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	delete(doc, "$schema")
	delete(doc, "$id")

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return compiled, nil
}

// decodeParams validates params against the compiled schema and decodes
// them into out. A nil map is treated as an empty parameter object.
func decodeParams(validator *gojsonschema.Schema, params map[string]any, out any) error {
	if params == nil {
		params = map[string]any{}
	}

	result, err := validator.Validate(gojsonschema.NewGoLoader(params))
	if err != nil {
		return fmt.Errorf("failed to validate parameters: %w", err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, issue := range result.Errors() {
			issues = append(issues, issue.String())
		}
		return fmt.Errorf("invalid parameters: %s", strings.Join(issues, "; "))
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	return nil
}

// requireToken guards tools that call authenticated Discogs endpoints.
func requireToken(client *discogs.Client, tool string) error {
	if client.HasToken() {
		return nil
	}
	return fmt.Errorf("%s requires a Discogs personal access token (set DISCOGS_TOKEN)", tool)
}
