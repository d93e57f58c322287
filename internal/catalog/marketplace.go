package catalog

import (
	"context"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/discogs"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/tools"
)

type priceSuggestionsInput struct {
	ReleaseID int `json:"release_id" jsonschema:"description=Discogs release ID,minimum=1"`
}

func newPriceSuggestionsTool(client *discogs.Client) (*tools.Tool, error) {
	return newTool("get_price_suggestions", CategoryMarketplace,
		"Get suggested marketplace prices for a release by condition grade. Requires a personal access token.",
		func(ctx context.Context, in priceSuggestionsInput, _ tools.InvocationContext) (any, error) {
			if err := requireToken(client, "get_price_suggestions"); err != nil {
				return nil, err
			}
			return client.GetPriceSuggestions(ctx, in.ReleaseID)
		})
}
