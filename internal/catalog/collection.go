package catalog

import (
	"context"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/discogs"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/tools"
)

type identityInput struct{}

func newIdentityTool(client *discogs.Client) (*tools.Tool, error) {
	return newTool("get_identity", CategoryCollection,
		"Get the Discogs user behind the configured token. Requires a personal access token.",
		func(ctx context.Context, _ identityInput, _ tools.InvocationContext) (any, error) {
			if err := requireToken(client, "get_identity"); err != nil {
				return nil, err
			}
			return client.GetIdentity(ctx)
		})
}

type collectionValueInput struct {
	Username string `json:"username" jsonschema:"description=Discogs username owning the collection"`
}

func newCollectionValueTool(client *discogs.Client) (*tools.Tool, error) {
	return newTool("get_collection_value", CategoryCollection,
		"Get the estimated value range of a user's collection. Requires a personal access token.",
		func(ctx context.Context, in collectionValueInput, _ tools.InvocationContext) (any, error) {
			if err := requireToken(client, "get_collection_value"); err != nil {
				return nil, err
			}
			return client.GetCollectionValue(ctx, in.Username)
		})
}

type collectionFoldersInput struct {
	Username string `json:"username" jsonschema:"description=Discogs username owning the collection"`
}

func newCollectionFoldersTool(client *discogs.Client) (*tools.Tool, error) {
	return newTool("list_collection_folders", CategoryCollection,
		"List a user's collection folders with item counts. Requires a personal access token.",
		func(ctx context.Context, in collectionFoldersInput, _ tools.InvocationContext) (any, error) {
			if err := requireToken(client, "list_collection_folders"); err != nil {
				return nil, err
			}
			return client.ListCollectionFolders(ctx, in.Username)
		})
}
