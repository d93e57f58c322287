package catalog

import (
	"context"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/discogs"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/tools"
)

type searchInput struct {
	Query   string `json:"query" jsonschema:"description=Search query such as an artist name or album title"`
	Type    string `json:"type,omitempty" jsonschema:"description=Restrict results to one record type,enum=release,enum=master,enum=artist,enum=label"`
	Artist  string `json:"artist,omitempty" jsonschema:"description=Filter by artist name"`
	Title   string `json:"title,omitempty" jsonschema:"description=Filter by release title"`
	Label   string `json:"label,omitempty" jsonschema:"description=Filter by label name"`
	Genre   string `json:"genre,omitempty" jsonschema:"description=Filter by genre such as Rock or Electronic"`
	Style   string `json:"style,omitempty" jsonschema:"description=Filter by style such as Techno or Soul"`
	Country string `json:"country,omitempty" jsonschema:"description=Filter by release country"`
	Year    string `json:"year,omitempty" jsonschema:"description=Filter by release year"`
	Format  string `json:"format,omitempty" jsonschema:"description=Filter by format such as Vinyl or CD"`
	CatNo   string `json:"catno,omitempty" jsonschema:"description=Filter by catalog number"`
	Barcode string `json:"barcode,omitempty" jsonschema:"description=Filter by barcode"`
	Track   string `json:"track,omitempty" jsonschema:"description=Filter by track title"`
	Page    int    `json:"page,omitempty" jsonschema:"description=Page number starting at 1,minimum=1"`
	PerPage int    `json:"per_page,omitempty" jsonschema:"description=Results per page,minimum=1,maximum=100"`
}

func newSearchTool(client *discogs.Client) (*tools.Tool, error) {
	return newTool("search_discogs", CategoryDatabase,
		"Search the Discogs database for releases, masters, artists, and labels.",
		func(ctx context.Context, in searchInput, _ tools.InvocationContext) (any, error) {
			return client.Search(ctx, discogs.SearchParams{
				Query:   in.Query,
				Type:    in.Type,
				Artist:  in.Artist,
				Title:   in.Title,
				Label:   in.Label,
				Genre:   in.Genre,
				Style:   in.Style,
				Country: in.Country,
				Year:    in.Year,
				Format:  in.Format,
				CatNo:   in.CatNo,
				Barcode: in.Barcode,
				Track:   in.Track,
				Page:    in.Page,
				PerPage: in.PerPage,
			})
		})
}

type releaseInput struct {
	ReleaseID int `json:"release_id" jsonschema:"description=Discogs release ID,minimum=1"`
}

func newReleaseTool(client *discogs.Client) (*tools.Tool, error) {
	return newTool("get_release", CategoryDatabase,
		"Get full details for a release, including tracklist, credits, and formats.",
		func(ctx context.Context, in releaseInput, _ tools.InvocationContext) (any, error) {
			return client.GetRelease(ctx, in.ReleaseID)
		})
}

type masterReleaseInput struct {
	MasterID int `json:"master_id" jsonschema:"description=Discogs master release ID,minimum=1"`
}

func newMasterReleaseTool(client *discogs.Client) (*tools.Tool, error) {
	return newTool("get_master_release", CategoryDatabase,
		"Get a master release, the canonical entry that groups all versions of one album.",
		func(ctx context.Context, in masterReleaseInput, _ tools.InvocationContext) (any, error) {
			return client.GetMaster(ctx, in.MasterID)
		})
}

type artistInput struct {
	ArtistID int `json:"artist_id" jsonschema:"description=Discogs artist ID,minimum=1"`
}

func newArtistTool(client *discogs.Client) (*tools.Tool, error) {
	return newTool("get_artist", CategoryDatabase,
		"Get an artist's profile, name variations, and group members.",
		func(ctx context.Context, in artistInput, _ tools.InvocationContext) (any, error) {
			return client.GetArtist(ctx, in.ArtistID)
		})
}

type artistReleasesInput struct {
	ArtistID int `json:"artist_id" jsonschema:"description=Discogs artist ID,minimum=1"`
	Page     int `json:"page,omitempty" jsonschema:"description=Page number starting at 1,minimum=1"`
	PerPage  int `json:"per_page,omitempty" jsonschema:"description=Results per page,minimum=1,maximum=100"`
}

func newArtistReleasesTool(client *discogs.Client) (*tools.Tool, error) {
	return newTool("get_artist_releases", CategoryDatabase,
		"List the releases credited to an artist.",
		func(ctx context.Context, in artistReleasesInput, _ tools.InvocationContext) (any, error) {
			return client.GetArtistReleases(ctx, in.ArtistID, in.Page, in.PerPage)
		})
}

type labelInput struct {
	LabelID int `json:"label_id" jsonschema:"description=Discogs label ID,minimum=1"`
}

func newLabelTool(client *discogs.Client) (*tools.Tool, error) {
	return newTool("get_label", CategoryDatabase,
		"Get a record label's profile, contact info, and sublabels.",
		func(ctx context.Context, in labelInput, _ tools.InvocationContext) (any, error) {
			return client.GetLabel(ctx, in.LabelID)
		})
}

type labelReleasesInput struct {
	LabelID int `json:"label_id" jsonschema:"description=Discogs label ID,minimum=1"`
	Page    int `json:"page,omitempty" jsonschema:"description=Page number starting at 1,minimum=1"`
	PerPage int `json:"per_page,omitempty" jsonschema:"description=Results per page,minimum=1,maximum=100"`
}

func newLabelReleasesTool(client *discogs.Client) (*tools.Tool, error) {
	return newTool("get_label_releases", CategoryDatabase,
		"List the releases published by a label.",
		func(ctx context.Context, in labelReleasesInput, _ tools.InvocationContext) (any, error) {
			return client.GetLabelReleases(ctx, in.LabelID, in.Page, in.PerPage)
		})
}
