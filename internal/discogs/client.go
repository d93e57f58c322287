// Package discogs is a typed client for the Discogs REST API.
package discogs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/giuliogarofalo/discogs-mcp-server/internal/cache"
	"github.com/giuliogarofalo/discogs-mcp-server/internal/config"
)

// Client communicates with the Discogs REST API.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	cache      *cache.ResponseCache
}

// NewClient creates a client from Discogs configuration. GET responses are
// memoized when cache_max_entries is positive.
func NewClient(cfg config.DiscogsConfig) *Client {
	var respCache *cache.ResponseCache
	if cfg.CacheMaxEntries > 0 {
		respCache = cache.New(cfg.GetCacheTTL(), cfg.CacheMaxEntries)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.GetTimeout()},
		cache:      respCache,
	}
}

// HasToken reports whether a personal access token is configured.
// Marketplace and collection endpoints require one.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// SearchParams are the supported database search filters. Zero values are
// omitted from the query.
type SearchParams struct {
	Query   string
	Type    string
	Title   string
	Artist  string
	Label   string
	Genre   string
	Style   string
	Country string
	Year    string
	Format  string
	CatNo   string
	Barcode string
	Track   string
	Page    int
	PerPage int
}

func (p SearchParams) values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("q", p.Query)
	set("type", p.Type)
	set("title", p.Title)
	set("artist", p.Artist)
	set("label", p.Label)
	set("genre", p.Genre)
	set("style", p.Style)
	set("country", p.Country)
	set("year", p.Year)
	set("format", p.Format)
	set("catno", p.CatNo)
	set("barcode", p.Barcode)
	set("track", p.Track)
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(p.PerPage))
	}
	return v
}

// Search queries the Discogs database.
// GET /database/search
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	var out SearchResponse
	if err := c.get(ctx, "/database/search", params.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRelease fetches one release by ID.
// GET /releases/{id}
func (c *Client) GetRelease(ctx context.Context, id int) (*Release, error) {
	var out Release
	if err := c.get(ctx, fmt.Sprintf("/releases/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMaster fetches one master release by ID.
// GET /masters/{id}
func (c *Client) GetMaster(ctx context.Context, id int) (*Master, error) {
	var out Master
	if err := c.get(ctx, fmt.Sprintf("/masters/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetArtist fetches one artist by ID.
// GET /artists/{id}
func (c *Client) GetArtist(ctx context.Context, id int) (*Artist, error) {
	var out Artist
	if err := c.get(ctx, fmt.Sprintf("/artists/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetArtistReleases lists an artist's releases.
// GET /artists/{id}/releases
func (c *Client) GetArtistReleases(ctx context.Context, id, page, perPage int) (*ArtistReleases, error) {
	var out ArtistReleases
	if err := c.get(ctx, fmt.Sprintf("/artists/%d/releases", id), pagingValues(page, perPage), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLabel fetches one label by ID.
// GET /labels/{id}
func (c *Client) GetLabel(ctx context.Context, id int) (*Label, error) {
	var out Label
	if err := c.get(ctx, fmt.Sprintf("/labels/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLabelReleases lists a label's releases.
// GET /labels/{id}/releases
func (c *Client) GetLabelReleases(ctx context.Context, id, page, perPage int) (*LabelReleases, error) {
	var out LabelReleases
	if err := c.get(ctx, fmt.Sprintf("/labels/%d/releases", id), pagingValues(page, perPage), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPriceSuggestions fetches suggested marketplace prices per condition
// grade. Requires a token.
// GET /marketplace/price_suggestions/{release_id}
func (c *Client) GetPriceSuggestions(ctx context.Context, releaseID int) (PriceSuggestions, error) {
	out := PriceSuggestions{}
	if err := c.get(ctx, fmt.Sprintf("/marketplace/price_suggestions/%d", releaseID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetIdentity fetches the user behind the configured token. Requires a token.
// GET /oauth/identity
func (c *Client) GetIdentity(ctx context.Context) (*Identity, error) {
	var out Identity
	if err := c.get(ctx, "/oauth/identity", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCollectionValue fetches the estimated value of a user's collection.
// Requires a token belonging to that user.
// GET /users/{username}/collection/value
func (c *Client) GetCollectionValue(ctx context.Context, username string) (*CollectionValue, error) {
	var out CollectionValue
	if err := c.get(ctx, "/users/"+url.PathEscape(username)+"/collection/value", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCollectionFolders lists a user's collection folders.
// GET /users/{username}/collection/folders
func (c *Client) ListCollectionFolders(ctx context.Context, username string) (*CollectionFolders, error) {
	var out CollectionFolders
	if err := c.get(ctx, "/users/"+url.PathEscape(username)+"/collection/folders", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func pagingValues(page, perPage int) url.Values {
	v := url.Values{}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		v.Set("per_page", strconv.Itoa(perPage))
	}
	return v
}

// get performs one GET against the Discogs API, consulting the response
// cache first and storing successful bodies back into it.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	pathWithQuery := path
	if len(query) > 0 {
		pathWithQuery += "?" + query.Encode()
	}

	key := cache.MakeKey(http.MethodGet, pathWithQuery)
	if c.cache != nil {
		if body, ok := c.cache.Get(key); ok {
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("failed to parse cached response: %w", err)
			}
			return nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathWithQuery, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Discogs token="+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach discogs: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return apiError(resp.StatusCode, body)
	}

	if c.cache != nil {
		c.cache.Set(key, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// apiError converts a non-200 Discogs response into an error carrying the
// upstream message when one is present.
func apiError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("discogs returned %d: %s", status, payload.Message)
	}
	return fmt.Errorf("discogs returned %d", status)
}
