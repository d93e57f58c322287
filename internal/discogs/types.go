package discogs

// Pagination is the shared paging block on list responses.
type Pagination struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"per_page"`
	Items   int `json:"items"`
}

// SearchResult is one row of a database search response.
type SearchResult struct {
	ID          int      `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Year        string   `json:"year,omitempty"`
	Country     string   `json:"country,omitempty"`
	Format      []string `json:"format,omitempty"`
	Label       []string `json:"label,omitempty"`
	Genre       []string `json:"genre,omitempty"`
	Style       []string `json:"style,omitempty"`
	CatNo       string   `json:"catno,omitempty"`
	Barcode     []string `json:"barcode,omitempty"`
	MasterID    int      `json:"master_id,omitempty"`
	Thumb       string   `json:"thumb,omitempty"`
	CoverImage  string   `json:"cover_image,omitempty"`
	ResourceURL string   `json:"resource_url"`
}

// SearchResponse is the database search envelope.
type SearchResponse struct {
	Pagination Pagination     `json:"pagination"`
	Results    []SearchResult `json:"results"`
}

// ReleaseArtist credits an artist on a release or track.
type ReleaseArtist struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ANV         string `json:"anv,omitempty"`
	Role        string `json:"role,omitempty"`
	ResourceURL string `json:"resource_url,omitempty"`
}

// ReleaseLabel links a release to a label with its catalog number.
type ReleaseLabel struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CatNo       string `json:"catno,omitempty"`
	ResourceURL string `json:"resource_url,omitempty"`
}

// ReleaseFormat describes the physical or digital format of a release.
type ReleaseFormat struct {
	Name         string   `json:"name"`
	Qty          string   `json:"qty"`
	Descriptions []string `json:"descriptions,omitempty"`
}

// Track is one tracklist entry.
type Track struct {
	Position string `json:"position"`
	Title    string `json:"title"`
	Duration string `json:"duration,omitempty"`
}

// CommunityRating aggregates user ratings of a release.
type CommunityRating struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// Community holds collection/wantlist counters and the rating for a release.
type Community struct {
	Have   int             `json:"have"`
	Want   int             `json:"want"`
	Rating CommunityRating `json:"rating"`
}

// Release is a specific physical or digital release.
type Release struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Artists     []ReleaseArtist `json:"artists,omitempty"`
	Year        int             `json:"year,omitempty"`
	Released    string          `json:"released,omitempty"`
	Country     string          `json:"country,omitempty"`
	Genres      []string        `json:"genres,omitempty"`
	Styles      []string        `json:"styles,omitempty"`
	Labels      []ReleaseLabel  `json:"labels,omitempty"`
	Formats     []ReleaseFormat `json:"formats,omitempty"`
	Tracklist   []Track         `json:"tracklist,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	MasterID    int             `json:"master_id,omitempty"`
	LowestPrice float64         `json:"lowest_price,omitempty"`
	NumForSale  int             `json:"num_for_sale,omitempty"`
	Community   *Community      `json:"community,omitempty"`
	ResourceURL string          `json:"resource_url"`
	URI         string          `json:"uri,omitempty"`
}

// Master is the canonical grouping of all versions of a release.
type Master struct {
	ID                int             `json:"id"`
	Title             string          `json:"title"`
	Artists           []ReleaseArtist `json:"artists,omitempty"`
	Year              int             `json:"year,omitempty"`
	Genres            []string        `json:"genres,omitempty"`
	Styles            []string        `json:"styles,omitempty"`
	Tracklist         []Track         `json:"tracklist,omitempty"`
	MainRelease       int             `json:"main_release"`
	MostRecentRelease int             `json:"most_recent_release,omitempty"`
	VersionsURL       string          `json:"versions_url,omitempty"`
	LowestPrice       float64         `json:"lowest_price,omitempty"`
	NumForSale        int             `json:"num_for_sale,omitempty"`
	ResourceURL       string          `json:"resource_url"`
	URI               string          `json:"uri,omitempty"`
}

// ArtistMember is one member of a band entry.
type ArtistMember struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Artist is a database artist entry.
type Artist struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	RealName       string         `json:"realname,omitempty"`
	Profile        string         `json:"profile,omitempty"`
	URLs           []string       `json:"urls,omitempty"`
	NameVariations []string       `json:"namevariations,omitempty"`
	Members        []ArtistMember `json:"members,omitempty"`
	ResourceURL    string         `json:"resource_url"`
	ReleasesURL    string         `json:"releases_url,omitempty"`
}

// ArtistRelease is one row of an artist's release listing.
type ArtistRelease struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	MainRelease int    `json:"main_release,omitempty"`
	Artist      string `json:"artist"`
	Role        string `json:"role,omitempty"`
	Year        int    `json:"year,omitempty"`
	Thumb       string `json:"thumb,omitempty"`
	ResourceURL string `json:"resource_url"`
}

// ArtistReleases is the paginated listing of an artist's releases.
type ArtistReleases struct {
	Pagination Pagination      `json:"pagination"`
	Releases   []ArtistRelease `json:"releases"`
}

// SubLabel is a label referenced from its parent.
type SubLabel struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ResourceURL string `json:"resource_url,omitempty"`
}

// Label is a database label entry.
type Label struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Profile     string     `json:"profile,omitempty"`
	ContactInfo string     `json:"contact_info,omitempty"`
	URLs        []string   `json:"urls,omitempty"`
	ParentLabel *SubLabel  `json:"parent_label,omitempty"`
	SubLabels   []SubLabel `json:"sublabels,omitempty"`
	ResourceURL string     `json:"resource_url"`
	ReleasesURL string     `json:"releases_url,omitempty"`
}

// LabelRelease is one row of a label's release listing.
type LabelRelease struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	CatNo       string `json:"catno,omitempty"`
	Artist      string `json:"artist"`
	Year        int    `json:"year,omitempty"`
	Format      string `json:"format,omitempty"`
	Status      string `json:"status,omitempty"`
	Thumb       string `json:"thumb,omitempty"`
	ResourceURL string `json:"resource_url"`
}

// LabelReleases is the paginated listing of a label's releases.
type LabelReleases struct {
	Pagination Pagination     `json:"pagination"`
	Releases   []LabelRelease `json:"releases"`
}

// PriceSuggestion is a suggested marketplace price in one condition grade.
type PriceSuggestion struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
}

// PriceSuggestions maps condition grade (e.g. "Very Good Plus (VG+)") to a
// suggested price. The grade set is owned by Discogs, hence the open map.
type PriceSuggestions map[string]PriceSuggestion

// Identity is the authenticated user behind the configured token.
type Identity struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	ConsumerName string `json:"consumer_name,omitempty"`
	ResourceURL  string `json:"resource_url"`
}

// CollectionValue is the estimated market value of a user's collection.
// Values are preformatted currency strings as returned by Discogs.
type CollectionValue struct {
	Maximum string `json:"maximum"`
	Median  string `json:"median"`
	Minimum string `json:"minimum"`
}

// CollectionFolder is one folder in a user's collection.
type CollectionFolder struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Count       int    `json:"count"`
	ResourceURL string `json:"resource_url"`
}

// CollectionFolders is the folder listing envelope.
type CollectionFolders struct {
	Folders []CollectionFolder `json:"folders"`
}
