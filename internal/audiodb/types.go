package audiodb

import (
	"context"
	"fmt"
	"strconv"
)

// Artist is an artist match returned by the upstream search.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Album is a single album record of an artist's discography.
type Album struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Year        *int   `json:"year"`
	Genre       string `json:"genre"`
	CoverURL    string `json:"cover_url"`
	CDArtURL    string `json:"cdart_url,omitempty"`
	Description string `json:"description,omitempty"`
}

// YearString renders the release year the way upstream reports it, or "" when absent.
func (a Album) YearString() string {
	if a.Year == nil {
		return ""
	}
	return strconv.Itoa(*a.Year)
}

// TrendingEntry is a reduced projection of the upstream "most loved" albums.
type TrendingEntry struct {
	Title    string `json:"album"`
	Artist   string `json:"artist"`
	ImageURL string `json:"image_url"`
	ArtistID string `json:"artist_id"`
}

// ImageAsset is an artwork URL with a human readable label.
type ImageAsset struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// ImageKind selects which artwork family ArtistImages collects.
type ImageKind string

const (
	ImageLogo   ImageKind = "logo"
	ImageCDArt  ImageKind = "cdart"
	ImageFanart ImageKind = "fanart"
)

// Status tags the outcome of an upstream call.
type Status int

const (
	// StatusOK means upstream answered with at least one item.
	StatusOK Status = iota
	// StatusNotFound means upstream answered successfully but had nothing.
	StatusNotFound
	// StatusUpstreamError covers transport failures, non-2xx answers and bad JSON.
	StatusUpstreamError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusUpstreamError:
		return "upstream_error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the tagged outcome of an upstream call. Data is only meaningful
// when Status is StatusOK; Err is only set for StatusUpstreamError.
type Result[T any] struct {
	Status Status
	Data   T
	Err    error
}

// OK reports whether the call produced data.
func (r Result[T]) OK() bool {
	return r.Status == StatusOK
}

func ok[T any](data T) Result[T] {
	return Result[T]{Status: StatusOK, Data: data}
}

func notFound[T any]() Result[T] {
	return Result[T]{Status: StatusNotFound}
}

func upstreamError[T any](err error) Result[T] {
	return Result[T]{Status: StatusUpstreamError, Err: err}
}

// Upstream defines the operations offered by the metadata API.
type Upstream interface {
	// SearchArtist looks artists up by name.
	SearchArtist(ctx context.Context, name string) Result[[]Artist]

	// ArtistAlbums lists the albums of one artist.
	ArtistAlbums(ctx context.Context, artistID string) Result[[]Album]

	// Trending lists the most loved albums.
	Trending(ctx context.Context) Result[[]TrendingEntry]

	// ArtistImages collects artwork of the given kind for an artist.
	ArtistImages(ctx context.Context, artistID string, kind ImageKind) Result[[]ImageAsset]
}
