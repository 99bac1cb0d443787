package audiodb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the TheAudioDB v1 JSON API root, without the API key segment.
const DefaultBaseURL = "https://www.theaudiodb.com/api/v1/json"

// DefaultTimeout bounds every upstream request.
const DefaultTimeout = 10 * time.Second

// ErrUnexpectedStatus is wrapped into errors for non-2xx upstream answers.
var ErrUnexpectedStatus = errors.New("unexpected upstream status")

// Client talks to TheAudioDB. It implements Upstream and is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client rooted at baseURL, which must already contain
// the API key segment (see BaseURL).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL joins the API root with the API key.
func BaseURL(root, apiKey string) string {
	return strings.TrimRight(root, "/") + "/" + url.PathEscape(apiKey)
}

// TheAudioDB response structures
type searchResponse struct {
	Artists []audioDBArtist `json:"artists"`
}

type albumsResponse struct {
	Album []audioDBAlbum `json:"album"`
}

type lovedResponse struct {
	Loved []audioDBLoved `json:"loved"`
}

type artistRecordResponse struct {
	Artists []map[string]any `json:"artists"`
}

type audioDBArtist struct {
	ID   flexString `json:"idArtist"`
	Name string     `json:"strArtist"`
}

type audioDBAlbum struct {
	ID            flexString `json:"idAlbum"`
	Album         string     `json:"strAlbum"`
	Artist        string     `json:"strArtist"`
	YearReleased  flexString `json:"intYearReleased"`
	Genre         string     `json:"strGenre"`
	AlbumThumb    string     `json:"strAlbumThumb"`
	AlbumCDArt    string     `json:"strAlbumCDart"`
	DescriptionEN string     `json:"strDescriptionEN"`
}

type audioDBLoved struct {
	Album      string     `json:"strAlbum"`
	Artist     string     `json:"strArtist"`
	AlbumThumb string     `json:"strAlbumThumb"`
	ArtistID   flexString `json:"idArtist"`
}

// flexString accepts JSON strings, numbers and null. Upstream is not
// consistent about quoting numeric fields.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// doRequest performs a GET against the API and decodes the JSON body into result.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result any) error {
	apiURL := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		apiURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s - %s", ErrUnexpectedStatus, resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// SearchArtist searches artists by name.
func (c *Client) SearchArtist(ctx context.Context, name string) Result[[]Artist] {
	var resp searchResponse
	if err := c.doRequest(ctx, "search.php", url.Values{"s": []string{name}}, &resp); err != nil {
		return failed[[]Artist]("search_artist", err)
	}

	if len(resp.Artists) == 0 {
		return notFound[[]Artist]()
	}

	artists := make([]Artist, 0, len(resp.Artists))
	for _, a := range resp.Artists {
		artists = append(artists, Artist{ID: string(a.ID), Name: a.Name})
	}
	return ok(artists)
}

// ArtistAlbums lists every album of the artist.
func (c *Client) ArtistAlbums(ctx context.Context, artistID string) Result[[]Album] {
	albums, err := c.fetchAlbums(ctx, artistID)
	if err != nil {
		return failed[[]Album]("artist_albums", err)
	}
	if len(albums) == 0 {
		return notFound[[]Album]()
	}
	return ok(albums)
}

func (c *Client) fetchAlbums(ctx context.Context, artistID string) ([]Album, error) {
	var resp albumsResponse
	if err := c.doRequest(ctx, "album.php", url.Values{"i": []string{artistID}}, &resp); err != nil {
		return nil, err
	}

	albums := make([]Album, 0, len(resp.Album))
	for _, a := range resp.Album {
		albums = append(albums, convertAlbum(a))
	}
	return albums, nil
}

// Trending lists the most loved albums.
func (c *Client) Trending(ctx context.Context) Result[[]TrendingEntry] {
	var resp lovedResponse
	if err := c.doRequest(ctx, "mostloved.php", url.Values{"format": []string{"album"}}, &resp); err != nil {
		return failed[[]TrendingEntry]("trending", err)
	}

	if len(resp.Loved) == 0 {
		return notFound[[]TrendingEntry]()
	}

	entries := make([]TrendingEntry, 0, len(resp.Loved))
	for _, l := range resp.Loved {
		entries = append(entries, TrendingEntry{
			Title:    l.Album,
			Artist:   l.Artist,
			ImageURL: l.AlbumThumb,
			ArtistID: string(l.ArtistID),
		})
	}
	return ok(entries)
}

func convertAlbum(a audioDBAlbum) Album {
	return Album{
		ID:          string(a.ID),
		Title:       a.Album,
		Artist:      a.Artist,
		Year:        parseYear(string(a.YearReleased)),
		Genre:       a.Genre,
		CoverURL:    a.AlbumThumb,
		CDArtURL:    a.AlbumCDArt,
		Description: a.DescriptionEN,
	}
}

func parseYear(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &year
}

func failed[T any](op string, err error) Result[T] {
	log.Warn().
		Err(err).
		Str("op", op).
		Msg("upstream request failed")
	return upstreamError[T](err)
}
