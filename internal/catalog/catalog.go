// Package catalog filters, projects and aggregates album listings fetched
// from the upstream metadata API. Everything here is pure.
package catalog

import (
	"strings"
	"unicode/utf8"

	"discoteca/internal/audiodb"
)

// DescriptionLimit is the number of characters kept from an album description.
const DescriptionLimit = 200

const ellipsis = "..."

// AlbumView is the display shape of an album.
type AlbumView struct {
	ID          string  `json:"id"`
	Title       string  `json:"titulo"`
	Artist      string  `json:"artista"`
	Year        *int    `json:"anio"`
	Genre       string  `json:"genero"`
	ImageURL    string  `json:"imagen_url"`
	Description *string `json:"descripcion"`
}

// YearCount is the number of albums released in one year.
type YearCount struct {
	Year  int `json:"anio"`
	Count int `json:"cantidad"`
}

// FilterAlbums keeps the albums whose title contains title (case-insensitive)
// and whose release year equals year. An empty title or year is not applied.
// Input order is preserved.
func FilterAlbums(albums []audiodb.Album, title, year string) []audiodb.Album {
	var (
		target   = strings.ToLower(strings.TrimSpace(title))
		wantYear = strings.TrimSpace(year)
		matches  = make([]audiodb.Album, 0, len(albums))
	)

	for _, album := range albums {
		if target != "" {
			name := strings.ToLower(album.Title)
			if name == "" || !strings.Contains(name, target) {
				continue
			}
		}
		if wantYear != "" && album.YearString() != wantYear {
			continue
		}
		matches = append(matches, album)
	}
	return matches
}

// FormatAlbum projects an album to its display shape.
func FormatAlbum(album audiodb.Album) AlbumView {
	return AlbumView{
		ID:          album.ID,
		Title:       album.Title,
		Artist:      album.Artist,
		Year:        album.Year,
		Genre:       album.Genre,
		ImageURL:    album.CoverURL,
		Description: truncateDescription(album.Description),
	}
}

// FormatAlbums projects every album, keeping order.
func FormatAlbums(albums []audiodb.Album) []AlbumView {
	views := make([]AlbumView, 0, len(albums))
	for _, album := range albums {
		views = append(views, FormatAlbum(album))
	}
	return views
}

// truncateDescription keeps the first DescriptionLimit characters and appends
// an ellipsis to any non-empty description.
func truncateDescription(desc string) *string {
	if strings.TrimSpace(desc) == "" {
		return nil
	}
	if utf8.RuneCountInString(desc) > DescriptionLimit {
		desc = string([]rune(desc)[:DescriptionLimit])
	}
	desc += ellipsis
	return &desc
}

// AggregateByYear counts albums per release year in order of first
// appearance. Albums without a year are left out.
func AggregateByYear(albums []audiodb.Album) []YearCount {
	var (
		counts = []YearCount{}
		index  = make(map[int]int)
	)

	for _, album := range albums {
		if album.Year == nil {
			continue
		}
		year := *album.Year
		if i, ok := index[year]; ok {
			counts[i].Count++
			continue
		}
		index[year] = len(counts)
		counts = append(counts, YearCount{Year: year, Count: 1})
	}
	return counts
}
