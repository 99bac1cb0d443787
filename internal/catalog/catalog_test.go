package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discoteca/internal/audiodb"
)

func year(v int) *int { return &v }

func sampleAlbums() []audiodb.Album {
	return []audiodb.Album{
		{ID: "1", Title: "Parachutes", Artist: "Coldplay", Year: year(2000), Genre: "Alternative Rock"},
		{ID: "2", Title: "A Rush of Blood to the Head", Artist: "Coldplay", Year: year(2002)},
		{ID: "3", Title: "Live 2003", Artist: "Coldplay", Year: year(2003)},
		{ID: "4", Title: "PARACHUTES (Deluxe)", Artist: "Coldplay"},
		{ID: "5", Title: "", Artist: "Coldplay", Year: year(2000)},
		{ID: "6", Title: "X&Y", Artist: "Coldplay", Year: year(2005)},
	}
}

func ids(albums []audiodb.Album) []string {
	out := make([]string, 0, len(albums))
	for _, a := range albums {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterAlbums(t *testing.T) {
	tests := []struct {
		name  string
		title string
		year  string
		want  []string
	}{
		{name: "no filters", want: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "title case insensitive", title: "parachutes", want: []string{"1", "4"}},
		{name: "title substring", title: "  OF BLOOD ", want: []string{"2"}},
		{name: "year exact", year: "2000", want: []string{"1", "5"}},
		{name: "year is not a prefix match", year: "200", want: []string{}},
		{name: "title and year compose", title: "parachutes", year: "2000", want: []string{"1"}},
		{name: "no match", title: "Viva la Vida", want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterAlbums(sampleAlbums(), tc.title, tc.year)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestFilterAlbumsTitleExcludesMissingTitles(t *testing.T) {
	got := FilterAlbums(sampleAlbums(), "a", "")
	for _, album := range got {
		assert.NotEmpty(t, album.Title)
		assert.Contains(t, strings.ToLower(album.Title), "a")
	}
}

func TestFilterAlbumsYearExcludesMissingYears(t *testing.T) {
	for _, album := range FilterAlbums(sampleAlbums(), "", "2000") {
		require.NotNil(t, album.Year)
		assert.Equal(t, 2000, *album.Year)
	}
}

func TestFormatAlbum(t *testing.T) {
	album := audiodb.Album{
		ID:          "2115888",
		Title:       "Parachutes",
		Artist:      "Coldplay",
		Year:        year(2000),
		Genre:       "Alternative Rock",
		CoverURL:    "http://img/parachutes.jpg",
		CDArtURL:    "http://img/cd.png",
		Description: "Debut album.",
	}

	view := FormatAlbum(album)

	assert.Equal(t, "2115888", view.ID)
	assert.Equal(t, "Parachutes", view.Title)
	assert.Equal(t, "Coldplay", view.Artist)
	assert.Equal(t, year(2000), view.Year)
	assert.Equal(t, "Alternative Rock", view.Genre)
	assert.Equal(t, "http://img/parachutes.jpg", view.ImageURL)
	require.NotNil(t, view.Description)
	assert.Equal(t, "Debut album....", *view.Description)
}

func TestFormatAlbumTruncatesLongDescription(t *testing.T) {
	long := strings.Repeat("a", DescriptionLimit) + strings.Repeat("b", 50)

	view := FormatAlbum(audiodb.Album{Description: long})

	require.NotNil(t, view.Description)
	assert.Equal(t, strings.Repeat("a", DescriptionLimit)+"...", *view.Description)
}

func TestFormatAlbumTruncatesOnCharacters(t *testing.T) {
	long := strings.Repeat("ñ", DescriptionLimit+10)

	view := FormatAlbum(audiodb.Album{Description: long})

	require.NotNil(t, view.Description)
	assert.Equal(t, strings.Repeat("ñ", DescriptionLimit)+"...", *view.Description)
}

func TestFormatAlbumWithoutDescription(t *testing.T) {
	assert.Nil(t, FormatAlbum(audiodb.Album{}).Description)
	assert.Nil(t, FormatAlbum(audiodb.Album{Description: "   "}).Description)
}

func TestFormatAlbums(t *testing.T) {
	views := FormatAlbums(sampleAlbums()[:2])
	require.Len(t, views, 2)
	assert.Equal(t, "1", views[0].ID)
	assert.Equal(t, "2", views[1].ID)

	assert.NotNil(t, FormatAlbums(nil))
}

func TestAggregateByYear(t *testing.T) {
	albums := []audiodb.Album{
		{Year: year(1990)},
		{Year: year(1990)},
		{Year: year(1991)},
		{Year: nil},
	}

	assert.Equal(t, []YearCount{
		{Year: 1990, Count: 2},
		{Year: 1991, Count: 1},
	}, AggregateByYear(albums))
}

func TestAggregateByYearKeepsFirstAppearanceOrder(t *testing.T) {
	albums := []audiodb.Album{
		{Year: year(2005)},
		{Year: year(2000)},
		{Year: year(2005)},
		{Year: year(1999)},
	}

	assert.Equal(t, []YearCount{
		{Year: 2005, Count: 2},
		{Year: 2000, Count: 1},
		{Year: 1999, Count: 1},
	}, AggregateByYear(albums))
}

func TestAggregateByYearEmpty(t *testing.T) {
	got := AggregateByYear([]audiodb.Album{{Title: "No year"}})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
