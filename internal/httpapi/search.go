package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"discoteca/internal/catalog"
	"discoteca/internal/logging"
)

const (
	actionFilter  = "filter"
	actionAnalyze = "analyze"

	searchExample = "/api/search?artista=Coldplay&album=parachutes&anio=2000&action=filter"
)

type searchFilters struct {
	Album string `json:"album,omitempty"`
	Year  string `json:"anio,omitempty"`
}

type filterResponse struct {
	Artist   string              `json:"artista"`
	ArtistID string              `json:"artista_id"`
	Action   string              `json:"accion"`
	Filters  searchFilters       `json:"filtros"`
	Total    int                 `json:"total_albumes"`
	Filtered int                 `json:"total_filtrados"`
	Albums   []catalog.AlbumView `json:"albumes"`
}

type analyzeResponse struct {
	Artist   string              `json:"artista"`
	ArtistID string              `json:"artista_id"`
	Action   string              `json:"accion"`
	Total    int                 `json:"total_albumes"`
	ByYear   []catalog.YearCount `json:"por_anio"`
}

// handleSearch resolves an artist by name and either filters its albums or
// counts them per release year.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	name := strings.TrimSpace(query.Get("artista"))
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "el parámetro 'artista' es obligatorio",
			Example: searchExample,
		})
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	artists := s.upstream.SearchArtist(ctx, name)
	if !artists.OK() {
		logger.Info().Str("artista", name).Stringer("outcome", artists.Status).Msg("artist lookup failed")
		writeUpstreamFailure(w, artists.Status, fmt.Sprintf("no se encontró el artista %q", name))
		return
	}
	artist := artists.Data[0]

	albums := s.upstream.ArtistAlbums(ctx, artist.ID)
	if !albums.OK() {
		logger.Info().Str("artista_id", artist.ID).Stringer("outcome", albums.Status).Msg("album lookup failed")
		writeUpstreamFailure(w, albums.Status, fmt.Sprintf("no se encontraron álbumes para %s", artist.Name))
		return
	}

	if strings.EqualFold(strings.TrimSpace(query.Get("action")), actionAnalyze) {
		writeJSON(w, http.StatusOK, analyzeResponse{
			Artist:   artist.Name,
			ArtistID: artist.ID,
			Action:   actionAnalyze,
			Total:    len(albums.Data),
			ByYear:   catalog.AggregateByYear(albums.Data),
		})
		return
	}

	filters := searchFilters{
		Album: strings.TrimSpace(query.Get("album")),
		Year:  strings.TrimSpace(query.Get("anio")),
	}
	matches := catalog.FilterAlbums(albums.Data, filters.Album, filters.Year)

	writeJSON(w, http.StatusOK, filterResponse{
		Artist:   artist.Name,
		ArtistID: artist.ID,
		Action:   actionFilter,
		Filters:  filters,
		Total:    len(albums.Data),
		Filtered: len(matches),
		Albums:   catalog.FormatAlbums(matches),
	})
}
