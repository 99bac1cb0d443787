package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"discoteca/internal/audiodb"
)

type legacyAlbum struct {
	ID       string `json:"id_album"`
	Name     string `json:"nombre"`
	Year     *int   `json:"anio_lanzamiento"`
	Genre    string `json:"genero"`
	CoverURL string `json:"imagen_portada_url"`
}

type legacyAlbumsResponse struct {
	ArtistID string        `json:"artista_id"`
	Total    int           `json:"total_albumes"`
	Data     []legacyAlbum `json:"data"`
}

// handleLegacyAlbums serves /albums/{artist_id}, the first version of the
// API. Failures follow the same 404/502 convention as /api/search.
func (s *Server) handleLegacyAlbums(w http.ResponseWriter, r *http.Request) {
	artistID := mux.Vars(r)["artist_id"]

	res := s.upstream.ArtistAlbums(r.Context(), artistID)
	if !res.OK() {
		writeUpstreamFailure(w, res.Status,
			fmt.Sprintf("Recurso no encontrado: no se encontraron álbumes para el ID: %s", artistID))
		return
	}

	writeJSON(w, http.StatusOK, legacyAlbumsResponse{
		ArtistID: artistID,
		Total:    len(res.Data),
		Data:     legacyAlbums(res.Data),
	})
}

func legacyAlbums(albums []audiodb.Album) []legacyAlbum {
	out := make([]legacyAlbum, 0, len(albums))
	for _, a := range albums {
		out = append(out, legacyAlbum{
			ID:       a.ID,
			Name:     a.Title,
			Year:     a.Year,
			Genre:    a.Genre,
			CoverURL: a.CoverURL,
		})
	}
	return out
}
