package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"discoteca/internal/audiodb"
)

// Server wires HTTP handlers to the upstream metadata API.
type Server struct {
	upstream     audiodb.Upstream
	homeArtistID string
}

// New configures a Server. upstream is normally an *audiodb.CachedClient
// shared by every request.
func New(upstream audiodb.Upstream, homeArtistID string) *Server {
	return &Server{
		upstream:     upstream,
		homeArtistID: homeArtistID,
	}
}

// Routes exposes the HTTP handlers.
func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/home-assets", s.handleHomeAssets).Methods(http.MethodGet)
	api.HandleFunc("/trending", s.handleTrending).Methods(http.MethodGet)

	// Legacy single-route API
	router.HandleFunc("/albums/{artist_id}", s.handleLegacyAlbums).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "ruta no encontrada"})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "método no permitido"})
	})

	return router
}

type errorResponse struct {
	Error   string `json:"error"`
	Example string `json:"ejemplo,omitempty"`
}

// writeUpstreamFailure answers a non-OK upstream outcome: 404 with notFoundMsg
// when upstream had nothing, 502 when the call failed.
func writeUpstreamFailure(w http.ResponseWriter, status audiodb.Status, notFoundMsg string) {
	if status == audiodb.StatusNotFound {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFoundMsg})
		return
	}
	writeJSON(w, http.StatusBadGateway, errorResponse{Error: "error al consultar la API externa"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
