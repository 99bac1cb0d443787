package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"discoteca/internal/audiodb"
	"discoteca/internal/config"
	"discoteca/internal/http/middleware"
	"discoteca/internal/httpapi"
)

func newHTTPHandler(cfg *config.Config) (http.Handler, error) {
	client := audiodb.NewClient(cfg.AudioDB.BaseURL(), cfg.AudioDB.Timeout)

	cached, err := audiodb.NewCachedClient(client, cfg.AudioDB.CacheSize)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("upstream", cfg.AudioDB.RootURL).
		Dur("timeout", cfg.AudioDB.Timeout).
		Int("cache_size", cfg.AudioDB.CacheSize).
		Msg("upstream client initialized")

	var handler http.Handler = httpapi.New(cached, cfg.HomeArtistID).Routes()
	handler = middleware.CORS(cfg.CORS.AllowedOrigins)(handler)
	handler = middleware.Recovery()(handler)
	handler = middleware.RequestLogging()(handler)
	return handler, nil
}
