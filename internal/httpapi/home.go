package httpapi

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"discoteca/internal/audiodb"
	"discoteca/internal/logging"
)

const (
	homeTrendingLimit = 15
	homeArtLimit      = 5
)

type homeAssetsResponse struct {
	Trending []audiodb.TrendingEntry `json:"trending_albums"`
	Logos    []audiodb.ImageAsset    `json:"logos"`
	CDArt    []audiodb.ImageAsset    `json:"cd_art"`
	FanArt   []audiodb.ImageAsset    `json:"fan_art"`
}

type trendingResponse struct {
	Total  int                     `json:"total"`
	Albums []audiodb.TrendingEntry `json:"albumes"`
}

// handleHomeAssets gathers everything the landing page shows. Failed
// sub-fetches render as empty lists; the endpoint always answers 200.
func (s *Server) handleHomeAssets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		g    errgroup.Group
		resp homeAssetsResponse
	)

	g.Go(func() error {
		resp.Trending = limit(s.trending(ctx), homeTrendingLimit)
		return nil
	})
	g.Go(func() error {
		resp.Logos = s.images(ctx, audiodb.ImageLogo)
		return nil
	})
	g.Go(func() error {
		resp.CDArt = limit(s.images(ctx, audiodb.ImageCDArt), homeArtLimit)
		return nil
	})
	g.Go(func() error {
		resp.FanArt = limit(s.images(ctx, audiodb.ImageFanart), homeArtLimit)
		return nil
	})
	_ = g.Wait()

	writeJSON(w, http.StatusOK, resp)
}

// handleTrending returns the full trending list.
func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	entries := s.trending(r.Context())
	writeJSON(w, http.StatusOK, trendingResponse{
		Total:  len(entries),
		Albums: entries,
	})
}

// trending flattens the trending outcome into a list. An empty list means
// either "nothing trending" or "upstream failed"; only the log tells them apart.
func (s *Server) trending(ctx context.Context) []audiodb.TrendingEntry {
	res := s.upstream.Trending(ctx)
	if !res.OK() {
		logging.FromContext(ctx).Info().Stringer("outcome", res.Status).Msg("trending unavailable")
		return []audiodb.TrendingEntry{}
	}
	return res.Data
}

func (s *Server) images(ctx context.Context, kind audiodb.ImageKind) []audiodb.ImageAsset {
	res := s.upstream.ArtistImages(ctx, s.homeArtistID, kind)
	if !res.OK() {
		logging.FromContext(ctx).Debug().
			Str("artista_id", s.homeArtistID).
			Str("kind", string(kind)).
			Stringer("outcome", res.Status).
			Msg("artist images unavailable")
		return []audiodb.ImageAsset{}
	}
	return res.Data
}

func limit[T any](items []T, n int) []T {
	if items == nil {
		return []T{}
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
