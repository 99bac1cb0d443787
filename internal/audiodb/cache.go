package audiodb

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheSize is the per-operation capacity of a CachedClient.
const DefaultCacheSize = 32

type imageKey struct {
	artistID string
	kind     ImageKind
}

// memo is a bounded LRU of call outcomes. Concurrent misses on the same key
// are collapsed into a single upstream call. Outcomes produced while the
// leading caller's context was already done are returned to that caller but
// not stored, and callers still live retry instead of sharing them.
type memo[K comparable, V any] struct {
	entries *lru.Cache[K, V]
	group   singleflight.Group
}

type memoOutcome[V any] struct {
	value     V
	abandoned bool
}

func newMemo[K comparable, V any](size int) (*memo[K, V], error) {
	entries, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	return &memo[K, V]{entries: entries}, nil
}

// get returns the cached outcome for key or runs load. load is called with
// the context of whichever caller leads the flight.
func (m *memo[K, V]) get(ctx context.Context, key K, load func(context.Context) V) V {
	flight := fmt.Sprintf("%#v", key)
	for {
		if v, ok := m.entries.Get(key); ok {
			return v
		}

		shared, _, _ := m.group.Do(flight, func() (any, error) {
			if cached, ok := m.entries.Get(key); ok {
				return memoOutcome[V]{value: cached}, nil
			}
			loaded := load(ctx)
			if ctx.Err() != nil {
				return memoOutcome[V]{value: loaded, abandoned: true}, nil
			}
			m.entries.Add(key, loaded)
			return memoOutcome[V]{value: loaded}, nil
		})

		out := shared.(memoOutcome[V])
		if !out.abandoned || ctx.Err() != nil {
			return out.value
		}
	}
}

// CachedClient memoizes artist search, album listing and image lookups of
// another Upstream. Every outcome is stored, failures included, and entries
// only leave the cache through LRU eviction. Trending is passed through.
type CachedClient struct {
	next Upstream

	searches *memo[string, Result[[]Artist]]
	albums   *memo[string, Result[[]Album]]
	images   *memo[imageKey, Result[[]ImageAsset]]
}

// NewCachedClient wraps next with one LRU of the given size per operation.
func NewCachedClient(next Upstream, size int) (*CachedClient, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	searches, err := newMemo[string, Result[[]Artist]](size)
	if err != nil {
		return nil, fmt.Errorf("search cache: %w", err)
	}
	albums, err := newMemo[string, Result[[]Album]](size)
	if err != nil {
		return nil, fmt.Errorf("album cache: %w", err)
	}
	images, err := newMemo[imageKey, Result[[]ImageAsset]](size)
	if err != nil {
		return nil, fmt.Errorf("image cache: %w", err)
	}

	return &CachedClient{
		next:     next,
		searches: searches,
		albums:   albums,
		images:   images,
	}, nil
}

// SearchArtist implements Upstream.
func (c *CachedClient) SearchArtist(ctx context.Context, name string) Result[[]Artist] {
	return c.searches.get(ctx, name, func(ctx context.Context) Result[[]Artist] {
		return c.next.SearchArtist(ctx, name)
	})
}

// ArtistAlbums implements Upstream.
func (c *CachedClient) ArtistAlbums(ctx context.Context, artistID string) Result[[]Album] {
	return c.albums.get(ctx, artistID, func(ctx context.Context) Result[[]Album] {
		return c.next.ArtistAlbums(ctx, artistID)
	})
}

// Trending implements Upstream without caching.
func (c *CachedClient) Trending(ctx context.Context) Result[[]TrendingEntry] {
	return c.next.Trending(ctx)
}

// ArtistImages implements Upstream.
func (c *CachedClient) ArtistImages(ctx context.Context, artistID string, kind ImageKind) Result[[]ImageAsset] {
	key := imageKey{artistID: artistID, kind: kind}
	return c.images.get(ctx, key, func(ctx context.Context) Result[[]ImageAsset] {
		return c.next.ArtistImages(ctx, artistID, kind)
	})
}

// Len reports the number of cached outcomes for each operation.
func (c *CachedClient) Len() (searches, albums, images int) {
	return c.searches.entries.Len(), c.albums.entries.Len(), c.images.entries.Len()
}
