package audiodb

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

const (
	fieldArtistLogo    = "strArtistLogo"
	prefixArtistCDArt  = "strArtistCDart"
	prefixArtistFanart = "strArtistFanart"
	fanartPlaceholder  = "Fan Art (album cover)"
	cdArtAlbumFallback = "CD Art"
	logoTitle          = "Logo"
)

// ArtistImages collects artwork of the given kind. Logos come from the single
// logo field; CD art and fan art come from every artist field carrying the
// matching prefix. When the artist record yields nothing, CD art and fan art
// fall back to the artist's first album.
func (c *Client) ArtistImages(ctx context.Context, artistID string, kind ImageKind) Result[[]ImageAsset] {
	var resp artistRecordResponse
	if err := c.doRequest(ctx, "artist.php", url.Values{"i": []string{artistID}}, &resp); err != nil {
		return failed[[]ImageAsset]("artist_images", err)
	}

	var assets []ImageAsset
	if len(resp.Artists) > 0 {
		assets = classifyArtistImages(resp.Artists[0], kind)
	}

	if len(assets) == 0 && kind != ImageLogo {
		albums, err := c.fetchAlbums(ctx, artistID)
		if err != nil {
			return failed[[]ImageAsset]("artist_images_album_fallback", err)
		}
		if len(albums) > 0 {
			assets = albumFallbackImages(albums[0], kind)
		}
	}

	if len(assets) == 0 {
		return notFound[[]ImageAsset]()
	}
	return ok(assets)
}

func classifyArtistImages(record map[string]any, kind ImageKind) []ImageAsset {
	switch kind {
	case ImageLogo:
		if logo := stringField(record, fieldArtistLogo); logo != "" {
			return []ImageAsset{{URL: logo, Title: logoTitle}}
		}
		return nil
	case ImageCDArt:
		return scanPrefixed(record, prefixArtistCDArt, "CD Art")
	case ImageFanart:
		return scanPrefixed(record, prefixArtistFanart, "Fan Art")
	default:
		return nil
	}
}

// scanPrefixed walks fields in name order so strArtistFanart precedes
// strArtistFanart2 and so on.
func scanPrefixed(record map[string]any, prefix, label string) []ImageAsset {
	names := make([]string, 0, len(record))
	for name := range record {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var assets []ImageAsset
	for _, name := range names {
		value := stringField(record, name)
		if value == "" {
			continue
		}
		assets = append(assets, ImageAsset{
			URL:   value,
			Title: fmt.Sprintf("%s %d", label, len(assets)+1),
		})
	}
	return assets
}

func albumFallbackImages(album Album, kind ImageKind) []ImageAsset {
	switch kind {
	case ImageCDArt:
		if album.CDArtURL != "" {
			return []ImageAsset{{URL: album.CDArtURL, Title: cdArtAlbumFallback}}
		}
	case ImageFanart:
		if album.CoverURL != "" {
			return []ImageAsset{{URL: album.CoverURL, Title: fanartPlaceholder}}
		}
	}
	return nil
}

func stringField(record map[string]any, name string) string {
	value, _ := record[name].(string)
	return strings.TrimSpace(value)
}
