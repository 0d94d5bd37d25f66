package catalog

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/machinebox/graphql"

	"github.com/oshokin/zspotify-grabber/internal/config"
	"github.com/oshokin/zspotify-grabber/internal/logger"
	http_transport "github.com/oshokin/zspotify-grabber/internal/transport/http"
	"github.com/oshokin/zspotify-grabber/internal/utils"
)

// Client defines the interface for interacting with the catalog API.
type Client interface {
	// DownloadFromURL downloads content from the specified URL.
	DownloadFromURL(ctx context.Context, url string) (io.ReadCloser, error)
	// FetchTrack opens the audio stream at trackURL.
	FetchTrack(ctx context.Context, trackURL string) (*FetchTrackResult, error)
	// GetAlbum retrieves album metadata including its track list.
	GetAlbum(ctx context.Context, albumID string) (*Album, error)
	// GetArtist retrieves the display data of an artist.
	GetArtist(ctx context.Context, artistID string) (*Artist, error)
	// GetArtistAlbumIDs retrieves the IDs of every album of an artist.
	GetArtistAlbumIDs(ctx context.Context, artistID string) ([]string, error)
	// GetPlaylist retrieves playlist metadata including its track list.
	GetPlaylist(ctx context.Context, playlistID string) (*Playlist, error)
	// GetStreamMetadata retrieves the stream location of a track in the given format.
	GetStreamMetadata(ctx context.Context, trackID, format string) (*StreamMetadata, error)
	// GetTracksMetadata retrieves metadata for the specified track IDs.
	GetTracksMetadata(ctx context.Context, trackIDs []string) (map[string]*Track, error)
}

// ClientImpl implements the Client interface.
type ClientImpl struct {
	// baseURL is the base URL for API requests.
	baseURL string
	// httpClient is the HTTP client for metadata requests.
	httpClient *http.Client
	// streamClient is the HTTP client for audio streams; it has no overall timeout.
	streamClient *http.Client
	// graphQLClient is the GraphQL client for making queries.
	graphQLClient *graphql.Client
	// tracksCache caches track metadata by track ID.
	tracksCache *lru.Cache[string, *Track]
	// albumsCache caches album metadata by album ID.
	albumsCache *lru.Cache[string, *Album]
	// playlistsCache caches playlist metadata by playlist ID.
	playlistsCache *lru.Cache[string, *Playlist]
}

// NewClient creates and returns a new instance of ClientImpl.
// Every request carries the configured token as a bearer Authorization header.
func NewClient(cfg *config.Config) (Client, error) {
	return newClient(cfg, http_transport.DefaultTimeout)
}

func newClient(cfg *config.Config, timeout time.Duration) (*ClientImpl, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	httpClient := &http.Client{
		Transport: newTransportChain(http.DefaultTransport, cfg.AuthToken),
		Timeout:   timeout,
	}

	// Track bodies are paced by the download service and may take far longer than
	// any metadata call, so only the headers are bounded here and the body by ctx.
	streamTransport := defaultTransport()
	streamTransport.ResponseHeaderTimeout = http_transport.DefaultResponseHeaderTimeout

	streamClient := &http.Client{
		Transport: newTransportChain(streamTransport, cfg.AuthToken),
	}

	graphQLURL := baseURL.JoinPath(catalogAPIGraphQLURI)
	graphQLClient := graphql.NewClient(graphQLURL.String(), graphql.WithHTTPClient(httpClient))

	tracksCache, err := lru.New[string, *Track](tracksCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracks cache: %w", err)
	}

	albumsCache, err := lru.New[string, *Album](albumsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create albums cache: %w", err)
	}

	playlistsCache, err := lru.New[string, *Playlist](playlistsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create playlists cache: %w", err)
	}

	return &ClientImpl{
		baseURL:        baseURL.String(),
		httpClient:     httpClient,
		streamClient:   streamClient,
		graphQLClient:  graphQLClient,
		tracksCache:    tracksCache,
		albumsCache:    albumsCache,
		playlistsCache: playlistsCache,
	}, nil
}

func newTransportChain(base http.RoundTripper, authToken string) http.RoundTripper {
	return http_transport.NewUserAgentInjector(
		http_transport.NewAuthorizationInjector(
			http_transport.NewLogTransport(base, 0),
			utils.NewBearerTokenProvider(authToken)),
		utils.NewStaticHeaderProvider(http_transport.DefaultUserAgent))
}

func defaultTransport() *http.Transport {
	if transport, ok := http.DefaultTransport.(*http.Transport); ok {
		return transport.Clone()
	}

	return &http.Transport{Proxy: http.ProxyFromEnvironment}
}

// DownloadFromURL downloads content from the specified URL.
func (c *ClientImpl) DownloadFromURL(ctx context.Context, url string) (io.ReadCloser, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

		return nil, statusError(response.StatusCode)
	}

	return response.Body, nil
}

// FetchTrack opens the audio stream at trackURL.
func (c *ClientImpl) FetchTrack(ctx context.Context, trackURL string) (*FetchTrackResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	// Some CDNs only announce Content-Length for ranged requests.
	request.Header.Add("Range", "bytes=0-")

	response, err := c.streamClient.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusPartialContent {
		response.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

		return nil, statusError(response.StatusCode)
	}

	return &FetchTrackResult{
		Body:       response.Body,
		TotalBytes: response.ContentLength,
	}, nil
}

// GetAlbum retrieves album metadata including its track list.
// Uses an LRU cache to avoid redundant API calls for the same album.
func (c *ClientImpl) GetAlbum(ctx context.Context, albumID string) (*Album, error) {
	if cached, ok := c.albumsCache.Get(albumID); ok {
		logger.Debugf(ctx, "Album cache hit for ID: %s", albumID)

		return cached, nil
	}

	result, err := fetchJSON[GetAlbumResponse](ctx, c, catalogAPIAlbumsURI, url.PathEscape(albumID))
	if err != nil {
		return nil, fmt.Errorf("failed to get album %s: %w", albumID, err)
	}

	if result.Data.Result == nil {
		return nil, fmt.Errorf("album %s: %w", albumID, ErrEmptyResponse)
	}

	c.albumsCache.Add(albumID, result.Data.Result)

	return result.Data.Result, nil
}

// GetPlaylist retrieves playlist metadata including its track list.
// Uses an LRU cache to avoid redundant API calls for the same playlist.
func (c *ClientImpl) GetPlaylist(ctx context.Context, playlistID string) (*Playlist, error) {
	if cached, ok := c.playlistsCache.Get(playlistID); ok {
		logger.Debugf(ctx, "Playlist cache hit for ID: %s", playlistID)

		return cached, nil
	}

	result, err := fetchJSON[GetPlaylistResponse](ctx, c, catalogAPIPlaylistsURI, url.PathEscape(playlistID))
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist %s: %w", playlistID, err)
	}

	if result.Data.Result == nil {
		return nil, fmt.Errorf("playlist %s: %w", playlistID, ErrEmptyResponse)
	}

	c.playlistsCache.Add(playlistID, result.Data.Result)

	return result.Data.Result, nil
}

// GetStreamMetadata retrieves the stream location of a track in the given format.
// Stream URLs expire, so they are never cached.
func (c *ClientImpl) GetStreamMetadata(ctx context.Context, trackID, format string) (*StreamMetadata, error) {
	query := url.Values{}
	query.Set("format", format)

	result, err := fetchJSONWithQuery[GetStreamMetadataResponse](
		ctx,
		c,
		query,
		catalogAPITracksURI,
		url.PathEscape(trackID),
		catalogAPIStreamSegment,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream of track %s: %w", trackID, err)
	}

	stream := result.Data.Result
	if stream == nil || stream.URL == "" {
		return nil, fmt.Errorf("track %s in %s: %w", trackID, format, ErrStreamUnavailable)
	}

	return stream, nil
}

// GetTracksMetadata retrieves metadata for the specified track IDs.
// Uses an LRU cache to avoid redundant API calls for the same tracks.
// IDs unknown to the catalog are absent from the result.
func (c *ClientImpl) GetTracksMetadata(ctx context.Context, trackIDs []string) (map[string]*Track, error) {
	result := make(map[string]*Track, len(trackIDs))
	uncachedIDs := make([]string, 0, len(trackIDs))

	for _, id := range utils.Unique(trackIDs) {
		if cached, ok := c.tracksCache.Get(id); ok {
			result[id] = cached
		} else {
			uncachedIDs = append(uncachedIDs, id)
		}
	}

	if len(uncachedIDs) == 0 {
		return result, nil
	}

	logger.Debugf(ctx, "Fetching %d uncached tracks from API", len(uncachedIDs))

	query := url.Values{}
	query.Set("ids", strings.Join(uncachedIDs, ","))

	response, err := fetchJSONWithQuery[GetTracksResponse](ctx, c, query, catalogAPITracksURI)
	if err != nil {
		return nil, fmt.Errorf("failed to get tracks metadata: %w", err)
	}

	for id, track := range response.Data.Tracks {
		if track == nil {
			continue
		}

		c.tracksCache.Add(id, track)
		result[id] = track
	}

	return result, nil
}

// statusError converts an unexpected HTTP status into an error.
func statusError(statusCode int) error {
	if statusCode == http.StatusNotFound {
		return errors.Join(ErrNotFound, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, statusCode))
	}

	return fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, statusCode)
}
