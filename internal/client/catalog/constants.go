package catalog

const (
	// catalogAPIGraphQLURI is the URI path for the GraphQL endpoint.
	catalogAPIGraphQLURI = "api/graphql"
	// catalogAPITracksURI is the URI path for track metadata.
	catalogAPITracksURI = "api/tracks"
	// catalogAPIAlbumsURI is the URI path for album metadata.
	catalogAPIAlbumsURI = "api/albums"
	// catalogAPIPlaylistsURI is the URI path for playlist metadata.
	catalogAPIPlaylistsURI = "api/playlists"
	// catalogAPIStreamSegment is the last path segment of a track stream lookup.
	catalogAPIStreamSegment = "stream"
)

const (
	// tracksCacheSize defines the maximum number of track entries to cache.
	tracksCacheSize = 10000
	// albumsCacheSize defines the maximum number of album entries to cache.
	albumsCacheSize = 2000
	// playlistsCacheSize defines the maximum number of playlist entries to cache.
	playlistsCacheSize = 500
)

// artistAlbumsPageSize is the number of album IDs requested per GraphQL page.
const artistAlbumsPageSize = 50
