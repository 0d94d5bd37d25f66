package catalog

import "io"

// GetTracksResponse is the response of the batch track lookup.
type GetTracksResponse struct {
	// Tracks is a map of track ID to track metadata.
	Tracks map[string]*Track `json:"tracks"`
}

// GetAlbumResponse is the response of the album lookup.
type GetAlbumResponse struct {
	// Result contains the album metadata.
	Result *Album `json:"result"`
}

// GetPlaylistResponse is the response of the playlist lookup.
type GetPlaylistResponse struct {
	// Result contains the playlist metadata.
	Result *Playlist `json:"result"`
}

// GetStreamMetadataResponse is the response of the stream lookup.
type GetStreamMetadataResponse struct {
	// Result contains the stream location.
	Result *StreamMetadata `json:"result"`
}

// FetchJSONResult holds a decoded JSON response and its HTTP status code.
type FetchJSONResult[T any] struct {
	// Data is the decoded body, nil on failure.
	Data *T
	// StatusCode is the HTTP status code of the response.
	StatusCode int
}

// FetchTrackResult holds an open audio stream.
type FetchTrackResult struct {
	// Body is the audio data. The caller closes it.
	Body io.ReadCloser
	// TotalBytes is the announced length, -1 when unknown.
	TotalBytes int64
}

// Track represents metadata for a single track.
type Track struct {
	// ID is the catalog track identifier.
	ID string `json:"id"`
	// Title is the track name.
	Title string `json:"title"`
	// ArtistNames lists the performing artists.
	ArtistNames []string `json:"artist_names"`
	// AlbumID is the ID of the album containing the track.
	AlbumID string `json:"album_id"`
	// AlbumTitle is the name of the album containing the track.
	AlbumTitle string `json:"album_title"`
	// AlbumArtistNames lists the album artists.
	AlbumArtistNames []string `json:"album_artist_names"`
	// Position is the track number on its disc.
	Position int64 `json:"position"`
	// DiscNumber is the disc the track is on.
	DiscNumber int64 `json:"disc_number"`
	// DurationMS is the track length in milliseconds.
	DurationMS int64 `json:"duration_ms"`
	// ReleaseDate is the album release date (YYYY, YYYY-MM or YYYY-MM-DD).
	ReleaseDate string `json:"release_date"`
	// Genres lists the genre names.
	Genres []string `json:"genres"`
	// Image is the cover art.
	Image *Image `json:"image"`
}

// Album represents metadata for an album.
type Album struct {
	// ID is the catalog album identifier.
	ID string `json:"id"`
	// Title is the album name.
	Title string `json:"title"`
	// ArtistNames lists the album artists.
	ArtistNames []string `json:"artist_names"`
	// TrackIDs lists the album tracks in play order.
	TrackIDs []string `json:"track_ids"`
	// ReleaseDate is the release date (YYYY, YYYY-MM or YYYY-MM-DD).
	ReleaseDate string `json:"release_date"`
	// Image is the cover art.
	Image *Image `json:"image"`
}

// Playlist represents metadata for a playlist.
type Playlist struct {
	// ID is the catalog playlist identifier.
	ID string `json:"id"`
	// Name is the playlist name.
	Name string `json:"name"`
	// TrackIDs lists the playlist tracks in play order.
	TrackIDs []string `json:"track_ids"`
	// Image is the playlist cover.
	Image *Image `json:"image"`
}

// Artist represents the display data of an artist.
type Artist struct {
	// ID is the catalog artist identifier.
	ID string `json:"id"`
	// Title is the artist name.
	Title string `json:"title"`
}

// StreamMetadata describes where the audio of a track can be fetched.
type StreamMetadata struct {
	// URL is the location of the audio file.
	URL string `json:"url"`
	// Format is the catalog format of the stream.
	Format string `json:"format"`
	// BitrateKbps is the nominal bitrate in kilobits per second.
	BitrateKbps int64 `json:"bitrate_kbps"`
}

// Image represents a cover image.
type Image struct {
	// SourceURL is the URL of the image.
	SourceURL string `json:"src"`
}

// artistResponse is the GraphQL payload of the artist query.
type artistResponse struct {
	GetArtists []*Artist `json:"getArtists"`
}

// artistAlbumsResponse is the GraphQL payload of the artist albums query.
type artistAlbumsResponse struct {
	GetArtists []*struct {
		Releases []*struct {
			ID string `json:"id"`
		} `json:"releases"`
	} `json:"getArtists"`
}
