package download

import (
	"time"

	"github.com/oshokin/zspotify-grabber/internal/client/catalog"
	"github.com/oshokin/zspotify-grabber/internal/queue"
)

// TrackTags holds the metadata written into a track file.
type TrackTags struct {
	// TrackID is the catalog track identifier.
	TrackID string
	// Title is the track name.
	Title string
	// Artist lists the performing artists.
	Artist string
	// Album is the album or playlist the track was downloaded from.
	Album string
	// AlbumArtist lists the album artists.
	AlbumArtist string
	// Genre lists the genres.
	Genre string
	// ReleaseDate is the full release date as returned by the catalog.
	ReleaseDate string
	// Year is the release year.
	Year string
	// CollectionID is the album or playlist identifier, empty for a single track.
	CollectionID string
	// TrackNumber is the position within the collection.
	TrackNumber int64
	// TrackCount is the size of the collection.
	TrackCount int64
	// DiscNumber is the disc the track is on, 0 when unknown.
	DiscNumber int64
}

// CoverImage is cover art ready to be embedded or saved.
type CoverImage struct {
	// Data is the raw image.
	Data []byte
	// MIMEType is the detected image type.
	MIMEType string
}

// Statistics counts the work done during a session.
type Statistics struct {
	// TracksDownloaded is the number of tracks written to disk.
	TracksDownloaded int64
	// TracksSkipped is the number of tracks that already existed.
	TracksSkipped int64
	// TracksFailed is the number of tracks that could not be saved.
	TracksFailed int64
	// CoversDownloaded is the number of cover images fetched.
	CoversDownloaded int64
	// BytesDownloaded is the audio payload written to disk.
	BytesDownloaded int64
	// StartTime is when the service was created.
	StartTime time.Time
}

// TotalTracks returns the number of tracks processed in any way.
func (s Statistics) TotalTracks() int64 {
	return s.TracksDownloaded + s.TracksSkipped + s.TracksFailed
}

// trackRequest is one track to save.
type trackRequest struct {
	track *catalog.Track
	// folder is the destination directory.
	folder string
	// baseName is the file name without extension, before sanitizing.
	baseName string
	// position and count place the track in its collection; both are 0 for a single track.
	position int64
	count    int64
	// collectionID and collectionTitle name the album or playlist being downloaded.
	collectionID    string
	collectionTitle string
	// cover is shared by the whole collection; nil means use the track's own image.
	cover      *CoverImage
	onProgress queue.ProgressFunc
}

// collectionRequest is an album or playlist to save.
type collectionRequest struct {
	kind       queue.Kind
	id         string
	title      string
	folderName string
	trackIDs   []string
	// image is the collection cover. Albums embed it in every track and save it to the folder.
	image       *catalog.Image
	sharedCover bool
}
