package download

import "errors"

// Common errors for the download service.
var (
	// ErrTrackNotFound indicates that the catalog returned no metadata for a track.
	ErrTrackNotFound = errors.New("track not found")
	// ErrIncompleteDownload indicates that the written size doesn't match the announced size.
	ErrIncompleteDownload = errors.New("incomplete download")
	// ErrUnsupportedFormat indicates a download format without a known file layout.
	ErrUnsupportedFormat = errors.New("unsupported download format")
	// ErrEmptyTrackPath indicates that the track file path is empty.
	ErrEmptyTrackPath = errors.New("track path cannot be empty")
	// ErrEmptyStreamURL indicates that the catalog returned a stream without a location.
	ErrEmptyStreamURL = errors.New("stream URL is empty")
)
