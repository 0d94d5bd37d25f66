package catalog

import "errors"

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrNotFound indicates that the catalog has no entity with the requested ID.
	ErrNotFound = errors.New("not found in catalog")
	// ErrArtistNotFound indicates that the requested artist was not found.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrStreamUnavailable indicates that no stream URL was returned for the track.
	ErrStreamUnavailable = errors.New("stream is unavailable")
	// ErrEmptyResponse indicates that the catalog answered without a result object.
	ErrEmptyResponse = errors.New("empty catalog response")
)
