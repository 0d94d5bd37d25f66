package queue

//go:generate $MOCKGEN -source=dispatcher.go -destination=mocks/dispatcher_mock.go

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/oshokin/zspotify-grabber/internal/logger"
)

// ProgressFunc receives the completed fraction of a download, from 0 to 1.
// It may be called from any goroutine.
type ProgressFunc func(fraction float64)

// Downloader performs the downloads of each item kind.
type Downloader interface {
	// DownloadTrack downloads a single track.
	DownloadTrack(ctx context.Context, id string, onProgress ProgressFunc) error
	// DownloadAlbum downloads every track of an album.
	DownloadAlbum(ctx context.Context, id string, onProgress ProgressFunc) error
	// DownloadArtistAlbums downloads every album of an artist. It reports no progress.
	DownloadArtistAlbums(ctx context.Context, id string) error
	// DownloadPlaylist downloads every track of a playlist.
	DownloadPlaylist(ctx context.Context, id string, onProgress ProgressFunc) error
}

// Runner runs the download of one item to its end.
type Runner interface {
	// Run downloads item and returns its terminal error, nil on success.
	Run(ctx context.Context, item *Item, onProgress ProgressFunc) error
}

// Dispatcher routes an item to the Downloader method of its kind.
type Dispatcher struct {
	downloader Downloader
}

// NewDispatcher creates a Dispatcher over downloader.
func NewDispatcher(downloader Downloader) *Dispatcher {
	return &Dispatcher{downloader: downloader}
}

// Run downloads item and always returns: a downloader error or panic is logged
// and returned as a *DownloadFailure.
func (d *Dispatcher) Run(ctx context.Context, item *Item, onProgress ProgressFunc) (err error) {
	if item == nil {
		return ErrNilItem
	}

	if onProgress == nil {
		onProgress = func(float64) {}
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Downloader panicked on %s: %v\n%s", item, r, debug.Stack())

			err = &DownloadFailure{Item: item, Err: fmt.Errorf("%w: %v", ErrDownloadPanicked, r)}
		}
	}()

	if err = d.dispatch(ctx, item, onProgress); err != nil {
		// Cancellation is an expected way to stop, not a download error.
		if !errors.Is(err, context.Canceled) {
			logger.Errorf(ctx, "Failed to download %s (%s): %v", item, item.Label(), err)
		}

		return &DownloadFailure{Item: item, Err: err}
	}

	return nil
}

func (d *Dispatcher) dispatch(ctx context.Context, item *Item, onProgress ProgressFunc) error {
	switch item.Kind() {
	case KindTrack:
		return d.downloader.DownloadTrack(ctx, item.ID(), onProgress)
	case KindAlbum:
		return d.downloader.DownloadAlbum(ctx, item.ID(), onProgress)
	case KindArtist:
		return d.downloader.DownloadArtistAlbums(ctx, item.ID())
	case KindPlaylist:
		return d.downloader.DownloadPlaylist(ctx, item.ID(), onProgress)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKind, item.Kind())
	}
}
