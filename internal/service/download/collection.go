package download

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/oshokin/zspotify-grabber/internal/logger"
	"github.com/oshokin/zspotify-grabber/internal/queue"
	"github.com/oshokin/zspotify-grabber/internal/utils"
)

// DownloadAlbum downloads every track of an album into "{root}/{title} - {artists}".
func (s *ServiceImpl) DownloadAlbum(ctx context.Context, id string, onProgress queue.ProgressFunc) error {
	album, err := s.client.GetAlbum(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get album %s: %w", id, err)
	}

	return s.downloadCollection(ctx, &collectionRequest{
		kind:        queue.KindAlbum,
		id:          album.ID,
		title:       album.Title,
		folderName:  album.Title + " - " + strings.Join(album.ArtistNames, artistsSeparator),
		trackIDs:    album.TrackIDs,
		image:       album.Image,
		sharedCover: true,
	}, onProgress)
}

// DownloadPlaylist downloads every track of a playlist into "{root}/{name}".
// Each track keeps the cover of its own album.
func (s *ServiceImpl) DownloadPlaylist(ctx context.Context, id string, onProgress queue.ProgressFunc) error {
	playlist, err := s.client.GetPlaylist(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get playlist %s: %w", id, err)
	}

	return s.downloadCollection(ctx, &collectionRequest{
		kind:       queue.KindPlaylist,
		id:         playlist.ID,
		title:      playlist.Name,
		folderName: playlist.Name,
		trackIDs:   playlist.TrackIDs,
		image:      playlist.Image,
	}, onProgress)
}

// DownloadArtistAlbums downloads every album of an artist, one after another.
// A failed album does not stop the others; all failures are returned together.
func (s *ServiceImpl) DownloadArtistAlbums(ctx context.Context, id string) error {
	albumIDs, err := s.client.GetArtistAlbumIDs(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get albums of artist %s: %w", id, err)
	}

	if len(albumIDs) == 0 {
		logger.Warnf(ctx, "Artist %s has no albums", id)

		return nil
	}

	var errs []error

	for index, albumID := range albumIDs {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())

			break
		}

		logger.Infof(ctx, "Downloading album %s of artist %s (%d / %d)", albumID, id, index+1, len(albumIDs))

		if err = s.DownloadAlbum(ctx, albumID, nil); err != nil {
			logger.Errorf(ctx, "Failed to download album %s: %v", albumID, err)

			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// downloadCollection downloads the tracks of an album or playlist sequentially.
// Progress is the share of finished tracks plus the share of the current one.
func (s *ServiceImpl) downloadCollection(
	ctx context.Context,
	req *collectionRequest,
	onProgress queue.ProgressFunc,
) error {
	if onProgress == nil {
		onProgress = noProgress
	}

	count := len(req.trackIDs)
	if count == 0 {
		logger.Warnf(ctx, "The %s '%s' has no tracks", req.kind, req.title)

		return nil
	}

	folder := filepath.Join(s.cfg.RootPath, utils.SanitizeFilename(req.folderName))
	if err := ensureFolder(folder); err != nil {
		return err
	}

	tracks, err := s.client.GetTracksMetadata(ctx, req.trackIDs)
	if err != nil {
		s.incrementTracksFailed(count)

		return fmt.Errorf("failed to get tracks of %s '%s': %w", req.kind, req.title, err)
	}

	var cover *CoverImage
	if req.sharedCover {
		cover = s.fetchCover(ctx, req.image)
		s.saveCoverFile(ctx, folder, cover)
	}

	logger.Infof(ctx, "Downloading %s '%s' (%d tracks) to '%s'", req.kind, req.title, count, folder)

	var errs []error

	for index, trackID := range req.trackIDs {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())

			break
		}

		track := tracks[trackID]
		if track == nil {
			s.incrementTrackFailed()

			errs = append(errs, fmt.Errorf("%w: %s", ErrTrackNotFound, trackID))

			continue
		}

		position := int64(index + 1)

		err = s.downloadTrack(ctx, &trackRequest{
			track:           track,
			folder:          folder,
			baseName:        trackFileBaseName(position, track),
			position:        position,
			count:           int64(count),
			collectionID:    req.id,
			collectionTitle: req.title,
			cover:           cover,
			onProgress:      scaleProgress(onProgress, index, count),
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to download track %d / %d of %s '%s': %v", position, count, req.kind, req.title, err)

			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
