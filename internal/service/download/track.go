package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oshokin/zspotify-grabber/internal/client/catalog"
	"github.com/oshokin/zspotify-grabber/internal/constants"
	"github.com/oshokin/zspotify-grabber/internal/logger"
	"github.com/oshokin/zspotify-grabber/internal/queue"
	"github.com/oshokin/zspotify-grabber/internal/utils"
)

const (
	// artistsSeparator joins artist names in tags and file names.
	artistsSeparator = ", "

	// releaseYearLength is the length of the year prefix of a release date.
	releaseYearLength = 4
)

// DownloadTrack downloads a single track into the root folder as "{artists} - {title}".
func (s *ServiceImpl) DownloadTrack(ctx context.Context, id string, onProgress queue.ProgressFunc) error {
	if onProgress == nil {
		onProgress = noProgress
	}

	tracks, err := s.client.GetTracksMetadata(ctx, []string{id})
	if err != nil {
		s.incrementTrackFailed()

		return fmt.Errorf("failed to get track metadata: %w", err)
	}

	track := tracks[id]
	if track == nil {
		s.incrementTrackFailed()

		return fmt.Errorf("%w: %s", ErrTrackNotFound, id)
	}

	if err = ensureFolder(s.cfg.RootPath); err != nil {
		return err
	}

	return s.downloadTrack(ctx, &trackRequest{
		track:      track,
		folder:     s.cfg.RootPath,
		baseName:   strings.Join(track.ArtistNames, artistsSeparator) + " - " + track.Title,
		onProgress: onProgress,
	})
}

// downloadTrack saves one track: stream to a .part file, tag it, then rename it into place.
func (s *ServiceImpl) downloadTrack(ctx context.Context, req *trackRequest) error {
	spec, err := lookupFormat(s.cfg.DownloadFormat)
	if err != nil {
		return err
	}

	track := req.track
	trackPath := filepath.Join(req.folder, utils.SetFileExtension(utils.SanitizeFilename(req.baseName), spec.extension, false))

	if !s.cfg.ReplaceTracks {
		exists, existErr := utils.IsFileExist(trackPath)
		if existErr != nil {
			s.incrementTrackFailed()

			return fmt.Errorf("failed to check track file '%s': %w", trackPath, existErr)
		}

		if exists {
			logger.Infof(ctx, "Track '%s' already exists, skipping download", trackPath)
			s.incrementTrackSkipped()
			req.onProgress(1)

			return nil
		}
	}

	stream, err := s.client.GetStreamMetadata(ctx, track.ID, s.cfg.DownloadFormat)
	if err != nil {
		s.incrementTrackFailed()

		return fmt.Errorf("failed to get stream of track '%s': %w", track.Title, err)
	}

	if stream.URL == "" {
		s.incrementTrackFailed()

		return fmt.Errorf("%w: track '%s'", ErrEmptyStreamURL, track.Title)
	}

	bitrate := spec.bitrateKbps
	if stream.BitrateKbps > 0 {
		bitrate = stream.BitrateKbps
	}

	tempPath, written, err := s.downloadToPartFile(ctx, stream.URL, trackPath, bitrate, req.onProgress)
	if err != nil {
		s.incrementTrackFailed()

		return fmt.Errorf("failed to download track '%s': %w", track.Title, err)
	}

	cover := req.cover
	if cover == nil {
		cover = s.fetchCover(ctx, track.Image)
	}

	// Tags go into the .part file so a final file always carries them.
	err = s.tagProcessor.WriteTags(ctx, &WriteTagsRequest{
		TrackPath: tempPath,
		Lossless:  spec.lossless,
		Tags:      buildTrackTags(req),
		Cover:     cover,
	})
	if err != nil {
		s.removePartFile(ctx, tempPath)
		s.incrementTrackFailed()

		return fmt.Errorf("failed to write tags of track '%s': %w", track.Title, err)
	}

	if err = os.Rename(tempPath, trackPath); err != nil {
		s.removePartFile(ctx, tempPath)
		s.incrementTrackFailed()

		return fmt.Errorf("failed to finalize track file '%s': %w", trackPath, err)
	}

	s.incrementTrackDownloaded(written)

	logger.Infof(ctx, "Track '%s' saved to '%s'", track.Title, trackPath)

	return nil
}

// downloadToPartFile streams trackURL into trackPath + ".part" and returns the temporary path
// and the number of bytes written. The temporary file is removed on failure.
func (s *ServiceImpl) downloadToPartFile(
	ctx context.Context,
	trackURL string,
	trackPath string,
	bitrateKbps int64,
	onProgress queue.ProgressFunc,
) (string, int64, error) {
	fetchResult, err := s.client.FetchTrack(ctx, trackURL)
	if err != nil {
		return "", 0, fmt.Errorf("failed to fetch track: %w", err)
	}

	defer fetchResult.Body.Close() //nolint:errcheck // Error on close is not critical here.

	tempPath := trackPath + constants.ExtensionPart

	// Always overwrite .part files, they are leftovers of interrupted downloads.
	f, err := os.OpenFile(filepath.Clean(tempPath), overwriteFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temporary file: %w", err)
	}

	var succeeded bool

	defer func() {
		if succeeded {
			return
		}

		_ = f.Close()

		s.removePartFile(ctx, tempPath)
	}()

	writer := io.MultiWriter(f, newProgressWriter(fetchResult.TotalBytes, onProgress))

	written, err := copyWithLimit(ctx, writer, fetchResult.Body, s.newLimiter(bitrateKbps))
	if err != nil {
		return "", written, fmt.Errorf("failed to write file: %w", err)
	}

	if fetchResult.TotalBytes >= 0 && written != fetchResult.TotalBytes {
		return "", written, fmt.Errorf(
			"%w: wrote %d bytes, expected %d bytes",
			ErrIncompleteDownload,
			written,
			fetchResult.TotalBytes,
		)
	}

	if err = f.Close(); err != nil {
		return "", written, fmt.Errorf("failed to close temporary file: %w", err)
	}

	succeeded = true

	return tempPath, written, nil
}

func (s *ServiceImpl) removePartFile(ctx context.Context, tempPath string) {
	if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
		logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v", tempPath, err)
	}
}

// buildTrackTags collects the tags of a track in its collection context.
func buildTrackTags(req *trackRequest) *TrackTags {
	track := req.track

	tags := &TrackTags{
		TrackID:      track.ID,
		Title:        track.Title,
		Artist:       strings.Join(track.ArtistNames, artistsSeparator),
		Album:        track.AlbumTitle,
		AlbumArtist:  strings.Join(track.AlbumArtistNames, artistsSeparator),
		Genre:        strings.Join(track.Genres, artistsSeparator),
		ReleaseDate:  track.ReleaseDate,
		CollectionID: req.collectionID,
		TrackNumber:  track.Position,
		TrackCount:   req.count,
		DiscNumber:   track.DiscNumber,
	}

	if len(track.ReleaseDate) >= releaseYearLength {
		tags.Year = track.ReleaseDate[:releaseYearLength]
	}

	// Inside a playlist the track is numbered by its playlist position.
	if req.position > 0 && (tags.TrackNumber == 0 || req.collectionTitle != track.AlbumTitle) {
		tags.TrackNumber = req.position
	}

	if req.collectionTitle != "" {
		tags.Album = req.collectionTitle
	}

	return tags
}

// trackFileBaseName returns the collection file name of a track: "{NN} - {title}".
func trackFileBaseName(position int64, track *catalog.Track) string {
	return fmt.Sprintf("%02d - %s", position, track.Title)
}
