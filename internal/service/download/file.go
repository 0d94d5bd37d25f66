package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/oshokin/zspotify-grabber/internal/client/catalog"
	"github.com/oshokin/zspotify-grabber/internal/constants"
	"github.com/oshokin/zspotify-grabber/internal/logger"
	"github.com/oshokin/zspotify-grabber/internal/utils"
)

const (
	// File options for overwriting an existing file.
	overwriteFileOptions = os.O_CREATE | os.O_TRUNC | os.O_WRONLY

	// coverBaseName is the name of the cover file saved into album folders.
	coverBaseName = "cover"
)

// fetchCover downloads image. Failures are logged and yield nil: a missing cover never fails a track.
func (s *ServiceImpl) fetchCover(ctx context.Context, image *catalog.Image) *CoverImage {
	if image == nil || image.SourceURL == "" {
		return nil
	}

	reader, err := s.client.DownloadFromURL(ctx, image.SourceURL)
	if err != nil {
		logger.Warnf(ctx, "Failed to download cover '%s': %v", image.SourceURL, err)

		return nil
	}

	defer reader.Close() //nolint:errcheck // Error on close is not critical here.

	data, err := io.ReadAll(reader)
	if err != nil {
		logger.Warnf(ctx, "Failed to read cover '%s': %v", image.SourceURL, err)

		return nil
	}

	if len(data) == 0 {
		return nil
	}

	s.incrementCoverDownloaded()

	return &CoverImage{Data: data, MIMEType: http.DetectContentType(data)}
}

// coverExtension returns the file extension for a cover MIME type.
func coverExtension(mimeType string) string {
	switch mimeType {
	case utils.ImagePNGMimeType:
		return ".png"
	case utils.ImageJPEGMimeType:
		return ".jpg"
	default:
		return constants.ExtensionBin
	}
}

// saveCoverFile writes cover next to the album tracks.
// An existing cover is kept unless tracks are being replaced.
func (s *ServiceImpl) saveCoverFile(ctx context.Context, folder string, cover *CoverImage) {
	if cover == nil {
		return
	}

	coverPath := filepath.Join(folder, coverBaseName+coverExtension(cover.MIMEType))

	if !s.cfg.ReplaceTracks {
		exists, err := utils.IsFileExist(coverPath)
		if err != nil {
			logger.Warnf(ctx, "Failed to check cover '%s': %v", coverPath, err)

			return
		}

		if exists {
			logger.Debugf(ctx, "Cover '%s' already exists, skipping", coverPath)

			return
		}
	}

	err := os.WriteFile(filepath.Clean(coverPath), cover.Data, constants.DefaultFilePermissions)
	if err != nil {
		logger.Warnf(ctx, "Failed to save cover '%s': %v", coverPath, err)
	}
}

// ensureFolder creates folder with its parents.
func ensureFolder(folder string) error {
	if err := os.MkdirAll(folder, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create folder '%s': %w", folder, err)
	}

	return nil
}
