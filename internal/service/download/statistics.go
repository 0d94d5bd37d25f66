package download

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/zspotify-grabber/internal/logger"
)

const summarySeparator = "═══════════════════════════════════════════════════════════════"

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

func (s *ServiceImpl) incrementTrackDownloaded(bytes int64) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.TracksDownloaded++
	s.stats.BytesDownloaded += bytes
}

func (s *ServiceImpl) incrementTrackSkipped() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.TracksSkipped++
}

func (s *ServiceImpl) incrementTrackFailed() {
	s.incrementTracksFailed(1)
}

func (s *ServiceImpl) incrementTracksFailed(count int) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.TracksFailed += int64(count)
}

func (s *ServiceImpl) incrementCoverDownloaded() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.CoversDownloaded++
}

// Statistics returns a copy of the session statistics.
func (s *ServiceImpl) Statistics() Statistics {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	return s.stats
}

// PrintSummary logs a summary of the session statistics.
// Nothing is printed when no track was processed.
func (s *ServiceImpl) PrintSummary(ctx context.Context) {
	stats := s.Statistics()

	total := stats.TotalTracks()
	if total == 0 {
		return
	}

	logger.Info(ctx, "")
	logger.Info(ctx, summarySeparator)

	if ctx.Err() != nil {
		logger.Info(ctx, "           DOWNLOAD SUMMARY (Interrupted)")
	} else {
		logger.Info(ctx, "                     DOWNLOAD SUMMARY")
	}

	logger.Info(ctx, summarySeparator)
	logger.Infof(ctx, "Tracks:           %d total processed", total)

	if stats.TracksDownloaded > 0 {
		logger.Infof(ctx, "  Downloaded:      %d", stats.TracksDownloaded)
	}

	if stats.TracksSkipped > 0 {
		logger.Infof(ctx, "  Already Exist:   %d", stats.TracksSkipped)
	}

	if stats.TracksFailed > 0 {
		logger.Infof(ctx, "  Failed:          %d", stats.TracksFailed)
	}

	successRate := float64(stats.TracksDownloaded+stats.TracksSkipped) / float64(total) * 100 //nolint:mnd // Percent.
	logger.Infof(ctx, "  Success Rate:    %.1f%%", successRate)

	if stats.CoversDownloaded > 0 {
		logger.Infof(ctx, "Cover Art:        %d downloaded", stats.CoversDownloaded)
	}

	if stats.BytesDownloaded > 0 {
		//nolint:gosec // BytesDownloaded is never negative.
		logger.Infof(ctx, "Data Downloaded:  %s", humanize.Bytes(uint64(stats.BytesDownloaded)))

		duration := time.Since(stats.StartTime)
		logger.Infof(ctx, "Duration:         %s", formatDuration(duration))

		if duration > 0 {
			bytesPerSecond := float64(stats.BytesDownloaded) / duration.Seconds()
			logger.Infof(ctx, "Average Speed:    %s/s", humanize.Bytes(uint64(bytesPerSecond)))
		}
	}

	logger.Info(ctx, summarySeparator)
}
