package download

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oshokin/zspotify-grabber/internal/config"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		duration time.Duration
		expected string
	}{
		{duration: 250 * time.Millisecond, expected: "250ms"},
		{duration: 42 * time.Second, expected: "42s"},
		{duration: 3*time.Minute + 5*time.Second, expected: "3m 5s"},
		{duration: 2*time.Hour + time.Minute + time.Second, expected: "2h 1m 1s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}

// TestServiceImpl_Statistics tests the counters and the summary.
func TestServiceImpl_Statistics(t *testing.T) {
	t.Parallel()

	s := NewService(&config.Config{}, nil, nil)

	s.incrementTrackDownloaded(1024)
	s.incrementTrackDownloaded(2048)
	s.incrementTrackSkipped()
	s.incrementTrackFailed()
	s.incrementCoverDownloaded()

	stats := s.Statistics()
	assert.Equal(t, int64(2), stats.TracksDownloaded)
	assert.Equal(t, int64(1), stats.TracksSkipped)
	assert.Equal(t, int64(1), stats.TracksFailed)
	assert.Equal(t, int64(1), stats.CoversDownloaded)
	assert.Equal(t, int64(3072), stats.BytesDownloaded)
	assert.Equal(t, int64(4), stats.TotalTracks())
	assert.False(t, stats.StartTime.IsZero())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NotPanics(t, func() { s.PrintSummary(context.Background()) })
	assert.NotPanics(t, func() { s.PrintSummary(ctx) })
}

func TestLookupFormat(t *testing.T) {
	t.Parallel()

	spec, err := lookupFormat(config.FormatFLAC)
	assert.NoError(t, err)
	assert.True(t, spec.lossless)
	assert.Equal(t, ".flac", spec.extension)

	spec, err = lookupFormat(config.FormatMP3Mid)
	assert.NoError(t, err)
	assert.Equal(t, int64(128), spec.bitrateKbps)

	_, err = lookupFormat("ogg")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
