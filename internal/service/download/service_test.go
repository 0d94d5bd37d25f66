package download_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/zspotify-grabber/internal/client/catalog"
	mock_catalog "github.com/oshokin/zspotify-grabber/internal/client/catalog/mocks"
	"github.com/oshokin/zspotify-grabber/internal/config"
	"github.com/oshokin/zspotify-grabber/internal/service/download"
	mock_download "github.com/oshokin/zspotify-grabber/internal/service/download/mocks"
)

const testAudio = "audio-bytes"

// jpegHeader is enough for content sniffing to report image/jpeg.
var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

// testSetup bundles the service under test and its mocks.
type testSetup struct {
	client  *mock_catalog.MockClient
	tags    *mock_download.MockTagProcessor
	cfg     *config.Config
	service *download.ServiceImpl
	root    string
}

func newTestSetup(t *testing.T, overrides ...func(*config.Config)) *testSetup {
	t.Helper()

	ctrl := gomock.NewController(t)
	root := t.TempDir()

	cfg := &config.Config{
		RootPath:       root,
		DownloadFormat: config.FormatMP3High,
	}

	for _, override := range overrides {
		override(cfg)
	}

	client := mock_catalog.NewMockClient(ctrl)
	tags := mock_download.NewMockTagProcessor(ctrl)

	return &testSetup{
		client:  client,
		tags:    tags,
		cfg:     cfg,
		service: download.NewService(cfg, client, tags),
		root:    root,
	}
}

func testTrack(id, title string) *catalog.Track {
	return &catalog.Track{
		ID:          id,
		Title:       title,
		ArtistNames: []string{"Band"},
		AlbumTitle:  "Record",
		Position:    3,
		ReleaseDate: "2021-05-07",
	}
}

// expectStream sets up a successful stream of testAudio for trackID.
func (s *testSetup) expectStream(trackID string) {
	streamURL := "https://cdn.example.com/" + trackID

	s.client.EXPECT().GetStreamMetadata(gomock.Any(), trackID, config.FormatMP3High).
		Return(&catalog.StreamMetadata{URL: streamURL, BitrateKbps: 320}, nil)
	s.client.EXPECT().FetchTrack(gomock.Any(), streamURL).
		Return(&catalog.FetchTrackResult{
			Body:       io.NopCloser(strings.NewReader(testAudio)),
			TotalBytes: int64(len(testAudio)),
		}, nil)
}

type progressRecorder struct {
	values []float64
}

func (r *progressRecorder) record(fraction float64) {
	r.values = append(r.values, fraction)
}

func (r *progressRecorder) assertMonotonic(t *testing.T) {
	t.Helper()

	for i := 1; i < len(r.values); i++ {
		assert.GreaterOrEqual(t, r.values[i], r.values[i-1], "progress went backwards at %d", i)
	}
}

func (r *progressRecorder) last() float64 {
	if len(r.values) == 0 {
		return -1
	}

	return r.values[len(r.values)-1]
}

// TestServiceImpl_DownloadTrack tests the single track flow.
func TestServiceImpl_DownloadTrack(t *testing.T) {
	t.Parallel()

	s := newTestSetup(t)
	ctx := context.Background()

	s.client.EXPECT().GetTracksMetadata(gomock.Any(), []string{"t1"}).
		Return(map[string]*catalog.Track{"t1": testTrack("t1", "Song")}, nil)
	s.expectStream("t1")

	finalPath := filepath.Join(s.root, "Band - Song.mp3")

	s.tags.EXPECT().WriteTags(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *download.WriteTagsRequest) error {
			assert.Equal(t, finalPath+".part", req.TrackPath)
			assert.False(t, req.Lossless)
			assert.Nil(t, req.Cover)
			assert.Equal(t, "Song", req.Tags.Title)
			assert.Equal(t, "Band", req.Tags.Artist)
			assert.Equal(t, "Record", req.Tags.Album)
			assert.Equal(t, "2021", req.Tags.Year)
			assert.Equal(t, int64(3), req.Tags.TrackNumber)

			content, err := os.ReadFile(req.TrackPath)
			require.NoError(t, err)
			assert.Equal(t, testAudio, string(content))

			return nil
		})

	progress := new(progressRecorder)

	require.NoError(t, s.service.DownloadTrack(ctx, "t1", progress.record))

	content, err := os.ReadFile(finalPath)
	require.NoError(t, err)
	assert.Equal(t, testAudio, string(content))
	assert.NoFileExists(t, finalPath+".part")

	progress.assertMonotonic(t)
	assert.InDelta(t, 1.0, progress.last(), 1e-9)

	stats := s.service.Statistics()
	assert.Equal(t, int64(1), stats.TracksDownloaded)
	assert.Equal(t, int64(len(testAudio)), stats.BytesDownloaded)
}

// TestServiceImpl_DownloadTrack_Existing tests that an existing file is kept.
func TestServiceImpl_DownloadTrack_Existing(t *testing.T) {
	t.Parallel()

	s := newTestSetup(t)

	existing := filepath.Join(s.root, "Band - Song.mp3")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o600))

	s.client.EXPECT().GetTracksMetadata(gomock.Any(), []string{"t1"}).
		Return(map[string]*catalog.Track{"t1": testTrack("t1", "Song")}, nil)

	progress := new(progressRecorder)

	require.NoError(t, s.service.DownloadTrack(context.Background(), "t1", progress.record))

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))
	assert.Equal(t, []float64{1}, progress.values)
	assert.Equal(t, int64(1), s.service.Statistics().TracksSkipped)
}

// TestServiceImpl_DownloadTrack_Replace tests that replace_tracks overwrites an existing file.
func TestServiceImpl_DownloadTrack_Replace(t *testing.T) {
	t.Parallel()

	s := newTestSetup(t, func(cfg *config.Config) { cfg.ReplaceTracks = true })

	existing := filepath.Join(s.root, "Band - Song.mp3")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o600))

	s.client.EXPECT().GetTracksMetadata(gomock.Any(), []string{"t1"}).
		Return(map[string]*catalog.Track{"t1": testTrack("t1", "Song")}, nil)
	s.expectStream("t1")
	s.tags.EXPECT().WriteTags(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, s.service.DownloadTrack(context.Background(), "t1", nil))

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, testAudio, string(content))
}

// TestServiceImpl_DownloadTrack_Failures tests that failed tracks leave no files behind.
func TestServiceImpl_DownloadTrack_Failures(t *testing.T) {
	t.Parallel()

	tagErr := errors.New("bad frame")

	tests := []struct {
		name        string
		setup       func(*testSetup)
		expectedErr error
	}{
		{
			name: "unknown track",
			setup: func(s *testSetup) {
				s.client.EXPECT().GetTracksMetadata(gomock.Any(), []string{"t1"}).
					Return(map[string]*catalog.Track{}, nil)
			},
			expectedErr: download.ErrTrackNotFound,
		},
		{
			name: "metadata error",
			setup: func(s *testSetup) {
				s.client.EXPECT().GetTracksMetadata(gomock.Any(), []string{"t1"}).
					Return(nil, catalog.ErrNotFound)
			},
			expectedErr: catalog.ErrNotFound,
		},
		{
			name: "empty stream url",
			setup: func(s *testSetup) {
				s.client.EXPECT().GetTracksMetadata(gomock.Any(), []string{"t1"}).
					Return(map[string]*catalog.Track{"t1": testTrack("t1", "Song")}, nil)
				s.client.EXPECT().GetStreamMetadata(gomock.Any(), "t1", config.FormatMP3High).
					Return(&catalog.StreamMetadata{}, nil)
			},
			expectedErr: download.ErrEmptyStreamURL,
		},
		{
			name: "truncated stream",
			setup: func(s *testSetup) {
				s.client.EXPECT().GetTracksMetadata(gomock.Any(), []string{"t1"}).
					Return(map[string]*catalog.Track{"t1": testTrack("t1", "Song")}, nil)
				s.client.EXPECT().GetStreamMetadata(gomock.Any(), "t1", config.FormatMP3High).
					Return(&catalog.StreamMetadata{URL: "u"}, nil)
				s.client.EXPECT().FetchTrack(gomock.Any(), "u").
					Return(&catalog.FetchTrackResult{
						Body:       io.NopCloser(strings.NewReader(testAudio)),
						TotalBytes: 100,
					}, nil)
			},
			expectedErr: download.ErrIncompleteDownload,
		},
		{
			name: "tag error",
			setup: func(s *testSetup) {
				s.client.EXPECT().GetTracksMetadata(gomock.Any(), []string{"t1"}).
					Return(map[string]*catalog.Track{"t1": testTrack("t1", "Song")}, nil)
				s.expectStream("t1")
				s.tags.EXPECT().WriteTags(gomock.Any(), gomock.Any()).Return(tagErr)
			},
			expectedErr: tagErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSetup(t)
			tt.setup(s)

			err := s.service.DownloadTrack(context.Background(), "t1", nil)
			require.ErrorIs(t, err, tt.expectedErr)

			entries, readErr := os.ReadDir(s.root)
			require.NoError(t, readErr)
			assert.Empty(t, entries, "no file may remain after a failure")

			assert.Equal(t, int64(1), s.service.Statistics().TracksFailed)
		})
	}
}

// TestServiceImpl_DownloadAlbum tests album layout, shared cover and progress.
func TestServiceImpl_DownloadAlbum(t *testing.T) {
	t.Parallel()

	s := newTestSetup(t)

	s.client.EXPECT().GetAlbum(gomock.Any(), "a1").Return(&catalog.Album{
		ID:          "a1",
		Title:       "Record",
		ArtistNames: []string{"Band"},
		TrackIDs:    []string{"t1", "t2"},
		Image:       &catalog.Image{SourceURL: "https://img.example.com/a1"},
	}, nil)
	s.client.EXPECT().GetTracksMetadata(gomock.Any(), []string{"t1", "t2"}).
		Return(map[string]*catalog.Track{"t1": testTrack("t1", "One"), "t2": testTrack("t2", "Two")}, nil)
	s.client.EXPECT().DownloadFromURL(gomock.Any(), "https://img.example.com/a1").
		Return(io.NopCloser(strings.NewReader(string(jpegHeader))), nil)
	s.expectStream("t1")
	s.expectStream("t2")

	s.tags.EXPECT().WriteTags(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, req *download.WriteTagsRequest) error {
			require.NotNil(t, req.Cover)
			assert.Equal(t, "image/jpeg", req.Cover.MIMEType)
			assert.Equal(t, "a1", req.Tags.CollectionID)
			assert.Equal(t, int64(2), req.Tags.TrackCount)

			return nil
		})

	progress := new(progressRecorder)

	require.NoError(t, s.service.DownloadAlbum(context.Background(), "a1", progress.record))

	folder := filepath.Join(s.root, "Record - Band")
	assert.FileExists(t, filepath.Join(folder, "01 - One.mp3"))
	assert.FileExists(t, filepath.Join(folder, "02 - Two.mp3"))
	assert.FileExists(t, filepath.Join(folder, "cover.jpg"))

	progress.assertMonotonic(t)
	assert.Contains(t, progress.values, 0.5)
	assert.InDelta(t, 1.0, progress.last(), 1e-9)

	stats := s.service.Statistics()
	assert.Equal(t, int64(2), stats.TracksDownloaded)
	assert.Equal(t, int64(1), stats.CoversDownloaded)
}

// TestServiceImpl_DownloadPlaylist_PartialFailure tests that one bad track does not stop the rest.
func TestServiceImpl_DownloadPlaylist_PartialFailure(t *testing.T) {
	t.Parallel()

	s := newTestSetup(t)

	s.client.EXPECT().GetPlaylist(gomock.Any(), "p1").Return(&catalog.Playlist{
		ID:       "p1",
		Name:     "Road/Trip",
		TrackIDs: []string{"t1", "gone", "t2"},
	}, nil)
	s.client.EXPECT().GetTracksMetadata(gomock.Any(), []string{"t1", "gone", "t2"}).
		Return(map[string]*catalog.Track{"t1": testTrack("t1", "One"), "t2": testTrack("t2", "Two")}, nil)
	s.expectStream("t1")
	s.expectStream("t2")

	s.tags.EXPECT().WriteTags(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, req *download.WriteTagsRequest) error {
			assert.Nil(t, req.Cover)
			assert.Equal(t, "Road/Trip", req.Tags.Album)

			return nil
		})

	progress := new(progressRecorder)

	err := s.service.DownloadPlaylist(context.Background(), "p1", progress.record)
	require.ErrorIs(t, err, download.ErrTrackNotFound)

	folder := filepath.Join(s.root, "Road_Trip")
	assert.FileExists(t, filepath.Join(folder, "01 - One.mp3"))
	assert.FileExists(t, filepath.Join(folder, "03 - Two.mp3"))

	progress.assertMonotonic(t)

	stats := s.service.Statistics()
	assert.Equal(t, int64(2), stats.TracksDownloaded)
	assert.Equal(t, int64(1), stats.TracksFailed)
}

// TestServiceImpl_DownloadAlbum_MetadataError tests that every track of the album counts as failed.
func TestServiceImpl_DownloadAlbum_MetadataError(t *testing.T) {
	t.Parallel()

	s := newTestSetup(t)

	s.client.EXPECT().GetAlbum(gomock.Any(), "a1").Return(&catalog.Album{
		ID:          "a1",
		Title:       "Record",
		ArtistNames: []string{"Band"},
		TrackIDs:    []string{"t1", "t2"},
	}, nil)
	s.client.EXPECT().GetTracksMetadata(gomock.Any(), []string{"t1", "t2"}).
		Return(nil, catalog.ErrNotFound)

	err := s.service.DownloadAlbum(context.Background(), "a1", nil)
	require.ErrorIs(t, err, catalog.ErrNotFound)

	stats := s.service.Statistics()
	assert.Equal(t, int64(2), stats.TracksFailed)
	assert.Zero(t, stats.TracksDownloaded)
	assert.Equal(t, int64(2), stats.TotalTracks())
}

// TestServiceImpl_DownloadArtistAlbums tests that every album is attempted.
func TestServiceImpl_DownloadArtistAlbums(t *testing.T) {
	t.Parallel()

	s := newTestSetup(t)
	albumErr := errors.New("album gone")

	s.client.EXPECT().GetArtistAlbumIDs(gomock.Any(), "r1").Return([]string{"a1", "a2"}, nil)
	s.client.EXPECT().GetAlbum(gomock.Any(), "a1").Return(nil, albumErr)
	s.client.EXPECT().GetAlbum(gomock.Any(), "a2").
		Return(&catalog.Album{ID: "a2", Title: "Empty", ArtistNames: []string{"Band"}}, nil)

	err := s.service.DownloadArtistAlbums(context.Background(), "r1")
	require.ErrorIs(t, err, albumErr)
}

// TestServiceImpl_DownloadArtistAlbums_Canceled tests that a canceled context stops the loop.
func TestServiceImpl_DownloadArtistAlbums_Canceled(t *testing.T) {
	t.Parallel()

	s := newTestSetup(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.client.EXPECT().GetArtistAlbumIDs(gomock.Any(), "r1").Return([]string{"a1"}, nil)

	err := s.service.DownloadArtistAlbums(ctx, "r1")
	require.ErrorIs(t, err, context.Canceled)
}
