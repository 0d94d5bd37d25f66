package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestComposeLabel tests label composition over the defined fields.
func TestComposeLabel(t *testing.T) {
	t.Parallel()

	ptr := func(s string) *string { return &s }

	tests := []struct {
		name     string
		fields   LabelFields
		expected string
	}{
		{
			name:     "title and artists",
			fields:   LabelFields{Title: ptr("Foo"), Artists: ptr("Bar")},
			expected: "Foo - Bar",
		},
		{
			name:     "name only",
			fields:   LabelFields{Name: ptr("Mix")},
			expected: "Mix - ",
		},
		{
			name:     "every field",
			fields:   LabelFields{Title: ptr("A"), Name: ptr("B"), Artists: ptr("C")},
			expected: "A - B - C",
		},
		{
			name:     "blank fields are still present",
			fields:   LabelFields{Title: ptr(""), Artists: ptr("")},
			expected: " - ",
		},
		{
			name:     "no fields",
			fields:   LabelFields{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ComposeLabel(tt.fields))
		})
	}
}

// TestDownloadingStatus tests the status line.
func TestDownloadingStatus(t *testing.T) {
	t.Parallel()

	item := NewTrack("t1", "Foo", []string{"Bar"})

	assert.Equal(t, "Downloading: Foo - Bar", DownloadingStatus(item))
}

// TestButtonStateFor tests the download action state for every queue position.
func TestButtonStateFor(t *testing.T) {
	t.Parallel()

	var (
		track    = NewTrack("t1", "Foo", []string{"Bar"})
		album    = NewAlbum("a1", "Record", []string{"Band"})
		artist   = NewArtist("r1", "Band")
		playlist = NewPlaylist("p1", "Mix")
		other    = NewTrack("t2", "Other", nil)
	)

	tests := []struct {
		name     string
		item     *Item
		queue    []*Item
		expected ButtonState
	}{
		{
			name:     "track with empty queue",
			item:     track,
			expected: ButtonState{Enabled: true, Label: "Download"},
		},
		{
			name:     "album with empty queue",
			item:     album,
			expected: ButtonState{Enabled: true, Label: "Download Album"},
		},
		{
			name:     "artist with empty queue",
			item:     artist,
			expected: ButtonState{Enabled: true, Label: "Download All Albums"},
		},
		{
			name:     "playlist with empty queue",
			item:     playlist,
			expected: ButtonState{Enabled: true, Label: "Download Playlist"},
		},
		{
			name:     "front of the queue",
			item:     track,
			queue:    []*Item{track, album},
			expected: ButtonState{Enabled: false, Label: "Downloading"},
		},
		{
			name:     "queued behind the front",
			item:     album,
			queue:    []*Item{track, album},
			expected: ButtonState{Enabled: true, Label: "Remove From Queue"},
		},
		{
			name:     "track not queued",
			item:     track,
			queue:    []*Item{other},
			expected: ButtonState{Enabled: true, Label: "Queue track"},
		},
		{
			name:     "album not queued",
			item:     album,
			queue:    []*Item{other},
			expected: ButtonState{Enabled: true, Label: "Queue Album"},
		},
		{
			name:     "artist not queued",
			item:     artist,
			queue:    []*Item{other},
			expected: ButtonState{Enabled: true, Label: "Queue Artist Albums"},
		},
		{
			name:     "playlist not queued",
			item:     playlist,
			queue:    []*Item{other},
			expected: ButtonState{Enabled: true, Label: "Queue Playlist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ButtonStateFor(tt.item, tt.queue))
		})
	}
}

// TestButtonStateFor_Downloaded tests that a downloaded item is disabled whatever the queue holds.
func TestButtonStateFor_Downloaded(t *testing.T) {
	t.Parallel()

	item := NewAlbum("a1", "Record", []string{"Band"})
	other := NewTrack("t2", "Other", nil)
	item.markDownloaded()

	expected := ButtonState{Enabled: false, Label: ButtonLabelDownloaded}

	for _, queue := range [][]*Item{nil, {item}, {other, item}, {other}} {
		assert.Equal(t, expected, ButtonStateFor(item, queue))
	}
}

// TestLabels tests queue label listing.
func TestLabels(t *testing.T) {
	t.Parallel()

	queue := []*Item{NewTrack("t1", "Foo", []string{"Bar"}), NewPlaylist("p1", "Mix")}

	assert.Equal(t, []string{"Foo - Bar", "Mix - "}, Labels(queue))
	assert.Empty(t, Labels(nil))
}
