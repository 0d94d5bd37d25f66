package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/zspotify-grabber/internal/queue"
)

func TestView_OnQueueChanged(t *testing.T) {
	t.Parallel()

	view := NewView(context.Background(), new(bytes.Buffer), false)

	view.OnQueueChanged([]string{"first", "second", "third"})
	assert.Equal(t, []string{"third", "second", "first"}, view.QueueLines())

	view.OnQueueChanged([]string{})
	assert.Empty(t, view.QueueLines())
}

func TestView_QueueLinesDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	view := NewView(context.Background(), new(bytes.Buffer), false)

	labels := []string{"a", "b"}
	view.OnQueueChanged(labels)

	assert.Equal(t, []string{"a", "b"}, labels, "input must not be reordered")

	lines := view.QueueLines()
	lines[0] = "changed"
	assert.Equal(t, []string{"b", "a"}, view.QueueLines())
}

func TestView_ProgressBar(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	view := NewView(context.Background(), &out, true)

	// Progress before a download has started is ignored.
	view.OnProgress(0)
	assert.Zero(t, out.Len())

	view.OnDownloadStarted("Downloading: Song - Band")
	view.OnProgress(50)

	assert.Contains(t, out.String(), "Downloading: Song - Band")
	assert.Contains(t, out.String(), "50%")

	view.OnProgress(0)
	view.OnDownloadStopped()

	before := out.Len()

	view.OnProgress(70)
	assert.Equal(t, before, out.Len(), "no bar after the download stopped")
}

func TestView_WithoutProgressBar(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	view := NewView(context.Background(), &out, false)

	view.OnDownloadStarted("Downloading: Song - Band")
	view.OnProgress(50)
	view.OnDownloadStopped()

	assert.Zero(t, out.Len())
}

func TestView_Counts(t *testing.T) {
	t.Parallel()

	view := NewView(context.Background(), new(bytes.Buffer), false)
	item := queue.NewAlbum("a1", "Record", []string{"Band"})

	view.OnItemViewUpdate(item, true, queue.ButtonLabelRemove)
	view.OnDownloadComplete(item)
	view.OnDownloadFailed(item, errors.New("boom"))
	view.OnDownloadFailed(item, fmt.Errorf("stopped: %w", context.Canceled))

	completed, failed := view.Counts()
	require.Equal(t, 1, completed)
	assert.Equal(t, 2, failed)
}
