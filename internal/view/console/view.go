package console

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/oshokin/zspotify-grabber/internal/logger"
	"github.com/oshokin/zspotify-grabber/internal/queue"
)

// progressMax is the bar length: progress arrives in percent.
const progressMax = 100

// View is a queue.ViewBridge that writes to a terminal.
type View struct {
	ctx          context.Context //nolint:containedctx // Notifications carry no context of their own.
	out          io.Writer
	showProgress bool

	mu        sync.Mutex
	bar       *progressbar.ProgressBar
	queue     []string
	completed int
	failed    int
}

var _ queue.ViewBridge = (*View)(nil)

// NewView creates a View logging with ctx. The progress bar is drawn on out
// only when showProgress is set.
func NewView(ctx context.Context, out io.Writer, showProgress bool) *View {
	return &View{
		ctx:          ctx,
		out:          out,
		showProgress: showProgress,
	}
}

// OnQueueChanged logs the queue, newest item first.
func (v *View) OnQueueChanged(labels []string) {
	lines := slices.Clone(labels)
	slices.Reverse(lines)

	v.mu.Lock()
	v.queue = lines
	v.mu.Unlock()

	if len(lines) == 0 {
		logger.Debug(v.ctx, "Queue is empty")

		return
	}

	logger.Debugf(v.ctx, "Queue (%d): %q", len(lines), lines)
}

// OnProgress moves the progress bar of the active download.
func (v *View) OnProgress(percent int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.bar == nil {
		return
	}

	if err := v.bar.Set(percent); err != nil {
		logger.Debugf(v.ctx, "Failed to render progress: %v", err)
	}
}

// OnItemViewUpdate logs the action state of item.
func (v *View) OnItemViewUpdate(item *queue.Item, enabled bool, label string) {
	logger.DebugKV(v.ctx, "Item action changed", "item", item.String(), "label", label, "enabled", enabled)
}

// OnDownloadStarted prints the status line and opens a progress bar.
func (v *View) OnDownloadStarted(label string) {
	logger.Info(v.ctx, label)

	if !v.showProgress {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.bar = progressbar.NewOptions(progressMax,
		progressbar.OptionSetWriter(v.out),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}

// OnDownloadComplete logs a finished download.
func (v *View) OnDownloadComplete(item *queue.Item) {
	v.mu.Lock()
	v.completed++
	v.mu.Unlock()

	logger.Infof(v.ctx, "Downloaded %s '%s'", item.Kind(), item.Label())
}

// OnDownloadFailed logs a failed download. Cancellation is not reported as an error.
func (v *View) OnDownloadFailed(item *queue.Item, err error) {
	v.mu.Lock()
	v.failed++
	v.mu.Unlock()

	if errors.Is(err, context.Canceled) {
		logger.Warnf(v.ctx, "Download of %s '%s' was canceled", item.Kind(), item.Label())

		return
	}

	logger.Errorf(v.ctx, "Failed to download %s '%s': %v", item.Kind(), item.Label(), err)
}

// OnDownloadStopped removes the progress bar.
func (v *View) OnDownloadStopped() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.bar == nil {
		return
	}

	if err := v.bar.Clear(); err != nil {
		logger.Debugf(v.ctx, "Failed to clear progress: %v", err)
	}

	v.bar = nil
}

// QueueLines returns the last reported queue, newest item first.
func (v *View) QueueLines() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return slices.Clone(v.queue)
}

// Counts returns the number of completed and failed downloads.
func (v *View) Counts() (completed, failed int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.completed, v.failed
}
