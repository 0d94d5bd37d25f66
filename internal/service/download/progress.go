package download

import (
	"github.com/oshokin/zspotify-grabber/internal/queue"
)

// progressWriter reports the share of total bytes written so far.
type progressWriter struct {
	total      int64
	written    int64
	onProgress queue.ProgressFunc
}

func newProgressWriter(total int64, onProgress queue.ProgressFunc) *progressWriter {
	return &progressWriter{total: total, onProgress: onProgress}
}

// Write counts p and reports progress when the total size is known.
func (w *progressWriter) Write(p []byte) (int, error) {
	w.written += int64(len(p))

	if w.total > 0 {
		w.onProgress(min(float64(w.written)/float64(w.total), 1))
	}

	return len(p), nil
}

// scaleProgress maps the progress of item index out of count onto the whole collection.
func scaleProgress(onProgress queue.ProgressFunc, index, count int) queue.ProgressFunc {
	return func(fraction float64) {
		fraction = min(max(fraction, 0), 1)
		onProgress((float64(index) + fraction) / float64(count))
	}
}

// noProgress is used where the caller does not track progress.
func noProgress(float64) {}
