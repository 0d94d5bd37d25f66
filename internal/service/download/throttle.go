package download

import (
	"context"
	"errors"
	"io"

	"golang.org/x/time/rate"
)

const (
	// copyBufferSize is the largest chunk moved per read.
	copyBufferSize = 32 * 1024

	// bytesPerSecondPerKbps converts a bitrate in kbit/s into bytes per second.
	bytesPerSecondPerKbps = 1000 / 8
)

// newLimiter returns the limiter for one track, nil when downloads are not throttled.
// Real-time mode paces the stream at its bitrate; the configured speed limit still applies
// when it is lower.
func (s *ServiceImpl) newLimiter(bitrateKbps int64) *rate.Limiter {
	limit := s.cfg.ParsedDownloadSpeedLimit

	if s.cfg.DownloadRealTime && bitrateKbps > 0 {
		realTime := bitrateKbps * bytesPerSecondPerKbps
		if limit == 0 || realTime < limit {
			limit = realTime
		}
	}

	if limit <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(limit), int(limit))
}

// copyWithLimit copies src to dst, waiting on limiter before every write.
// It stops as soon as ctx is canceled.
func copyWithLimit(ctx context.Context, dst io.Writer, src io.Reader, limiter *rate.Limiter) (int64, error) {
	buf := make([]byte, copyBufferSize)
	if limiter != nil && limiter.Burst() < len(buf) {
		buf = buf[:limiter.Burst()]
	}

	var written int64

	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			if limiter != nil {
				if err := limiter.WaitN(ctx, n); err != nil {
					return written, err
				}
			}

			w, writeErr := dst.Write(buf[:n])
			written += int64(w)

			if writeErr != nil {
				return written, writeErr
			}

			if w != n {
				return written, io.ErrShortWrite
			}
		}

		if errors.Is(readErr, io.EOF) {
			return written, nil
		}

		if readErr != nil {
			return written, readErr
		}
	}
}
