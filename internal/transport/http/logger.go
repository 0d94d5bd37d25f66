package http

import (
	"bytes"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/oshokin/zspotify-grabber/internal/logger"
	"github.com/oshokin/zspotify-grabber/internal/utils"
)

// DefaultMaxLogLength is the maximum size (in bytes) of a logged request or response dump.
const DefaultMaxLogLength = 64 * 1024

// redactedValue replaces sensitive header values in dumps.
const redactedValue = "[redacted]"

// LogTransport is an http.RoundTripper that logs requests and responses at debug level.
type LogTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// maxLogLength is the maximum length of a logged dump.
	maxLogLength int
}

// NewLogTransport creates a LogTransport on top of next.
// A non-positive maxLogLength selects DefaultMaxLogLength.
func NewLogTransport(next http.RoundTripper, maxLogLength int) http.RoundTripper {
	if maxLogLength <= 0 {
		maxLogLength = DefaultMaxLogLength
	}

	return &LogTransport{
		next:         next,
		maxLogLength: maxLogLength,
	}
}

// RoundTrip forwards the request and logs both sides when debug logging is on.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()
	requestDump := t.dumpRequest(req)
	startTime := time.Now()

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		logger.Debugf(ctx, "Request failed: %s %s | Error: %v", req.Method, req.URL.Redacted(), err)

		return nil, err
	}

	logger.Debugf(ctx, "%s %s [%d] %s\nRequest: %s\nResponse: %s",
		req.Method, req.URL.Path, resp.StatusCode, time.Since(startTime), requestDump, t.dumpResponse(resp))

	return resp, nil
}

func (t *LogTransport) dumpRequest(req *http.Request) string {
	dump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		return err.Error()
	}

	return t.truncate(redactHeaders(dump, HeaderAuthorization))
}

func (t *LogTransport) dumpResponse(resp *http.Response) string {
	// Audio bodies are binary and large, so only text bodies are dumped.
	dump, err := httputil.DumpResponse(resp, utils.IsTextContentType(resp.Header.Get("Content-Type")))
	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) truncate(data []byte) string {
	if len(data) > t.maxLogLength {
		return string(data[:t.maxLogLength]) + "... [truncated]"
	}

	return string(data)
}

// redactHeaders replaces the values of the named headers in a raw HTTP dump.
// Only the header block (up to the first empty line) is inspected.
func redactHeaders(dump []byte, names ...string) []byte {
	var (
		result    = make([]byte, 0, len(dump))
		remaining = dump
		inHeaders = true
	)

	for len(remaining) > 0 {
		line := remaining

		idx := bytes.IndexByte(remaining, '\n')
		if idx >= 0 {
			line = remaining[:idx+1]
		}

		remaining = remaining[len(line):]

		trimmed := bytes.TrimRight(line, "\r\n")
		if len(trimmed) == 0 {
			inHeaders = false
		}

		if inHeaders {
			line = redactLine(line, trimmed, names)
		}

		result = append(result, line...)
	}

	return result
}

func redactLine(line, trimmed []byte, names []string) []byte {
	colon := bytes.IndexByte(trimmed, ':')
	if colon <= 0 {
		return line
	}

	key := http.CanonicalHeaderKey(string(bytes.TrimSpace(trimmed[:colon])))
	for _, name := range names {
		if key != http.CanonicalHeaderKey(name) {
			continue
		}

		redacted := make([]byte, 0, colon+len(redactedValue)+4)
		redacted = append(redacted, trimmed[:colon]...)
		redacted = append(redacted, ": "...)
		redacted = append(redacted, redactedValue...)

		return append(redacted, line[len(trimmed):]...)
	}

	return line
}
