package http

import (
	"errors"
	"net/http"

	"github.com/oshokin/zspotify-grabber/internal/utils"
)

// HeaderInjector is an http.RoundTripper that sets a header on requests that do not carry it yet.
type HeaderInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// header is the canonical header name to set.
	header string
	// provider supplies the header value.
	provider utils.HeaderProvider
}

// ErrNilRequest indicates that the HTTP request is nil.
var ErrNilRequest = errors.New("request is nil")

// NewHeaderInjector creates a HeaderInjector for header on top of next.
func NewHeaderInjector(next http.RoundTripper, header string, provider utils.HeaderProvider) http.RoundTripper {
	return &HeaderInjector{
		next:     next,
		header:   http.CanonicalHeaderKey(header),
		provider: provider,
	}
}

// NewUserAgentInjector creates a HeaderInjector for the User-Agent header.
func NewUserAgentInjector(next http.RoundTripper, provider utils.HeaderProvider) http.RoundTripper {
	return NewHeaderInjector(next, HeaderUserAgent, provider)
}

// NewAuthorizationInjector creates a HeaderInjector for the Authorization header.
func NewAuthorizationInjector(next http.RoundTripper, provider utils.HeaderProvider) http.RoundTripper {
	return NewHeaderInjector(next, HeaderAuthorization, provider)
}

// RoundTrip sets the header when it is missing and forwards the request.
// The caller's request is cloned before modification, as http.RoundTripper requires.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if req.Header.Get(t.header) != "" {
		return t.next.RoundTrip(req)
	}

	value := t.provider.HeaderValue()
	if value == "" {
		return t.next.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set(t.header, value)

	return t.next.RoundTrip(clone)
}
