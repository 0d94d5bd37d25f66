package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultResponseHeaderTimeout bounds the wait for response headers of a streamed body.
	// The body itself is bounded only by the request context.
	DefaultResponseHeaderTimeout = 60 * time.Second

	// DefaultUserAgent is the default User-Agent string used for HTTP requests.
	DefaultUserAgent = "zspotify-grabber (+https://github.com/oshokin/zspotify-grabber)"
)

const (
	// HeaderUserAgent is the User-Agent header name.
	HeaderUserAgent = "User-Agent"
	// HeaderAuthorization is the Authorization header name.
	HeaderAuthorization = "Authorization"
)
