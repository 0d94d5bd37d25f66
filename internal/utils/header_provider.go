package utils

//go:generate $MOCKGEN -source=header_provider.go -destination=mocks/header_provider_mock.go

// bearerPrefix is the Authorization scheme used for catalog tokens.
const bearerPrefix = "Bearer "

// HeaderProvider supplies the value of an HTTP header when a request is sent.
type HeaderProvider interface {
	// HeaderValue returns the header value, or an empty string to leave the header unset.
	HeaderValue() string
}

// StaticHeaderProvider returns the same value for every request.
type StaticHeaderProvider struct {
	// value is the header value to return.
	value string
}

// NewStaticHeaderProvider creates a HeaderProvider that always returns value.
func NewStaticHeaderProvider(value string) HeaderProvider {
	return &StaticHeaderProvider{value: value}
}

// NewBearerTokenProvider creates a HeaderProvider for an Authorization header carrying token.
// An empty token yields an empty value.
func NewBearerTokenProvider(token string) HeaderProvider {
	if token == "" {
		return &StaticHeaderProvider{}
	}

	return &StaticHeaderProvider{value: bearerPrefix + token}
}

// HeaderValue returns the configured value.
func (p *StaticHeaderProvider) HeaderValue() string {
	return p.value
}
