package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// fetchJSON fetches JSON from the URI formed by joining the base URL and elements.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func fetchJSON[T any](ctx context.Context, c *ClientImpl, elements ...string) (*FetchJSONResult[T], error) {
	return fetchJSONWithQuery[T](ctx, c, nil, elements...)
}

// fetchJSONWithQuery fetches JSON from the URI formed by joining the base URL and elements,
// with the specified query.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func fetchJSONWithQuery[T any](
	ctx context.Context,
	c *ClientImpl,
	query url.Values,
	elements ...string,
) (*FetchJSONResult[T], error) {
	route, err := url.JoinPath(c.baseURL, elements...)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	if query != nil {
		request.URL.RawQuery = query.Encode()
	}

	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return &FetchJSONResult[T]{StatusCode: response.StatusCode}, statusError(response.StatusCode)
	}

	var result T
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return &FetchJSONResult[T]{StatusCode: response.StatusCode}, err
	}

	return &FetchJSONResult[T]{
		Data:       &result,
		StatusCode: response.StatusCode,
	}, nil
}
