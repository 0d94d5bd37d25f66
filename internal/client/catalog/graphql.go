package catalog

import (
	"context"
	"fmt"

	"github.com/machinebox/graphql"

	"github.com/oshokin/zspotify-grabber/internal/logger"
	"github.com/oshokin/zspotify-grabber/internal/utils"
)

// artistAlbumsQuery selects one page of album IDs of an artist.
const artistAlbumsQuery = `
	query getArtistAlbums($id: ID!, $limit: Int!, $offset: Int!) {
		getArtists(ids: [$id]) {
			releases(limit: $limit, offset: $offset) {
				id
			}
		}
	}
`

// artistQuery selects the display data of an artist.
const artistQuery = `
	query getArtistInfo($id: ID!) {
		getArtists(ids: [$id]) {
			id
			title
		}
	}
`

// GetArtist retrieves the display data of an artist.
func (c *ClientImpl) GetArtist(ctx context.Context, artistID string) (*Artist, error) {
	request := graphql.NewRequest(artistQuery)
	request.Var("id", artistID)

	var response artistResponse
	if err := c.graphQLClient.Run(ctx, request, &response); err != nil {
		return nil, fmt.Errorf("failed to get artist %s: %w", artistID, err)
	}

	if len(response.GetArtists) == 0 || response.GetArtists[0] == nil {
		return nil, fmt.Errorf("%w: %s", ErrArtistNotFound, artistID)
	}

	return response.GetArtists[0], nil
}

// GetArtistAlbumIDs retrieves the IDs of every album of an artist.
// Pages are requested until the catalog returns a short page.
func (c *ClientImpl) GetArtistAlbumIDs(ctx context.Context, artistID string) ([]string, error) {
	var albumIDs []string

	for offset := 0; ; offset += artistAlbumsPageSize {
		page, fetched, err := c.getArtistAlbumsPage(ctx, artistID, offset, artistAlbumsPageSize)
		if err != nil {
			return nil, err
		}

		albumIDs = append(albumIDs, page...)

		if fetched < artistAlbumsPageSize {
			break
		}
	}

	albumIDs = utils.Unique(albumIDs)

	logger.Debugf(ctx, "Artist %s has %d albums", artistID, len(albumIDs))

	return albumIDs, nil
}

// getArtistAlbumsPage returns the album IDs of one page and the number of releases the page held.
func (c *ClientImpl) getArtistAlbumsPage(
	ctx context.Context,
	artistID string,
	offset, limit int,
) ([]string, int, error) {
	request := graphql.NewRequest(artistAlbumsQuery)
	request.Var("id", artistID)
	request.Var("offset", offset)
	request.Var("limit", limit)

	var response artistAlbumsResponse
	if err := c.graphQLClient.Run(ctx, request, &response); err != nil {
		return nil, 0, fmt.Errorf("failed to get albums of artist %s: %w", artistID, err)
	}

	if len(response.GetArtists) == 0 || response.GetArtists[0] == nil {
		return nil, 0, fmt.Errorf("%w: %s", ErrArtistNotFound, artistID)
	}

	releases := response.GetArtists[0].Releases
	albumIDs := make([]string, 0, len(releases))

	for _, release := range releases {
		if release != nil && release.ID != "" {
			albumIDs = append(albumIDs, release.ID)
		}
	}

	if len(albumIDs) < len(releases) {
		logger.Warnf(ctx, "Artist %s: %d releases without ID skipped", artistID, len(releases)-len(albumIDs))
	}

	return albumIDs, len(releases), nil
}
