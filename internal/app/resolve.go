package app

import (
	"context"

	"github.com/oshokin/zspotify-grabber/internal/client/catalog"
	"github.com/oshokin/zspotify-grabber/internal/logger"
	"github.com/oshokin/zspotify-grabber/internal/queue"
)

// ResolveItems turns references into queue items labeled with catalog metadata.
// Track metadata is fetched in one batch. When a lookup fails the item is still
// created, labeled by its ID, so that the failure surfaces as a download failure.
func ResolveItems(ctx context.Context, client catalog.Client, refs []queue.Reference) []*queue.Item {
	tracks := fetchTracks(ctx, client, refs)
	items := make([]*queue.Item, 0, len(refs))

	for _, ref := range refs {
		if ctx.Err() != nil {
			break
		}

		if item := resolveItem(ctx, client, ref, tracks); item != nil {
			items = append(items, item)
		}
	}

	return items
}

func fetchTracks(ctx context.Context, client catalog.Client, refs []queue.Reference) map[string]*catalog.Track {
	var trackIDs []string

	for _, ref := range refs {
		if ref.Kind == queue.KindTrack {
			trackIDs = append(trackIDs, ref.ID)
		}
	}

	if len(trackIDs) == 0 {
		return nil
	}

	tracks, err := client.GetTracksMetadata(ctx, trackIDs)
	if err != nil {
		logger.Warnf(ctx, "Failed to get metadata of %d tracks: %v", len(trackIDs), err)

		return nil
	}

	return tracks
}

func resolveItem(
	ctx context.Context,
	client catalog.Client,
	ref queue.Reference,
	tracks map[string]*catalog.Track,
) *queue.Item {
	switch ref.Kind {
	case queue.KindTrack:
		if track := tracks[ref.ID]; track != nil {
			return queue.NewTrack(ref.ID, track.Title, track.ArtistNames)
		}

		logger.Warnf(ctx, "No metadata for %s", ref)

		return queue.NewTrack(ref.ID, ref.ID, nil)
	case queue.KindAlbum:
		album, err := client.GetAlbum(ctx, ref.ID)
		if err != nil {
			logger.Warnf(ctx, "Failed to get metadata of %s: %v", ref, err)

			return queue.NewAlbum(ref.ID, ref.ID, nil)
		}

		return queue.NewAlbum(ref.ID, album.Title, album.ArtistNames)
	case queue.KindArtist:
		artist, err := client.GetArtist(ctx, ref.ID)
		if err != nil {
			logger.Warnf(ctx, "Failed to get metadata of %s: %v", ref, err)

			return queue.NewArtist(ref.ID, ref.ID)
		}

		return queue.NewArtist(ref.ID, artist.Title)
	case queue.KindPlaylist:
		playlist, err := client.GetPlaylist(ctx, ref.ID)
		if err != nil {
			logger.Warnf(ctx, "Failed to get metadata of %s: %v", ref, err)

			return queue.NewPlaylist(ref.ID, ref.ID)
		}

		return queue.NewPlaylist(ref.ID, playlist.Name)
	default:
		logger.Warnf(ctx, "Skipping %s: unsupported kind", ref)

		return nil
	}
}
