package queue

import (
	"strings"

	"github.com/oshokin/zspotify-grabber/internal/utils"
)

// Button labels shown for an item, depending on its queue state.
const (
	ButtonLabelDownloaded   = "Downloaded"
	ButtonLabelDownloading  = "Downloading"
	ButtonLabelRemove       = "Remove From Queue"
	buttonPrefixQueue       = "Queue"
	buttonPrefixDownload    = "Download"
	labelSegmentSeparator   = " - "
	downloadingStatusPrefix = "Downloading: "
)

// ButtonState is the state of the download action for one item.
type ButtonState struct {
	// Enabled reports whether the action can be triggered.
	Enabled bool
	// Label is the action caption.
	Label string
}

// ComposeLabel builds an item label from its defined fields:
// "{title} - " if a title is defined, then "{name} - " if a name is defined,
// then "{artists}" if artists are defined.
func ComposeLabel(fields LabelFields) string {
	var sb strings.Builder

	if fields.Title != nil {
		sb.WriteString(*fields.Title)
		sb.WriteString(labelSegmentSeparator)
	}

	if fields.Name != nil {
		sb.WriteString(*fields.Name)
		sb.WriteString(labelSegmentSeparator)
	}

	if fields.Artists != nil {
		sb.WriteString(*fields.Artists)
	}

	return sb.String()
}

// DownloadingStatus returns the status line shown while item is downloaded.
func DownloadingStatus(item *Item) string {
	return downloadingStatusPrefix + item.Label()
}

// ButtonStateFor returns the download action state for item given the current queue.
// The queue front is the active item whenever the controller is busy.
func ButtonStateFor(item *Item, queue []*Item) ButtonState {
	switch {
	case item.Downloaded():
		return ButtonState{Enabled: false, Label: ButtonLabelDownloaded}
	case len(queue) == 0:
		return ButtonState{Enabled: true, Label: joinButtonLabel(buttonPrefixDownload, downloadNoun(item.Kind()))}
	case queue[0] == item:
		return ButtonState{Enabled: false, Label: ButtonLabelDownloading}
	case indexOf(queue, item) >= 0:
		return ButtonState{Enabled: true, Label: ButtonLabelRemove}
	default:
		return ButtonState{Enabled: true, Label: joinButtonLabel(buttonPrefixQueue, queueNoun(item.Kind()))}
	}
}

// queueNoun returns the noun used in "Queue ..." captions.
func queueNoun(kind Kind) string {
	switch kind {
	case KindTrack:
		return "track"
	case KindAlbum:
		return "Album"
	case KindArtist:
		return "Artist Albums"
	case KindPlaylist:
		return "Playlist"
	default:
		return ""
	}
}

// downloadNoun returns the noun used in "Download ..." captions. Tracks have none.
func downloadNoun(kind Kind) string {
	switch kind {
	case KindTrack:
		return ""
	case KindAlbum:
		return "Album"
	case KindArtist:
		return "All Albums"
	case KindPlaylist:
		return "Playlist"
	default:
		return ""
	}
}

func joinButtonLabel(prefix, noun string) string {
	if noun == "" {
		return prefix
	}

	return prefix + " " + noun
}

// indexOf returns the position of item in queue by identity, or -1.
func indexOf(queue []*Item, item *Item) int {
	for i, queued := range queue {
		if queued == item {
			return i
		}
	}

	return -1
}

// Labels returns the labels of queue in FIFO order.
func Labels(queue []*Item) []string {
	return utils.Map(queue, (*Item).Label)
}
