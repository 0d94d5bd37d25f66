package queue

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Kind is the closed set of downloadable item kinds.
type Kind uint8

// Supported item kinds.
const (
	KindTrack Kind = iota + 1
	KindAlbum
	KindArtist
	KindPlaylist
)

// kindNames maps kinds to their catalog names.
//
//nolint:gochecknoglobals // Immutable lookup table used as a constant.
var kindNames = map[Kind]string{
	KindTrack:    "track",
	KindAlbum:    "album",
	KindArtist:   "artist",
	KindPlaylist: "playlist",
}

// String returns the catalog name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind converts a catalog name into a Kind.
func ParseKind(value string) (Kind, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	for kind, name := range kindNames {
		if name == value {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: '%s'", ErrUnknownKind, value)
}

// LabelFields holds the optional display fields of an item.
// A nil field is absent for the item's kind; an empty string is present but blank.
type LabelFields struct {
	// Title is defined for tracks and albums.
	Title *string
	// Name is defined for artists and playlists.
	Name *string
	// Artists is defined for tracks and albums.
	Artists *string
}

// Item is a downloadable entity. Items are compared by pointer identity:
// two items built from the same values are distinct queue entries.
type Item struct {
	kind       Kind
	id         string
	fields     LabelFields
	downloaded atomic.Bool
}

// artistsSeparator joins several artist names into one display string.
const artistsSeparator = ", "

// NewTrack creates a track item.
func NewTrack(id, title string, artists []string) *Item {
	joined := strings.Join(artists, artistsSeparator)

	return &Item{
		kind:   KindTrack,
		id:     id,
		fields: LabelFields{Title: &title, Artists: &joined},
	}
}

// NewAlbum creates an album item.
func NewAlbum(id, title string, artists []string) *Item {
	joined := strings.Join(artists, artistsSeparator)

	return &Item{
		kind:   KindAlbum,
		id:     id,
		fields: LabelFields{Title: &title, Artists: &joined},
	}
}

// NewArtist creates an artist item. Downloading it fetches every album of the artist.
func NewArtist(id, name string) *Item {
	return &Item{
		kind:   KindArtist,
		id:     id,
		fields: LabelFields{Name: &name},
	}
}

// NewPlaylist creates a playlist item.
func NewPlaylist(id, name string) *Item {
	return &Item{
		kind:   KindPlaylist,
		id:     id,
		fields: LabelFields{Name: &name},
	}
}

// Kind returns the item kind.
func (i *Item) Kind() Kind {
	return i.kind
}

// ID returns the catalog identifier used for dispatch.
func (i *Item) ID() string {
	return i.id
}

// Fields returns the display fields defined for the item's kind.
func (i *Item) Fields() LabelFields {
	return i.fields
}

// Label returns the human-readable label of the item.
func (i *Item) Label() string {
	return ComposeLabel(i.fields)
}

// Downloaded reports whether the item has been downloaded successfully.
func (i *Item) Downloaded() bool {
	return i.downloaded.Load()
}

// markDownloaded sets the downloaded flag. The flag never reverts.
// It reports whether this call performed the transition.
func (i *Item) markDownloaded() bool {
	return i.downloaded.CompareAndSwap(false, true)
}

// String returns the kind:id reference of the item.
func (i *Item) String() string {
	if i == nil {
		return "<nil>"
	}

	return i.kind.String() + ":" + i.id
}
