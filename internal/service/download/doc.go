// Package download saves catalog tracks, albums, artist discographies and playlists to disk.
// Its service is the downloader behind the queue dispatcher.
package download
