// Package catalog provides the client for the media catalog API.
// It resolves track, album and playlist metadata over REST,
// artist discographies over GraphQL, and streams audio and cover images.
// Metadata lookups are cached in LRU caches keyed by catalog ID.
package catalog
