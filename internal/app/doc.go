// Package app provides the main application logic of zspotify-grabber.
// It wires the catalog client, the download service and the console view
// to the download queue, and implements the configuration commands.
package app
