// Package console renders download queue notifications in the terminal.
// The View logs queue changes and download outcomes and draws a progress bar
// for the active download.
package console
