// Package queue implements the download queue: a sequential, single-active-job
// controller that accepts tracks, albums, artists and playlists, runs exactly one
// of them at a time through a Dispatcher and reports queue contents, progress and
// terminal outcomes to a ViewBridge.
//
// All controller state is owned by one event-loop goroutine. Public methods and
// background downloads communicate with it by message passing only.
package queue
