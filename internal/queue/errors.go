package queue

import (
	"errors"
	"fmt"
)

var (
	// ErrNilItem indicates that a nil item was passed to the controller.
	ErrNilItem = errors.New("item cannot be nil")
	// ErrActiveItemRemoval indicates an attempt to remove the item that is being downloaded.
	ErrActiveItemRemoval = errors.New("active item cannot be removed from the queue")
	// ErrControllerStopped indicates that the controller event loop has exited.
	ErrControllerStopped = errors.New("queue controller is stopped")
	// ErrUnknownKind indicates an item kind outside of the supported set.
	ErrUnknownKind = errors.New("unknown item kind")
	// ErrDownloadPanicked indicates that a downloader panicked instead of returning an error.
	ErrDownloadPanicked = errors.New("downloader panicked")
	// ErrInvalidReference indicates a string that is neither a catalog URL nor a kind:id reference.
	ErrInvalidReference = errors.New("invalid item reference")
)

// DownloadFailure is the terminal error of a single item download.
type DownloadFailure struct {
	// Item is the item whose download failed.
	Item *Item
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *DownloadFailure) Error() string {
	return fmt.Sprintf("failed to download %s: %v", e.Item, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DownloadFailure) Unwrap() error {
	return e.Err
}

// QueueInconsistencyError reports corrupted controller state.
// It is raised with panic, never returned.
//
//nolint:revive // The stutter reads better at call sites outside the package.
type QueueInconsistencyError struct {
	// Active is the item the controller believed to be running.
	Active *Item
	// Front is the item found at the head of the queue, nil for an empty queue.
	Front *Item
}

// Error implements the error interface.
func (e *QueueInconsistencyError) Error() string {
	return fmt.Sprintf("queue inconsistency: active item %v, queue front %v", e.Active, e.Front)
}
