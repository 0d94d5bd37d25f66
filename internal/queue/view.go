package queue

//go:generate $MOCKGEN -source=view.go -destination=mocks/view_mock.go

// ViewBridge receives controller notifications. The presentation layer implements it.
// Every method is called from the controller event loop, one call at a time.
type ViewBridge interface {
	// OnQueueChanged reports the labels of the queued items in FIFO order.
	OnQueueChanged(labels []string)
	// OnProgress reports the progress of the active download in percent, 0 to 100.
	OnProgress(percent int)
	// OnItemViewUpdate reports the download action state of item.
	OnItemViewUpdate(item *Item, enabled bool, label string)
	// OnDownloadStarted reports the status line of a download that has just started.
	OnDownloadStarted(label string)
	// OnDownloadComplete reports that item was downloaded successfully.
	OnDownloadComplete(item *Item)
	// OnDownloadFailed reports that the download of item failed. The item stays not downloaded.
	OnDownloadFailed(item *Item, err error)
	// OnDownloadStopped reports that the active download has ended, whatever the outcome.
	// The progress indicator is hidden, the status line is cleared and the action is re-enabled.
	OnDownloadStopped()
}
