package queue

import (
	"context"
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/oshokin/zspotify-grabber/internal/logger"
)

// eventsBufferSize is the capacity of the controller inbox.
// Progress messages from the active download are the bulk of the traffic.
const eventsBufferSize = 64

// Snapshot is a copy of the controller state.
type Snapshot struct {
	// Queue lists the queued items in FIFO order. The front is the active item while Busy.
	Queue []*Item
	// Active is the item being downloaded, nil when idle.
	Active *Item
	// Busy reports whether a download is in flight.
	Busy bool
}

// Controller owns the download queue and runs one item at a time.
// It is safe for concurrent use.
type Controller struct {
	runner Runner
	view   ViewBridge
	events chan any
	done   chan struct{}

	// Fields below are owned by the event loop.
	state       queueState
	job         uuid.UUID
	lastPercent int
	selected    *Item
	idleWaiters []chan struct{}
}

// queueState is the queue, the active item and the busy flag.
type queueState struct {
	queue  []*Item
	active *Item
	busy   bool
}

// Messages handled by the event loop.
type (
	toggleRequest struct {
		item  *Item
		reply chan error
	}
	selectRequest struct {
		item  *Item
		reply chan struct{}
	}
	snapshotRequest struct {
		reply chan Snapshot
	}
	idleRequest struct {
		reply chan struct{}
	}
	progressMessage struct {
		job      uuid.UUID
		fraction float64
	}
	completeMessage struct {
		job uuid.UUID
		err error
	}
)

// NewController creates a Controller and starts its event loop.
// The loop runs until ctx is canceled; the active download, if any, receives the same ctx.
func NewController(ctx context.Context, runner Runner, view ViewBridge) *Controller {
	c := &Controller{
		runner: runner,
		view:   view,
		events: make(chan any, eventsBufferSize),
		done:   make(chan struct{}),
	}

	go c.loop(ctx)

	return c
}

// Toggle removes item from the queue if it is queued, or appends it otherwise.
// When the controller is idle the queue front is started right away.
// Removing the item that is being downloaded is rejected with ErrActiveItemRemoval.
func (c *Controller) Toggle(ctx context.Context, item *Item) error {
	if item == nil {
		return ErrNilItem
	}

	reply := make(chan error, 1)
	if err := c.send(ctx, toggleRequest{item: item, reply: reply}); err != nil {
		return err
	}

	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-c.done:
		return ErrControllerStopped
	}
}

// Select marks item as the one shown by the view and reports its action state.
// A nil item clears the selection.
func (c *Controller) Select(ctx context.Context, item *Item) error {
	reply := make(chan struct{}, 1)
	if err := c.send(ctx, selectRequest{item: item, reply: reply}); err != nil {
		return err
	}

	return c.await(ctx, reply)
}

// Snapshot returns a copy of the controller state.
func (c *Controller) Snapshot(ctx context.Context) (Snapshot, error) {
	reply := make(chan Snapshot, 1)
	if err := c.send(ctx, snapshotRequest{reply: reply}); err != nil {
		return Snapshot{}, err
	}

	select {
	case snapshot := <-reply:
		return snapshot, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case <-c.done:
		return Snapshot{}, ErrControllerStopped
	}
}

// WaitIdle blocks until the queue is empty and no download is in flight.
func (c *Controller) WaitIdle(ctx context.Context) error {
	reply := make(chan struct{}, 1)
	if err := c.send(ctx, idleRequest{reply: reply}); err != nil {
		return err
	}

	return c.await(ctx, reply)
}

// Done is closed when the event loop has exited.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

func (c *Controller) send(ctx context.Context, message any) error {
	select {
	case c.events <- message:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-c.done:
		return ErrControllerStopped
	}
}

func (c *Controller) await(ctx context.Context, reply <-chan struct{}) error {
	select {
	case <-reply:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-c.done:
		return ErrControllerStopped
	}
}

// post delivers a message from a download goroutine. It never blocks past the loop's exit.
func (c *Controller) post(message any) {
	select {
	case c.events <- message:
	case <-c.done:
	}
}

func (c *Controller) loop(ctx context.Context) {
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			logger.Debugf(ctx, "Queue controller stopped: %v", ctx.Err())

			return
		case message := <-c.events:
			c.handle(ctx, message)
		}
	}
}

func (c *Controller) handle(ctx context.Context, message any) {
	switch m := message.(type) {
	case toggleRequest:
		m.reply <- c.toggle(ctx, m.item)
	case selectRequest:
		c.selected = m.item
		if m.item != nil {
			c.updateItemView(m.item)
		}

		m.reply <- struct{}{}
	case snapshotRequest:
		m.reply <- Snapshot{
			Queue:  slices.Clone(c.state.queue),
			Active: c.state.active,
			Busy:   c.state.busy,
		}
	case idleRequest:
		if c.state.isIdle() {
			m.reply <- struct{}{}
		} else {
			c.idleWaiters = append(c.idleWaiters, m.reply)
		}
	case progressMessage:
		c.progress(m)
	case completeMessage:
		c.complete(ctx, m)
	default:
		logger.Errorf(ctx, "Queue controller received unknown message %T", message)
	}
}

func (c *Controller) toggle(ctx context.Context, item *Item) error {
	if idx := indexOf(c.state.queue, item); idx >= 0 {
		if c.state.busy && item == c.state.active {
			return ErrActiveItemRemoval
		}

		c.state.queue = slices.Delete(c.state.queue, idx, idx+1)

		logger.DebugKV(ctx, "Removed from queue", "item", item.String(), "queued", len(c.state.queue))
	} else {
		c.state.queue = append(c.state.queue, item)

		logger.DebugKV(ctx, "Added to queue", "item", item.String(), "queued", len(c.state.queue))
	}

	c.view.OnQueueChanged(Labels(c.state.queue))
	c.updateItemView(item)

	if !c.state.busy && len(c.state.queue) > 0 {
		c.start(ctx, c.state.queue[0])
	}

	return nil
}

func (c *Controller) start(ctx context.Context, item *Item) {
	c.state.assertIdle()

	c.state.active = item
	c.state.busy = true
	c.job = uuid.New()
	c.lastPercent = 0

	c.view.OnProgress(0)
	c.view.OnDownloadStarted(DownloadingStatus(item))

	logger.InfoKV(ctx, "Download started",
		"job", c.job.String(),
		"kind", item.Kind().String(),
		"id", item.ID(),
		"label", item.Label())

	job := c.job

	go func() {
		err := c.runner.Run(ctx, item, func(fraction float64) {
			c.post(progressMessage{job: job, fraction: fraction})
		})

		c.post(completeMessage{job: job, err: err})
	}()
}

func (c *Controller) progress(m progressMessage) {
	if !c.state.busy || m.job != c.job || math.IsNaN(m.fraction) {
		return
	}

	percent := int(math.Round(m.fraction * 100)) //nolint:mnd // Fraction to percent.
	percent = min(max(percent, 0), 100)          //nolint:mnd // Percent bounds.

	// Progress never goes backwards within one job.
	if percent <= c.lastPercent {
		return
	}

	c.lastPercent = percent
	c.view.OnProgress(percent)
}

func (c *Controller) complete(ctx context.Context, m completeMessage) {
	if !c.state.busy || m.job != c.job {
		logger.Warnf(ctx, "Ignoring completion of stale job %s", m.job)

		return
	}

	c.view.OnProgress(0)
	c.view.OnDownloadStopped()

	item := c.state.popActive()

	c.view.OnQueueChanged(Labels(c.state.queue))

	if m.err == nil {
		item.markDownloaded()
		c.view.OnDownloadComplete(item)

		logger.InfoKV(ctx, "Download completed", "job", m.job.String(), "id", item.ID(), "label", item.Label())
	} else {
		c.view.OnDownloadFailed(item, m.err)

		logger.WarnKV(ctx, "Download failed", "job", m.job.String(), "id", item.ID(), "error", m.err.Error())
	}

	c.state.active = nil
	c.state.busy = false
	c.job = uuid.Nil

	if c.selected != nil {
		c.updateItemView(c.selected)
	}

	if len(c.state.queue) > 0 {
		c.start(ctx, c.state.queue[0])

		return
	}

	for _, waiter := range c.idleWaiters {
		waiter <- struct{}{}
	}

	c.idleWaiters = nil
}

func (c *Controller) updateItemView(item *Item) {
	state := ButtonStateFor(item, c.state.queue)
	c.view.OnItemViewUpdate(item, state.Enabled, state.Label)
}

// isIdle reports whether nothing is queued or running.
func (s *queueState) isIdle() bool {
	return !s.busy && len(s.queue) == 0
}

// assertIdle panics unless no download is in flight.
func (s *queueState) assertIdle() {
	if s.busy || s.active != nil {
		panic(&QueueInconsistencyError{Active: s.active, Front: s.front()})
	}
}

// popActive removes the queue front, which must be the active item, and returns it.
func (s *queueState) popActive() *Item {
	front := s.front()
	if s.active == nil || front != s.active {
		panic(&QueueInconsistencyError{Active: s.active, Front: front})
	}

	s.queue = slices.Delete(s.queue, 0, 1)

	return front
}

func (s *queueState) front() *Item {
	if len(s.queue) == 0 {
		return nil
	}

	return s.queue[0]
}
