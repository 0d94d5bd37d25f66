package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/zspotify-grabber/internal/logger"
	"github.com/oshokin/zspotify-grabber/internal/queue"
)

// RunQueue queues items in order on a new controller and waits until the queue drains.
// It returns early when ctx is canceled.
func RunQueue(ctx context.Context, runner queue.Runner, view queue.ViewBridge, items []*queue.Item) error {
	if len(items) == 0 {
		logger.Warn(ctx, "Nothing to download")

		return nil
	}

	controllerCtx, stop := context.WithCancel(ctx)
	defer stop()

	controller := queue.NewController(controllerCtx, runner, view)

	for _, item := range items {
		if err := controller.Toggle(ctx, item); err != nil {
			return fmt.Errorf("failed to queue %s: %w", item, err)
		}
	}

	logger.Infof(ctx, "Queued %d items", len(items))

	if err := controller.WaitIdle(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn(ctx, "Download interrupted")
		}

		return err
	}

	return nil
}
