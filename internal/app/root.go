package app

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/oshokin/zspotify-grabber/internal/client/catalog"
	"github.com/oshokin/zspotify-grabber/internal/config"
	"github.com/oshokin/zspotify-grabber/internal/logger"
	"github.com/oshokin/zspotify-grabber/internal/queue"
	"github.com/oshokin/zspotify-grabber/internal/service/download"
	"github.com/oshokin/zspotify-grabber/internal/view/console"
)

// ExecuteRootCommand is the entry point for the application.
// It initializes the catalog client and the download service, queues the items
// referenced by args and waits until every one of them has been processed.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, args []string) {
	refs, err := queue.ParseReferences(args)
	if err != nil {
		logger.Warnf(ctx, "Some references were skipped: %v", err)
	}

	if len(refs) == 0 {
		logger.Fatal(ctx, "No valid references to download")
	}

	catalogClient, err := catalog.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize catalog client: %v", err)
	}

	s := download.NewService(cfg, catalogClient, download.NewTagProcessor())

	// Ensure statistics are ALWAYS printed, even on panic.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		s.PrintSummary(ctx)
	}()

	view := console.NewView(ctx, os.Stdout, logger.Level() <= zap.InfoLevel)
	items := ResolveItems(ctx, catalogClient, refs)

	if err = RunQueue(ctx, queue.NewDispatcher(s), view, items); err != nil {
		logger.Errorf(ctx, "Queue stopped: %v", err)

		return
	}

	completed, failed := view.Counts()
	logger.Infof(ctx, "Finished: %d downloaded, %d failed", completed, failed)
}
