package download

import (
	"context"
	"sync"
	"time"

	"github.com/oshokin/zspotify-grabber/internal/client/catalog"
	"github.com/oshokin/zspotify-grabber/internal/config"
	"github.com/oshokin/zspotify-grabber/internal/queue"
)

// Service downloads catalog items and keeps session statistics.
type Service interface {
	queue.Downloader
	// Statistics returns a copy of the session statistics.
	Statistics() Statistics
	// PrintSummary logs a summary of the session statistics.
	PrintSummary(ctx context.Context)
}

// ServiceImpl implements Service on top of the catalog client.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client is the catalog API client.
	client catalog.Client
	// tagProcessor writes metadata tags to audio files.
	tagProcessor TagProcessor
	// stats tracks download statistics for the current session.
	stats Statistics
	// statsMutex protects stats.
	statsMutex sync.Mutex
}

var _ queue.Downloader = (*ServiceImpl)(nil)

// NewService creates a download service with dependency-injected components.
func NewService(cfg *config.Config, client catalog.Client, tagProcessor TagProcessor) *ServiceImpl {
	return &ServiceImpl{
		cfg:          cfg,
		client:       client,
		tagProcessor: tagProcessor,
		stats:        Statistics{StartTime: time.Now()},
	}
}
