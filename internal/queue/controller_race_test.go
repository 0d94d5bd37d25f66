package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRunner finishes every item on its own and tracks how many runs overlap.
type countingRunner struct {
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	runs        atomic.Int32
}

func (r *countingRunner) Run(ctx context.Context, _ *Item, onProgress ProgressFunc) error {
	current := r.inFlight.Add(1)
	defer r.inFlight.Add(-1)

	for {
		observed := r.maxInFlight.Load()
		if current <= observed || r.maxInFlight.CompareAndSwap(observed, current) {
			break
		}
	}

	r.runs.Add(1)

	// Progress may be reported from goroutines other than the one running the item.
	var wg sync.WaitGroup

	for reporter := range 4 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for step := 1; step <= 5; step++ {
				onProgress(float64(reporter*5+step) / 20)
			}
		}()
	}

	wg.Wait()

	select {
	case <-time.After(time.Millisecond):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TestController_ConcurrentToggles tests many producers toggling items while progress flows in.
func TestController_ConcurrentToggles(t *testing.T) {
	t.Parallel()

	const producers = 200

	ctx, cancel := context.WithCancel(context.Background())
	runner := new(countingRunner)
	view := new(recordingView)
	controller := NewController(ctx, runner, view)

	t.Cleanup(func() {
		cancel()
		<-controller.Done()
	})

	items := make([]*Item, producers)
	for i := range items {
		items[i] = NewTrack(fmt.Sprintf("t%d", i), fmt.Sprintf("Song %d", i), []string{"Band"})
	}

	var wg sync.WaitGroup

	for _, item := range items {
		wg.Add(1)

		go func() {
			defer wg.Done()

			assert.NoError(t, controller.Toggle(context.Background(), item))

			_, err := controller.Snapshot(context.Background())
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 4*testTimeout)
	defer waitCancel()

	require.NoError(t, controller.WaitIdle(waitCtx))

	assert.Equal(t, int32(1), runner.maxInFlight.Load(), "runs must never overlap")
	assert.Equal(t, int32(producers), runner.runs.Load())

	for _, item := range items {
		assert.True(t, item.Downloaded(), "item %s was not downloaded", item)
	}

	snapshot := snapshotOf(t, controller)
	assert.False(t, snapshot.Busy)
	assert.Empty(t, snapshot.Queue)

	_, progress := view.snapshot()
	for _, percent := range progress {
		assert.GreaterOrEqual(t, percent, 0)
		assert.LessOrEqual(t, percent, 100)
	}
}
