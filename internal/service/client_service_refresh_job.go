package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/salestrak-pa/models"
)

// DefaultRefreshInterval is used when the configured interval is not positive.
const DefaultRefreshInterval = 5 * time.Minute

type clientRefreshJob struct {
	dashboard ClientDashboardService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls dashboard.Load on
// a ticker. The job is idle until Start is called.
func NewClientRefreshJob(dashboard ClientDashboardService) ClientRefreshJob {
	return &clientRefreshJob{dashboard: dashboard}
}

// Start implements ClientRefreshJob. It stops any previously running job,
// then launches a background goroutine that reloads the dashboard every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration, onLoad func(models.DashboardData)) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				data := j.dashboard.Load(jobCtx)
				if jobCtx.Err() != nil {
					return
				}
				if onLoad != nil {
					onLoad(data)
				}
			}
		}
	}()
}

// Stop implements ClientRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
