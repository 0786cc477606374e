package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/salestrak-pa/internal/service"
	"github.com/MKhiriev/salestrak-pa/models"
)

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers. Nil workers are skipped.
func NewWorkers(workers ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

type dashboardRefreshWorker struct {
	job      service.ClientRefreshJob
	interval time.Duration
	onLoad   func(models.DashboardData)
}

// NewDashboardRefreshWorker runs job every interval and hands each dashboard
// load to onLoad. The job stops when the context passed to Run is cancelled.
func NewDashboardRefreshWorker(job service.ClientRefreshJob, interval time.Duration, onLoad func(models.DashboardData)) Worker {
	return &dashboardRefreshWorker{job: job, interval: interval, onLoad: onLoad}
}

func (w *dashboardRefreshWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval, w.onLoad)
	go func() {
		<-ctx.Done()
		w.job.Stop()
	}()
}
