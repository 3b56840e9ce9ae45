package workers

import (
	"context"
	"sync"
	"time"

	"github.com/ruanfv/portfolio/internal/services"
	"github.com/ruanfv/portfolio/pkg/logger"
)

// WorkerManager manages the background workers
type WorkerManager struct {
	workers      []Worker
	statsService *services.GitHubStatsService
	interval     time.Duration
	wg           sync.WaitGroup
	ctx          context.Context
	cancel       context.CancelFunc
}

// NewWorkerManager creates a new worker manager. A zero interval
// disables the stats worker entirely.
func NewWorkerManager(statsService *services.GitHubStatsService, interval time.Duration) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers:      make([]Worker, 0),
		statsService: statsService,
		interval:     interval,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// StartAll starts all configured workers
func (wm *WorkerManager) StartAll() error {
	if wm.interval <= 0 {
		logger.Info("GitHub stats refresh disabled, no workers to start")
		return nil
	}

	worker := NewGitHubStatsWorker("github-stats-1", wm.statsService, wm.interval)
	wm.workers = append(wm.workers, worker)
	wm.startWorker(worker)

	logger.Infof("Started %d total workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() error {
	// Cancel the context to signal all workers to stop
	wm.cancel()

	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.Errorf("Error stopping worker %s: %v", worker.GetWorkerID(), err)
		}
	}

	// Wait for all workers to finish
	wm.wg.Wait()

	return nil
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && err != context.Canceled {
			logger.Errorf("Worker %s stopped with error: %v", worker.GetWorkerID(), err)
		}
	}()
}
