package workers

import (
	"context"
	"time"

	"github.com/ruanfv/portfolio/internal/services"
	"github.com/ruanfv/portfolio/pkg/logger"
)

// GitHubStatsWorker periodically refreshes the stars/forks counters of
// projects that link a GitHub repository.
type GitHubStatsWorker struct {
	*BaseWorker
	statsService *services.GitHubStatsService
	interval     time.Duration
}

// NewGitHubStatsWorker creates a new stats worker
func NewGitHubStatsWorker(workerID string, statsService *services.GitHubStatsService, interval time.Duration) *GitHubStatsWorker {
	return &GitHubStatsWorker{
		BaseWorker:   NewBaseWorker(workerID),
		statsService: statsService,
		interval:     interval,
	}
}

// Start begins the stats worker loop. One refresh runs immediately,
// then the ticker takes over.
func (w *GitHubStatsWorker) Start(ctx context.Context) error {
	w.Running = true
	logger.Infof("GitHub stats worker %s started (interval %s)", w.WorkerID, w.interval)

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Infof("GitHub stats worker %s stopping due to context cancellation", w.WorkerID)
			return ctx.Err()
		case <-w.StopChan:
			logger.Infof("GitHub stats worker %s stopping", w.WorkerID)
			return nil
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *GitHubStatsWorker) refresh(ctx context.Context) {
	if err := w.statsService.RefreshAll(ctx); err != nil {
		logger.WithError(err).Errorf("GitHub stats worker %s refresh failed", w.WorkerID)
	}
}
