package workers

import (
	"context"
	"sync"
	"time"

	"github.com/mkarpenko/secretpanel/internal/logger"
)

// RefreshJob periodically reloads the secret list so the panel stays
// current while idle. The job skips a tick when a search filter is active
// or when no store is configured. It is idle until Run is called.
type RefreshJob struct {
	target   RefreshTarget
	interval time.Duration
	log      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob that calls target.Refresh on a ticker.
// If interval is zero or negative it defaults to 5 minutes.
func NewRefreshJob(target RefreshTarget, interval time.Duration, log *logger.Logger) *RefreshJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RefreshJob{target: target, interval: interval, log: log}
}

// Run implements Worker. It stops any previously running job, then launches
// a background goroutine that refreshes the list every interval. The
// goroutine exits when Stop is called.
func (j *RefreshJob) Run() {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop implements Worker. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *RefreshJob) tick(ctx context.Context) {
	if !j.target.Enabled() || j.target.SearchActive() {
		return
	}
	if err := j.target.Refresh(ctx); err != nil {
		j.log.Warn().Err(err).Msg("background refresh failed")
	}
}
