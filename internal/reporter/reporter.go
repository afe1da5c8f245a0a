// Package reporter provides the background status loop that periodically
// emits a heartbeat log line for the lifetime of the interactive session.
package reporter

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultInterval is the tick interval used when none is configured.
const DefaultInterval = 10 * time.Second

// Reporter emits a status log line on a fixed interval until stopped.
// It holds no reference to task data; its only shared state is its own
// lifecycle. Start and Stop are safe to call from the shutdown path.
type Reporter struct {
	interval time.Duration
	logger   zerolog.Logger

	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once

	started time.Time
}

// New creates a Reporter with the given tick interval.
// A non-positive interval falls back to DefaultInterval.
func New(interval time.Duration, logger zerolog.Logger) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Reporter{
		interval: interval,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the status loop in its own goroutine.
func (r *Reporter) Start() {
	r.started = time.Now()
	r.wg.Add(1)
	go r.loop()
}

// Stop signals the loop to exit and waits for it to finish.
// Stop is idempotent and safe to call before the first tick; the pending
// sleep is interrupted rather than waited out.
func (r *Reporter) Stop() {
	r.stopOnce.Do(func() {
		r.cancel()
		r.wg.Wait()
	})
}

func (r *Reporter) loop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			r.logger.Info().
				Dur("uptime", time.Since(r.started).Round(time.Second)).
				Msg("task tracker running")
		}
	}
}
