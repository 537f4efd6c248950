// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run drives passes until ctx is cancelled or a pass fails.
// Interval 0 means a single pass. No overlap. No retries.
// Cancellation is observed between passes only.
func (p *Poller) Run(ctx context.Context) error {
	if _, err := p.PollOnce(); err != nil {
		return err
	}
	if p.cfg.Interval == 0 {
		return nil
	}

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := p.PollOnce(); err != nil {
				return err
			}
		}
	}
}
