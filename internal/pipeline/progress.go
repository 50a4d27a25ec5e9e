package pipeline

import (
	"context"

	"github.com/reelworks/reelify/internal/domain"
	"github.com/reelworks/reelify/internal/logger"
)

// reporter is the observational side channel to the caller. Sends are
// non-blocking: a slow or absent listener never gates the pipeline.
type reporter struct {
	ch  chan<- domain.ProgressUpdate
	log logger.Logger
}

func newReporter(ch chan<- domain.ProgressUpdate, log logger.Logger) *reporter {
	return &reporter{ch: ch, log: log}
}

func (r *reporter) report(ctx context.Context, percent int, status string) {
	r.log.Info(ctx, "Progress %d%%: %s", percent, status)
	if r.ch == nil {
		return
	}
	select {
	case r.ch <- domain.ProgressUpdate{Percent: percent, Status: status}:
	default:
	}
}
